// Package finmath provides the quantitative engine of financial decision
// support: pure, stateless functions over scalars and numeric series.
//
// The engine covers:
//   - Rate conversions: nominal, per period and effective annual rates.
//   - Time value of money: present and future values of single cash flows
//     and ordinary annuities under any compounding frequency.
//   - Amortization: fixed installment of a loan and its decomposition into
//     interest and principal, period by period.
//   - Investment appraisal: NPV, IRR (Newton-Raphson), MIRR, profitability
//     index and payback period.
//   - Risk: NPV sensitivity to the discount rate and Monte Carlo simulation
//     of the NPV distribution.
//   - Batch loan analysis over parallel arrays of loan parameters.
//
// Numeric arguments of the vectorized operations are Arrays: a scalar in
// gives a scalar out, any vector in gives a vector out (see Array). The rate
// conversions and the annuity values are scalar only: they take and return
// float64. Use Array operations or a loop for series of rates.
//
// Nothing is retained between calls. Random draws come from a generator
// seeded explicitly by the caller (see RiskModel), so simulations are
// reproducible.
//
// This package serves as the foundational logic for the `finc` command-line
// tool.
package finmath
