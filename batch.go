package finmath

import "gonum.org/v1/gonum/floats"

// LoanBatch holds the elementwise analysis of parallel loan parameters.
type LoanBatch struct {
	Principals     []float64 `json:"principals"`
	Rates          []float64 `json:"rates"` // per period
	Periods        []float64 `json:"periods"`
	Payments       []float64 `json:"payments"`
	FirstInterest  []float64 `json:"first_interest"`
	FirstPrincipal []float64 `json:"first_principal"`
	TotalPaid      []float64 `json:"total_paid"`     // Payments * Periods
	TotalInterest  []float64 `json:"total_interest"` // TotalPaid - Principals
	InterestRatio  []float64 `json:"interest_ratio"` // TotalInterest / Principals
}

// BatchLoanAnalysis analyses the fully amortizing loans described by the
// parallel arrays principals, rates (per period) and periods.
func BatchLoanAnalysis(principals, rates, periods []float64) (*LoanBatch, error) {
	const op = "BatchLoanAnalysis"
	if len(principals) != len(rates) || len(rates) != len(periods) {
		return nil, &ShapeError{Op: op, Lengths: []int{len(principals), len(rates), len(periods)}}
	}
	for _, p := range principals {
		if p <= 0 {
			return nil, domainError(op, "principal", p, "must be positive")
		}
	}

	P, r, n := A(principals...), A(rates...), A(periods...)
	payments, err := PaymentAmount(r, n, P, Array{})
	if err != nil {
		return nil, err
	}
	interest, err := PaymentInterest(r, S(1), n, P, Array{})
	if err != nil {
		return nil, err
	}
	principal, err := PaymentPrincipal(r, S(1), n, P, Array{})
	if err != nil {
		return nil, err
	}

	b := &LoanBatch{
		Principals:     P.Values(),
		Rates:          r.Values(),
		Periods:        n.Values(),
		Payments:       payments.Values(),
		FirstInterest:  interest.Values(),
		FirstPrincipal: principal.Values(),
	}
	b.TotalPaid = floats.MulTo(make([]float64, len(principals)), b.Payments, b.Periods)
	b.TotalInterest = floats.SubTo(make([]float64, len(principals)), b.TotalPaid, b.Principals)
	b.InterestRatio = floats.DivTo(make([]float64, len(principals)), b.TotalInterest, b.Principals)
	return b, nil
}

// Len returns the number of loans.
func (b *LoanBatch) Len() int { return len(b.Principals) }

// Map returns the result arrays by name.
func (b *LoanBatch) Map() map[string][]float64 {
	return map[string][]float64{
		"payments":        b.Payments,
		"first_interest":  b.FirstInterest,
		"first_principal": b.FirstPrincipal,
		"total_paid":      b.TotalPaid,
		"total_interest":  b.TotalInterest,
		"interest_ratio":  b.InterestRatio,
	}
}

// PortfolioTotals aggregates a LoanBatch.
type PortfolioTotals struct {
	Principal     float64 `json:"principal"`
	Payments      float64 `json:"payments"` // sum of the periodic installments
	TotalPaid     float64 `json:"total_paid"`
	TotalInterest float64 `json:"total_interest"`
	InterestRatio float64 `json:"interest_ratio"` // TotalInterest / Principal
}

// Totals returns the aggregate metrics of the batch.
func (b *LoanBatch) Totals() PortfolioTotals {
	t := PortfolioTotals{
		Principal:     floats.Sum(b.Principals),
		Payments:      floats.Sum(b.Payments),
		TotalPaid:     floats.Sum(b.TotalPaid),
		TotalInterest: floats.Sum(b.TotalInterest),
	}
	if t.Principal != 0 {
		t.InterestRatio = t.TotalInterest / t.Principal
	}
	return t
}
