package finmath

import "math"

// Cash flow timing conventions.
//
// Operations taking an initial investment and a flows slice (NetPresentValue,
// InternalRateOfReturn, ProfitabilityIndex, PaybackPeriod...) place flows[0]
// one period after the investment.
//
// Operations suffixed with Series (and ModifiedInternalRateOfReturn,
// MonteCarloNPV) take a single signed series where flows[0] happens at t=0,
// usually the negative investment.

// Solver defaults for the rate of return root finder.
const (
	DefaultMaxIterations = 1000
	DefaultTolerance     = 1e-6
	DefaultGuess         = 0.1
)

// SolverOptions tunes the Newton-Raphson search of InternalRateOfReturn.
// Zero fields take their default value.
type SolverOptions struct {
	MaxIterations int
	Tolerance     float64
	// Guess is the starting rate. 0 selects DefaultGuess, so the search
	// cannot start at exactly 0%; pass a small rate such as 1e-9 instead.
	Guess         float64
}

func (o SolverOptions) withDefaults() SolverOptions {
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.Guess == 0 {
		o.Guess = DefaultGuess
	}
	return o
}

// horizon truncates flows to the first periods flows, 0 means all of them.
func horizon(op string, flows []float64, periods int) ([]float64, error) {
	if periods < 0 {
		return nil, domainError(op, "periods", float64(periods), "must not be negative")
	}
	if periods == 0 || periods > len(flows) {
		return flows, nil
	}
	return flows[:periods], nil
}

// discountedSum returns the sum of flows[i] / (1+rate/m)^(m*t) with t=(i+1)/m years.
func discountedSum(op string, flows []float64, rate float64, m int) (float64, error) {
	if err := checkFrequency(op, m); err != nil {
		return 0, err
	}
	mf := float64(m)
	if rate/mf == -1 {
		return 0, domainError(op, "rate", rate, "rate per period must not be -1")
	}
	var sum float64
	for i, cf := range flows {
		t := float64(i+1) / mf
		sum += cf / math.Pow(1+rate/mf, mf*t)
	}
	return sum, nil
}

// NetPresentValue returns the value today of an investment of initial
// followed by flows, one per compounding period, discounted at the nominal
// annual rate compounded m times a year:
//
//	-initial + Σ flows[i] / (1 + rate/m)^(m*t), t = (i+1)/m
//
// periods limits the horizon to the first periods flows, 0 (or any value
// beyond len(flows)) for all of them. Flows after the horizon are ignored,
// not discounted.
func NetPresentValue(initial float64, flows []float64, rate float64, periods, m int) (float64, error) {
	const op = "NetPresentValue"
	flows, err := horizon(op, flows, periods)
	if err != nil {
		return 0, err
	}
	sum, err := discountedSum(op, flows, rate, m)
	if err != nil {
		return 0, err
	}
	return sum - initial, nil
}

// NetPresentValueSeries returns Σ flows[t] / (1+rate)^t where flows[0] is
// at t=0, usually the negative initial investment.
func NetPresentValueSeries(rate float64, flows []float64) float64 {
	var npv float64
	for t, cf := range flows {
		npv += cf / math.Pow(1+rate, float64(t))
	}
	return npv
}

// InternalRateOfReturn searches the rate at which the NetPresentValue of
// initial and flows is zero, using Newton-Raphson from opts.Guess.
//
// When the search stops before reaching the tolerance, because the
// derivative vanished or the iterations were exhausted, the last estimate is
// returned with a *ConvergenceError. Series with several sign changes can
// have several roots, any of them may be returned.
func InternalRateOfReturn(initial float64, flows []float64, opts SolverOptions) (float64, error) {
	return newtonIRR("InternalRateOfReturn", initial, flows, opts)
}

// InternalRateOfReturnSeries is InternalRateOfReturn for a single series
// where flows[0] is the signed investment at t=0.
func InternalRateOfReturnSeries(flows []float64, opts SolverOptions) (float64, error) {
	const op = "InternalRateOfReturnSeries"
	if len(flows) == 0 {
		return 0, domainError(op, "flows length", 0, "must not be empty")
	}
	return newtonIRR(op, -flows[0], flows[1:], opts)
}

func newtonIRR(op string, initial float64, flows []float64, opts SolverOptions) (float64, error) {
	opts = opts.withDefaults()
	rate := opts.Guess
	for iter := 0; iter < opts.MaxIterations; iter++ {
		npv, deriv := -initial, 0.0
		for i, cf := range flows {
			p := float64(i + 1)
			npv += cf / math.Pow(1+rate, p)
			deriv -= cf * p / math.Pow(1+rate, p+1)
		}
		if math.Abs(npv) < opts.Tolerance {
			return rate, nil
		}
		if deriv == 0 {
			return rate, &ConvergenceError{Op: op, Rate: rate, Iterations: iter + 1, Reason: "zero derivative"}
		}
		rate -= npv / deriv
	}
	return rate, &ConvergenceError{Op: op, Rate: rate, Iterations: opts.MaxIterations, Reason: "tolerance not reached"}
}

// ModifiedInternalRateOfReturn returns the MIRR of a signed series where
// flows[0] is at t=0: negative flows are discounted at financeRate, positive
// flows compounded at reinvestRate to the last period.
func ModifiedInternalRateOfReturn(flows []float64, financeRate, reinvestRate float64) (float64, error) {
	const op = "ModifiedInternalRateOfReturn"
	n := len(flows)
	if n < 2 {
		return 0, domainError(op, "flows length", float64(n), "needs at least two flows")
	}
	positives := make([]float64, n)
	negatives := make([]float64, n)
	var hasPos, hasNeg bool
	for i, cf := range flows {
		switch {
		case cf > 0:
			positives[i], hasPos = cf, true
		case cf < 0:
			negatives[i], hasNeg = cf, true
		}
	}
	if !hasPos || !hasNeg {
		return 0, domainError(op, "flows", 0, "needs both positive and negative flows")
	}
	numer := math.Abs(NetPresentValueSeries(reinvestRate, positives))
	denom := math.Abs(NetPresentValueSeries(financeRate, negatives))
	return math.Pow(numer/denom, 1/float64(n-1))*(1+reinvestRate) - 1, nil
}

// ProfitabilityIndex returns the present value of flows divided by initial,
// discounted as in NetPresentValue. Above 1 the investment creates value.
func ProfitabilityIndex(initial float64, flows []float64, rate float64, periods, m int) (float64, error) {
	const op = "ProfitabilityIndex"
	if initial == 0 {
		return 0, domainError(op, "initial investment", initial, "must not be zero")
	}
	flows, err := horizon(op, flows, periods)
	if err != nil {
		return 0, err
	}
	sum, err := discountedSum(op, flows, rate, m)
	if err != nil {
		return 0, err
	}
	return sum / initial, nil
}

// PaybackPeriod returns the number of periods, interpolated linearly within
// the crossing period, for the cumulative undiscounted flows to reach
// initial. It returns +Inf if the investment is never recovered, and 0 if
// there is nothing to recover.
func PaybackPeriod(initial float64, flows []float64) float64 {
	if initial <= 0 {
		return 0
	}
	var cumulative float64
	for i, cf := range flows {
		previous := cumulative
		cumulative += cf
		if cumulative >= initial {
			return float64(i) + (initial-previous)/cf
		}
	}
	return math.Inf(1)
}
