package finmath

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SensitivityNPV evaluates NetPresentValue at every rate of rates. The
// result has the same length as rates.
func SensitivityNPV(initial float64, flows, rates []float64, periods, m int) ([]float64, error) {
	const op = "SensitivityNPV"
	flows, err := horizon(op, flows, periods)
	if err != nil {
		return nil, err
	}
	if err := checkFrequency(op, m); err != nil {
		return nil, err
	}
	mf := float64(m)
	for _, r := range rates {
		if r/mf == -1 {
			return nil, domainError(op, "rate", r, "rate per period must not be -1")
		}
	}

	npv := make([]float64, len(rates))
	for i := range npv {
		npv[i] = -initial
	}
	// one pass per cash flow, each pass covers the whole rate vector.
	factors := make([]float64, len(rates))
	for i, cf := range flows {
		t := float64(i+1) / mf
		for j, r := range rates {
			factors[j] = math.Pow(1+r/mf, -mf*t)
		}
		floats.AddScaled(npv, cf, factors)
	}
	return npv, nil
}

// RateRange returns n evenly spaced rates from low to high inclusive.
func RateRange(low, high float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{low}
	}
	return floats.Span(make([]float64, n), low, high)
}
