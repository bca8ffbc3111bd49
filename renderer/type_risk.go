package renderer

import (
	"github.com/etnz/finmath"
)

// Risk holds the data of a Monte Carlo report.
type Risk struct {
	Currency           string           `json:"currency"`
	Simulations        int              `json:"simulations"`
	Seed               uint64           `json:"seed"`
	Mean               finmath.Money    `json:"mean"`
	StdDev             finmath.Money    `json:"stdDev"`
	Percentile5        finmath.Money    `json:"percentile5"`
	Percentile95       finmath.Money    `json:"percentile95"`
	SuccessProbability finmath.Percent  `json:"successProbability"`
	FailureProbability finmath.Percent  `json:"failureProbability"`
	Decision           finmath.Decision `json:"decision"`
	Bins               []RiskBin        `json:"bins,omitempty"`
	MaxCount           float64          `json:"maxCount,omitempty"`
}

// RiskBin is one histogram bin, starting at Low.
type RiskBin struct {
	Low   finmath.Money `json:"low"`
	Count float64       `json:"count"`
}

// NewRisk creates a Risk report from a simulation. bins is passed to
// Simulation.Histogram, a negative value skips the histogram.
func NewRisk(sim *finmath.Simulation, model finmath.RiskModel, bins int, currency string) *Risk {
	s := sim.Summary()
	r := &Risk{
		Currency:           currency,
		Simulations:        s.Simulations,
		Seed:               model.Seed,
		Mean:               finmath.M(s.Mean, currency),
		StdDev:             finmath.M(s.StdDev, currency),
		Percentile5:        finmath.M(s.Percentile5, currency),
		Percentile95:       finmath.M(s.Percentile95, currency),
		SuccessProbability: finmath.PercentOf(s.SuccessProbability),
		FailureProbability: finmath.PercentOf(s.FailureProbability),
		Decision:           s.Decision(),
	}
	if bins < 0 {
		return r
	}
	h := sim.Histogram(bins)
	for i, c := range h.Counts {
		r.Bins = append(r.Bins, RiskBin{Low: finmath.M(h.Dividers[i], currency), Count: c})
		r.MaxCount = max(r.MaxCount, c)
	}
	return r
}
