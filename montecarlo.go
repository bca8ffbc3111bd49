package finmath

import (
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Risk simulation defaults.
const (
	DefaultSeed        uint64 = 42
	DefaultSimulations        = 1000
	DefaultRateFloor          = 0.001
)

// RiskModel describes the uncertainty of a project for MonteCarloNPV.
type RiskModel struct {
	DiscountRateMean   float64 // expected discount rate per period
	RateVolatility     float64 // standard deviation of the discount rate, absolute
	CashFlowVolatility float64 // standard deviation of each flow, relative to its expected value
	RateFloor          float64 // simulated rates below the floor are raised to it, 0 means DefaultRateFloor
	Simulations        int
	Seed               uint64
}

// NewRiskModel returns a RiskModel with the default floor, simulation count
// and seed.
func NewRiskModel(discountRateMean, cashFlowVolatility, rateVolatility float64) RiskModel {
	return RiskModel{
		DiscountRateMean:   discountRateMean,
		RateVolatility:     rateVolatility,
		CashFlowVolatility: cashFlowVolatility,
		RateFloor:          DefaultRateFloor,
		Simulations:        DefaultSimulations,
		Seed:               DefaultSeed,
	}
}

func (m RiskModel) withDefaults() RiskModel {
	if m.RateFloor == 0 {
		m.RateFloor = DefaultRateFloor
	}
	return m
}

// MonteCarloNPV simulates the NPV distribution of a signed series where
// flows[0] is the initial investment at t=0 (usually negative).
//
// Each simulation draws a discount rate from N(DiscountRateMean,
// RateVolatility) floored at RateFloor, and each future flow from
// N(flows[p], |flows[p]|*CashFlowVolatility), then computes
//
//	flows[0] + Σ flow[p] / (1+rate)^p
//
// A single generator seeded with model.Seed produces all the draws, rates
// first then period by period, so identical inputs give identical outcomes.
func MonteCarloNPV(flows []float64, model RiskModel) (*Simulation, error) {
	const op = "MonteCarloNPV"
	switch {
	case model.Simulations <= 0:
		return nil, domainError(op, "simulations", float64(model.Simulations), "must be positive")
	case len(flows) == 0:
		return nil, domainError(op, "flows length", 0, "must not be empty")
	case model.RateVolatility < 0:
		return nil, domainError(op, "rate volatility", model.RateVolatility, "must not be negative")
	case model.CashFlowVolatility < 0:
		return nil, domainError(op, "cash flow volatility", model.CashFlowVolatility, "must not be negative")
	case model.RateFloor <= -1:
		return nil, domainError(op, "rate floor", model.RateFloor, "must be greater than -1")
	}

	model = model.withDefaults()
	src := rand.NewSource(model.Seed)
	n := model.Simulations

	rateDist := distuv.Normal{Mu: model.DiscountRateMean, Sigma: model.RateVolatility, Src: src}
	rates := make([]float64, n)
	for i := range rates {
		rates[i] = math.Max(rateDist.Rand(), model.RateFloor)
	}

	npv := make([]float64, n)
	for i := range npv {
		npv[i] = flows[0]
	}
	for p := 1; p < len(flows); p++ {
		flowDist := distuv.Normal{Mu: flows[p], Sigma: math.Abs(flows[p] * model.CashFlowVolatility), Src: src}
		for i := range npv {
			npv[i] += flowDist.Rand() / math.Pow(1+rates[i], float64(p))
		}
	}
	return &Simulation{outcomes: npv}, nil
}

// Simulation holds the NPV outcomes of a Monte Carlo run. Its statistics are
// computed from the outcomes on each call.
type Simulation struct {
	outcomes []float64
}

// NewSimulation wraps existing outcomes.
func NewSimulation(outcomes []float64) *Simulation {
	return &Simulation{outcomes: append([]float64(nil), outcomes...)}
}

// Outcomes returns a copy of the simulated NPVs, in simulation order.
func (s *Simulation) Outcomes() []float64 { return append([]float64(nil), s.outcomes...) }

// Len returns the number of simulations.
func (s *Simulation) Len() int { return len(s.outcomes) }

// Mean returns the expected NPV.
func (s *Simulation) Mean() float64 { return stat.Mean(s.outcomes, nil) }

// StdDev returns the population standard deviation of the outcomes.
func (s *Simulation) StdDev() float64 { return stat.PopStdDev(s.outcomes, nil) }

// SuccessProbability returns the fraction of outcomes with NPV >= 0.
func (s *Simulation) SuccessProbability() float64 {
	if len(s.outcomes) == 0 {
		return 0
	}
	var count int
	for _, v := range s.outcomes {
		if v >= 0 {
			count++
		}
	}
	return float64(count) / float64(len(s.outcomes))
}

// FailureProbability returns 1 - SuccessProbability.
func (s *Simulation) FailureProbability() float64 { return 1 - s.SuccessProbability() }

// Percentile returns the p-th percentile (p in [0, 100], clamped) of the
// outcomes, linearly interpolated on the empirical distribution.
func (s *Simulation) Percentile(p float64) float64 {
	return percentile(s.sorted(), p)
}

func (s *Simulation) sorted() []float64 {
	sorted := s.Outcomes()
	sort.Float64s(sorted)
	return sorted
}

func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	p = math.Min(math.Max(p, 0), 100)
	return stat.Quantile(p/100, stat.LinInterp, sorted, nil)
}

// RiskSummary gathers the usual statistics of a Simulation.
type RiskSummary struct {
	Mean               float64
	StdDev             float64
	SuccessProbability float64
	FailureProbability float64
	Percentile5        float64
	Percentile95       float64
	Simulations        int
}

// Summary computes the RiskSummary of s.
func (s *Simulation) Summary() RiskSummary {
	sorted := s.sorted()
	return RiskSummary{
		Mean:               s.Mean(),
		StdDev:             s.StdDev(),
		SuccessProbability: s.SuccessProbability(),
		FailureProbability: s.FailureProbability(),
		Percentile5:        percentile(sorted, 5),
		Percentile95:       percentile(sorted, 95),
		Simulations:        len(s.outcomes),
	}
}

// Decision is the recommendation drawn from a RiskSummary.
type Decision int

const (
	Reject Decision = iota
	Analyze
	Accept
)

func (d Decision) String() string {
	switch d {
	case Accept:
		return "accept"
	case Analyze:
		return "analyze"
	default:
		return "reject"
	}
}

// Decision accepts projects with a positive expected NPV and a success
// probability above 70%, asks for more analysis between 50% and 70%, and
// rejects the others.
func (r RiskSummary) Decision() Decision {
	switch {
	case r.Mean > 0 && r.SuccessProbability > 0.7:
		return Accept
	case r.Mean > 0 && r.SuccessProbability >= 0.5:
		return Analyze
	default:
		return Reject
	}
}

// Histogram counts outcomes in contiguous bins. Bin i covers
// [Dividers[i], Dividers[i+1]).
type Histogram struct {
	Dividers []float64
	Counts   []float64
}

// Histogram bins the outcomes into bins equal width bins spanning their
// range. bins <= 0 selects min(50, max(20, log2(n)+1)) bins.
func (s *Simulation) Histogram(bins int) Histogram {
	n := len(s.outcomes)
	if n == 0 {
		return Histogram{}
	}
	if bins <= 0 {
		bins = min(50, max(20, int(math.Log2(float64(n)))+1))
	}
	sorted := s.sorted()
	lo, hi := sorted[0], sorted[n-1]
	if lo == hi {
		return Histogram{Dividers: []float64{lo, math.Nextafter(hi, math.Inf(1))}, Counts: []float64{float64(n)}}
	}
	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	// the last bin is open on the right, include the maximum.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, sorted, nil)
	return Histogram{Dividers: dividers, Counts: counts}
}
