package renderer

import (
	"errors"
	"math"

	"github.com/etnz/finmath"
)

// Appraisal holds the data of an investment appraisal report.
// Amounts are Money so that they already carry their renderers (SignedString etc.)
type Appraisal struct {
	Currency  string          `json:"currency"`
	Rate      finmath.Percent `json:"rate"`      // nominal annual discount rate
	Frequency int             `json:"frequency"` // compounding periods per year
	Initial   finmath.Money   `json:"initial"`
	Flows     []AppraisalFlow `json:"flows"`

	NPV                finmath.Money   `json:"npv"`
	IRR                finmath.Percent `json:"irr"`
	IRRConverged       bool            `json:"irrConverged"`
	IRRIterations      int             `json:"irrIterations,omitempty"`
	MIRR               finmath.Percent `json:"mirr"`
	HasMIRR            bool            `json:"hasMirr"`
	ProfitabilityIndex float64         `json:"profitabilityIndex"`
	Payback            float64         `json:"payback"`
	Recovered          bool            `json:"recovered"`
	Viable             bool            `json:"viable"`
}

// AppraisalFlow is one period of the appraised project.
type AppraisalFlow struct {
	Period     int           `json:"period"`
	Amount     finmath.Money `json:"amount"`
	Present    finmath.Money `json:"present"`    // discounted to period 0
	Cumulative finmath.Money `json:"cumulative"` // undiscounted, net of the investment
}

// NewAppraisal appraises the investment of initial followed by flows at the
// nominal annual rate compounded m times a year.
//
// A rate of return search that does not converge is not an error: the
// report says so and the other metrics are still computed.
func NewAppraisal(initial float64, flows []float64, rate float64, m int, currency string, opts finmath.SolverOptions) (*Appraisal, error) {
	npv, err := finmath.NetPresentValue(initial, flows, rate, 0, m)
	if err != nil {
		return nil, err
	}
	a := &Appraisal{
		Currency:  currency,
		Rate:      finmath.PercentOf(rate),
		Frequency: m,
		Initial:   finmath.M(initial, currency),
		Flows:     make([]AppraisalFlow, len(flows)),
		NPV:       finmath.M(npv, currency),
		Viable:    npv > 0,
	}

	cumulative := -initial
	for i, cf := range flows {
		pv, err := finmath.PresentValue(finmath.S(cf), finmath.S(rate), finmath.S(float64(i+1)/float64(m)), finmath.S(m))
		if err != nil {
			return nil, err
		}
		v, _ := pv.Float()
		cumulative += cf
		a.Flows[i] = AppraisalFlow{
			Period:     i + 1,
			Amount:     finmath.M(cf, currency),
			Present:    finmath.M(v, currency),
			Cumulative: finmath.M(cumulative, currency),
		}
	}

	irr, err := finmath.InternalRateOfReturn(initial, flows, opts)
	var ce *finmath.ConvergenceError
	switch {
	case errors.As(err, &ce):
		a.IRRIterations = ce.Iterations
	case err != nil:
		return nil, err
	default:
		a.IRR, a.IRRConverged = finmath.PercentOf(irr), true
	}

	// the MIRR finances and reinvests at the discount rate, per period.
	series := append([]float64{-initial}, flows...)
	if mirr, err := finmath.ModifiedInternalRateOfReturn(series, rate/float64(m), rate/float64(m)); err == nil {
		a.MIRR, a.HasMIRR = finmath.PercentOf(mirr), true
	}

	if initial != 0 {
		pi, err := finmath.ProfitabilityIndex(initial, flows, rate, 0, m)
		if err != nil {
			return nil, err
		}
		a.ProfitabilityIndex = pi
	}

	// Payback stays 0 when never recovered, JSON has no infinity.
	if payback := finmath.PaybackPeriod(initial, flows); !math.IsInf(payback, 1) {
		a.Payback, a.Recovered = payback, true
	}
	return a, nil
}
