package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finmath"
	"github.com/etnz/finmath/config"
	"github.com/etnz/finmath/renderer"
	"github.com/google/subcommands"
)

type monteCarloCmd struct {
	flowSource
	mean        float64
	rateVol     float64
	flowVol     float64
	simulations int
	seed        uint64
	bins        int
}

func (*monteCarloCmd) Name() string     { return "montecarlo" }
func (*monteCarloCmd) Synopsis() string { return "simulate the NPV distribution of a risky project" }
func (*monteCarloCmd) Usage() string {
	return `finc montecarlo -flows <list> [-rate <mean>] [-rate-vol <sd>] [-flow-vol <sd>] [-n <simulations>] [-seed <seed>]

  Simulates the net present value of a signed cash flow series, the first
  flow being the initial investment at t=0. Each simulation draws a discount
  rate and every future flow from normal distributions.

  Unless given on the command line, the parameters come from the
  configuration file. The same seed always gives the same report.

Usage Examples:
$ finc montecarlo -flows -10000,3500,4500,5500 -rate 0.10 -flow-vol 0.15 -rate-vol 0.02
`
}

func (c *monteCarloCmd) SetFlags(f *flag.FlagSet) {
	d := config.Default().Simulation
	c.flowSource.SetFlags(f)
	f.Float64Var(&c.mean, "rate", d.DiscountRateMean, "Expected discount rate.")
	f.Float64Var(&c.rateVol, "rate-vol", d.RateVolatility, "Standard deviation of the discount rate.")
	f.Float64Var(&c.flowVol, "flow-vol", d.CashFlowVolatility, "Standard deviation of each flow, relative to it.")
	f.IntVar(&c.simulations, "n", d.Simulations, "Number of simulations.")
	f.Uint64Var(&c.seed, "seed", d.Seed, "Seed of the random generator.")
	f.IntVar(&c.bins, "bins", 0, "Histogram bins, 0 for automatic, -1 for no histogram.")
}

// model layers the command line flags over the configured risk model.
func (c *monteCarloCmd) model(f *flag.FlagSet, cfg *config.Config) finmath.RiskModel {
	m := cfg.RiskModel()
	if isSet(f, "rate") {
		m.DiscountRateMean = c.mean
	}
	if isSet(f, "rate-vol") {
		m.RateVolatility = c.rateVol
	}
	if isSet(f, "flow-vol") {
		m.CashFlowVolatility = c.flowVol
	}
	if isSet(f, "n") {
		m.Simulations = c.simulations
	}
	if isSet(f, "seed") {
		m.Seed = c.seed
	}
	return m
}

func (c *monteCarloCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := newEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	flows, err := c.load()
	if err != nil {
		return e.fail(err, "cannot read the cash flows")
	}
	model := c.model(f, e.cfg)
	bins := c.bins
	if !isSet(f, "bins") {
		bins = e.cfg.Report.Bins
	}

	e.log.Debug().Uint64("seed", model.Seed).Int("simulations", model.Simulations).Msg("simulating")
	sim, err := finmath.MonteCarloNPV(flows, model)
	if err != nil {
		return e.fail(err, "cannot simulate")
	}
	r := renderer.NewRisk(sim, model, bins, e.currency)
	return printReport(r, func() string { return renderer.RenderRisk(r) })
}
