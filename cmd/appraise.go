package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finmath/renderer"
	"github.com/google/subcommands"
)

type appraiseCmd struct {
	flowSource
	initial float64
	signed  bool
	rate    float64
	m       int
}

func (*appraiseCmd) Name() string     { return "appraise" }
func (*appraiseCmd) Synopsis() string { return "NPV, IRR, MIRR, profitability index and payback of a project" }
func (*appraiseCmd) Usage() string {
	return `finc appraise -initial <amount> -flows <list> -rate <rate> [-m <frequency>]
finc appraise -signed -flows <list> -rate <rate>

  Appraises an investment of -initial followed by one cash flow per period.
  With -signed, the first flow is the investment itself, usually negative.

  Flows can be read from a file with -file, a JSONPath -select expression
  picks the series in a JSON document.

Usage Examples:
$ finc appraise -initial 10000 -flows 3500,4500,5500 -rate 0.10
$ finc appraise -signed -flows -10000,3500,4500,5500 -rate 0.10
$ finc appraise -initial 10000 -file project.json -select '$.flows' -rate 0.10
`
}

func (c *appraiseCmd) SetFlags(f *flag.FlagSet) {
	c.flowSource.SetFlags(f)
	f.Float64Var(&c.initial, "initial", 0, "Initial investment, paid one period before the first flow.")
	f.BoolVar(&c.signed, "signed", false, "The first flow is the signed initial investment.")
	f.Float64Var(&c.rate, "rate", 0.10, "Nominal annual discount rate.")
	f.IntVar(&c.m, "m", 0, "Compounding periods per year. Defaults to the configured frequency.")
}

// split applies the -signed convention to flows.
func split(signed bool, initial float64, flows []float64) (float64, []float64) {
	if !signed || len(flows) == 0 {
		return initial, flows
	}
	return -flows[0], flows[1:]
}

func (c *appraiseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := newEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !isSet(f, "m") {
		c.m = e.cfg.Report.Frequency
	}
	flows, err := c.load()
	if err != nil {
		return e.fail(err, "cannot read the cash flows")
	}
	initial, flows := split(c.signed, c.initial, flows)
	e.log.Debug().Float64("initial", initial).Floats64("flows", flows).Msg("appraising")

	a, err := renderer.NewAppraisal(initial, flows, c.rate, c.m, e.currency, e.cfg.SolverOptions())
	if err != nil {
		return e.fail(err, "cannot appraise the project")
	}
	if !a.IRRConverged {
		e.log.Warn().Int("iterations", a.IRRIterations).Msg("internal rate of return did not converge")
	}
	return printReport(a, func() string { return renderer.RenderAppraisal(a) })
}
