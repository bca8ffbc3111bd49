package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finmath"
	"github.com/etnz/finmath/renderer"
	"github.com/google/subcommands"
)

type sensitivityCmd struct {
	flowSource
	initial float64
	signed  bool
	from    float64
	to      float64
	steps   int
	m       int
}

func (*sensitivityCmd) Name() string     { return "sensitivity" }
func (*sensitivityCmd) Synopsis() string { return "NPV of a project over a range of discount rates" }
func (*sensitivityCmd) Usage() string {
	return `finc sensitivity -initial <amount> -flows <list> [-from <rate>] [-to <rate>] [-steps <n>]

  Evaluates the net present value of a project at evenly spaced discount
  rates. The rates where the NPV changes sign are highlighted: the internal
  rate of return lies between them.

Usage Examples:
$ finc sensitivity -initial 10000 -flows 3500,4500,5500 -from 0.05 -to 0.25 -steps 9
`
}

func (c *sensitivityCmd) SetFlags(f *flag.FlagSet) {
	c.flowSource.SetFlags(f)
	f.Float64Var(&c.initial, "initial", 0, "Initial investment, paid one period before the first flow.")
	f.BoolVar(&c.signed, "signed", false, "The first flow is the signed initial investment.")
	f.Float64Var(&c.from, "from", 0.05, "Lowest rate.")
	f.Float64Var(&c.to, "to", 0.25, "Highest rate.")
	f.IntVar(&c.steps, "steps", 9, "Number of rates.")
	f.IntVar(&c.m, "m", 0, "Compounding periods per year. Defaults to the configured frequency.")
}

func (c *sensitivityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	rates := finmath.RateRange(c.from, c.to, c.steps)
	npv, err := finmath.SensitivityNPV(initial, flows, rates, 0, c.m)
	if err != nil {
		return e.fail(err, "cannot compute the sensitivity")
	}
	data := struct {
		Rates []float64 `json:"rates"`
		NPV   []float64 `json:"npv"`
	}{rates, npv}
	return printReport(data, func() string { return renderer.SensitivityMarkdown(rates, npv, e.currency) })
}
