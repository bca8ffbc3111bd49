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

type annuityCmd struct {
	payment float64
	rate    float64
	years   float64
	m       int
}

func (*annuityCmd) Name() string     { return "annuity" }
func (*annuityCmd) Synopsis() string { return "present and future value of a level annuity" }
func (*annuityCmd) Usage() string {
	return `finc annuity -payment <amount> -rate <rate> -years <years> [-m <frequency>]

  Values a stream of equal payments made at the end of each period, m times
  a year, at a nominal annual rate.

Usage Examples:
# 100 a year for 10 years at 5%.
$ finc annuity -payment 100 -rate 0.05 -years 10
`
}

func (c *annuityCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.payment, "payment", 0, "Payment made each period.")
	f.Float64Var(&c.rate, "rate", 0, "Nominal annual rate.")
	f.Float64Var(&c.years, "years", 0, "Duration in years.")
	f.IntVar(&c.m, "m", 0, "Payments per year. Defaults to the configured frequency.")
}

func (c *annuityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := newEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !isSet(f, "m") {
		c.m = e.cfg.Report.Frequency
	}
	pv, err := finmath.PresentValueAnnuity(c.payment, c.rate, c.years, c.m)
	if err != nil {
		return e.fail(err, "cannot value the annuity")
	}
	fv, err := finmath.FutureValueAnnuity(c.payment, c.rate, c.years, c.m)
	if err != nil {
		return e.fail(err, "cannot value the annuity")
	}
	figures := []renderer.Figure{
		{Label: "Payment", Value: finmath.M(c.payment, e.currency).String()},
		{Label: "Rate", Value: finmath.PercentOf(c.rate).String()},
		{Label: "Payments", Value: fmt.Sprintf("%g", c.years*float64(c.m))},
		{Label: "Present Value", Value: finmath.M(pv, e.currency).String()},
		{Label: "Future Value", Value: finmath.M(fv, e.currency).String()},
	}
	return printReport(figures, func() string { return renderer.FiguresMarkdown("Annuity", figures...) })
}
