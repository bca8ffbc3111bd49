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

type ratesCmd struct {
	nominal   float64
	perPeriod float64
	m         int
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "convert between nominal, per period and effective rates" }
func (*ratesCmd) Usage() string {
	return `finc rates [-nominal <rate>] [-per-period <rate>] [-m <frequency>]

  Converts a nominal annual rate compounded m times a year into its rate per
  period and its effective annual rate. With -per-period, also annualizes a
  rate per period by compounding.

Usage Examples:
# A 12% nominal rate compounded monthly.
$ finc rates -nominal 0.12 -m 12
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.nominal, "nominal", 0, "Nominal annual rate (0.12 for 12%).")
	f.Float64Var(&c.perPeriod, "per-period", 0, "Rate per period to annualize.")
	f.IntVar(&c.m, "m", 0, "Compounding periods per year. Defaults to the configured frequency.")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := newEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	m := c.m
	if !isSet(f, "m") {
		m = e.cfg.Report.Frequency
	}

	perPeriod, err := finmath.NominalToEffectivePerPeriod(c.nominal, m)
	if err != nil {
		return e.fail(err, "invalid rate")
	}
	ear, err := finmath.EffectiveAnnualRate(c.nominal, m)
	if err != nil {
		return e.fail(err, "invalid rate")
	}
	figures := []renderer.Figure{
		{Label: "Nominal Annual Rate", Value: finmath.PercentOf(c.nominal).String()},
		{Label: "Compounding Periods per Year", Value: fmt.Sprint(m)},
		{Label: "Rate per Period", Value: fmt.Sprintf("%.6f%%", 100*perPeriod)},
		{Label: "Effective Annual Rate", Value: finmath.PercentOf(ear).String()},
	}
	if isSet(f, "per-period") {
		annual, err := finmath.AnnualizedRate(c.perPeriod, m)
		if err != nil {
			return e.fail(err, "invalid rate")
		}
		figures = append(figures, renderer.Figure{Label: "Annualized from " + finmath.PercentOf(c.perPeriod).String() + " per Period", Value: finmath.PercentOf(annual).String()})
	}
	return printReport(figures, func() string { return renderer.FiguresMarkdown("Rates", figures...) })
}
