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

type loanCmd struct {
	principal   float64
	rate        float64
	periods     int
	futureValue float64
	m           int
	places      int
	summary     bool
}

func (*loanCmd) Name() string     { return "loan" }
func (*loanCmd) Synopsis() string { return "installment and amortization schedule of a fixed rate loan" }
func (*loanCmd) Usage() string {
	return `finc loan -principal <amount> -rate <rate> -periods <n> [-fv <amount>] [-m <frequency>] [-round <places>] [-summary]

  Computes the fixed installment that repays principal over n periods and
  prints the amortization schedule. The rate is per period, unless -m is
  given: it is then a nominal annual rate compounded m times a year.

  By default amounts are rounded to cents as a lender bills them, the last
  installment absorbing the rounding. Use -round -1 to keep exact amounts.

Usage Examples:
# A 100000 mortgage over 30 years at 6% a year, paid monthly.
$ finc loan -principal 100000 -rate 0.06 -m 12 -periods 360 -summary
`
}

func (c *loanCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.principal, "principal", 0, "Amount borrowed.")
	f.Float64Var(&c.rate, "rate", 0, "Interest rate per period, or nominal annual rate with -m.")
	f.IntVar(&c.periods, "periods", 0, "Number of installments.")
	f.Float64Var(&c.futureValue, "fv", 0, "Balance left after the last installment, for balloon loans.")
	f.IntVar(&c.m, "m", 0, "Installments per year when -rate is a nominal annual rate.")
	f.IntVar(&c.places, "round", 2, "Decimal places of the billed amounts, -1 for no rounding.")
	f.BoolVar(&c.summary, "summary", false, "Only print the loan summary.")
}

func (c *loanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := newEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	rate := c.rate
	if c.m > 0 {
		if rate, err = finmath.NominalToEffectivePerPeriod(c.rate, c.m); err != nil {
			return e.fail(err, "invalid rate")
		}
	}
	s, err := finmath.NewSchedule(rate, c.periods, c.principal, c.futureValue)
	if err != nil {
		return e.fail(err, "cannot compute the schedule")
	}
	if c.places >= 0 {
		s = s.Round(int32(c.places))
	}
	e.log.Debug().Float64("rate", rate).Int("periods", c.periods).Float64("payment", s.Payment()).Msg("schedule computed")
	l := renderer.NewLoan(s, e.currency)
	if c.summary {
		l.Rows = nil
	}
	return printReport(l, func() string { return renderer.RenderLoan(l, renderer.LoanRenderOptions{SkipSchedule: c.summary}) })
}
