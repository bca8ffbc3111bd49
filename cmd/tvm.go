package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finmath"
	"github.com/etnz/finmath/input"
	"github.com/etnz/finmath/renderer"
	"github.com/google/subcommands"
)

type tvmCmd struct {
	amount string
	rate   string
	years  string
	m      string
	future bool
}

func (*tvmCmd) Name() string     { return "tvm" }
func (*tvmCmd) Synopsis() string { return "present or future value of a single amount" }
func (*tvmCmd) Usage() string {
	return `finc tvm -amount <amount> -rate <rate> -years <years> [-m <frequency>] [-future]

  Discounts an amount received in some years to its present value, or with
  -future compounds an amount invested today to its future value.

  Every parameter accepts a list: lists are evaluated element by element and
  must share the same length, a single value applies to every element.

Usage Examples:
# What 1000 in 10 years is worth today at 5%.
$ finc tvm -amount 1000 -rate 0.05 -years 10

# The same amount at several rates.
$ finc tvm -amount 1000 -rate 0.03,0.05,0.07 -years 10
`
}

func (c *tvmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount, or list of amounts.")
	f.StringVar(&c.rate, "rate", "", "Nominal annual rate, or list of rates.")
	f.StringVar(&c.years, "years", "", "Number of years, or list of durations.")
	f.StringVar(&c.m, "m", "", "Compounding periods per year, or list of frequencies. Defaults to the configured frequency.")
	f.BoolVar(&c.future, "future", false, "Compute the future value instead of the present value.")
}

// array parses a flag value: one number is a scalar, several are a vector.
func array(name, s string) (finmath.Array, error) {
	values, err := input.ParseFlows(s)
	if err != nil {
		return finmath.Array{}, fmt.Errorf("-%s: %w", name, err)
	}
	if len(values) == 1 {
		return finmath.S(values[0]), nil
	}
	return finmath.A(values...), nil
}

func (c *tvmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := newEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.m == "" {
		c.m = fmt.Sprint(e.cfg.Report.Frequency)
	}
	var args [4]finmath.Array
	for i, p := range []struct{ name, value string }{{"amount", c.amount}, {"rate", c.rate}, {"years", c.years}, {"m", c.m}} {
		if args[i], err = array(p.name, p.value); err != nil {
			return e.fail(err, "invalid parameter")
		}
	}

	compute, title := finmath.PresentValue, "Present Value"
	if c.future {
		compute, title = finmath.FutureValue, "Future Value"
	}
	result, err := compute(args[0], args[1], args[2], args[3])
	if err != nil {
		return e.fail(err, "cannot compute "+title)
	}

	var figures []renderer.Figure
	for i := 0; i < result.Len(); i++ {
		label := fmt.Sprintf("%s at %s for %g years, m=%g",
			finmath.M(args[0].At(i), e.currency), finmath.PercentOf(args[1].At(i)), args[2].At(i), args[3].At(i))
		figures = append(figures, renderer.Figure{Label: label, Value: finmath.M(result.At(i), e.currency).String()})
	}
	return printReport(figures, func() string { return renderer.FiguresMarkdown(title, figures...) })
}
