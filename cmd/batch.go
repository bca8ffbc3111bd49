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

type batchCmd struct {
	file string
}

func (*batchCmd) Name() string     { return "batch" }
func (*batchCmd) Synopsis() string { return "analyse a book of loans" }
func (*batchCmd) Usage() string {
	return `finc batch -file <loans.json>

  Computes the installment, first period split and total cost of every loan
  of a book, and the totals of the book. The file holds parallel arrays:

    {"principals": [200000, 300000], "rates": [0.006, 0.007], "periods": [240, 180]}

  Rates are per period.
`
}

func (c *batchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "loans.json", "Path to the loan book.")
}

func (c *batchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := newEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	loans, err := input.LoadLoans(c.file)
	if err != nil {
		return e.fail(err, "cannot read the loans")
	}
	b, err := loans.Analyze()
	if err != nil {
		return e.fail(err, "cannot analyse the loans")
	}
	e.log.Debug().Int("loans", b.Len()).Msg("loan book analysed")
	data := struct {
		Loans  *finmath.LoanBatch      `json:"loans"`
		Totals finmath.PortfolioTotals `json:"totals"`
	}{b, b.Totals()}
	return printReport(data, func() string { return renderer.BatchMarkdown(b, e.currency) })
}
