package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/finmath"
	md "github.com/nao1215/markdown"
)

// BatchMarkdown renders a loan book analysis: one row per loan and the
// portfolio totals.
func BatchMarkdown(b *finmath.LoanBatch, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Loan Portfolio")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"#", "Principal", "Rate", "Periods", "Payment", "First Interest", "Total Interest", "Interest Ratio"},
	}
	m := func(v float64) string { return finmath.M(v, currency).String() }
	for i := 0; i < b.Len(); i++ {
		table.Rows = append(table.Rows, []string{
			fmt.Sprint(i + 1),
			m(b.Principals[i]),
			finmath.PercentOf(b.Rates[i]).String(),
			fmt.Sprintf("%.0f", b.Periods[i]),
			m(b.Payments[i]),
			m(b.FirstInterest[i]),
			m(b.TotalInterest[i]),
			finmath.PercentOf(b.InterestRatio[i]).String(),
		})
	}
	doc.Table(table)

	t := b.Totals()
	doc.H2("Totals")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Principal", m(t.Principal)},
			{"Periodic Payments", m(t.Payments)},
			{"Total Paid", m(t.TotalPaid)},
			{"Total Interest", md.Bold(m(t.TotalInterest))},
			{"Interest Ratio", finmath.PercentOf(t.InterestRatio).String()},
		},
	})
	return doc.String()
}
