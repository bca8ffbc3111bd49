package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/finmath"
	md "github.com/nao1215/markdown"
)

// SensitivityMarkdown renders the NPV of a project at each rate of rates.
// npv[i] is the value at rates[i]. The row where the NPV changes sign is
// highlighted, it brackets the internal rate of return.
func SensitivityMarkdown(rates, npv []float64, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("NPV Sensitivity to the Discount Rate")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight},
		Header:    []string{"Rate", "Net Present Value"},
	}
	for i, r := range rates {
		rate := finmath.PercentOf(r).String()
		value := finmath.M(npv[i], currency).SignedString()
		if i > 0 && (npv[i-1] >= 0) != (npv[i] >= 0) {
			rate, value = md.Bold(rate), md.Bold(value)
		}
		table.Rows = append(table.Rows, []string{rate, value})
	}
	doc.Table(table)

	if len(rates) > 0 {
		doc.PlainText(fmt.Sprintf("%d rates from %s to %s.", len(rates), finmath.PercentOf(rates[0]), finmath.PercentOf(rates[len(rates)-1])))
	}
	return doc.String()
}
