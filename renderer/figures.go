package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
)

// Figure is a labelled result of a one-shot computation.
type Figure struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FiguresMarkdown renders a titled two column table of figures, the output
// of the rates, tvm and annuity commands.
func FiguresMarkdown(title string, figures ...Figure) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Figure", "Value"},
	}
	for _, f := range figures {
		table.Rows = append(table.Rows, []string{f.Label, f.Value})
	}
	doc.Table(table)
	return doc.String()
}
