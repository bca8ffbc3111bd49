package cmd

import (
	"flag"

	"github.com/etnz/finmath/input"
)

// flowSource are the flags selecting a cash flow series.
type flowSource struct {
	list     string
	file     string
	selector string
}

func (s *flowSource) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.list, "flows", "", "Cash flows, comma or space separated, one per period.")
	f.StringVar(&s.file, "file", "", "Read the cash flows from a file (.json, .csv or .txt). Overrides -flows.")
	f.StringVar(&s.selector, "select", input.DefaultSelector, "JSONPath expression selecting the flows in a .json file.")
}

func (s *flowSource) load() ([]float64, error) {
	switch {
	case s.file != "":
		return input.LoadFlows(s.file, s.selector)
	case s.list != "":
		return input.ParseFlows(s.list)
	default:
		return nil, errNoFlows
	}
}
