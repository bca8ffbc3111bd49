// Package input reads the cash flow series and loan books the finc commands
// operate on.
//
// Flows come either inline, as a comma or space separated list, or from a
// file: plain text and CSV files hold such a list, JSON documents hold any
// structure and a JSONPath expression selects the series in it.
package input

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/finmath"
)

// DefaultSelector selects the whole JSON document.
const DefaultSelector = "$"

// ParseFlows parses a list of numbers separated by commas, semicolons or
// white space, like "-10000, 3500 4500;5500".
func ParseFlows(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no cash flow in %q", s)
	}
	flows := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("cash flow #%d %q: %w", i+1, f, err)
		}
		flows[i] = v
	}
	return flows, nil
}

// LoadFlows reads a cash flow series from path. JSON files (.json) are
// queried with the JSONPath selector, DefaultSelector if empty; any other
// file is parsed with ParseFlows.
func LoadFlows(path, selector string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read flows: %w", err)
	}
	if !isJSON(path) {
		flows, err := ParseFlows(string(data))
		if err != nil {
			return nil, fmt.Errorf("could not parse %q: %w", path, err)
		}
		return flows, nil
	}
	flows, err := SelectFlows(data, selector)
	if err != nil {
		return nil, fmt.Errorf("could not load flows from %q: %w", path, err)
	}
	return flows, nil
}

// SelectFlows decodes a JSON document and returns the numeric series the
// JSONPath selector points to.
func SelectFlows(data []byte, selector string) ([]float64, error) {
	if selector == "" {
		selector = DefaultSelector
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	val, err := jsonpath.Get(selector, doc)
	if err != nil {
		return nil, fmt.Errorf("selector %q: %w", selector, err)
	}
	// a wildcard selector returns a list holding the single matching array.
	if list, ok := val.([]any); ok && len(list) == 1 {
		if inner, ok := list[0].([]any); ok {
			val = inner
		}
	}
	flows, err := numbers(val)
	if err != nil {
		return nil, fmt.Errorf("selector %q: %w", selector, err)
	}
	if len(flows) == 0 {
		return nil, fmt.Errorf("selector %q: no cash flow", selector)
	}
	return flows, nil
}

// numbers converts a decoded JSON value to a series. Numeric strings are
// accepted, as some exports quote every cell.
func numbers(val any) ([]float64, error) {
	switch v := val.(type) {
	case float64:
		return []float64{v}, nil
	case string:
		return ParseFlows(v)
	case []any:
		flows := make([]float64, 0, len(v))
		for i, e := range v {
			switch x := e.(type) {
			case float64:
				flows = append(flows, x)
			case string:
				f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
				if err != nil {
					return nil, fmt.Errorf("element %d: %w", i, err)
				}
				flows = append(flows, f)
			default:
				return nil, fmt.Errorf("element %d: not a number: %v", i, e)
			}
		}
		return flows, nil
	default:
		return nil, fmt.Errorf("not a list of numbers: %v", val)
	}
}

func isJSON(path string) bool { return strings.EqualFold(filepath.Ext(path), ".json") }

// Loans is a loan book in parallel arrays, the JSON shape read by LoadLoans:
//
//	{"principals": [200000, 300000], "rates": [0.006, 0.007], "periods": [240, 180]}
//
// Rates are per period.
type Loans struct {
	Principals []float64 `json:"principals"`
	Rates      []float64 `json:"rates"`
	Periods    []float64 `json:"periods"`
}

// LoadLoans reads a loan book from a JSON file.
func LoadLoans(path string) (*Loans, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read loans: %w", err)
	}
	var l Loans
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("could not decode loans %q: %w", path, err)
	}
	if len(l.Principals) == 0 {
		return nil, fmt.Errorf("loans %q: no principal", path)
	}
	return &l, nil
}

// Analyze runs the batch loan analysis on the book.
func (l *Loans) Analyze() (*finmath.LoanBatch, error) {
	return finmath.BatchLoanAnalysis(l.Principals, l.Rates, l.Periods)
}
