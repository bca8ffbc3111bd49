package input

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/finmath"
	"github.com/google/go-cmp/cmp"
)

func TestParseFlows(t *testing.T) {
	tests := []struct {
		input string
		want  []float64
	}{
		{"-10000,3500,4500,5500", []float64{-10000, 3500, 4500, 5500}},
		{"3000 4000\t5000", []float64{3000, 4000, 5000}},
		{" 1.5; 2e3 ,\n-0.25 ", []float64{1.5, 2000, -0.25}},
	}
	for _, tt := range tests {
		got, err := ParseFlows(tt.input)
		if err != nil {
			t.Errorf("ParseFlows(%q) error = %v", tt.input, err)
			continue
		}
		if d := cmp.Diff(tt.want, got); d != "" {
			t.Errorf("ParseFlows(%q) mismatch (-want +got):\n%s", tt.input, d)
		}
	}

	for _, bad := range []string{"", " , ", "1,two,3"} {
		if _, err := ParseFlows(bad); err == nil {
			t.Errorf("ParseFlows(%q) expected an error", bad)
		}
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFlows(t *testing.T) {
	doc := `{"project": {"name": "plant", "flows": [-10000, 3500, "4500", 5500]}, "rate": 0.1}`
	tests := []struct {
		name     string
		file     string
		content  string
		selector string
		want     []float64
	}{
		{"text", "flows.txt", "-10000\n3500\n4500\n5500\n", "", []float64{-10000, 3500, 4500, 5500}},
		{"csv", "flows.csv", "3000,4000,5000\n", "", []float64{3000, 4000, 5000}},
		{"json root", "flows.json", "[1, 2, 3]", "", []float64{1, 2, 3}},
		{"json path", "project.json", doc, "$.project.flows", []float64{-10000, 3500, 4500, 5500}},
		{"json slice", "project.json", doc, "$.project.flows[1:]", []float64{3500, 4500, 5500}},
		{"json scalar", "project.json", doc, "$.rate", []float64{0.1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadFlows(writeFile(t, tt.file, tt.content), tt.selector)
			if err != nil {
				t.Fatalf("LoadFlows() error = %v", err)
			}
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("LoadFlows() mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestLoadFlows_Errors(t *testing.T) {
	doc := `{"project": {"name": "plant", "flows": [1, 2]}}`
	tests := []struct {
		name     string
		content  string
		selector string
	}{
		{"invalid json", "{", ""},
		{"missing key", doc, "$.project.costs"},
		{"not numbers", doc, "$.project"},
		{"not a number", doc, "$.project.name"},
		{"empty list", `{"flows": []}`, "$.flows"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFlows(writeFile(t, "doc.json", tt.content), tt.selector); err == nil {
				t.Error("LoadFlows() expected an error")
			}
		})
	}

	_, err := LoadFlows(filepath.Join(t.TempDir(), "missing.txt"), "")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFlows(missing) error = %v, want a not exist error", err)
	}
}

func TestLoadLoans(t *testing.T) {
	path := writeFile(t, "loans.json", `{
		"principals": [200000, 300000, 100000],
		"rates": [0.006, 0.007, 0.005],
		"periods": [240, 180, 360]
	}`)
	loans, err := LoadLoans(path)
	if err != nil {
		t.Fatalf("LoadLoans() error = %v", err)
	}
	batch, err := loans.Analyze()
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if batch.Len() != 3 {
		t.Errorf("Len() = %d, want 3", batch.Len())
	}

	bad := writeFile(t, "bad.json", `{"principals": [1, 2], "rates": [0.1], "periods": [1, 2]}`)
	loans, err = LoadLoans(bad)
	if err != nil {
		t.Fatalf("LoadLoans() error = %v", err)
	}
	if _, err := loans.Analyze(); !errors.Is(err, finmath.ErrShape) {
		t.Errorf("Analyze() error = %v, want ErrShape", err)
	}

	if _, err := LoadLoans(writeFile(t, "empty.json", `{}`)); err == nil {
		t.Error("LoadLoans(empty) expected an error")
	}
}
