package finmath

import (
	"errors"
	"testing"
)

func TestBatchLoanAnalysis(t *testing.T) {
	b, err := BatchLoanAnalysis(
		[]float64{200000, 300000, 100000},
		[]float64{0.006, 0.007, 0.005},
		[]float64{240, 180, 360},
	)
	if err != nil {
		t.Fatalf("BatchLoanAnalysis() error = %v", err)
	}
	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}
	if d := diff(b.Payments, []float64{1574.698597928021, 2936.65989734125, 599.5505251527569}); d != "" {
		t.Errorf("Payments mismatch (-want +got):\n%s", d)
	}
	if d := diff(b.FirstInterest, []float64{1200, 2100, 500}); d != "" {
		t.Errorf("FirstInterest mismatch (-want +got):\n%s", d)
	}
	if !near(b.TotalPaid[2], 215838.1890549925, 1e-6) {
		t.Errorf("TotalPaid[2] = %v, want 215838.19", b.TotalPaid[2])
	}
	if !near(b.InterestRatio[2], 1.1583818905499248, 1e-9) {
		t.Errorf("InterestRatio[2] = %v, want 1.158", b.InterestRatio[2])
	}

	// each row is internally consistent.
	for i := range b.Principals {
		if !near(b.FirstInterest[i]+b.FirstPrincipal[i], b.Payments[i], 1e-9) {
			t.Errorf("row %d: interest %v + principal %v != payment %v", i, b.FirstInterest[i], b.FirstPrincipal[i], b.Payments[i])
		}
		if !near(b.TotalInterest[i], b.TotalPaid[i]-b.Principals[i], 1e-6) {
			t.Errorf("row %d: total interest %v inconsistent", i, b.TotalInterest[i])
		}
	}

	m := b.Map()
	for _, key := range []string{"payments", "first_interest", "first_principal", "total_paid", "total_interest", "interest_ratio"} {
		if len(m[key]) != 3 {
			t.Errorf("Map()[%q] has %d values, want 3", key, len(m[key]))
		}
	}
}

func TestBatchLoanAnalysis_Totals(t *testing.T) {
	b, err := BatchLoanAnalysis([]float64{100000, 100000}, []float64{0.005, 0.005}, []float64{360, 360})
	if err != nil {
		t.Fatalf("BatchLoanAnalysis() error = %v", err)
	}
	got := b.Totals()
	want := PortfolioTotals{
		Principal:     200000,
		Payments:      2 * 599.5505251527569,
		TotalPaid:     2 * 215838.1890549925,
		TotalInterest: 2 * 115838.1890549925,
		InterestRatio: 1.158381890549925,
	}
	if d := diff(got, want); d != "" {
		t.Errorf("Totals() mismatch (-want +got):\n%s", d)
	}
}

func TestBatchLoanAnalysis_Errors(t *testing.T) {
	_, err := BatchLoanAnalysis([]float64{1, 2}, []float64{0.1}, []float64{10, 10})
	if !errors.Is(err, ErrShape) {
		t.Errorf("length mismatch: error = %v, want ErrShape", err)
	}
	_, err = BatchLoanAnalysis([]float64{0}, []float64{0.1}, []float64{10})
	if !errors.Is(err, ErrDomain) {
		t.Errorf("zero principal: error = %v, want ErrDomain", err)
	}
	_, err = BatchLoanAnalysis([]float64{1000}, []float64{0.1}, []float64{0})
	if !errors.Is(err, ErrDomain) {
		t.Errorf("zero periods: error = %v, want ErrDomain", err)
	}
}
