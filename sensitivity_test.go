package finmath

import (
	"errors"
	"testing"
)

func TestSensitivityNPV(t *testing.T) {
	flows := []float64{3500, 4500, 5500}
	rates := RateRange(0.05, 0.25, 9)
	for _, m := range []int{1, 4, 12} {
		got, err := SensitivityNPV(10000, flows, rates, 0, m)
		if err != nil {
			t.Fatalf("SensitivityNPV(m=%d) error = %v", m, err)
		}
		if len(got) != len(rates) {
			t.Fatalf("SensitivityNPV(m=%d) returned %d values, want %d", m, len(got), len(rates))
		}
		for i, r := range rates {
			want, err := NetPresentValue(10000, flows, r, 0, m)
			if err != nil {
				t.Fatal(err)
			}
			if !near(got[i], want, 1e-9) {
				t.Errorf("SensitivityNPV(m=%d)[%v] = %v, want %v", m, r, got[i], want)
			}
		}
	}
}

func TestSensitivityNPV_Horizon(t *testing.T) {
	got, err := SensitivityNPV(10000, []float64{3500, 4500, 5500}, []float64{0.10}, 2, 1)
	if err != nil {
		t.Fatalf("SensitivityNPV() error = %v", err)
	}
	if !near(got[0], -3099.173553719009, 1e-8) {
		t.Errorf("SensitivityNPV() = %v, want -3099.17", got[0])
	}
}

func TestSensitivityNPV_Errors(t *testing.T) {
	if _, err := SensitivityNPV(100, []float64{50}, []float64{0.1, -1}, 0, 1); !errors.Is(err, ErrDomain) {
		t.Errorf("rate -1: error = %v, want ErrDomain", err)
	}
	if _, err := SensitivityNPV(100, []float64{50}, []float64{0.1}, 0, 0); !errors.Is(err, ErrDomain) {
		t.Errorf("m=0: error = %v, want ErrDomain", err)
	}
	got, err := SensitivityNPV(100, []float64{50}, nil, 0, 1)
	if err != nil || len(got) != 0 {
		t.Errorf("SensitivityNPV(no rates) = %v, %v, want empty", got, err)
	}
}

func TestRateRange(t *testing.T) {
	tests := []struct {
		name      string
		low, high float64
		n         int
		want      []float64
	}{
		{"empty", 0, 1, 0, nil},
		{"single", 0.05, 0.25, 1, []float64{0.05}},
		{"bounds", 0.05, 0.25, 2, []float64{0.05, 0.25}},
		{"five", 0, 0.2, 5, []float64{0, 0.05, 0.1, 0.15, 0.2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := diff(RateRange(tt.low, tt.high, tt.n), tt.want); d != "" {
				t.Errorf("RateRange() mismatch (-want +got):\n%s", d)
			}
		})
	}
}
