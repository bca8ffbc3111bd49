package finmath

import (
	"errors"
	"math"
	"testing"
)

func TestNetPresentValue(t *testing.T) {
	tests := []struct {
		name    string
		initial float64
		flows   []float64
		rate    float64
		periods int
		m       int
		want    float64
	}{
		{"not viable", 10000, []float64{3000, 4000, 5000}, 0.10, 3, 1, -210.36814425244302},
		{"viable", 10000, []float64{3500, 4500, 5500}, 0.10, 3, 1, 1033.0578512396678},
		{"default horizon", 10000, []float64{3500, 4500, 5500}, 0.10, 0, 1, 1033.0578512396678},
		{"truncated horizon", 10000, []float64{3500, 4500, 5500}, 0.10, 2, 1, -3099.173553719009},
		{"horizon beyond flows", 10000, []float64{3500, 4500, 5500}, 0.10, 5, 1, 1033.0578512396678},
		{"monthly compounding", 10000, []float64{3500, 4500, 5500}, 0.10, 3, 12, 3261.761802162049},
		{"zero rate", 100, []float64{50, 50, 50}, 0, 0, 1, 50},
		{"no flows", 100, nil, 0.1, 0, 1, -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NetPresentValue(tt.initial, tt.flows, tt.rate, tt.periods, tt.m)
			if err != nil {
				t.Fatalf("NetPresentValue() error = %v", err)
			}
			if !near(got, tt.want, 1e-8) {
				t.Errorf("NetPresentValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNetPresentValue_Errors(t *testing.T) {
	if _, err := NetPresentValue(100, []float64{50}, 0.1, 0, 0); !errors.Is(err, ErrDomain) {
		t.Errorf("m=0: error = %v, want ErrDomain", err)
	}
	if _, err := NetPresentValue(100, []float64{50}, 0.1, -1, 1); !errors.Is(err, ErrDomain) {
		t.Errorf("periods=-1: error = %v, want ErrDomain", err)
	}
	if _, err := NetPresentValue(100, []float64{50}, -1, 0, 1); !errors.Is(err, ErrDomain) {
		t.Errorf("rate=-1: error = %v, want ErrDomain", err)
	}
}

// TestNetPresentValue_DecreasingInRate checks that a higher discount rate
// lowers the value of positive future flows.
func TestNetPresentValue_DecreasingInRate(t *testing.T) {
	flows := []float64{-200, 300, 0, 400}
	previous := math.Inf(1)
	for _, rate := range RateRange(-0.5, 1, 31) {
		npv, err := NetPresentValue(100, flows, rate, 0, 1)
		if err != nil {
			t.Fatal(err)
		}
		if npv >= previous {
			t.Errorf("NetPresentValue(rate=%v) = %v, not below %v", rate, npv, previous)
		}
		previous = npv
	}
}

func TestNetPresentValueSeries(t *testing.T) {
	got := NetPresentValueSeries(0.10, []float64{-1000, 300, 400, 500})
	if !near(got, -21.0368144252443, 1e-9) {
		t.Errorf("NetPresentValueSeries() = %v, want -21.04", got)
	}
	// both conventions agree once the investment is moved out of the series.
	npv, _ := NetPresentValue(1000, []float64{300, 400, 500}, 0.10, 0, 1)
	if !near(got, npv, 1e-9) {
		t.Errorf("NetPresentValueSeries() = %v, NetPresentValue() = %v", got, npv)
	}
}

func TestInternalRateOfReturn(t *testing.T) {
	tests := []struct {
		name    string
		initial float64
		flows   []float64
		want    float64
	}{
		{"positive", 10000, []float64{3500, 4500, 5500}, 0.15348838129328113},
		{"below guess", 10000, []float64{3000, 4000, 5000}, 0.08896339469334472},
		{"negative", 10000, []float64{2000, 3000, 4000}, -0.0460134054936861},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			irr, err := InternalRateOfReturn(tt.initial, tt.flows, SolverOptions{})
			if err != nil {
				t.Fatalf("InternalRateOfReturn() error = %v", err)
			}
			if !near(irr, tt.want, 1e-6) {
				t.Errorf("InternalRateOfReturn() = %v, want %v", irr, tt.want)
			}
			// the rate found zeroes the NPV.
			npv, err := NetPresentValue(tt.initial, tt.flows, irr, 0, 1)
			if err != nil {
				t.Fatal(err)
			}
			if !near(npv, 0, DefaultTolerance) {
				t.Errorf("NetPresentValue(irr) = %v, want 0", npv)
			}
		})
	}
}

func TestSolverOptions_Defaults(t *testing.T) {
	tests := []struct {
		name string
		opts SolverOptions
		want SolverOptions
	}{
		{"zero", SolverOptions{}, SolverOptions{DefaultMaxIterations, DefaultTolerance, DefaultGuess}},
		{"near zero guess", SolverOptions{Guess: 1e-9}, SolverOptions{DefaultMaxIterations, DefaultTolerance, 1e-9}},
		{"negative guess", SolverOptions{MaxIterations: 5, Tolerance: 1e-3, Guess: -0.2}, SolverOptions{5, 1e-3, -0.2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.withDefaults(); got != tt.want {
				t.Errorf("withDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}

	// a zero guess starts the search at DefaultGuess.
	flows := []float64{3500, 4500, 5500}
	zero, err := InternalRateOfReturn(10000, flows, SolverOptions{})
	if err != nil {
		t.Fatal(err)
	}
	def, err := InternalRateOfReturn(10000, flows, SolverOptions{Guess: DefaultGuess})
	if err != nil {
		t.Fatal(err)
	}
	if zero != def {
		t.Errorf("InternalRateOfReturn(Guess: 0) = %v, want %v", zero, def)
	}
}

func TestInternalRateOfReturn_NonConvergence(t *testing.T) {
	// no rate makes an all positive series worth nothing.
	irr, err := InternalRateOfReturn(-100, []float64{50, 50}, SolverOptions{MaxIterations: 20})
	if !errors.Is(err, ErrNonConvergence) {
		t.Fatalf("InternalRateOfReturn() error = %v, want ErrNonConvergence", err)
	}
	var ce *ConvergenceError
	if !errors.As(err, &ce) {
		t.Fatalf("error %T is not a *ConvergenceError", err)
	}
	if ce.Rate != irr && !(math.IsNaN(ce.Rate) && math.IsNaN(irr)) {
		t.Errorf("ConvergenceError.Rate = %v, want the returned estimate %v", ce.Rate, irr)
	}

	// no flows at all: the derivative is zero right away.
	_, err = InternalRateOfReturn(100, nil, SolverOptions{})
	if !errors.As(err, &ce) || ce.Reason != "zero derivative" || ce.Iterations != 1 {
		t.Errorf("InternalRateOfReturn(no flows) error = %v, want a zero derivative stall", err)
	}
}

func TestInternalRateOfReturnSeries(t *testing.T) {
	irr, err := InternalRateOfReturnSeries([]float64{-10000, 3500, 4500, 5500}, SolverOptions{})
	if err != nil {
		t.Fatalf("InternalRateOfReturnSeries() error = %v", err)
	}
	if !near(irr, 0.15348838129328113, 1e-6) {
		t.Errorf("InternalRateOfReturnSeries() = %v, want 15.35%%", irr)
	}
	if _, err := InternalRateOfReturnSeries(nil, SolverOptions{}); !errors.Is(err, ErrDomain) {
		t.Errorf("InternalRateOfReturnSeries(nil) error = %v, want ErrDomain", err)
	}
}

func TestModifiedInternalRateOfReturn(t *testing.T) {
	got, err := ModifiedInternalRateOfReturn([]float64{-1000, 300, 400, 500}, 0.10, 0.12)
	if err != nil {
		t.Fatalf("ModifiedInternalRateOfReturn() error = %v", err)
	}
	if !near(got, 0.09815669244631553, 1e-12) {
		t.Errorf("ModifiedInternalRateOfReturn() = %v, want 9.82%%", got)
	}

	for _, flows := range [][]float64{nil, {-1000}, {100, 200}, {-100, -200}} {
		if _, err := ModifiedInternalRateOfReturn(flows, 0.1, 0.1); !errors.Is(err, ErrDomain) {
			t.Errorf("ModifiedInternalRateOfReturn(%v) error = %v, want ErrDomain", flows, err)
		}
	}
}

func TestProfitabilityIndex(t *testing.T) {
	tests := []struct {
		name  string
		flows []float64
		want  float64
	}{
		{"viable", []float64{3500, 4500, 5500}, 1.1033057851239667},
		{"not viable", []float64{2500, 3000, 3500}, 0.7381667918858},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProfitabilityIndex(10000, tt.flows, 0.10, 3, 1)
			if err != nil {
				t.Fatalf("ProfitabilityIndex() error = %v", err)
			}
			if !near(got, tt.want, 1e-12) {
				t.Errorf("ProfitabilityIndex() = %v, want %v", got, tt.want)
			}
		})
	}
	if _, err := ProfitabilityIndex(0, []float64{1}, 0.1, 0, 1); !errors.Is(err, ErrDomain) {
		t.Errorf("ProfitabilityIndex(initial=0) error = %v, want ErrDomain", err)
	}
}

func TestPaybackPeriod(t *testing.T) {
	tests := []struct {
		name    string
		initial float64
		flows   []float64
		want    float64
	}{
		{"within third period", 10000, []float64{3000, 4000, 5000}, 2.6},
		{"interpolated", 8000, []float64{2500, 3000, 4000}, 2.625},
		{"exact end of period", 7000, []float64{3000, 4000, 5000}, 2},
		{"first period", 1000, []float64{4000}, 0.25},
		{"nothing to recover", 0, []float64{100}, 0},
		{"never", 10000, []float64{3000, 3000, 3000}, math.Inf(1)},
		{"no flows", 10, nil, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PaybackPeriod(tt.initial, tt.flows); !near(got, tt.want, 1e-12) && got != tt.want {
				t.Errorf("PaybackPeriod() = %v, want %v", got, tt.want)
			}
		})
	}
}
