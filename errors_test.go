package finmath

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		is   error
		msg  string
	}{
		{
			name: "domain",
			err:  domainError("PaymentInterest", "period", 0, "must be in [1, 12]"),
			is:   ErrDomain,
			msg:  "PaymentInterest: invalid period 0: must be in [1, 12]",
		},
		{
			name: "shape",
			err:  &ShapeError{Op: "PresentValue", Lengths: []int{2, 3}},
			is:   ErrShape,
			msg:  "PresentValue: mismatched array lengths [2, 3]",
		},
		{
			name: "convergence",
			err:  &ConvergenceError{Op: "InternalRateOfReturn", Rate: 0.25, Iterations: 3, Reason: "zero derivative"},
			is:   ErrNonConvergence,
			msg:  "InternalRateOfReturn: zero derivative after 3 iterations (last estimate 0.25)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.msg {
				t.Errorf("Error() = %q, want %q", got, tt.msg)
			}
			wrapped := fmt.Errorf("context: %w", tt.err)
			if !errors.Is(wrapped, tt.is) {
				t.Errorf("errors.Is(%v, %v) = false", wrapped, tt.is)
			}
			for _, other := range []error{ErrDomain, ErrShape, ErrNonConvergence} {
				if other != tt.is && errors.Is(tt.err, other) {
					t.Errorf("errors.Is(%v, %v) = true", tt.err, other)
				}
			}
		})
	}
}
