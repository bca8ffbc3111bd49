package finmath

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors matched by the typed errors of this package through errors.Is.
var (
	ErrDomain         = errors.New("domain error")
	ErrShape          = errors.New("shape error")
	ErrNonConvergence = errors.New("did not converge")
)

// DomainError reports an input outside the domain of an operation: a
// non-positive compounding frequency, an out-of-range period index, a
// non-positive simulation count...
type DomainError struct {
	Op    string  // operation name, e.g. "PaymentInterest"
	Arg   string  // offending argument
	Value float64 // offending value
	Msg   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: invalid %s %v: %s", e.Op, e.Arg, e.Value, e.Msg)
}

func (e *DomainError) Is(target error) bool { return target == ErrDomain }

// ShapeError reports parallel arrays whose lengths cannot be broadcast together.
type ShapeError struct {
	Op      string
	Lengths []int
}

func (e *ShapeError) Error() string {
	lengths := make([]string, len(e.Lengths))
	for i, l := range e.Lengths {
		lengths[i] = fmt.Sprint(l)
	}
	return fmt.Sprintf("%s: mismatched array lengths [%s]", e.Op, strings.Join(lengths, ", "))
}

func (e *ShapeError) Is(target error) bool { return target == ErrShape }

// ConvergenceError is returned by the root finders alongside their last
// estimate when the tolerance was not met.
type ConvergenceError struct {
	Op         string
	Rate       float64 // last estimate
	Iterations int
	Reason     string
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: %s after %d iterations (last estimate %g)", e.Op, e.Reason, e.Iterations, e.Rate)
}

func (e *ConvergenceError) Is(target error) bool { return target == ErrNonConvergence }

func domainError(op, arg string, value float64, msg string) error {
	return &DomainError{Op: op, Arg: arg, Value: value, Msg: msg}
}
