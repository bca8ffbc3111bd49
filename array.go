package finmath

import (
	"fmt"
	"strconv"
	"strings"
)

type number interface {
	~float32 | ~float64 | ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Array is a numeric argument or result that is either a single scalar or a
// vector of values.
//
// Operations taking Arrays broadcast them: scalars are repeated to match the
// vectors, and every vector must have the same length. The result is a scalar
// only when every argument is a scalar, a vector of length one is still a
// vector.
//
// The zero Array is the scalar 0.
type Array struct {
	values []float64
	vector bool
}

// S returns a scalar Array.
func S[T number](v T) Array {
	return Array{values: []float64{float64(v)}}
}

// A returns a vector Array holding a copy of values.
func A[T number](values ...T) Array {
	a := Array{values: make([]float64, len(values)), vector: true}
	for i, v := range values {
		a.values[i] = float64(v)
	}
	return a
}

// IsScalar reports whether a is a scalar.
func (a Array) IsScalar() bool { return !a.vector }

// Len returns the number of values in a, 1 for a scalar.
func (a Array) Len() int {
	if !a.vector {
		return 1
	}
	return len(a.values)
}

// At returns the i-th value of a, scalars return their value for any i.
func (a Array) At(i int) float64 {
	if !a.vector {
		if len(a.values) == 0 {
			return 0
		}
		return a.values[0]
	}
	return a.values[i]
}

// Float returns the value of a scalar, ok is false for vectors.
func (a Array) Float() (v float64, ok bool) {
	if a.vector {
		return 0, false
	}
	return a.At(0), true
}

// Values returns a copy of the values, a scalar yields a one element slice.
func (a Array) Values() []float64 {
	if !a.vector {
		return []float64{a.At(0)}
	}
	return append([]float64(nil), a.values...)
}

func (a Array) String() string {
	if !a.vector {
		return strconv.FormatFloat(a.At(0), 'g', -1, 64)
	}
	parts := make([]string, len(a.values))
	for i, v := range a.values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}

// broadcast computes the common length of args. vector is true if at least
// one argument is a vector.
func broadcast(op string, args ...Array) (n int, vector bool, err error) {
	n = 1
	mismatch := false
	for _, a := range args {
		if !a.vector {
			continue
		}
		if !vector {
			n, vector = len(a.values), true
			continue
		}
		if len(a.values) != n {
			mismatch = true
		}
	}
	if mismatch {
		lengths := make([]int, 0, len(args))
		for _, a := range args {
			if a.vector {
				lengths = append(lengths, len(a.values))
			}
		}
		return 0, false, &ShapeError{Op: op, Lengths: lengths}
	}
	return n, vector, nil
}

// apply evaluates f elementwise over the broadcast of args. f receives the
// i-th value of each argument in order.
func apply(op string, f func(x []float64) (float64, error), args ...Array) (Array, error) {
	n, vector, err := broadcast(op, args...)
	if err != nil {
		return Array{}, err
	}
	out := make([]float64, n)
	x := make([]float64, len(args))
	for i := range out {
		for j, a := range args {
			x[j] = a.At(i)
		}
		v, err := f(x)
		if err != nil {
			return Array{}, err
		}
		out[i] = v
	}
	return Array{values: out, vector: vector}, nil
}
