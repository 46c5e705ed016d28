// Package interp samples a periodic function into a fixed table once
// and answers arbitrary-phase queries by interpolation, so oscillators
// never re-evaluate the source function on the render path.
package interp

import (
	"errors"
	"math"
)

const twoPi = 2 * math.Pi

// Policy selects how queries between table points are answered.
type Policy int

// Interpolation policies. Poly and Spline are declared for descriptor
// compatibility but not implemented yet.
const (
	Floor Policy = iota
	Nearest
	Linear
	Poly
	Spline
)

// ErrUnimplemented is returned for declared policies without an
// implementation.
var ErrUnimplemented = errors.New("interp: interpolation policy not implemented")

// Interpolator holds one period of a function sampled at evenly spaced
// points over [0, 2π).
type Interpolator struct {
	policy Policy
	table  []float64
}

// New samples f at n evenly spaced points over one period [0, 2π).
// Poly and Spline policies return ErrUnimplemented. A zero n is a
// programming error and panics.
func New(policy Policy, n int, f func(x float64) float64) (*Interpolator, error) {
	if n <= 0 {
		panic("interp: table size must be positive")
	}
	switch policy {
	case Floor, Nearest, Linear:
	default:
		return nil, ErrUnimplemented
	}

	table := make([]float64, n)
	for i := range table {
		table[i] = f(float64(i) * twoPi / float64(n))
	}
	return &Interpolator{policy: policy, table: table}, nil
}

// Len returns the table size.
func (in *Interpolator) Len() int {
	return len(in.table)
}

// At returns the stored sample at index i, treating the table as
// periodic: any integer wraps into range.
func (in *Interpolator) At(i int) float64 {
	n := len(in.table)
	for i >= n {
		i -= n
	}
	for i < 0 {
		i += n
	}
	return in.table[i]
}

// F interpolates the sampled function at phase x according to the
// selected policy.
func (in *Interpolator) F(x float64) float64 {
	x = x * float64(len(in.table)) / twoPi

	switch in.policy {
	case Floor:
		return in.At(int(math.Floor(x)))
	case Nearest:
		return in.At(int(math.Round(x)))
	case Linear:
		lo := math.Floor(x)
		y0 := in.At(int(lo))
		y1 := in.At(int(lo) + 1)
		return y0 + (x-lo)*(y1-y0)
	default:
		panic("interp: unreachable policy")
	}
}
