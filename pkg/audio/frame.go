// Package audio provides the stereo sample value model and audio
// render-block buffers.
package audio

import "math"

// Sample is a single amplitude value.
type Sample = float64

// Frame is one stereo sample: left and right amplitude.
type Frame [2]Sample

// FrameOf spreads a mono sample across both channels.
func FrameOf(s Sample) Frame {
	return Frame{s, s}
}

// Left returns the left channel amplitude.
func (f Frame) Left() Sample { return f[0] }

// Right returns the right channel amplitude.
func (f Frame) Right() Sample { return f[1] }

// Add returns the component-wise sum of f and o.
func (f Frame) Add(o Frame) Frame {
	return Frame{f[0] + o[0], f[1] + o[1]}
}

// Sub returns the component-wise difference of f and o.
func (f Frame) Sub(o Frame) Frame {
	return Frame{f[0] - o[0], f[1] - o[1]}
}

// Mul returns the component-wise product of f and o.
func (f Frame) Mul(o Frame) Frame {
	return Frame{f[0] * o[0], f[1] * o[1]}
}

// Div returns the component-wise quotient of f and o.
func (f Frame) Div(o Frame) Frame {
	return Frame{f[0] / o[0], f[1] / o[1]}
}

// Rem returns the component-wise floating-point remainder of f and o.
func (f Frame) Rem(o Frame) Frame {
	return Frame{math.Mod(f[0], o[0]), math.Mod(f[1], o[1])}
}

// Neg returns the component-wise negation of f.
func (f Frame) Neg() Frame {
	return Frame{-f[0], -f[1]}
}

// Scale multiplies both channels by g.
func (f Frame) Scale(g float64) Frame {
	return Frame{f[0] * g, f[1] * g}
}

// Sum folds frames component-wise starting from the silent frame.
func Sum(frames []Frame) Frame {
	var acc Frame
	for _, f := range frames {
		acc = acc.Add(f)
	}
	return acc
}

// Product folds frames component-wise starting from the unit frame (1, 1).
func Product(frames []Frame) Frame {
	acc := Frame{1, 1}
	for _, f := range frames {
		acc = acc.Mul(f)
	}
	return acc
}
