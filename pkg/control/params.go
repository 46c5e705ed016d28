package control

import "math"

// ParamField selects one field of NoteParams.
type ParamField int

// Fields addressable by a NoteSet event.
const (
	FieldVelocity ParamField = iota
	FieldPanning
	FieldCents
)

// NoteParam is a change to a single note parameter, carried by a
// NoteSet event.
type NoteParam struct {
	Field ParamField
	Value float64
}

// Velocity builds a velocity change.
func Velocity(v float64) NoteParam { return NoteParam{FieldVelocity, v} }

// Panning builds a panning change.
func Panning(p float64) NoteParam { return NoteParam{FieldPanning, p} }

// Cents builds a fine-detune change.
func Cents(c float64) NoteParam { return NoteParam{FieldCents, c} }

// NoteParams holds all parameters of one note.
type NoteParams struct {
	// Velocity is the note's loudness. 0 means silence, 100 means 0 dB.
	Velocity float64

	// Panning places the note in the stereo field. -100 means hard
	// left, 0 center, 100 hard right.
	Panning float64

	// Cents is the fine detune offset. 1200 is one octave up.
	Cents float64
}

// DefaultNoteParams returns full velocity, centered, no detune.
func DefaultNoteParams() NoteParams {
	return NoteParams{Velocity: 100}
}

// Apply merges a single-field change into p.
func (p *NoteParams) Apply(change NoteParam) {
	switch change.Field {
	case FieldVelocity:
		p.Velocity = change.Value
	case FieldPanning:
		p.Panning = change.Value
	case FieldCents:
		p.Cents = change.Value
	}
}

// Gain multiplies the velocity by g.
func (p *NoteParams) Gain(g float64) {
	p.Velocity *= g
}

// Velocities returns the per-channel velocity pair under a
// constant-power pan law: the channel gains trace a quarter circle so
// perceived loudness stays level across the stereo field.
func (p *NoteParams) Velocities() (left, right float64) {
	v := p.Velocity
	if p.Panning == 0 {
		return v, v
	}

	t := math.Abs(p.Panning) * (math.Pi / 4) / 100
	c := math.Sqrt2 * math.Cos(t) / 2
	s := math.Sqrt2 * math.Sin(t) / 2
	hi, lo := (c+s)*v, (c-s)*v

	if p.Panning > 0 {
		return hi, lo
	}
	return lo, hi
}
