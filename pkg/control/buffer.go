package control

import "fmt"

// Buffer is a fixed-length sequence of moments, index-aligned with the
// audio buffer of the same render block.
type Buffer struct {
	moments []Moment
}

// NewBuffer allocates an empty control buffer of the given length.
func NewBuffer(length int) *Buffer {
	return &Buffer{moments: make([]Moment, length)}
}

// Len returns the buffer length in sample positions.
func (b *Buffer) Len() int {
	return len(b.moments)
}

// Moments exposes the underlying moment slice.
func (b *Buffer) Moments() []Moment {
	return b.moments
}

// At returns the moment at position i; nil means no control activity.
func (b *Buffer) At(i int) Moment {
	return b.moments[i]
}

// Push appends an event to the moment at position i.
func (b *Buffer) Push(i int, e Event) {
	b.moments[i] = append(b.moments[i], e)
}

// Gain scales the velocity of every NoteOn the buffer carries. Voices
// already started by earlier blocks are untouched; the buffer cannot
// reach them.
func (b *Buffer) Gain(g float64) {
	if g == 1 {
		return
	}
	for _, moment := range b.moments {
		for i, event := range moment {
			if on, ok := event.(NoteOn); ok {
				on.Note.Gain(g)
				moment[i] = on
			}
		}
	}
}

// Clear drops every moment. The length is unchanged and repeated calls
// are harmless.
func (b *Buffer) Clear() {
	for i := range b.moments {
		b.moments[i] = nil
	}
}

func (b *Buffer) String() string {
	n := len(b.moments)
	if n > 3 {
		return fmt.Sprintf("control.Buffer{len: %d, %v, %v, %v, ...}",
			n, b.moments[0], b.moments[1], b.moments[2])
	}
	return fmt.Sprintf("control.Buffer{len: %d, %v}", n, b.moments)
}
