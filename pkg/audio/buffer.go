package audio

import "fmt"

// Buffer is a fixed-length sequence of frames, one per sample position
// of a render block. It is allocated once and mutated in place; the
// render path never grows or reallocates it.
type Buffer struct {
	frames []Frame
}

// NewBuffer allocates a silent buffer of the given length.
func NewBuffer(length int) *Buffer {
	return &Buffer{frames: make([]Frame, length)}
}

// Len returns the buffer length in frames.
func (b *Buffer) Len() int {
	return len(b.frames)
}

// Frames exposes the underlying frame slice for in-place processing.
func (b *Buffer) Frames() []Frame {
	return b.frames
}

// At returns the frame at position i.
func (b *Buffer) At(i int) Frame {
	return b.frames[i]
}

// Set overwrites the frame at position i.
func (b *Buffer) Set(i int, f Frame) {
	b.frames[i] = f
}

// Gain scales every sample of every frame by g in place.
func (b *Buffer) Gain(g float64) {
	if g == 1 {
		return
	}
	for i := range b.frames {
		b.frames[i][0] *= g
		b.frames[i][1] *= g
	}
}

// Clear overwrites every frame with silence. The length is unchanged
// and repeated calls are harmless.
func (b *Buffer) Clear() {
	for i := range b.frames {
		b.frames[i] = Frame{}
	}
}

func (b *Buffer) String() string {
	n := len(b.frames)
	if n > 3 {
		return fmt.Sprintf("audio.Buffer{len: %d, %v, %v, %v, ...}",
			n, b.frames[0], b.frames[1], b.frames[2])
	}
	return fmt.Sprintf("audio.Buffer{len: %d, %v}", n, b.frames)
}
