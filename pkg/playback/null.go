package playback

import (
	"sync/atomic"
	"time"

	"github.com/justyntemme/audiocore/pkg/audio"
)

// Null is a headless backend: it pulls blocks from its source and
// discards them. Useful for tests and for running the engine without
// an audio device.
type Null struct {
	// BlockSize in frames; defaults to 512.
	BlockSize int

	// Source fills each block; rendering is a no-op when nil.
	Source Source

	// Interval paces the pull loop; defaults to one millisecond so an
	// idle engine does not spin.
	Interval time.Duration

	// Blocks counts the render blocks pulled since Open.
	Blocks atomic.Int64

	buf *audio.Buffer
}

// Open implements Playback.
func (n *Null) Open() error {
	size := n.BlockSize
	if size <= 0 {
		size = 512
	}
	n.buf = audio.NewBuffer(size)
	n.Blocks.Store(0)
	return nil
}

// Run implements Playback: pull and discard until stopped.
func (n *Null) Run(stop *atomic.Bool) error {
	interval := n.Interval
	if interval <= 0 {
		interval = time.Millisecond
	}
	for !stop.Load() {
		if n.Source != nil {
			n.Source(n.buf)
			n.Blocks.Add(1)
		}
		time.Sleep(interval)
	}
	return nil
}

// Close implements Playback.
func (n *Null) Close() error {
	n.buf = nil
	return nil
}
