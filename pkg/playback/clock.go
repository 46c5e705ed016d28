package playback

import (
	"time"

	"github.com/justyntemme/audiocore/pkg/plugin"
)

// Clock is the waitable node for backends without a hardware callback:
// its Wait blocks until the next render cycle is due, keeping block
// time aligned with wall time without drift. An offline clock (zero
// interval) returns immediately so rendering runs as fast as possible.
//
// The engine designates at most one waitable node per instance; Clock
// declares no buffers and its Process does nothing.
type Clock struct {
	plugin.Base

	interval time.Duration
	next     time.Time
}

// NewClock creates a clock whose interval is one render block of wall
// time under the given context.
func NewClock(ctx plugin.Context) *Clock {
	interval := time.Duration(float64(ctx.BlockSize) / ctx.SampleRate * float64(time.Second))
	return &Clock{interval: interval}
}

// NewOfflineClock creates a clock that never blocks.
func NewOfflineClock() *Clock {
	return &Clock{}
}

// IoDescriptor implements plugin.Plugin: the clock owns no buffers.
func (c *Clock) IoDescriptor() plugin.IoDesc {
	return plugin.IoDesc{Mode: plugin.ComplexIo{}}
}

// Process implements plugin.Plugin; the clock only paces.
func (c *Clock) Process(inputs, outputs []plugin.IoBuffer) error {
	return nil
}

// Wait implements plugin.Waitable.
func (c *Clock) Wait() error {
	if c.interval == 0 {
		return nil
	}

	now := time.Now()
	if c.next.IsZero() || now.After(c.next.Add(c.interval)) {
		// First cycle, or the renderer fell too far behind to catch up.
		c.next = now
	}
	c.next = c.next.Add(c.interval)
	time.Sleep(c.next.Sub(now))
	return nil
}

var _ plugin.Waitable = (*Clock)(nil)
