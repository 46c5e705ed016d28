// Package playback provides the playback-backend boundary the engine
// renders through, plus reference backends: live output through oto,
// offline rendering to a WAV file, and a headless backend for tests.
package playback

import (
	"sync/atomic"

	"github.com/justyntemme/audiocore/pkg/audio"
)

// FullScale is the amplitude that maps to 0 dB full scale on a
// backend's wire format. It matches the note velocity scale, where
// velocity 100 means 0 dB.
const FullScale = 100.0

// Source fills one render block. It is the seam between a backend and
// whatever drives the processing graph; backends call it once per
// block from the render thread.
type Source func(dst *audio.Buffer)

// Playback is the backend contract the engine runs against. The
// render thread owns the backend exclusively from Open to Close; the
// control thread only reaches it through the stop flag.
type Playback interface {
	// Open prepares the backend for rendering.
	Open() error

	// Run blocks rendering until the stop flag is raised. It must poll
	// the flag between blocks; there is no mid-block cancellation.
	Run(stop *atomic.Bool) error

	// Close releases the backend.
	Close() error
}
