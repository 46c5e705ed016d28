// Package engine owns the real-time render thread and its start/stop
// lifecycle. The engine runs a playback backend; it knows nothing
// about concrete plugins.
package engine

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/justyntemme/audiocore/pkg/audio"
	"github.com/justyntemme/audiocore/pkg/buffer"
	"github.com/justyntemme/audiocore/pkg/control"
	"github.com/justyntemme/audiocore/pkg/debug"
	"github.com/justyntemme/audiocore/pkg/playback"
)

// ErrNotRunning is returned by Stop when no render thread is owned.
var ErrNotRunning = errors.New("engine: not running")

// Engine drives one playback backend on a dedicated render goroutine.
// The render goroutine owns the backend exclusively from Open to
// Close; control threads reach it only through the stop flag.
type Engine struct {
	config   Config
	playback playback.Playback
	log      *debug.Logger

	// Audio and Control recycle the render-block buffers; both are
	// pre-allocated at construction so the render path stays
	// allocation free.
	Audio   *buffer.Pool[*audio.Buffer]
	Control *buffer.Pool[*control.Buffer]

	// backendMu is held by the render goroutine for its entire run.
	backendMu sync.Mutex

	stop    atomic.Bool
	running atomic.Bool

	// ctl serializes the control surface: Start publishes the done
	// channel and Stop reads it only while holding it.
	ctl  sync.Mutex
	done chan error
}

// New creates a stopped engine with pre-allocated buffer pools.
func New(config Config, pb playback.Playback) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		config:   config,
		playback: pb,
		log:      debug.Default(),
		Audio:    buffer.NewPool(config.BlockSize, audio.NewBuffer),
		Control:  buffer.NewPool(config.BlockSize, control.NewBuffer),
	}
	e.Audio.Allocate(config.PoolPrealloc)
	e.Control.Allocate(config.PoolPrealloc)
	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// SetLogger redirects the engine's lifecycle logging.
func (e *Engine) SetLogger(log *debug.Logger) {
	e.log = log
}

// Start spawns the render goroutine: it locks the backend for its
// whole lifetime, opens it, runs the blocking render loop until the
// stop flag is observed, then closes it. Starting an engine that
// already owns a render thread is a programming error and panics.
func (e *Engine) Start() {
	e.ctl.Lock()
	defer e.ctl.Unlock()

	if !e.running.CompareAndSwap(false, true) {
		panic("engine: already running")
	}

	e.stop.Store(false)
	done := make(chan error, 1)
	e.done = done

	// The goroutine captures exactly what it needs; it never reaches
	// for shared engine state beyond the stop flag and backend lock.
	pb, stop, log := e.playback, &e.stop, e.log
	backendMu := &e.backendMu

	log.Infof("engine: render thread starting")
	go func() {
		backendMu.Lock()
		defer backendMu.Unlock()

		err := func() error {
			if err := pb.Open(); err != nil {
				return err
			}
			runErr := pb.Run(stop)
			closeErr := pb.Close()
			if runErr != nil {
				return runErr
			}
			return closeErr
		}()

		if err != nil {
			log.Errorf("engine: render thread failed: %v", err)
		} else {
			log.Debugf("engine: render thread finished")
		}
		done <- err
	}()
}

// Stop raises the stop flag and blocks until the render goroutine has
// returned, reporting whatever error the backend produced. The render
// loop observes the flag between blocks; there is no forced
// termination and no timeout.
func (e *Engine) Stop() error {
	e.ctl.Lock()
	defer e.ctl.Unlock()

	if !e.running.Load() {
		return ErrNotRunning
	}

	e.stop.Store(true)
	err := <-e.done
	e.running.Store(false)
	e.log.Infof("engine: stopped")
	return err
}

// IsStarted reports whether a render thread is currently owned,
// without blocking.
func (e *Engine) IsStarted() bool {
	return e.running.Load()
}

// Toggle stops a running engine and starts a stopped one.
func (e *Engine) Toggle() error {
	if e.IsStarted() {
		return e.Stop()
	}
	e.Start()
	return nil
}
