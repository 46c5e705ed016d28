package playback

import (
	"errors"
	"math"
	"os"
	"sync/atomic"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/justyntemme/audiocore/pkg/audio"
)

// WAVWriter renders offline to a 16-bit stereo PCM WAV file. It is
// not hardware paced: Run pulls blocks as fast as the source produces
// them, until the configured block count is reached or the stop flag
// is raised.
type WAVWriter struct {
	// Path of the output file, created on Open.
	Path string

	// SampleRate in Hz.
	SampleRate int

	// BlockSize in frames per pull from Source.
	BlockSize int

	// Blocks to render; 0 renders until stopped.
	Blocks int

	// Source fills each render block.
	Source Source

	// Written counts the render blocks encoded since Open.
	Written atomic.Int64

	file *os.File
	enc  *wav.Encoder
	buf  *audio.Buffer
	ints *gaudio.IntBuffer
}

// Open creates the output file and the WAV encoder.
func (w *WAVWriter) Open() error {
	if w.SampleRate <= 0 || w.BlockSize <= 0 {
		return errors.New("playback: wav writer needs a positive sample rate and block size")
	}
	if w.Source == nil {
		return errors.New("playback: wav writer needs a source")
	}

	f, err := os.Create(w.Path)
	if err != nil {
		return err
	}
	w.file = f
	w.enc = wav.NewEncoder(f, w.SampleRate, 16, 2, 1)
	w.buf = audio.NewBuffer(w.BlockSize)
	w.ints = &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: 2, SampleRate: w.SampleRate},
		Data:           make([]int, w.BlockSize*2),
		SourceBitDepth: 16,
	}
	w.Written.Store(0)
	return nil
}

// Run implements Playback.
func (w *WAVWriter) Run(stop *atomic.Bool) error {
	for n := 0; w.Blocks == 0 || n < w.Blocks; n++ {
		if stop.Load() {
			break
		}
		w.Source(w.buf)
		if err := w.writeBlock(); err != nil {
			return err
		}
		w.Written.Add(1)
	}
	return nil
}

func (w *WAVWriter) writeBlock() error {
	for i, f := range w.buf.Frames() {
		w.ints.Data[i*2] = pcm16(f[0])
		w.ints.Data[i*2+1] = pcm16(f[1])
	}
	return w.enc.Write(w.ints)
}

// Close finalizes the WAV header and closes the file.
func (w *WAVWriter) Close() error {
	if w.enc == nil {
		return nil
	}
	if err := w.enc.Close(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

// pcm16 converts an amplitude on the velocity scale to a clipped
// 16-bit sample.
func pcm16(s audio.Sample) int {
	v := s / FullScale
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int(math.Round(v * 32767))
}
