package playback

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/justyntemme/audiocore/pkg/audio"
)

// pollInterval is how often Run checks the stop flag while the player
// pulls samples on its own thread.
const pollInterval = 10 * time.Millisecond

// Oto plays rendered audio live through an oto player. The device
// paces rendering: the player pulls PCM from the source as the
// hardware drains its buffer.
type Oto struct {
	// SampleRate in Hz.
	SampleRate int

	// BlockSize in frames per pull from Source.
	BlockSize int

	// Source fills each render block.
	Source Source

	ctx    *oto.Context
	player *oto.Player
}

// Open creates the oto context and waits until the device is ready.
func (o *Oto) Open() error {
	if o.SampleRate <= 0 || o.BlockSize <= 0 {
		return errors.New("playback: oto backend needs a positive sample rate and block size")
	}
	if o.Source == nil {
		return errors.New("playback: oto backend needs a source")
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   o.SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return err
	}
	<-ready
	o.ctx = ctx
	return nil
}

// Run streams from the source until the stop flag is raised.
func (o *Oto) Run(stop *atomic.Bool) error {
	o.player = o.ctx.NewPlayer(&pcmStream{
		source: o.Source,
		block:  audio.NewBuffer(o.BlockSize),
		pcm:    make([]byte, o.BlockSize*8), // 2 channels x 4 bytes
	})
	o.player.Play()

	for !stop.Load() {
		time.Sleep(pollInterval)
	}
	return o.player.Close()
}

// Close implements Playback. The oto context itself stays alive for
// the process; oto does not support tearing it down.
func (o *Oto) Close() error {
	o.player = nil
	return nil
}

// pcmStream adapts a Source to the io.Reader the oto player pulls
// from, encoding frames as interleaved float32 little-endian stereo.
type pcmStream struct {
	source Source
	block  *audio.Buffer
	pcm    []byte
	unread []byte
}

func (s *pcmStream) Read(p []byte) (int, error) {
	if len(s.unread) == 0 {
		s.source(s.block)
		s.encode()
	}
	n := copy(p, s.unread)
	s.unread = s.unread[n:]
	return n, nil
}

func (s *pcmStream) encode() {
	frames := s.block.Frames()
	for i, f := range frames {
		l := math.Float32bits(float32(f[0] / FullScale))
		r := math.Float32bits(float32(f[1] / FullScale))
		binary.LittleEndian.PutUint32(s.pcm[i*8:], l)
		binary.LittleEndian.PutUint32(s.pcm[i*8+4:], r)
	}
	s.unread = s.pcm[:len(frames)*8]
}

var _ io.Reader = (*pcmStream)(nil)
