// Package native holds the plugins that ship with the engine and the
// factory that creates them.
package native

import (
	"math"

	"github.com/justyntemme/audiocore/pkg/audio"
	"github.com/justyntemme/audiocore/pkg/control"
	"github.com/justyntemme/audiocore/pkg/interp"
	"github.com/justyntemme/audiocore/pkg/plugin"
	"github.com/justyntemme/audiocore/pkg/plugin/param"
)

const twoPi = 2 * math.Pi

// sineTableSize keeps the linear-interpolation error well below the
// 16-bit noise floor.
const sineTableSize = 4096

// GeneratorUUID is the function generator's global identity.
const GeneratorUUID = "b2f0c7a4-51d3-4e8a-9c26-dd47a90f31e5"

// Parameter indices of the function generator.
const (
	// ParamLevel scales the generator's summed output.
	ParamLevel = iota
)

// voiceState is the per-voice record: cached parameters, the phase
// accumulator and the cached frequency and stereo gain derived from
// the parameters.
type voiceState struct {
	params control.NoteParams
	phase  float64
	freq   float64
	gain   audio.Frame
}

func newVoiceState(note control.Note) *voiceState {
	v := &voiceState{params: note.Params, freq: note.Freq()}
	v.gain[0], v.gain[1] = v.params.Velocities()
	return v
}

// FunctionGenerator is a polyphonic sine generator: it consumes one
// control buffer and renders the sum of all sounding voices into one
// audio buffer, applying each position's events before rendering that
// position. Voice state persists across render blocks, so phase is
// continuous at block boundaries.
//
// Voices are keyed by note name: a NoteOn whose name matches a
// sounding voice replaces it, last write wins.
type FunctionGenerator struct {
	plugin.Base

	voices map[control.NoteName]*voiceState
	step   float64 // phase advance per Hz of frequency
	sine   *interp.Interpolator
	params *param.Registry
	level  float64
}

// NewFunctionGenerator creates a generator for the given engine
// context.
func NewFunctionGenerator(ctx plugin.Context) *FunctionGenerator {
	g := &FunctionGenerator{}
	g.CoreChanged(ctx)
	return g
}

// Initialize builds the voice map, the sine table and the parameter
// registry.
func (g *FunctionGenerator) Initialize() error {
	sine, err := interp.New(interp.Linear, sineTableSize, math.Sin)
	if err != nil {
		return err
	}
	g.sine = sine
	g.voices = make(map[control.NoteName]*voiceState)
	g.params = param.MustNewRegistry(generatorParams()...)
	g.level, _ = g.params.Value(ParamLevel)
	return nil
}

// CoreChanged picks up a new sample rate.
func (g *FunctionGenerator) CoreChanged(ctx plugin.Context) {
	g.step = twoPi / ctx.SampleRate
}

// Params implements plugin.Plugin.
func (g *FunctionGenerator) Params() []param.Desc {
	return generatorParams()
}

func generatorParams() []param.Desc {
	return []param.Desc{
		{Index: ParamLevel, Name: "Level", Kind: param.Float{Min: 0, Max: 1}, Default: 1},
	}
}

// IoDescriptor declares one control input and one audio output.
func (g *FunctionGenerator) IoDescriptor() plugin.IoDesc {
	return plugin.MustParseIoDesc("Control:C|Wave:A")
}

func (g *FunctionGenerator) applyMoment(moment control.Moment) {
	for _, event := range moment {
		switch e := event.(type) {
		case control.NoteOn:
			g.voices[e.Note.Name] = newVoiceState(e.Note)
		case control.NoteSet:
			voice, ok := g.voices[e.Name]
			if !ok {
				break
			}
			voice.params.Apply(e.Param)
			if e.Param.Field == control.FieldCents {
				voice.freq = e.Name.Detune(voice.params.Cents)
			} else {
				voice.gain[0], voice.gain[1] = voice.params.Velocities()
			}
		case control.NoteOff:
			delete(g.voices, e.Name)
		case control.Panic:
			clear(g.voices)
		case control.ParamSet:
			if g.params.Set(e.Index, e.Value) == nil {
				g.level, _ = g.params.Value(ParamLevel)
			}
		case control.ParamReset:
			if g.params.Reset(e.Index) == nil {
				g.level, _ = g.params.Value(ParamLevel)
			}
		}
	}
}

// Process renders one block. Events at a sample position are applied
// strictly before that position's frame, so control timing is sample
// accurate.
func (g *FunctionGenerator) Process(inputs, outputs []plugin.IoBuffer) error {
	if len(inputs) != 1 || len(outputs) != 1 {
		return plugin.ErrInvalidArgument
	}
	ctrl, ok := inputs[0].Control()
	if !ok {
		return plugin.ErrInvalidArgument
	}
	out, ok := outputs[0].Audio()
	if !ok {
		return plugin.ErrInvalidArgument
	}
	if ctrl.Len() != out.Len() {
		return plugin.ErrInvalidArgument
	}

	frames := out.Frames()
	for i, moment := range ctrl.Moments() {
		if moment != nil {
			g.applyMoment(moment)
		}

		var mix audio.Frame
		for _, voice := range g.voices {
			s := g.sine.F(voice.phase)
			mix[0] += s * voice.gain[0]
			mix[1] += s * voice.gain[1]

			voice.phase += g.step * voice.freq
			if voice.phase >= twoPi {
				voice.phase -= twoPi
			}
		}
		frames[i] = mix.Scale(g.level)
	}

	return nil
}
