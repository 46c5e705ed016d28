package native

import (
	"errors"
	"math"
	"testing"

	"github.com/justyntemme/audiocore/pkg/audio"
	"github.com/justyntemme/audiocore/pkg/control"
	"github.com/justyntemme/audiocore/pkg/plugin"
)

const (
	testRate  = 44100.0
	testBlock = 256
)

func newGenerator(t *testing.T) *FunctionGenerator {
	t.Helper()
	g := NewFunctionGenerator(plugin.Context{SampleRate: testRate, BlockSize: testBlock})
	if err := g.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return g
}

func render(t *testing.T, g *FunctionGenerator, ctrl *control.Buffer) *audio.Buffer {
	t.Helper()
	out := audio.NewBuffer(ctrl.Len())
	err := g.Process(
		[]plugin.IoBuffer{plugin.ControlIo(ctrl)},
		[]plugin.IoBuffer{plugin.AudioIo(out)},
	)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	return out
}

func noteOn(name control.NoteName, params control.NoteParams) control.NoteOn {
	return control.NoteOn{Note: control.Note{Name: name, Params: params}}
}

var a4 = control.NoteName{Alphabet: control.A, Octave: 4}

func TestSineAt440(t *testing.T) {
	g := newGenerator(t)
	ctrl := control.NewBuffer(testBlock)
	ctrl.Push(0, noteOn(a4, control.DefaultNoteParams()))

	out := render(t, g, ctrl)
	step := 2 * math.Pi * 440 / testRate
	for i, frame := range out.Frames() {
		want := 100 * math.Sin(step*float64(i))
		if math.Abs(frame[0]-want) > 1e-3 || math.Abs(frame[1]-want) > 1e-3 {
			t.Fatalf("frame %d = %v, want %v on both channels", i, frame, want)
		}
	}
}

func TestPhaseContinuity(t *testing.T) {
	g := newGenerator(t)
	first := control.NewBuffer(testBlock)
	first.Push(0, noteOn(a4, control.DefaultNoteParams()))

	blocks := []*audio.Buffer{
		render(t, g, first),
		render(t, g, control.NewBuffer(testBlock)),
		render(t, g, control.NewBuffer(testBlock)),
	}

	// The three blocks joined must be one uninterrupted sine.
	step := 2 * math.Pi * 440 / testRate
	i := 0
	for _, block := range blocks {
		for _, frame := range block.Frames() {
			want := 100 * math.Sin(step*float64(i))
			if math.Abs(frame[0]-want) > 1e-3 {
				t.Fatalf("sample %d = %v, want %v", i, frame[0], want)
			}
			i++
		}
	}
}

func TestPanningSplitsChannels(t *testing.T) {
	g := newGenerator(t)
	params := control.DefaultNoteParams()
	params.Panning = 100
	ctrl := control.NewBuffer(testBlock)
	ctrl.Push(0, noteOn(a4, params))

	out := render(t, g, ctrl)
	// Hard positive panning silences the right channel.
	for i, frame := range out.Frames() {
		if math.Abs(frame[1]) > 1e-3 {
			t.Fatalf("frame %d right channel = %v, want silence", i, frame[1])
		}
	}
	if out.At(20)[0] == 0 {
		t.Fatal("left channel silent under hard positive panning")
	}
}

func TestNoteOffSilences(t *testing.T) {
	const off = 64
	g := newGenerator(t)
	ctrl := control.NewBuffer(testBlock)
	ctrl.Push(0, noteOn(a4, control.DefaultNoteParams()))
	ctrl.Push(off, control.NoteOff{Name: a4})

	out := render(t, g, ctrl)
	// The event lands before its own position renders.
	for i := off; i < testBlock; i++ {
		if out.At(i) != (audio.Frame{}) {
			t.Fatalf("frame %d = %v after note off", i, out.At(i))
		}
	}
	if out.At(off-1) == (audio.Frame{}) {
		t.Fatal("frame before note off already silent")
	}
}

func TestPanicSilencesAll(t *testing.T) {
	g := newGenerator(t)
	first := control.NewBuffer(testBlock)
	first.Push(0, noteOn(a4, control.DefaultNoteParams()))
	first.Push(0, noteOn(control.NoteName{Alphabet: control.C, Octave: 4}, control.DefaultNoteParams()))
	render(t, g, first)

	second := control.NewBuffer(testBlock)
	second.Push(0, control.Panic{})
	out := render(t, g, second)
	for i, frame := range out.Frames() {
		if frame != (audio.Frame{}) {
			t.Fatalf("frame %d = %v after panic", i, frame)
		}
	}
}

func TestNoteSetCentsRetunes(t *testing.T) {
	g := newGenerator(t)
	ctrl := control.NewBuffer(testBlock)
	ctrl.Push(0, noteOn(a4, control.DefaultNoteParams()))
	ctrl.Push(0, control.NoteSet{Name: a4, Param: control.Cents(1200)})

	out := render(t, g, ctrl)
	// One octave up doubles the frequency from the first sample on.
	step := 2 * math.Pi * 880 / testRate
	for i, frame := range out.Frames() {
		want := 100 * math.Sin(step*float64(i))
		if math.Abs(frame[0]-want) > 1e-3 {
			t.Fatalf("frame %d = %v, want %v", i, frame[0], want)
		}
	}
}

func TestNoteSetVelocity(t *testing.T) {
	g := newGenerator(t)
	ctrl := control.NewBuffer(testBlock)
	ctrl.Push(0, noteOn(a4, control.DefaultNoteParams()))
	ctrl.Push(0, control.NoteSet{Name: a4, Param: control.Velocity(50)})

	out := render(t, g, ctrl)
	step := 2 * math.Pi * 440 / testRate
	for i, frame := range out.Frames() {
		want := 50 * math.Sin(step*float64(i))
		if math.Abs(frame[0]-want) > 1e-3 {
			t.Fatalf("frame %d = %v, want %v", i, frame[0], want)
		}
	}
}

func TestNoteOnReplacesSameName(t *testing.T) {
	g := newGenerator(t)
	loud := control.DefaultNoteParams()
	quiet := control.DefaultNoteParams()
	quiet.Velocity = 10
	ctrl := control.NewBuffer(testBlock)
	ctrl.Push(0, noteOn(a4, loud))
	ctrl.Push(0, noteOn(a4, quiet))

	out := render(t, g, ctrl)
	step := 2 * math.Pi * 440 / testRate
	// Last write wins: one voice at velocity 10, not two.
	for i, frame := range out.Frames() {
		want := 10 * math.Sin(step*float64(i))
		if math.Abs(frame[0]-want) > 1e-3 {
			t.Fatalf("frame %d = %v, want %v", i, frame[0], want)
		}
	}
}

func TestChordSumsVoices(t *testing.T) {
	g := newGenerator(t)
	e4 := control.NoteName{Alphabet: control.E, Octave: 4}
	ctrl := control.NewBuffer(testBlock)
	ctrl.Push(0, noteOn(a4, control.DefaultNoteParams()))
	ctrl.Push(0, noteOn(e4, control.DefaultNoteParams()))

	out := render(t, g, ctrl)
	stepA := 2 * math.Pi * a4.Detune(0) / testRate
	stepE := 2 * math.Pi * e4.Detune(0) / testRate
	for i, frame := range out.Frames() {
		want := 100 * (math.Sin(stepA*float64(i)) + math.Sin(stepE*float64(i)))
		if math.Abs(frame[0]-want) > 1e-2 {
			t.Fatalf("frame %d = %v, want %v", i, frame[0], want)
		}
	}
}

func TestLevelParam(t *testing.T) {
	g := newGenerator(t)
	ctrl := control.NewBuffer(testBlock)
	ctrl.Push(0, control.ParamSet{Index: ParamLevel, Value: control.Float(0.5)})
	ctrl.Push(0, noteOn(a4, control.DefaultNoteParams()))

	out := render(t, g, ctrl)
	step := 2 * math.Pi * 440 / testRate
	for i, frame := range out.Frames() {
		want := 50 * math.Sin(step*float64(i))
		if math.Abs(frame[0]-want) > 1e-3 {
			t.Fatalf("frame %d = %v, want %v", i, frame[0], want)
		}
	}

	// ParamReset restores the unity default.
	next := control.NewBuffer(testBlock)
	next.Push(0, control.Panic{})
	next.Push(0, control.ParamReset{Index: ParamLevel})
	next.Push(0, noteOn(a4, control.DefaultNoteParams()))
	out = render(t, g, next)
	if math.Abs(out.At(30)[0]-100*math.Sin(step*30)) > 1e-3 {
		t.Fatalf("level not restored: frame 30 = %v", out.At(30))
	}
}

func TestProcessShapeErrors(t *testing.T) {
	g := newGenerator(t)
	ctrl := plugin.ControlIo(control.NewBuffer(testBlock))
	out := plugin.AudioIo(audio.NewBuffer(testBlock))

	cases := []struct {
		name    string
		inputs  []plugin.IoBuffer
		outputs []plugin.IoBuffer
	}{
		{"NoInputs", nil, []plugin.IoBuffer{out}},
		{"NoOutputs", []plugin.IoBuffer{ctrl}, nil},
		{"TwoInputs", []plugin.IoBuffer{ctrl, ctrl}, []plugin.IoBuffer{out}},
		{"AudioInput", []plugin.IoBuffer{out}, []plugin.IoBuffer{out}},
		{"ControlOutput", []plugin.IoBuffer{ctrl}, []plugin.IoBuffer{ctrl}},
		{"DisconnectedInput", []plugin.IoBuffer{plugin.Disconnected()}, []plugin.IoBuffer{out}},
		{
			"LengthMismatch",
			[]plugin.IoBuffer{plugin.ControlIo(control.NewBuffer(testBlock / 2))},
			[]plugin.IoBuffer{out},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := g.Process(c.inputs, c.outputs); !errors.Is(err, plugin.ErrInvalidArgument) {
				t.Errorf("Process err = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestIoDescriptor(t *testing.T) {
	desc := newGenerator(t).IoDescriptor()
	if err := desc.Validate(); err != nil {
		t.Fatalf("descriptor invalid: %v", err)
	}
	if len(desc.Inputs) != 1 || len(desc.Outputs) != 1 {
		t.Fatalf("descriptor shape %v / %v", desc.Inputs, desc.Outputs)
	}
}
