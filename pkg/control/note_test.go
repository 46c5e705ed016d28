package control

import (
	"math"
	"testing"
)

func TestAlphabetIndexRoundTrip(t *testing.T) {
	for i := 0; i < NumAlphabets; i++ {
		a := AlphabetFromIndex(i)
		if a.Index() != i {
			t.Errorf("index %d round-tripped to %d", i, a.Index())
		}
	}
}

func TestAlphabetFromIndexPeriodicity(t *testing.T) {
	for i := -30; i <= 30; i++ {
		if AlphabetFromIndex(i) != AlphabetFromIndex(i+NumAlphabets) {
			t.Errorf("from(%d) != from(%d)", i, i+NumAlphabets)
		}
		if AlphabetFromIndex(i).Transpose(-i) != AlphabetFromIndex(0) {
			t.Errorf("from(%d).Transpose(%d) != C", i, -i)
		}
	}
}

func TestAlphabetTranspose(t *testing.T) {
	tests := []struct {
		from Alphabet
		n    int
		want Alphabet
	}{
		{A, 0, A},
		{A, 5, D},
		{A, -3, Fs},
		{A, 11, Gs},
		{C, -1, B},
		{B, 1, C},
	}
	for _, tt := range tests {
		if got := tt.from.Transpose(tt.n); got != tt.want {
			t.Errorf("%s.Transpose(%d) = %s, want %s", tt.from, tt.n, got, tt.want)
		}
	}
}

func TestAlphabetDetune(t *testing.T) {
	if got := A.Detune(0); got != 440 {
		t.Errorf("A.Detune(0) = %g, want 440", got)
	}
	if got, want := A.Detune(100), A.Sharpen().Freq(); math.Abs(got-want) > 1e-9 {
		t.Errorf("A.Detune(100) = %g, want A#.Freq() = %g", got, want)
	}
	if got, want := A.Detune(-900), C.Freq(); math.Abs(got-want) > 1e-9 {
		t.Errorf("A.Detune(-900) = %g, want C.Freq() = %g", got, want)
	}
}

func TestNoteNameDetune(t *testing.T) {
	a5 := NoteName{Alphabet: A, Octave: 5}
	if got := math.Round(a5.Freq()); got != 880 {
		t.Errorf("A5 freq = %g, want 880", got)
	}

	a3 := NoteName{Alphabet: A, Octave: 3}
	if got, want := a3.Freq(), 220.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("A3 freq = %g, want %g", got, want)
	}

	// One octave of cents equals one octave step.
	a4 := NoteName{Alphabet: A, Octave: 4}
	if got, want := a4.Detune(1200), a5.Freq(); math.Abs(got-want) > 1e-9 {
		t.Errorf("A4 detuned +1200 = %g, want A5 = %g", got, want)
	}
}

func TestParseAlphabet(t *testing.T) {
	valid := []struct {
		in   string
		want Alphabet
	}{
		{"C", C},
		{"c", C},
		{"g#", Gs},
		{"Bb", As},
		{"Cb", B},
		{"B#", C},
	}
	for _, tt := range valid {
		got, err := ParseAlphabet(tt.in)
		if err != nil {
			t.Errorf("ParseAlphabet(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAlphabet(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "H", "Dx", "nonsense", "C#b"} {
		if _, err := ParseAlphabet(in); err == nil {
			t.Errorf("ParseAlphabet(%q) accepted", in)
		}
	}
}

func TestNoteDetune(t *testing.T) {
	note := Note{
		Name:   NoteName{Alphabet: A, Octave: 4},
		Params: NoteParams{Velocity: 100, Cents: 100},
	}
	if got, want := note.Freq(), As.Freq(); math.Abs(got-want) > 1e-9 {
		t.Errorf("detuned note freq = %g, want %g", got, want)
	}
}
