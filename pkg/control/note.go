// Package control provides the note-level control value model: pitch
// arithmetic, per-note parameters, control events and the sparse
// control buffer that carries them through a render block.
package control

import (
	"fmt"
	"math"
	"strings"
)

// Alphabet is one of the twelve pitch classes.
type Alphabet int

// Pitch classes in index order, C first.
const (
	C Alphabet = iota
	Cs
	D
	Ds
	E
	F
	Fs
	G
	Gs
	A
	As
	B
)

// NumAlphabets is the number of pitch classes in one octave.
const NumAlphabets = 12

// refFreq and refAlphabet pin the tuning: A4 = 440 Hz.
const refFreq = 440.0

var alphabetNames = [NumAlphabets]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// Index returns the pitch-class index, 0 for C through 11 for B.
func (a Alphabet) Index() int {
	return int(a)
}

// AlphabetFromIndex maps any integer onto a pitch class, wrapping
// modulo twelve in both directions.
func AlphabetFromIndex(i int) Alphabet {
	i %= NumAlphabets
	if i < 0 {
		i += NumAlphabets
	}
	return Alphabet(i)
}

// Transpose returns the pitch class n half steps higher (or lower for
// negative n).
func (a Alphabet) Transpose(n int) Alphabet {
	return AlphabetFromIndex(a.Index() + n)
}

// Sharpen returns the pitch class one half step higher.
func (a Alphabet) Sharpen() Alphabet { return a.Transpose(1) }

// Flatten returns the pitch class one half step lower.
func (a Alphabet) Flatten() Alphabet { return a.Transpose(-1) }

// Freq returns the frequency of this pitch class in the reference
// octave (octave 4).
func (a Alphabet) Freq() float64 { return a.Detune(0) }

// Detune returns the frequency of this pitch class in the reference
// octave, shifted by the given amount of cents.
func (a Alphabet) Detune(cents float64) float64 {
	halfSteps := cents/100 + float64(a.Index()-A.Index())
	return refFreq * math.Pow(2, halfSteps/12)
}

func (a Alphabet) String() string {
	return alphabetNames[AlphabetFromIndex(int(a))]
}

// ParseAlphabet reads a pitch class from a note spelling: a letter C
// through B, case-insensitive, optionally followed by '#' or 'b'.
// "Cb" and "B#" wrap to the neighbouring octave's class.
func ParseAlphabet(s string) (Alphabet, error) {
	if len(s) != 1 && len(s) != 2 {
		return 0, fmt.Errorf("control: invalid note alphabet %q", s)
	}

	var index int
	switch strings.ToUpper(s[:1]) {
	case "C":
		index = 0
	case "D":
		index = 2
	case "E":
		index = 4
	case "F":
		index = 5
	case "G":
		index = 7
	case "A":
		index = 9
	case "B":
		index = 11
	default:
		return 0, fmt.Errorf("control: invalid note alphabet %q", s)
	}

	if len(s) == 2 {
		switch s[1] {
		case '#':
			index++
		case 'b':
			index--
		default:
			return 0, fmt.Errorf("control: invalid note alphabet %q", s)
		}
	}

	return AlphabetFromIndex(index), nil
}

// NoteName identifies one note: a pitch class and an octave. Octave 4
// is the reference octave. NoteName is the identity key for voices;
// two notes address the same voice exactly when their names are equal.
type NoteName struct {
	Alphabet Alphabet
	Octave   int8
}

// Freq returns the note's frequency.
func (n NoteName) Freq() float64 { return n.Detune(0) }

// Detune returns the note's frequency shifted by cents. The octave
// contributes 1200 cents per step away from octave 4.
func (n NoteName) Detune(cents float64) float64 {
	cents += float64(int(n.Octave)-4) * 100 * NumAlphabets
	return n.Alphabet.Detune(cents)
}

func (n NoteName) String() string {
	return fmt.Sprintf("%s%d", n.Alphabet, n.Octave)
}

// Note is the full runtime identity and state of one sounding voice.
type Note struct {
	Name   NoteName
	Params NoteParams
}

// Freq returns the note's frequency with its own detune applied.
func (n *Note) Freq() float64 { return n.Detune(0) }

// Detune returns the note's frequency shifted by its parameter cents
// plus the given extra cents.
func (n *Note) Detune(cents float64) float64 {
	return n.Name.Detune(n.Params.Cents + cents)
}

// Gain scales the note's velocity by g.
func (n *Note) Gain(g float64) {
	n.Params.Gain(g)
}
