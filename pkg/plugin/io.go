package plugin

import (
	"fmt"
	"strings"

	"github.com/justyntemme/audiocore/pkg/audio"
	"github.com/justyntemme/audiocore/pkg/control"
)

// IoKind is the kind of one IO buffer.
type IoKind int

const (
	// KindControl marks a control buffer.
	KindControl IoKind = iota
	// KindAudio marks an audio buffer.
	KindAudio
	// KindEither marks a buffer whose kind is negotiated on demand.
	KindEither
)

func (k IoKind) String() string {
	switch k {
	case KindControl:
		return "Control"
	case KindAudio:
		return "Audio"
	case KindEither:
		return "Either"
	default:
		return "Unknown"
	}
}

// IoMode is the buffer-shape mode a plugin declares: either InplaceIo
// or ComplexIo.
type IoMode interface {
	// Validate reports whether the mode's own shape is consistent.
	Validate() error

	isIoMode()
}

// InplaceIo declares that the plugin reads and writes one shared
// buffer set. Buffers lists the kinds; Mapping assigns each input
// slot the buffer index it writes back to, with every index in range
// and no duplicate targets.
type InplaceIo struct {
	Buffers []IoKind
	Mapping []int
}

func (InplaceIo) isIoMode() {}

// Validate checks the mapping: indices in range, no duplicates.
func (m InplaceIo) Validate() error {
	seen := make(map[int]bool, len(m.Mapping))
	for _, index := range m.Mapping {
		if index < 0 || index >= len(m.Buffers) {
			return fmt.Errorf("%w: inplace mapping index %d out of range", ErrInvalidArgument, index)
		}
		if seen[index] {
			return fmt.Errorf("%w: duplicate inplace mapping target %d", ErrInvalidArgument, index)
		}
		seen[index] = true
	}
	return nil
}

// ComplexIo declares disjoint input and output buffer lists, each slot
// with its own kind.
type ComplexIo struct {
	Inputs  []IoKind
	Outputs []IoKind
}

func (ComplexIo) isIoMode() {}

// Validate implements IoMode; a complex shape is always consistent.
func (m ComplexIo) Validate() error { return nil }

// IoDesc is a plugin's declared buffer shape: the mode plus one name
// per input and output slot.
type IoDesc struct {
	Mode    IoMode
	Inputs  []string
	Outputs []string
}

// Validate checks the mode and that the name lists match the slot
// counts the mode implies. In inplace mode all buffers appear on the
// output side and the input name list must be empty. Names must be
// unique across both lists.
func (d IoDesc) Validate() error {
	if d.Mode == nil {
		return fmt.Errorf("%w: io descriptor has no mode", ErrInvalidArgument)
	}
	if err := d.Mode.Validate(); err != nil {
		return err
	}

	switch m := d.Mode.(type) {
	case InplaceIo:
		if len(d.Inputs) != 0 {
			return fmt.Errorf("%w: inplace descriptor names %d inputs", ErrInvalidArgument, len(d.Inputs))
		}
		if len(d.Outputs) != len(m.Buffers) {
			return fmt.Errorf("%w: %d output names for %d inplace buffers",
				ErrInvalidArgument, len(d.Outputs), len(m.Buffers))
		}
	case ComplexIo:
		if len(d.Inputs) != len(m.Inputs) {
			return fmt.Errorf("%w: %d input names for %d input buffers",
				ErrInvalidArgument, len(d.Inputs), len(m.Inputs))
		}
		if len(d.Outputs) != len(m.Outputs) {
			return fmt.Errorf("%w: %d output names for %d output buffers",
				ErrInvalidArgument, len(d.Outputs), len(m.Outputs))
		}
	}

	seen := make(map[string]bool, len(d.Inputs)+len(d.Outputs))
	for _, name := range append(append([]string(nil), d.Inputs...), d.Outputs...) {
		if seen[name] {
			return fmt.Errorf("%w: duplicate buffer name %q", ErrInvalidArgument, name)
		}
		seen[name] = true
	}
	return nil
}

// ParseIoDesc builds a complex-mode descriptor from the buffer
// mini-language: pipe-separated "name:kind" entries where kind is one
// of C (control), A (audio) or E (either). ASCII whitespace around
// names and kinds is trimmed. The first entry is the single input; the
// remaining entries become outputs in declaration order.
//
//	ParseIoDesc("Control:C|Wave:A")
//
// yields one control input named Control and one audio output named
// Wave. Empty input, empty entries, empty names, duplicate names and
// unknown kind letters are errors with no side effects.
func ParseIoDesc(s string) (IoDesc, error) {
	if strings.TrimSpace(s) == "" {
		return IoDesc{}, fmt.Errorf("%w: empty io descriptor", ErrInvalidArgument)
	}
	entries := strings.Split(s, "|")

	names := make([]string, 0, len(entries))
	kinds := make([]IoKind, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for _, entry := range entries {
		name, kindStr, ok := strings.Cut(entry, ":")
		if !ok {
			return IoDesc{}, fmt.Errorf("%w: io entry %q has no kind", ErrInvalidArgument, entry)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return IoDesc{}, fmt.Errorf("%w: io entry %q has an empty name", ErrInvalidArgument, entry)
		}
		if seen[name] {
			return IoDesc{}, fmt.Errorf("%w: duplicate buffer name %q", ErrInvalidArgument, name)
		}
		seen[name] = true

		var kind IoKind
		switch strings.TrimSpace(kindStr) {
		case "C":
			kind = KindControl
		case "A":
			kind = KindAudio
		case "E":
			kind = KindEither
		default:
			return IoDesc{}, fmt.Errorf("%w: unknown buffer kind %q", ErrInvalidArgument, kindStr)
		}

		names = append(names, name)
		kinds = append(kinds, kind)
	}

	return IoDesc{
		Mode:    ComplexIo{Inputs: kinds[:1], Outputs: kinds[1:]},
		Inputs:  names[:1],
		Outputs: names[1:],
	}, nil
}

// MustParseIoDesc is ParseIoDesc for descriptor literals known at
// compile time; it panics on a malformed string.
func MustParseIoDesc(s string) IoDesc {
	desc, err := ParseIoDesc(s)
	if err != nil {
		panic(err)
	}
	return desc
}

// IoBuffer passes one buffer slot to a plugin: a control buffer, an
// audio buffer, or a disconnected slot no path feeds or consumes.
type IoBuffer struct {
	control *control.Buffer
	audio   *audio.Buffer
}

// ControlIo wraps a control buffer for a plugin slot.
func ControlIo(b *control.Buffer) IoBuffer { return IoBuffer{control: b} }

// AudioIo wraps an audio buffer for a plugin slot.
func AudioIo(b *audio.Buffer) IoBuffer { return IoBuffer{audio: b} }

// Disconnected returns a slot with no buffer attached.
func Disconnected() IoBuffer { return IoBuffer{} }

// Control returns the slot's control buffer, if it holds one.
func (b IoBuffer) Control() (*control.Buffer, bool) {
	return b.control, b.control != nil
}

// Audio returns the slot's audio buffer, if it holds one.
func (b IoBuffer) Audio() (*audio.Buffer, bool) {
	return b.audio, b.audio != nil
}

// IsConnected reports whether any buffer is attached.
func (b IoBuffer) IsConnected() bool {
	return b.control != nil || b.audio != nil
}

// Clear zeroes whichever buffer the slot holds.
func (b IoBuffer) Clear() {
	if b.control != nil {
		b.control.Clear()
	}
	if b.audio != nil {
		b.audio.Clear()
	}
}

// IoChange describes a connectivity change of one plugin buffer slot.
type IoChange struct {
	// Output is true when the change concerns an output slot.
	Output bool

	// Index is the slot position within its list.
	Index int

	// Connected is false when the slot was disconnected; Kind is only
	// meaningful while Connected is true.
	Connected bool
	Kind      IoKind
}
