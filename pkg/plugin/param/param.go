// Package param describes plugin parameters and stores their live
// values with lock-free reads for the audio thread.
package param

import "fmt"

// Kind is the value type of a parameter, with its range where one
// applies.
type Kind interface {
	isKind()
}

// Unsigned is an unsigned integer parameter with an inclusive range.
type Unsigned struct {
	Min, Max uint64
}

func (Unsigned) isKind() {}

// Signed is a signed integer parameter with an inclusive range.
type Signed struct {
	Min, Max int64
}

func (Signed) isKind() {}

// Float is a floating-point parameter with an inclusive range.
type Float struct {
	Min, Max float64
}

func (Float) isKind() {}

// Enum is a parameter whose value selects one of the named entries.
type Enum struct {
	Names []string
}

func (Enum) isKind() {}

// Boolean is a toggle parameter.
type Boolean struct{}

func (Boolean) isKind() {}

// Desc describes one parameter.
type Desc struct {
	// Index addresses the parameter in ParamSet and ParamReset events.
	Index int

	// Name is the parameter's display name.
	Name string

	// Kind is the parameter's value type and range.
	Kind Kind

	// Default is the value the parameter starts at and resets to,
	// expressed on the kind's plain scale.
	Default float64
}

// clamp pulls a plain value into the kind's range.
func (d Desc) clamp(v float64) float64 {
	switch k := d.Kind.(type) {
	case Unsigned:
		return clampRange(v, float64(k.Min), float64(k.Max))
	case Signed:
		return clampRange(v, float64(k.Min), float64(k.Max))
	case Float:
		return clampRange(v, k.Min, k.Max)
	case Enum:
		return clampRange(v, 0, float64(len(k.Names)-1))
	case Boolean:
		if v != 0 {
			return 1
		}
		return 0
	default:
		return v
	}
}

func clampRange(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func (d Desc) String() string {
	return fmt.Sprintf("param.Desc{%d %q default:%g}", d.Index, d.Name, d.Default)
}
