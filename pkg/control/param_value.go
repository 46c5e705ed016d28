package control

// ParamType discriminates plugin parameter value kinds.
type ParamType int

// Parameter value kinds.
const (
	ParamUnsigned ParamType = iota
	ParamSigned
	ParamFloat
	ParamIndex
	ParamBoolean
)

func (t ParamType) String() string {
	switch t {
	case ParamUnsigned:
		return "Unsigned"
	case ParamSigned:
		return "Signed"
	case ParamFloat:
		return "Float"
	case ParamIndex:
		return "Index"
	case ParamBoolean:
		return "Boolean"
	default:
		return "Unknown"
	}
}

// ParamValue is a typed plugin parameter value carried by a ParamSet
// event.
type ParamValue interface {
	ParamType() ParamType
}

// Unsigned is an unsigned integer parameter value.
type Unsigned uint64

// ParamType implements ParamValue.
func (Unsigned) ParamType() ParamType { return ParamUnsigned }

// Signed is a signed integer parameter value.
type Signed int64

// ParamType implements ParamValue.
func (Signed) ParamType() ParamType { return ParamSigned }

// Float is a floating-point parameter value.
type Float float64

// ParamType implements ParamValue.
func (Float) ParamType() ParamType { return ParamFloat }

// Index selects one entry of an enumerated parameter.
type Index int

// ParamType implements ParamValue.
func (Index) ParamType() ParamType { return ParamIndex }

// Boolean is a toggle parameter value.
type Boolean bool

// ParamType implements ParamValue.
func (Boolean) ParamType() ParamType { return ParamBoolean }
