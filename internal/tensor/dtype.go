// Package tensor implements the core tensor value type: a typed, strided,
// reference-counted memory buffer described by shape, dtype and device.
package tensor

import "fmt"

// Element is a constraint for scalar types that can be stored in a tensor
// and accessed through the typed Data accessor. The 16-bit float dtypes
// have no native Go representation; their buffers are accessed as raw
// uint16 lanes via Bits16.
type Element interface {
	~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Dtype represents runtime type information for tensors.
type Dtype int

// Supported data types.
const (
	Int16 Dtype = iota
	Int32
	Int64
	BFloat16
	Float16
	Float32
	Float64
)

// Size returns the byte width of one element of the data type.
// A tag outside the table fails with ErrUnsupportedDtype.
func (dt Dtype) Size() (int, error) {
	switch dt {
	case Int16, BFloat16, Float16:
		return 2, nil
	case Int32, Float32:
		return 4, nil
	case Int64, Float64:
		return 8, nil
	default:
		return 0, fmt.Errorf("%w: Dtype(%d)", ErrUnsupportedDtype, int(dt))
	}
}

// String returns a human-readable name for the data type.
func (dt Dtype) String() string {
	switch dt {
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case BFloat16:
		return "bfloat16"
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// inferDtype infers the Dtype tag from a generic element type.
func inferDtype[T Element](dummy T) Dtype {
	switch any(dummy).(type) {
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("unsupported element type")
	}
}
