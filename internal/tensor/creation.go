package tensor

import "fmt"

// Canonical "one" bit patterns for the 16-bit float dtypes.
const (
	float16One  uint16 = 0x3C00
	bfloat16One uint16 = 0x3F80
)

// FromSlice constructs a tensor from a flat row-major slice and an
// explicit shape. The data is trusted to already be in row-major order
// for that shape and is copied verbatim into a new buffer. The length
// must equal the shape's element count, else ErrShapeMismatch.
func FromSlice[T Element](data []T, shape Shape, device Device) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}

	var dummy T
	t, err := New(shape, inferDtype(dummy), device)
	if err != nil {
		return nil, err
	}

	dst, err := Data[T](t)
	if err != nil {
		return nil, err
	}
	copy(dst, data)

	return t, nil
}

// Zeros creates a tensor filled with the dtype's canonical zero. Every
// supported dtype represents zero as the all-zero bit pattern, so the
// freshly allocated buffer already holds the fill.
func Zeros(shape Shape, dtype Dtype, device Device) (*Tensor, error) {
	return New(shape, dtype, device)
}

// Ones creates a tensor filled with the dtype's canonical one: 1 for
// the integer dtypes, 1.0 for float32/float64, and the half-precision
// bit patterns 0x3C00 (Float16) / 0x3F80 (BFloat16).
func Ones(shape Shape, dtype Dtype, device Device) (*Tensor, error) {
	t, err := New(shape, dtype, device)
	if err != nil {
		return nil, err
	}
	if err := fillOne(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Full creates a tensor filled with a specific value. The dtype is
// inferred from the value's element type.
func Full[T Element](shape Shape, value T, device Device) (*Tensor, error) {
	var dummy T
	t, err := New(shape, inferDtype(dummy), device)
	if err != nil {
		return nil, err
	}
	if err := fill(t, value); err != nil {
		return nil, err
	}
	return t, nil
}

func fillOne(t *Tensor) error {
	switch t.dtype {
	case Int16:
		return fill(t, int16(1))
	case Int32:
		return fill(t, int32(1))
	case Int64:
		return fill(t, int64(1))
	case Float32:
		return fill(t, float32(1))
	case Float64:
		return fill(t, float64(1))
	case Float16, BFloat16:
		lanes, err := Bits16(t)
		if err != nil {
			return err
		}
		one := float16One
		if t.dtype == BFloat16 {
			one = bfloat16One
		}
		for i := range lanes {
			lanes[i] = one
		}
		return nil
	default:
		_, err := t.dtype.Size()
		return err
	}
}

func fill[T Element](t *Tensor, value T) error {
	data, err := Data[T](t)
	if err != nil {
		return err
	}
	for i := range data {
		data[i] = value
	}
	return nil
}
