package tensor

import "fmt"

// Shape represents the ordered dimensions of a tensor.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements.
// An empty shape yields 0: it is the safe default for the zero Tensor
// and is rejected by every allocating constructor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape can back an allocation:
// rank >= 1 and every dimension >= 1.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty dimension list", ErrInvalidShape)
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// The last dimension varies fastest: stride[i] = product of all
// dimensions after i. Example: (2, 3, 4) -> (12, 4, 1).
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}
