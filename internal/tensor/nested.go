package tensor

import "fmt"

// Nested is a closed recursive literal: either a scalar leaf or a
// sequence of further Nested values. Modeling nesting as an explicit
// variant lets shape inference enforce rectangularity instead of
// trusting the caller's nesting to be regular.
type Nested[T Element] struct {
	leaf  bool
	value T
	items []Nested[T]
}

// Scalar wraps a leaf value.
func Scalar[T Element](v T) Nested[T] {
	return Nested[T]{leaf: true, value: v}
}

// Seq wraps one sequence level.
func Seq[T Element](items ...Nested[T]) Nested[T] {
	return Nested[T]{items: items}
}

// Nest2D builds the Nested form of a 2-D literal.
func Nest2D[T Element](rows [][]T) Nested[T] {
	out := make([]Nested[T], len(rows))
	for i, row := range rows {
		inner := make([]Nested[T], len(row))
		for j, v := range row {
			inner[j] = Scalar(v)
		}
		out[i] = Seq(inner...)
	}
	return Seq(out...)
}

// Nest3D builds the Nested form of a 3-D literal.
func Nest3D[T Element](blocks [][][]T) Nested[T] {
	out := make([]Nested[T], len(blocks))
	for i, block := range blocks {
		out[i] = Nest2D(block)
	}
	return Seq(out...)
}

// InferShape derives the shape of a rectangular nested literal. Each
// nesting level contributes one leading dimension, so the rank equals
// the nesting depth. Siblings with differing shapes (ragged lengths or
// mixed scalar/sequence nesting) fail with ErrRaggedNested; an empty
// sequence fails with ErrInvalidShape because a zero dimension can
// never allocate. A bare scalar infers the empty shape and is rejected
// by the allocating constructors downstream.
func InferShape[T Element](n Nested[T]) (Shape, error) {
	if n.leaf {
		return Shape{}, nil
	}
	if len(n.items) == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrInvalidShape)
	}

	first, err := InferShape(n.items[0])
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(n.items); i++ {
		sub, err := InferShape(n.items[i])
		if err != nil {
			return nil, err
		}
		if !sub.Equal(first) {
			return nil, fmt.Errorf("%w: element %d has shape %v, sibling has %v", ErrRaggedNested, i, sub, first)
		}
	}

	return append(Shape{len(n.items)}, first...), nil
}

// Flatten emits the scalar leaves in row-major order. The order matches
// the strides computed for the inferred shape, so a direct copy into a
// fresh buffer reproduces the logical N-dimensional layout.
func Flatten[T Element](n Nested[T]) []T {
	var out []T
	flattenInto(n, &out)
	return out
}

func flattenInto[T Element](n Nested[T], out *[]T) {
	if n.leaf {
		*out = append(*out, n.value)
		return
	}
	for _, item := range n.items {
		flattenInto(item, out)
	}
}

// FromNested constructs a tensor from a nested literal: the shape is
// inferred (with rectangularity checked), the dtype follows the leaf
// element type, and the flattened leaves are copied row-major into a
// newly allocated buffer.
func FromNested[T Element](n Nested[T], device Device) (*Tensor, error) {
	shape, err := InferShape(n)
	if err != nil {
		return nil, err
	}
	return FromSlice(Flatten(n), shape, device)
}
