// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/minitensor/internal/tensor"
)

// Type aliases for the public API.

// Element is a constraint for scalar types storable in a tensor.
// Supported types: int16, int32, int64, float32, float64.
type Element = tensor.Element

// Dtype represents the underlying data type of a tensor.
type Dtype = tensor.Dtype

// Data type constants.
const (
	Int16    Dtype = tensor.Int16
	Int32    Dtype = tensor.Int32
	Int64    Dtype = tensor.Int64
	BFloat16 Dtype = tensor.BFloat16
	Float16  Dtype = tensor.Float16
	Float32  Dtype = tensor.Float32
	Float64  Dtype = tensor.Float64
)

// DeviceKind enumerates tensor memory localities.
type DeviceKind = tensor.DeviceKind

// Device kinds. Only CPU allocation is implemented.
const (
	CPU         DeviceKind = tensor.CPU
	Accelerator DeviceKind = tensor.Accelerator
)

// Device describes where a tensor's memory lives.
type Device = tensor.Device

// DefaultDevice returns CPU device 0.
func DefaultDevice() Device { return tensor.DefaultDevice() }

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is the aggregate of shape, strides, dtype, device and a
// reference-counted buffer. The zero value is an unusable placeholder.
type Tensor = tensor.Tensor

// Nested is a closed recursive literal: a scalar leaf or a sequence of
// further Nested values.
type Nested[T Element] = tensor.Nested[T]

// Contract violation errors.
var (
	ErrInvalidShape     = tensor.ErrInvalidShape
	ErrShapeMismatch    = tensor.ErrShapeMismatch
	ErrUnsupportedDtype = tensor.ErrUnsupportedDtype
	ErrAllocation       = tensor.ErrAllocation
	ErrNotImplemented   = tensor.ErrNotImplemented
	ErrDtypeMismatch    = tensor.ErrDtypeMismatch
	ErrRaggedNested     = tensor.ErrRaggedNested
	ErrNoData           = tensor.ErrNoData
)

// New allocates an uninitialized tensor with the given shape, dtype and
// device.
func New(shape Shape, dtype Dtype, device Device) (*Tensor, error) {
	return tensor.New(shape, dtype, device)
}

// FromSlice constructs a tensor from a flat row-major slice and an
// explicit shape.
func FromSlice[T Element](data []T, shape Shape, device Device) (*Tensor, error) {
	return tensor.FromSlice(data, shape, device)
}

// FromNested constructs a tensor from a nested literal, inferring its
// shape and rejecting ragged nesting.
func FromNested[T Element](n Nested[T], device Device) (*Tensor, error) {
	return tensor.FromNested(n, device)
}

// Zeros creates a tensor filled with the dtype's canonical zero.
func Zeros(shape Shape, dtype Dtype, device Device) (*Tensor, error) {
	return tensor.Zeros(shape, dtype, device)
}

// Ones creates a tensor filled with the dtype's canonical one.
func Ones(shape Shape, dtype Dtype, device Device) (*Tensor, error) {
	return tensor.Ones(shape, dtype, device)
}

// Full creates a tensor filled with a specific value.
func Full[T Element](shape Shape, value T, device Device) (*Tensor, error) {
	return tensor.Full(shape, value, device)
}

// Scalar wraps a leaf value of a nested literal.
func Scalar[T Element](v T) Nested[T] { return tensor.Scalar(v) }

// Seq wraps one sequence level of a nested literal.
func Seq[T Element](items ...Nested[T]) Nested[T] { return tensor.Seq(items...) }

// Nest2D builds the Nested form of a 2-D literal.
func Nest2D[T Element](rows [][]T) Nested[T] { return tensor.Nest2D(rows) }

// Nest3D builds the Nested form of a 3-D literal.
func Nest3D[T Element](blocks [][][]T) Nested[T] { return tensor.Nest3D(blocks) }

// InferShape derives the shape of a rectangular nested literal.
func InferShape[T Element](n Nested[T]) (Shape, error) { return tensor.InferShape(n) }

// Flatten emits the scalar leaves of a nested literal in row-major order.
func Flatten[T Element](n Nested[T]) []T { return tensor.Flatten(n) }

// Data reinterprets the tensor's buffer as a slice of T, verifying T
// against the stored dtype tag.
func Data[T Element](t *Tensor) ([]T, error) { return tensor.Data[T](t) }

// Bits16 exposes the raw uint16 lanes of a Float16 or BFloat16 buffer.
func Bits16(t *Tensor) ([]uint16, error) { return tensor.Bits16(t) }

// At returns the element at the given indices via the stored strides.
func At[T Element](t *Tensor, indices ...int) (T, error) { return tensor.At[T](t, indices...) }

// Set writes the element at the given indices.
func Set[T Element](t *Tensor, value T, indices ...int) error {
	return tensor.Set(t, value, indices...)
}
