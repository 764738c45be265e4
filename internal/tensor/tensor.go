package tensor

import (
	"fmt"
	"unsafe"
)

// Tensor binds a Shape, row-major strides, a Dtype, a Device and a
// reference-counted buffer.
//
// The zero value is a placeholder with no backing memory: it is what
// Move leaves behind, and every data access on it fails with ErrNoData.
//
// Tensors that share a buffer alias the same memory; writes through one
// handle are visible through the other. There is no internal locking on
// the buffer, so concurrent writers need external synchronization.
type Tensor struct {
	shape        Shape
	stride       []int
	dtype        Dtype
	device       Device
	buf          *buffer
	requiresGrad bool // Stored for future autodiff support, never acted on.
}

// New allocates an uninitialized tensor with the given shape, dtype and
// device. The buffer holds zeroed bytes; callers must fill it before
// reading semantically meaningful values.
func New(shape Shape, dtype Dtype, device Device) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	elemSize, err := dtype.Size()
	if err != nil {
		return nil, err
	}

	buf, err := allocate(shape.NumElements()*elemSize, device)
	if err != nil {
		return nil, err
	}

	return &Tensor{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
		buf:    buf,
	}, nil
}

// Shape returns the tensor's dimensions.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's row-major memory strides.
func (t *Tensor) Strides() []int {
	return t.stride
}

// Dtype returns the tensor's data type.
func (t *Tensor) Dtype() Dtype {
	return t.dtype
}

// Device returns the tensor's device descriptor.
func (t *Tensor) Device() Device {
	return t.device
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// Nbytes returns the total buffer size in bytes.
func (t *Tensor) Nbytes() int {
	size, err := t.dtype.Size()
	if err != nil {
		// A constructed tensor always carries a table dtype; the zero
		// value reports 0 elements anyway.
		return 0
	}
	return t.NumElements() * size
}

// IsOwner reports whether the tensor's memory was allocated by this
// package rather than borrowed from elsewhere.
func (t *Tensor) IsOwner() bool {
	return t.buf != nil && t.buf.owner
}

// IsValid reports whether the tensor has live backing memory. The zero
// value, moved-from tensors and released tensors are invalid.
func (t *Tensor) IsValid() bool {
	return t.buf != nil && t.buf.data != nil
}

// IsUnique reports whether this tensor is the only handle on its buffer.
func (t *Tensor) IsUnique() bool {
	return t.buf != nil && t.buf.isUnique()
}

// RequireGrad marks this tensor for gradient computation. The flag is
// stored but no operation acts on it. Returns the tensor for chaining.
func (t *Tensor) RequireGrad() *Tensor {
	t.requiresGrad = true
	return t
}

// RequiresGrad returns true if this tensor is marked for gradient
// computation.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// Clone creates a shallow copy that shares the buffer via reference
// counting. Writes through the clone are visible through the original.
func (t *Tensor) Clone() *Tensor {
	if t.buf != nil {
		t.buf.retain()
	}
	return &Tensor{
		shape:        t.shape.Clone(),
		stride:       append([]int(nil), t.stride...),
		dtype:        t.dtype,
		device:       t.device,
		buf:          t.buf,
		requiresGrad: t.requiresGrad,
	}
}

// Move transfers the buffer handle to a new tensor and resets the
// source to the zero placeholder. The source must not be read
// afterward; any data access on it fails with ErrNoData.
func (t *Tensor) Move() *Tensor {
	moved := &Tensor{
		shape:        t.shape,
		stride:       t.stride,
		dtype:        t.dtype,
		device:       t.device,
		buf:          t.buf,
		requiresGrad: t.requiresGrad,
	}
	*t = Tensor{}
	return moved
}

// Release drops this handle's reference on the buffer; the memory is
// freed once the last handle releases. The tensor is reset to the zero
// placeholder and is invalid afterward.
func (t *Tensor) Release() {
	if t.buf != nil {
		t.buf.release()
	}
	*t = Tensor{}
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	if t.buf == nil {
		return "Tensor(<empty>)"
	}
	return fmt.Sprintf("Tensor[%s]%v on %s", t.dtype, t.shape, t.device)
}

// Data reinterprets the tensor's buffer as a slice of T. The stored
// Dtype tag is authoritative: requesting any other element type fails
// with ErrDtypeMismatch instead of silently misreading memory.
//
// The returned slice aliases the buffer directly (zero-copy) and is
// valid only while a tensor handle referencing that buffer is alive.
func Data[T Element](t *Tensor) ([]T, error) {
	if !t.IsValid() {
		return nil, ErrNoData
	}
	var dummy T
	if want := inferDtype(dummy); want != t.dtype {
		return nil, fmt.Errorf("%w: tensor is %s, requested %s", ErrDtypeMismatch, t.dtype, want)
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*T)(unsafe.Pointer(&t.buf.data[0])), t.NumElements()), nil
}

// Bits16 exposes the raw uint16 lanes of a Float16 or BFloat16 buffer.
// Go has no native 16-bit float type, so half-precision tensors are
// read and written through their bit patterns.
func Bits16(t *Tensor) ([]uint16, error) {
	if !t.IsValid() {
		return nil, ErrNoData
	}
	if t.dtype != Float16 && t.dtype != BFloat16 {
		return nil, fmt.Errorf("%w: tensor is %s, requested 16-bit float lanes", ErrDtypeMismatch, t.dtype)
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*uint16)(unsafe.Pointer(&t.buf.data[0])), t.NumElements()), nil
}

// At returns the element at the given indices, resolved through the
// stored strides.
func At[T Element](t *Tensor, indices ...int) (T, error) {
	var zero T
	data, err := Data[T](t)
	if err != nil {
		return zero, err
	}
	offset, err := t.offset(indices)
	if err != nil {
		return zero, err
	}
	return data[offset], nil
}

// Set writes the element at the given indices.
func Set[T Element](t *Tensor, value T, indices ...int) error {
	data, err := Data[T](t)
	if err != nil {
		return err
	}
	offset, err := t.offset(indices)
	if err != nil {
		return err
	}
	data[offset] = value
	return nil
}

// offset computes the flat buffer index for a full index tuple.
func (t *Tensor) offset(indices []int) (int, error) {
	if len(indices) != len(t.shape) {
		return 0, fmt.Errorf("expected %d indices, got %d", len(t.shape), len(indices))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return 0, fmt.Errorf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i])
		}
		offset += idx * t.stride[i]
	}
	return offset, nil
}
