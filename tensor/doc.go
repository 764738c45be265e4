// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides a minimal N-dimensional tensor value type.
//
// # Overview
//
// A Tensor owns a typed, strided, fixed-size memory buffer and describes
// its logical layout: shape (ordered dims), row-major strides derived
// from the shape, element dtype, and device locality. This package
// provides:
//   - Validated construction: explicit-shape allocation, flat data plus
//     shape, nested literals with shape inference, and zeros/ones/full
//     factories
//   - Reference-counted buffer sharing with explicit aliasing semantics
//   - Dtype-checked typed access into the raw buffer
//
// # Basic Usage
//
//	t, err := tensor.New(tensor.Shape{2, 3, 4}, tensor.Float32, tensor.DefaultDevice())
//	if err != nil {
//	    // rank 0 or non-positive dims fail with ErrInvalidShape
//	}
//	data, _ := tensor.Data[float32](t) // dtype-checked, zero-copy
//	data[0] = 3.14
//
// # Nested Literals
//
// Nested literals are built from a closed recursive variant (Scalar and
// Seq, or the Nest2D/Nest3D helpers). Shape inference derives one
// leading dimension per nesting level and rejects ragged nesting:
//
//	n := tensor.Nest2D([][]float32{{0, -1, 3}, {1, 2, 3}, {4, 5, 6}})
//	t, err := tensor.FromNested(n, tensor.DefaultDevice()) // shape (3, 3)
//
// # Supported Data Types
//
// Int16, Int32, Int64, BFloat16, Float16, Float32, Float64. The 16-bit
// float dtypes have no native Go representation and are accessed as raw
// uint16 lanes via Bits16.
//
// # Device Support
//
// Only CPU allocation is implemented. The Accelerator kind is a reserved
// extension point: allocating on it fails with ErrNotImplemented.
//
// # Memory Management
//
// The underlying buffer is reference-counted. Clone is shallow and
// shares the buffer (writes through one handle are visible through the
// other), Move transfers ownership and leaves the source unusable, and
// Release drops a handle's reference. The buffer is freed when the last
// handle releases it. There is no internal locking; concurrent writers
// to an aliased buffer need external synchronization.
package tensor
