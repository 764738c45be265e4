// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/minitensor/tensor"
)

// Exercises the public API surface end to end through the re-exports.
func TestPublicAPI(t *testing.T) {
	tn, err := tensor.New(tensor.Shape{2, 3, 4}, tensor.Float32, tensor.DefaultDevice())
	require.NoError(t, err)

	assert.Equal(t, 24, tn.NumElements())
	assert.Equal(t, 96, tn.Nbytes())
	assert.Equal(t, []int{12, 4, 1}, tn.Strides())
	assert.Equal(t, tensor.Float32, tn.Dtype())
	assert.Equal(t, tensor.CPU, tn.Device().Kind)

	data, err := tensor.Data[float32](tn)
	require.NoError(t, err)
	data[0] = 3.14

	got, err := tensor.At[float32](tn, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(3.14), got)
}

func TestPublicAPIErrors(t *testing.T) {
	_, err := tensor.New(tensor.Shape{}, tensor.Float32, tensor.DefaultDevice())
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)

	_, err = tensor.New(tensor.Shape{2, 3}, tensor.Float32, tensor.Device{Kind: tensor.Accelerator})
	assert.ErrorIs(t, err, tensor.ErrNotImplemented)

	_, err = tensor.FromSlice([]int64{1, 2, 3}, tensor.Shape{2, 2}, tensor.DefaultDevice())
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestPublicNestedLiterals(t *testing.T) {
	n := tensor.Nest2D([][]float32{{0, -1, 3}, {1, 2, 3}, {4, 5, 6}})

	shape, err := tensor.InferShape(n)
	require.NoError(t, err)
	assert.True(t, shape.Equal(tensor.Shape{3, 3}))

	tn, err := tensor.FromNested(n, tensor.DefaultDevice())
	require.NoError(t, err)

	data, err := tensor.Data[float32](tn)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, -1, 3, 1, 2, 3, 4, 5, 6}, data)
}

func TestPublicFactories(t *testing.T) {
	zeros, err := tensor.Zeros(tensor.Shape{2, 3}, tensor.Float32, tensor.DefaultDevice())
	require.NoError(t, err)
	ones, err := tensor.Ones(tensor.Shape{2, 3}, tensor.Float32, tensor.DefaultDevice())
	require.NoError(t, err)

	zd, err := tensor.Data[float32](zeros)
	require.NoError(t, err)
	od, err := tensor.Data[float32](ones)
	require.NoError(t, err)

	require.Len(t, zd, 6)
	require.Len(t, od, 6)
	for i := range zd {
		assert.Equal(t, float32(0), zd[i])
		assert.Equal(t, float32(1), od[i])
	}
}

func TestPublicAliasingAndMove(t *testing.T) {
	tn, err := tensor.FromSlice([]int32{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.DefaultDevice())
	require.NoError(t, err)

	clone := tn.Clone()
	require.NoError(t, tensor.Set(clone, int32(99), 1, 1))
	got, err := tensor.At[int32](tn, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(99), got, "clone writes must alias the original")

	moved := tn.Move()
	assert.False(t, tn.IsValid())
	_, err = tensor.Data[int32](tn)
	assert.ErrorIs(t, err, tensor.ErrNoData)
	assert.True(t, moved.IsValid())
}
