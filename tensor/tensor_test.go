// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/tensor"
)

// TestColumnMajorLayout verifies the public constructors agree on element placement.
func TestColumnMajorLayout(t *testing.T) {
	a, err := tensor.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float64{1, 4, 2, 5, 3, 6}, tensor.MustDimensions(2, 3))
	require.NoError(t, err)

	assert.True(t, a.EqualValues(b))
	assert.Equal(t, 6.0, a.At(1, 2))
}

// TestPublicViewWorkflow scales matrix columns through views.
func TestPublicViewWorkflow(t *testing.T) {
	in, err := tensor.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	out := tensor.New[float64](in.Dimensions())

	for col, factor := range []float64{2, 3} {
		src, err := in.View(tensor.Full(), tensor.Span(col, col))
		require.NoError(t, err)
		dst, err := out.MutableView(tensor.Full(), tensor.Span(col, col))
		require.NoError(t, err)
		require.NoError(t, dst.Assign(src.Tensor().MulScalar(factor)))
	}

	want, err := tensor.FromRows([][]float64{{2, 6}, {6, 12}})
	require.NoError(t, err)
	assert.True(t, want.EqualValues(out))
}

// TestPublicIterator verifies the exported iterator API and merged levels.
func TestPublicIterator(t *testing.T) {
	span := tensor.RangeSpan{tensor.Full(), tensor.Span(1, 2)}
	dims, err := span.Dimensions(tensor.MustDimensions(3, 4))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, dims.Sizes())

	it, err := tensor.NewRangeIterator(span...)
	require.NoError(t, err)
	assert.Equal(t, 1, it.Levels())
	assert.Equal(t, []int{3, 4, 5, 6, 7, 8}, slices.Collect(it.Offsets()))

	_, err = tensor.NewRangeIterator(tensor.Stepped(0, 2, 0))
	require.ErrorIs(t, err, tensor.ErrInvalidRange)
}

// TestPublicErrors verifies sentinel errors are re-exported.
func TestPublicErrors(t *testing.T) {
	_, err := tensor.NewDimensions(2, -1)
	require.ErrorIs(t, err, tensor.ErrInvalidShape)

	_, err = tensor.FromSlice([]float64{1}, tensor.MustDimensions(2))
	require.ErrorIs(t, err, tensor.ErrSizeMismatch)

	_, err = tensor.Zeros[float64](2).Get(2)
	require.ErrorIs(t, err, tensor.ErrOutOfBounds)
}

// TestPublicConversions verifies the explicit conversion helpers.
func TestPublicConversions(t *testing.T) {
	c := tensor.ToComplex(tensor.Filled(tensor.MustDimensions(2), 1.5))
	assert.Equal(t, []complex128{1.5, 1.5}, c.Data())
	z := tensor.Conj(tensor.FromVector([]complex128{3 + 4i}))
	assert.Equal(t, []float64{3}, tensor.RealPart(z).Data())
	assert.Equal(t, []float64{-4}, tensor.ImagPart(z).Data())
}

// TestPublicMaskAndConvert verifies Mask, Which and ConvertFloat work together.
func TestPublicMaskAndConvert(t *testing.T) {
	m, err := tensor.FromRows([][]float64{{-1, 2}, {3, -4}})
	require.NoError(t, err)

	positive := tensor.Mask(m, func(x float64) bool { return x > 0 })
	assert.Equal(t, []bool{false, true, true, false}, positive)
	assert.Equal(t, []int{1, 2}, tensor.Which(positive))

	single := tensor.ConvertFloat[float32](m)
	assert.Equal(t, []float32{-1, 3, 2, -4}, single.Data())
	assert.True(t, single.Dimensions().Equal(m.Dimensions()))
}
