package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensionsTotalSize(t *testing.T) {
	tests := []struct {
		sizes []int
		total int
	}{
		{nil, 1},
		{[]int{5}, 5},
		{[]int{2, 3}, 6},
		{[]int{2, 0, 4}, 0},
		{[]int{2, 3, 4, 5}, 120},
	}
	for _, tt := range tests {
		d := MustDimensions(tt.sizes...)
		assert.Equal(t, tt.total, d.TotalSize(), "dims %v", tt.sizes)
		assert.Equal(t, len(tt.sizes), d.Rank())
	}
}

func TestDimensionsNegativeSize(t *testing.T) {
	_, err := NewDimensions(2, -1)
	require.ErrorIs(t, err, ErrInvalidShape)
	assert.Panics(t, func() { MustDimensions(-3) })
}

func TestColumnMajorPositionMatchesManualArithmetic(t *testing.T) {
	shapes := [][]int{{4}, {3, 5}, {2, 3, 4}, {2, 3, 2, 3}}
	for _, sizes := range shapes {
		d := MustDimensions(sizes...)
		coords := make([]int, len(sizes))
		for n := 0; n < d.TotalSize(); n++ {
			// Decode n by hand, first axis fastest.
			rest := n
			for i, s := range sizes {
				coords[i] = rest % s
				rest /= s
			}
			manual := 0
			for i := len(sizes) - 1; i >= 0; i-- {
				manual = manual*sizes[i] + coords[i]
			}
			pos, err := d.ColumnMajorPosition(coords...)
			require.NoError(t, err)
			require.Equal(t, manual, pos, "dims %v coords %v", sizes, coords)
			require.Equal(t, n, pos)

			back, err := d.Coordinates(pos)
			require.NoError(t, err)
			require.Equal(t, coords, back)
		}
	}
}

func TestColumnMajorPositionErrors(t *testing.T) {
	d := MustDimensions(2, 3)

	_, err := d.ColumnMajorPosition(1)
	require.ErrorIs(t, err, ErrOutOfBounds)

	_, err = d.ColumnMajorPosition(2, 0)
	require.ErrorIs(t, err, ErrOutOfBounds)

	_, err = d.ColumnMajorPosition(0, -1)
	require.ErrorIs(t, err, ErrOutOfBounds)

	_, err = d.Coordinates(6)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestDimensionsAxisAccess(t *testing.T) {
	d := MustDimensions(2, 7)
	n, err := d.Dim(1)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = d.Dim(2)
	require.ErrorIs(t, err, ErrOutOfBounds)
	assert.Panics(t, func() { d.Size(-1) })

	assert.Equal(t, []int{1, 2}, d.Strides())
	assert.Equal(t, "[2 7]", d.String())
}

func TestDimensionsImmutable(t *testing.T) {
	sizes := []int{2, 3}
	d := MustDimensions(sizes...)
	sizes[0] = 9
	got := d.Sizes()
	got[1] = 9
	assert.Equal(t, []int{2, 3}, d.Sizes())
	assert.True(t, d.Equal(MustDimensions(2, 3)))
	assert.False(t, d.Equal(MustDimensions(2, 3, 1)))
}
