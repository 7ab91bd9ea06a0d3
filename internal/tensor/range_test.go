package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeSize(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		size int
	}{
		{"single", Span(0, 0), 1},
		{"span", Span(1, 4), 4},
		{"stepped", Stepped(0, 9, 3), 4},
		{"stepped inexact", Stepped(0, 1, 2), 1},
		{"reversed", Stepped(4, 0, -2), 3},
		{"end before start", Span(3, 0), 0},
		{"end before start stepped", Stepped(2, 1, 2), 0},
		{"negative empty", Stepped(-1, -2, 1), 0},
		{"explicit empty", Empty(), 0},
		{"indexed", Indexed([]int{3, 1, 1}), 3},
		{"unbound full", Full(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.size, tt.r.Size())
		})
	}
}

func TestRangeFullResolvesOnBinding(t *testing.T) {
	r := Full()
	assert.False(t, r.IsBound())
	require.NoError(t, r.SetDimension(5))
	assert.True(t, r.IsFull())
	assert.Equal(t, 5, r.Size())
	assert.Equal(t, 0, r.Start())
	assert.Equal(t, 4, r.End())
	assert.Equal(t, 1, r.Step())
}

func TestRangeRebinding(t *testing.T) {
	r := Span(0, 1)
	require.NoError(t, r.SetDimension(3))
	require.NoError(t, r.SetDimension(3))
	err := r.SetDimension(4)
	require.ErrorIs(t, err, ErrInvalidRange)
	assert.Equal(t, 3, r.Dimension())
}

func TestRangeValidation(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		dim  int
		err  error
	}{
		{"zero step", Stepped(0, 2, 0), 3, ErrInvalidRange},
		{"negative step forward", Stepped(0, 2, -1), 3, ErrInvalidRange},
		{"start past end of axis", Span(3, 3), 3, ErrOutOfBounds},
		{"negative start", Span(-1, 1), 3, ErrOutOfBounds},
		{"index past axis", Indexed([]int{0, 3}), 3, ErrOutOfBounds},
		{"negative dimension", Span(0, 0), -1, ErrInvalidShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.r
			err := r.SetDimension(tt.dim)
			require.ErrorIs(t, err, tt.err)
			assert.False(t, r.IsBound())
		})
	}
}

func TestRangeEmptyAcceptsAnyDimension(t *testing.T) {
	r := Empty()
	require.NoError(t, r.SetDimension(0))
	r2, err := Bound(-1, -2, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, r2.Size())
}

func TestRangeIndicesAreCopied(t *testing.T) {
	ix := []int{2, 0}
	r := Indexed(ix)
	ix[0] = 7
	assert.True(t, r.HasIndices())
	assert.Equal(t, []int{2, 0}, r.Indices())
	assert.Nil(t, Span(0, 1).Indices())
}

func TestRangeString(t *testing.T) {
	r, err := Bound(0, 4, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, "0:4:2/5", r.String())
	assert.Equal(t, "_", Full().String())
	assert.Equal(t, "[1,2]", Indexed([]int{1, 2}).String())
	assert.Equal(t, "empty/0", EmptyOf(0).String())
	assert.Equal(t, "indexed", KindIndexed.String())
}
