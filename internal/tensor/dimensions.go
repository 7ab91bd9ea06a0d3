package tensor

import (
	"fmt"
	"strings"
)

// Dimensions is the immutable shape of an N-dimensional array.
//
// Elements are laid out in column-major order: the first axis varies fastest,
// so coordinate (i0, i1, ..., ik) lives at i0 + d0*(i1 + d1*(i2 + ...)).
type Dimensions struct {
	sizes []int
}

// NewDimensions creates Dimensions from per-axis sizes.
// Returns ErrInvalidShape if any size is negative.
func NewDimensions(sizes ...int) (Dimensions, error) {
	for i, n := range sizes {
		if n < 0 {
			return Dimensions{}, fmt.Errorf("axis %d has size %d: %w", i, n, ErrInvalidShape)
		}
	}
	return Dimensions{sizes: append([]int(nil), sizes...)}, nil
}

// MustDimensions is like NewDimensions but panics on invalid sizes.
func MustDimensions(sizes ...int) Dimensions {
	d, err := NewDimensions(sizes...)
	if err != nil {
		panic(err)
	}
	return d
}

// Rank returns the number of axes.
func (d Dimensions) Rank() int {
	return len(d.sizes)
}

// TotalSize returns the product of all axis sizes: 1 for rank 0, 0 if any axis is empty.
func (d Dimensions) TotalSize() int {
	n := 1
	for _, s := range d.sizes {
		n *= s
	}
	return n
}

// Dim returns the size of the given axis.
func (d Dimensions) Dim(axis int) (int, error) {
	if axis < 0 || axis >= len(d.sizes) {
		return 0, fmt.Errorf("axis %d for rank %d: %w", axis, len(d.sizes), ErrOutOfBounds)
	}
	return d.sizes[axis], nil
}

// Size returns the size of the given axis and panics if the axis does not exist.
func (d Dimensions) Size(axis int) int {
	n, err := d.Dim(axis)
	if err != nil {
		panic(err)
	}
	return n
}

// Sizes returns a copy of the per-axis sizes.
func (d Dimensions) Sizes() []int {
	return append([]int(nil), d.sizes...)
}

// Strides returns the column-major stride of every axis.
func (d Dimensions) Strides() []int {
	strides := make([]int, len(d.sizes))
	s := 1
	for i, n := range d.sizes {
		strides[i] = s
		s *= n
	}
	return strides
}

// ColumnMajorPosition maps a coordinate tuple to its linear offset.
func (d Dimensions) ColumnMajorPosition(coords ...int) (int, error) {
	if len(coords) != len(d.sizes) {
		return 0, fmt.Errorf("got %d coordinates for rank %d: %w", len(coords), len(d.sizes), ErrOutOfBounds)
	}
	pos := 0
	for i := len(coords) - 1; i >= 0; i-- {
		c, n := coords[i], d.sizes[i]
		if c < 0 || c >= n {
			return 0, fmt.Errorf("coordinate %d on axis %d of size %d: %w", c, i, n, ErrOutOfBounds)
		}
		pos = pos*n + c
	}
	return pos, nil
}

// Coordinates is the inverse of ColumnMajorPosition.
func (d Dimensions) Coordinates(offset int) ([]int, error) {
	total := d.TotalSize()
	if offset < 0 || offset >= total {
		return nil, fmt.Errorf("offset %d for %d elements: %w", offset, total, ErrOutOfBounds)
	}
	coords := make([]int, len(d.sizes))
	for i, n := range d.sizes {
		coords[i] = offset % n
		offset /= n
	}
	return coords, nil
}

// Equal reports whether both shapes have the same rank and sizes.
func (d Dimensions) Equal(other Dimensions) bool {
	if len(d.sizes) != len(other.sizes) {
		return false
	}
	for i := range d.sizes {
		if d.sizes[i] != other.sizes[i] {
			return false
		}
	}
	return true
}

// String formats the shape as [d0 d1 ...].
func (d Dimensions) String() string {
	parts := make([]string, len(d.sizes))
	for i, n := range d.sizes {
		parts[i] = fmt.Sprint(n)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
