// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand/v2"

	"github.com/born-ml/ndarray/internal/tensor"
	"golang.org/x/exp/constraints"
)

// Element is the constraint for tensor element types:
// float32, float64, complex64 and complex128.
type Element = tensor.Element

// Dimensions holds the per-axis sizes of a tensor.
type Dimensions = tensor.Dimensions

// Tensor is a column-major N-dimensional array.
//
// Example:
//
//	t := tensor.Zeros[float64](2, 3)
//	t.Set(1.5, 1, 2)
//	v := t.At(1, 2) // 1.5
type Tensor[T Element] = tensor.Tensor[T]

// RTensor is a real tensor.
type RTensor = tensor.RTensor

// CTensor is a complex tensor.
type CTensor = tensor.CTensor

// View is a read-only selection of a tensor.
type View[T Element] = tensor.View[T]

// MutableView is a writable selection of a tensor.
type MutableView[T Element] = tensor.MutableView[T]

// Sentinel errors.
var (
	ErrOutOfBounds     = tensor.ErrOutOfBounds
	ErrInvalidRange    = tensor.ErrInvalidRange
	ErrSizeMismatch    = tensor.ErrSizeMismatch
	ErrDegenerateInput = tensor.ErrDegenerateInput
	ErrInvalidShape    = tensor.ErrInvalidShape
)

// NewDimensions creates dimensions from axis sizes. Negative sizes are rejected.
func NewDimensions(sizes ...int) (Dimensions, error) {
	return tensor.NewDimensions(sizes...)
}

// MustDimensions is like NewDimensions but panics on error.
func MustDimensions(sizes ...int) Dimensions {
	return tensor.MustDimensions(sizes...)
}

// Creation functions

// New creates a zero-filled tensor with the given dimensions.
func New[T Element](dims Dimensions) *Tensor[T] {
	return tensor.New[T](dims)
}

// Zeros creates a zero-filled tensor.
//
// Example:
//
//	m := tensor.Zeros[complex128](3, 3)
func Zeros[T Element](sizes ...int) *Tensor[T] {
	return tensor.Zeros[T](sizes...)
}

// Ones creates a tensor filled with ones.
func Ones[T Element](sizes ...int) *Tensor[T] {
	return tensor.Ones[T](sizes...)
}

// Filled creates a tensor filled with value.
func Filled[T Element](dims Dimensions, value T) *Tensor[T] {
	return tensor.Filled(dims, value)
}

// Random creates a tensor of uniform [0, 1) values drawn from rng.
// Complex elements get independent real and imaginary parts.
func Random[T Element](rng *rand.Rand, dims Dimensions) *Tensor[T] {
	return tensor.Random[T](rng, dims)
}

// Eye creates a rows×cols matrix with ones on the main diagonal.
func Eye[T Element](rows, cols int) *Tensor[T] {
	return tensor.Eye[T](rows, cols)
}

// FromSlice creates a tensor from column-major data.
//
// Example:
//
//	m, err := tensor.FromSlice([]float64{1, 3, 2, 4}, tensor.MustDimensions(2, 2))
//	// m.At(0, 1) == 2
func FromSlice[T Element](data []T, dims Dimensions) (*Tensor[T], error) {
	return tensor.FromSlice(data, dims)
}

// FromVector creates a one-dimensional tensor.
func FromVector[T Element](data []T) *Tensor[T] {
	return tensor.FromVector(data)
}

// FromRows creates a matrix from nested rows, so rows[i][j] becomes element (i, j).
func FromRows[T Element](rows [][]T) (*Tensor[T], error) {
	return tensor.FromRows(rows)
}

// FromNested3 creates a rank-3 tensor where data[i][j][k] becomes element (i, j, k).
func FromNested3[T Element](data [][][]T) (*Tensor[T], error) {
	return tensor.FromNested3(data)
}

// Conversions

// ToComplex widens a real tensor to complex128.
func ToComplex[T constraints.Float](t *Tensor[T]) *CTensor {
	return tensor.ToComplex(t)
}

// RealPart returns the real parts of a complex tensor.
func RealPart[T constraints.Complex](t *Tensor[T]) *RTensor {
	return tensor.RealPart(t)
}

// ImagPart returns the imaginary parts of a complex tensor.
func ImagPart[T constraints.Complex](t *Tensor[T]) *RTensor {
	return tensor.ImagPart(t)
}

// Conj returns the complex conjugate.
func Conj(t *CTensor) *CTensor {
	return tensor.Conj(t)
}

// ConvertFloat converts between real element types.
//
// Example:
//
//	single := tensor.ConvertFloat[float32](m) // m is a *tensor.RTensor
func ConvertFloat[To, From constraints.Float](t *Tensor[From]) *Tensor[To] {
	return tensor.ConvertFloat[To](t)
}

// Index helpers

// Mask evaluates pred on every element, in column-major order.
func Mask[T Element](t *Tensor[T], pred func(T) bool) []bool {
	return tensor.Mask(t, pred)
}

// Iota returns start, start+1, ..., end inclusive.
func Iota(start, end int) []int { return tensor.Iota(start, end) }

// Which returns the positions where mask is true.
func Which(mask []bool) []int { return tensor.Which(mask) }

// Sort returns a sorted copy of v.
func Sort(v []int, reverse bool) []int { return tensor.Sort(v, reverse) }

// SortIndices returns the stable permutation that sorts v.
func SortIndices(v []int, reverse bool) []int { return tensor.SortIndices(v, reverse) }
