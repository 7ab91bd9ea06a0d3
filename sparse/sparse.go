// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package sparse provides compressed sparse row (CSR) matrices.
//
// Matrices are assembled from unordered (row, column, value) triplets:
// entries are sorted by row and then column, and duplicate coordinates are
// summed.
//
// Example:
//
//	s, err := sparse.FromTriplets(2, 2, []sparse.Triplet[float64]{
//	    {Row: 0, Col: 0, Value: 1},
//	    {Row: 0, Col: 0, Value: 2},
//	    {Row: 1, Col: 1, Value: 5},
//	})
//	// s.RowStart() == [0 1 2], s.ColumnIndices() == [0 1], s.Values() == [3 5]
package sparse

import (
	"math/rand/v2"

	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/sparse"
	"github.com/born-ml/ndarray/tensor"
)

// Triplet is one (row, column, value) entry.
type Triplet[T tensor.Element] = sparse.Triplet[T]

// CSRMatrix is an immutable sparse matrix in compressed sparse row form.
type CSRMatrix[T tensor.Element] = sparse.CSRMatrix[T]

// RCSRMatrix is a real sparse matrix.
type RCSRMatrix = sparse.RCSRMatrix

// CCSRMatrix is a complex sparse matrix.
type CCSRMatrix = sparse.CCSRMatrix

// ParallelConfig controls how sparse products split rows across goroutines.
type ParallelConfig = parallel.Config

// InferSize sizes an axis as one past its largest index in FromCoordinates.
const InferSize = sparse.InferSize

// DefaultParallel returns a configuration sized to the number of CPUs.
func DefaultParallel() ParallelConfig { return parallel.DefaultConfig() }

// Sequential returns a configuration that runs products on the calling goroutine.
func Sequential() ParallelConfig { return parallel.Sequential() }

// Zeros creates a rows×cols matrix without stored entries.
func Zeros[T tensor.Element](rows, cols int) (*CSRMatrix[T], error) {
	return sparse.Zeros[T](rows, cols)
}

// Eye creates a sparse identity-like matrix.
func Eye[T tensor.Element](rows, cols int) (*CSRMatrix[T], error) {
	return sparse.Eye[T](rows, cols)
}

// FromTriplets assembles a matrix, summing duplicate coordinates.
func FromTriplets[T tensor.Element](rows, cols int, triplets []Triplet[T]) (*CSRMatrix[T], error) {
	return sparse.FromTriplets(rows, cols, triplets)
}

// FromCoordinates assembles a matrix from parallel index and value slices.
func FromCoordinates[T tensor.Element](rowIdx, colIdx []int, data []T, rows, cols int) (*CSRMatrix[T], error) {
	return sparse.FromCoordinates(rowIdx, colIdx, data, rows, cols)
}

// FromParts validates and copies raw CSR arrays.
func FromParts[T tensor.Element](rows, cols int, rowStart, column []int, data []T) (*CSRMatrix[T], error) {
	return sparse.FromParts(rows, cols, rowStart, column, data)
}

// Random creates a matrix whose positions are filled independently with probability density.
func Random[T tensor.Element](rng *rand.Rand, rows, cols int, density float64) (*CSRMatrix[T], error) {
	return sparse.Random[T](rng, rows, cols, density)
}

// FromDense extracts the nonzero elements of a matrix.
func FromDense[T tensor.Element](t *tensor.Tensor[T]) (*CSRMatrix[T], error) {
	return sparse.FromDense(t)
}

// Full converts a sparse matrix to a dense tensor.
func Full[T tensor.Element](s *CSRMatrix[T]) *tensor.Tensor[T] {
	return sparse.Full(s)
}
