// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides dense and sparse eigensolvers, SVD, matrix products
// and linear solves for real tensors, backed by gonum.
//
// Inputs are read through their column-major buffers and never modified.
package linalg

import (
	"github.com/born-ml/ndarray/internal/linalg"
	"github.com/born-ml/ndarray/sparse"
	"github.com/born-ml/ndarray/tensor"
)

// Errors reported by factorizations.
var (
	ErrNoConvergence = linalg.ErrNoConvergence
	ErrSingular      = linalg.ErrSingular
)

// Which selects the part of the spectrum returned by EigsSym.
type Which = linalg.Which

// Spectrum selections.
const (
	SmallestAlgebraic = linalg.SmallestAlgebraic
	LargestAlgebraic  = linalg.LargestAlgebraic
	LargestMagnitude  = linalg.LargestMagnitude
)

// MatMul returns a·b.
func MatMul(a, b *tensor.RTensor) (*tensor.RTensor, error) {
	return linalg.MatMul(a, b)
}

// EigSym returns the ascending eigenvalues of a symmetric matrix and,
// if wantVectors is set, the matching eigenvectors as columns.
//
// Example:
//
//	a, _ := tensor.FromRows([][]float64{{2, 1}, {1, 2}})
//	values, vectors, err := linalg.EigSym(a, true) // values: [1 3]
func EigSym(a *tensor.RTensor, wantVectors bool) (*tensor.RTensor, *tensor.RTensor, error) {
	return linalg.EigSym(a, wantVectors)
}

// SVD returns the thin singular value decomposition a = U·diag(S)·Vᵀ.
func SVD(a *tensor.RTensor) (u, s, v *tensor.RTensor, err error) {
	return linalg.SVD(a)
}

// Solve returns x with a·x = b.
func Solve(a, b *tensor.RTensor) (*tensor.RTensor, error) {
	return linalg.Solve(a, b)
}

// EigsSym returns k eigenpairs of a sparse symmetric matrix.
func EigsSym(s *sparse.RCSRMatrix, k int, which Which) (*tensor.RTensor, *tensor.RTensor, error) {
	return linalg.EigsSym(s, k, which)
}
