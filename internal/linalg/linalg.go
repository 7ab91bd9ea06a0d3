// Package linalg adapts column-major tensors to gonum's dense LAPACK-backed
// routines. Only real float64 matrices are supported.
package linalg

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndarray/internal/tensor"
)

// ErrNoConvergence reports a factorization that did not complete.
var ErrNoConvergence = errors.New("linalg: factorization did not converge")

// ErrSingular reports a singular or numerically singular system.
var ErrSingular = errors.New("linalg: singular matrix")

// toDense copies a column-major matrix into a row-major gonum matrix.
// Both dimensions must be positive.
func toDense(a *tensor.RTensor) *mat.Dense {
	rows, cols := a.Rows(), a.Columns()
	// Column-major rows×cols data is the row-major layout of the transpose.
	t := mat.NewDense(cols, rows, append([]float64(nil), a.Data()...))
	var out mat.Dense
	out.CloneFrom(t.T())
	return &out
}

// fromMatrix copies any gonum matrix into a column-major tensor.
func fromMatrix(m mat.Matrix) *tensor.RTensor {
	rows, cols := m.Dims()
	out := tensor.Zeros[float64](rows, cols)
	data := out.MutableData()
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			data[i+j*rows] = m.At(i, j)
		}
	}
	return out
}

func checkMatrix(op string, a *tensor.RTensor) error {
	if a.Rank() != 2 {
		return fmt.Errorf("%s of rank %d tensor: %w", op, a.Rank(), tensor.ErrInvalidShape)
	}
	return nil
}

func checkSquare(op string, a *tensor.RTensor) error {
	if err := checkMatrix(op, a); err != nil {
		return err
	}
	if a.Rows() != a.Columns() {
		return fmt.Errorf("%s of %dx%d matrix: %w", op, a.Rows(), a.Columns(), tensor.ErrInvalidShape)
	}
	if a.Rows() == 0 {
		return fmt.Errorf("%s of 0x0 matrix: %w", op, tensor.ErrDegenerateInput)
	}
	return nil
}

// MatMul returns the matrix product a·b.
func MatMul(a, b *tensor.RTensor) (*tensor.RTensor, error) {
	if err := checkMatrix("matmul", a); err != nil {
		return nil, err
	}
	if err := checkMatrix("matmul", b); err != nil {
		return nil, err
	}
	if a.Columns() != b.Rows() {
		return nil, fmt.Errorf("matmul %dx%d by %dx%d: %w",
			a.Rows(), a.Columns(), b.Rows(), b.Columns(), tensor.ErrSizeMismatch)
	}
	if a.Rows() == 0 || b.Columns() == 0 || a.Columns() == 0 {
		return tensor.Zeros[float64](a.Rows(), b.Columns()), nil
	}
	var out mat.Dense
	out.Mul(toDense(a), toDense(b))
	return fromMatrix(&out), nil
}

// EigSym diagonalizes a symmetric matrix. Eigenvalues are returned in
// ascending order; when wantVectors is set, column k of the second result is
// the normalized eigenvector for eigenvalue k, otherwise it is nil.
func EigSym(a *tensor.RTensor, wantVectors bool) (*tensor.RTensor, *tensor.RTensor, error) {
	if err := checkSquare("eigsym", a); err != nil {
		return nil, nil, err
	}
	n := a.Rows()
	sym := mat.NewSymDense(n, append([]float64(nil), a.Data()...))

	var es mat.EigenSym
	if ok := es.Factorize(sym, wantVectors); !ok {
		return nil, nil, fmt.Errorf("eigsym of %dx%d matrix: %w", n, n, ErrNoConvergence)
	}
	values := tensor.FromVector(es.Values(nil))
	if !wantVectors {
		return values, nil, nil
	}
	var vectors mat.Dense
	es.VectorsTo(&vectors)
	return values, fromMatrix(&vectors), nil
}

// SVD computes the thin singular value decomposition a = U·diag(S)·Vᵀ.
// For an m×n matrix with k = min(m, n), U is m×k, S has k descending values
// and V is n×k.
func SVD(a *tensor.RTensor) (u, s, v *tensor.RTensor, err error) {
	if err := checkMatrix("svd", a); err != nil {
		return nil, nil, nil, err
	}
	if a.Rows() == 0 || a.Columns() == 0 {
		return nil, nil, nil, fmt.Errorf("svd of %dx%d matrix: %w", a.Rows(), a.Columns(), tensor.ErrDegenerateInput)
	}
	var svd mat.SVD
	if ok := svd.Factorize(toDense(a), mat.SVDThin); !ok {
		return nil, nil, nil, fmt.Errorf("svd of %dx%d matrix: %w", a.Rows(), a.Columns(), ErrNoConvergence)
	}
	var um, vm mat.Dense
	svd.UTo(&um)
	svd.VTo(&vm)
	return fromMatrix(&um), tensor.FromVector(svd.Values(nil)), fromMatrix(&vm), nil
}

// Solve returns x with a·x = b for a square a. b may be a vector of a.Rows()
// elements or a matrix with a.Rows() rows; x has the same rank as b.
func Solve(a, b *tensor.RTensor) (*tensor.RTensor, error) {
	if err := checkSquare("solve", a); err != nil {
		return nil, err
	}
	n := a.Rows()
	var rhs *tensor.RTensor
	switch b.Rank() {
	case 1:
		rhs = b.Copy()
		if err := rhs.Reshape(tensor.MustDimensions(b.Size(), 1)); err != nil {
			return nil, err
		}
	case 2:
		rhs = b
	default:
		return nil, fmt.Errorf("solve with rank %d right-hand side: %w", b.Rank(), tensor.ErrInvalidShape)
	}
	if rhs.Rows() != n {
		return nil, fmt.Errorf("solve %dx%d system with %d right-hand rows: %w", n, n, rhs.Rows(), tensor.ErrSizeMismatch)
	}
	if rhs.Columns() == 0 {
		return tensor.New[float64](b.Dimensions()), nil
	}

	var x mat.Dense
	if err := x.Solve(toDense(a), toDense(rhs)); err != nil {
		// gonum reports both exact and numerical singularity this way.
		return nil, fmt.Errorf("%w: %w", ErrSingular, err)
	}
	out := fromMatrix(&x)
	if b.Rank() == 1 {
		if err := out.Reshape(b.Dimensions()); err != nil {
			return nil, err
		}
	}
	return out, nil
}
