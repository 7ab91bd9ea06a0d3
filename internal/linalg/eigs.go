package linalg

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/born-ml/ndarray/internal/sparse"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Which selects the part of the spectrum EigsSym returns.
type Which int

const (
	// SmallestAlgebraic selects the k smallest eigenvalues, ascending.
	SmallestAlgebraic Which = iota
	// LargestAlgebraic selects the k largest eigenvalues, descending.
	LargestAlgebraic
	// LargestMagnitude selects the k eigenvalues of largest absolute value, descending by magnitude.
	LargestMagnitude
)

// String returns the conventional two-letter code.
func (w Which) String() string {
	switch w {
	case SmallestAlgebraic:
		return "SA"
	case LargestAlgebraic:
		return "LA"
	case LargestMagnitude:
		return "LM"
	default:
		return fmt.Sprintf("Which(%d)", int(w))
	}
}

// EigsSym returns k eigenpairs of a sparse symmetric matrix. The matrix is
// densified and fully diagonalized, so this is meant for moderate sizes.
// Column j of the vector result belongs to value j.
func EigsSym(s *sparse.RCSRMatrix, k int, which Which) (*tensor.RTensor, *tensor.RTensor, error) {
	n := s.Rows()
	if n != s.Columns() {
		return nil, nil, fmt.Errorf("eigssym of %dx%d matrix: %w", n, s.Columns(), tensor.ErrInvalidShape)
	}
	if n == 0 {
		return nil, nil, fmt.Errorf("eigssym of 0x0 matrix: %w", tensor.ErrDegenerateInput)
	}
	if k < 1 || k > n {
		return nil, nil, fmt.Errorf("%d eigenpairs of %dx%d matrix: %w", k, n, n, tensor.ErrOutOfBounds)
	}

	values, vectors, err := EigSym(sparse.Full(s), true)
	if err != nil {
		return nil, nil, err
	}
	all := values.Data()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	switch which {
	case SmallestAlgebraic:
	case LargestAlgebraic:
		slices.Reverse(order)
	case LargestMagnitude:
		slices.SortStableFunc(order, func(a, b int) int {
			return cmp.Compare(math.Abs(all[b]), math.Abs(all[a]))
		})
	default:
		return nil, nil, fmt.Errorf("eigssym selection %v: %w", which, tensor.ErrInvalidRange)
	}
	order = order[:k]

	outValues := tensor.Zeros[float64](k)
	outVectors := tensor.Zeros[float64](n, k)
	src := vectors.Data()
	dst := outVectors.MutableData()
	for j, col := range order {
		outValues.SetSeq(j, all[col])
		copy(dst[j*n:(j+1)*n], src[col*n:(col+1)*n])
	}
	return outValues, outVectors, nil
}
