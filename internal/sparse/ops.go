package sparse

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
)

// MulVec returns s·x for a vector x with Columns() elements.
// Rows are distributed across workers according to cfg.
func (s *CSRMatrix[T]) MulVec(x *tensor.Tensor[T], cfg parallel.Config) (*tensor.Tensor[T], error) {
	if x.Size() != s.cols {
		return nil, fmt.Errorf("%dx%d matrix times vector of %d: %w", s.rows, s.cols, x.Size(), tensor.ErrSizeMismatch)
	}
	xs := x.Data()
	out := tensor.Zeros[T](s.rows)
	ys := out.MutableData()
	parallel.For(s.rows, func(r int) {
		var acc T
		for k := s.rowStart[r]; k < s.rowStart[r+1]; k++ {
			acc += s.data[k] * xs[s.column[k]]
		}
		ys[r] = acc
	}, cfg)
	return out, nil
}

// MulDense returns s·b for a dense matrix b with Columns() rows.
func (s *CSRMatrix[T]) MulDense(b *tensor.Tensor[T], cfg parallel.Config) (*tensor.Tensor[T], error) {
	if b.Rank() != 2 {
		return nil, fmt.Errorf("sparse product with rank %d tensor: %w", b.Rank(), tensor.ErrInvalidShape)
	}
	if b.Rows() != s.cols {
		return nil, fmt.Errorf("%dx%d matrix times %dx%d matrix: %w",
			s.rows, s.cols, b.Rows(), b.Columns(), tensor.ErrSizeMismatch)
	}
	n := b.Columns()
	bs := b.Data()
	out := tensor.Zeros[T](s.rows, n)
	ys := out.MutableData()
	parallel.ForChunks(s.rows, func(lo, hi int) {
		for j := 0; j < n; j++ {
			col := bs[j*s.cols : (j+1)*s.cols]
			dst := ys[j*s.rows : (j+1)*s.rows]
			for r := lo; r < hi; r++ {
				var acc T
				for k := s.rowStart[r]; k < s.rowStart[r+1]; k++ {
					acc += s.data[k] * col[s.column[k]]
				}
				dst[r] = acc
			}
		}
	}, cfg)
	return out, nil
}

// Transpose returns the cols×rows transpose.
func (s *CSRMatrix[T]) Transpose() *CSRMatrix[T] {
	triplets := s.Triplets()
	for i := range triplets {
		triplets[i].Row, triplets[i].Col = triplets[i].Col, triplets[i].Row
	}
	return assemble(s.cols, s.rows, triplets)
}

// Scale returns factor·s with the same sparsity pattern.
func (s *CSRMatrix[T]) Scale(factor T) *CSRMatrix[T] {
	out := &CSRMatrix[T]{
		rows:     s.rows,
		cols:     s.cols,
		rowStart: s.rowStart,
		column:   s.column,
		data:     make([]T, len(s.data)),
	}
	for i, v := range s.data {
		out.data[i] = factor * v
	}
	return out
}

// Add returns s + other. Both operands must have the same shape.
func (s *CSRMatrix[T]) Add(other *CSRMatrix[T]) (*CSRMatrix[T], error) {
	if s.rows != other.rows || s.cols != other.cols {
		return nil, fmt.Errorf("%dx%d plus %dx%d: %w", s.rows, s.cols, other.rows, other.cols, tensor.ErrSizeMismatch)
	}
	return assemble(s.rows, s.cols, append(s.Triplets(), other.Triplets()...)), nil
}
