package sparse

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/born-ml/ndarray/internal/tensor"
)

// InferSize asks FromCoordinates to size an axis as one past its largest index.
const InferSize = -1

// FromTriplets assembles a rows×cols matrix from unordered triplets.
// Triplets are sorted by row, then column, and entries sharing the same
// (row, col) are summed. Summed entries are kept even when they cancel to zero.
func FromTriplets[T tensor.Element](rows, cols int, triplets []Triplet[T]) (*CSRMatrix[T], error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, err
	}
	for i, t := range triplets {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, fmt.Errorf("triplet %d at (%d, %d) in %dx%d matrix: %w",
				i, t.Row, t.Col, rows, cols, tensor.ErrOutOfBounds)
		}
	}
	return assemble(rows, cols, slices.Clone(triplets)), nil
}

// FromCoordinates assembles a matrix from parallel row, column and value
// slices. Pass InferSize for rows or cols to use one past the largest index.
func FromCoordinates[T tensor.Element](rowIdx, colIdx []int, data []T, rows, cols int) (*CSRMatrix[T], error) {
	if len(rowIdx) != len(colIdx) || len(rowIdx) != len(data) {
		return nil, fmt.Errorf("%d rows, %d columns and %d values: %w",
			len(rowIdx), len(colIdx), len(data), tensor.ErrSizeMismatch)
	}
	if rows == InferSize {
		rows = inferSize(rowIdx)
	}
	if cols == InferSize {
		cols = inferSize(colIdx)
	}
	triplets := make([]Triplet[T], len(data))
	for i := range data {
		triplets[i] = Triplet[T]{Row: rowIdx[i], Col: colIdx[i], Value: data[i]}
	}
	return FromTriplets(rows, cols, triplets)
}

// Random creates a rows×cols matrix where every position holds an entry with
// probability density. Values are drawn like tensor.Random.
func Random[T tensor.Element](rng *rand.Rand, rows, cols int, density float64) (*CSRMatrix[T], error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, err
	}
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("density %v outside [0, 1]: %w", density, tensor.ErrInvalidRange)
	}
	var triplets []Triplet[T]
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rng.Float64() < density {
				triplets = append(triplets, Triplet[T]{Row: r, Col: c, Value: tensor.RandomElement[T](rng)})
			}
		}
	}
	return assemble(rows, cols, triplets), nil
}

// FromDense extracts the nonzero elements of a matrix.
func FromDense[T tensor.Element](t *tensor.Tensor[T]) (*CSRMatrix[T], error) {
	if t.Rank() != 2 {
		return nil, fmt.Errorf("sparse conversion of rank %d tensor: %w", t.Rank(), tensor.ErrInvalidShape)
	}
	rows, cols := t.Rows(), t.Columns()
	data := t.Data()
	var zero T
	out := &CSRMatrix[T]{rows: rows, cols: cols, rowStart: make([]int, rows+1), column: []int{}, data: []T{}}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if v := data[r+c*rows]; v != zero {
				out.column = append(out.column, c)
				out.data = append(out.data, v)
			}
		}
		out.rowStart[r+1] = len(out.data)
	}
	return out, nil
}

// Full converts a sparse matrix to a dense rows×cols tensor.
func Full[T tensor.Element](s *CSRMatrix[T]) *tensor.Tensor[T] {
	out := tensor.Zeros[T](s.rows, s.cols)
	data := out.MutableData()
	for r := 0; r < s.rows; r++ {
		for k := s.rowStart[r]; k < s.rowStart[r+1]; k++ {
			data[r+s.column[k]*s.rows] = s.data[k]
		}
	}
	return out
}

// assemble sorts triplets in place and merges duplicates by summing.
// Triplets must already be within bounds.
func assemble[T tensor.Element](rows, cols int, triplets []Triplet[T]) *CSRMatrix[T] {
	slices.SortStableFunc(triplets, func(a, b Triplet[T]) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})

	out := &CSRMatrix[T]{
		rows:     rows,
		cols:     cols,
		rowStart: make([]int, rows+1),
		column:   make([]int, 0, len(triplets)),
		data:     make([]T, 0, len(triplets)),
	}
	for i, t := range triplets {
		if i > 0 && t.Row == triplets[i-1].Row && t.Col == triplets[i-1].Col {
			out.data[len(out.data)-1] += t.Value
			continue
		}
		out.column = append(out.column, t.Col)
		out.data = append(out.data, t.Value)
		out.rowStart[t.Row+1]++
	}
	for r := 0; r < rows; r++ {
		out.rowStart[r+1] += out.rowStart[r]
	}
	return out
}

func inferSize(ix []int) int {
	if len(ix) == 0 {
		return 0
	}
	return max(slices.Max(ix)+1, 0)
}
