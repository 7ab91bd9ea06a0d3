// Package sparse implements compressed sparse row matrices.
package sparse

import (
	"fmt"
	"slices"
	"strings"

	"github.com/born-ml/ndarray/internal/tensor"
)

// Triplet is one (row, column, value) entry used to assemble a CSRMatrix.
type Triplet[T tensor.Element] struct {
	Row   int
	Col   int
	Value T
}

// CSRMatrix is a rows×cols matrix in compressed sparse row form.
//
// Invariants:
//   - len(rowStart) == rows+1, rowStart[0] == 0, rowStart is non-decreasing
//   - rowStart[rows] == len(column) == len(data)
//   - within each row, column indices are strictly increasing and lie in [0, cols)
//
// A CSRMatrix is immutable once built; every operation returns a new matrix.
type CSRMatrix[T tensor.Element] struct {
	rows     int
	cols     int
	rowStart []int
	column   []int
	data     []T
}

// RCSRMatrix is a real sparse matrix.
type RCSRMatrix = CSRMatrix[float64]

// CCSRMatrix is a complex sparse matrix.
type CCSRMatrix = CSRMatrix[complex128]

// Zeros creates an empty rows×cols matrix with no stored entries.
func Zeros[T tensor.Element](rows, cols int) (*CSRMatrix[T], error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, err
	}
	return &CSRMatrix[T]{
		rows:     rows,
		cols:     cols,
		rowStart: make([]int, rows+1),
		column:   []int{},
		data:     []T{},
	}, nil
}

// Eye creates a rows×cols sparse matrix with ones on the main diagonal.
func Eye[T tensor.Element](rows, cols int) (*CSRMatrix[T], error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, err
	}
	n := min(rows, cols)
	triplets := make([]Triplet[T], n)
	for i := range triplets {
		triplets[i] = Triplet[T]{Row: i, Col: i, Value: T(1)}
	}
	return FromTriplets(rows, cols, triplets)
}

// FromParts builds a matrix directly from its CSR arrays after validating
// every invariant. The slices are copied.
func FromParts[T tensor.Element](rows, cols int, rowStart, column []int, data []T) (*CSRMatrix[T], error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, err
	}
	if len(rowStart) != rows+1 {
		return nil, fmt.Errorf("row start has %d entries, want %d: %w", len(rowStart), rows+1, tensor.ErrSizeMismatch)
	}
	if len(column) != len(data) {
		return nil, fmt.Errorf("%d column indices for %d values: %w", len(column), len(data), tensor.ErrSizeMismatch)
	}
	if rowStart[0] != 0 || rowStart[rows] != len(data) {
		return nil, fmt.Errorf("row start must span [0, %d], got [%d, %d]: %w",
			len(data), rowStart[0], rowStart[rows], tensor.ErrInvalidShape)
	}
	for r := 0; r < rows; r++ {
		if rowStart[r+1] < rowStart[r] {
			return nil, fmt.Errorf("row start decreases at row %d: %w", r, tensor.ErrInvalidShape)
		}
	}
	for r := 0; r < rows; r++ {
		lo, hi := rowStart[r], rowStart[r+1]
		for k := lo; k < hi; k++ {
			c := column[k]
			if c < 0 || c >= cols {
				return nil, fmt.Errorf("column %d in row %d for %d columns: %w", c, r, cols, tensor.ErrOutOfBounds)
			}
			if k > lo && column[k-1] >= c {
				return nil, fmt.Errorf("columns in row %d are not strictly increasing: %w", r, tensor.ErrInvalidShape)
			}
		}
	}
	return &CSRMatrix[T]{
		rows:     rows,
		cols:     cols,
		rowStart: slices.Clone(rowStart),
		column:   slices.Clone(column),
		data:     slices.Clone(data),
	}, nil
}

// Rows returns the number of rows.
func (s *CSRMatrix[T]) Rows() int { return s.rows }

// Columns returns the number of columns.
func (s *CSRMatrix[T]) Columns() int { return s.cols }

// Dimensions returns the matrix dimensions as a rank-2 Dimensions value.
func (s *CSRMatrix[T]) Dimensions() tensor.Dimensions {
	return tensor.MustDimensions(s.rows, s.cols)
}

// Length returns the number of stored entries.
func (s *CSRMatrix[T]) Length() int { return len(s.data) }

// IsEmpty reports whether the matrix has no rows or no columns.
func (s *CSRMatrix[T]) IsEmpty() bool { return s.rows == 0 || s.cols == 0 }

// RowStart returns the per-row start offsets. The slice must not be modified.
func (s *CSRMatrix[T]) RowStart() []int { return s.rowStart }

// ColumnIndices returns the column of every stored entry. The slice must not be modified.
func (s *CSRMatrix[T]) ColumnIndices() []int { return s.column }

// Values returns the stored values, grouped by row. The slice must not be modified.
func (s *CSRMatrix[T]) Values() []T { return s.data }

// At returns the value at (row, col), or zero when no entry is stored there.
func (s *CSRMatrix[T]) At(row, col int) (T, error) {
	var zero T
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return zero, fmt.Errorf("(%d, %d) in %dx%d matrix: %w", row, col, s.rows, s.cols, tensor.ErrOutOfBounds)
	}
	lo, hi := s.rowStart[row], s.rowStart[row+1]
	if k, found := slices.BinarySearch(s.column[lo:hi], col); found {
		return s.data[lo+k], nil
	}
	return zero, nil
}

// Triplets returns the stored entries in row-major order.
func (s *CSRMatrix[T]) Triplets() []Triplet[T] {
	out := make([]Triplet[T], 0, len(s.data))
	for r := 0; r < s.rows; r++ {
		for k := s.rowStart[r]; k < s.rowStart[r+1]; k++ {
			out = append(out, Triplet[T]{Row: r, Col: s.column[k], Value: s.data[k]})
		}
	}
	return out
}

// String renders the shape and stored entries.
func (s *CSRMatrix[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CSRMatrix[%dx%d]{", s.rows, s.cols)
	for i, t := range s.Triplets() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%d,%d)=%v", t.Row, t.Col, t.Value)
	}
	b.WriteString("}")
	return b.String()
}

func checkShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("matrix shape %dx%d: %w", rows, cols, tensor.ErrInvalidShape)
	}
	return nil
}
