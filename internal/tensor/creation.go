package tensor

import (
	"fmt"
	"math/rand/v2"
)

// Zeros creates a zero-filled tensor with the given axis sizes.
// Panics on negative sizes.
//
// Example:
//
//	m := tensor.Zeros[float64](3, 4)
func Zeros[T Element](sizes ...int) *Tensor[T] {
	return New[T](MustDimensions(sizes...))
}

// Ones creates a tensor filled with ones.
func Ones[T Element](sizes ...int) *Tensor[T] {
	return Zeros[T](sizes...).Fill(T(1))
}

// Filled creates a tensor filled with value.
func Filled[T Element](dims Dimensions, value T) *Tensor[T] {
	return New[T](dims).Fill(value)
}

// Random creates a tensor of values drawn uniformly from [0, 1) using rng.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	t := tensor.Random[float64](rng, tensor.MustDimensions(2, 3))
func Random[T Element](rng *rand.Rand, dims Dimensions) *Tensor[T] {
	return New[T](dims).Randomize(rng)
}

// Eye creates a rows×cols matrix with ones on the main diagonal.
func Eye[T Element](rows, cols int) *Tensor[T] {
	t := Zeros[T](rows, cols)
	for i := 0; i < rows && i < cols; i++ {
		t.buf.data[i+i*rows] = T(1)
	}
	return t
}

// FromSlice creates a tensor with the given dimensions from column-major data.
// The slice is copied.
func FromSlice[T Element](data []T, dims Dimensions) (*Tensor[T], error) {
	if dims.TotalSize() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d: %w",
			dims, dims.TotalSize(), len(data), ErrSizeMismatch)
	}
	return &Tensor[T]{buf: wrapBuffer(append([]T(nil), data...)), dims: dims}, nil
}

// FromVector creates a one-dimensional tensor from data. The slice is copied.
func FromVector[T Element](data []T) *Tensor[T] {
	return &Tensor[T]{
		buf:  wrapBuffer(append([]T(nil), data...)),
		dims: Dimensions{sizes: []int{len(data)}},
	}
}

// FromRows creates a matrix from a list of rows, so that element (i, j) is rows[i][j].
//
// Example:
//
//	m, _ := tensor.FromRows([][]float64{{1, 2}, {3, 4}}) // m.At(0, 1) == 2
func FromRows[T Element](rows [][]T) (*Tensor[T], error) {
	nrows, ncols := len(rows), 0
	if nrows > 0 {
		ncols = len(rows[0])
	}
	t := Zeros[T](nrows, ncols)
	for i, row := range rows {
		if len(row) != ncols {
			return nil, fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), ncols, ErrSizeMismatch)
		}
		for j, v := range row {
			t.buf.data[i+j*nrows] = v
		}
	}
	return t, nil
}

// FromNested3 creates a three-dimensional tensor so that element (i, j, k) is data[i][j][k].
func FromNested3[T Element](data [][][]T) (*Tensor[T], error) {
	d0, d1, d2 := len(data), 0, 0
	if d0 > 0 {
		d1 = len(data[0])
		if d1 > 0 {
			d2 = len(data[0][0])
		}
	}
	t := Zeros[T](d0, d1, d2)
	for i, plane := range data {
		if len(plane) != d1 {
			return nil, fmt.Errorf("plane %d has %d rows, want %d: %w", i, len(plane), d1, ErrSizeMismatch)
		}
		for j, row := range plane {
			if len(row) != d2 {
				return nil, fmt.Errorf("row (%d,%d) has %d elements, want %d: %w", i, j, len(row), d2, ErrSizeMismatch)
			}
			for k, v := range row {
				t.buf.data[i+d0*(j+d1*k)] = v
			}
		}
	}
	return t, nil
}
