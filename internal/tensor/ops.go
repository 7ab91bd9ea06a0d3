package tensor

import "fmt"

// Element-wise operations. Operands must have the same number of elements;
// the result takes the dimensions of the receiver. Mismatched sizes panic,
// like any other programmer error on already-constructed operands.

// Add returns t + other element-wise.
func (t *Tensor[T]) Add(other *Tensor[T]) *Tensor[T] {
	return t.zip("Add", other, func(a, b T) T { return a + b })
}

// Sub returns t - other element-wise.
func (t *Tensor[T]) Sub(other *Tensor[T]) *Tensor[T] {
	return t.zip("Sub", other, func(a, b T) T { return a - b })
}

// Mul returns t * other element-wise.
func (t *Tensor[T]) Mul(other *Tensor[T]) *Tensor[T] {
	return t.zip("Mul", other, func(a, b T) T { return a * b })
}

// Div returns t / other element-wise.
func (t *Tensor[T]) Div(other *Tensor[T]) *Tensor[T] {
	return t.zip("Div", other, func(a, b T) T { return a / b })
}

// Neg returns -t.
func (t *Tensor[T]) Neg() *Tensor[T] {
	return t.Map(func(x T) T { return -x })
}

// MulScalar returns t * s.
func (t *Tensor[T]) MulScalar(s T) *Tensor[T] {
	return t.Map(func(x T) T { return x * s })
}

// AddScalar returns t + s.
func (t *Tensor[T]) AddScalar(s T) *Tensor[T] {
	return t.Map(func(x T) T { return x + s })
}

// Map returns a new tensor with f applied to every element.
func (t *Tensor[T]) Map(f func(T) T) *Tensor[T] {
	src := t.Data()
	out := New[T](t.dims)
	for i, x := range src {
		out.buf.data[i] = f(x)
	}
	return out
}

// Sum returns the sum of all elements.
func (t *Tensor[T]) Sum() T {
	var s T
	for _, x := range t.Data() {
		s += x
	}
	return s
}

// EqualValues reports whether both tensors have equal dimensions and elements.
func (t *Tensor[T]) EqualValues(other *Tensor[T]) bool {
	if !t.dims.Equal(other.dims) {
		return false
	}
	a, b := t.Data(), other.Data()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// AllClose reports whether both tensors have equal dimensions and every pair
// of elements differs by at most tol in magnitude.
func (t *Tensor[T]) AllClose(other *Tensor[T], tol float64) bool {
	if !t.dims.Equal(other.dims) {
		return false
	}
	a, b := t.Data(), other.Data()
	for i := range a {
		if magnitude(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

// NotEqual returns an element-wise a != b mask.
func (t *Tensor[T]) NotEqual(other *Tensor[T]) []bool {
	a, b := t.Data(), other.Data()
	mustSameSize("NotEqual", len(a), len(b))
	out := make([]bool, len(a))
	for i := range a {
		out[i] = a[i] != b[i]
	}
	return out
}

// Diag returns the main diagonal of a matrix as a one-dimensional tensor.
func (t *Tensor[T]) Diag() (*Tensor[T], error) {
	if t.Rank() != 2 {
		return nil, fmt.Errorf("diag of rank %d tensor: %w", t.Rank(), ErrInvalidShape)
	}
	rows := t.Rows()
	n := min(rows, t.Columns())
	view, err := t.View(Stepped(0, (n-1)*(rows+1), rows+1))
	if err != nil {
		return nil, err
	}
	return view.Tensor(), nil
}

func (t *Tensor[T]) zip(op string, other *Tensor[T], f func(a, b T) T) *Tensor[T] {
	a, b := t.Data(), other.Data()
	mustSameSize(op, len(a), len(b))
	out := New[T](t.dims)
	for i := range a {
		out.buf.data[i] = f(a[i], b[i])
	}
	return out
}

func mustSameSize(op string, a, b int) {
	if a != b {
		panic(fmt.Sprintf("%s: %d vs %d elements: %v", op, a, b, ErrSizeMismatch))
	}
}
