package tensor

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Tensor is a dense N-dimensional array stored in column-major order.
//
// Tensors have value semantics: Clone is O(1) and shares the buffer, and the
// first mutation through a tensor whose buffer is shared copies it privately.
// Views created with View and MutableView are windows onto the parent tensor
// and see every write made through it.
//
// A Tensor is not safe for concurrent mutation.
type Tensor[T Element] struct {
	buf  *buffer[T]
	dims Dimensions
}

// RTensor is a real tensor.
type RTensor = Tensor[float64]

// CTensor is a complex tensor.
type CTensor = Tensor[complex128]

// New creates a zero-filled tensor with the given dimensions.
func New[T Element](dims Dimensions) *Tensor[T] {
	return &Tensor[T]{
		buf:  newBuffer[T](dims.TotalSize()),
		dims: dims,
	}
}

// Dimensions returns the tensor shape.
func (t *Tensor[T]) Dimensions() Dimensions {
	return t.dims
}

// Rank returns the number of axes.
func (t *Tensor[T]) Rank() int {
	return t.dims.Rank()
}

// Size returns the total number of elements.
func (t *Tensor[T]) Size() int {
	return len(t.live().data)
}

// IsEmpty reports whether the tensor has no elements.
func (t *Tensor[T]) IsEmpty() bool {
	return t.Size() == 0
}

// Dim returns the size of one axis. Panics if the axis does not exist.
func (t *Tensor[T]) Dim(axis int) int {
	return t.dims.Size(axis)
}

// Rows returns the size of the first axis.
func (t *Tensor[T]) Rows() int {
	return t.Dim(0)
}

// Columns returns the size of the second axis.
func (t *Tensor[T]) Columns() int {
	return t.Dim(1)
}

// Data returns the underlying buffer in column-major order (zero-copy).
//
// WARNING: the slice is shared with every clone of t. Use MutableData to write.
// It stays valid until the tensor is mutated, reshaped to a new buffer, or released.
func (t *Tensor[T]) Data() []T {
	return t.live().data
}

// MutableData returns the buffer for in-place writes, copying it first if it
// is shared with another tensor.
func (t *Tensor[T]) MutableData() []T {
	return t.mutable()
}

// At returns the element at the given coordinates.
// Panics if the coordinates are out of bounds.
//
// Example:
//
//	m := tensor.Zeros[float64](3, 4)
//	v := m.At(1, 2) // row 1, column 2
func (t *Tensor[T]) At(coords ...int) T {
	v, err := t.Get(coords...)
	if err != nil {
		panic(fmt.Sprintf("At: %v", err))
	}
	return v
}

// Get returns the element at the given coordinates.
func (t *Tensor[T]) Get(coords ...int) (T, error) {
	pos, err := t.dims.ColumnMajorPosition(coords...)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.live().data[pos], nil
}

// Set stores value at the given coordinates.
// Panics if the coordinates are out of bounds.
func (t *Tensor[T]) Set(value T, coords ...int) {
	if err := t.Put(value, coords...); err != nil {
		panic(fmt.Sprintf("Set: %v", err))
	}
}

// Put stores value at the given coordinates.
func (t *Tensor[T]) Put(value T, coords ...int) error {
	pos, err := t.dims.ColumnMajorPosition(coords...)
	if err != nil {
		return err
	}
	t.mutable()[pos] = value
	return nil
}

// AtSeq returns the i-th element in column-major order.
func (t *Tensor[T]) AtSeq(i int) T {
	data := t.live().data
	if i < 0 || i >= len(data) {
		panic(fmt.Sprintf("AtSeq: offset %d for %d elements", i, len(data)))
	}
	return data[i]
}

// SetSeq stores the i-th element in column-major order.
func (t *Tensor[T]) SetSeq(i int, value T) {
	data := t.mutable()
	if i < 0 || i >= len(data) {
		panic(fmt.Sprintf("SetSeq: offset %d for %d elements", i, len(data)))
	}
	data[i] = value
}

// Clone returns a tensor sharing the same buffer (O(1)).
// The buffer is copied only when either tensor is modified (copy-on-write).
func (t *Tensor[T]) Clone() *Tensor[T] {
	t.live().addRef()
	return &Tensor[T]{buf: t.buf, dims: t.dims}
}

// Copy returns a tensor with a private copy of the data.
func (t *Tensor[T]) Copy() *Tensor[T] {
	return &Tensor[T]{
		buf:  wrapBuffer(append([]T(nil), t.live().data...)),
		dims: t.dims,
	}
}

// RefCount returns the number of tensors sharing the buffer.
func (t *Tensor[T]) RefCount() int {
	return int(t.live().refCount.Load())
}

// Release drops this tensor's reference to its buffer. The tensor, and any
// view created from it, must not be used afterwards.
func (t *Tensor[T]) Release() {
	if t.buf != nil {
		t.buf.release()
		t.buf = nil
	}
}

// Reshape replaces the dimensions, keeping the data.
// Returns ErrSizeMismatch if the total size changes.
func (t *Tensor[T]) Reshape(dims Dimensions) error {
	if dims.TotalSize() != t.Size() {
		return fmt.Errorf("reshape %v to %v: %w", t.dims, dims, ErrSizeMismatch)
	}
	t.dims = dims
	return nil
}

// Fill sets every element to value.
func (t *Tensor[T]) Fill(value T) *Tensor[T] {
	data := t.mutable()
	for i := range data {
		data[i] = value
	}
	return t
}

// FillZeros sets every element to zero.
func (t *Tensor[T]) FillZeros() *Tensor[T] {
	var zero T
	return t.Fill(zero)
}

// Randomize fills the tensor with values drawn uniformly from [0, 1).
func (t *Tensor[T]) Randomize(rng *rand.Rand) *Tensor[T] {
	data := t.mutable()
	for i := range data {
		data[i] = randomElement[T](rng)
	}
	return t
}

// String formats the tensor for diagnostics.
func (t *Tensor[T]) String() string {
	if t.buf == nil {
		return "Tensor(released)"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Tensor%v{", t.dims)
	for i, v := range t.buf.data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte('}')
	return b.String()
}

func (t *Tensor[T]) live() *buffer[T] {
	if t.buf == nil {
		panic("tensor: use of released tensor")
	}
	return t.buf
}

// mutable returns the buffer data after making sure no other tensor shares it.
func (t *Tensor[T]) mutable() []T {
	if !t.live().isUnique() {
		t.buf = t.buf.detach()
	}
	return t.buf.data
}
