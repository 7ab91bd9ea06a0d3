package tensor

import (
	"fmt"
	"iter"
)

// View is a read-only window over a subset of a tensor's elements.
//
// A view borrows its parent: it reads the parent's current buffer on every
// access, so it sees all writes made through the parent or through any
// MutableView, and it must not be used after the parent has been released.
type View[T Element] struct {
	parent *Tensor[T]
	ranges RangeSpan
	dims   Dimensions
	it     *RangeIterator
}

// MutableView is a View that can also write through to the parent tensor.
type MutableView[T Element] struct {
	View[T]
}

// View selects elements with one Range per axis, or a single Range over the
// flattened tensor. The ranges passed in are not modified.
//
// Example:
//
//	col, _ := m.View(tensor.Full(), tensor.Single(1)) // second column
//	c := col.Tensor()                                 // copy-out
func (t *Tensor[T]) View(ranges ...Range) (*View[T], error) {
	t.live()
	span := RangeSpan(ranges).Clone()
	dims, err := span.Dimensions(t.dims)
	if err != nil {
		return nil, fmt.Errorf("view of %v: %w", t.dims, err)
	}
	it, err := NewRangeIterator(span...)
	if err != nil {
		return nil, fmt.Errorf("view of %v: %w", t.dims, err)
	}
	return &View[T]{parent: t, ranges: span, dims: dims, it: it}, nil
}

// MutableView is like View but allows assignment into the selection.
func (t *Tensor[T]) MutableView(ranges ...Range) (*MutableView[T], error) {
	v, err := t.View(ranges...)
	if err != nil {
		return nil, err
	}
	return &MutableView[T]{View: *v}, nil
}

// Dimensions returns the shape of the selection.
func (v *View[T]) Dimensions() Dimensions {
	return v.dims
}

// Size returns the number of selected elements.
func (v *View[T]) Size() int {
	return v.it.Size()
}

// Ranges returns a copy of the bound ranges backing the view.
func (v *View[T]) Ranges() RangeSpan {
	return v.ranges.Clone()
}

// Iterator returns a fresh iterator over the parent offsets of the selection.
func (v *View[T]) Iterator() *RangeIterator {
	it := v.it.Clone()
	it.Reset()
	return it
}

// Values yields the selected elements in iteration order.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		data := v.parent.live().data
		for off := range v.it.Offsets() {
			if !yield(data[off]) {
				return
			}
		}
	}
}

// Tensor copies the selected elements into a new tensor shaped like the view.
func (v *View[T]) Tensor() *Tensor[T] {
	out := New[T](v.dims)
	data := v.parent.live().data
	i := 0
	for off := range v.it.Offsets() {
		out.buf.data[i] = data[off]
		i++
	}
	return out
}

// Assign copies src, in column-major order, into the selection.
// Returns ErrSizeMismatch if the element counts differ.
func (m *MutableView[T]) Assign(src *Tensor[T]) error {
	vals := src.Data()
	if len(vals) != m.Size() {
		return fmt.Errorf("assign %d elements into view of %d: %w", len(vals), m.Size(), ErrSizeMismatch)
	}
	if src.buf == m.parent.buf {
		vals = append([]T(nil), vals...)
	}
	m.write(vals)
	return nil
}

// AssignView copies the elements of another view into the selection.
// The source is read completely before writing, so both views may overlap.
func (m *MutableView[T]) AssignView(src *View[T]) error {
	if src.Size() != m.Size() {
		return fmt.Errorf("assign %d elements into view of %d: %w", src.Size(), m.Size(), ErrSizeMismatch)
	}
	vals := make([]T, 0, src.Size())
	for x := range src.Values() {
		vals = append(vals, x)
	}
	m.write(vals)
	return nil
}

// Fill broadcasts value to every selected element.
func (m *MutableView[T]) Fill(value T) {
	data := m.parent.mutable()
	for off := range m.it.Offsets() {
		data[off] = value
	}
}

// Apply replaces every selected element x with f(x), in iteration order.
func (m *MutableView[T]) Apply(f func(T) T) {
	data := m.parent.mutable()
	for off := range m.it.Offsets() {
		data[off] = f(data[off])
	}
}

func (m *MutableView[T]) write(vals []T) {
	data := m.parent.mutable()
	i := 0
	for off := range m.it.Offsets() {
		data[off] = vals[i]
		i++
	}
}
