package tensor

import "fmt"

// RangeSpan is the per-axis selection applied to a tensor, one Range per axis.
type RangeSpan []Range

// Dimensions binds every range to the matching axis of parent and returns the
// shape of the selection.
//
// A span holding a single range against a tensor of rank other than one
// addresses the tensor as if it were flattened to one axis of TotalSize elements.
// Ranges are bound in place.
func (s RangeSpan) Dimensions(parent Dimensions) (Dimensions, error) {
	if len(s) == 1 && parent.Rank() != 1 {
		parent = Dimensions{sizes: []int{parent.TotalSize()}}
	}
	if len(s) != parent.Rank() {
		return Dimensions{}, fmt.Errorf("%d ranges for rank %d: %w", len(s), parent.Rank(), ErrOutOfBounds)
	}
	sizes := make([]int, len(s))
	for i := range s {
		if err := s[i].SetDimension(parent.sizes[i]); err != nil {
			return Dimensions{}, fmt.Errorf("axis %d: %w", i, err)
		}
		sizes[i] = s[i].Size()
	}
	return Dimensions{sizes: sizes}, nil
}

// Size returns the number of positions selected by the span.
func (s RangeSpan) Size() int {
	n := 1
	for _, r := range s {
		n *= r.Size()
	}
	return n
}

// Clone returns a deep copy, so binding the copy leaves s untouched.
func (s RangeSpan) Clone() RangeSpan {
	out := make(RangeSpan, len(s))
	for i, r := range s {
		if r.kind == KindIndexed {
			r.indices = append([]int(nil), r.indices...)
		}
		out[i] = r
	}
	return out
}
