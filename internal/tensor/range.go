package tensor

import (
	"fmt"
	"strings"
)

// RangeKind enumerates the three shapes a Range can take.
type RangeKind uint8

const (
	// KindFull selects an entire axis; it is resolved once the axis size is bound.
	KindFull RangeKind = iota
	// KindStepped is the arithmetic progression start, start+step, ... up to end inclusive.
	KindStepped
	// KindIndexed is an explicit list of positions, in the order given.
	KindIndexed
)

// String returns a human-readable name for the kind.
func (k RangeKind) String() string {
	switch k {
	case KindFull:
		return "full"
	case KindStepped:
		return "stepped"
	case KindIndexed:
		return "indexed"
	default:
		return "unknown"
	}
}

const unboundDimension = -1

// Range is a one-dimensional index selection along one axis.
//
// The size of the axis it selects from may be left unbound at construction time
// and supplied later with SetDimension, typically by RangeSpan when the range is
// paired with a tensor's Dimensions.
type Range struct {
	kind    RangeKind
	start   int
	end     int
	step    int
	dim     int
	empty   bool
	indices []int
}

// Full selects every position of an axis (the "_" wildcard).
func Full() Range {
	return Range{kind: KindFull, step: 1, end: -1, dim: unboundDimension}
}

// Span selects start..end inclusive with step 1.
func Span(start, end int) Range {
	return Stepped(start, end, 1)
}

// Single selects exactly one position.
func Single(i int) Range {
	return Stepped(i, i, 1)
}

// Stepped selects start, start+step, ... while not passing end (inclusive).
// A negative step walks backwards and requires start >= end.
func Stepped(start, end, step int) Range {
	return Range{kind: KindStepped, start: start, end: end, step: step, dim: unboundDimension}
}

// Bound is Stepped with the axis size known up front.
func Bound(start, end, step, dim int) (Range, error) {
	r := Stepped(start, end, step)
	if err := r.SetDimension(dim); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Empty selects nothing. Its axis size is left unbound.
func Empty() Range {
	return Range{kind: KindStepped, start: 0, end: -1, step: 1, dim: unboundDimension, empty: true}
}

// EmptyOf is Empty bound to an axis of size dim.
func EmptyOf(dim int) Range {
	r := Empty()
	r.dim = dim
	return r
}

// Indexed selects the given positions in order. Positions need not be sorted
// or unique.
func Indexed(indices []int) Range {
	return Range{
		kind:    KindIndexed,
		step:    1,
		dim:     unboundDimension,
		indices: append([]int(nil), indices...),
	}
}

// Kind returns which of the three range shapes this is.
func (r Range) Kind() RangeKind { return r.kind }

// HasIndices reports whether the range is an explicit index list.
func (r Range) HasIndices() bool { return r.kind == KindIndexed }

// IsFull reports whether the range is the whole-axis wildcard.
func (r Range) IsFull() bool { return r.kind == KindFull }

// IsBound reports whether the axis size has been supplied.
func (r Range) IsBound() bool { return r.dim != unboundDimension }

// Dimension returns the bound axis size, or -1 if unbound.
func (r Range) Dimension() int { return r.dim }

// Start returns the first selected position of a progression.
func (r Range) Start() int { return r.start }

// End returns the inclusive limit of a progression.
func (r Range) End() int { return r.end }

// Step returns the progression increment.
func (r Range) Step() int { return r.step }

// Indices returns a copy of the explicit positions, or nil for progressions.
func (r Range) Indices() []int {
	if r.kind != KindIndexed {
		return nil
	}
	return append([]int(nil), r.indices...)
}

// IsEmpty reports whether the range selects nothing.
func (r Range) IsEmpty() bool { return r.Size() == 0 }

// Size returns the number of selected positions without materializing them.
// An unbound wildcard has no size yet and reports 0.
func (r Range) Size() int {
	switch r.kind {
	case KindIndexed:
		return len(r.indices)
	case KindFull:
		return max(r.dim, 0)
	}
	if r.empty {
		return 0
	}
	switch {
	case r.step > 0 && r.end >= r.start:
		return (r.end-r.start)/r.step + 1
	case r.step < 0 && r.start >= r.end:
		return (r.start-r.end)/(-r.step) + 1
	default:
		return 0
	}
}

// at returns the k-th selected position.
func (r Range) at(k int) int {
	if r.kind == KindIndexed {
		return r.indices[k]
	}
	return r.start + k*r.step
}

// SetDimension binds the size of the axis the range selects from.
//
// Binding twice with the same size is a no-op; binding to a different size
// returns ErrInvalidRange. Positions outside [0, dim) return ErrOutOfBounds.
// The range is left untouched when an error is returned.
func (r *Range) SetDimension(dim int) error {
	if dim < 0 {
		return fmt.Errorf("range %v: dimension %d: %w", *r, dim, ErrInvalidShape)
	}
	if r.dim != unboundDimension && r.dim != dim {
		return fmt.Errorf("range %v already bound to %d, cannot rebind to %d: %w", *r, r.dim, dim, ErrInvalidRange)
	}
	if err := r.validate(dim); err != nil {
		return err
	}
	r.dim = dim
	if r.kind == KindFull {
		r.start, r.end, r.step = 0, dim-1, 1
	}
	return nil
}

// validate checks the range against an axis of size dim.
func (r Range) validate(dim int) error {
	switch r.kind {
	case KindFull:
		return nil
	case KindIndexed:
		for k, i := range r.indices {
			if i < 0 || i >= dim {
				return fmt.Errorf("index %d at position %d for dimension %d: %w", i, k, dim, ErrOutOfBounds)
			}
		}
		return nil
	}
	if err := r.checkStep(); err != nil {
		return err
	}
	n := r.Size()
	if n == 0 {
		return nil
	}
	last := r.at(n - 1)
	if r.start < 0 || r.start >= dim || last < 0 || last >= dim {
		return fmt.Errorf("range %v for dimension %d: %w", r, dim, ErrOutOfBounds)
	}
	return nil
}

// checkStep rejects progressions whose step cannot reach end.
func (r Range) checkStep() error {
	if r.kind != KindStepped || r.empty {
		return nil
	}
	if r.step == 0 {
		return fmt.Errorf("range %v: zero step: %w", r, ErrInvalidRange)
	}
	if r.step < 0 && r.start < r.end {
		return fmt.Errorf("range %v: negative step with start < end: %w", r, ErrInvalidRange)
	}
	return nil
}

// String formats the range for diagnostics.
func (r Range) String() string {
	var b strings.Builder
	switch {
	case r.kind == KindFull:
		b.WriteString("_")
	case r.kind == KindIndexed:
		b.WriteByte('[')
		for k, i := range r.indices {
			if k > 0 {
				b.WriteByte(',')
			}
			fmt.Fprint(&b, i)
		}
		b.WriteByte(']')
	case r.empty:
		b.WriteString("empty")
	default:
		fmt.Fprintf(&b, "%d:%d:%d", r.start, r.end, r.step)
	}
	if r.dim != unboundDimension {
		fmt.Fprintf(&b, "/%d", r.dim)
	}
	return b.String()
}
