package tensor

import (
	"fmt"
	"iter"
	"strings"
)

// level is one loop of the iteration: limit positions, each contributing
// base + k*step to the offset, or base + offsets[k] for explicit index lists.
type level struct {
	base    int
	step    int
	limit   int
	offsets []int
}

func (l *level) value(k int) int {
	if l.offsets != nil {
		return l.base + l.offsets[k]
	}
	return l.base + k*l.step
}

// RangeIterator enumerates the linear offsets selected by one Range per axis,
// first axis fastest, which is the column-major order of the selection.
//
// Adjacent axes that together form a single arithmetic progression are merged
// into one level, and axes selecting a single position are folded into a
// constant, so the work per step depends on the number of independent strides
// rather than on the rank.
//
// Once all Size() offsets have been consumed the iterator is finished: Offset
// keeps returning the last valid offset and Advance has no further effect. An
// iterator over an empty selection is finished from the start and reports offset 0.
type RangeIterator struct {
	levels  []level
	counts  []int
	offset  int
	counter int
	limit   int
}

// NewRangeIterator builds an iterator positioned at the first offset.
// Every range must already be bound to its axis size (see RangeSpan.Dimensions),
// unless some range is empty, in which case the iterator is empty.
func NewRangeIterator(ranges ...Range) (*RangeIterator, error) {
	for i, r := range ranges {
		if err := r.checkStep(); err != nil {
			return nil, fmt.Errorf("axis %d: %w", i, err)
		}
	}
	for _, r := range ranges {
		if (r.kind != KindFull || r.IsBound()) && r.Size() == 0 {
			return &RangeIterator{}, nil
		}
	}

	it := &RangeIterator{limit: 1}
	stride, fixed, unitStep := 1, 0, 1
	for i, r := range ranges {
		if !r.IsBound() {
			return nil, fmt.Errorf("axis %d: range %v has no dimension: %w", i, r, ErrInvalidRange)
		}
		n := r.Size()
		l := level{limit: n, step: r.step * stride}
		if r.kind == KindIndexed {
			l.step = stride
			l.offsets = make([]int, n)
			for k, idx := range r.indices {
				l.offsets[k] = idx * stride
			}
		} else {
			l.base = r.start * stride
		}
		stride *= r.dim
		it.limit *= n

		if n == 1 {
			fixed += l.value(0)
			unitStep = l.step
			continue
		}
		if k := len(it.levels) - 1; k >= 0 {
			prev := &it.levels[k]
			if prev.offsets == nil && l.offsets == nil && prev.step*prev.limit == l.step {
				prev.base += l.base
				prev.limit *= l.limit
				continue
			}
		}
		it.levels = append(it.levels, l)
	}
	if len(it.levels) == 0 {
		it.levels = []level{{step: unitStep, limit: 1}}
	}
	it.levels[0].base += fixed
	it.counts = make([]int, len(it.levels))
	it.Reset()
	return it, nil
}

// Reset moves the iterator back to its first offset.
func (it *RangeIterator) Reset() {
	it.counter = 0
	it.offset = 0
	for i := range it.levels {
		it.counts[i] = 0
		it.offset += it.levels[i].value(0)
	}
}

// Advance moves to the next offset. On the last offset it marks the iterator
// finished without moving; afterwards it does nothing.
func (it *RangeIterator) Advance() {
	if it.counter >= it.limit {
		return
	}
	it.counter++
	if it.counter == it.limit {
		return
	}
	for i := range it.levels {
		l := &it.levels[i]
		c := it.counts[i]
		if c+1 < l.limit {
			it.offset += l.value(c+1) - l.value(c)
			it.counts[i] = c + 1
			return
		}
		it.offset += l.value(0) - l.value(c)
		it.counts[i] = 0
	}
}

// Offset returns the current linear offset into the parent buffer.
func (it *RangeIterator) Offset() int { return it.offset }

// Finished reports whether all Size() offsets have been consumed.
func (it *RangeIterator) Finished() bool { return it.counter >= it.limit }

// Size returns the total number of offsets.
func (it *RangeIterator) Size() int { return it.limit }

// Counter returns how many offsets have been consumed.
func (it *RangeIterator) Counter() int { return it.counter }

// Step returns the offset increment of the innermost level.
func (it *RangeIterator) Step() int {
	if len(it.levels) == 0 {
		return 0
	}
	return it.levels[0].step
}

// Levels returns the number of nested loops left after merging; 0 when empty.
func (it *RangeIterator) Levels() int { return len(it.levels) }

// Clone returns an independent iterator at the same position.
func (it *RangeIterator) Clone() *RangeIterator {
	c := *it
	c.levels = append([]level(nil), it.levels...)
	c.counts = append([]int(nil), it.counts...)
	return &c
}

// End returns a copy of the iterator in its finished state.
func (it *RangeIterator) End() *RangeIterator {
	c := it.Clone()
	if c.limit == 0 {
		return c
	}
	c.counter = c.limit
	c.offset = 0
	for i := range c.levels {
		c.counts[i] = c.levels[i].limit - 1
		c.offset += c.levels[i].value(c.counts[i])
	}
	return c
}

// Equal reports whether both iterators cover the same number of offsets and
// are at the same position, regardless of how their levels were merged.
//
// Equality is positional: iterators over different selections compare equal
// whenever their sizes, consumed counts and current offsets coincide. It is
// meant for comparing an iterator against End() or a Clone() of itself.
func (it *RangeIterator) Equal(other *RangeIterator) bool {
	return it.limit == other.limit && it.counter == other.counter && it.offset == other.offset
}

// Offsets yields every offset from the beginning, leaving it untouched.
func (it *RangeIterator) Offsets() iter.Seq[int] {
	return func(yield func(int) bool) {
		c := it.Clone()
		c.Reset()
		for ; !c.Finished(); c.Advance() {
			if !yield(c.offset) {
				return
			}
		}
	}
}

// String formats the iterator state for diagnostics.
func (it *RangeIterator) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "RangeIterator{offset=%d counter=%d/%d levels=[", it.offset, it.counter, it.limit)
	for i, l := range it.levels {
		if i > 0 {
			b.WriteByte(' ')
		}
		if l.offsets != nil {
			fmt.Fprintf(&b, "%d+%v", l.base, l.offsets)
		} else {
			fmt.Fprintf(&b, "%d+%d*%d", l.base, l.step, l.limit)
		}
	}
	b.WriteString("]}")
	return b.String()
}
