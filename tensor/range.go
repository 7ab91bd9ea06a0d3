// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/ndarray/internal/tensor"

// Range selects positions along one axis.
type Range = tensor.Range

// RangeKind distinguishes wildcard, arithmetic and index-list ranges.
type RangeKind = tensor.RangeKind

// Range kinds.
const (
	KindFull    RangeKind = tensor.KindFull
	KindStepped RangeKind = tensor.KindStepped
	KindIndexed RangeKind = tensor.KindIndexed
)

// RangeSpan is an ordered list of ranges, one per axis.
type RangeSpan = tensor.RangeSpan

// RangeIterator walks the linear offsets selected by a RangeSpan.
type RangeIterator = tensor.RangeIterator

// Full selects every position of an axis.
func Full() Range { return tensor.Full() }

// Span selects start..end inclusive with step 1.
func Span(start, end int) Range { return tensor.Span(start, end) }

// Single selects one position; the axis is kept with size 1.
func Single(i int) Range { return tensor.Single(i) }

// Stepped selects start, start+step, ... up to end inclusive.
func Stepped(start, end, step int) Range { return tensor.Stepped(start, end, step) }

// Bound creates a stepped range already bound to an axis of size dim.
func Bound(start, end, step, dim int) (Range, error) {
	return tensor.Bound(start, end, step, dim)
}

// Empty selects nothing.
func Empty() Range { return tensor.Empty() }

// EmptyOf is an empty range bound to an axis of size dim.
func EmptyOf(dim int) Range { return tensor.EmptyOf(dim) }

// Indexed selects an explicit list of positions. The slice is copied.
func Indexed(indices []int) Range { return tensor.Indexed(indices) }

// NewRangeIterator creates an iterator over bound ranges, first axis fastest.
//
// Example:
//
//	dims := tensor.MustDimensions(3, 4)
//	span := tensor.RangeSpan{tensor.Span(0, 1), tensor.Full()}
//	if _, err := span.Dimensions(dims); err != nil {
//	    return err
//	}
//	it, err := tensor.NewRangeIterator(span...)
//	for off := range it.Offsets() {
//	    fmt.Println(off)
//	}
func NewRangeIterator(ranges ...Range) (*RangeIterator, error) {
	return tensor.NewRangeIterator(ranges...)
}
