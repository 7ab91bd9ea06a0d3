// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides column-major N-dimensional arrays with zero-copy views.
//
// # Overview
//
// This package provides:
//   - Generic tensors over float32, float64, complex64 and complex128
//   - Column-major storage: the first index varies fastest
//   - Reference-counted buffers with copy-on-write on first mutation
//   - Read-only and writable views built from per-axis ranges
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray/tensor"
//
//	func main() {
//	    m, _ := tensor.FromRows([][]float64{{1, 2}, {3, 4}})
//	    out := tensor.New[float64](m.Dimensions())
//
//	    // Scale the first column by two.
//	    col, _ := m.View(tensor.Full(), tensor.Span(0, 0))
//	    dst, _ := out.MutableView(tensor.Full(), tensor.Span(0, 0))
//	    _ = dst.Assign(col.Tensor().MulScalar(2))
//	}
//
// # Ranges
//
// A view selects, per axis, one of:
//
//	tensor.Full()               // every position (the "_" wildcard)
//	tensor.Span(1, 3)           // 1, 2, 3 (end is inclusive)
//	tensor.Stepped(5, 1, -2)    // 5, 3, 1
//	tensor.Single(2)            // just 2, the axis is kept with size 1
//	tensor.Indexed([]int{4, 0}) // explicit positions, repeats allowed
//	tensor.Empty()              // nothing
//
// A single range on a tensor of rank other than one addresses the tensor
// as if it were flattened.
//
// # Iteration
//
// RangeIterator walks the linear offsets selected by a list of ranges in
// column-major order. Adjacent axes whose strides line up are merged, so a
// contiguous block costs one counter regardless of its rank.
//
// # Memory Management
//
// Clone shares the buffer and costs O(1). The first write through any sharer
// copies the data, so clones behave as independent values. Views borrow their
// parent: using a view after the parent is released panics.
//
// # Errors
//
// Validating operations return errors wrapping ErrOutOfBounds,
// ErrInvalidRange, ErrSizeMismatch, ErrDegenerateInput or ErrInvalidShape.
// Match them with errors.Is.
package tensor
