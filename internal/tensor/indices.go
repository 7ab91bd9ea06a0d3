package tensor

import (
	"cmp"
	"slices"
)

// Which returns the positions where mask is true, in increasing order.
func Which(mask []bool) []int {
	out := make([]int, 0, len(mask))
	for i, b := range mask {
		if b {
			out = append(out, i)
		}
	}
	return out
}

// Iota returns start, start+1, ..., end (inclusive). Empty if end < start.
func Iota(start, end int) []int {
	if end < start {
		return []int{}
	}
	out := make([]int, end-start+1)
	for i := range out {
		out[i] = start + i
	}
	return out
}

// Sort returns a sorted copy of v, descending if reverse is set.
func Sort(v []int, reverse bool) []int {
	out := slices.Clone(v)
	if reverse {
		slices.SortFunc(out, func(a, b int) int { return cmp.Compare(b, a) })
	} else {
		slices.Sort(out)
	}
	return out
}

// SortIndices returns the permutation that sorts v, descending if reverse is set.
// Ties keep their original order.
func SortIndices(v []int, reverse bool) []int {
	out := Iota(0, len(v)-1)
	slices.SortStableFunc(out, func(i, j int) int {
		if reverse {
			return cmp.Compare(v[j], v[i])
		}
		return cmp.Compare(v[i], v[j])
	})
	return out
}

// Mask evaluates pred on every element, in column-major order.
func Mask[T Element](t *Tensor[T], pred func(T) bool) []bool {
	data := t.Data()
	out := make([]bool, len(data))
	for i, x := range data {
		out[i] = pred(x)
	}
	return out
}
