package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/ndarray/tensor"
)

// parseRange reads one axis selection:
//
//	:  or _      every position
//	a            a single position
//	a:b[:s]      a..b inclusive, step s (default 1)
//	[i,j,k]      explicit positions
//	empty        nothing
func parseRange(s string) (tensor.Range, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == ":" || s == "_":
		return tensor.Full(), nil
	case s == "empty":
		return tensor.Empty(), nil
	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		body := strings.TrimSpace(s[1 : len(s)-1])
		indices := []int{}
		if body != "" {
			for _, f := range strings.Split(body, ",") {
				i, err := strconv.Atoi(strings.TrimSpace(f))
				if err != nil {
					return tensor.Range{}, fmt.Errorf("range %q: %w", s, tensor.ErrInvalidRange)
				}
				indices = append(indices, i)
			}
		}
		return tensor.Indexed(indices), nil
	}

	parts := strings.Split(s, ":")
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return tensor.Range{}, fmt.Errorf("range %q: %w", s, tensor.ErrInvalidRange)
		}
		nums[i] = n
	}
	switch len(nums) {
	case 1:
		return tensor.Single(nums[0]), nil
	case 2:
		return tensor.Span(nums[0], nums[1]), nil
	case 3:
		return tensor.Stepped(nums[0], nums[1], nums[2]), nil
	default:
		return tensor.Range{}, fmt.Errorf("range %q: %w", s, tensor.ErrInvalidRange)
	}
}
