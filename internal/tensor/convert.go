package tensor

import (
	"math/cmplx"

	"golang.org/x/exp/constraints"
)

// Conversions between element types are always explicit.

// ToComplex widens a real tensor to complex128.
func ToComplex[T constraints.Float](t *Tensor[T]) *CTensor {
	out := New[complex128](t.dims)
	for i, x := range t.Data() {
		out.buf.data[i] = complex(float64(x), 0)
	}
	return out
}

// RealPart returns the real parts of a complex tensor.
func RealPart[T constraints.Complex](t *Tensor[T]) *RTensor {
	out := New[float64](t.dims)
	for i, x := range t.Data() {
		out.buf.data[i] = real(complex128(x))
	}
	return out
}

// ImagPart returns the imaginary parts of a complex tensor.
func ImagPart[T constraints.Complex](t *Tensor[T]) *RTensor {
	out := New[float64](t.dims)
	for i, x := range t.Data() {
		out.buf.data[i] = imag(complex128(x))
	}
	return out
}

// Conj returns the complex conjugate.
func Conj(t *CTensor) *CTensor {
	return t.Map(cmplx.Conj)
}

// ConvertFloat converts between real element types, rounding as Go conversions do.
func ConvertFloat[To, From constraints.Float](t *Tensor[From]) *Tensor[To] {
	out := New[To](t.dims)
	for i, x := range t.Data() {
		out.buf.data[i] = To(x)
	}
	return out
}
