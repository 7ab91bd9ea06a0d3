package tensor

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Element is the constraint for tensor element types. Named types whose
// underlying type is a float or complex type are accepted as well.
type Element interface {
	constraints.Float | constraints.Complex
}

// magnitude returns |x| as a float64 for any element type.
func magnitude[T Element](x T) float64 {
	switch v := any(x).(type) {
	case float32:
		return math.Abs(float64(v))
	case float64:
		return math.Abs(v)
	case complex64:
		return cmplx.Abs(complex128(v))
	case complex128:
		return cmplx.Abs(v)
	}
	// Named element types.
	rv := reflect.ValueOf(x)
	if rv.CanFloat() {
		return math.Abs(rv.Float())
	}
	return cmplx.Abs(rv.Complex())
}

// randomElement draws a value uniformly from [0, 1); complex types get
// independent real and imaginary parts.
func randomElement[T Element](rng *rand.Rand) T {
	var out T
	switch p := any(&out).(type) {
	case *float32:
		*p = rng.Float32()
	case *float64:
		*p = rng.Float64()
	case *complex64:
		*p = complex(rng.Float32(), rng.Float32())
	case *complex128:
		*p = complex(rng.Float64(), rng.Float64())
	default:
		// Named element types: draw at the width of the underlying kind.
		rv := reflect.ValueOf(p).Elem()
		switch rv.Kind() {
		case reflect.Float32:
			rv.SetFloat(float64(rng.Float32()))
		case reflect.Float64:
			rv.SetFloat(rng.Float64())
		case reflect.Complex64:
			rv.SetComplex(complex(float64(rng.Float32()), float64(rng.Float32())))
		default:
			rv.SetComplex(complex(rng.Float64(), rng.Float64()))
		}
	}
	return out
}

// RandomElement draws one element the way Random fills a tensor.
func RandomElement[T Element](rng *rand.Rand) T {
	return randomElement[T](rng)
}
