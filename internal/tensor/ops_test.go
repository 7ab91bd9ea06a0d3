package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementwiseOps(t *testing.T) {
	a := FromVector([]float64{1, 2, 3})
	b := FromVector([]float64{4, 5, 6})

	tests := []struct {
		name string
		got  *RTensor
		want []float64
	}{
		{"Add", a.Add(b), []float64{5, 7, 9}},
		{"Sub", a.Sub(b), []float64{-3, -3, -3}},
		{"Mul", a.Mul(b), []float64{4, 10, 18}},
		{"Div", b.Div(a), []float64{4, 2.5, 2}},
		{"Neg", a.Neg(), []float64{-1, -2, -3}},
		{"MulScalar", a.MulScalar(2), []float64{2, 4, 6}},
		{"AddScalar", a.AddScalar(1), []float64{2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.Data())
		})
	}
	assert.Equal(t, []float64{1, 2, 3}, a.Data(), "operands are not modified")
}

func TestOpsKeepReceiverDimensions(t *testing.T) {
	a := Ones[float64](2, 3)
	b := Ones[float64](6)
	sum := a.Add(b)
	assert.Equal(t, []int{2, 3}, sum.Dimensions().Sizes())
	assert.Equal(t, 12.0, sum.Sum())
}

func TestOpsSizeMismatchPanics(t *testing.T) {
	a := Ones[float64](2)
	b := Ones[float64](3)
	assert.Panics(t, func() { a.Add(b) })
	assert.Panics(t, func() { a.NotEqual(b) })
}

func TestComplexOps(t *testing.T) {
	a := FromVector([]complex128{1 + 1i, 2})
	b := FromVector([]complex128{1i, 1})
	assert.Equal(t, []complex128{-1 + 1i, 2}, a.Mul(b).Data())
	assert.Equal(t, 3+1i, a.Sum())
}

func TestEqualityHelpers(t *testing.T) {
	a := FromVector([]float64{1, 2, 3})
	b := FromVector([]float64{1, 2.0000001, 3})
	assert.False(t, a.EqualValues(b))
	assert.True(t, a.AllClose(b, 1e-6))
	assert.False(t, a.AllClose(b, 1e-9))
	assert.Equal(t, []bool{false, true, false}, a.NotEqual(b))

	reshaped := a.Copy()
	require.NoError(t, reshaped.Reshape(MustDimensions(3, 1)))
	assert.False(t, a.EqualValues(reshaped))
	assert.False(t, a.AllClose(reshaped, 1))
}
