package tensor

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTensorAccess(t *testing.T) {
	m := Zeros[float64](2, 3)
	m.Set(7, 1, 2)
	assert.Equal(t, 7.0, m.At(1, 2))
	assert.Equal(t, 7.0, m.AtSeq(1+2*2))
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Columns())
	assert.Equal(t, 6, m.Size())

	_, err := m.Get(2, 0)
	require.ErrorIs(t, err, ErrOutOfBounds)
	err = m.Put(1, 0)
	require.ErrorIs(t, err, ErrOutOfBounds)

	assert.Panics(t, func() { m.At(0, 3) })
	assert.Panics(t, func() { m.Set(1, -1, 0) })
	assert.Panics(t, func() { m.AtSeq(6) })
}

func TestTensorCloneSharesUntilWrite(t *testing.T) {
	a := FromVector([]float64{1, 2, 3})
	b := a.Clone()
	assert.Equal(t, 2, a.RefCount())
	assert.Same(t, &a.Data()[0], &b.Data()[0])

	b.Set(10, 0)
	assert.Equal(t, 1.0, a.At(0), "original must keep its value")
	assert.Equal(t, 10.0, b.At(0))
	assert.Equal(t, 1, a.RefCount())
	assert.Equal(t, 1, b.RefCount())
}

func TestTensorFillUnshares(t *testing.T) {
	a := Ones[float64](2, 2)
	b := a.Clone()
	a.FillZeros()
	assert.Equal(t, 4.0, b.Sum())
	assert.Equal(t, 0.0, a.Sum())
}

func TestTensorMutableDataUnshares(t *testing.T) {
	a := FromVector([]float64{1, 2})
	b := a.Clone()
	data := a.MutableData()
	data[1] = 5
	assert.Equal(t, 2.0, b.At(1))
	assert.Equal(t, 5.0, a.At(1))
}

func TestTensorCopyIsPrivate(t *testing.T) {
	a := FromVector([]float64{1, 2})
	b := a.Copy()
	assert.Equal(t, 1, a.RefCount())
	assert.Equal(t, 1, b.RefCount())
	assert.True(t, a.EqualValues(b))
}

func TestTensorRelease(t *testing.T) {
	a := FromVector([]float64{1, 2})
	b := a.Clone()
	a.Release()
	a.Release()
	assert.Equal(t, 1, b.RefCount())
	assert.Equal(t, 2.0, b.At(1))
	assert.Panics(t, func() { a.At(0) })
	assert.Equal(t, "Tensor(released)", a.String())
}

func TestTensorReshape(t *testing.T) {
	a := FromVector([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, a.Reshape(MustDimensions(2, 3)))
	assert.Equal(t, 3.0, a.At(0, 1))
	assert.Equal(t, 6.0, a.At(1, 2))

	err := a.Reshape(MustDimensions(4, 2))
	require.ErrorIs(t, err, ErrSizeMismatch)
	assert.Equal(t, []int{2, 3}, a.Dimensions().Sizes())
}

func TestTensorRandomize(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	a := Random[float64](rng, MustDimensions(10, 10))
	for _, x := range a.Data() {
		assert.GreaterOrEqual(t, x, 0.0)
		assert.Less(t, x, 1.0)
	}

	c := Random[complex128](rng, MustDimensions(3))
	for _, x := range c.Data() {
		assert.NotZero(t, imag(x))
	}

	f := Random[float32](rng, MustDimensions(3))
	assert.Equal(t, 3, f.Size())
}

func TestTensorString(t *testing.T) {
	a := FromVector([]float64{1, 2})
	assert.Equal(t, "Tensor[2]{1, 2}", a.String())
}

func TestTensorZeroSize(t *testing.T) {
	a := Zeros[float64](3, 0)
	assert.True(t, a.IsEmpty())
	assert.Equal(t, 0.0, a.Sum())
	v, err := a.View(Full(), Full())
	require.NoError(t, err)
	assert.Equal(t, 0, v.Size())
	assert.True(t, v.Tensor().IsEmpty())
}
