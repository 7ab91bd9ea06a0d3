package tensor

import "sync/atomic"

// buffer is a reference-counted element store shared between tensors.
// A tensor mutating a buffer whose count is above one copies it first.
type buffer[T Element] struct {
	data     []T
	refCount atomic.Int32
}

// newBuffer creates a zeroed buffer with refCount = 1.
func newBuffer[T Element](n int) *buffer[T] {
	b := &buffer[T]{data: make([]T, n)}
	b.refCount.Store(1)
	return b
}

// wrapBuffer takes ownership of data.
func wrapBuffer[T Element](data []T) *buffer[T] {
	b := &buffer[T]{data: data}
	b.refCount.Store(1)
	return b
}

func (b *buffer[T]) addRef() {
	b.refCount.Add(1)
}

// release drops one reference and frees the storage on the last one.
func (b *buffer[T]) release() {
	if b.refCount.Add(-1) == 0 {
		b.data = nil
	}
}

func (b *buffer[T]) isUnique() bool {
	return b.refCount.Load() == 1
}

// detach returns a private copy with refCount = 1 and drops one reference to b.
func (b *buffer[T]) detach() *buffer[T] {
	c := wrapBuffer(append([]T(nil), b.data...))
	b.release()
	return c
}
