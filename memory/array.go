// Package memory provides raw, fixed-capacity element storage. An Array
// owns a block of memory sized for exactly Cap elements and nothing else:
// it never runs element construction or teardown, and no slot is implied
// to hold a live value. Callers track the initialized prefix themselves.
package memory

import "errors"

// ErrNoMemory is returned when the backing allocator cannot satisfy a
// request.
var ErrNoMemory = errors.New("memory: out of memory")

// ErrBadCount is returned for a negative element count.
var ErrBadCount = errors.New("memory: negative element count")

// Array is a raw storage block for values of type T. It must not be
// duplicated after allocation; ownership moves via Swap or MoveFrom.
type Array[T any] struct {
	data []T // len(data) == Cap(), every slot raw
	free func()
}

// NewArray allocates storage for exactly capacity elements. A capacity of
// zero yields an empty array without touching the allocator.
func NewArray[T any](capacity int) (Array[T], error) {
	if capacity == 0 {
		return Array[T]{}, nil
	}
	return alloc[T](capacity)
}

// Cap is ...
func (a *Array[T]) Cap() int { return len(a.data) }

// Slot returns a pointer to the raw slot at index i. The slot may hold a
// live value or garbage; only the caller knows which.
func (a *Array[T]) Slot(i int) *T {
	assert(uint(i) < uint(len(a.data)), "memory: slot index out of range")
	return &a.data[i]
}

// Swap exchanges the blocks of a and b. O(1), cannot fail.
func (a *Array[T]) Swap(b *Array[T]) {
	a.data, b.data = b.data, a.data
	a.free, b.free = b.free, a.free
}

// MoveFrom releases a's block and takes over b's. b becomes empty.
func (a *Array[T]) MoveFrom(b *Array[T]) {
	if a == b {
		return
	}
	a.Release()
	a.data, a.free = b.data, b.free
	b.data, b.free = nil, nil
}

// Release returns the block to its backend and empties the array. All
// live elements must have been torn down already; Release will not do it.
// Calling Release on an empty array is a no-op.
func (a *Array[T]) Release() {
	if a.free != nil {
		a.free()
	}
	a.data, a.free = nil, nil
}
