// Package vector implements a growable contiguous container over raw
// storage. Memory lifetime (memory.Array) and element lifetime (Ops) are
// managed independently: the first Len slots hold live values, the rest of
// the capacity is raw. Every mutating operation either completes or, when
// it fails, leaves no leaked and no doubly-destroyed element; the
// per-operation guarantees are documented on each method.
package vector

import (
	"fmt"
	"iter"

	"go.uber.org/zap"

	"github.com/imgk/vector-go/memory"
)

var logger = zap.NewNop()

// SetLogger routes debug diagnostics to l. The container never logs on
// normal paths; only vector_debug assertion failures are reported.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// Vector is a dynamic array of T. It owns exactly one storage block and a
// count of live elements occupying the leading slots. The zero value is
// not usable; construct with New or NewLen.
type Vector[T any] struct {
	data memory.Array[T]
	size int
	ops  Ops[T]

	// moveOnGrow caches the transfer policy: move when the move cannot
	// fail, or when there is no copy to fall back to; copy otherwise so
	// that a failure partway through a transfer leaves the source block
	// fully intact.
	moveOnGrow bool
}

// New returns an empty vector for elements described by ops.
func New[T any](ops Ops[T]) *Vector[T] {
	return &Vector[T]{
		ops:        ops,
		moveOnGrow: ops.MoveCannotFail() || !ops.Copyable(),
	}
}

// NewLen returns a vector of n default-constructed elements with capacity
// exactly n. On error nothing is leaked and no vector is returned.
func NewLen[T any](ops Ops[T], n int) (*Vector[T], error) {
	data, err := memory.NewArray[T](n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		x, err := ops.New()
		if err != nil {
			destroyN(ops, &data, i)
			data.Release()
			return nil, fmt.Errorf("vector: construct element %d: %w", i, err)
		}
		*data.Slot(i) = x
	}
	v := New[T](ops)
	v.data.MoveFrom(&data)
	v.size = n
	return v, nil
}

// Len is ...
func (v *Vector[T]) Len() int { return v.size }

// Cap is ...
func (v *Vector[T]) Cap() int { return v.data.Cap() }

// At returns a pointer to the live element at index i. The pointer is
// invalidated by any capacity-changing operation and by Erase, Insert and
// Resize of earlier positions. Out-of-range access is a programmer error:
// it panics under the vector_debug tag and otherwise falls through to the
// runtime bounds check against capacity, not length.
func (v *Vector[T]) At(i int) *T {
	assert(uint(i) < uint(v.size), "vector: index out of range")
	return v.data.Slot(i)
}

// Swap exchanges contents with o in O(1). Both vectors must have been
// built for the same element type semantics. References remain valid and
// follow their elements.
func (v *Vector[T]) Swap(o *Vector[T]) {
	v.data.Swap(&o.data)
	v.size, o.size = o.size, v.size
}

// MoveFrom releases v's contents and takes over o's elements and storage
// in O(1). o is left valid and empty.
func (v *Vector[T]) MoveFrom(o *Vector[T]) {
	if v == o {
		return
	}
	v.Release()
	v.Swap(o)
}

// Release destroys all live elements and returns the storage to its
// backend. The vector remains usable as an empty vector with capacity 0.
func (v *Vector[T]) Release() {
	destroyN(v.ops, &v.data, v.size)
	v.size = 0
	v.data.Release()
}

// All ranges over (index, pointer) pairs of live elements. The loop body
// must not mutate the vector's size or capacity.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.Slot(i)) {
				return
			}
		}
	}
}

// Values ranges over shallow copies of the element values. For
// resource-owning element types prefer All and work through the pointers.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.Slot(i)) {
				return
			}
		}
	}
}
