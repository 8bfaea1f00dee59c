package vector

import (
	"fmt"

	"github.com/imgk/vector-go/memory"
)

// Ownership rule for all appending and inserting operations: the new
// value belongs to the vector from the moment its constructor returns.
// On success it lives in a slot; if the operation fails afterwards the
// vector destroys it before returning the error. A constructor failure
// leaves the vector untouched and nothing owned.

// Append moves x into the next free slot, growing the storage when full.
// It returns a pointer to the appended element, valid until the next
// capacity-changing operation. On error the vector is unchanged and x has
// been destroyed.
func (v *Vector[T]) Append(x T) (*T, error) {
	return v.appendOwned(x)
}

// EmplaceBack constructs a new element via ctor and appends it. The
// strong guarantee holds even when growth is needed: the new element is
// built before any existing element is transferred, so a ctor failure
// leaves the vector exactly as it was.
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	x, err := ctor()
	if err != nil {
		return nil, fmt.Errorf("vector: construct element: %w", err)
	}
	return v.appendOwned(x)
}

func (v *Vector[T]) appendOwned(x T) (*T, error) {
	if v.size < v.data.Cap() {
		*v.data.Slot(v.size) = x
		v.size++
		return v.data.Slot(v.size - 1), nil
	}
	data, err := memory.NewArray[T](v.grownCap())
	if err != nil {
		v.ops.Destroy(&x)
		return nil, err
	}
	*data.Slot(v.size) = x
	if err := v.transfer(&data, 0, v.size, 0); err != nil {
		v.ops.Destroy(data.Slot(v.size))
		data.Release()
		return nil, err
	}
	destroyN(v.ops, &v.data, v.size)
	v.data.Swap(&data)
	data.Release()
	v.size++
	return v.data.Slot(v.size - 1), nil
}

// PopBack destroys the last element. O(1), cannot fail. Calling it on an
// empty vector is a programmer error.
func (v *Vector[T]) PopBack() {
	assert(v.size > 0, "vector: PopBack on empty vector")
	v.size--
	v.ops.Destroy(v.data.Slot(v.size))
}

// Insert moves x into position i in [0, Len], shifting the tail right;
// i == Len appends. Returns the index of the inserted element. Ownership
// of x follows the rule above.
func (v *Vector[T]) Insert(i int, x T) (int, error) {
	assert(uint(i) <= uint(v.size), "vector: insert position out of range")
	return v.insertOwned(i, x)
}

// Emplace constructs a new element via ctor and inserts it at position i.
// The returned index is i whether or not an error occurred.
func (v *Vector[T]) Emplace(i int, ctor func() (T, error)) (int, error) {
	assert(uint(i) <= uint(v.size), "vector: emplace position out of range")
	x, err := ctor()
	if err != nil {
		return i, fmt.Errorf("vector: construct element: %w", err)
	}
	return v.insertOwned(i, x)
}

func (v *Vector[T]) insertOwned(i int, x T) (int, error) {
	switch {
	case i == v.size:
		if _, err := v.appendOwned(x); err != nil {
			return i, err
		}
		return i, nil
	case v.size == v.data.Cap():
		return v.growInsert(i, x)
	default:
		return v.shiftInsert(i, x)
	}
}

// growInsert builds the new block with x already at its target index,
// then transfers the prefix and the suffix of the old block around it.
// If either transfer fails, whatever was constructed in the new block is
// destroyed, the block released, and the old block stays authoritative.
func (v *Vector[T]) growInsert(i int, x T) (int, error) {
	data, err := memory.NewArray[T](v.grownCap())
	if err != nil {
		v.ops.Destroy(&x)
		return i, err
	}
	*data.Slot(i) = x
	if err := v.transfer(&data, 0, i, 0); err != nil {
		v.ops.Destroy(data.Slot(i))
		data.Release()
		return i, err
	}
	if err := v.transfer(&data, i, v.size-i, i+1); err != nil {
		destroyN(v.ops, &data, i+1)
		data.Release()
		return i, err
	}
	destroyN(v.ops, &v.data, v.size)
	v.data.Swap(&data)
	data.Release()
	v.size++
	return i, nil
}

// shiftInsert inserts within spare capacity: move the last element into
// the fresh tail slot, shift [i, Len-1) right one slot via move
// assignment, then drop x into i. A move failure mid-shift leaves a
// consistent, non-leaking state in which the shift is partially applied;
// this weaker guarantee matches the element type's own assignment
// contract and is not papered over.
func (v *Vector[T]) shiftInsert(i int, x T) (int, error) {
	last, err := v.ops.Move(v.data.Slot(v.size - 1))
	if err != nil {
		v.ops.Destroy(&x)
		return i, fmt.Errorf("vector: shift element %d: %w", v.size-1, err)
	}
	*v.data.Slot(v.size) = last
	v.size++
	for j := v.size - 2; j > i; j-- {
		if err := v.moveAssign(j, j-1); err != nil {
			v.ops.Destroy(&x)
			return i, err
		}
	}
	v.ops.Destroy(v.data.Slot(i))
	*v.data.Slot(i) = x
	return i, nil
}

// Erase removes the element at index i in [0, Len), shifting the tail
// left via move assignment and destroying the vacated last slot. It
// returns the index now holding the element that followed the erased one,
// which equals Len when the last element was erased. A move failure
// mid-shift leaves a consistent, non-leaking, partially shifted state.
func (v *Vector[T]) Erase(i int) (int, error) {
	assert(uint(i) < uint(v.size), "vector: erase position out of range")
	for j := i; j < v.size-1; j++ {
		if err := v.moveAssign(j, j+1); err != nil {
			return i, err
		}
	}
	v.size--
	v.ops.Destroy(v.data.Slot(v.size))
	return i, nil
}
