package vector

import (
	"fmt"

	"github.com/imgk/vector-go/memory"
)

// grownCap is the append growth schedule: double, starting from 1.
func (v *Vector[T]) grownCap() int {
	if c := v.data.Cap(); c > 0 {
		return 2 * c
	}
	return 1
}

// transfer constructs count elements in dst at dstOff from v's live slots
// [from, from+count), using the cached move-or-copy policy. Destination
// construction completes fully before the caller may tear any source
// down. On error, everything transfer constructed in dst is destroyed and
// the error returned; under the copy policy the sources are untouched.
// Under the move policy a failure leaves the already-moved sources reset,
// which is only reachable for types that can neither copy nor move
// reliably; that case is unrecoverable by design and the container merely
// guarantees no leak and no double teardown.
func (v *Vector[T]) transfer(dst *memory.Array[T], from, count, dstOff int) error {
	for i := 0; i < count; i++ {
		var (
			x   T
			err error
		)
		if v.moveOnGrow {
			x, err = v.ops.Move(v.data.Slot(from + i))
		} else {
			x, err = v.ops.Copy(v.data.Slot(from + i))
		}
		if err != nil {
			for j := 0; j < i; j++ {
				v.ops.Destroy(dst.Slot(dstOff + j))
			}
			return fmt.Errorf("vector: transfer element %d: %w", from+i, err)
		}
		*dst.Slot(dstOff + i) = x
	}
	return nil
}

// moveAssign replaces the live element at slot dst with the moved value
// of slot src. On failure both slots still hold live values.
func (v *Vector[T]) moveAssign(dst, src int) error {
	x, err := v.ops.Move(v.data.Slot(src))
	if err != nil {
		return fmt.Errorf("vector: shift element %d: %w", src, err)
	}
	v.ops.Destroy(v.data.Slot(dst))
	*v.data.Slot(dst) = x
	return nil
}

func destroyN[T any](ops Ops[T], a *memory.Array[T], n int) {
	for i := 0; i < n; i++ {
		ops.Destroy(a.Slot(i))
	}
}

// Reserve grows capacity to at least n, transferring the live elements
// into a fresh block before releasing the old one. If allocation or the
// transfer fails, v is unchanged (strong guarantee, modulo the
// unrecoverable fallible-move case documented on transfer). Reserving no
// more than the current capacity is a no-op; capacity never shrinks.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.data.Cap() {
		return nil
	}
	data, err := memory.NewArray[T](n)
	if err != nil {
		return err
	}
	if err := v.transfer(&data, 0, v.size, 0); err != nil {
		data.Release()
		return err
	}
	destroyN(v.ops, &v.data, v.size)
	v.data.Swap(&data)
	data.Release()
	return nil
}

// Resize changes the element count to n: the tail [n, Len) is destroyed
// when shrinking, and new elements are default-constructed when growing,
// reserving capacity first if needed. If a default construction fails,
// the elements constructed so far are destroyed and Len is unchanged;
// capacity may have grown.
func (v *Vector[T]) Resize(n int) error {
	assert(n >= 0, "vector: negative size")
	switch {
	case n < v.size:
		for i := n; i < v.size; i++ {
			v.ops.Destroy(v.data.Slot(i))
		}
		v.size = n
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		for i := v.size; i < n; i++ {
			x, err := v.ops.New()
			if err != nil {
				for j := v.size; j < i; j++ {
					v.ops.Destroy(v.data.Slot(j))
				}
				return fmt.Errorf("vector: construct element %d: %w", i, err)
			}
			*v.data.Slot(i) = x
		}
		v.size = n
	}
	return nil
}
