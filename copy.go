package vector

import (
	"fmt"

	"github.com/imgk/vector-go/memory"
)

// Clone copy-constructs a new vector with capacity equal to Len. The
// source is untouched. On error everything copied so far is destroyed and
// the allocation released; nothing is observable on the result.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	data, err := memory.NewArray[T](v.size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < v.size; i++ {
		x, err := v.ops.Copy(v.data.Slot(i))
		if err != nil {
			destroyN(v.ops, &data, i)
			data.Release()
			return nil, fmt.Errorf("vector: copy element %d: %w", i, err)
		}
		*data.Slot(i) = x
	}
	c := New[T](v.ops)
	c.data.MoveFrom(&data)
	c.size = v.size
	return c, nil
}

// CopyFrom makes v an element-wise copy of o. When o fits within v's
// current capacity the storage is reused: the overlapping prefix is
// copy-assigned, then the excess tail is either destroyed (shrinking) or
// copy-constructed (growing). Otherwise a full copy is built aside and
// swapped in, so a mid-copy failure cannot corrupt v. In the reuse path a
// failed element copy returns with a consistent but partially assigned
// prefix and Len unchanged.
func (v *Vector[T]) CopyFrom(o *Vector[T]) error {
	if v == o {
		return nil
	}
	if o.size > v.data.Cap() {
		c, err := o.Clone()
		if err != nil {
			return err
		}
		v.Swap(c)
		c.Release()
		return nil
	}
	n := min(v.size, o.size)
	for i := 0; i < n; i++ {
		x, err := v.ops.Copy(o.data.Slot(i))
		if err != nil {
			return fmt.Errorf("vector: copy element %d: %w", i, err)
		}
		v.ops.Destroy(v.data.Slot(i))
		*v.data.Slot(i) = x
	}
	for i := o.size; i < v.size; i++ {
		v.ops.Destroy(v.data.Slot(i))
	}
	for i := v.size; i < o.size; i++ {
		x, err := v.ops.Copy(o.data.Slot(i))
		if err != nil {
			for j := v.size; j < i; j++ {
				v.ops.Destroy(v.data.Slot(j))
			}
			return fmt.Errorf("vector: copy element %d: %w", i, err)
		}
		*v.data.Slot(i) = x
	}
	v.size = o.size
	return nil
}
