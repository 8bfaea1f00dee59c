//go:build !malloc_memgo

package memory

import (
	"fmt"
	"math"
	"unsafe"
)

// alloc is the Go heap backend. The runtime hands the block back zeroed,
// but callers must not rely on that: the pooled backend does not.
func alloc[T any](n int) (Array[T], error) {
	if n < 0 {
		return Array[T]{}, fmt.Errorf("memory: alloc %d elements: %w", n, ErrBadCount)
	}
	var t T
	if size := unsafe.Sizeof(t); size > 0 && uintptr(n) > math.MaxInt/size {
		return Array[T]{}, fmt.Errorf("memory: alloc %d elements: %w", n, ErrNoMemory)
	}
	return Array[T]{data: make([]T, n)}, nil
}
