//go:build malloc_memgo

package memory

import (
	"fmt"

	memgo "github.com/imgk/memory-go"
)

// alloc is the pooled backend. Blocks come back dirty; the caller's
// initialized-prefix tracking is what keeps that safe.
func alloc[T any](n int) (Array[T], error) {
	if n < 0 {
		return Array[T]{}, fmt.Errorf("memory: alloc %d elements: %w", n, ErrBadCount)
	}
	ptr, buf, err := memgo.Alloc[T](n)
	if err != nil {
		return Array[T]{}, fmt.Errorf("memory: alloc %d elements: %w", n, err)
	}
	return Array[T]{data: buf, free: func() { memgo.Free(ptr) }}, nil
}
