package vector

import "errors"

// ErrNotCopyable is returned when a copy is requested for an element type
// that declared itself non-copyable.
var ErrNotCopyable = errors.New("vector: element type is not copyable")

// Ops describes the lifecycle of an element type: how values come into
// being, how they transfer between slots, and how they are torn down. A
// Vector asks the capability questions once, at construction, and caches
// the answers; implementations must return the same answers every time.
type Ops[T any] interface {
	// New default-constructs a value.
	New() (T, error)

	// Copy duplicates *src. On failure *src is left untouched.
	Copy(src *T) (T, error)

	// Move transfers *src into the returned value. On success *src is
	// reset to a valid empty value. Must not fail when MoveCannotFail
	// reports true.
	Move(src *T) (T, error)

	// Destroy tears down *slot. It never fails, mirroring the usual
	// contract that teardown cannot be refused.
	Destroy(slot *T)

	// MoveCannotFail reports whether Move is guaranteed to succeed.
	MoveCannotFail() bool

	// Copyable reports whether Copy is usable at all.
	Copyable() bool
}

// Trivial returns Ops for plain-data element types: zero-value creation,
// bitwise copy and move, no teardown.
func Trivial[T any]() Ops[T] { return trivialOps[T]{} }

type trivialOps[T any] struct{}

func (trivialOps[T]) New() (T, error) {
	var zero T
	return zero, nil
}

func (trivialOps[T]) Copy(src *T) (T, error) { return *src, nil }

func (trivialOps[T]) Move(src *T) (T, error) {
	v := *src
	var zero T
	*src = zero
	return v, nil
}

func (trivialOps[T]) Destroy(*T) {}

func (trivialOps[T]) MoveCannotFail() bool { return true }

func (trivialOps[T]) Copyable() bool { return true }

// Funcs adapts a set of optional functions into Ops for resource-owning
// element types. Nil fields fall back to the trivial behavior.
type Funcs[T any] struct {
	NewFunc     func() (T, error)
	CopyFunc    func(src *T) (T, error)
	MoveFunc    func(src *T) (T, error)
	DestroyFunc func(slot *T)

	// MoveFails marks MoveFunc as fallible, which makes a Vector prefer
	// copying during storage growth. NoCopy marks the type as not
	// copyable. The zero value keeps the trivial guarantees.
	MoveFails bool
	NoCopy    bool
}

func (f Funcs[T]) New() (T, error) {
	if f.NewFunc != nil {
		return f.NewFunc()
	}
	var zero T
	return zero, nil
}

func (f Funcs[T]) Copy(src *T) (T, error) {
	if f.NoCopy {
		var zero T
		return zero, ErrNotCopyable
	}
	if f.CopyFunc != nil {
		return f.CopyFunc(src)
	}
	return *src, nil
}

func (f Funcs[T]) Move(src *T) (T, error) {
	if f.MoveFunc != nil {
		return f.MoveFunc(src)
	}
	v := *src
	var zero T
	*src = zero
	return v, nil
}

func (f Funcs[T]) Destroy(slot *T) {
	if f.DestroyFunc != nil {
		f.DestroyFunc(slot)
	}
}

func (f Funcs[T]) MoveCannotFail() bool { return !f.MoveFails }

func (f Funcs[T]) Copyable() bool { return !f.NoCopy }
