package vector_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	vector "github.com/imgk/vector-go"
)

var errBoom = errors.New("boom")

// token is an instrumented element: every construction (New, Copy, Move)
// and every destruction is recorded in its ledger, so constructions minus
// destructions must equal the number of live values at all times.
type token struct {
	id   int
	dead bool
}

type ledger struct {
	constructs int
	destroys   int

	// failCopies fails every Copy once it drops to zero; negative means
	// never. Same for failMoves.
	failCopies int
	failMoves  int
}

func newLedger() *ledger { return &ledger{failCopies: -1, failMoves: -1} }

func (l *ledger) live() int { return l.constructs - l.destroys }

// make returns an EmplaceBack/Emplace constructor for a tracked token.
func (l *ledger) make(id int) func() (token, error) {
	return func() (token, error) {
		l.constructs++
		return token{id: id}, nil
	}
}

func (l *ledger) ops(moveFails bool) vector.Ops[token] {
	return vector.Funcs[token]{
		NewFunc: func() (token, error) {
			l.constructs++
			return token{}, nil
		},
		CopyFunc: func(src *token) (token, error) {
			if src.dead {
				panic("copy from destroyed token")
			}
			if l.failCopies == 0 {
				return token{}, errBoom
			}
			if l.failCopies > 0 {
				l.failCopies--
			}
			l.constructs++
			return token{id: src.id}, nil
		},
		MoveFunc: func(src *token) (token, error) {
			if src.dead {
				panic("move from destroyed token")
			}
			if l.failMoves == 0 {
				return token{}, errBoom
			}
			if l.failMoves > 0 {
				l.failMoves--
			}
			l.constructs++
			t := *src
			*src = token{id: -1} // moved-from, still live
			return t, nil
		},
		DestroyFunc: func(s *token) {
			if s.dead {
				panic("double destroy")
			}
			s.dead = true
			l.destroys++
		},
		MoveFails: moveFails,
	}
}

func ids(v *vector.Vector[token]) []int {
	out := make([]int, 0, v.Len())
	for _, p := range v.All() {
		out = append(out, p.id)
	}
	return out
}

func TestLedgerBalancedThroughLifecycle(t *testing.T) {
	l := newLedger()
	v := vector.New[token](l.ops(false))

	for i := 0; i < 9; i++ {
		_, err := v.EmplaceBack(l.make(i))
		require.NoError(t, err)
		require.Equal(t, v.Len(), l.live())
	}

	_, err := v.Emplace(3, l.make(100))
	require.NoError(t, err)
	require.Equal(t, v.Len(), l.live())

	_, err = v.Erase(0)
	require.NoError(t, err)
	require.Equal(t, v.Len(), l.live())

	v.PopBack()
	require.Equal(t, v.Len(), l.live())

	require.NoError(t, v.Resize(20))
	require.Equal(t, v.Len(), l.live())
	require.NoError(t, v.Resize(2))
	require.Equal(t, v.Len(), l.live())

	v.Release()
	require.Equal(t, 0, l.live())
}

func TestLedgerBalancedOnCloneAndCopy(t *testing.T) {
	l := newLedger()
	v := vector.New[token](l.ops(false))
	for i := 0; i < 5; i++ {
		_, err := v.EmplaceBack(l.make(i))
		require.NoError(t, err)
	}

	c, err := v.Clone()
	require.NoError(t, err)
	require.Equal(t, v.Len()+c.Len(), l.live())
	require.Equal(t, ids(v), ids(c))

	other := vector.New[token](l.ops(false))
	for i := 0; i < 3; i++ {
		_, err := other.EmplaceBack(l.make(10 + i))
		require.NoError(t, err)
	}
	require.NoError(t, c.CopyFrom(other))
	require.Equal(t, []int{10, 11, 12}, ids(c))
	require.Equal(t, v.Len()+c.Len()+other.Len(), l.live())

	v.Release()
	c.Release()
	other.Release()
	require.Equal(t, 0, l.live())
}

func TestGrowthUsesMoveWhenSafe(t *testing.T) {
	l := newLedger()
	v := vector.New[token](l.ops(false)) // move cannot fail → move policy
	defer v.Release()

	for i := 0; i < 4; i++ {
		_, err := v.EmplaceBack(l.make(i))
		require.NoError(t, err)
	}

	// force growth and verify elements arrived by move: ids preserved,
	// ledger balanced
	require.NoError(t, v.Reserve(64))
	require.Equal(t, []int{0, 1, 2, 3}, ids(v))
	require.Equal(t, v.Len(), l.live())
}

func TestGrowthCopiesWhenMoveCanFail(t *testing.T) {
	l := newLedger()
	l.failMoves = 0 // any move would fail; the copy policy must avoid them
	v := vector.New[token](l.ops(true))
	defer v.Release()

	for i := 0; i < 8; i++ {
		_, err := v.EmplaceBack(l.make(i))
		require.NoError(t, err)
	}
	require.NoError(t, v.Reserve(32))
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, ids(v))
	require.Equal(t, v.Len(), l.live())
}

func TestFailedCopyTransferLeavesSourceIntact(t *testing.T) {
	l := newLedger()
	v := vector.New[token](l.ops(true)) // copy policy on growth
	defer v.Release()

	for i := 0; i < 4; i++ {
		_, err := v.EmplaceBack(l.make(i))
		require.NoError(t, err)
	}

	l.failCopies = 2 // third copy during the transfer fails
	err := v.Reserve(16)
	require.ErrorIs(t, err, errBoom)

	require.Equal(t, 4, v.Len())
	require.Equal(t, 4, v.Cap(), "old block stays authoritative")
	require.Equal(t, []int{0, 1, 2, 3}, ids(v))
	require.Equal(t, v.Len(), l.live(), "rollback destroyed the partial transfer")
}

func TestFailedGrowingInsertRollsBack(t *testing.T) {
	l := newLedger()
	v := vector.New[token](l.ops(true))
	defer v.Release()

	for i := 0; i < 4; i++ {
		_, err := v.EmplaceBack(l.make(i))
		require.NoError(t, err)
	}
	require.Equal(t, v.Len(), v.Cap())

	// fail during the suffix transfer: prefix, new element and partial
	// suffix in the new block must all be destroyed
	l.failCopies = 3
	_, err := v.Emplace(2, l.make(100))
	require.ErrorIs(t, err, errBoom)

	require.Equal(t, 4, v.Len())
	require.Equal(t, 4, v.Cap())
	require.Equal(t, []int{0, 1, 2, 3}, ids(v))
	require.Equal(t, v.Len(), l.live())
}

func TestFailedShiftMoveLeavesConsistentState(t *testing.T) {
	l := newLedger()
	v := vector.New[token](l.ops(false))
	defer v.Release()

	for i := 0; i < 4; i++ {
		_, err := v.EmplaceBack(l.make(i))
		require.NoError(t, err)
	}
	require.NoError(t, v.Reserve(8)) // spare capacity forces the shift path
	require.Equal(t, v.Len(), l.live())

	// the first move (last element into the fresh tail slot) succeeds,
	// the next move-assign of the shift fails
	l.failMoves = 1
	i, err := v.Emplace(1, l.make(100))
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, 1, i)

	// partially shifted but consistent: every counted construction is
	// still live in some slot, nothing leaked, nothing destroyed twice
	require.Equal(t, 5, v.Len())
	require.Equal(t, v.Len(), l.live())

	l.failMoves = -1
	v.Release()
	require.Equal(t, 0, l.live())
}

func TestFailedEraseMoveLeavesConsistentState(t *testing.T) {
	l := newLedger()
	v := vector.New[token](l.ops(false))
	defer v.Release()

	for i := 0; i < 4; i++ {
		_, err := v.EmplaceBack(l.make(i))
		require.NoError(t, err)
	}

	// first left shift lands, second fails: the erase is not applied but
	// the state stays consistent and fully accounted for
	l.failMoves = 1
	i, err := v.Erase(0)
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, 0, i)

	require.Equal(t, 4, v.Len())
	require.Equal(t, v.Len(), l.live())

	l.failMoves = -1
	v.Release()
	require.Equal(t, 0, l.live())
}

func TestFailedCopyFromReuseLeavesConsistentState(t *testing.T) {
	l := newLedger()

	dst := vector.New[token](l.ops(false))
	defer dst.Release()
	require.NoError(t, dst.Reserve(8))
	for i := 0; i < 3; i++ {
		_, err := dst.EmplaceBack(l.make(i))
		require.NoError(t, err)
	}

	src := vector.New[token](l.ops(false))
	defer src.Release()
	for i := 0; i < 5; i++ {
		_, err := src.EmplaceBack(l.make(10 + i))
		require.NoError(t, err)
	}

	// src fits dst's capacity, so storage is reused: the prefix is
	// copy-assigned, then the first tail construction succeeds and the
	// second fails
	l.failCopies = 4
	err := dst.CopyFrom(src)
	require.ErrorIs(t, err, errBoom)

	require.Equal(t, 3, dst.Len(), "length unchanged on reuse-path failure")
	require.Equal(t, 8, dst.Cap())
	require.Equal(t, []int{10, 11, 12}, ids(dst), "assigned prefix is kept")
	require.Equal(t, []int{10, 11, 12, 13, 14}, ids(src), "source untouched")
	require.Equal(t, dst.Len()+src.Len(), l.live())

	l.failCopies = -1
	dst.Release()
	src.Release()
	require.Equal(t, 0, l.live())
}

func TestFailedCtorConsumesNothing(t *testing.T) {
	l := newLedger()
	v := vector.New[token](l.ops(false))
	defer v.Release()

	_, err := v.EmplaceBack(func() (token, error) { return token{}, errBoom })
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, 0, v.Len())
	require.Equal(t, 0, v.Cap())
	require.Equal(t, 0, l.live())
}

func TestFailedCloneRollsBack(t *testing.T) {
	l := newLedger()
	v := vector.New[token](l.ops(false))
	defer v.Release()
	for i := 0; i < 6; i++ {
		_, err := v.EmplaceBack(l.make(i))
		require.NoError(t, err)
	}

	l.failCopies = 4
	_, err := v.Clone()
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, ids(v))
	require.Equal(t, v.Len(), l.live())
}

func TestNonCopyableUsesMove(t *testing.T) {
	l := newLedger()
	ops := vector.Funcs[token]{
		NewFunc: func() (token, error) { l.constructs++; return token{}, nil },
		MoveFunc: func(src *token) (token, error) {
			l.constructs++
			t := *src
			*src = token{id: -1}
			return t, nil
		},
		DestroyFunc: func(s *token) { l.destroys++ },
		MoveFails:   true, // fallible move, but with no copy it is still used
		NoCopy:      true,
	}
	v := vector.New[token](ops)
	defer v.Release()

	for i := 0; i < 4; i++ {
		_, err := v.EmplaceBack(l.make(i))
		require.NoError(t, err)
	}
	require.NoError(t, v.Reserve(16))
	require.Equal(t, []int{0, 1, 2, 3}, ids(v))
	require.Equal(t, v.Len(), l.live())

	_, err := ops.Copy(v.At(0))
	require.ErrorIs(t, err, vector.ErrNotCopyable)
}
