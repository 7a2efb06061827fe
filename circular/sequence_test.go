package circular_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvring/circular"
)

// fill appends vs to a fresh Sequence.
func fill[T any](vs ...T) *circular.Sequence[T] {
	s := circular.New[T]()
	for _, v := range vs {
		s.Append(v)
	}
	return s
}

// TestSequence_AppendOrder verifies that Values reproduces append order for
// sizes 0..8.
func TestSequence_AppendOrder(t *testing.T) {
	for n := 0; n <= 8; n++ {
		want := make([]int, 0, n)
		s := circular.New[int]()
		for i := 1; i <= n; i++ {
			s.Append(i)
			want = append(want, i)
		}
		assert.Equal(t, n, s.Len(), "Len after %d appends", n)
		assert.Equal(t, want, s.Values(), "Values after %d appends", n)
	}
}

// TestSequence_EmptySnapshot checks that an empty Sequence yields an empty,
// non-nil slice and an iterator that never yields.
func TestSequence_EmptySnapshot(t *testing.T) {
	s := circular.New[string]()
	vs := s.Values()
	require.NotNil(t, vs)
	require.Empty(t, vs)

	for range s.All() {
		t.Fatal("All yielded on an empty Sequence")
	}
}

// TestSequence_AllRestartable ranges twice and stops early once.
func TestSequence_AllRestartable(t *testing.T) {
	s := fill("a", "b", "c", "d")

	var first, second []string
	for v := range s.All() {
		first = append(first, v)
	}
	for v := range s.All() {
		second = append(second, v)
	}
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a", "b", "c", "d"}, first)

	var partial []string
	for v := range s.All() {
		partial = append(partial, v)
		if v == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, partial)
	assert.Equal(t, 4, s.Len(), "iteration must not mutate")
}

// TestSequence_ValuesIsCopy ensures callers cannot reach the arena through
// the snapshot.
func TestSequence_ValuesIsCopy(t *testing.T) {
	s := fill(1, 2, 3)
	vs := s.Values()
	vs[0] = 99
	assert.Equal(t, []int{1, 2, 3}, s.Values())
}

// TestSequence_AppendAfterEmptied reuses a Sequence after a full run.
func TestSequence_AppendAfterEmptied(t *testing.T) {
	s := fill(1, 2, 3)
	_, err := s.EliminateRun(1, 2)
	require.NoError(t, err)
	require.Equal(t, 0, s.Len())

	s.Append(7)
	require.Equal(t, 1, s.Len())
	require.Equal(t, []int{7}, s.Values())

	s.Append(8)
	require.Equal(t, []int{7, 8}, s.Values())
}

// TestWithCapacity covers the option constructor.
func TestWithCapacity(t *testing.T) {
	s := circular.New[int](circular.WithCapacity(16))
	assert.Equal(t, 0, s.Len())
	s.Append(1)
	assert.Equal(t, []int{1}, s.Values())

	assert.NotPanics(t, func() { circular.WithCapacity(0) })
	assert.Panics(t, func() { circular.WithCapacity(-1) })
}

// TestSequence_ZeroValue uses a Sequence that was never passed through New.
func TestSequence_ZeroValue(t *testing.T) {
	var s circular.Sequence[string]
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Values())

	_, err := s.EliminateOnce(1, 1)
	require.ErrorIs(t, err, circular.ErrEmptyCollection)
	_, err = s.EliminateRun(1, 1)
	require.ErrorIs(t, err, circular.ErrEmptyCollection)

	s.Append("a")
	s.Append("b")
	s.Append("c")
	assert.Equal(t, []string{"a", "b", "c"}, s.Values())

	order, err := s.EliminateRun(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, order)
	assert.Equal(t, 0, s.Len())
}
