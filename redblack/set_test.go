package redblack

import (
	"math/rand"
	"slices"
	"testing"

	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresComparison(t *testing.T) {
	_, err := New[int](nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRandomPermutationStaysBalanced(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	s := NewOrdered[int]()
	for _, v := range rng.Perm(500) {
		s.Insert(v)
		_, err := s.checkInvariants()
		require.NoError(t, err, "red-black invariants broken after inserting %d", v)
	}
	got := slices.Collect(s.All())
	require.Len(t, got, 500)
	require.True(t, slices.IsSorted(got))
	for i := 0; i < 500; i++ {
		tassert.True(t, s.Contains(i))
	}
	tassert.False(t, s.Contains(500))
}

func TestDuplicateInsertSharesStructure(t *testing.T) {
	s := NewOrdered[int]()
	for i := 0; i < 50; i++ {
		s.Insert(i)
	}
	rootBefore := s.root
	inserted, member := s.Insert(25)
	require.False(t, inserted)
	require.Equal(t, 25, member)
	// A duplicate probe rebuilds nothing.
	tassert.Same(t, rootBefore, s.root)
	require.Equal(t, 50, s.Len())
}

func TestCloneIsPersistent(t *testing.T) {
	s := NewOrdered[int]()
	for i := 0; i < 20; i++ {
		s.Insert(i)
	}
	snapshot := slices.Collect(s.All())
	copied := s.Clone()
	copied.Insert(100)
	copied.Insert(-1)
	require.Equal(t, 20, s.Len())
	require.Equal(t, 22, copied.Len())
	tassert.False(t, s.Contains(100))
	tassert.True(t, copied.Contains(100))
	require.Equal(t, snapshot, slices.Collect(s.All()))
	_, err := s.checkInvariants()
	require.NoError(t, err)
	_, err = copied.checkInvariants()
	require.NoError(t, err)
}
