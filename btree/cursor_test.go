package btree

import (
	"math/rand"
	"slices"
	"testing"
)

func expectPanic(t *testing.T, msg string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic: %s", msg)
		}
	}()
	fn()
}

func TestCursorStartEqualsEndOnEmptySet(t *testing.T) {
	tree := newIntTree(t, 4)
	start := tree.Start()
	end := tree.End()
	if !start.AtEnd() || !start.Equal(end) {
		t.Fatalf("expected start == end on empty set")
	}
}

func TestCursorStepsThroughSmallSet(t *testing.T) {
	tree := newIntTree(t, 4)
	tree.Insert(5)
	tree.Insert(3)
	start := tree.Start()
	if got := start.Item(); got != 3 {
		t.Fatalf("start references %d, want 3", got)
	}
	second := tree.After(start)
	if got := second.Item(); got != 5 {
		t.Fatalf("successor references %d, want 5", got)
	}
	third := tree.After(second)
	if !third.AtEnd() || !third.Equal(tree.End()) {
		t.Fatalf("expected successor of last element to equal end")
	}
	if got := tree.Before(third).Item(); got != 5 {
		t.Fatalf("predecessor of end references %d, want 5", got)
	}
}

func TestCursorForwardTraversalMatchesIteration(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tree := newIntTree(t, 4)
	for _, v := range rng.Perm(200) {
		tree.Insert(v)
	}
	want := collect(tree)
	var got []int
	for c := tree.Start(); !c.AtEnd(); c.Next() {
		got = append(got, c.Item())
	}
	if !slices.Equal(got, want) {
		t.Fatalf("cursor traversal diverges from iteration")
	}
}

func TestCursorBackwardTraversal(t *testing.T) {
	tree := newIntTree(t, 4)
	for i := 1; i <= 100; i++ {
		tree.Insert(i)
	}
	var got []int
	start := tree.Start()
	for c := tree.End(); !c.Equal(start); {
		c.Prev()
		got = append(got, c.Item())
	}
	slices.Reverse(got)
	if !slices.Equal(got, collect(tree)) {
		t.Fatalf("backward traversal diverges from iteration")
	}
}

func TestCursorOrdering(t *testing.T) {
	tree := newIntTree(t, 4)
	for i := 1; i <= 30; i++ {
		tree.Insert(i)
	}
	low := tree.Start()
	high := tree.After(tree.After(low))
	end := tree.End()
	if !low.Less(high) || high.Less(low) {
		t.Fatalf("cursor order does not follow element order")
	}
	if !high.Less(end) || end.Less(high) || end.Less(end) {
		t.Fatalf("end does not sort after every element")
	}
	if !low.Equal(tree.Start()) {
		t.Fatalf("equal positions reported as different")
	}
}

func TestCursorStaleAfterStructuralMutation(t *testing.T) {
	tree := newIntTree(t, 4)
	for i := 1; i <= 10; i++ {
		tree.Insert(i)
	}
	c := tree.Start()
	tree.Insert(11)
	expectPanic(t, "stale cursor dereference", func() { c.Item() })
	expectPanic(t, "stale cursor advance", func() { c.Next() })
}

func TestCursorStaleAfterDescendingDuplicateInsert(t *testing.T) {
	tree := newIntTree(t, 4)
	for i := 1; i <= 10; i++ {
		tree.Insert(i)
	}
	// 1 lives in a leaf, so the duplicate probe descends through the root
	// and bumps its mutation counter even though nothing was inserted.
	c := tree.Start()
	if inserted, _ := tree.Insert(1); inserted {
		t.Fatalf("expected duplicate insert")
	}
	expectPanic(t, "cursor after descending no-op insert", func() { c.Item() })
}

func TestCursorSurvivesDuplicateMatchedAtRoot(t *testing.T) {
	tree := newIntTree(t, 4)
	for i := 1; i <= 10; i++ {
		tree.Insert(i)
	}
	separator := tree.root.elements[0]
	c := tree.Start()
	// A duplicate matched directly in the root neither clones nor bumps
	// any counter; existing cursors stay usable.
	if inserted, _ := tree.Insert(separator); inserted {
		t.Fatalf("expected duplicate insert")
	}
	if got := c.Item(); got != 1 {
		t.Fatalf("cursor no longer references 1, got %d", got)
	}
}

func TestCursorRemainsValidWhenCloneMutates(t *testing.T) {
	tree := newIntTree(t, 4)
	for i := 1; i <= 50; i++ {
		tree.Insert(i)
	}
	c := tree.Start()
	copied := tree.Clone()
	copiedCursor := copied.Start()
	copied.Insert(99)
	// The clone mutated through privately copied nodes; the original tree's
	// root identity and generation are untouched.
	if got := c.Item(); got != 1 {
		t.Fatalf("cursor on unmutated original broke, got %d", got)
	}
	expectPanic(t, "cursor on mutated clone", func() { copiedCursor.Item() })
}

func TestCursorForeignTreeComparisonFails(t *testing.T) {
	a := newIntTree(t, 4)
	b := newIntTree(t, 4)
	a.Insert(1)
	b.Insert(1)
	ca := a.Start()
	cb := b.Start()
	expectPanic(t, "cross-tree comparison", func() { ca.Equal(cb) })
	expectPanic(t, "foreign cursor stepping", func() { a.After(cb) })
}

func TestCursorRangeViolationsPanic(t *testing.T) {
	tree := newIntTree(t, 4)
	tree.Insert(1)
	expectPanic(t, "advance past end", func() { tree.End().Next() })
	expectPanic(t, "step before start", func() { tree.Start().Prev() })
	expectPanic(t, "dereference end", func() { tree.End().Item() })
}
