package panzoom

import "testing"

func nav(t *testing.T, g *Group, i int) Navigator {
	t.Helper()
	n, err := g.Navigator(i)
	if err != nil {
		t.Fatalf("Navigator(%d): %v", i, err)
	}
	return n
}

func TestGroupNavigatorBounds(t *testing.T) {
	g := NewGroup(3)
	cases := []struct {
		index  int
		wantOK bool
	}{
		{-1, false},
		{0, true},
		{2, true},
		{3, false},
		{99, false},
	}
	for _, tc := range cases {
		n, err := g.Navigator(tc.index)
		if tc.wantOK && (err != nil || n == nil) {
			t.Errorf("Navigator(%d) = %v, %v; want view", tc.index, n, err)
		}
		if !tc.wantOK && err == nil {
			t.Errorf("Navigator(%d) succeeded, want out-of-range error", tc.index)
		}
	}
}

func TestNewGroupStates(t *testing.T) {
	g := NewGroupStates([]State{
		{Origin: pt(0, 1), Dims: pt(10, 2)},
		{Origin: pt(0, 5), Dims: pt(10, 6)},
	})
	if got := g.Size(); got != 2 {
		t.Fatalf("Size() = %d, want 2", got)
	}
	b := nav(t, g, 1)
	if got := b.Origin(); got != pt(0, 5) {
		t.Errorf("Origin() = %v, want %v", got, pt(0, 5))
	}
	if got := b.Dims(); got != pt(10, 6) {
		t.Errorf("Dims() = %v, want %v", got, pt(10, 6))
	}
}

func TestEmptyGroup(t *testing.T) {
	g := NewGroup(0)
	if got := g.Depth(); got != 0 {
		t.Errorf("Depth() of empty group = %d, want 0", got)
	}
	if _, err := g.Navigator(0); err == nil {
		t.Errorf("Navigator(0) on empty group succeeded, want error")
	}
}

// A push through any view deepens every member stack by exactly one, so
// depths stay equal across the group under any operation sequence.
func TestGroupEqualDepth(t *testing.T) {
	g := NewGroup(3)
	a, b, c := nav(t, g, 0), nav(t, g, 1), nav(t, g, 2)

	a.Push(pt(1, 1), pt(1, 1))
	b.Push(pt(2, 2), pt(2, 2))
	c.Push(pt(3, 3), pt(3, 3))
	a.Pop()
	b.Push(pt(4, 4), pt(4, 4))
	c.Pop()
	c.Pop()
	c.Pop() // below floor for everyone, still a group-wide no-op at depth 1

	depths := []int{a.Depth(), b.Depth(), c.Depth()}
	for i := 1; i < len(depths); i++ {
		if depths[i] != depths[0] {
			t.Fatalf("unequal depths %v", depths)
		}
	}
	if got := g.Depth(); got != depths[0] {
		t.Errorf("Group.Depth() = %d, want %d", got, depths[0])
	}
}

// The synchronization rule: a push on one plot carries its domain window
// to every other plot while their range windows are preserved as-is.
func TestGroupPushSynchronizesDomainOnly(t *testing.T) {
	g := NewGroup(2)
	a, b := nav(t, g, 0), nav(t, g, 1)

	// Give stack 1 a distinctive range window.
	b.SetBase(pt(0, 7), pt(0, 2))

	a.Push(pt(5, 10), pt(1, 1))

	if got := a.Origin(); got != pt(5, 10) {
		t.Errorf("originating Origin() = %v, want %v", got, pt(5, 10))
	}
	if got := a.Dims(); got != pt(1, 1) {
		t.Errorf("originating Dims() = %v, want %v", got, pt(1, 1))
	}
	if got, want := b.Origin(), pt(5, 7); got != want {
		t.Errorf("other Origin() = %v, want %v", got, want)
	}
	if got, want := b.Dims(), pt(1, 2); got != want {
		t.Errorf("other Dims() = %v, want %v", got, want)
	}
	if a.Depth() != 2 || b.Depth() != 2 {
		t.Errorf("depths = %d, %d; want 2, 2", a.Depth(), b.Depth())
	}
}

// Pop from any view unwinds the most recent push everywhere, restoring
// each stack's own prior window.
func TestGroupPopRestoresPriorStates(t *testing.T) {
	g := NewGroup(3)
	a := nav(t, g, 0)
	c := nav(t, g, 2)

	a.Push(pt(1, 10), pt(4, 4))
	a.Push(pt(2, 20), pt(2, 2))

	type snap struct{ o, d Point }
	before := make([]snap, g.Size())
	for i := range before {
		n := nav(t, g, i)
		before[i] = snap{n.Origin(), n.Dims()}
	}

	a.Push(pt(9, 90), pt(1, 1))
	c.Pop() // any view may trigger the group-wide pop

	for i := range before {
		n := nav(t, g, i)
		if n.Depth() != 3 {
			t.Errorf("stack %d depth = %d, want 3", i, n.Depth())
		}
		if n.Origin() != before[i].o || n.Dims() != before[i].d {
			t.Errorf("stack %d = (%v, %v), want (%v, %v)",
				i, n.Origin(), n.Dims(), before[i].o, before[i].d)
		}
	}
}

// SetBase writes the identical state to every base, all axes included,
// and leaves pushed navigation untouched until cleared.
func TestGroupSetBaseAllAxes(t *testing.T) {
	g := NewGroup(2)
	a, b := nav(t, g, 0), nav(t, g, 1)

	a.Push(pt(1, 2), pt(3, 4))
	b.SetBase(pt(10, 20), pt(30, 40))

	if a.Depth() != 2 || b.Depth() != 2 {
		t.Fatalf("depths after SetBase = %d, %d; want 2, 2", a.Depth(), b.Depth())
	}

	a.Clear()
	for i, n := range []Navigator{a, b} {
		if n.Depth() != 1 {
			t.Errorf("stack %d depth after Clear = %d, want 1", i, n.Depth())
		}
		if got := n.Origin(); got != pt(10, 20) {
			t.Errorf("stack %d base Origin() = %v, want %v", i, got, pt(10, 20))
		}
		if got := n.Dims(); got != pt(30, 40) {
			t.Errorf("stack %d base Dims() = %v, want %v", i, got, pt(30, 40))
		}
	}
}

func TestGroupClearIdempotent(t *testing.T) {
	g := NewGroup(2)
	a := nav(t, g, 0)
	a.SetBase(pt(1, 1), pt(2, 2))
	a.Push(pt(5, 5), pt(1, 1))
	a.Clear()
	a.Clear()
	if got := g.Depth(); got != 1 {
		t.Fatalf("Depth() after double Clear = %d, want 1", got)
	}
	if got := a.Origin(); got != pt(1, 1) {
		t.Errorf("Origin() after double Clear = %v, want %v", got, pt(1, 1))
	}
}
