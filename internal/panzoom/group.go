package panzoom

import "fmt"

// Group owns a fixed set of stacks, one per plot in a stacked layout, and
// keeps their domain axes in lockstep. Every member stack always has the
// same depth: a push through any synchronized view deepens all of them,
// and pop/clear/rebase fan out to all of them.
type Group struct {
	stacks []*Stack
	views  []*syncView
}

// NewGroup creates count stacks, each with a zero base state. Callers
// rebase to real data extents via SetBase on any view.
func NewGroup(count int) *Group {
	return NewGroupStates(make([]State, count))
}

// NewGroupStates creates one stack per supplied base state, for callers
// that know each plot's default window up front.
func NewGroupStates(bases []State) *Group {
	g := &Group{
		stacks: make([]*Stack, len(bases)),
		views:  make([]*syncView, len(bases)),
	}
	for i, base := range bases {
		g.stacks[i] = NewStack(base)
		g.views[i] = &syncView{group: g, index: i}
	}
	return g
}

// Size returns the number of member stacks.
func (g *Group) Size() int { return len(g.stacks) }

// Depth returns the shared depth of the member stacks, or 0 for an empty
// group.
func (g *Group) Depth() int {
	if len(g.stacks) == 0 {
		return 0
	}
	return g.stacks[0].Depth()
}

// Navigator returns the synchronized view for one plot. An out-of-range
// index is an error rather than a clamp so integration bugs surface
// immediately.
func (g *Group) Navigator(index int) (Navigator, error) {
	if index < 0 || index >= len(g.views) {
		return nil, fmt.Errorf("panzoom: stack index %d out of range [0,%d)", index, len(g.views))
	}
	return g.views[index], nil
}

// push applies the synchronization rule for a push originating at stack
// `from`: that stack receives the caller's state verbatim; every other
// stack receives the caller's domain component paired with its own current
// top range component, read before the push so it is carried forward
// unchanged. Depth grows by one everywhere.
func (g *Group) push(from int, origin, dims Point) {
	for i, s := range g.stacks {
		if i == from {
			s.Push(origin, dims)
			continue
		}
		o := s.Origin()
		d := s.Dims()
		s.Push(
			Point{Domain: origin.Domain, Range: o.Range},
			Point{Domain: dims.Domain, Range: d.Range},
		)
	}
}

func (g *Group) pop() {
	for _, s := range g.stacks {
		s.Pop()
	}
}

func (g *Group) setBase(origin, dims Point) {
	for _, s := range g.stacks {
		s.SetBase(origin, dims)
	}
}

func (g *Group) clear() {
	for _, s := range g.stacks {
		s.Clear()
	}
}

// syncView is the synchronized Navigator for one member stack. It holds no
// state beyond its index: reads delegate to its own stack, writes route
// through the group so every member observes the mutation.
type syncView struct {
	group *Group
	index int
}

func (v *syncView) stack() *Stack { return v.group.stacks[v.index] }

func (v *syncView) Origin() Point { return v.stack().Origin() }
func (v *syncView) Dims() Point   { return v.stack().Dims() }
func (v *syncView) Depth() int    { return v.stack().Depth() }

func (v *syncView) Push(origin, dims Point) { v.group.push(v.index, origin, dims) }
func (v *syncView) Pop()                    { v.group.pop() }
func (v *syncView) SetBase(origin, dims Point) {
	v.group.setBase(origin, dims)
}
func (v *syncView) Clear() { v.group.clear() }
