// Package panzoom tracks pan/zoom navigation history for stacked plot
// viewports. A Stack holds the history for one plot; a Group couples the
// domain (time) axis of several stacks while leaving each plot's range
// axis independent.
package panzoom

// Point is one coordinate pair of the plot space. Domain is the shared
// axis (time); Range is the per-plot value axis.
type Point struct {
	Domain float64
	Range  float64
}

// State is one visible window: Origin is the lower-left corner, Dims the
// visible extent along each axis.
type State struct {
	Origin Point
	Dims   Point
}

// Navigator is the capability set shared by a plain Stack and the
// synchronized per-plot views handed out by a Group. Reads always reflect
// the top of the underlying stack; how writes propagate depends on the
// implementation.
type Navigator interface {
	Origin() Point
	Dims() Point
	Depth() int
	Push(origin, dims Point)
	Pop()
	SetBase(origin, dims Point)
	Clear()
}

// Stack is an independent pan/zoom history. Index 0 is the base (default)
// view and can never be removed, so a Stack always has something to render.
type Stack struct {
	states []State
}

// NewStack returns a stack holding the given base state.
func NewStack(base State) *Stack {
	return &Stack{states: []State{base}}
}

func (s *Stack) top() State { return s.states[len(s.states)-1] }

// Origin returns the origin of the active (top) state.
func (s *Stack) Origin() Point { return s.top().Origin }

// Dims returns the dimensions of the active (top) state.
func (s *Stack) Dims() Point { return s.top().Dims }

// Depth returns the number of states on the stack, always >= 1.
func (s *Stack) Depth() int { return len(s.states) }

// Push appends a new active state. Always succeeds.
func (s *Stack) Push(origin, dims Point) {
	s.states = append(s.states, State{Origin: origin, Dims: dims})
}

// Pop removes the active state. At depth 1 it is a no-op: the base is
// never removed, so callers (a back button, say) need not track depth.
func (s *Stack) Pop() {
	if len(s.states) > 1 {
		s.states = s.states[:len(s.states)-1]
	}
}

// SetBase replaces the base state only. States pushed on top are left
// untouched, so the default extents can follow incoming data without
// disturbing the user's navigation history.
func (s *Stack) SetBase(origin, dims Point) {
	s.states[0] = State{Origin: origin, Dims: dims}
}

// Clear discards every pushed state, leaving just the base.
func (s *Stack) Clear() {
	s.states = s.states[:1]
}
