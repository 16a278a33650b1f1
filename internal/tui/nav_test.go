package tui

import (
	"math"
	"testing"

	"plotstack/internal/panzoom"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestPanned(t *testing.T) {
	o, d := panned(point(10, 100), point(20, 50), 0.1, -0.5)
	if !approx(o.Domain, 12) || !approx(o.Range, 75) {
		t.Errorf("origin = %v, want {12 75}", o)
	}
	if d != point(20, 50) {
		t.Errorf("dims = %v, want unchanged {20 50}", d)
	}
}

func TestZoomedKeepsCenter(t *testing.T) {
	o, d := zoomed(point(0, 0), point(100, 40), 0.5)
	if !approx(d.Domain, 50) || !approx(d.Range, 20) {
		t.Errorf("dims = %v, want {50 20}", d)
	}
	// center (50, 20) must stay fixed
	if !approx(o.Domain+d.Domain/2, 50) || !approx(o.Range+d.Range/2, 20) {
		t.Errorf("center moved: origin %v dims %v", o, d)
	}
}

func TestZoomedAtKeepsAnchor(t *testing.T) {
	// anchor at 25% across, 75% up
	o0, d0 := point(10, 0), point(40, 8)
	ax := o0.Domain + 0.25*d0.Domain
	ay := o0.Range + 0.75*d0.Range
	o, d := zoomedAt(o0, d0, 1/zoomFactor, 0.25, 0.75)
	if !approx(o.Domain+0.25*d.Domain, ax) || !approx(o.Range+0.75*d.Range, ay) {
		t.Errorf("anchor moved: origin %v dims %v", o, d)
	}
}

func TestZoomRoundTrip(t *testing.T) {
	o0, d0 := point(3, 7), point(11, 13)
	o, d := zoomed(o0, d0, 1/zoomFactor)
	o, d = zoomed(o, d, zoomFactor)
	if !approx(o.Domain, o0.Domain) || !approx(o.Range, o0.Range) ||
		!approx(d.Domain, d0.Domain) || !approx(d.Range, d0.Range) {
		t.Errorf("round trip drifted: origin %v dims %v", o, d)
	}
}

func TestProjectUnprojectRoundTrip(t *testing.T) {
	nav := panzoom.NewStack(panzoom.State{
		Origin: point(0, 10),
		Dims:   point(100, 20),
	})
	w, h := 60, 12
	for _, cell := range [][2]int{{0, 0}, {30, 6}, {59, 11}} {
		tc, vc, ok := unproject(nav, cell[0], cell[1], w, h)
		if !ok {
			t.Fatalf("unproject(%v) not ok", cell)
		}
		mx, my, ok := project(nav, tc, vc, w, h)
		if !ok {
			t.Fatalf("project(%v) not ok", cell)
		}
		// back to cell coordinates
		if mx/2 != cell[0] || my/4 != cell[1] {
			t.Errorf("cell %v round-tripped to (%d, %d)", cell, mx/2, my/4)
		}
	}
}

func TestProjectDegenerateWindow(t *testing.T) {
	nav := panzoom.NewStack(panzoom.State{})
	if _, _, ok := project(nav, 1, 1, 10, 10); ok {
		t.Errorf("project with zero dims should not be ok")
	}
	if _, _, ok := unproject(nav, 1, 1, 10, 10); ok {
		t.Errorf("unproject with zero dims should not be ok")
	}
}
