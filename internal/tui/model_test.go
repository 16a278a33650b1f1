package tui

import (
	"os"
	"path/filepath"
	"testing"
)

const telemCSV = `time,bus_v,temp_a
0,28.0,40
5,27.5,45
10,28.5,50
`

const twoPlotLayout = `
plots:
  - title: bus
    series: [bus_v]
  - title: temps
    series: [temp_a]
readouts:
  - label: BUS V
    series: bus_v
`

func newTestModel(t *testing.T) Model {
	t.Helper()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "telem.csv")
	if err := os.WriteFile(csvPath, []byte(telemCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	layoutPath := filepath.Join(dir, "layout.yaml")
	if err := os.WriteFile(layoutPath, []byte(twoPlotLayout), 0o644); err != nil {
		t.Fatal(err)
	}
	return New(Options{Path: csvPath, LayoutPath: layoutPath})
}

func TestNewBuildsPerPlotBases(t *testing.T) {
	m := newTestModel(t)
	if got := m.group.Size(); got != 2 {
		t.Fatalf("group size = %d, want 2", got)
	}
	if got := m.group.Depth(); got != 1 {
		t.Fatalf("group depth = %d, want 1", got)
	}
	// shared time span, per-plot value span
	for i, wantRange := range []struct{ lo, span float64 }{{27.5, 1.0}, {40, 10}} {
		o, d := m.navs[i].Origin(), m.navs[i].Dims()
		if o.Domain != 0 || d.Domain != 10 {
			t.Errorf("plot %d time window = [%v, +%v], want [0, +10]", i, o.Domain, d.Domain)
		}
		if !approx(o.Range, wantRange.lo) || !approx(d.Range, wantRange.span) {
			t.Errorf("plot %d value window = [%v, +%v], want [%v, +%v]",
				i, o.Range, d.Range, wantRange.lo, wantRange.span)
		}
	}
}

func TestPanPropagatesTimeOnly(t *testing.T) {
	m := newTestModel(t)
	o1Before, d1Before := m.navs[1].Origin(), m.navs[1].Dims()

	m.panFocused(panStep, 0) // focus starts at plot 0

	if got := m.group.Depth(); got != 2 {
		t.Fatalf("group depth after pan = %d, want 2", got)
	}
	o0, o1 := m.navs[0].Origin(), m.navs[1].Origin()
	if !approx(o0.Domain, 1) || !approx(o1.Domain, 1) {
		t.Errorf("time origins = %v, %v; want 1 on both plots", o0.Domain, o1.Domain)
	}
	if !approx(o1.Range, o1Before.Range) || !approx(m.navs[1].Dims().Range, d1Before.Range) {
		t.Errorf("plot 1 value window changed by a time pan")
	}
}

func TestUndoUnwindsGroup(t *testing.T) {
	m := newTestModel(t)
	m.panFocused(panStep, 0)
	m.zoomFocused(1 / zoomFactor)
	if got := m.group.Depth(); got != 3 {
		t.Fatalf("group depth = %d, want 3", got)
	}
	m.focusedNav().Pop()
	if got := m.group.Depth(); got != 2 {
		t.Fatalf("group depth after undo = %d, want 2", got)
	}
	if !approx(m.navs[0].Origin().Domain, 1) {
		t.Errorf("undo did not restore the pre-zoom window")
	}
}

func TestFitFocusedRangeKeepsOtherPlots(t *testing.T) {
	m := newTestModel(t)
	m.focus = 1
	o0Before := m.navs[0].Origin()
	m.fitFocusedRange()
	if got := m.group.Depth(); got != 2 {
		t.Fatalf("group depth = %d, want 2", got)
	}
	if !approx(m.navs[1].Origin().Range, 40) || !approx(m.navs[1].Dims().Range, 10) {
		t.Errorf("plot 1 value window = [%v, +%v], want [40, +10]",
			m.navs[1].Origin().Range, m.navs[1].Dims().Range)
	}
	if !approx(m.navs[0].Origin().Range, o0Before.Range) {
		t.Errorf("plot 0 value origin changed by plot 1's fit")
	}
}

func TestReloadRebasesWithoutDroppingHistory(t *testing.T) {
	m := newTestModel(t)
	m.panFocused(panStep, 0)

	// grow the file and reload
	grown := telemCSV + "15,29.0,55\n"
	if err := os.WriteFile(m.selPath, []byte(grown), 0o644); err != nil {
		t.Fatal(err)
	}
	m.reload()

	if got := m.group.Depth(); got != 2 {
		t.Fatalf("group depth after reload = %d, want 2 (history kept)", got)
	}
	// base now covers the grown extent; visible via reset
	m.focusedNav().Clear()
	o, d := m.navs[0].Origin(), m.navs[0].Dims()
	if !approx(o.Domain, 0) || !approx(d.Domain, 15) {
		t.Errorf("rebased time window = [%v, +%v], want [0, +15]", o.Domain, d.Domain)
	}
}
