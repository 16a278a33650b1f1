package tui

import (
	"fmt"
	"strings"

	"plotstack/internal/panzoom"
)

// gutterW is the left column reserved for value-axis labels.
const gutterW = 9

const (
	headerHeight = 1
	footerHeight = 2
	axisHeight   = 1
	sidebarWidth = 28
)

type rect struct{ x, y, w, h int }

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// viewRects is the screen layout for the current terminal size. Update
// (mouse hit testing) and View must agree on it, so both derive it here.
type viewRects struct {
	contentW int
	contentH int
	plotX    int
	plotW    int
	plots    []rect // braille canvas area per plot, screen coords
}

func (m Model) rects() viewRects {
	var vr viewRects
	sidebar := 0
	if m.showSidebar {
		sidebar = sidebarWidth + 1
	}
	vr.contentW = max(10, m.width)
	vr.contentH = m.height - headerHeight - footerHeight
	if vr.contentH < 4 {
		vr.contentH = 4
	}
	vr.plotX = sidebar + gutterW
	vr.plotW = max(8, vr.contentW-sidebar-gutterW)

	n := len(m.cfg.Plots)
	if n == 0 {
		return vr
	}
	plotAreaH := vr.contentH - axisHeight
	ph := max(4, plotAreaH/n)
	for i := 0; i < n; i++ {
		vr.plots = append(vr.plots, rect{
			x: vr.plotX,
			y: headerHeight + i*ph + 1, // first row of each block is the title
			w: vr.plotW,
			h: ph - 1,
		})
	}
	return vr
}

// project maps a sample to microgrid coords through a navigator's current
// window. Offscreen results are fine; the raster buffer clips.
func project(nav panzoom.Navigator, t, v float64, w, h int) (int, int, bool) {
	o, d := nav.Origin(), nav.Dims()
	if d.Domain <= 0 || d.Range <= 0 {
		return 0, 0, false
	}
	nx := (t - o.Domain) / d.Domain
	ny := (v - o.Range) / d.Range
	sx := int(nx * float64(w*2-1))
	sy := int((1 - ny) * float64(h*4-1))
	return sx, sy, true
}

// unproject maps a canvas cell back to plot coordinates for the crosshair.
func unproject(nav panzoom.Navigator, cx, cy, w, h int) (float64, float64, bool) {
	o, d := nav.Origin(), nav.Dims()
	if d.Domain <= 0 || d.Range <= 0 || w < 1 || h < 1 {
		return 0, 0, false
	}
	t := o.Domain + (float64(cx)+0.5)/float64(w)*d.Domain
	v := o.Range + (1-(float64(cy)+0.5)/float64(h))*d.Range
	return t, v, true
}

// renderPlotBlock renders one stacked plot: a title row followed by the
// braille canvas with value labels in the left gutter. w is the canvas
// width; the gutter is prepended here.
func (m Model) renderPlotBlock(i, w, h int) string {
	p := m.cfg.Plots[i]
	nav := m.navs[i]

	title := p.Title
	if nav.Depth() > 1 {
		title += fmt.Sprintf("  [%d]", nav.Depth())
	}
	marker := "  "
	style := plotTitleStyle
	if i == m.focus {
		marker = "▶ "
		style = focusTitleStyle
	}
	rows := []string{style.Render(marker + title)}

	canvas := m.renderCanvas(i, w, h)
	o, d := nav.Origin(), nav.Dims()
	step := niceStep(d.Range, 4)
	for y := 0; y < h; y++ {
		label := ""
		switch y {
		case 0:
			label = formatTick(o.Range+d.Range, step)
		case h - 1:
			label = formatTick(o.Range, step)
		}
		if len(label) > gutterW-1 {
			label = label[:gutterW-1]
		}
		gutter := dimStyle.Render(fmt.Sprintf("%*s ", gutterW-1, label))
		rows = append(rows, gutter+canvas[y])
	}
	return strings.Join(rows, "\n")
}

// renderCanvas rasterizes the plot's series through its navigator.
func (m Model) renderCanvas(i, w, h int) []string {
	nav := m.navs[i]
	br := newBrailleBuf(w, h)

	// time gridlines at nice ticks
	o, d := nav.Origin(), nav.Dims()
	if d.Domain > 0 {
		for _, tk := range ticks(o.Domain, d.Domain, 6) {
			mx := int((tk - o.Domain) / d.Domain * float64(w*2-1))
			br.vlineDotted(mx)
		}
	}

	for _, name := range m.cfg.Plots[i].Series {
		s, ok := m.frame.Lookup(name)
		if !ok {
			continue
		}
		var prev *[2]int
		for _, smp := range s.Samples {
			mx, my, ok := project(nav, smp.T, smp.V, w, h)
			if !ok {
				continue
			}
			if prev != nil {
				br.drawLineMicro(prev[0], prev[1], mx, my)
			} else {
				br.setPixel(mx, my)
			}
			prev = &[2]int{mx, my}
		}
	}
	return br.toLines()
}

// renderTimeAxis renders the shared time scale under the plot stack. Any
// navigator serves: the domain axis is synchronized across the group. w
// is the canvas width; the gutter is prepended here.
func (m Model) renderTimeAxis(w int) string {
	row := make([]rune, w)
	for i := range row {
		row[i] = ' '
	}
	if len(m.navs) > 0 {
		nav := m.navs[0]
		o, d := nav.Origin(), nav.Dims()
		if d.Domain > 0 {
			step := niceStep(d.Domain, 6)
			for _, tk := range ticks(o.Domain, d.Domain, 6) {
				cx := int((tk - o.Domain) / d.Domain * float64(w-1))
				label := formatTick(tk, step)
				if cx < 0 || cx+len(label) > w {
					continue
				}
				copy(row[cx:], []rune(label))
			}
		}
	}
	return dimStyle.Render(strings.Repeat(" ", gutterW) + string(row))
}
