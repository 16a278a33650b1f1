package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"plotstack/internal/panzoom"
	"plotstack/internal/telemetry"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-headerHeight-footerHeight-2)
		}
	case refreshMsg:
		m.reload()
		return m, tickCmd(m.refresh)
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.height-headerHeight-footerHeight-2)
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
					// start the refresh chain once; refreshMsg keeps it going
					if m.refresh > 0 && !m.ticking {
						m.ticking = true
						return m, tickCmd(m.refresh)
					}
				}
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "t":
			m.showReadouts = !m.showReadouts
			if m.showReadouts {
				m.refreshReadouts()
			}
		case "j":
			if m.focus < len(m.navs)-1 {
				m.focus++
			}
		case "k":
			if m.focus > 0 {
				m.focus--
			}
		case "left":
			m.panFocused(-panStep, 0)
		case "right":
			m.panFocused(panStep, 0)
		case "up":
			m.panFocused(0, panStep)
		case "down":
			m.panFocused(0, -panStep)
		case "+", "=":
			m.zoomFocused(1 / zoomFactor)
		case "-", "_":
			m.zoomFocused(zoomFactor)
		case "u", "backspace":
			if nav := m.focusedNav(); nav != nil {
				nav.Pop() // unwinds the whole group
				m.status = fmt.Sprintf("undo  depth=%d", m.group.Depth())
			}
		case "r":
			if nav := m.focusedNav(); nav != nil {
				nav.Clear()
				m.status = "reset to base view"
			}
		case "f":
			// refit every plot: fresh stacks on current data extents
			m.rebuildStacks(m.cfg)
			m.status = "fit all plots"
		case "b":
			// rebase in place: new default extents, navigation history kept
			if nav := m.focusedNav(); nav != nil && m.frame.Bounds.Valid() {
				b := m.frame.Bounds
				nav.SetBase(point(b.MinT, b.MinV), point(b.MaxT-b.MinT, b.MaxV-b.MinV))
				m.status = "rebased to data extents"
			}
		case "y":
			m.fitFocusedRange()
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) focusedNav() panzoom.Navigator {
	if m.focus < 0 || m.focus >= len(m.navs) {
		return nil
	}
	return m.navs[m.focus]
}

// panFocused pushes a shifted window on the focused plot. The time shift
// propagates to every plot; the value shift stays local.
func (m *Model) panFocused(fracDomain, fracRange float64) {
	nav := m.focusedNav()
	if nav == nil {
		return
	}
	o, d := panned(nav.Origin(), nav.Dims(), fracDomain, fracRange)
	nav.Push(o, d)
	m.status = fmt.Sprintf("pan  t=[%.4g..%.4g]", o.Domain, o.Domain+d.Domain)
}

func (m *Model) zoomFocused(factor float64) {
	nav := m.focusedNav()
	if nav == nil {
		return
	}
	o, d := zoomed(nav.Origin(), nav.Dims(), factor)
	nav.Push(o, d)
	m.status = fmt.Sprintf("zoom  t=[%.4g..%.4g]", o.Domain, o.Domain+d.Domain)
}

// fitFocusedRange pushes a window fitting the focused plot's own value
// span, keeping the shared time window. Other plots keep their ranges.
func (m *Model) fitFocusedRange() {
	nav := m.focusedNav()
	if nav == nil || m.focus >= len(m.cfg.Plots) {
		return
	}
	var b telemetry.Bounds
	first := true
	for _, name := range m.cfg.Plots[m.focus].Series {
		s, ok := m.frame.Lookup(name)
		if !ok {
			continue
		}
		for _, smp := range s.Samples {
			b.Extend(smp, first)
			first = false
		}
	}
	if first || b.MaxV <= b.MinV {
		return
	}
	o, d := nav.Origin(), nav.Dims()
	nav.Push(point(o.Domain, b.MinV), point(d.Domain, b.MaxV-b.MinV))
	m.status = "fit value range"
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	vr := m.rects()
	hit := -1
	for i, r := range vr.plots {
		if r.contains(msg.X, msg.Y) {
			hit = i
			break
		}
	}
	if hit < 0 {
		m.hovering = false
		if msg.Action == tea.MouseActionRelease {
			m.dragging = false
		}
		return
	}
	r := vr.plots[hit]
	cx, cy := msg.X-r.x, msg.Y-r.y

	m.hovering = false
	if hit < len(m.navs) {
		if t, v, ok := unproject(m.navs[hit], cx, cy, r.w, r.h); ok {
			m.hovering = true
			m.hoverPlot = hit
			m.hoverT, m.hoverV = t, v
		}
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.wheelZoom(hit, cx, cy, r, 1/zoomFactor)
	case msg.Button == tea.MouseButtonWheelDown:
		m.wheelZoom(hit, cx, cy, r, zoomFactor)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.dragging = true
		m.dragPlot = hit
		m.dragX, m.dragY = msg.X, msg.Y
		m.dragAccumX, m.dragAccumY = 0, 0
	case msg.Action == tea.MouseActionMotion && m.dragging:
		m.dragAccumX += msg.X - m.dragX
		m.dragAccumY += msg.Y - m.dragY
		m.dragX, m.dragY = msg.X, msg.Y
	case msg.Action == tea.MouseActionRelease && m.dragging:
		m.dragging = false
		m.commitDrag(r)
	}
}

// wheelZoom pushes a zoom on the hovered plot anchored at the pointer.
func (m *Model) wheelZoom(plot, cx, cy int, r rect, factor float64) {
	if plot >= len(m.navs) {
		return
	}
	nav := m.navs[plot]
	fx := (float64(cx) + 0.5) / float64(r.w)
	fy := 1 - (float64(cy)+0.5)/float64(r.h)
	o, d := zoomedAt(nav.Origin(), nav.Dims(), factor, fx, fy)
	nav.Push(o, d)
	m.status = fmt.Sprintf("zoom  t=[%.4g..%.4g]", o.Domain, o.Domain+d.Domain)
}

// commitDrag converts the accumulated drag into one pushed state: the
// content follows the pointer, so the window moves the opposite way.
func (m *Model) commitDrag(r rect) {
	if m.dragPlot >= len(m.navs) || (m.dragAccumX == 0 && m.dragAccumY == 0) {
		return
	}
	nav := m.navs[m.dragPlot]
	o, d := nav.Origin(), nav.Dims()
	no := point(
		o.Domain-float64(m.dragAccumX)/float64(r.w)*d.Domain,
		o.Range+float64(m.dragAccumY)/float64(r.h)*d.Range,
	)
	nav.Push(no, d)
	m.status = fmt.Sprintf("pan  t=[%.4g..%.4g]", no.Domain, no.Domain+d.Domain)
}
