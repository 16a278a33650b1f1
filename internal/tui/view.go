package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	vr := m.rects()

	// Header
	header := titleStyle.Render(" plotstack ─ stacked telemetry plots ")
	header = lipgloss.NewStyle().Width(vr.contentW).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, vr.contentH-2)
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	// Plot stack
	var plotCol string
	switch {
	case len(m.cfg.Plots) == 0:
		empty := dimStyle.Render("no telemetry loaded ─ press Tab and pick a file")
		plotCol = lipgloss.Place(gutterW+vr.plotW, vr.contentH, lipgloss.Center, lipgloss.Center, empty)
	case m.showReadouts:
		// readout table replaces the plot column while open
		box := boxStyle.Render(m.tbl.View())
		plotCol = lipgloss.Place(gutterW+vr.plotW, vr.contentH, lipgloss.Center, lipgloss.Center, box)
	default:
		plotCol = m.renderPlots(vr)
	}

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", plotCol)
	} else {
		body = plotCol
	}

	// Footer: status, crosshair coordinates, help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  plot %d: t=%.5g v=%.5g  ", m.hoverPlot, m.hoverT, m.hoverV))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, vr.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(vr.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(vr.contentW).Height(m.height).Render(ui)
}

// renderPlots stacks every plot block and the shared time axis.
func (m Model) renderPlots(vr viewRects) string {
	blocks := make([]string, 0, len(vr.plots)+1)
	for i, r := range vr.plots {
		blocks = append(blocks, m.renderPlotBlock(i, r.w, r.h))
	}
	blocks = append(blocks, m.renderTimeAxis(vr.plotW))
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"←→↑↓ pan",
		"+/- zoom",
		"u undo",
		"r reset",
		"f fit",
		"y fit value",
		"b rebase",
		"j/k focus",
		"Tab files",
		"t readouts",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
