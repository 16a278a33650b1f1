package tui

import (
	"fmt"
	"sort"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshReadouts rebuilds the instrument table from the layout's readout
// cells and the latest samples. Cells are arranged row-major by their
// (row, col) grid positions.
func (m *Model) refreshReadouts() {
	if len(m.cfg.Readouts) == 0 {
		m.showReadouts = false
		return
	}
	ros := make([]int, len(m.cfg.Readouts))
	for i := range ros {
		ros[i] = i
	}
	sort.SliceStable(ros, func(a, b int) bool {
		ra, rb := m.cfg.Readouts[ros[a]], m.cfg.Readouts[ros[b]]
		if ra.Row != rb.Row {
			return ra.Row < rb.Row
		}
		return ra.Col < rb.Col
	})

	cols := []table.Column{
		{Title: "instrument", Width: 16},
		{Title: "value", Width: 12},
		{Title: "t", Width: 10},
	}
	rows := make([]table.Row, 0, len(ros))
	for _, i := range ros {
		r := m.cfg.Readouts[i]
		val, ts := "--", "--"
		if smp, ok := m.frame.Latest(r.Series); ok {
			val = fmt.Sprintf(r.Format, smp.V)
			ts = fmt.Sprintf("%.6g", smp.T)
		}
		rows = append(rows, table.Row{r.Label, val, ts})
	}
	// clear rows first so columns and rows never disagree mid-update
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
