package tui

import (
	"os"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"plotstack/internal/layout"
	"plotstack/internal/panzoom"
	"plotstack/internal/telemetry"
)

// Options configures the viewer at startup.
type Options struct {
	Path       string        // telemetry file to load and follow
	LayoutPath string        // optional YAML layout; a default layout is built otherwise
	Refresh    time.Duration // reload interval for the followed file; 0 disables
	Log        *zap.Logger
}

type Model struct {
	width  int
	height int

	showSidebar  bool
	helpVisible  bool
	showReadouts bool

	status string

	// file explorer
	cwd     string
	l       list.Model
	selPath string

	// data + display definition
	frame      telemetry.Frame
	cfg        layout.Config
	layoutPath string
	refresh    time.Duration
	ticking    bool

	// pan/zoom: one synchronized navigator per stacked plot
	group *panzoom.Group
	navs  []panzoom.Navigator
	focus int

	// instrument readouts
	tbl table.Model

	// hover state (crosshair coordinates for the footer)
	hovering  bool
	hoverPlot int
	hoverT    float64
	hoverV    float64

	// drag-pan: accumulate cell deltas, commit one navigation state on release
	dragging   bool
	dragPlot   int
	dragX      int
	dragY      int
	dragAccumX int
	dragAccumY int

	log *zap.Logger
}

func New(opts Options) Model {
	m := Model{
		helpVisible: true,
		status:      "plotstack ready",
		refresh:     opts.Refresh,
		layoutPath:  opts.LayoutPath,
		log:         opts.Log,
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	m.cwd, _ = os.Getwd()
	// sidebar list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Telemetry files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// readout table setup (columns built per layout)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(8)
	m.refreshDir()
	m.rebuildStacks(layout.Config{})
	if opts.Path != "" {
		m.loadPath(opts.Path)
		m.ticking = m.refresh > 0 && m.selPath != ""
	}
	return m
}

// rebuildStacks replaces the pan/zoom group to match the display config:
// one stack per plot, each based on the shared time window and its own
// series' value window.
func (m *Model) rebuildStacks(cfg layout.Config) {
	m.cfg = cfg
	bases := make([]panzoom.State, len(cfg.Plots))
	for i, p := range cfg.Plots {
		bases[i] = m.plotBase(p)
	}
	m.group = panzoom.NewGroupStates(bases)
	m.navs = make([]panzoom.Navigator, len(bases))
	for i := range bases {
		n, err := m.group.Navigator(i)
		if err != nil {
			// unreachable: indices come straight from the construction count
			m.log.Error("navigator", zap.Int("index", i), zap.Error(err))
			continue
		}
		m.navs[i] = n
	}
	if m.focus >= len(m.navs) {
		m.focus = 0
	}
}

// plotBase is the default window for one plot: the frame's full time span
// and the combined value span of the plot's own series.
func (m *Model) plotBase(p layout.Plot) panzoom.State {
	var b telemetry.Bounds
	first := true
	for _, name := range p.Series {
		s, ok := m.frame.Lookup(name)
		if !ok {
			continue
		}
		for _, smp := range s.Samples {
			b.Extend(smp, first)
			first = false
		}
	}
	if first { // plot has no samples
		return panzoom.State{}
	}
	return panzoom.State{
		Origin: panzoom.Point{Domain: m.frame.Bounds.MinT, Range: b.MinV},
		Dims: panzoom.Point{
			Domain: m.frame.Bounds.MaxT - m.frame.Bounds.MinT,
			Range:  b.MaxV - b.MinV,
		},
	}
}

func (m Model) Init() tea.Cmd {
	if m.refresh > 0 && m.selPath != "" {
		return tickCmd(m.refresh)
	}
	return nil
}

type refreshMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return refreshMsg(t) })
}
