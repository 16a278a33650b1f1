package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	"go.uber.org/zap"

	"plotstack/internal/layout"
	"plotstack/internal/telemetry"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".csv" || ext == ".json" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no telemetry files in current directory"
	}
}

// loadPath loads a telemetry file, resolves the display layout, and
// rebuilds the pan/zoom stacks around the new data.
func (m *Model) loadPath(p string) {
	fr, err := telemetry.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		m.log.Warn("load", zap.String("path", p), zap.Error(err))
		return
	}
	m.selPath = p
	m.frame = fr

	cfg := layout.Default(fr)
	if m.layoutPath != "" {
		lc, err := layout.Load(m.layoutPath)
		if err != nil {
			m.status = "layout error: " + err.Error()
			m.log.Warn("layout", zap.String("path", m.layoutPath), zap.Error(err))
		} else {
			cfg = lc
		}
	}
	m.rebuildStacks(cfg)
	m.refreshReadouts()
	m.status = fmt.Sprintf("loaded: %s  series=%d plots=%d",
		filepath.Base(p), len(fr.Series), len(cfg.Plots))
	m.log.Info("loaded",
		zap.String("path", p),
		zap.Int("series", len(fr.Series)),
		zap.Int("plots", len(cfg.Plots)))
}

// reload re-reads the followed file and rebases every stack to the new
// extents, leaving any pushed navigation in place.
func (m *Model) reload() {
	if m.selPath == "" {
		return
	}
	fr, err := telemetry.Load(m.selPath)
	if err != nil {
		m.status = "refresh error: " + err.Error()
		m.log.Warn("refresh", zap.String("path", m.selPath), zap.Error(err))
		return
	}
	m.frame = fr
	if len(m.navs) > 0 {
		b := fr.Bounds
		// rebase through any one view; it propagates group-wide
		m.navs[0].SetBase(
			point(b.MinT, b.MinV),
			point(b.MaxT-b.MinT, b.MaxV-b.MinV),
		)
	}
	m.refreshReadouts()
	m.status = fmt.Sprintf("refreshed: %s", filepath.Base(m.selPath))
}
