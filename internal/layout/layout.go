// Package layout describes the fixed-position display configuration: which
// series go on which stacked plot, and where instrument readouts sit.
package layout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"plotstack/internal/telemetry"
)

// Plot is one row in the plot stack.
type Plot struct {
	Title  string   `yaml:"title"`
	Series []string `yaml:"series"`
}

// Readout is one fixed-position instrument cell showing the latest value
// of a series.
type Readout struct {
	Label  string `yaml:"label"`
	Series string `yaml:"series"`
	Format string `yaml:"format"`
	Row    int    `yaml:"row"`
	Col    int    `yaml:"col"`
}

// Config is a complete display definition.
type Config struct {
	Plots    []Plot    `yaml:"plots"`
	Readouts []Readout `yaml:"readouts"`
}

// Load parses and validates a YAML layout file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("layout %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("layout %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c Config) validate() error {
	if len(c.Plots) == 0 {
		return fmt.Errorf("no plots defined")
	}
	for i, p := range c.Plots {
		if len(p.Series) == 0 {
			return fmt.Errorf("plot %d (%q): no series", i, p.Title)
		}
	}
	seen := map[[2]int]string{}
	for _, r := range c.Readouts {
		if r.Series == "" {
			return fmt.Errorf("readout %q: no series", r.Label)
		}
		key := [2]int{r.Row, r.Col}
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("readouts %q and %q share cell (%d,%d)", prev, r.Label, r.Row, r.Col)
		}
		seen[key] = r.Label
	}
	return nil
}

func (c *Config) applyDefaults() {
	for i := range c.Readouts {
		if c.Readouts[i].Format == "" {
			c.Readouts[i].Format = "%.3g"
		}
		if c.Readouts[i].Label == "" {
			c.Readouts[i].Label = c.Readouts[i].Series
		}
	}
	for i := range c.Plots {
		if c.Plots[i].Title == "" && len(c.Plots[i].Series) > 0 {
			c.Plots[i].Title = c.Plots[i].Series[0]
		}
	}
}

// Default builds a one-plot-per-series layout for a frame loaded without
// a layout file, with a readout per series laid out in a single row.
func Default(frame telemetry.Frame) Config {
	var cfg Config
	for i, s := range frame.Series {
		cfg.Plots = append(cfg.Plots, Plot{Title: s.Name, Series: []string{s.Name}})
		cfg.Readouts = append(cfg.Readouts, Readout{
			Label:  s.Name,
			Series: s.Name,
			Format: "%.3g",
			Col:    i,
		})
	}
	return cfg
}
