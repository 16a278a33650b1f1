package tui

import (
	"fmt"
	"math"
)

// niceStep returns a 1/2/5-scaled tick step so a span of the given size
// yields at most maxTicks ticks.
func niceStep(span float64, maxTicks int) float64 {
	if span <= 0 || maxTicks < 1 {
		return 1
	}
	raw := span / float64(maxTicks)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch {
	case raw/mag <= 1:
		return mag
	case raw/mag <= 2:
		return 2 * mag
	case raw/mag <= 5:
		return 5 * mag
	}
	return 10 * mag
}

// ticks returns tick positions covering [lo, lo+span] at the nice step.
func ticks(lo, span float64, maxTicks int) []float64 {
	if span <= 0 {
		return nil
	}
	step := niceStep(span, maxTicks)
	first := math.Ceil(lo/step) * step
	var out []float64
	for v := first; v <= lo+span+step*1e-9; v += step {
		out = append(out, v)
	}
	return out
}

// formatTick prints a tick value with just enough precision for its step.
func formatTick(v, step float64) string {
	if step >= 1 {
		return fmt.Sprintf("%.0f", v)
	}
	dec := int(math.Ceil(-math.Log10(step)))
	if dec > 6 {
		dec = 6
	}
	return fmt.Sprintf("%.*f", dec, v)
}
