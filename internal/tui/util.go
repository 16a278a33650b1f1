package tui

import "plotstack/internal/panzoom"

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func point(domain, rng float64) panzoom.Point {
	return panzoom.Point{Domain: domain, Range: rng}
}
