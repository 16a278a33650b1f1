package tui

import "plotstack/internal/panzoom"

// panStep is the fraction of the visible window moved per pan key press.
const panStep = 0.1

// zoomFactor is the per-step scale applied to the visible window.
const zoomFactor = 1.2

// panned shifts a window by fractions of its own extent along each axis.
func panned(o, d panzoom.Point, fracDomain, fracRange float64) (panzoom.Point, panzoom.Point) {
	return panzoom.Point{
		Domain: o.Domain + fracDomain*d.Domain,
		Range:  o.Range + fracRange*d.Range,
	}, d
}

// zoomedAt scales a window by factor while keeping the plot coordinate at
// the given window fractions (0..1 from the origin) fixed on screen.
// factor < 1 zooms in.
func zoomedAt(o, d panzoom.Point, factor, fracDomain, fracRange float64) (panzoom.Point, panzoom.Point) {
	nd := panzoom.Point{Domain: d.Domain * factor, Range: d.Range * factor}
	no := panzoom.Point{
		Domain: o.Domain + fracDomain*(d.Domain-nd.Domain),
		Range:  o.Range + fracRange*(d.Range-nd.Range),
	}
	return no, nd
}

// zoomed scales a window by factor about its center.
func zoomed(o, d panzoom.Point, factor float64) (panzoom.Point, panzoom.Point) {
	return zoomedAt(o, d, factor, 0.5, 0.5)
}
