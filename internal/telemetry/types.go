package telemetry

// Sample is one measurement: T is the time coordinate, V the value.
type Sample struct {
	T float64
	V float64
}

// Series is one named channel of time-ordered samples.
type Series struct {
	Name    string
	Samples []Sample
}

// Bounds is the enclosing window of one or more series.
type Bounds struct {
	MinT float64
	MaxT float64
	MinV float64
	MaxV float64
}

// Extend grows b to include the sample, seeding it from the sample when
// empty (first == true on the first call).
func (b *Bounds) Extend(s Sample, first bool) {
	if first {
		*b = Bounds{MinT: s.T, MaxT: s.T, MinV: s.V, MaxV: s.V}
		return
	}
	if s.T < b.MinT {
		b.MinT = s.T
	}
	if s.T > b.MaxT {
		b.MaxT = s.T
	}
	if s.V < b.MinV {
		b.MinV = s.V
	}
	if s.V > b.MaxV {
		b.MaxV = s.V
	}
}

// Valid reports whether the window has positive extent on the time axis.
func (b Bounds) Valid() bool { return b.MaxT > b.MinT }

// Frame is one loaded dataset: the series in file order plus their
// combined bounds.
type Frame struct {
	Series []Series
	Bounds Bounds
}

// Lookup returns the series with the given name.
func (f Frame) Lookup(name string) (Series, bool) {
	for _, s := range f.Series {
		if s.Name == name {
			return s, true
		}
	}
	return Series{}, false
}

// Latest returns the last sample of the named series, for instrument
// readouts.
func (f Frame) Latest(name string) (Sample, bool) {
	s, ok := f.Lookup(name)
	if !ok || len(s.Samples) == 0 {
		return Sample{}, false
	}
	return s.Samples[len(s.Samples)-1], true
}

// SeriesBounds computes the window of a single series.
func SeriesBounds(s Series) Bounds {
	var b Bounds
	for i, smp := range s.Samples {
		b.Extend(smp, i == 0)
	}
	return b
}
