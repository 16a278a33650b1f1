package telemetry

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a CSV with one time column and any number of value
// columns, returning one series per value column.
// Time column detection: t|time|timestamp|ts (case-insensitive); falls
// back to column 0 when no header matches.
func LoadCSV(path string) (Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return Frame{}, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return Frame{}, err
	}
	if len(recs) < 2 {
		return Frame{}, errors.New("csv: no data rows")
	}
	header := recs[0]
	idxT := -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "t", "time", "timestamp", "ts":
			if idxT == -1 {
				idxT = i
			}
		}
	}
	if idxT == -1 {
		idxT = 0
	}

	var fr Frame
	for i, h := range header {
		if i == idxT {
			continue
		}
		fr.Series = append(fr.Series, Series{Name: strings.TrimSpace(h)})
	}
	if len(fr.Series) == 0 {
		return Frame{}, errors.New("csv: no value columns")
	}

	n := 0
	for _, row := range recs[1:] {
		if idxT >= len(row) {
			continue
		}
		tv, errT := strconv.ParseFloat(strings.TrimSpace(row[idxT]), 64)
		if errT != nil {
			continue
		}
		si := 0
		for i := range header {
			if i == idxT {
				continue
			}
			if i < len(row) {
				v, errV := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
				if errV == nil {
					smp := Sample{T: tv, V: v}
					fr.Series[si].Samples = append(fr.Series[si].Samples, smp)
					fr.Bounds.Extend(smp, n == 0)
					n++
				}
			}
			si++
		}
	}
	if n == 0 {
		return Frame{}, errors.New("csv: no valid samples parsed")
	}
	return fr, nil
}
