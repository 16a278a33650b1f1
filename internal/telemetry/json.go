package telemetry

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LoadJSON reads a telemetry dump of the form
//
//	{"series": [{"name": "bus_v", "samples": [[t, v], ...]}, ...]}
func LoadJSON(path string) (Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return Frame{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return Frame{}, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Frame{}, err
	}
	arr, ok := raw["series"].([]any)
	if !ok {
		return Frame{}, errors.New("json: missing series array")
	}
	var fr Frame
	n := 0
	for _, el := range arr {
		obj, ok := el.(map[string]any)
		if !ok {
			continue
		}
		name, _ := obj["name"].(string)
		samples, _ := obj["samples"].([]any)
		s := Series{Name: name}
		for _, sv := range samples {
			pair, ok := sv.([]any)
			if !ok || len(pair) < 2 {
				continue
			}
			tv, tok := pair[0].(float64)
			vv, vok := pair[1].(float64)
			if !tok || !vok {
				continue
			}
			smp := Sample{T: tv, V: vv}
			s.Samples = append(s.Samples, smp)
			fr.Bounds.Extend(smp, n == 0)
			n++
		}
		if len(s.Samples) > 0 {
			fr.Series = append(fr.Series, s)
		}
	}
	if len(fr.Series) == 0 {
		return Frame{}, errors.New("json: no series with samples")
	}
	return fr, nil
}

// Load dispatches on file extension: .csv or .json.
func Load(path string) (Frame, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return LoadCSV(path)
	case ".json":
		return LoadJSON(path)
	}
	return Frame{}, errors.New("unsupported file: " + ext)
}
