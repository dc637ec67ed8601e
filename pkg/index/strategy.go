package index

import (
	"fmt"
	"time"

	"github.com/gildware/ak-land-analysis-backend/entities"
	"github.com/gildware/ak-land-analysis-backend/pkg/daterange"
	"github.com/gildware/ak-land-analysis-backend/pkg/sentinel"
)

// Type is one of the supported remote-sensing indices.
type Type string

const (
	NDVI Type = "NDVI" // normalized difference vegetation index
	EVI  Type = "EVI"  // enhanced vegetation index
	SAVI Type = "SAVI" // soil-adjusted vegetation index
	NDWI Type = "NDWI" // normalized difference water index
)

// Format selects the raster output: a colorized preview or raw float values.
type Format string

const (
	FormatPNG  Format = "image/png"  // 4-channel UINT8 visual
	FormatTIFF Format = "image/tiff" // 1-channel FLOAT32 numeric
)

// RasterResolution is the fixed ground resolution (meters) for stored rasters.
const RasterResolution = 10

const datasetType = "sentinel-2-l2a"

// Strategy fixes everything that differs between index types: the bands
// consumed, the per-pixel formula and color classification (as evalscripts)
// and the aggregation output the statistics response is read from. The
// pipeline itself is shared; see pkg/analysis/engine.
type Strategy struct {
	typ           Type
	output        string // aggregation output id, e.g. "ndvi"
	statsScript   string
	visualScript  string
	numericScript string
}

var strategies = map[Type]*Strategy{
	NDVI: ndviStrategy,
	EVI:  eviStrategy,
	SAVI: saviStrategy,
	NDWI: ndwiStrategy,
}

// Parse validates a requested index type against the closed set.
func Parse(s string) (Type, error) {
	t := Type(s)
	if _, ok := strategies[t]; !ok {
		return "", fmt.Errorf("unsupported index type %q", s)
	}
	return t, nil
}

// ForType returns the strategy for a validated index type.
func ForType(t Type) (*Strategy, error) {
	s, ok := strategies[t]
	if !ok {
		return nil, fmt.Errorf("unsupported index type %q", t)
	}
	return s, nil
}

func (s *Strategy) Type() Type { return s.typ }

// StatsPayload builds one statistics request for an inclusive day range:
// daily aggregation interval, scoped to the polygon, over the index bands
// plus the validity mask.
func (s *Strategy) StatsPayload(geometry entities.GeoPolygon, from, to time.Time) map[string]any {
	timeRange := map[string]any{
		"from": daterange.ToUTCDay(from).Format(time.RFC3339),
		"to":   daterange.ToUTCDay(to).AddDate(0, 0, 1).Format(time.RFC3339),
	}
	return map[string]any{
		"input": map[string]any{
			"bounds": map[string]any{"geometry": geometry},
			"data": []map[string]any{
				{
					"type":       datasetType,
					"dataFilter": map[string]any{"timeRange": timeRange},
				},
			},
		},
		"aggregation": map[string]any{
			"timeRange":           timeRange,
			"aggregationInterval": map[string]any{"of": "P1D"},
			"evalscript":          s.statsScript,
		},
	}
}

// RasterPayload builds one process request scoped to exactly one calendar day.
func (s *Strategy) RasterPayload(geometry entities.GeoPolygon, day time.Time, format Format) map[string]any {
	d := daterange.ToUTCDay(day)
	script := s.visualScript
	if format == FormatTIFF {
		script = s.numericScript
	}
	return map[string]any{
		"input": map[string]any{
			"bounds": map[string]any{"geometry": geometry},
			"data": []map[string]any{
				{
					"type": datasetType,
					"dataFilter": map[string]any{
						"timeRange": map[string]any{
							"from": d.Format(time.RFC3339),
							"to":   d.AddDate(0, 0, 1).Format(time.RFC3339),
						},
					},
				},
			},
		},
		"output": map[string]any{
			"bounds": map[string]any{"geometry": geometry},
			"resolutions": map[string]any{
				"default": map[string]any{"resolution": RasterResolution},
			},
			"responses": []map[string]any{
				{
					"identifier": "default",
					"format":     map[string]any{"type": string(format)},
				},
			},
		},
		"evalscript": script,
	}
}

// VisualScript exposes the colorized evalscript for ad-hoc rendering
// (tile proxy); stored rasters go through RasterPayload.
func (s *Strategy) VisualScript() string { return s.visualScript }

// NormalizeStats maps an aggregation response onto exactly one entry per day
// in [from, to]. Days absent from the response yield nil stats rather than
// being omitted; this is what distinguishes a no-data day from a day never
// attempted once the entries are persisted.
func (s *Strategy) NormalizeStats(from, to time.Time, resp *sentinel.StatsResponse) []entities.DailyValue {
	byDay := map[time.Time]*entities.IndexStats{}
	if resp != nil {
		for _, row := range resp.Data {
			t, err := time.Parse(time.RFC3339, row.Interval.From)
			if err != nil {
				continue
			}
			byDay[daterange.ToUTCDay(t)] = row.Outputs[s.output].Bands["B0"].Stats
		}
	}

	days := daterange.EnumerateDays(from, to)
	out := make([]entities.DailyValue, 0, len(days))
	for _, d := range days {
		out = append(out, entities.DailyValue{Date: d, Stats: byDay[d]})
	}
	return out
}
