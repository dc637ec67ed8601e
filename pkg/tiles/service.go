package tiles

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gildware/ak-land-analysis-backend/pkg/daterange"
	"github.com/gildware/ak-land-analysis-backend/pkg/index"
	landrepo "github.com/gildware/ak-land-analysis-backend/pkg/land/repository"
	"github.com/gildware/ak-land-analysis-backend/pkg/sentinel"
)

const tileSize = 256

// Service renders map tiles on demand by proxying the provider's process
// endpoint, clipped to the land polygon. Tiles are not cached; the stored
// raster pipeline is pkg/analysis/engine.
type Service struct {
	lands  landrepo.LandRepository
	client sentinel.Client
}

func NewService(lands landrepo.LandRepository, client sentinel.Client) *Service {
	return &Service{lands: lands, client: client}
}

// TileBBox converts slippy tile coordinates to a WGS84 bounding box
// [west, south, east, north].
func TileBBox(z, x, y int) [4]float64 {
	n := math.Exp2(float64(z))
	lon := func(x float64) float64 { return x/n*360.0 - 180.0 }
	lat := func(y float64) float64 {
		return math.Atan(math.Sinh(math.Pi*(1-2*y/n))) * 180.0 / math.Pi
	}
	return [4]float64{lon(float64(x)), lat(float64(y + 1)), lon(float64(x + 1)), lat(float64(y))}
}

// Tile fetches one 256x256 PNG for the given index, land, tile and day.
func (s *Service) Tile(ctx context.Context, indexType, landID string, z, x, y int, day time.Time) ([]byte, error) {
	typ, err := index.Parse(indexType)
	if err != nil {
		return nil, err
	}
	strat, err := index.ForType(typ)
	if err != nil {
		return nil, err
	}

	land, err := s.lands.FindByID(landID)
	if err != nil {
		return nil, fmt.Errorf("land %s: %w", landID, err)
	}

	d := daterange.ToUTCDay(day)
	bbox := TileBBox(z, x, y)

	payload := map[string]any{
		"input": map[string]any{
			"bounds": map[string]any{
				"bbox":     bbox,
				"geometry": land.Geometry, // clip to the polygon
				"properties": map[string]any{
					"crs": "http://www.opengis.net/def/crs/EPSG/0/4326",
				},
			},
			"data": []map[string]any{
				{
					"type": "sentinel-2-l2a",
					"dataFilter": map[string]any{
						"timeRange": map[string]any{
							"from": d.Format(time.RFC3339),
							"to":   d.AddDate(0, 0, 1).Format(time.RFC3339),
						},
						"mosaickingOrder": "mostRecent",
					},
				},
			},
		},
		"output": map[string]any{
			"width":  tileSize,
			"height": tileSize,
			"responses": []map[string]any{
				{
					"identifier": "default",
					"format":     map[string]any{"type": "image/png"},
				},
			},
		},
		"evalscript": strat.VisualScript(),
	}

	token, err := s.client.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire token: %w", err)
	}
	return s.client.FetchImage(ctx, token, payload, "image/png")
}
