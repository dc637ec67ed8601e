package repository

import (
	"time"

	"github.com/gildware/ak-land-analysis-backend/entities"
)

type RasterRepository interface {
	// ByRange returns attempted raster rows for the inclusive day range, date ascending.
	ByRange(landID, indexType string, from, to time.Time) ([]entities.DailyIndexRaster, error)
	// Create persists one raster row; nil paths mark a no-data day.
	Create(row *entities.DailyIndexRaster) error
}
