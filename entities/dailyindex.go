package entities

import "time"

// IndexStats is the per-day summary the provider aggregates over the polygon.
type IndexStats struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Mean        float64 `json:"mean"`
	StDev       float64 `json:"stDev"`
	SampleCount int64   `json:"sampleCount"`
	NoDataCount int64   `json:"noDataCount"`
}

// DailyIndexStat caches one attempted day of index statistics.
// A row with nil Stats means the provider had no usable imagery that day;
// a missing row means the day was never attempted.
type DailyIndexStat struct {
	ID        uint        `gorm:"primaryKey" json:"-"`
	LandID    string      `gorm:"uniqueIndex:idx_daily_index_day,priority:1" json:"land_id"`
	IndexType string      `gorm:"uniqueIndex:idx_daily_index_day,priority:2" json:"index_type"`
	Date      time.Time   `gorm:"uniqueIndex:idx_daily_index_day,priority:3" json:"date"`
	Stats     *IndexStats `gorm:"serializer:json" json:"stats"`

	CreatedAt time.Time `json:"-"`
}

// DailyIndexRaster caches one attempted day of rendered rasters. Paths are
// public paths; both nil marks a no-data day. Same presence semantics as
// DailyIndexStat.
type DailyIndexRaster struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	LandID    string    `gorm:"uniqueIndex:idx_daily_raster_day,priority:1" json:"land_id"`
	IndexType string    `gorm:"uniqueIndex:idx_daily_raster_day,priority:2" json:"index_type"`
	Date      time.Time `gorm:"uniqueIndex:idx_daily_raster_day,priority:3" json:"date"`
	PngPath   *string   `json:"png_path"`
	TiffPath  *string   `json:"tiff_path"`

	CreatedAt time.Time `json:"-"`
}
