package repositoryImp

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gildware/ak-land-analysis-backend/entities"
	"github.com/gildware/ak-land-analysis-backend/pkg/raster/repository"
)

type rasterRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RasterRepository { return &rasterRepo{db} }

func (r *rasterRepo) ByRange(landID, indexType string, from, to time.Time) ([]entities.DailyIndexRaster, error) {
	var out []entities.DailyIndexRaster
	err := r.db.
		Where("land_id = ? AND index_type = ? AND date >= ? AND date <= ?", landID, indexType, from, to).
		Order("date ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *rasterRepo) Create(row *entities.DailyIndexRaster) error {
	// Overlapping jobs may race on the same day; the first writer wins.
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error
}
