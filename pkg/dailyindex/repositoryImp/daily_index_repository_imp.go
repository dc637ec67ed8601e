package repositoryImp

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gildware/ak-land-analysis-backend/entities"
	"github.com/gildware/ak-land-analysis-backend/pkg/dailyindex/repository"
)

type dailyIndexRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.DailyIndexRepository { return &dailyIndexRepo{db} }

func (r *dailyIndexRepo) ByRange(landID, indexType string, from, to time.Time) ([]entities.DailyIndexStat, error) {
	var out []entities.DailyIndexStat
	err := r.db.
		Where("land_id = ? AND index_type = ? AND date >= ? AND date <= ?", landID, indexType, from, to).
		Order("date ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *dailyIndexRepo) BulkInsert(rows []entities.DailyIndexStat) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}
