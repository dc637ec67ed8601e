package repository

import (
	"time"

	"github.com/gildware/ak-land-analysis-backend/entities"
)

type DailyIndexRepository interface {
	// ByRange returns attempted rows for the inclusive day range, date ascending.
	ByRange(landID, indexType string, from, to time.Time) ([]entities.DailyIndexStat, error)
	// BulkInsert persists rows with insert-if-absent semantics: days already
	// present are silently skipped, never an error.
	BulkInsert(rows []entities.DailyIndexStat) error
}
