package service

import (
	"time"

	"github.com/gildware/ak-land-analysis-backend/entities"
)

type AnalysisService interface {
	// CreateJob validates synchronously, persists a pending job and dispatches
	// the background pipeline. Validation failures create nothing.
	CreateJob(landID, indexType string, dateFrom, dateTo time.Time) (*entities.Analysis, error)
	// ListForLand returns jobs newest first; completed jobs carry their daily
	// result series.
	ListForLand(landID string) ([]entities.Analysis, error)
	// Result returns one job and its daily series.
	Result(analysisID string) (*entities.Analysis, []entities.DailyValue, error)
}
