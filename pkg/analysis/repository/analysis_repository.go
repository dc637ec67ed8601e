package repository

import "github.com/gildware/ak-land-analysis-backend/entities"

type AnalysisRepository interface {
	Create(a *entities.Analysis) error
	ByLandID(landID string) ([]entities.Analysis, error)
	FindByID(id string) (*entities.Analysis, error)
	// UpdateStatus moves a job along its lifecycle; errText is stored only
	// with the failed state.
	UpdateStatus(id, status, errText string) error
}
