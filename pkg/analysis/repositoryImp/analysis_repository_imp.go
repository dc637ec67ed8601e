package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/gildware/ak-land-analysis-backend/entities"
	"github.com/gildware/ak-land-analysis-backend/pkg/analysis/repository"
)

type analysisRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AnalysisRepository { return &analysisRepo{db} }

func (r *analysisRepo) Create(a *entities.Analysis) error { return r.db.Create(a).Error }

func (r *analysisRepo) ByLandID(landID string) ([]entities.Analysis, error) {
	var out []entities.Analysis
	if err := r.db.Where("land_id = ?", landID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *analysisRepo) FindByID(id string) (*entities.Analysis, error) {
	var a entities.Analysis
	if err := r.db.Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *analysisRepo) UpdateStatus(id, status, errText string) error {
	upd := map[string]any{"status": status}
	if status == entities.AnalysisFailed {
		upd["error"] = errText
	}
	return r.db.Model(&entities.Analysis{}).Where("id = ?", id).Updates(upd).Error
}
