package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/gildware/ak-land-analysis-backend/entities"
	"github.com/gildware/ak-land-analysis-backend/pkg/land/repository"
)

type landRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LandRepository { return &landRepo{db} }

func (r *landRepo) Create(l *entities.Land) error { return r.db.Create(l).Error }

func (r *landRepo) All() ([]entities.Land, error) {
	var out []entities.Land
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *landRepo) FindByID(id string) (*entities.Land, error) {
	var l entities.Land
	if err := r.db.Where("id = ?", id).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}
