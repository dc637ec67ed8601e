package repository

import "github.com/gildware/ak-land-analysis-backend/entities"

type LandRepository interface {
	Create(l *entities.Land) error
	All() ([]entities.Land, error)
	FindByID(id string) (*entities.Land, error)
}
