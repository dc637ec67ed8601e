package service

import "github.com/gildware/ak-land-analysis-backend/entities"

type LandService interface {
	CreateLand(name string, geometry entities.GeoPolygon) (*entities.Land, error)
	ListLands() ([]entities.Land, error)
	GetLandByID(id string) (*entities.Land, error)
}
