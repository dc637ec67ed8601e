package serviceImp

import (
	"github.com/google/uuid"

	"github.com/gildware/ak-land-analysis-backend/entities"
	"github.com/gildware/ak-land-analysis-backend/pkg/geometry"
	repo "github.com/gildware/ak-land-analysis-backend/pkg/land/repository"
	"github.com/gildware/ak-land-analysis-backend/pkg/land/service"
)

type landSvc struct{ r repo.LandRepository }

func NewLandService(r repo.LandRepository) service.LandService { return &landSvc{r} }

func (s *landSvc) CreateLand(name string, geom entities.GeoPolygon) (*entities.Land, error) {
	if err := geometry.Validate(geom); err != nil {
		return nil, err
	}
	l := &entities.Land{ID: uuid.NewString(), Name: name, Geometry: geom}
	if err := s.r.Create(l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *landSvc) ListLands() ([]entities.Land, error) { return s.r.All() }

func (s *landSvc) GetLandByID(id string) (*entities.Land, error) { return s.r.FindByID(id) }
