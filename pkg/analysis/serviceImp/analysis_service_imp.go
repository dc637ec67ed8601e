package serviceImp

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gildware/ak-land-analysis-backend/entities"
	repo "github.com/gildware/ak-land-analysis-backend/pkg/analysis/repository"
	"github.com/gildware/ak-land-analysis-backend/pkg/analysis/service"
	dailyrepo "github.com/gildware/ak-land-analysis-backend/pkg/dailyindex/repository"
	"github.com/gildware/ak-land-analysis-backend/pkg/daterange"
	"github.com/gildware/ak-land-analysis-backend/pkg/index"
	landrepo "github.com/gildware/ak-land-analysis-backend/pkg/land/repository"
)

// Dispatcher starts the background pipeline for a created job.
type Dispatcher interface {
	Dispatch(analysisID string)
}

type analysisSvc struct {
	analyses   repo.AnalysisRepository
	lands      landrepo.LandRepository
	daily      dailyrepo.DailyIndexRepository
	dispatcher Dispatcher
}

func NewAnalysisService(
	analyses repo.AnalysisRepository,
	lands landrepo.LandRepository,
	daily dailyrepo.DailyIndexRepository,
	dispatcher Dispatcher,
) service.AnalysisService {
	return &analysisSvc{analyses: analyses, lands: lands, daily: daily, dispatcher: dispatcher}
}

func (s *analysisSvc) CreateJob(landID, indexType string, dateFrom, dateTo time.Time) (*entities.Analysis, error) {
	typ, err := index.Parse(indexType)
	if err != nil {
		return nil, err
	}

	from := daterange.ToUTCDay(dateFrom)
	to := daterange.ToUTCDay(dateTo)
	if from.After(to) {
		return nil, fmt.Errorf("dateFrom %s is after dateTo %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	}

	if _, err := s.lands.FindByID(landID); err != nil {
		return nil, fmt.Errorf("land %s: %w", landID, err)
	}

	a := &entities.Analysis{
		ID:        uuid.NewString(),
		LandID:    landID,
		IndexType: string(typ),
		DateFrom:  from,
		DateTo:    to,
		Status:    entities.AnalysisPending,
	}
	if err := s.analyses.Create(a); err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(a.ID)
	return a, nil
}

func (s *analysisSvc) ListForLand(landID string) ([]entities.Analysis, error) {
	list, err := s.analyses.ByLandID(landID)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Status != entities.AnalysisCompleted {
			continue
		}
		values, err := s.dailySeries(&list[i])
		if err != nil {
			return nil, err
		}
		list[i].Result = values
	}
	return list, nil
}

func (s *analysisSvc) Result(analysisID string) (*entities.Analysis, []entities.DailyValue, error) {
	a, err := s.analyses.FindByID(analysisID)
	if err != nil {
		return nil, nil, err
	}
	values, err := s.dailySeries(a)
	if err != nil {
		return nil, nil, err
	}
	return a, values, nil
}

func (s *analysisSvc) dailySeries(a *entities.Analysis) ([]entities.DailyValue, error) {
	from := daterange.ToUTCDay(a.DateFrom)
	to := daterange.ToUTCDay(a.DateTo)

	rows, err := s.daily.ByRange(a.LandID, a.IndexType, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]entities.DailyValue, len(rows))
	for i, row := range rows {
		out[i] = entities.DailyValue{Date: row.Date, Stats: row.Stats}
	}
	return out, nil
}
