package engine

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gildware/ak-land-analysis-backend/entities"
	analysisrepo "github.com/gildware/ak-land-analysis-backend/pkg/analysis/repository"
	dailyrepo "github.com/gildware/ak-land-analysis-backend/pkg/dailyindex/repository"
	"github.com/gildware/ak-land-analysis-backend/pkg/daterange"
	"github.com/gildware/ak-land-analysis-backend/pkg/index"
	landrepo "github.com/gildware/ak-land-analysis-backend/pkg/land/repository"
	"github.com/gildware/ak-land-analysis-backend/pkg/raster"
	rasterrepo "github.com/gildware/ak-land-analysis-backend/pkg/raster/repository"
	"github.com/gildware/ak-land-analysis-backend/pkg/sentinel"
)

// Engine executes analysis jobs: reconcile the requested day range against
// both caches, fetch only the missing days from the provider and persist the
// results. One pipeline for every index type; the per-index differences live
// entirely in the strategy.
type Engine struct {
	analyses analysisrepo.AnalysisRepository
	lands    landrepo.LandRepository
	stats    dailyrepo.DailyIndexRepository
	rasters  rasterrepo.RasterRepository
	storage  *raster.Storage
	client   sentinel.Client
}

func New(
	analyses analysisrepo.AnalysisRepository,
	lands landrepo.LandRepository,
	stats dailyrepo.DailyIndexRepository,
	rasters rasterrepo.RasterRepository,
	storage *raster.Storage,
	client sentinel.Client,
) *Engine {
	return &Engine{
		analyses: analyses,
		lands:    lands,
		stats:    stats,
		rasters:  rasters,
		storage:  storage,
		client:   client,
	}
}

// Dispatch runs the job in the background and returns immediately; the caller
// observes only the pending state and must re-query for later ones. Jobs on
// overlapping ranges for the same (land, index) are not serialized: writes
// are idempotent per day, so the race costs duplicate provider calls at worst.
func (e *Engine) Dispatch(analysisID string) {
	go func() {
		_ = e.Run(context.Background(), analysisID)
	}()
}

// Run executes one job to a terminal state. Every error crossing this
// boundary marks the job failed with the captured detail; cache rows written
// before the failure stay valid, so a re-run fetches only what is still missing.
func (e *Engine) Run(ctx context.Context, analysisID string) error {
	if err := e.run(ctx, analysisID); err != nil {
		log.Printf("[engine] analysis %s failed: %v", analysisID, err)
		if uerr := e.analyses.UpdateStatus(analysisID, entities.AnalysisFailed, err.Error()); uerr != nil {
			log.Printf("[engine] analysis %s: mark failed: %v", analysisID, uerr)
		}
		return err
	}
	return nil
}

func (e *Engine) run(ctx context.Context, analysisID string) error {
	log.Printf("[engine] analysis %s starting", analysisID)

	if err := e.analyses.UpdateStatus(analysisID, entities.AnalysisRunning, ""); err != nil {
		return fmt.Errorf("mark running: %w", err)
	}

	a, err := e.analyses.FindByID(analysisID)
	if err != nil {
		return fmt.Errorf("load analysis: %w", err)
	}
	land, err := e.lands.FindByID(a.LandID)
	if err != nil {
		return fmt.Errorf("load land %s: %w", a.LandID, err)
	}

	typ, err := index.Parse(a.IndexType)
	if err != nil {
		return err
	}
	strat, err := index.ForType(typ)
	if err != nil {
		return err
	}

	token, err := e.client.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("acquire token: %w", err)
	}

	from := daterange.ToUTCDay(a.DateFrom)
	to := daterange.ToUTCDay(a.DateTo)

	if err := e.syncStats(ctx, token, strat, land, from, to); err != nil {
		return err
	}
	if err := e.syncRasters(ctx, token, strat, land, from, to); err != nil {
		return err
	}

	if err := e.analyses.UpdateStatus(analysisID, entities.AnalysisCompleted, ""); err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}
	log.Printf("[engine] analysis %s completed", analysisID)
	return nil
}

// syncStats fetches daily statistics for every contiguous sub-range of days
// not yet present in the stats cache.
func (e *Engine) syncStats(ctx context.Context, token string, strat *index.Strategy, land *entities.Land, from, to time.Time) error {
	typ := string(strat.Type())

	existing, err := e.stats.ByRange(land.ID, typ, from, to)
	if err != nil {
		return fmt.Errorf("load cached stats: %w", err)
	}
	days := make([]time.Time, len(existing))
	for i, row := range existing {
		days[i] = row.Date
	}
	cached := daterange.DaySet(days)

	for _, rng := range daterange.MissingRanges(from, to, cached) {
		log.Printf("[engine] %s %s: fetching stats %s..%s", land.ID, typ,
			rng.From.Format("2006-01-02"), rng.To.Format("2006-01-02"))

		resp, err := e.client.FetchStats(ctx, token, strat.StatsPayload(land.Geometry, rng.From, rng.To))
		if err != nil {
			return fmt.Errorf("fetch stats %s..%s: %w", rng.From.Format("2006-01-02"), rng.To.Format("2006-01-02"), err)
		}

		values := strat.NormalizeStats(rng.From, rng.To, resp)
		rows := make([]entities.DailyIndexStat, len(values))
		withData := 0
		for i, v := range values {
			rows[i] = entities.DailyIndexStat{
				LandID:    land.ID,
				IndexType: typ,
				Date:      v.Date,
				Stats:     v.Stats,
			}
			if v.Stats != nil {
				withData++
			}
		}
		if err := e.stats.BulkInsert(rows); err != nil {
			return fmt.Errorf("store stats: %w", err)
		}
		log.Printf("[engine] %s %s: stored %d stat days (%d with data)", land.ID, typ, len(rows), withData)
	}
	return nil
}

// syncRasters processes each uncached day independently, in day order. The
// cheap visual render is probed first; an empty response persists a no-data
// row and skips the expensive numeric fetch for that day.
func (e *Engine) syncRasters(ctx context.Context, token string, strat *index.Strategy, land *entities.Land, from, to time.Time) error {
	typ := string(strat.Type())

	existing, err := e.rasters.ByRange(land.ID, typ, from, to)
	if err != nil {
		return fmt.Errorf("load cached rasters: %w", err)
	}
	days := make([]time.Time, len(existing))
	for i, row := range existing {
		days[i] = row.Date
	}
	cached := daterange.DaySet(days)

	for _, day := range daterange.EnumerateDays(from, to) {
		if cached[day] {
			continue
		}
		dayStr := day.Format("2006-01-02")

		dir, pngPath, tiffPath := e.storage.Paths(land.ID, typ, day)
		pubPNG, pubTIFF := e.storage.PublicPaths(land.ID, typ, day)

		if e.storage.Exists(pngPath, tiffPath) {
			// Files from a run that died before writing the row; repair the
			// row instead of re-fetching.
			log.Printf("[engine] %s %s: raster files on disk for %s, repairing row", land.ID, typ, dayStr)
			if err := e.rasters.Create(&entities.DailyIndexRaster{
				LandID: land.ID, IndexType: typ, Date: day,
				PngPath: &pubPNG, TiffPath: &pubTIFF,
			}); err != nil {
				return fmt.Errorf("repair raster row %s: %w", dayStr, err)
			}
			continue
		}

		visual, err := e.client.FetchImage(ctx, token, strat.RasterPayload(land.Geometry, day, index.FormatPNG), string(index.FormatPNG))
		if err != nil {
			return fmt.Errorf("fetch visual raster %s: %w", dayStr, err)
		}

		if raster.IsEmpty(visual) {
			log.Printf("[engine] %s %s: no raster data for %s, storing null row", land.ID, typ, dayStr)
			if err := e.rasters.Create(&entities.DailyIndexRaster{
				LandID: land.ID, IndexType: typ, Date: day,
			}); err != nil {
				return fmt.Errorf("store null raster row %s: %w", dayStr, err)
			}
			continue
		}

		if err := e.storage.EnsureDir(dir); err != nil {
			return fmt.Errorf("create raster dir %s: %w", dir, err)
		}
		if err := os.WriteFile(pngPath, visual, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", pngPath, err)
		}

		numeric, err := e.client.FetchImage(ctx, token, strat.RasterPayload(land.Geometry, day, index.FormatTIFF), string(index.FormatTIFF))
		if err != nil {
			return fmt.Errorf("fetch numeric raster %s: %w", dayStr, err)
		}
		if err := os.WriteFile(tiffPath, numeric, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", tiffPath, err)
		}

		if err := e.rasters.Create(&entities.DailyIndexRaster{
			LandID: land.ID, IndexType: typ, Date: day,
			PngPath: &pubPNG, TiffPath: &pubTIFF,
		}); err != nil {
			return fmt.Errorf("store raster row %s: %w", dayStr, err)
		}
		log.Printf("[engine] %s %s: raster stored for %s", land.ID, typ, dayStr)
	}
	return nil
}
