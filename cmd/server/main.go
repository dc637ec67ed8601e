package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/gildware/ak-land-analysis-backend/config"
	"github.com/gildware/ak-land-analysis-backend/database"
	"github.com/gildware/ak-land-analysis-backend/router"

	// Land
	landCtrlImp "github.com/gildware/ak-land-analysis-backend/pkg/land/controllerImp"
	landRepoImp "github.com/gildware/ak-land-analysis-backend/pkg/land/repositoryImp"
	landSvcImp "github.com/gildware/ak-land-analysis-backend/pkg/land/serviceImp"

	// Analysis
	analysisCtrlImp "github.com/gildware/ak-land-analysis-backend/pkg/analysis/controllerImp"
	"github.com/gildware/ak-land-analysis-backend/pkg/analysis/engine"
	analysisRepoImp "github.com/gildware/ak-land-analysis-backend/pkg/analysis/repositoryImp"
	analysisSvcImp "github.com/gildware/ak-land-analysis-backend/pkg/analysis/serviceImp"

	// Caches
	dailyRepoImp "github.com/gildware/ak-land-analysis-backend/pkg/dailyindex/repositoryImp"
	"github.com/gildware/ak-land-analysis-backend/pkg/raster"
	rasterRepoImp "github.com/gildware/ak-land-analysis-backend/pkg/raster/repositoryImp"

	// Provider
	"github.com/gildware/ak-land-analysis-backend/pkg/sentinel"

	// Tiles
	"github.com/gildware/ak-land-analysis-backend/pkg/tiles"
	tilesCtrlImp "github.com/gildware/ak-land-analysis-backend/pkg/tiles/controllerImp"

	// Health
	healthCtrlImp "github.com/gildware/ak-land-analysis-backend/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// Stored rasters served under their public prefix
	e.Static("/"+cfg.RasterPublicPath, cfg.RasterDir)

	// 4) Provider client + raster storage
	client := sentinel.New(
		cfg.SentinelTokenURL,
		cfg.SentinelStatsURL,
		cfg.SentinelProcessURL,
		cfg.SentinelClientID,
		cfg.SentinelClientSecret,
	)
	storage := raster.NewStorage(cfg.RasterDir, cfg.RasterPublicPath)

	// 5) Repos
	landRepo := landRepoImp.New(db)
	analysisRepo := analysisRepoImp.New(db)
	dailyRepo := dailyRepoImp.New(db)
	rasterRepo := rasterRepoImp.New(db)

	// 6) Engine + services
	eng := engine.New(analysisRepo, landRepo, dailyRepo, rasterRepo, storage, client)
	landSvc := landSvcImp.NewLandService(landRepo)
	analysisSvc := analysisSvcImp.NewAnalysisService(analysisRepo, landRepo, dailyRepo, eng)
	tilesSvc := tiles.NewService(landRepo, client)

	// 7) Controllers
	lCtrl := landCtrlImp.New(landSvc)
	aCtrl := analysisCtrlImp.New(analysisSvc)
	tCtrl := tilesCtrlImp.New(tilesSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 8) Router
	r := router.New(e, lCtrl, aCtrl, tCtrl, hCtrl)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
