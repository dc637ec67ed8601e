package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	landCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
	},
	analysisCtrl interface {
		Create(echo.Context) error
		ListForLand(echo.Context) error
		Export(echo.Context) error
	},
	tilesCtrl interface{ Tile(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.POST("/lands", landCtrl.Create)
	e.GET("/lands", landCtrl.List)
	e.GET("/lands/:id", landCtrl.Get)

	e.POST("/analysis", analysisCtrl.Create)
	e.GET("/analysis/export/:id", analysisCtrl.Export)
	e.GET("/analysis/:landId", analysisCtrl.ListForLand)

	e.GET("/api/tiles/:index/:landId/:z/:x/:y", tilesCtrl.Tile)

	return e
}
