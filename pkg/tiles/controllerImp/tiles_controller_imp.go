package controllerImp

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gildware/ak-land-analysis-backend/pkg/tiles"
)

type TilesCtrl struct{ svc *tiles.Service }

func New(svc *tiles.Service) *TilesCtrl { return &TilesCtrl{svc} }

func (h *TilesCtrl) Tile(c echo.Context) error {
	z, err1 := strconv.Atoi(c.Param("z"))
	x, err2 := strconv.Atoi(c.Param("x"))
	y, err3 := strconv.Atoi(strings.TrimSuffix(c.Param("y"), ".png"))
	if err1 != nil || err2 != nil || err3 != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad tile coordinates"})
	}

	day, err := time.Parse("2006-01-02", c.QueryParam("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "date query param must be YYYY-MM-DD"})
	}

	img, err := h.svc.Tile(c.Request().Context(), c.Param("index"), c.Param("landId"), z, x, y, day)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.Blob(http.StatusOK, "image/png", img)
}
