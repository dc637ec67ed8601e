package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gildware/ak-land-analysis-backend/entities"
	"github.com/gildware/ak-land-analysis-backend/pkg/land/service"
)

type LandCtrl struct{ svc service.LandService }

func New(svc service.LandService) *LandCtrl { return &LandCtrl{svc} }

type createReq struct {
	Name     string              `json:"name"`
	Geometry entities.GeoPolygon `json:"geometry"`
}

func (h *LandCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	l, err := h.svc.CreateLand(req.Name, req.Geometry)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *LandCtrl) List(c echo.Context) error {
	out, err := h.svc.ListLands()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LandCtrl) Get(c echo.Context) error {
	l, err := h.svc.GetLandByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "land not found"})
	}
	return c.JSON(http.StatusOK, l)
}
