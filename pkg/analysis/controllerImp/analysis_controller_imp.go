package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gildware/ak-land-analysis-backend/pkg/analysis/service"
	"github.com/gildware/ak-land-analysis-backend/pkg/export"
)

type AnalysisCtrl struct{ svc service.AnalysisService }

func New(svc service.AnalysisService) *AnalysisCtrl { return &AnalysisCtrl{svc} }

type createReq struct {
	LandID    string `json:"land_id"`
	IndexType string `json:"index_type"`
	DateFrom  string `json:"date_from"`
	DateTo    string `json:"date_to"`
}

func (h *AnalysisCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.LandID == "" || req.IndexType == "" || req.DateFrom == "" || req.DateTo == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "land_id, index_type, date_from and date_to are required"})
	}

	from, err := time.Parse("2006-01-02", req.DateFrom)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "date_from must be YYYY-MM-DD"})
	}
	to, err := time.Parse("2006-01-02", req.DateTo)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "date_to must be YYYY-MM-DD"})
	}

	a, err := h.svc.CreateJob(req.LandID, req.IndexType, from, to)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *AnalysisCtrl) ListForLand(c echo.Context) error {
	out, err := h.svc.ListForLand(c.Param("landId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalysisCtrl) Export(c echo.Context) error {
	a, values, err := h.svc.Result(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "analysis not found"})
	}

	wb, err := export.Workbook(a, values)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	defer wb.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+export.Filename(a)+`"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return wb.Write(c.Response())
}
