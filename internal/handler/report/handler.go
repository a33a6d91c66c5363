package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/odontosys/clinic-api/internal/model"
	"github.com/odontosys/clinic-api/internal/service/report"
	"github.com/odontosys/clinic-api/pkg/httputil"
)

type Handler struct {
	service *report.Service
}

func NewHandler(service *report.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/reports", h.Generate)
}

func (h *Handler) Generate(c *gin.Context) {
	filters := &model.ReporteFilters{
		SucursalID:      c.Query("sucursalId"),
		ServicioID:      c.Query("servicioId"),
		PublicoObjetivo: c.Query("publicoObjetivo"),
		FechaInicio:     c.Query("fechaInicio"),
		FechaFin:        c.Query("fechaFin"),
	}

	reporte, err := h.service.Generate(c.Request.Context(), filters)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithJSON(c, http.StatusOK, reporte)
}
