// Package appointment exposes the scheduling endpoints: booking,
// listing, the status workflow, availability and cancellation reasons.
package appointment

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/odontosys/clinic-api/internal/model"
	"github.com/odontosys/clinic-api/internal/refdata"
	"github.com/odontosys/clinic-api/internal/service/scheduling"
	apperrors "github.com/odontosys/clinic-api/pkg/errors"
	"github.com/odontosys/clinic-api/pkg/httputil"
)

type Handler struct {
	service *scheduling.Service
}

func NewHandler(service *scheduling.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/availability", h.Availability)
	r.GET("/appointments", h.List)
	r.POST("/appointments", h.Create)
	r.GET("/appointments/motivos-cancelacion", h.MotivosCancelacion)
	// PATCH and PUT are the same operation; PUT survives for older clients.
	r.PATCH("/appointments/:id", h.UpdateEstado)
	r.PUT("/appointments/:id/estado", h.UpdateEstado)
}

func (h *Handler) Availability(c *gin.Context) {
	disponibilidad, err := h.service.Availability(
		c.Request.Context(),
		c.Query("doctorId"),
		c.Query("fecha"),
	)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithJSON(c, http.StatusOK, disponibilidad)
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateCitaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("Cuerpo de la petición inválido"))
		return
	}

	cita, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondCreated(c, cita)
}

func (h *Handler) List(c *gin.Context) {
	filters := &model.CitaFilters{
		Fecha:       c.Query("fecha"),
		DoctorID:    c.Query("doctorId"),
		SucursalID:  c.Query("sucursalId"),
		Estado:      model.Estado(c.Query("estado")),
		FechaInicio: c.Query("fechaInicio"),
		FechaFin:    c.Query("fechaFin"),
	}

	citas, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithJSON(c, http.StatusOK, gin.H{
		"appointments": citas,
		"total":        len(citas),
	})
}

func (h *Handler) UpdateEstado(c *gin.Context) {
	var req model.UpdateEstadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("Cuerpo de la petición inválido"))
		return
	}

	cita, cambio, err := h.service.UpdateStatus(
		c.Request.Context(),
		c.Param("id"),
		req.Estado,
		req.MotivoCancelacion,
	)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithJSON(c, http.StatusOK, gin.H{
		"message":     fmt.Sprintf("Estado de cita actualizado exitosamente a %q", cita.Estado),
		"appointment": cita,
		"cambio":      cambio,
	})
}

func (h *Handler) MotivosCancelacion(c *gin.Context) {
	motivos := refdata.MotivosCancelacion()
	httputil.RespondWithJSON(c, http.StatusOK, gin.H{
		"motivosCancelacion": motivos,
		"total":              len(motivos),
		"message":            "Lista de motivos válidos para cancelación de citas",
	})
}
