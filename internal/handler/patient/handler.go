package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/odontosys/clinic-api/internal/model"
	"github.com/odontosys/clinic-api/internal/service/patient"
	apperrors "github.com/odontosys/clinic-api/pkg/errors"
	"github.com/odontosys/clinic-api/pkg/httputil"
)

type Handler struct {
	service *patient.Service
}

func NewHandler(service *patient.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/patients", h.Search)
	r.POST("/patients", h.Create)
	r.PUT("/patients/:id", h.Update)
	r.DELETE("/patients/:id", h.Delete)
}

func (h *Handler) Search(c *gin.Context) {
	pacientes, err := h.service.Search(c.Request.Context(), c.Query("search"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithJSON(c, http.StatusOK, gin.H{
		"patients": pacientes,
		"total":    len(pacientes),
	})
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreatePacienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("Cuerpo de la petición inválido"))
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondCreated(c, gin.H{
		"message": "Paciente registrado exitosamente",
		"patient": created,
	})
}

func (h *Handler) Update(c *gin.Context) {
	var req model.UpdatePacienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("Cuerpo de la petición inválido"))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithJSON(c, http.StatusOK, gin.H{
		"message": "Paciente actualizado exitosamente",
		"patient": updated,
	})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithJSON(c, http.StatusOK, gin.H{
		"message": "Paciente desactivado exitosamente",
	})
}
