package setup

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/odontosys/clinic-api/internal/service/setup"
	"github.com/odontosys/clinic-api/pkg/httputil"
)

type Handler struct {
	service *setup.Service
}

func NewHandler(service *setup.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/setup", h.Seed)
}

func (h *Handler) Seed(c *gin.Context) {
	result, err := h.service.Seed(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithJSON(c, http.StatusOK, result)
}
