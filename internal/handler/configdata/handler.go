// Package configdata serves the static reference tables. The router
// applies public cache headers to the whole /config group; sucursales
// shortens the window because branches change more often.
package configdata

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/odontosys/clinic-api/internal/refdata"
	apperrors "github.com/odontosys/clinic-api/pkg/errors"
	"github.com/odontosys/clinic-api/pkg/httputil"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes expects the /config group.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/countries", h.Countries)
	r.GET("/cities", h.Cities)
	r.GET("/sucursales", h.Sucursales)
}

func (h *Handler) Countries(c *gin.Context) {
	paises := refdata.Paises()
	httputil.RespondWithJSON(c, http.StatusOK, gin.H{
		"paises": paises,
		"total":  len(paises),
	})
}

func (h *Handler) Cities(c *gin.Context) {
	pais := c.Query("pais")
	if pais == "" {
		httputil.RespondWithError(c, apperrors.BadRequest("Se requiere el parámetro: pais"))
		return
	}

	ciudades := refdata.Ciudades(pais)
	if ciudades == nil {
		ciudades = []string{}
	}
	httputil.RespondWithJSON(c, http.StatusOK, gin.H{
		"pais":     pais,
		"ciudades": ciudades,
		"total":    len(ciudades),
	})
}

func (h *Handler) Sucursales(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=1800")
	sucursales := refdata.Sucursales()
	httputil.RespondWithJSON(c, http.StatusOK, gin.H{
		"sucursales": sucursales,
		"total":      len(sucursales),
	})
}
