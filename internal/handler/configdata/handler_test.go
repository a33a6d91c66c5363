package configdata

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odontosys/clinic-api/internal/middleware"
	"github.com/odontosys/clinic-api/internal/router"
)

func newTestRouter(t *testing.T) *router.Router {
	t.Helper()
	registry := prometheus.NewRegistry()
	r := router.New(router.Config{
		Timeout: 5 * time.Second,
		CORS:    middleware.DefaultCORSConfig(),
	}, registry, nil)
	r.RegisterConfig(NewHandler())
	return r
}

func get(t *testing.T, r *router.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, req)
	return w
}

func TestCountries(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/config/countries")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Cache-Control"), "public")
	assert.Contains(t, w.Header().Get("Cache-Control"), "max-age=3600")

	var body struct {
		Paises []struct {
			Codigo string `json:"codigo"`
			Nombre string `json:"nombre"`
		} `json:"paises"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, len(body.Paises), body.Total)
	assert.NotZero(t, body.Total)
}

func TestCitiesRequiresPais(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/config/cities")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Se requiere el parámetro: pais")
}

func TestCitiesUnknownCountryIsEmpty(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/config/cities?pais=Atlantis")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Pais     string   `json:"pais"`
		Ciudades []string `json:"ciudades"`
		Total    int      `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Atlantis", body.Pais)
	assert.Empty(t, body.Ciudades)
	assert.Zero(t, body.Total)
}

func TestSucursalesOverridesCacheWindow(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/config/sucursales")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=1800", w.Header().Get("Cache-Control"))

	var body struct {
		Sucursales []struct {
			ID     string `json:"id"`
			Nombre string `json:"nombre"`
		} `json:"sucursales"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 8, body.Total)
}
