package appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odontosys/clinic-api/internal/lock"
	"github.com/odontosys/clinic-api/internal/middleware"
	"github.com/odontosys/clinic-api/internal/model"
	"github.com/odontosys/clinic-api/internal/notification"
	"github.com/odontosys/clinic-api/internal/repository/memory"
	"github.com/odontosys/clinic-api/internal/router"
	"github.com/odontosys/clinic-api/internal/service/scheduling"
	"github.com/odontosys/clinic-api/pkg/logger"
	"github.com/odontosys/clinic-api/pkg/metrics"
)

func newTestRouter(t *testing.T) (*router.Router, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	registry := prometheus.NewRegistry()
	svc := scheduling.NewService(
		store.Citas(),
		store.Doctors(),
		store.Pacientes(),
		scheduling.NewEnricher(store.Doctors(), store.Servicios()),
		lock.NewNoop(),
		notification.NewNoop(),
		scheduling.PermissiveTransitions,
		metrics.New("test", registry),
		logger.Nop(),
	)

	r := router.New(router.Config{
		Timeout: 5 * time.Second,
		CORS:    middleware.DefaultCORSConfig(),
	}, registry, metrics.NewHTTP("test", registry))
	r.Register(NewHandler(svc))
	return r, store
}

func doJSON(t *testing.T, r *router.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, req)
	return w
}

func seedDoctor(t *testing.T, store *memory.Store, id string, horario []string) {
	t.Helper()
	err := store.Doctors().Create(context.Background(), &model.Doctor{
		ID:           id,
		Nombre:       "Dr. Carlos Rodriguez",
		Especialidad: "Endodoncia",
		Horario:      horario,
		Activo:       true,
	})
	require.NoError(t, err)
}

func TestBookingFlow(t *testing.T) {
	r, store := newTestRouter(t)
	seedDoctor(t, store, "D1", []string{"09:00", "10:00", "11:00"})

	body := `{"pacienteNombre":"Juan Pérez","doctorId":"D1","servicioId":"s1","fecha":"2024-05-01","hora":"10:00"}`

	w := doJSON(t, r, http.MethodPost, "/appointments", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created model.Cita
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, model.EstadoConfirmada, created.Estado)
	assert.NotEmpty(t, created.ID)

	// The slot is now occupied.
	w = doJSON(t, r, http.MethodGet, "/availability?doctorId=D1&fecha=2024-05-01", "")
	require.Equal(t, http.StatusOK, w.Code)
	var disp model.Disponibilidad
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &disp))
	assert.Equal(t, []string{"09:00", "11:00"}, disp.HorariosDisponibles)

	// Rebooking the same triple conflicts.
	w = doJSON(t, r, http.MethodPost, "/appointments", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Cancelling needs a reason.
	w = doJSON(t, r, http.MethodPatch, "/appointments/"+created.ID, `{"estado":"cancelada"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/appointments/"+created.ID,
		`{"estado":"cancelada","motivoCancelacion":"Emergencia médica"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated struct {
		Message     string                `json:"message"`
		Appointment model.CitaEnriquecida `json:"appointment"`
		Cambio      model.CambioEstado    `json:"cambio"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, `Estado de cita actualizado exitosamente a "cancelada"`, updated.Message)
	assert.Equal(t, model.EstadoCancelada, updated.Appointment.Estado)
	assert.Equal(t, model.EstadoConfirmada, updated.Cambio.EstadoAnterior)
}

func TestAvailabilityMissingParams(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/availability?doctorId=D1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Se requieren los parámetros: doctorId y fecha", body["error"])
}

func TestPutEstadoEndpoint(t *testing.T) {
	r, store := newTestRouter(t)
	seedDoctor(t, store, "D1", []string{"10:00"})

	w := doJSON(t, r, http.MethodPost, "/appointments",
		`{"pacienteNombre":"Juan Pérez","doctorId":"D1","servicioId":"s1","fecha":"2024-05-01","hora":"10:00"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.Cita
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPut, "/appointments/"+created.ID+"/estado", `{"estado":"atendida"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "fechaAtencion")
}

func TestListAppointmentsFilters(t *testing.T) {
	r, store := newTestRouter(t)
	seedDoctor(t, store, "D1", []string{"09:00", "10:00"})
	seedDoctor(t, store, "D2", []string{"09:00"})

	for _, req := range []string{
		`{"pacienteNombre":"Juan Pérez","doctorId":"D1","servicioId":"s1","fecha":"2024-05-01","hora":"09:00"}`,
		`{"pacienteNombre":"María García","doctorId":"D1","servicioId":"s1","fecha":"2024-05-02","hora":"10:00"}`,
		`{"pacienteNombre":"Carlos López","doctorId":"D2","servicioId":"s1","fecha":"2024-05-01","hora":"09:00"}`,
	} {
		w := doJSON(t, r, http.MethodPost, "/appointments", req)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := doJSON(t, r, http.MethodGet, "/appointments?doctorId=D1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Appointments []model.CitaEnriquecida `json:"appointments"`
		Total        int                     `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 2, list.Total)
	// fecha desc ordering
	assert.Equal(t, "2024-05-02", list.Appointments[0].Fecha)
}

func TestMotivosCancelacionEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/appointments/motivos-cancelacion", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Motivos []string `json:"motivosCancelacion"`
		Total   int      `json:"total"`
		Message string   `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 10, body.Total)
	assert.Equal(t, "Lista de motivos válidos para cancelación de citas", body.Message)
}

func TestMethodNotAllowed(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/appointments", "")
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), "Método no permitido")
}
