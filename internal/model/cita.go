package model

import "time"

type Estado string

const (
	EstadoConfirmada Estado = "confirmada"
	EstadoAtendida   Estado = "atendida"
	EstadoCancelada  Estado = "cancelada"
	EstadoNoAsistio  Estado = "no_asistio"
)

// Estados lists the valid appointment states in presentation order.
var Estados = []Estado{EstadoConfirmada, EstadoAtendida, EstadoCancelada, EstadoNoAsistio}

func (e Estado) Valid() bool {
	for _, s := range Estados {
		if e == s {
			return true
		}
	}
	return false
}

// Cita is an appointment document. Fecha is a calendar date string
// (YYYY-MM-DD) and Hora must match one label from the doctor's horario.
type Cita struct {
	ID                string     `json:"id"`
	Type              string     `json:"type"`
	PacienteNombre    string     `json:"pacienteNombre,omitempty"`
	PacienteID        string     `json:"pacienteId,omitempty"`
	DoctorID          string     `json:"doctorId"`
	ServicioID        string     `json:"servicioId"`
	SucursalID        string     `json:"sucursalId,omitempty"`
	Fecha             string     `json:"fecha"`
	Hora              string     `json:"hora"`
	Estado            Estado     `json:"estado"`
	EstadoAnterior    Estado     `json:"estadoAnterior,omitempty"`
	FechaCambioEstado *time.Time `json:"fechaCambioEstado,omitempty"`
	MotivoCancelacion string     `json:"motivoCancelacion,omitempty"`
	FechaAtencion     *time.Time `json:"fechaAtencion,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty"`
}

// CreateCitaRequest accepts the booking fields. Either pacienteNombre or
// pacienteId identifies the patient; sucursalId is optional for the
// branch-less protocol variant.
type CreateCitaRequest struct {
	PacienteNombre string `json:"pacienteNombre"`
	PacienteID     string `json:"pacienteId"`
	DoctorID       string `json:"doctorId"`
	ServicioID     string `json:"servicioId"`
	SucursalID     string `json:"sucursalId"`
	Fecha          string `json:"fecha"`
	Hora           string `json:"hora"`
}

type UpdateEstadoRequest struct {
	Estado            Estado `json:"estado"`
	MotivoCancelacion string `json:"motivoCancelacion"`
}

// CitaFilters are the optional list filters. Zero values mean no filter.
type CitaFilters struct {
	Fecha       string
	DoctorID    string
	SucursalID  string
	Estado      Estado
	FechaInicio string
	FechaFin    string
}

// CitaEnriquecida is the read-side projection with display fields joined
// from the doctor, servicio and sucursal tables.
type CitaEnriquecida struct {
	Cita
	DoctorNombre       string  `json:"doctorNombre"`
	DoctorEspecialidad string  `json:"doctorEspecialidad"`
	ServicioNombre     string  `json:"servicioNombre"`
	ServicioPrecio     float64 `json:"servicioPrecio"`
	SucursalNombre     string  `json:"sucursalNombre"`
}

// Disponibilidad is the availability projection for one doctor and date.
type Disponibilidad struct {
	DoctorID            string   `json:"doctorId"`
	Fecha               string   `json:"fecha"`
	DoctorNombre        string   `json:"doctorNombre"`
	Especialidad        string   `json:"especialidad"`
	HorarioCompleto     []string `json:"horarioCompleto"`
	HorasOcupadas       []string `json:"horasOcupadas"`
	HorariosDisponibles []string `json:"horariosDisponibles"`
}

// CambioEstado records one transition for the status-update response.
type CambioEstado struct {
	EstadoAnterior Estado    `json:"estadoAnterior"`
	EstadoNuevo    Estado    `json:"estadoNuevo"`
	FechaCambio    time.Time `json:"fechaCambio"`
}

// Document type discriminators within the shared collection.
const (
	TypeDoctor   = "doctor"
	TypeServicio = "service"
	TypePaciente = "patient"
	TypeCita     = "appointment"
)
