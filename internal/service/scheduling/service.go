// Package scheduling is the core engine: availability computation,
// booking with slot uniqueness and the status-transition workflow.
package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/odontosys/clinic-api/internal/lock"
	"github.com/odontosys/clinic-api/internal/model"
	"github.com/odontosys/clinic-api/internal/notification"
	"github.com/odontosys/clinic-api/internal/refdata"
	"github.com/odontosys/clinic-api/internal/repository"
	apperrors "github.com/odontosys/clinic-api/pkg/errors"
	"github.com/odontosys/clinic-api/pkg/metrics"
	"github.com/odontosys/clinic-api/pkg/validator"
)

type Service struct {
	citas     repository.CitaRepository
	doctors   repository.DoctorRepository
	pacientes repository.PacienteRepository
	enricher  *Enricher
	locker    lock.Locker
	notifier  notification.Notifier
	policy    TransitionPolicy
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

func NewService(
	citas repository.CitaRepository,
	doctors repository.DoctorRepository,
	pacientes repository.PacienteRepository,
	enricher *Enricher,
	locker lock.Locker,
	notifier notification.Notifier,
	policy TransitionPolicy,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *Service {
	return &Service{
		citas:     citas,
		doctors:   doctors,
		pacientes: pacientes,
		enricher:  enricher,
		locker:    locker,
		notifier:  notifier,
		policy:    policy,
		metrics:   m,
		logger:    logger,
	}
}

// Availability diffs the doctor's schedule template against the booked
// hours for one date. Read-only and safe to call concurrently.
func (s *Service) Availability(ctx context.Context, doctorID, fecha string) (*model.Disponibilidad, error) {
	if doctorID == "" || fecha == "" {
		return nil, apperrors.BadRequest("Se requieren los parámetros: doctorId y fecha")
	}

	doctor, err := s.doctors.Get(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if !doctor.Activo {
		return nil, apperrors.NotFound("Doctor no encontrado")
	}

	citas, err := s.citas.ListByDoctorAndDate(ctx, doctorID, fecha)
	if err != nil {
		return nil, err
	}

	// Any appointment at the slot occupies it, whatever its estado.
	ocupadas := make([]string, 0, len(citas))
	ocupadaSet := make(map[string]bool, len(citas))
	for _, cita := range citas {
		ocupadas = append(ocupadas, cita.Hora)
		ocupadaSet[cita.Hora] = true
	}

	disponibles := make([]string, 0, len(doctor.Horario))
	for _, hora := range doctor.Horario {
		if !ocupadaSet[hora] {
			disponibles = append(disponibles, hora)
		}
	}

	s.metrics.AvailabilityQueries.Inc()

	return &model.Disponibilidad{
		DoctorID:            doctorID,
		Fecha:               fecha,
		DoctorNombre:        doctor.Nombre,
		Especialidad:        doctor.Especialidad,
		HorarioCompleto:     doctor.Horario,
		HorasOcupadas:       ocupadas,
		HorariosDisponibles: disponibles,
	}, nil
}

// Create books a slot. The pre-check runs inside a per-slot lock and the
// store's unique index backstops whatever race remains, so exactly one
// of two concurrent bookings for the same slot wins.
func (s *Service) Create(ctx context.Context, req *model.CreateCitaRequest) (*model.Cita, error) {
	paciente := req.PacienteNombre
	if paciente == "" {
		paciente = req.PacienteID
	}
	err := validator.Required(map[string]string{
		"pacienteNombre": paciente,
		"doctorId":       req.DoctorID,
		"servicioId":     req.ServicioID,
		"fecha":          req.Fecha,
		"hora":           req.Hora,
	}, "pacienteNombre", "doctorId", "servicioId", "fecha", "hora")
	if err != nil {
		return nil, err
	}

	if req.SucursalID != "" {
		if _, ok := refdata.SucursalPorID(req.SucursalID); !ok {
			return nil, apperrors.BadRequest("Sucursal no válida")
		}
	}

	slotKey := fmt.Sprintf("%s|%s|%s", req.DoctorID, req.Fecha, req.Hora)

	var created *model.Cita
	err = s.locker.WithLock(ctx, slotKey, func(ctx context.Context) error {
		existing, err := s.citas.FindBySlot(ctx, req.DoctorID, req.Fecha, req.Hora)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return apperrors.Conflict("Ya existe una cita para este doctor en esta fecha y hora")
		}

		cita := &model.Cita{
			ID:             uuid.NewString(),
			Type:           model.TypeCita,
			PacienteNombre: req.PacienteNombre,
			PacienteID:     req.PacienteID,
			DoctorID:       req.DoctorID,
			ServicioID:     req.ServicioID,
			SucursalID:     req.SucursalID,
			Fecha:          req.Fecha,
			Hora:           req.Hora,
			Estado:         model.EstadoConfirmada,
			CreatedAt:      time.Now().UTC(),
		}
		if err := s.citas.Create(ctx, cita); err != nil {
			return err
		}
		created = cita
		return nil
	})
	if errors.Is(err, lock.ErrNotAcquired) {
		err = apperrors.Conflict("El horario está siendo reservado, intente nuevamente")
	}
	if err != nil {
		if apperrors.IsConflict(err) {
			s.metrics.BookingConflicts.Inc()
		}
		return nil, err
	}

	s.metrics.BookingsCreated.Inc()
	s.notify(ctx, created, func(recipient string) error {
		return s.notifier.BookingConfirmed(ctx, created, recipient)
	})

	return created, nil
}

// UpdateStatus runs the transition workflow: enum check, motive rule,
// policy gate, then the audited read-modify-write.
func (s *Service) UpdateStatus(ctx context.Context, id string, estado model.Estado, motivo string) (*model.CitaEnriquecida, *model.CambioEstado, error) {
	if !estado.Valid() {
		return nil, nil, apperrors.BadRequest(
			"Estado inválido. Estados permitidos: confirmada, atendida, cancelada, no_asistio",
		)
	}
	if estado == model.EstadoCancelada && motivo == "" {
		return nil, nil, apperrors.BadRequest(
			`Motivo de cancelación requerido cuando el estado es "cancelada"`,
		)
	}

	cita, err := s.citas.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if err := s.policy(cita.Estado, estado); err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	cita.EstadoAnterior = cita.Estado
	cita.Estado = estado
	cita.FechaCambioEstado = &now
	cita.UpdatedAt = &now
	if estado == model.EstadoAtendida {
		cita.FechaAtencion = &now
	}
	if estado == model.EstadoCancelada {
		cita.MotivoCancelacion = motivo
	}

	if err := s.citas.Update(ctx, cita); err != nil {
		return nil, nil, err
	}

	s.metrics.StatusTransitions.WithLabelValues(string(estado)).Inc()

	if estado == model.EstadoCancelada {
		s.notify(ctx, cita, func(recipient string) error {
			return s.notifier.BookingCancelled(ctx, cita, recipient, motivo)
		})
	}

	cambio := &model.CambioEstado{
		EstadoAnterior: cita.EstadoAnterior,
		EstadoNuevo:    estado,
		FechaCambio:    now,
	}
	return s.enricher.EnrichOne(ctx, cita), cambio, nil
}

// List returns enriched appointments matching the optional filters.
func (s *Service) List(ctx context.Context, filters *model.CitaFilters) ([]*model.CitaEnriquecida, error) {
	citas, err := s.citas.List(ctx, filters)
	if err != nil {
		return nil, err
	}
	return s.enricher.EnrichAll(ctx, citas), nil
}

// notify resolves the patient's email when the appointment references a
// registered patient and delivers best-effort.
func (s *Service) notify(ctx context.Context, cita *model.Cita, send func(recipient string) error) {
	if cita.PacienteID == "" {
		return
	}
	paciente, err := s.pacientes.Get(ctx, cita.PacienteID)
	if err != nil {
		return
	}
	if err := send(paciente.CorreoElectronico); err != nil {
		s.logger.Warn().Err(err).Str("cita_id", cita.ID).Msg("notification failed")
	}
}
