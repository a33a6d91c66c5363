// Package repository defines the document-store adapter surface. The
// postgres implementation backs production, the memory implementation
// backs service tests.
package repository

import (
	"context"

	"github.com/odontosys/clinic-api/internal/model"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	Get(ctx context.Context, id string) (*model.Doctor, error)
	GetMany(ctx context.Context, ids []string) (map[string]*model.Doctor, error)
	ListActive(ctx context.Context) ([]*model.Doctor, error)
}

type ServicioRepository interface {
	Create(ctx context.Context, servicio *model.Servicio) error
	Get(ctx context.Context, id string) (*model.Servicio, error)
	GetMany(ctx context.Context, ids []string) (map[string]*model.Servicio, error)
	ListActive(ctx context.Context) ([]*model.Servicio, error)
}

type PacienteRepository interface {
	Create(ctx context.Context, paciente *model.Paciente) error
	Get(ctx context.Context, id string) (*model.Paciente, error)
	Update(ctx context.Context, paciente *model.Paciente) error
	Search(ctx context.Context, term string) ([]*model.Paciente, error)
	FindByEmail(ctx context.Context, email string) (*model.Paciente, error)
}

type CitaRepository interface {
	// Create persists a new appointment. Implementations return a
	// conflict error when another appointment already occupies the
	// (doctorId, fecha, hora) slot, regardless of its estado.
	Create(ctx context.Context, cita *model.Cita) error
	Get(ctx context.Context, id string) (*model.Cita, error)
	Update(ctx context.Context, cita *model.Cita) error
	List(ctx context.Context, filters *model.CitaFilters) ([]*model.Cita, error)
	FindBySlot(ctx context.Context, doctorID, fecha, hora string) ([]*model.Cita, error)
	ListByDoctorAndDate(ctx context.Context, doctorID, fecha string) ([]*model.Cita, error)
}
