// Package memory is an in-memory document store mirroring the postgres
// adapter's behavior, including its uniqueness constraints and sort
// orders. Service tests inject it in place of the real store.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/odontosys/clinic-api/internal/model"
	apperrors "github.com/odontosys/clinic-api/pkg/errors"
)

type Store struct {
	mu        sync.RWMutex
	doctors   map[string]model.Doctor
	servicios map[string]model.Servicio
	pacientes map[string]model.Paciente
	citas     map[string]model.Cita
}

func NewStore() *Store {
	return &Store{
		doctors:   make(map[string]model.Doctor),
		servicios: make(map[string]model.Servicio),
		pacientes: make(map[string]model.Paciente),
		citas:     make(map[string]model.Cita),
	}
}

// --- doctors ---

type DoctorRepository struct{ s *Store }

func (s *Store) Doctors() *DoctorRepository { return &DoctorRepository{s: s} }

func (r *DoctorRepository) Create(_ context.Context, doctor *model.Doctor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.doctors[doctor.ID] = *doctor
	return nil
}

func (r *DoctorRepository) Get(_ context.Context, id string) (*model.Doctor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	doctor, ok := r.s.doctors[id]
	if !ok {
		return nil, apperrors.NotFound("Doctor no encontrado")
	}
	return &doctor, nil
}

func (r *DoctorRepository) GetMany(_ context.Context, ids []string) (map[string]*model.Doctor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[string]*model.Doctor, len(ids))
	for _, id := range ids {
		if doctor, ok := r.s.doctors[id]; ok {
			d := doctor
			out[id] = &d
		}
	}
	return out, nil
}

func (r *DoctorRepository) ListActive(_ context.Context) ([]*model.Doctor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*model.Doctor
	for _, doctor := range r.s.doctors {
		if doctor.Activo {
			d := doctor
			out = append(out, &d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

// --- servicios ---

type ServicioRepository struct{ s *Store }

func (s *Store) Servicios() *ServicioRepository { return &ServicioRepository{s: s} }

func (r *ServicioRepository) Create(_ context.Context, servicio *model.Servicio) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.servicios[servicio.ID] = *servicio
	return nil
}

func (r *ServicioRepository) Get(_ context.Context, id string) (*model.Servicio, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	servicio, ok := r.s.servicios[id]
	if !ok {
		return nil, apperrors.NotFound("Servicio no encontrado")
	}
	return &servicio, nil
}

func (r *ServicioRepository) GetMany(_ context.Context, ids []string) (map[string]*model.Servicio, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[string]*model.Servicio, len(ids))
	for _, id := range ids {
		if servicio, ok := r.s.servicios[id]; ok {
			s := servicio
			out[id] = &s
		}
	}
	return out, nil
}

func (r *ServicioRepository) ListActive(_ context.Context) ([]*model.Servicio, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*model.Servicio
	for _, servicio := range r.s.servicios {
		if servicio.Activo {
			s := servicio
			out = append(out, &s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

// --- pacientes ---

type PacienteRepository struct{ s *Store }

func (s *Store) Pacientes() *PacienteRepository { return &PacienteRepository{s: s} }

func (r *PacienteRepository) Create(_ context.Context, paciente *model.Paciente) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.pacientes {
		if strings.EqualFold(existing.CorreoElectronico, paciente.CorreoElectronico) {
			return apperrors.Conflict("Ya existe un paciente registrado con este correo electrónico")
		}
	}
	r.s.pacientes[paciente.ID] = *paciente
	return nil
}

func (r *PacienteRepository) Get(_ context.Context, id string) (*model.Paciente, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	paciente, ok := r.s.pacientes[id]
	if !ok {
		return nil, apperrors.NotFound("Paciente no encontrado")
	}
	return &paciente, nil
}

func (r *PacienteRepository) Update(_ context.Context, paciente *model.Paciente) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, existing := range r.s.pacientes {
		if id != paciente.ID && strings.EqualFold(existing.CorreoElectronico, paciente.CorreoElectronico) {
			return apperrors.Conflict("Ya existe un paciente registrado con este correo electrónico")
		}
	}
	r.s.pacientes[paciente.ID] = *paciente
	return nil
}

func (r *PacienteRepository) Search(_ context.Context, term string) ([]*model.Paciente, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	term = strings.ToLower(term)
	var out []*model.Paciente
	for _, paciente := range r.s.pacientes {
		if term == "" ||
			strings.Contains(strings.ToLower(paciente.Nombre), term) ||
			strings.Contains(strings.ToLower(paciente.Apellido), term) ||
			strings.Contains(strings.ToLower(paciente.CorreoElectronico), term) {
			p := paciente
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Apellido != out[j].Apellido {
			return out[i].Apellido < out[j].Apellido
		}
		return out[i].Nombre < out[j].Nombre
	})
	return out, nil
}

func (r *PacienteRepository) FindByEmail(_ context.Context, email string) (*model.Paciente, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, paciente := range r.s.pacientes {
		if strings.EqualFold(paciente.CorreoElectronico, email) {
			p := paciente
			return &p, nil
		}
	}
	return nil, nil
}

// --- citas ---

type CitaRepository struct{ s *Store }

func (s *Store) Citas() *CitaRepository { return &CitaRepository{s: s} }

func (r *CitaRepository) Create(_ context.Context, cita *model.Cita) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.citas {
		if existing.DoctorID == cita.DoctorID && existing.Fecha == cita.Fecha && existing.Hora == cita.Hora {
			return apperrors.Conflict("Ya existe una cita para este doctor en esta fecha y hora")
		}
	}
	r.s.citas[cita.ID] = *cita
	return nil
}

func (r *CitaRepository) Get(_ context.Context, id string) (*model.Cita, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	cita, ok := r.s.citas[id]
	if !ok {
		return nil, apperrors.NotFound("Cita no encontrada")
	}
	return &cita, nil
}

func (r *CitaRepository) Update(_ context.Context, cita *model.Cita) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.citas[cita.ID] = *cita
	return nil
}

func (r *CitaRepository) List(_ context.Context, filters *model.CitaFilters) ([]*model.Cita, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*model.Cita
	for _, cita := range r.s.citas {
		if filters != nil {
			if filters.Fecha != "" && cita.Fecha != filters.Fecha {
				continue
			}
			if filters.DoctorID != "" && cita.DoctorID != filters.DoctorID {
				continue
			}
			if filters.SucursalID != "" && cita.SucursalID != filters.SucursalID {
				continue
			}
			if filters.Estado != "" && cita.Estado != filters.Estado {
				continue
			}
			if filters.FechaInicio != "" && cita.Fecha < filters.FechaInicio {
				continue
			}
			if filters.FechaFin != "" && cita.Fecha > filters.FechaFin {
				continue
			}
		}
		c := cita
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Fecha != out[j].Fecha {
			return out[i].Fecha > out[j].Fecha
		}
		return out[i].Hora < out[j].Hora
	})
	return out, nil
}

func (r *CitaRepository) FindBySlot(_ context.Context, doctorID, fecha, hora string) ([]*model.Cita, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*model.Cita
	for _, cita := range r.s.citas {
		if cita.DoctorID == doctorID && cita.Fecha == fecha && cita.Hora == hora {
			c := cita
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *CitaRepository) ListByDoctorAndDate(_ context.Context, doctorID, fecha string) ([]*model.Cita, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*model.Cita
	for _, cita := range r.s.citas {
		if cita.DoctorID == doctorID && cita.Fecha == fecha {
			c := cita
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hora < out[j].Hora })
	return out, nil
}
