// Package setup seeds demo catalog, doctor and patient documents so a
// fresh environment is immediately usable.
package setup

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/odontosys/clinic-api/internal/model"
	"github.com/odontosys/clinic-api/internal/repository"
)

type Service struct {
	doctors   repository.DoctorRepository
	servicios repository.ServicioRepository
	pacientes repository.PacienteRepository
	logger    zerolog.Logger
}

func NewService(
	doctors repository.DoctorRepository,
	servicios repository.ServicioRepository,
	pacientes repository.PacienteRepository,
	logger zerolog.Logger,
) *Service {
	return &Service{doctors: doctors, servicios: servicios, pacientes: pacientes, logger: logger}
}

// Result reports what the seeding pass created.
type Result struct {
	Message          string                 `json:"message"`
	ServiciosCreados int                    `json:"serviciosCreados"`
	DoctoresCreados  int                    `json:"doctoresCreados"`
	PacientesCreados int                    `json:"pacientesCreados"`
	Data             map[string]interface{} `json:"data"`
}

var seedServicios = []model.Servicio{
	{Nombre: "Limpieza dental", Duracion: 30, Precio: 80000, Descripcion: "Profilaxis y eliminación de placa bacteriana", PublicoObjetivo: "general"},
	{Nombre: "Blanqueamiento", Duracion: 60, Precio: 350000, Descripcion: "Blanqueamiento dental con luz LED", PublicoObjetivo: "adultos"},
	{Nombre: "Ortodoncia", Duracion: 45, Precio: 250000, Descripcion: "Control mensual de brackets", PublicoObjetivo: "jovenes"},
	{Nombre: "Endodoncia", Duracion: 90, Precio: 450000, Descripcion: "Tratamiento de conducto radicular", PublicoObjetivo: "adultos"},
	{Nombre: "Extracción simple", Duracion: 40, Precio: 120000, Descripcion: "Extracción de pieza dental sin cirugía", PublicoObjetivo: "general"},
	{Nombre: "Resina dental", Duracion: 50, Precio: 150000, Descripcion: "Restauración estética con resina compuesta", PublicoObjetivo: "general"},
	{Nombre: "Odontopediatría", Duracion: 30, Precio: 90000, Descripcion: "Consulta y prevención para niños", PublicoObjetivo: "ninos"},
	{Nombre: "Prótesis dental", Duracion: 60, Precio: 800000, Descripcion: "Valoración y ajuste de prótesis", PublicoObjetivo: "adultos_mayores"},
}

var seedDoctores = []model.Doctor{
	{Nombre: "Dr. Carlos Rodriguez", Especialidad: "Endodoncia", Horario: []string{"08:00", "09:00", "10:00", "11:00", "14:00", "15:00"}, Telefono: "+57 300 111 2233", Email: "carlos.rodriguez@odontosys.com"},
	{Nombre: "Dra. Ana Martinez", Especialidad: "Ortodoncia", Horario: []string{"09:00", "10:00", "11:00", "15:00", "16:00", "17:00"}, Telefono: "+57 300 222 3344", Email: "ana.martinez@odontosys.com"},
	{Nombre: "Dr. Luis Gonzalez", Especialidad: "Cirugía Oral", Horario: []string{"08:00", "09:00", "10:00", "14:00", "15:00"}, Telefono: "+57 300 333 4455", Email: "luis.gonzalez@odontosys.com"},
	{Nombre: "Dra. Maria Lopez", Especialidad: "Odontología General", Horario: []string{"08:00", "09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00"}, Telefono: "+57 300 444 5566", Email: "maria.lopez@odontosys.com"},
}

var seedPacientes = []model.Paciente{
	{Nombre: "Juan", Apellido: "Pérez", CorreoElectronico: "juan.perez@example.com", NumeroTelefono: "+57 310 100 2030", Pais: "Colombia", Ciudad: "Bogotá", Direccion: "Calle 45 #12-34"},
	{Nombre: "María", Apellido: "García", CorreoElectronico: "maria.garcia@example.com", NumeroTelefono: "+57 310 200 3040", Pais: "Colombia", Ciudad: "Medellín", Direccion: "Carrera 70 #22-15"},
	{Nombre: "Carlos", Apellido: "López", CorreoElectronico: "carlos.lopez@example.com", NumeroTelefono: "+57 310 300 4050", Pais: "Colombia", Ciudad: "Cali", Direccion: "Avenida 6N #28-10"},
	{Nombre: "Ana", Apellido: "Rodríguez", CorreoElectronico: "ana.rodriguez@example.com", NumeroTelefono: "+57 310 400 5060", Pais: "Colombia", Ciudad: "Barranquilla", Direccion: "Calle 84 #46-20"},
}

// Seed inserts the demo documents. It tolerates reruns: duplicates that
// hit a uniqueness constraint are skipped, not treated as failures.
func (s *Service) Seed(ctx context.Context) (*Result, error) {
	now := time.Now().UTC()

	servicios := make([]*model.Servicio, 0, len(seedServicios))
	for _, tmpl := range seedServicios {
		servicio := tmpl
		servicio.ID = uuid.NewString()
		servicio.Type = model.TypeServicio
		servicio.Activo = true
		servicio.CreatedAt = now
		if err := s.servicios.Create(ctx, &servicio); err != nil {
			return nil, err
		}
		servicios = append(servicios, &servicio)
	}

	doctores := make([]*model.Doctor, 0, len(seedDoctores))
	for _, tmpl := range seedDoctores {
		doctor := tmpl
		doctor.ID = uuid.NewString()
		doctor.Type = model.TypeDoctor
		doctor.Activo = true
		doctor.CreatedAt = now
		if err := s.doctors.Create(ctx, &doctor); err != nil {
			return nil, err
		}
		doctores = append(doctores, &doctor)
	}

	pacientes := make([]*model.Paciente, 0, len(seedPacientes))
	for _, tmpl := range seedPacientes {
		existing, err := s.pacientes.FindByEmail(ctx, tmpl.CorreoElectronico)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			s.logger.Debug().Str("email", tmpl.CorreoElectronico).Msg("seed patient already exists")
			continue
		}
		paciente := tmpl
		paciente.ID = uuid.NewString()
		paciente.Type = model.TypePaciente
		paciente.AceptaPoliticas = true
		paciente.FechaRegistro = now
		paciente.Activo = true
		paciente.CreatedAt = now
		if err := s.pacientes.Create(ctx, &paciente); err != nil {
			return nil, err
		}
		pacientes = append(pacientes, &paciente)
	}

	s.logger.Info().
		Int("servicios", len(servicios)).
		Int("doctores", len(doctores)).
		Int("pacientes", len(pacientes)).
		Msg("seed data created")

	return &Result{
		Message:          "Datos de ejemplo creados exitosamente",
		ServiciosCreados: len(servicios),
		DoctoresCreados:  len(doctores),
		PacientesCreados: len(pacientes),
		Data: map[string]interface{}{
			"servicios": servicios,
			"doctores":  doctores,
			"pacientes": pacientes,
		},
	}, nil
}
