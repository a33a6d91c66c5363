// Package patient implements registration, search, edits and the
// soft-delete lifecycle. Patient records are never physically removed.
package patient

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/odontosys/clinic-api/internal/model"
	"github.com/odontosys/clinic-api/internal/repository"
	apperrors "github.com/odontosys/clinic-api/pkg/errors"
	"github.com/odontosys/clinic-api/pkg/validator"
)

type Service struct {
	repo repository.PacienteRepository
}

func NewService(repo repository.PacienteRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req *model.CreatePacienteRequest) (*model.Paciente, error) {
	err := validator.Required(map[string]string{
		"nombre":            req.Nombre,
		"apellido":          req.Apellido,
		"correoElectronico": req.CorreoElectronico,
		"numeroTelefono":    req.NumeroTelefono,
		"pais":              req.Pais,
		"ciudad":            req.Ciudad,
		"direccion":         req.Direccion,
	}, "nombre", "apellido", "correoElectronico", "numeroTelefono", "pais", "ciudad", "direccion")
	if err != nil {
		return nil, err
	}

	if !req.AceptaPoliticas {
		return nil, apperrors.BadRequest("Debe aceptar las políticas de privacidad de datos")
	}

	if err := validator.Email(req.CorreoElectronico); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.CorreoElectronico))
	if existing, err := s.repo.FindByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperrors.Conflict("Ya existe un paciente registrado con este correo electrónico")
	}

	now := time.Now().UTC()
	paciente := &model.Paciente{
		ID:                uuid.NewString(),
		Type:              model.TypePaciente,
		Nombre:            strings.TrimSpace(req.Nombre),
		Apellido:          strings.TrimSpace(req.Apellido),
		CorreoElectronico: email,
		NumeroTelefono:    strings.TrimSpace(req.NumeroTelefono),
		Pais:              strings.TrimSpace(req.Pais),
		Ciudad:            strings.TrimSpace(req.Ciudad),
		Direccion:         strings.TrimSpace(req.Direccion),
		FechaNacimiento:   req.FechaNacimiento,
		AceptaPoliticas:   true,
		FechaRegistro:     now,
		Activo:            true,
		CreatedAt:         now,
	}

	if err := s.repo.Create(ctx, paciente); err != nil {
		return nil, err
	}
	return paciente, nil
}

func (s *Service) Search(ctx context.Context, term string) ([]*model.Paciente, error) {
	return s.repo.Search(ctx, term)
}

func (s *Service) Update(ctx context.Context, id string, req *model.UpdatePacienteRequest) (*model.Paciente, error) {
	paciente, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CorreoElectronico != nil {
		email := strings.ToLower(strings.TrimSpace(*req.CorreoElectronico))
		if err := validator.Email(email); err != nil {
			return nil, err
		}
		if !strings.EqualFold(email, paciente.CorreoElectronico) {
			if existing, err := s.repo.FindByEmail(ctx, email); err != nil {
				return nil, err
			} else if existing != nil {
				return nil, apperrors.Conflict("Ya existe un paciente registrado con este correo electrónico")
			}
		}
		paciente.CorreoElectronico = email
	}
	if req.Nombre != nil {
		paciente.Nombre = strings.TrimSpace(*req.Nombre)
	}
	if req.Apellido != nil {
		paciente.Apellido = strings.TrimSpace(*req.Apellido)
	}
	if req.NumeroTelefono != nil {
		paciente.NumeroTelefono = strings.TrimSpace(*req.NumeroTelefono)
	}
	if req.Pais != nil {
		paciente.Pais = strings.TrimSpace(*req.Pais)
	}
	if req.Ciudad != nil {
		paciente.Ciudad = strings.TrimSpace(*req.Ciudad)
	}
	if req.Direccion != nil {
		paciente.Direccion = strings.TrimSpace(*req.Direccion)
	}
	if req.FechaNacimiento != nil {
		paciente.FechaNacimiento = *req.FechaNacimiento
	}

	paciente.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, paciente); err != nil {
		return nil, err
	}
	return paciente, nil
}

// Delete deactivates the record; history stays queryable.
func (s *Service) Delete(ctx context.Context, id string) error {
	paciente, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	paciente.Activo = false
	paciente.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, paciente)
}
