// Package catalog manages the dental-service price list.
package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/odontosys/clinic-api/internal/model"
	"github.com/odontosys/clinic-api/internal/repository"
	"github.com/odontosys/clinic-api/pkg/validator"
)

type Service struct {
	repo repository.ServicioRepository
}

func NewService(repo repository.ServicioRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req *model.CreateServicioRequest) (*model.Servicio, error) {
	duracion, err := validator.CoerceInt("duracion", req.Duracion)
	if err != nil {
		return nil, err
	}
	precio, err := validator.CoerceFloat("precio", req.Precio)
	if err != nil {
		return nil, err
	}

	servicio := &model.Servicio{
		ID:              uuid.NewString(),
		Type:            model.TypeServicio,
		Nombre:          req.Nombre,
		Duracion:        duracion,
		Precio:          precio,
		Descripcion:     req.Descripcion,
		PublicoObjetivo: req.PublicoObjetivo,
		Activo:          true,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, servicio); err != nil {
		return nil, err
	}
	return servicio, nil
}

func (s *Service) ListActive(ctx context.Context) ([]*model.Servicio, error) {
	return s.repo.ListActive(ctx)
}
