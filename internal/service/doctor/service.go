package doctor

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/odontosys/clinic-api/internal/model"
	"github.com/odontosys/clinic-api/internal/repository"
)

type Service struct {
	repo repository.DoctorRepository
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	doctor := &model.Doctor{
		ID:           uuid.NewString(),
		Type:         model.TypeDoctor,
		Nombre:       req.Nombre,
		Especialidad: req.Especialidad,
		Horario:      req.Horario,
		Telefono:     req.Telefono,
		Email:        req.Email,
		Activo:       true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *Service) ListActive(ctx context.Context) ([]*model.Doctor, error) {
	return s.repo.ListActive(ctx)
}
