package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/odontosys/clinic-api/internal/model"
	"github.com/odontosys/clinic-api/internal/repository"
)

type doctorRepository struct {
	db *sqlx.DB
}

func NewDoctorRepository(db *sqlx.DB) repository.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	return insertDocument(ctx, r.db, doctor.ID, model.TypeDoctor, doctor)
}

func (r *doctorRepository) Get(ctx context.Context, id string) (*model.Doctor, error) {
	var doctor model.Doctor
	if err := getDocument(ctx, r.db, id, model.TypeDoctor, &doctor, "Doctor no encontrado"); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) GetMany(ctx context.Context, ids []string) (map[string]*model.Doctor, error) {
	if len(ids) == 0 {
		return map[string]*model.Doctor{}, nil
	}

	doctors, err := queryDocuments[model.Doctor](ctx, r.db,
		`SELECT data FROM documents WHERE type = $1 AND id = ANY($2)`,
		model.TypeDoctor, pq.Array(ids),
	)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*model.Doctor, len(doctors))
	for _, d := range doctors {
		byID[d.ID] = d
	}
	return byID, nil
}

func (r *doctorRepository) ListActive(ctx context.Context) ([]*model.Doctor, error) {
	return queryDocuments[model.Doctor](ctx, r.db,
		`SELECT data FROM documents
		 WHERE type = $1 AND (data->>'activo')::boolean = true
		 ORDER BY data->>'nombre'`,
		model.TypeDoctor,
	)
}
