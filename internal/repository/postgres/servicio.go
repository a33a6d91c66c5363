package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/odontosys/clinic-api/internal/model"
	"github.com/odontosys/clinic-api/internal/repository"
)

type servicioRepository struct {
	db *sqlx.DB
}

func NewServicioRepository(db *sqlx.DB) repository.ServicioRepository {
	return &servicioRepository{db: db}
}

func (r *servicioRepository) Create(ctx context.Context, servicio *model.Servicio) error {
	return insertDocument(ctx, r.db, servicio.ID, model.TypeServicio, servicio)
}

func (r *servicioRepository) Get(ctx context.Context, id string) (*model.Servicio, error) {
	var servicio model.Servicio
	if err := getDocument(ctx, r.db, id, model.TypeServicio, &servicio, "Servicio no encontrado"); err != nil {
		return nil, err
	}
	return &servicio, nil
}

func (r *servicioRepository) GetMany(ctx context.Context, ids []string) (map[string]*model.Servicio, error) {
	if len(ids) == 0 {
		return map[string]*model.Servicio{}, nil
	}

	servicios, err := queryDocuments[model.Servicio](ctx, r.db,
		`SELECT data FROM documents WHERE type = $1 AND id = ANY($2)`,
		model.TypeServicio, pq.Array(ids),
	)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*model.Servicio, len(servicios))
	for _, s := range servicios {
		byID[s.ID] = s
	}
	return byID, nil
}

func (r *servicioRepository) ListActive(ctx context.Context) ([]*model.Servicio, error) {
	return queryDocuments[model.Servicio](ctx, r.db,
		`SELECT data FROM documents
		 WHERE type = $1 AND (data->>'activo')::boolean = true
		 ORDER BY data->>'nombre'`,
		model.TypeServicio,
	)
}
