package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/odontosys/clinic-api/internal/model"
	"github.com/odontosys/clinic-api/internal/repository"
	apperrors "github.com/odontosys/clinic-api/pkg/errors"
)

type pacienteRepository struct {
	db *sqlx.DB
}

func NewPacienteRepository(db *sqlx.DB) repository.PacienteRepository {
	return &pacienteRepository{db: db}
}

func (r *pacienteRepository) Create(ctx context.Context, paciente *model.Paciente) error {
	return insertDocument(ctx, r.db, paciente.ID, model.TypePaciente, paciente)
}

func (r *pacienteRepository) Get(ctx context.Context, id string) (*model.Paciente, error) {
	var paciente model.Paciente
	if err := getDocument(ctx, r.db, id, model.TypePaciente, &paciente, "Paciente no encontrado"); err != nil {
		return nil, err
	}
	return &paciente, nil
}

func (r *pacienteRepository) Update(ctx context.Context, paciente *model.Paciente) error {
	return upsertDocument(ctx, r.db, paciente.ID, model.TypePaciente, paciente)
}

// Search matches nombre, apellido or correoElectronico case-insensitively.
// An empty term lists everyone, sorted apellido then nombre.
func (r *pacienteRepository) Search(ctx context.Context, term string) ([]*model.Paciente, error) {
	query := `SELECT data FROM documents WHERE type = $1`
	args := []interface{}{model.TypePaciente}

	if term != "" {
		query += ` AND (lower(data->>'nombre') LIKE $2
			OR lower(data->>'apellido') LIKE $2
			OR lower(data->>'correoElectronico') LIKE $2)`
		args = append(args, "%"+strings.ToLower(term)+"%")
	}

	query += ` ORDER BY data->>'apellido', data->>'nombre'`

	return queryDocuments[model.Paciente](ctx, r.db, query, args...)
}

func (r *pacienteRepository) FindByEmail(ctx context.Context, email string) (*model.Paciente, error) {
	var data []byte
	err := r.db.GetContext(ctx, &data,
		`SELECT data FROM documents
		 WHERE type = $1 AND lower(data->>'correoElectronico') = lower($2)`,
		model.TypePaciente, email,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, translateStoreError(err)
	}

	var paciente model.Paciente
	if err := json.Unmarshal(data, &paciente); err != nil {
		return nil, apperrors.Internal(err)
	}
	return &paciente, nil
}
