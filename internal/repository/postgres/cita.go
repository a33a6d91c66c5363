package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/odontosys/clinic-api/internal/model"
	"github.com/odontosys/clinic-api/internal/repository"
)

type citaRepository struct {
	db *sqlx.DB
}

func NewCitaRepository(db *sqlx.DB) repository.CitaRepository {
	return &citaRepository{db: db}
}

// Create relies on uq_documents_appointment_slot: a concurrent insert
// for the same (doctorId, fecha, hora) loses with a conflict error even
// when both requests passed the pre-check.
func (r *citaRepository) Create(ctx context.Context, cita *model.Cita) error {
	return insertDocument(ctx, r.db, cita.ID, model.TypeCita, cita)
}

func (r *citaRepository) Get(ctx context.Context, id string) (*model.Cita, error) {
	var cita model.Cita
	if err := getDocument(ctx, r.db, id, model.TypeCita, &cita, "Cita no encontrada"); err != nil {
		return nil, err
	}
	return &cita, nil
}

func (r *citaRepository) Update(ctx context.Context, cita *model.Cita) error {
	return upsertDocument(ctx, r.db, cita.ID, model.TypeCita, cita)
}

func (r *citaRepository) List(ctx context.Context, filters *model.CitaFilters) ([]*model.Cita, error) {
	query := `SELECT data FROM documents WHERE type = $1`
	args := []interface{}{model.TypeCita}

	add := func(cond string, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		query += fmt.Sprintf(" AND %s $%d", cond, len(args))
	}

	if filters != nil {
		add("data->>'fecha' =", filters.Fecha)
		add("data->>'doctorId' =", filters.DoctorID)
		add("data->>'sucursalId' =", filters.SucursalID)
		add("data->>'estado' =", string(filters.Estado))
		add("data->>'fecha' >=", filters.FechaInicio)
		add("data->>'fecha' <=", filters.FechaFin)
	}

	query += ` ORDER BY data->>'fecha' DESC, data->>'hora'`

	return queryDocuments[model.Cita](ctx, r.db, query, args...)
}

func (r *citaRepository) FindBySlot(ctx context.Context, doctorID, fecha, hora string) ([]*model.Cita, error) {
	return queryDocuments[model.Cita](ctx, r.db,
		`SELECT data FROM documents
		 WHERE type = $1
		   AND data->>'doctorId' = $2
		   AND data->>'fecha' = $3
		   AND data->>'hora' = $4`,
		model.TypeCita, doctorID, fecha, hora,
	)
}

func (r *citaRepository) ListByDoctorAndDate(ctx context.Context, doctorID, fecha string) ([]*model.Cita, error) {
	return queryDocuments[model.Cita](ctx, r.db,
		`SELECT data FROM documents
		 WHERE type = $1
		   AND data->>'doctorId' = $2
		   AND data->>'fecha' = $3
		 ORDER BY data->>'hora'`,
		model.TypeCita, doctorID, fecha,
	)
}
