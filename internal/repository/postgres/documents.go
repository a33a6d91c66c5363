package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	apperrors "github.com/odontosys/clinic-api/pkg/errors"
)

const pgUniqueViolation = "23505"

// conflictMessages maps a violated unique index to the domain conflict
// message the caller should see.
var conflictMessages = map[string]string{
	"uq_documents_appointment_slot": "Ya existe una cita para este doctor en esta fecha y hora",
	"uq_documents_patient_email":    "Ya existe un paciente registrado con este correo electrónico",
}

func insertDocument(ctx context.Context, db *sqlx.DB, id, docType string, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return apperrors.Internal(fmt.Errorf("marshal %s document: %w", docType, err))
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO documents (id, type, data) VALUES ($1, $2, $3)`,
		id, docType, data,
	)
	if err != nil {
		return translateStoreError(err)
	}
	return nil
}

// upsertDocument is the read-modify-write persistence point for status
// updates and patient edits. Last write wins; no concurrency token.
func upsertDocument(ctx context.Context, db *sqlx.DB, id, docType string, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return apperrors.Internal(fmt.Errorf("marshal %s document: %w", docType, err))
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO documents (id, type, data) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data`,
		id, docType, data,
	)
	if err != nil {
		return translateStoreError(err)
	}
	return nil
}

func getDocument(ctx context.Context, db *sqlx.DB, id, docType string, dest interface{}, notFoundMsg string) error {
	var data []byte
	err := db.GetContext(ctx, &data,
		`SELECT data FROM documents WHERE id = $1 AND type = $2`,
		id, docType,
	)
	if err == sql.ErrNoRows {
		return apperrors.NotFound(notFoundMsg)
	}
	if err != nil {
		return translateStoreError(err)
	}
	return json.Unmarshal(data, dest)
}

// queryDocuments runs a query returning raw jsonb rows and unmarshals
// each into a fresh T via the factory.
func queryDocuments[T any](ctx context.Context, db *sqlx.DB, query string, args ...interface{}) ([]*T, error) {
	var rows [][]byte
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, translateStoreError(err)
	}

	out := make([]*T, 0, len(rows))
	for _, raw := range rows {
		item := new(T)
		if err := json.Unmarshal(raw, item); err != nil {
			return nil, apperrors.Internal(fmt.Errorf("unmarshal document: %w", err))
		}
		out = append(out, item)
	}
	return out, nil
}

func translateStoreError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pgUniqueViolation {
		if msg, known := conflictMessages[pqErr.Constraint]; known {
			return apperrors.Conflict(msg)
		}
		return apperrors.Conflict("El documento ya existe")
	}
	return apperrors.Internal(err)
}
