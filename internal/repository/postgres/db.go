package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/odontosys/clinic-api/internal/config"
)

func NewDB(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	return db, nil
}

// schema holds every heterogeneous clinic document in one collection,
// discriminated by type. The partial unique indexes push the
// double-booking and duplicate-email guarantees into the store, closing
// the check-then-insert race window at its root.
const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id   TEXT PRIMARY KEY,
	type TEXT NOT NULL,
	data JSONB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_documents_type ON documents (type);

CREATE UNIQUE INDEX IF NOT EXISTS uq_documents_appointment_slot
	ON documents ((data->>'doctorId'), (data->>'fecha'), (data->>'hora'))
	WHERE type = 'appointment';

CREATE UNIQUE INDEX IF NOT EXISTS uq_documents_patient_email
	ON documents ((lower(data->>'correoElectronico')))
	WHERE type = 'patient';
`

// EnsureSchema creates the documents table and its indexes.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
