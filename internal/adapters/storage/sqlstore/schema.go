package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Sin foreign keys a propósito: animal.owner_id y appointment.animal_id son
// referencias débiles y pueden quedar colgadas.
const schemaTemplate = `
CREATE TABLE IF NOT EXISTS owners (
	id         {{ID}},
	first_name TEXT NOT NULL DEFAULT '',
	last_name  TEXT NOT NULL DEFAULT '',
	email      TEXT NOT NULL DEFAULT '',
	phone      TEXT NOT NULL DEFAULT '',
	address    TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS animals (
	id       {{ID}},
	name     TEXT NOT NULL DEFAULT '',
	species  TEXT NOT NULL DEFAULT '',
	age      INTEGER NOT NULL DEFAULT 0,
	gender   TEXT NOT NULL DEFAULT '',
	owner_id BIGINT NULL
);

CREATE INDEX IF NOT EXISTS idx_animals_species ON animals (species);
CREATE INDEX IF NOT EXISTS idx_animals_owner_id ON animals (owner_id);

CREATE TABLE IF NOT EXISTS appointments (
	id                {{ID}},
	appointment_date  TEXT NOT NULL DEFAULT '',
	description       TEXT NOT NULL DEFAULT '',
	veterinarian_name TEXT NOT NULL DEFAULT '',
	status            TEXT NOT NULL DEFAULT '',
	animal_id         BIGINT NULL
);

CREATE INDEX IF NOT EXISTS idx_appointments_animal_id ON appointments (animal_id);
CREATE INDEX IF NOT EXISTS idx_appointments_vet_status ON appointments (veterinarian_name, status);
`

func schemaFor(dialect string) (string, error) {
	var id string
	switch dialect {
	case DialectPostgres:
		id = "BIGSERIAL PRIMARY KEY"
	case DialectSQLite:
		id = "INTEGER PRIMARY KEY AUTOINCREMENT"
	default:
		return "", fmt.Errorf("sqlstore: unsupported dialect %q", dialect)
	}
	return strings.ReplaceAll(schemaTemplate, "{{ID}}", id), nil
}

// EnsureSchema es idempotente (CREATE ... IF NOT EXISTS).
func EnsureSchema(ctx context.Context, db *sqlx.DB, dialect string) error {
	ddl, err := schemaFor(dialect)
	if err != nil {
		return err
	}
	for _, stmt := range strings.Split(ddl, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlstore schema: %w", err)
		}
	}
	return nil
}
