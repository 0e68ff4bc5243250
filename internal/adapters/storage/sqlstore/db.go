// Package sqlstore implementa los repositorios sobre database/sql vía sqlx.
// El mismo SQL corre en Postgres (pgx) y SQLite (modernc); las diferencias de
// dialecto se limitan al DDL y a los placeholders (db.Rebind).
package sqlstore

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

type Config struct {
	Dialect      string
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

func driverName(dialect string) (string, error) {
	switch dialect {
	case DialectPostgres:
		return "pgx", nil
	case DialectSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("sqlstore: unsupported dialect %q", dialect)
	}
}

var (
	registerLowerOnce sync.Once
	registerLowerErr  error
)

// registerUnicodeLower reemplaza lower() de SQLite (solo ASCII) por
// strings.ToLower, igual que LOWER() en Postgres con UTF-8. Aplica a las
// conexiones abiertas después del registro.
func registerUnicodeLower() error {
	registerLowerOnce.Do(func() {
		registerLowerErr = sqlite.RegisterDeterministicScalarFunction("lower", 1,
			func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
				switch v := args[0].(type) {
				case string:
					return strings.ToLower(v), nil
				case []byte:
					return strings.ToLower(string(v)), nil
				default:
					return v, nil
				}
			})
	})
	return registerLowerErr
}

// Open conecta, ajusta el pool y crea el schema si falta.
func Open(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	drv, err := driverName(cfg.Dialect)
	if err != nil {
		return nil, err
	}
	if cfg.Dialect == DialectSQLite {
		if err := registerUnicodeLower(); err != nil {
			return nil, fmt.Errorf("sqlstore register lower: %w", err)
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	db, err := sqlx.ConnectContext(pingCtx, drv, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("sqlstore connect (%s): %w", cfg.Dialect, err)
	}

	if cfg.Dialect == DialectSQLite {
		// SQLite no soporta escrituras concurrentes; además una sola conexión
		// mantiene viva una base :memory:.
		db.SetMaxOpenConns(1)
		for _, pragma := range []string{
			"PRAGMA busy_timeout = 5000",
			"PRAGMA journal_mode = WAL",
		} {
			if _, err := db.ExecContext(ctx, pragma); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("sqlstore %s: %w", pragma, err)
			}
		}
	} else {
		db.SetMaxOpenConns(orDefault(cfg.MaxOpenConns, 10))
		db.SetMaxIdleConns(orDefault(cfg.MaxIdleConns, 5))
		db.SetConnMaxIdleTime(5 * time.Minute)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := EnsureSchema(ctx, db, cfg.Dialect); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
