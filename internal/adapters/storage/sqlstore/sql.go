package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// insertReturningID ejecuta un INSERT con parámetros nombrados y
// "RETURNING id" (Postgres y SQLite >= 3.35 lo soportan).
func insertReturningID(ctx context.Context, db *sqlx.DB, q string, arg any) (int64, error) {
	query, args, err := sqlx.Named(q, arg)
	if err != nil {
		return 0, err
	}

	var id int64
	if err := db.QueryRowxContext(ctx, db.Rebind(query), args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// updateByID devuelve notFound si el UPDATE no tocó filas: nunca inserta.
func updateByID(ctx context.Context, db *sqlx.DB, q string, arg any, notFound error) error {
	res, err := db.NamedExecContext(ctx, q, arg)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func getByID(ctx context.Context, db *sqlx.DB, dst any, q string, id int64, notFound error) error {
	if err := db.GetContext(ctx, dst, db.Rebind(q), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFound
		}
		return err
	}
	return nil
}

// where arma "WHERE a = ? AND b = ?" con las condiciones presentes.
type where struct {
	conds []string
	args  []any
}

func (w *where) eq(col string, v any) {
	w.conds = append(w.conds, col+" = ?")
	w.args = append(w.args, v)
}

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func nullID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func idPtr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

// likePattern escapa %, _ y \ para un LIKE ... ESCAPE '\' de substring.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(s)) + "%"
}
