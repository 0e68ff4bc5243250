package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"vet-clinic/internal/domain/owners"
)

type ownerRow struct {
	ID        int64  `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	Address   string `db:"address"`
}

func ownerRowFromModel(o owners.Owner) ownerRow {
	return ownerRow{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Email:     o.Email,
		Phone:     o.Phone,
		Address:   o.Address,
	}
}

func (r ownerRow) toModel() owners.Owner {
	return owners.Owner{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
	}
}

const ownerColumns = `id, first_name, last_name, email, phone, address`

type OwnersRepo struct {
	db *sqlx.DB
}

func NewOwnersRepo(db *sqlx.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	const q = `INSERT INTO owners (first_name, last_name, email, phone, address)
		VALUES (:first_name, :last_name, :email, :phone, :address)
		RETURNING id`

	id, err := insertReturningID(ctx, r.db, q, ownerRowFromModel(o))
	if err != nil {
		return owners.Owner{}, fmt.Errorf("insert owner: %w", err)
	}
	o.ID = id
	return o, nil
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) error {
	const q = `UPDATE owners SET
		first_name = :first_name, last_name = :last_name, email = :email,
		phone = :phone, address = :address
		WHERE id = :id`

	if err := updateByID(ctx, r.db, q, ownerRowFromModel(o), owners.ErrNotFound); err != nil {
		return fmt.Errorf("update owner %d: %w", o.ID, err)
	}
	return nil
}

func (r *OwnersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	var row ownerRow
	q := `SELECT ` + ownerColumns + ` FROM owners WHERE id = ?`
	if err := getByID(ctx, r.db, &row, q, id, owners.ErrNotFound); err != nil {
		return owners.Owner{}, fmt.Errorf("get owner %d: %w", id, err)
	}
	return row.toModel(), nil
}

func (r *OwnersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	return r.selectOwners(ctx, `SELECT `+ownerColumns+` FROM owners ORDER BY id`)
}

func (r *OwnersRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM owners WHERE id = ?`), id); err != nil {
		return fmt.Errorf("delete owner %d: %w", id, err)
	}
	return nil
}

func (r *OwnersRepo) Search(ctx context.Context, query string) ([]owners.Owner, error) {
	p := likePattern(query)
	return r.selectOwners(ctx, `SELECT `+ownerColumns+` FROM owners
		WHERE LOWER(first_name) LIKE ? ESCAPE '\'
		   OR LOWER(last_name) LIKE ? ESCAPE '\'
		   OR LOWER(email) LIKE ? ESCAPE '\'
		ORDER BY id`, p, p, p)
}

func (r *OwnersRepo) selectOwners(ctx context.Context, q string, args ...any) ([]owners.Owner, error) {
	var rows []ownerRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("select owners: %w", err)
	}

	out := make([]owners.Owner, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}
