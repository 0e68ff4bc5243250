package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"vet-clinic/internal/domain/animals"
)

type animalRow struct {
	ID      int64         `db:"id"`
	Name    string        `db:"name"`
	Species string        `db:"species"`
	Age     int           `db:"age"`
	Gender  string        `db:"gender"`
	OwnerID sql.NullInt64 `db:"owner_id"`
}

func animalRowFromModel(a animals.Animal) animalRow {
	return animalRow{
		ID:      a.ID,
		Name:    a.Name,
		Species: a.Species,
		Age:     a.Age,
		Gender:  a.Gender,
		OwnerID: nullID(a.OwnerID),
	}
}

func (r animalRow) toModel() animals.Animal {
	return animals.Animal{
		ID:      r.ID,
		Name:    r.Name,
		Species: r.Species,
		Age:     r.Age,
		Gender:  r.Gender,
		OwnerID: idPtr(r.OwnerID),
	}
}

const animalColumns = `id, name, species, age, gender, owner_id`

type AnimalsRepo struct {
	db *sqlx.DB
}

func NewAnimalsRepo(db *sqlx.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	const q = `INSERT INTO animals (name, species, age, gender, owner_id)
		VALUES (:name, :species, :age, :gender, :owner_id)
		RETURNING id`

	id, err := insertReturningID(ctx, r.db, q, animalRowFromModel(a))
	if err != nil {
		return animals.Animal{}, fmt.Errorf("insert animal: %w", err)
	}
	a.ID = id
	return a, nil
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	const q = `UPDATE animals SET
		name = :name, species = :species, age = :age, gender = :gender, owner_id = :owner_id
		WHERE id = :id`

	if err := updateByID(ctx, r.db, q, animalRowFromModel(a), animals.ErrNotFound); err != nil {
		return fmt.Errorf("update animal %d: %w", a.ID, err)
	}
	return nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id int64) (animals.Animal, error) {
	var row animalRow
	q := `SELECT ` + animalColumns + ` FROM animals WHERE id = ?`
	if err := getByID(ctx, r.db, &row, q, id, animals.ErrNotFound); err != nil {
		return animals.Animal{}, fmt.Errorf("get animal %d: %w", id, err)
	}
	return row.toModel(), nil
}

func (r *AnimalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	return r.Find(ctx, animals.Filter{})
}

func (r *AnimalsRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM animals WHERE id = ?`), id); err != nil {
		return fmt.Errorf("delete animal %d: %w", id, err)
	}
	return nil
}

func (r *AnimalsRepo) Find(ctx context.Context, f animals.Filter) ([]animals.Animal, error) {
	var w where
	if f.Species != nil {
		w.eq("species", *f.Species)
	}
	if f.OwnerID != nil {
		w.eq("owner_id", *f.OwnerID)
	}

	q := `SELECT ` + animalColumns + ` FROM animals` + w.String() + ` ORDER BY id`
	var rows []animalRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(q), w.args...); err != nil {
		return nil, fmt.Errorf("select animals: %w", err)
	}

	out := make([]animals.Animal, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}
