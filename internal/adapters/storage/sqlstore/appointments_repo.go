package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"vet-clinic/internal/domain/appointments"
)

type appointmentRow struct {
	ID               int64         `db:"id"`
	Date             string        `db:"appointment_date"`
	Description      string        `db:"description"`
	VeterinarianName string        `db:"veterinarian_name"`
	Status           string        `db:"status"`
	AnimalID         sql.NullInt64 `db:"animal_id"`
}

func appointmentRowFromModel(a appointments.Appointment) appointmentRow {
	return appointmentRow{
		ID:               a.ID,
		Date:             a.Date,
		Description:      a.Description,
		VeterinarianName: a.VeterinarianName,
		Status:           a.Status,
		AnimalID:         nullID(a.AnimalID),
	}
}

func (r appointmentRow) toModel() appointments.Appointment {
	return appointments.Appointment{
		ID:               r.ID,
		Date:             r.Date,
		Description:      r.Description,
		VeterinarianName: r.VeterinarianName,
		Status:           r.Status,
		AnimalID:         idPtr(r.AnimalID),
	}
}

const appointmentColumns = `id, appointment_date, description, veterinarian_name, status, animal_id`

type AppointmentsRepo struct {
	db *sqlx.DB
}

func NewAppointmentsRepo(db *sqlx.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	const q = `INSERT INTO appointments (appointment_date, description, veterinarian_name, status, animal_id)
		VALUES (:appointment_date, :description, :veterinarian_name, :status, :animal_id)
		RETURNING id`

	id, err := insertReturningID(ctx, r.db, q, appointmentRowFromModel(a))
	if err != nil {
		return appointments.Appointment{}, fmt.Errorf("insert appointment: %w", err)
	}
	a.ID = id
	return a, nil
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	const q = `UPDATE appointments SET
		appointment_date = :appointment_date, description = :description,
		veterinarian_name = :veterinarian_name, status = :status, animal_id = :animal_id
		WHERE id = :id`

	if err := updateByID(ctx, r.db, q, appointmentRowFromModel(a), appointments.ErrNotFound); err != nil {
		return fmt.Errorf("update appointment %d: %w", a.ID, err)
	}
	return nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	var row appointmentRow
	q := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = ?`
	if err := getByID(ctx, r.db, &row, q, id, appointments.ErrNotFound); err != nil {
		return appointments.Appointment{}, fmt.Errorf("get appointment %d: %w", id, err)
	}
	return row.toModel(), nil
}

func (r *AppointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	return r.Find(ctx, appointments.Filter{})
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM appointments WHERE id = ?`), id); err != nil {
		return fmt.Errorf("delete appointment %d: %w", id, err)
	}
	return nil
}

func (r *AppointmentsRepo) Find(ctx context.Context, f appointments.Filter) ([]appointments.Appointment, error) {
	var w where
	if f.VeterinarianName != nil {
		w.eq("veterinarian_name", *f.VeterinarianName)
	}
	if f.Status != nil {
		w.eq("status", *f.Status)
	}
	if f.AnimalID != nil {
		w.eq("animal_id", *f.AnimalID)
	}

	q := `SELECT ` + appointmentColumns + ` FROM appointments` + w.String() + ` ORDER BY id`
	var rows []appointmentRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(q), w.args...); err != nil {
		return nil, fmt.Errorf("select appointments: %w", err)
	}

	out := make([]appointments.Appointment, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}
