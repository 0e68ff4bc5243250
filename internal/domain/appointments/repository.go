package appointments

import "context"

// Filter: campos nil no filtran. Ambos son match exacto.
type Filter struct {
	VeterinarianName *string
	Status           *string
	AnimalID         *int64
}

type Repository interface {
	Create(ctx context.Context, a Appointment) (Appointment, error)
	// Update devuelve ErrNotFound si el id no existe (nunca inserta).
	Update(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id int64) (Appointment, error)
	List(ctx context.Context) ([]Appointment, error)
	// Delete es idempotente.
	Delete(ctx context.Context, id int64) error
	Find(ctx context.Context, f Filter) ([]Appointment, error)
}
