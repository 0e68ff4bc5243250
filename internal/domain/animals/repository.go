package animals

import "context"

// Filter: campos nil no filtran. Species es match exacto.
type Filter struct {
	Species *string
	OwnerID *int64
}

type Repository interface {
	// Create asigna el ID y devuelve el registro guardado.
	Create(ctx context.Context, a Animal) (Animal, error)
	// Update devuelve ErrNotFound si el id no existe (nunca inserta).
	Update(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id int64) (Animal, error)
	List(ctx context.Context) ([]Animal, error)
	// Delete es idempotente.
	Delete(ctx context.Context, id int64) error
	// Find aplica los filtros no nil con AND.
	Find(ctx context.Context, f Filter) ([]Animal, error)
}
