package owners

import "context"

type Repository interface {
	// Create asigna el ID y devuelve el registro guardado.
	Create(ctx context.Context, o Owner) (Owner, error)
	// Update devuelve ErrNotFound si el id no existe (nunca inserta).
	Update(ctx context.Context, o Owner) error
	GetByID(ctx context.Context, id int64) (Owner, error)
	List(ctx context.Context) ([]Owner, error)
	// Delete es idempotente.
	Delete(ctx context.Context, id int64) error
	// Search: substring case-insensitive en first name, last name o email.
	Search(ctx context.Context, query string) ([]Owner, error)
}
