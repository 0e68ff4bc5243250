package animals

import (
	"context"
	"errors"

	"vet-clinic/internal/domain/owners"
)

// OwnerReader resuelve el dueño para embeberlo en la respuesta.
type OwnerReader interface {
	Get(ctx context.Context, id int64) (owners.Owner, error)
}

// Response es la representación JSON de un animal. Owner es null si no tiene
// dueño y un stub {"id": N, ...vacío} si el id ya no existe.
type Response struct {
	ID      int64            `json:"id"`
	Name    string           `json:"name"`
	Species string           `json:"species"`
	Age     int              `json:"age"`
	Gender  string           `json:"gender"`
	Owner   *owners.Response `json:"owner"`
}

// Renderer arma Responses cacheando dueños dentro de un mismo request.
type Renderer struct {
	owners OwnerReader
	cache  map[int64]*owners.Response
}

func NewRenderer(or OwnerReader) *Renderer {
	return &Renderer{owners: or, cache: map[int64]*owners.Response{}}
}

func (rd *Renderer) Render(ctx context.Context, a Animal) (Response, error) {
	out := Response{
		ID:      a.ID,
		Name:    a.Name,
		Species: a.Species,
		Age:     a.Age,
		Gender:  a.Gender,
	}
	if a.OwnerID == nil {
		return out, nil
	}

	owner, err := rd.owner(ctx, *a.OwnerID)
	if err != nil {
		return Response{}, err
	}
	out.Owner = owner
	return out, nil
}

func (rd *Renderer) RenderAll(ctx context.Context, items []Animal) ([]Response, error) {
	out := make([]Response, 0, len(items))
	for _, a := range items {
		v, err := rd.Render(ctx, a)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (rd *Renderer) owner(ctx context.Context, id int64) (*owners.Response, error) {
	if v, ok := rd.cache[id]; ok {
		return v, nil
	}

	o, err := rd.owners.Get(ctx, id)
	var v owners.Response
	switch {
	case err == nil:
		v = owners.ToResponse(o)
	case errors.Is(err, owners.ErrNotFound):
		v = owners.Response{ID: id}
	default:
		return nil, err
	}

	rd.cache[id] = &v
	return &v, nil
}
