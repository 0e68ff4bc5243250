package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"vet-clinic/internal/domain/owners"
)

type ownerRepo struct {
	mu   sync.RWMutex
	next int64
	byID map[int64]owners.Owner
}

func NewOwnerRepo() owners.Repository {
	return &ownerRepo{
		byID: make(map[int64]owners.Owner),
	}
}

func (r *ownerRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	o.ID = r.next
	r.byID[o.ID] = o
	return o, nil
}

func (r *ownerRepo) Update(ctx context.Context, o owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[o.ID]; !exists {
		return owners.ErrNotFound
	}
	r.byID[o.ID] = o
	return nil
}

func (r *ownerRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, nil
}

func (r *ownerRepo) List(ctx context.Context) ([]owners.Owner, error) {
	return r.filter(func(owners.Owner) bool { return true }), nil
}

func (r *ownerRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *ownerRepo) Search(ctx context.Context, query string) ([]owners.Owner, error) {
	q := strings.ToLower(query)
	return r.filter(func(o owners.Owner) bool {
		return strings.Contains(strings.ToLower(o.FirstName), q) ||
			strings.Contains(strings.ToLower(o.LastName), q) ||
			strings.Contains(strings.ToLower(o.Email), q)
	}), nil
}

// filter devuelve copias ordenadas por id asc (mismo orden que el store SQL).
func (r *ownerRepo) filter(keep func(owners.Owner) bool) []owners.Owner {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]owners.Owner, 0)
	for _, o := range r.byID {
		if keep(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
