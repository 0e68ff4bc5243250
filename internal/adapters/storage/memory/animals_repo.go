package memory

import (
	"context"
	"sort"
	"sync"

	"vet-clinic/internal/domain/animals"
)

type animalRepo struct {
	mu   sync.RWMutex
	next int64
	byID map[int64]animals.Animal
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		byID: make(map[int64]animals.Animal),
	}
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	a.ID = r.next
	a.OwnerID = copyID(a.OwnerID)
	r.byID[a.ID] = a
	return a, nil
}

func (r *animalRepo) Update(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return animals.ErrNotFound
	}
	a.OwnerID = copyID(a.OwnerID)
	r.byID[a.ID] = a
	return nil
}

func (r *animalRepo) GetByID(ctx context.Context, id int64) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	a.OwnerID = copyID(a.OwnerID)
	return a, nil
}

func (r *animalRepo) List(ctx context.Context) ([]animals.Animal, error) {
	return r.Find(ctx, animals.Filter{})
}

func (r *animalRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *animalRepo) Find(ctx context.Context, f animals.Filter) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0)
	for _, a := range r.byID {
		if f.Species != nil && a.Species != *f.Species {
			continue
		}
		if f.OwnerID != nil && !sameID(a.OwnerID, *f.OwnerID) {
			continue
		}
		a.OwnerID = copyID(a.OwnerID)
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
