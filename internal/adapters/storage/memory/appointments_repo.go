package memory

import (
	"context"
	"sort"
	"sync"

	"vet-clinic/internal/domain/appointments"
)

type appointmentRepo struct {
	mu   sync.RWMutex
	next int64
	byID map[int64]appointments.Appointment
}

func NewAppointmentRepo() appointments.Repository {
	return &appointmentRepo{
		byID: make(map[int64]appointments.Appointment),
	}
}

func (r *appointmentRepo) Create(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	a.ID = r.next
	a.AnimalID = copyID(a.AnimalID)
	r.byID[a.ID] = a
	return a, nil
}

func (r *appointmentRepo) Update(ctx context.Context, a appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return appointments.ErrNotFound
	}
	a.AnimalID = copyID(a.AnimalID)
	r.byID[a.ID] = a
	return nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	a.AnimalID = copyID(a.AnimalID)
	return a, nil
}

func (r *appointmentRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	return r.Find(ctx, appointments.Filter{})
}

func (r *appointmentRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *appointmentRepo) Find(ctx context.Context, f appointments.Filter) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]appointments.Appointment, 0)
	for _, a := range r.byID {
		if f.VeterinarianName != nil && a.VeterinarianName != *f.VeterinarianName {
			continue
		}
		if f.Status != nil && a.Status != *f.Status {
			continue
		}
		if f.AnimalID != nil && !sameID(a.AnimalID, *f.AnimalID) {
			continue
		}
		a.AnimalID = copyID(a.AnimalID)
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
