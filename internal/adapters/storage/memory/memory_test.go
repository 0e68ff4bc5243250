package memory

import (
	"context"
	"sync"
	"testing"

	"vet-clinic/internal/adapters/storage/storagetest"
	"vet-clinic/internal/domain/animals"
	"vet-clinic/internal/domain/owners"
)

func TestOwnerRepo(t *testing.T) {
	storagetest.Owners(t, NewOwnerRepo())
}

func TestAnimalRepo(t *testing.T) {
	storagetest.Animals(t, NewAnimalRepo())
}

func TestAppointmentRepo(t *testing.T) {
	storagetest.Appointments(t, NewAppointmentRepo())
}

func TestAnimalRepo_DoesNotShareOwnerPointer(t *testing.T) {
	repo := NewAnimalRepo()
	ctx := context.Background()

	owner := int64(1)
	a, _ := repo.Create(ctx, animals.Animal{Name: "Rex", OwnerID: &owner})
	owner = 2

	got, _ := repo.GetByID(ctx, a.ID)
	if *got.OwnerID != 1 {
		t.Fatalf("expected stored owner 1, got %d", *got.OwnerID)
	}
}

func TestOwnerRepo_ConcurrentCreate_UniqueIDs(t *testing.T) {
	repo := NewOwnerRepo()
	ctx := context.Background()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o, _ := repo.Create(ctx, owners.Owner{FirstName: "x"})
			ids <- o.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d ids, got %d", n, len(seen))
	}
}
