package animals

import (
	"context"
	"errors"
	"sort"
	"testing"

	"vet-clinic/internal/domain/refs"
)

// -------------------------
// Test repo + owners fake
// -------------------------

type testRepo struct {
	next int64
	byID map[int64]Animal
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Animal{}}
}

func (r *testRepo) Create(ctx context.Context, a Animal) (Animal, error) {
	r.next++
	a.ID = r.next
	r.byID[a.ID] = a
	return a, nil
}

func (r *testRepo) Update(ctx context.Context, a Animal) error {
	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return Animal{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context) ([]Animal, error) {
	out := make([]Animal, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

func (r *testRepo) Find(ctx context.Context, f Filter) ([]Animal, error) {
	all, _ := r.List(ctx)
	out := make([]Animal, 0)
	for _, a := range all {
		if f.Species != nil && a.Species != *f.Species {
			continue
		}
		if f.OwnerID != nil && (a.OwnerID == nil || *a.OwnerID != *f.OwnerID) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type fakeOwners map[int64]bool

func (f fakeOwners) Exists(_ context.Context, id int64) (bool, error) {
	return f[id], nil
}

func ptr[T any](v T) *T { return &v }

// -------------------------
// Tests
// -------------------------

func TestService_Create_ResolvesOwner(t *testing.T) {
	svc := NewService(newTestRepo(), fakeOwners{7: true}, refs.Drop)
	ctx := context.Background()

	a, err := svc.Create(ctx, Input{Name: "Rex", Species: "Dog", Owner: SetOwner(7)})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if a.OwnerID == nil || *a.OwnerID != 7 {
		t.Fatalf("expected owner 7, got %v", a.OwnerID)
	}

	got, _ := svc.Get(ctx, a.ID)
	if got.Name != "Rex" || got.OwnerID == nil || *got.OwnerID != 7 {
		t.Fatalf("unexpected stored animal %#v", got)
	}
}

func TestService_Create_UnknownOwner_ByPolicy(t *testing.T) {
	ctx := context.Background()

	t.Run("drop stores without owner", func(t *testing.T) {
		svc := NewService(newTestRepo(), fakeOwners{}, refs.Drop)
		a, err := svc.Create(ctx, Input{Name: "Rex", Owner: SetOwner(99)})
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}
		if a.OwnerID != nil {
			t.Fatalf("expected no owner, got %d", *a.OwnerID)
		}
	})

	t.Run("strict rejects", func(t *testing.T) {
		repo := newTestRepo()
		svc := NewService(repo, fakeOwners{}, refs.Strict)
		_, err := svc.Create(ctx, Input{Name: "Rex", Owner: SetOwner(99)})
		if !errors.Is(err, refs.ErrDanglingReference) {
			t.Fatalf("expected ErrDanglingReference, got %v", err)
		}
		if len(repo.byID) != 0 {
			t.Fatalf("expected nothing stored")
		}
	})

	t.Run("unchecked keeps id", func(t *testing.T) {
		svc := NewService(newTestRepo(), fakeOwners{}, refs.Unchecked)
		a, err := svc.Create(ctx, Input{Name: "Rex", Owner: SetOwner(99)})
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}
		if a.OwnerID == nil || *a.OwnerID != 99 {
			t.Fatalf("expected owner 99 kept, got %v", a.OwnerID)
		}
	})
}

func TestService_Update_OwnerChange(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name   string
		change OwnerChange
		want   *int64
	}{
		{"keep", KeepOwner(), ptr(int64(1))},
		{"clear", ClearOwner(), nil},
		{"set", SetOwner(2), ptr(int64(2))},
		{"set unknown drops", SetOwner(3), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(newTestRepo(), fakeOwners{1: true, 2: true}, refs.Drop)
			a, _ := svc.Create(ctx, Input{Name: "Rex", Species: "Dog", Age: 3, Owner: SetOwner(1)})

			got, err := svc.Update(ctx, a.ID, Input{Name: "Rex II", Species: "Dog", Age: 4, Owner: tc.change})
			if err != nil {
				t.Fatalf("Update error: %v", err)
			}
			if got.Name != "Rex II" || got.Age != 4 {
				t.Fatalf("expected fields replaced, got %#v", got)
			}
			switch {
			case tc.want == nil && got.OwnerID != nil:
				t.Fatalf("expected no owner, got %d", *got.OwnerID)
			case tc.want != nil && (got.OwnerID == nil || *got.OwnerID != *tc.want):
				t.Fatalf("expected owner %d, got %v", *tc.want, got.OwnerID)
			}
		})
	}
}

func TestService_Update_Missing(t *testing.T) {
	svc := NewService(newTestRepo(), fakeOwners{}, refs.Drop)

	_, err := svc.Update(context.Background(), 42, Input{Name: "Ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Search(t *testing.T) {
	svc := NewService(newTestRepo(), fakeOwners{1: true, 2: true}, refs.Drop)
	ctx := context.Background()

	_, _ = svc.Create(ctx, Input{Name: "Rex", Species: "Dog", Owner: SetOwner(1)})
	_, _ = svc.Create(ctx, Input{Name: "Tom", Species: "Cat", Owner: SetOwner(1)})
	_, _ = svc.Create(ctx, Input{Name: "Fido", Species: "Dog", Owner: SetOwner(2)})
	_, _ = svc.Create(ctx, Input{Name: "Stray", Species: "Dog"})

	cases := []struct {
		name    string
		species *string
		ownerID *int64
		want    int
	}{
		{"neither", nil, nil, 4},
		{"blank species is absent", ptr("  "), nil, 4},
		{"species only", ptr("Dog"), nil, 3},
		{"species is exact", ptr("dog"), nil, 0},
		{"owner only", nil, ptr(int64(1)), 2},
		{"both", ptr("Dog"), ptr(int64(1)), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Search(ctx, tc.species, tc.ownerID)
			if err != nil {
				t.Fatalf("Search error: %v", err)
			}
			if len(got) != tc.want {
				t.Fatalf("expected %d results, got %d", tc.want, len(got))
			}
		})
	}

	dogs, _ := svc.BySpecies(ctx, "Dog")
	if len(dogs) != 3 {
		t.Fatalf("expected 3 dogs, got %d", len(dogs))
	}
	mine, _ := svc.ByOwner(ctx, 2)
	if len(mine) != 1 || mine[0].Name != "Fido" {
		t.Fatalf("expected Fido for owner 2, got %#v", mine)
	}
}

func TestService_Delete_Idempotent(t *testing.T) {
	svc := NewService(newTestRepo(), fakeOwners{}, refs.Drop)
	ctx := context.Background()

	a, _ := svc.Create(ctx, Input{Name: "Rex"})
	for i := 0; i < 2; i++ {
		if err := svc.Delete(ctx, a.ID); err != nil {
			t.Fatalf("Delete #%d error: %v", i+1, err)
		}
	}
	ok, err := svc.Exists(ctx, a.ID)
	if err != nil || ok {
		t.Fatalf("expected animal gone, got ok=%v err=%v", ok, err)
	}
}
