// Package storagetest tiene los casos comunes que todo backend de storage
// debe pasar (memory y sqlstore corren la misma batería).
package storagetest

import (
	"context"
	"errors"
	"testing"

	"vet-clinic/internal/domain/animals"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/owners"
)

func ptr[T any](v T) *T { return &v }

func Owners(t *testing.T, repo owners.Repository) {
	t.Helper()
	ctx := context.Background()

	ann, err := repo.Create(ctx, owners.Owner{FirstName: "Ann", LastName: "Lee", Email: "ann@x.com"})
	if err != nil {
		t.Fatalf("create owner: %v", err)
	}
	bob, err := repo.Create(ctx, owners.Owner{FirstName: "Bob", LastName: "Banner", Email: "bob_100%@y.io"})
	if err != nil {
		t.Fatalf("create owner: %v", err)
	}
	if ann.ID == 0 || bob.ID <= ann.ID {
		t.Fatalf("expected increasing ids, got %d then %d", ann.ID, bob.ID)
	}

	got, err := repo.GetByID(ctx, ann.ID)
	if err != nil {
		t.Fatalf("get owner: %v", err)
	}
	if got != ann {
		t.Fatalf("round trip mismatch: want %#v got %#v", ann, got)
	}

	t.Run("search", func(t *testing.T) {
		cases := []struct {
			query string
			want  int
		}{
			{"ann", 1},
			{"LEE", 1},
			{"@", 2},
			{"100%", 1},
			{"_", 1},
			{"zzz", 0},
		}
		for _, tc := range cases {
			res, err := repo.Search(ctx, tc.query)
			if err != nil {
				t.Fatalf("search %q: %v", tc.query, err)
			}
			if len(res) != tc.want {
				t.Fatalf("search %q: expected %d, got %d", tc.query, tc.want, len(res))
			}
		}
	})

	t.Run("search folds non-ascii case", func(t *testing.T) {
		angel, err := repo.Create(ctx, owners.Owner{FirstName: "Ángel", LastName: "Muñoz"})
		if err != nil {
			t.Fatalf("create owner: %v", err)
		}
		defer func() { _ = repo.Delete(ctx, angel.ID) }()

		for _, q := range []string{"ángel", "ÁNGEL", "MUÑOZ", "uñ"} {
			res, err := repo.Search(ctx, q)
			if err != nil {
				t.Fatalf("search %q: %v", q, err)
			}
			if len(res) != 1 || res[0].ID != angel.ID {
				t.Fatalf("search %q: expected only Ángel, got %#v", q, res)
			}
		}
	})

	t.Run("update replaces, never inserts", func(t *testing.T) {
		upd := owners.Owner{ID: ann.ID, FirstName: "Anna"}
		if err := repo.Update(ctx, upd); err != nil {
			t.Fatalf("update: %v", err)
		}
		got, _ := repo.GetByID(ctx, ann.ID)
		if got != upd {
			t.Fatalf("expected %#v, got %#v", upd, got)
		}

		err := repo.Update(ctx, owners.Owner{ID: 9999, FirstName: "Ghost"})
		if !errors.Is(err, owners.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if _, err := repo.GetByID(ctx, 9999); !errors.Is(err, owners.ErrNotFound) {
			t.Fatalf("update must not insert, got %v", err)
		}
	})

	t.Run("list and delete", func(t *testing.T) {
		all, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(all) != 2 || all[0].ID != ann.ID || all[1].ID != bob.ID {
			t.Fatalf("expected [ann bob] ordered by id, got %#v", all)
		}

		for i := 0; i < 2; i++ {
			if err := repo.Delete(ctx, bob.ID); err != nil {
				t.Fatalf("delete #%d: %v", i+1, err)
			}
		}
		all, _ = repo.List(ctx)
		if len(all) != 1 {
			t.Fatalf("expected 1 owner after delete, got %d", len(all))
		}
	})
}

func Animals(t *testing.T, repo animals.Repository) {
	t.Helper()
	ctx := context.Background()

	rex, err := repo.Create(ctx, animals.Animal{Name: "Rex", Species: "dog", Age: 3, Gender: "M", OwnerID: ptr(int64(1))})
	if err != nil {
		t.Fatalf("create animal: %v", err)
	}
	tom, _ := repo.Create(ctx, animals.Animal{Name: "Tom", Species: "cat", OwnerID: ptr(int64(1))})
	stray, _ := repo.Create(ctx, animals.Animal{Name: "Stray", Species: "dog"})

	got, err := repo.GetByID(ctx, rex.ID)
	if err != nil {
		t.Fatalf("get animal: %v", err)
	}
	if got.Name != "Rex" || got.Age != 3 || got.OwnerID == nil || *got.OwnerID != 1 {
		t.Fatalf("round trip mismatch: %#v", got)
	}

	t.Run("find", func(t *testing.T) {
		cases := []struct {
			name string
			f    animals.Filter
			want []int64
		}{
			{"none", animals.Filter{}, []int64{rex.ID, tom.ID, stray.ID}},
			{"species", animals.Filter{Species: ptr("dog")}, []int64{rex.ID, stray.ID}},
			{"species exact", animals.Filter{Species: ptr("Dog")}, nil},
			{"owner", animals.Filter{OwnerID: ptr(int64(1))}, []int64{rex.ID, tom.ID}},
			{"both", animals.Filter{Species: ptr("dog"), OwnerID: ptr(int64(1))}, []int64{rex.ID}},
		}
		for _, tc := range cases {
			res, err := repo.Find(ctx, tc.f)
			if err != nil {
				t.Fatalf("%s: %v", tc.name, err)
			}
			if len(res) != len(tc.want) {
				t.Fatalf("%s: expected %d, got %d", tc.name, len(tc.want), len(res))
			}
			for i := range res {
				if res[i].ID != tc.want[i] {
					t.Fatalf("%s: expected ids %v, got %#v", tc.name, tc.want, res)
				}
			}
		}
	})

	t.Run("update clears owner", func(t *testing.T) {
		upd := animals.Animal{ID: rex.ID, Name: "Rex", Species: "dog", Age: 4}
		if err := repo.Update(ctx, upd); err != nil {
			t.Fatalf("update: %v", err)
		}
		got, _ := repo.GetByID(ctx, rex.ID)
		if got.OwnerID != nil || got.Age != 4 {
			t.Fatalf("expected owner cleared and age 4, got %#v", got)
		}

		if err := repo.Update(ctx, animals.Animal{ID: 9999}); !errors.Is(err, animals.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("delete idempotent", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			if err := repo.Delete(ctx, tom.ID); err != nil {
				t.Fatalf("delete #%d: %v", i+1, err)
			}
		}
		if _, err := repo.GetByID(ctx, tom.ID); !errors.Is(err, animals.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func Appointments(t *testing.T, repo appointments.Repository) {
	t.Helper()
	ctx := context.Background()

	a1, err := repo.Create(ctx, appointments.Appointment{
		Date: "2024-05-01", Description: "checkup", VeterinarianName: "Dr. House",
		Status: appointments.StatusScheduled, AnimalID: ptr(int64(1)),
	})
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	a2, _ := repo.Create(ctx, appointments.Appointment{VeterinarianName: "Dr. House", Status: appointments.StatusCompleted, AnimalID: ptr(int64(2))})
	a3, _ := repo.Create(ctx, appointments.Appointment{VeterinarianName: "Dr. Who", Status: appointments.StatusScheduled})

	got, err := repo.GetByID(ctx, a1.ID)
	if err != nil {
		t.Fatalf("get appointment: %v", err)
	}
	if got.Date != "2024-05-01" || got.AnimalID == nil || *got.AnimalID != 1 {
		t.Fatalf("round trip mismatch: %#v", got)
	}

	t.Run("find", func(t *testing.T) {
		cases := []struct {
			name string
			f    appointments.Filter
			want int
		}{
			{"none", appointments.Filter{}, 3},
			{"vet", appointments.Filter{VeterinarianName: ptr("Dr. House")}, 2},
			{"status", appointments.Filter{Status: ptr(appointments.StatusScheduled)}, 2},
			{"both", appointments.Filter{VeterinarianName: ptr("Dr. House"), Status: ptr(appointments.StatusScheduled)}, 1},
			{"animal", appointments.Filter{AnimalID: ptr(int64(2))}, 1},
		}
		for _, tc := range cases {
			res, err := repo.Find(ctx, tc.f)
			if err != nil {
				t.Fatalf("%s: %v", tc.name, err)
			}
			if len(res) != tc.want {
				t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, len(res))
			}
		}
	})

	t.Run("update overwrites animal", func(t *testing.T) {
		upd := appointments.Appointment{ID: a2.ID, VeterinarianName: "Dr. House", Status: appointments.StatusCancelled}
		if err := repo.Update(ctx, upd); err != nil {
			t.Fatalf("update: %v", err)
		}
		got, _ := repo.GetByID(ctx, a2.ID)
		if got.AnimalID != nil || got.Status != appointments.StatusCancelled {
			t.Fatalf("unexpected appointment after update: %#v", got)
		}
		if err := repo.Update(ctx, appointments.Appointment{ID: 9999}); !errors.Is(err, appointments.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("delete missing leaves store unchanged", func(t *testing.T) {
		if err := repo.Delete(ctx, 9999); err != nil {
			t.Fatalf("delete missing: %v", err)
		}
		all, _ := repo.List(ctx)
		if len(all) != 3 || all[2].ID != a3.ID {
			t.Fatalf("expected 3 appointments ordered by id, got %#v", all)
		}
	})
}
