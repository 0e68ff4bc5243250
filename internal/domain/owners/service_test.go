package owners

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	next int64
	byID map[int64]Owner
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Owner{}}
}

func (r *testRepo) Create(ctx context.Context, o Owner) (Owner, error) {
	r.next++
	o.ID = r.next
	r.byID[o.ID] = o
	return o, nil
}

func (r *testRepo) Update(ctx context.Context, o Owner) error {
	if _, ok := r.byID[o.ID]; !ok {
		return ErrNotFound
	}
	r.byID[o.ID] = o
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Owner, error) {
	o, ok := r.byID[id]
	if !ok {
		return Owner{}, ErrNotFound
	}
	return o, nil
}

func (r *testRepo) List(ctx context.Context) ([]Owner, error) {
	out := make([]Owner, 0, len(r.byID))
	for _, o := range r.byID {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

func (r *testRepo) Search(ctx context.Context, query string) ([]Owner, error) {
	all, _ := r.List(ctx)
	q := strings.ToLower(query)
	out := make([]Owner, 0)
	for _, o := range all {
		if strings.Contains(strings.ToLower(o.FirstName), q) ||
			strings.Contains(strings.ToLower(o.LastName), q) ||
			strings.Contains(strings.ToLower(o.Email), q) {
			out = append(out, o)
		}
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_AssignsID_AllowsEmptyFields(t *testing.T) {
	svc := NewService(newTestRepo())

	o, err := svc.Create(context.Background(), Input{})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if o.ID == 0 {
		t.Fatalf("expected an assigned id")
	}
	if o.FirstName != "" || o.Email != "" {
		t.Fatalf("expected empty fields to be kept as empty, got %#v", o)
	}
}

func TestService_Update_ReplacesAllFields(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	o, _ := svc.Create(ctx, Input{FirstName: "Ann", LastName: "Lee", Email: "ann@x.io", Phone: "555"})

	got, err := svc.Update(ctx, o.ID, Input{FirstName: "Anna"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if got.FirstName != "Anna" || got.LastName != "" || got.Phone != "" {
		t.Fatalf("expected full replacement, got %#v", got)
	}

	stored, _ := svc.Get(ctx, o.ID)
	if stored != got {
		t.Fatalf("expected stored owner %#v, got %#v", got, stored)
	}
}

func TestService_Update_UnknownID_NeverInserts(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	_, err := svc.Update(ctx, 99, Input{FirstName: "Ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	items, _ := svc.List(ctx)
	if len(items) != 0 {
		t.Fatalf("expected no owners, got %d", len(items))
	}
}

func TestService_Delete_Idempotent(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	o, _ := svc.Create(ctx, Input{FirstName: "Ann"})
	if err := svc.Delete(ctx, o.ID); err != nil {
		t.Fatalf("Delete #1 error: %v", err)
	}
	if err := svc.Delete(ctx, o.ID); err != nil {
		t.Fatalf("Delete #2 error: %v", err)
	}
	if _, err := svc.Get(ctx, o.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestService_Search(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	_, _ = svc.Create(ctx, Input{FirstName: "Ann", LastName: "Lee", Email: "ann@x.io"})
	_, _ = svc.Create(ctx, Input{FirstName: "Bob", LastName: "Banner", Email: "bob@y.io"})
	_, _ = svc.Create(ctx, Input{FirstName: "Mary Ann", LastName: "Smith", Email: "mary@z.io"})

	cases := []struct {
		name  string
		query string
		want  int
	}{
		{"blank lists all", "   ", 3},
		{"empty lists all", "", 3},
		{"case-insensitive first name", "ANN", 2},
		{"email substring", "@y.io", 1},
		{"spaces are part of the query", " ann", 1},
		{"trailing space does not match end of field", "lee ", 0},
		{"no match", "zzz", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Search(ctx, tc.query)
			if err != nil {
				t.Fatalf("Search error: %v", err)
			}
			if len(got) != tc.want {
				t.Fatalf("expected %d results, got %d", tc.want, len(got))
			}
		})
	}
}

func TestService_Exists(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	o, _ := svc.Create(ctx, Input{FirstName: "Ann"})

	ok, err := svc.Exists(ctx, o.ID)
	if err != nil || !ok {
		t.Fatalf("expected owner to exist, got ok=%v err=%v", ok, err)
	}
	ok, err = svc.Exists(ctx, o.ID+1)
	if err != nil || ok {
		t.Fatalf("expected owner to be missing, got ok=%v err=%v", ok, err)
	}
}
