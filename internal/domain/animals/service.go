package animals

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vet-clinic/internal/domain/refs"
)

var (
	ErrNotFound = errors.New("animal not found")
)

// OwnerLookup es lo único que el servicio necesita saber de los dueños.
type OwnerLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo   Repository
	owners OwnerLookup
	policy refs.Policy
}

// NewService: policy vacía equivale a refs.Drop.
func NewService(repo Repository, owners OwnerLookup, policy refs.Policy) *Service {
	if policy == "" {
		policy = refs.Drop
	}
	return &Service{
		repo:   repo,
		owners: owners,
		policy: policy,
	}
}

type Input struct {
	Name    string
	Species string
	Age     int
	Gender  string
	Owner   OwnerChange
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Animal, error) {
	return s.repo.GetByID(ctx, id)
}

// Create: OwnerKeep no tiene nada que conservar, queda sin dueño.
func (s *Service) Create(ctx context.Context, in Input) (Animal, error) {
	ownerID, err := s.resolveOwner(ctx, in.Owner, nil)
	if err != nil {
		return Animal{}, err
	}

	a, err := s.repo.Create(ctx, Animal{
		Name:    in.Name,
		Species: in.Species,
		Age:     in.Age,
		Gender:  in.Gender,
		OwnerID: ownerID,
	})
	if err != nil {
		return Animal{}, fmt.Errorf("create animal: %w", err)
	}
	return a, nil
}

// Update reemplaza nombre, especie, edad y género. El dueño sigue in.Owner.
func (s *Service) Update(ctx context.Context, id int64, in Input) (Animal, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}

	ownerID, err := s.resolveOwner(ctx, in.Owner, current.OwnerID)
	if err != nil {
		return Animal{}, err
	}

	a := Animal{
		ID:      id,
		Name:    in.Name,
		Species: in.Species,
		Age:     in.Age,
		Gender:  in.Gender,
		OwnerID: ownerID,
	}
	// Si lo borraron entre el Get y el Update, el repo devuelve ErrNotFound.
	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) resolveOwner(ctx context.Context, ch OwnerChange, current *int64) (*int64, error) {
	switch ch.Kind {
	case OwnerKeep:
		return current, nil
	case OwnerSet:
		id := ch.OwnerID
		return refs.Resolve(ctx, s.policy, "owner", &id, s.owners.Exists)
	default:
		return nil, nil
	}
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// BySpecies es match exacto (sensible a mayúsculas).
func (s *Service) BySpecies(ctx context.Context, species string) ([]Animal, error) {
	return s.repo.Find(ctx, Filter{Species: &species})
}

func (s *Service) ByOwner(ctx context.Context, ownerID int64) ([]Animal, error) {
	return s.repo.Find(ctx, Filter{OwnerID: &ownerID})
}

// Search combina los filtros presentes con AND; sin filtros devuelve todo.
// Una especie en blanco cuenta como ausente.
func (s *Service) Search(ctx context.Context, species *string, ownerID *int64) ([]Animal, error) {
	if species != nil && strings.TrimSpace(*species) == "" {
		species = nil
	}
	if species == nil && ownerID == nil {
		return s.repo.List(ctx)
	}
	return s.repo.Find(ctx, Filter{Species: species, OwnerID: ownerID})
}

// Exists se usa para resolver referencias Appointment -> Animal.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.repo.GetByID(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
