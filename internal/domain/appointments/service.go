package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vet-clinic/internal/domain/refs"
)

var (
	ErrNotFound = errors.New("appointment not found")
)

type AnimalLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo    Repository
	animals AnimalLookup
	policy  refs.Policy
}

// NewService: policy vacía equivale a refs.Unchecked (se guarda el id sin mirar).
func NewService(repo Repository, animals AnimalLookup, policy refs.Policy) *Service {
	if policy == "" {
		policy = refs.Unchecked
	}
	return &Service{
		repo:    repo,
		animals: animals,
		policy:  policy,
	}
}

// Input reemplaza todos los campos, incluida la referencia al animal
// (AnimalID nil la limpia).
type Input struct {
	Date             string
	Description      string
	VeterinarianName string
	Status           string
	AnimalID         *int64
}

func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (Appointment, error) {
	a, err := s.build(ctx, 0, in)
	if err != nil {
		return Appointment{}, err
	}

	out, err := s.repo.Create(ctx, a)
	if err != nil {
		return Appointment{}, fmt.Errorf("create appointment: %w", err)
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Appointment, error) {
	// 404 antes que 422 si además la referencia es mala.
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return Appointment{}, err
	}

	a, err := s.build(ctx, id, in)
	if err != nil {
		return Appointment{}, err
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) build(ctx context.Context, id int64, in Input) (Appointment, error) {
	animalID, err := refs.Resolve(ctx, s.policy, "animal", in.AnimalID, s.animals.Exists)
	if err != nil {
		return Appointment{}, err
	}
	return Appointment{
		ID:               id,
		Date:             in.Date,
		Description:      in.Description,
		VeterinarianName: in.VeterinarianName,
		Status:           in.Status,
		AnimalID:         animalID,
	}, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ByAnimal(ctx context.Context, animalID int64) ([]Appointment, error) {
	return s.repo.Find(ctx, Filter{AnimalID: &animalID})
}

// Search: veterinario y estado exactos, combinados con AND; sin filtros => todo.
func (s *Service) Search(ctx context.Context, veterinarian, status *string) ([]Appointment, error) {
	veterinarian = blankToNil(veterinarian)
	status = blankToNil(status)

	if veterinarian == nil && status == nil {
		return s.repo.List(ctx)
	}
	return s.repo.Find(ctx, Filter{VeterinarianName: veterinarian, Status: status})
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
