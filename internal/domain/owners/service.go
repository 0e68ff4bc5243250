package owners

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("owner not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Input son los campos editables. En Update reemplaza todo (campos omitidos quedan vacíos).
type Input struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}

func (in Input) toOwner(id int64) Owner {
	return Owner{
		ID:        id,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
	}
}

func (s *Service) List(ctx context.Context) ([]Owner, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Owner, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (Owner, error) {
	o, err := s.repo.Create(ctx, in.toOwner(0))
	if err != nil {
		return Owner{}, fmt.Errorf("create owner: %w", err)
	}
	return o, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Owner, error) {
	o := in.toOwner(id)
	if err := s.repo.Update(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Search con query en blanco equivale a List. Si no, la query va tal cual
// (los espacios cuentan para el substring).
func (s *Service) Search(ctx context.Context, query string) ([]Owner, error) {
	if strings.TrimSpace(query) == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, query)
}

// Exists se usa para resolver referencias Animal -> Owner.
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
