// Package refs resuelve referencias débiles entre entidades (Animal -> Owner,
// Appointment -> Animal). Una referencia es solo un id; nunca controla el
// ciclo de vida de la entidad referenciada.
package refs

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Policy decide qué hacer cuando una referencia no resuelve.
type Policy string

const (
	// Strict rechaza la escritura con ErrDanglingReference.
	Strict Policy = "strict"
	// Drop guarda la entidad sin referencia.
	Drop Policy = "drop"
	// Unchecked guarda el id tal cual, sin lookup.
	Unchecked Policy = "unchecked"
)

var (
	ErrDanglingReference = errors.New("dangling reference")
	ErrUnknownPolicy     = errors.New("unknown reference policy")
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case Strict, Drop, Unchecked:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// ExistsFunc responde si existe la entidad con ese id.
type ExistsFunc func(ctx context.Context, id int64) (bool, error)

// Resolve aplica la policy sobre id. nil entra, nil sale.
func Resolve(ctx context.Context, p Policy, kind string, id *int64, exists ExistsFunc) (*int64, error) {
	if id == nil {
		return nil, nil
	}
	if p == Unchecked {
		v := *id
		return &v, nil
	}

	ok, err := exists(ctx, *id)
	if err != nil {
		return nil, fmt.Errorf("resolve %s %d: %w", kind, *id, err)
	}
	if ok {
		v := *id
		return &v, nil
	}

	if p == Strict {
		return nil, fmt.Errorf("%w: %s %d does not exist", ErrDanglingReference, kind, *id)
	}
	return nil, nil
}
