// Package storage defines the persistence interfaces consumed by the service
// layer, plus the sentinel errors handlers map to HTTP statuses.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/wolfplanner/wolf-planner-api/internal/models"
)

// ErrNotFound indicates a record does not exist or is not owned by the caller.
// The two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore holds identities for the local identity provider.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// ClienteStore persists clientes. Every read and write is scoped to the
// owning user; a mismatch surfaces as ErrNotFound.
type ClienteStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Cliente, error)
	GetOwned(ctx context.Context, clienteID, userID uuid.UUID) (models.Cliente, error)
	Create(ctx context.Context, cliente models.Cliente) (models.Cliente, error)
	UpdateOwned(ctx context.Context, clienteID, userID uuid.UUID, patch models.ClientePatch) (models.Cliente, error)
	DeleteOwned(ctx context.Context, clienteID, userID uuid.UUID) error
	OwnedByUser(ctx context.Context, clienteID, userID uuid.UUID) (bool, error)
}

// ObjetivoStore persists objetivos. Ownership is one join hop away (objetivo →
// cliente → user); writes are conditional on that chain.
type ObjetivoStore interface {
	ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]models.Objetivo, error)
	Create(ctx context.Context, objetivo models.Objetivo) (models.Objetivo, error)
	UpdateOwned(ctx context.Context, objetivoID, userID uuid.UUID, patch models.ObjetivoPatch) (models.Objetivo, error)
	DeleteOwned(ctx context.Context, objetivoID, userID uuid.UUID) error
	OwnedByUser(ctx context.Context, objetivoID, userID uuid.UUID) (bool, error)
}

// InvestimentoStore persists investimentos. Ownership is two join hops away
// (investimento → objetivo → cliente → user).
type InvestimentoStore interface {
	ListByObjetivo(ctx context.Context, objetivoID uuid.UUID) ([]models.Investimento, error)
	Create(ctx context.Context, investimento models.Investimento) (models.Investimento, error)
	UpdateOwned(ctx context.Context, investimentoID, userID uuid.UUID, patch models.InvestimentoPatch) (models.Investimento, error)
	DeleteOwned(ctx context.Context, investimentoID, userID uuid.UUID) error
	OwnedByUser(ctx context.Context, investimentoID, userID uuid.UUID) (bool, error)
}
