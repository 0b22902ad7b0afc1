// Package service implements the application services: the ownership
// resolver plus CRUD and aggregation over clientes, objetivos, and
// investimentos.
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/wolfplanner/wolf-planner-api/internal/storage"
)

// Resolver answers whether a user owns a resource, possibly through
// intermediate hops of the cliente → objetivo → investimento chain. Each check
// is one read-only query. "Absent" and "present but owned by someone else"
// both come back as storage.ErrNotFound, so identifiers cannot be enumerated.
type Resolver struct {
	clientes      storage.ClienteStore
	objetivos     storage.ObjetivoStore
	investimentos storage.InvestimentoStore
}

// NewResolver constructs a resolver over the three stores.
func NewResolver(clientes storage.ClienteStore, objetivos storage.ObjetivoStore, investimentos storage.InvestimentoStore) *Resolver {
	return &Resolver{clientes: clientes, objetivos: objetivos, investimentos: investimentos}
}

// VerifyCliente confirms the cliente belongs to the user.
func (r *Resolver) VerifyCliente(ctx context.Context, userID, clienteID uuid.UUID) error {
	owned, err := r.clientes.OwnedByUser(ctx, clienteID, userID)
	if err != nil {
		return err
	}
	if !owned {
		return storage.ErrNotFound
	}
	return nil
}

// VerifyObjetivo confirms the objetivo's cliente belongs to the user.
func (r *Resolver) VerifyObjetivo(ctx context.Context, userID, objetivoID uuid.UUID) error {
	owned, err := r.objetivos.OwnedByUser(ctx, objetivoID, userID)
	if err != nil {
		return err
	}
	if !owned {
		return storage.ErrNotFound
	}
	return nil
}

// VerifyInvestimento confirms the investimento's objetivo's cliente belongs to
// the user.
func (r *Resolver) VerifyInvestimento(ctx context.Context, userID, investimentoID uuid.UUID) error {
	owned, err := r.investimentos.OwnedByUser(ctx, investimentoID, userID)
	if err != nil {
		return err
	}
	if !owned {
		return storage.ErrNotFound
	}
	return nil
}
