package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wolfplanner/wolf-planner-api/internal/models"
	"github.com/wolfplanner/wolf-planner-api/internal/storage"
)

// ObjetivoService owns CRUD over objetivos. List and Create verify the parent
// cliente through the resolver; Update and Delete run as owner-conditional
// writes in the store, collapsing check and act into one statement.
type ObjetivoService struct {
	store  storage.ObjetivoStore
	owners *Resolver
}

// NewObjetivoService constructs the service.
func NewObjetivoService(store storage.ObjetivoStore, owners *Resolver) *ObjetivoService {
	return &ObjetivoService{store: store, owners: owners}
}

// ListByCliente returns the objetivos under a cliente the caller owns.
func (s *ObjetivoService) ListByCliente(ctx context.Context, userID, clienteID uuid.UUID) ([]models.Objetivo, error) {
	if err := s.owners.VerifyCliente(ctx, userID, clienteID); err != nil {
		return nil, err
	}
	return s.store.ListByCliente(ctx, clienteID)
}

// Create inserts an objetivo under a cliente the caller owns. The parent is
// fixed to the verified cliente.
func (s *ObjetivoService) Create(ctx context.Context, userID, clienteID uuid.UUID, nome string, descricao *string, valorMeta decimal.NullDecimal) (models.Objetivo, error) {
	if err := s.owners.VerifyCliente(ctx, userID, clienteID); err != nil {
		return models.Objetivo{}, err
	}
	return s.store.Create(ctx, models.Objetivo{
		ID:        uuid.New(),
		ClienteID: clienteID,
		Nome:      nome,
		Descricao: descricao,
		ValorMeta: valorMeta,
	})
}

// Update applies a partial update to an objetivo the caller transitively
// owns. A patch with an invalid ValorMeta clears the stored target; a patch
// without ValorMeta leaves it unchanged.
func (s *ObjetivoService) Update(ctx context.Context, userID, objetivoID uuid.UUID, patch models.ObjetivoPatch) (models.Objetivo, error) {
	return s.store.UpdateOwned(ctx, objetivoID, userID, patch)
}

// Delete removes an objetivo the caller transitively owns.
func (s *ObjetivoService) Delete(ctx context.Context, userID, objetivoID uuid.UUID) error {
	return s.store.DeleteOwned(ctx, objetivoID, userID)
}
