package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wolfplanner/wolf-planner-api/internal/models"
	"github.com/wolfplanner/wolf-planner-api/internal/storage"
)

// InvestimentoService mirrors ObjetivoService one level deeper in the
// ownership chain.
type InvestimentoService struct {
	store  storage.InvestimentoStore
	owners *Resolver
}

// NewInvestimentoService constructs the service.
func NewInvestimentoService(store storage.InvestimentoStore, owners *Resolver) *InvestimentoService {
	return &InvestimentoService{store: store, owners: owners}
}

// ListByObjetivo returns the investimentos under an objetivo the caller
// transitively owns.
func (s *InvestimentoService) ListByObjetivo(ctx context.Context, userID, objetivoID uuid.UUID) ([]models.Investimento, error) {
	if err := s.owners.VerifyObjetivo(ctx, userID, objetivoID); err != nil {
		return nil, err
	}
	return s.store.ListByObjetivo(ctx, objetivoID)
}

// Create inserts an investimento under an objetivo the caller transitively
// owns. The parent is fixed to the verified objetivo.
func (s *InvestimentoService) Create(ctx context.Context, userID, objetivoID uuid.UUID, nome string, valor decimal.Decimal, tipo *string) (models.Investimento, error) {
	if err := s.owners.VerifyObjetivo(ctx, userID, objetivoID); err != nil {
		return models.Investimento{}, err
	}
	return s.store.Create(ctx, models.Investimento{
		ID:         uuid.New(),
		ObjetivoID: objetivoID,
		Nome:       nome,
		Valor:      valor,
		Tipo:       tipo,
	})
}

// Update applies a plain partial update: omitted fields stay unchanged, no
// nullable-write field exists here.
func (s *InvestimentoService) Update(ctx context.Context, userID, investimentoID uuid.UUID, patch models.InvestimentoPatch) (models.Investimento, error) {
	return s.store.UpdateOwned(ctx, investimentoID, userID, patch)
}

// Delete removes an investimento the caller transitively owns.
func (s *InvestimentoService) Delete(ctx context.Context, userID, investimentoID uuid.UUID) error {
	return s.store.DeleteOwned(ctx, investimentoID, userID)
}
