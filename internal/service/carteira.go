package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/wolfplanner/wolf-planner-api/internal/models"
	"github.com/wolfplanner/wolf-planner-api/internal/storage"
)

// CarteiraService builds the full-portfolio view for one cliente: all
// objetivos plus each objetivo's investimentos, keyed by objetivo id.
type CarteiraService struct {
	objetivos     storage.ObjetivoStore
	investimentos storage.InvestimentoStore
	owners        *Resolver
}

// NewCarteiraService constructs the service.
func NewCarteiraService(objetivos storage.ObjetivoStore, investimentos storage.InvestimentoStore, owners *Resolver) *CarteiraService {
	return &CarteiraService{objetivos: objetivos, investimentos: investimentos, owners: owners}
}

// Completa verifies ownership of the cliente, then issues one objetivo query
// followed by one investimento query per objetivo. The N+1 shape is deliberate
// at current scale and stays behind this method so a joined query can replace
// it without touching callers.
func (s *CarteiraService) Completa(ctx context.Context, userID, clienteID uuid.UUID) (models.Carteira, error) {
	if err := s.owners.VerifyCliente(ctx, userID, clienteID); err != nil {
		return models.Carteira{}, err
	}

	objetivos, err := s.objetivos.ListByCliente(ctx, clienteID)
	if err != nil {
		return models.Carteira{}, err
	}

	porObjetivo := make(map[string][]models.Investimento, len(objetivos))
	for _, objetivo := range objetivos {
		invs, err := s.investimentos.ListByObjetivo(ctx, objetivo.ID)
		if err != nil {
			return models.Carteira{}, err
		}
		porObjetivo[objetivo.ID.String()] = invs
	}

	return models.Carteira{
		ClienteID:                clienteID,
		Objetivos:                objetivos,
		InvestimentosPorObjetivo: porObjetivo,
	}, nil
}
