package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/wolfplanner/wolf-planner-api/internal/models"
	"github.com/wolfplanner/wolf-planner-api/internal/storage"
)

// ClienteService owns CRUD over clientes. Ownership is established at Create
// (the caller is stamped as owner, whatever the payload claimed) and enforced
// on every other operation by the owner-scoped store queries.
type ClienteService struct {
	store storage.ClienteStore
}

// NewClienteService constructs the service.
func NewClienteService(store storage.ClienteStore) *ClienteService {
	return &ClienteService{store: store}
}

// List returns every cliente owned by the caller.
func (s *ClienteService) List(ctx context.Context, userID uuid.UUID) ([]models.Cliente, error) {
	return s.store.ListByUser(ctx, userID)
}

// Get returns one cliente, masked as not-found unless the caller owns it.
func (s *ClienteService) Get(ctx context.Context, userID, clienteID uuid.UUID) (models.Cliente, error) {
	return s.store.GetOwned(ctx, clienteID, userID)
}

// Create inserts a cliente owned by the caller.
func (s *ClienteService) Create(ctx context.Context, userID uuid.UUID, nome, email string, telefone *string) (models.Cliente, error) {
	return s.store.Create(ctx, models.Cliente{
		ID:       uuid.New(),
		UserID:   userID,
		Nome:     nome,
		Email:    email,
		Telefone: telefone,
	})
}

// Update applies a partial update to a cliente the caller owns.
func (s *ClienteService) Update(ctx context.Context, userID, clienteID uuid.UUID, patch models.ClientePatch) (models.Cliente, error) {
	return s.store.UpdateOwned(ctx, clienteID, userID, patch)
}

// Delete removes a cliente the caller owns. Children are not cascaded here;
// referential behavior belongs to the store.
func (s *ClienteService) Delete(ctx context.Context, userID, clienteID uuid.UUID) error {
	return s.store.DeleteOwned(ctx, clienteID, userID)
}
