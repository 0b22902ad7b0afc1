package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/wolfplanner/wolf-planner-api/internal/models"
)

// MockClienteStore is a mock implementation of storage.ClienteStore.
type MockClienteStore struct {
	mock.Mock
}

func (m *MockClienteStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Cliente, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Cliente), args.Error(1)
}

func (m *MockClienteStore) GetOwned(ctx context.Context, clienteID, userID uuid.UUID) (models.Cliente, error) {
	args := m.Called(ctx, clienteID, userID)
	return args.Get(0).(models.Cliente), args.Error(1)
}

func (m *MockClienteStore) Create(ctx context.Context, cliente models.Cliente) (models.Cliente, error) {
	args := m.Called(ctx, cliente)
	return args.Get(0).(models.Cliente), args.Error(1)
}

func (m *MockClienteStore) UpdateOwned(ctx context.Context, clienteID, userID uuid.UUID, patch models.ClientePatch) (models.Cliente, error) {
	args := m.Called(ctx, clienteID, userID, patch)
	return args.Get(0).(models.Cliente), args.Error(1)
}

func (m *MockClienteStore) DeleteOwned(ctx context.Context, clienteID, userID uuid.UUID) error {
	args := m.Called(ctx, clienteID, userID)
	return args.Error(0)
}

func (m *MockClienteStore) OwnedByUser(ctx context.Context, clienteID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, clienteID, userID)
	return args.Bool(0), args.Error(1)
}

// MockObjetivoStore is a mock implementation of storage.ObjetivoStore.
type MockObjetivoStore struct {
	mock.Mock
}

func (m *MockObjetivoStore) ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]models.Objetivo, error) {
	args := m.Called(ctx, clienteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Objetivo), args.Error(1)
}

func (m *MockObjetivoStore) Create(ctx context.Context, objetivo models.Objetivo) (models.Objetivo, error) {
	args := m.Called(ctx, objetivo)
	return args.Get(0).(models.Objetivo), args.Error(1)
}

func (m *MockObjetivoStore) UpdateOwned(ctx context.Context, objetivoID, userID uuid.UUID, patch models.ObjetivoPatch) (models.Objetivo, error) {
	args := m.Called(ctx, objetivoID, userID, patch)
	return args.Get(0).(models.Objetivo), args.Error(1)
}

func (m *MockObjetivoStore) DeleteOwned(ctx context.Context, objetivoID, userID uuid.UUID) error {
	args := m.Called(ctx, objetivoID, userID)
	return args.Error(0)
}

func (m *MockObjetivoStore) OwnedByUser(ctx context.Context, objetivoID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, objetivoID, userID)
	return args.Bool(0), args.Error(1)
}

// MockInvestimentoStore is a mock implementation of storage.InvestimentoStore.
type MockInvestimentoStore struct {
	mock.Mock
}

func (m *MockInvestimentoStore) ListByObjetivo(ctx context.Context, objetivoID uuid.UUID) ([]models.Investimento, error) {
	args := m.Called(ctx, objetivoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Investimento), args.Error(1)
}

func (m *MockInvestimentoStore) Create(ctx context.Context, investimento models.Investimento) (models.Investimento, error) {
	args := m.Called(ctx, investimento)
	return args.Get(0).(models.Investimento), args.Error(1)
}

func (m *MockInvestimentoStore) UpdateOwned(ctx context.Context, investimentoID, userID uuid.UUID, patch models.InvestimentoPatch) (models.Investimento, error) {
	args := m.Called(ctx, investimentoID, userID, patch)
	return args.Get(0).(models.Investimento), args.Error(1)
}

func (m *MockInvestimentoStore) DeleteOwned(ctx context.Context, investimentoID, userID uuid.UUID) error {
	args := m.Called(ctx, investimentoID, userID)
	return args.Error(0)
}

func (m *MockInvestimentoStore) OwnedByUser(ctx context.Context, investimentoID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, investimentoID, userID)
	return args.Bool(0), args.Error(1)
}
