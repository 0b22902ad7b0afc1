package server

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wolfplanner/wolf-planner-api/internal/models"
	"github.com/wolfplanner/wolf-planner-api/internal/storage"
)

// memStore is an in-memory stand-in for the Postgres stores, mirroring their
// ownership-scoped behavior so the whole HTTP stack can run without a
// database. Each interface is served by a thin view over the shared data.
type memStore struct {
	mu            sync.Mutex
	users         map[string]models.User
	clientes      map[uuid.UUID]models.Cliente
	objetivos     map[uuid.UUID]models.Objetivo
	investimentos map[uuid.UUID]models.Investimento
}

func newMemStore() *memStore {
	return &memStore{
		users:         make(map[string]models.User),
		clientes:      make(map[uuid.UUID]models.Cliente),
		objetivos:     make(map[uuid.UUID]models.Objetivo),
		investimentos: make(map[uuid.UUID]models.Investimento),
	}
}

func (m *memStore) stores() Stores {
	return Stores{
		Users:         &memUsers{m},
		Clientes:      &memClientes{m},
		Objetivos:     &memObjetivos{m},
		Investimentos: &memInvestimentos{m},
	}
}

// clienteOwner resolves the owning user of an objetivo's cliente. Callers
// hold the lock.
func (m *memStore) clienteOwner(clienteID uuid.UUID) (uuid.UUID, bool) {
	c, ok := m.clientes[clienteID]
	if !ok {
		return uuid.Nil, false
	}
	return c.UserID, true
}

type memUsers struct{ m *memStore }

var _ storage.UserStore = (*memUsers)(nil)

func (s *memUsers) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.users[user.Email]; ok {
		return models.User{}, storage.ErrAlreadyExists
	}
	user.CreatedAt = time.Now()
	s.m.users[user.Email] = user
	return user, nil
}

func (s *memUsers) FindByEmail(ctx context.Context, email string) (models.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	user, ok := s.m.users[email]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

type memClientes struct{ m *memStore }

var _ storage.ClienteStore = (*memClientes)(nil)

func (s *memClientes) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Cliente, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []models.Cliente
	for _, c := range s.m.clientes {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memClientes) GetOwned(ctx context.Context, clienteID, userID uuid.UUID) (models.Cliente, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	c, ok := s.m.clientes[clienteID]
	if !ok || c.UserID != userID {
		return models.Cliente{}, storage.ErrNotFound
	}
	return c, nil
}

func (s *memClientes) Create(ctx context.Context, cliente models.Cliente) (models.Cliente, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	cliente.CreatedAt = time.Now()
	cliente.UpdatedAt = cliente.CreatedAt
	s.m.clientes[cliente.ID] = cliente
	return cliente, nil
}

func (s *memClientes) UpdateOwned(ctx context.Context, clienteID, userID uuid.UUID, patch models.ClientePatch) (models.Cliente, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	c, ok := s.m.clientes[clienteID]
	if !ok || c.UserID != userID {
		return models.Cliente{}, storage.ErrNotFound
	}
	if patch.Nome != nil {
		c.Nome = *patch.Nome
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Telefone != nil {
		c.Telefone = patch.Telefone
	}
	c.UpdatedAt = time.Now()
	s.m.clientes[clienteID] = c
	return c, nil
}

func (s *memClientes) DeleteOwned(ctx context.Context, clienteID, userID uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	c, ok := s.m.clientes[clienteID]
	if !ok || c.UserID != userID {
		return storage.ErrNotFound
	}
	delete(s.m.clientes, clienteID)
	return nil
}

func (s *memClientes) OwnedByUser(ctx context.Context, clienteID, userID uuid.UUID) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	c, ok := s.m.clientes[clienteID]
	return ok && c.UserID == userID, nil
}

type memObjetivos struct{ m *memStore }

var _ storage.ObjetivoStore = (*memObjetivos)(nil)

func (s *memObjetivos) ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]models.Objetivo, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []models.Objetivo
	for _, o := range s.m.objetivos {
		if o.ClienteID == clienteID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *memObjetivos) Create(ctx context.Context, objetivo models.Objetivo) (models.Objetivo, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	objetivo.CreatedAt = time.Now()
	s.m.objetivos[objetivo.ID] = objetivo
	return objetivo, nil
}

func (s *memObjetivos) UpdateOwned(ctx context.Context, objetivoID, userID uuid.UUID, patch models.ObjetivoPatch) (models.Objetivo, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	o, ok := s.m.objetivos[objetivoID]
	if !ok {
		return models.Objetivo{}, storage.ErrNotFound
	}
	if owner, ok := s.m.clienteOwner(o.ClienteID); !ok || owner != userID {
		return models.Objetivo{}, storage.ErrNotFound
	}
	if patch.Nome != nil {
		o.Nome = *patch.Nome
	}
	if patch.Descricao != nil {
		o.Descricao = patch.Descricao
	}
	if patch.ValorMeta != nil {
		o.ValorMeta = *patch.ValorMeta
	}
	s.m.objetivos[objetivoID] = o
	return o, nil
}

func (s *memObjetivos) DeleteOwned(ctx context.Context, objetivoID, userID uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	o, ok := s.m.objetivos[objetivoID]
	if !ok {
		return storage.ErrNotFound
	}
	if owner, ok := s.m.clienteOwner(o.ClienteID); !ok || owner != userID {
		return storage.ErrNotFound
	}
	delete(s.m.objetivos, objetivoID)
	return nil
}

func (s *memObjetivos) OwnedByUser(ctx context.Context, objetivoID, userID uuid.UUID) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	o, ok := s.m.objetivos[objetivoID]
	if !ok {
		return false, nil
	}
	owner, ok := s.m.clienteOwner(o.ClienteID)
	return ok && owner == userID, nil
}

type memInvestimentos struct{ m *memStore }

var _ storage.InvestimentoStore = (*memInvestimentos)(nil)

func (s *memInvestimentos) ListByObjetivo(ctx context.Context, objetivoID uuid.UUID) ([]models.Investimento, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	out := []models.Investimento{}
	for _, i := range s.m.investimentos {
		if i.ObjetivoID == objetivoID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (s *memInvestimentos) Create(ctx context.Context, investimento models.Investimento) (models.Investimento, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	investimento.CreatedAt = time.Now()
	s.m.investimentos[investimento.ID] = investimento
	return investimento, nil
}

func (s *memInvestimentos) owner(i models.Investimento) (uuid.UUID, bool) {
	o, ok := s.m.objetivos[i.ObjetivoID]
	if !ok {
		return uuid.Nil, false
	}
	return s.m.clienteOwner(o.ClienteID)
}

func (s *memInvestimentos) UpdateOwned(ctx context.Context, investimentoID, userID uuid.UUID, patch models.InvestimentoPatch) (models.Investimento, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	i, ok := s.m.investimentos[investimentoID]
	if !ok {
		return models.Investimento{}, storage.ErrNotFound
	}
	if owner, ok := s.owner(i); !ok || owner != userID {
		return models.Investimento{}, storage.ErrNotFound
	}
	if patch.Nome != nil {
		i.Nome = *patch.Nome
	}
	if patch.Valor != nil {
		i.Valor = *patch.Valor
	}
	if patch.Tipo != nil {
		i.Tipo = patch.Tipo
	}
	s.m.investimentos[investimentoID] = i
	return i, nil
}

func (s *memInvestimentos) DeleteOwned(ctx context.Context, investimentoID, userID uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	i, ok := s.m.investimentos[investimentoID]
	if !ok {
		return storage.ErrNotFound
	}
	if owner, ok := s.owner(i); !ok || owner != userID {
		return storage.ErrNotFound
	}
	delete(s.m.investimentos, investimentoID)
	return nil
}

func (s *memInvestimentos) OwnedByUser(ctx context.Context, investimentoID, userID uuid.UUID) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	i, ok := s.m.investimentos[investimentoID]
	if !ok {
		return false, nil
	}
	owner, ok := s.owner(i)
	return ok && owner == userID, nil
}
