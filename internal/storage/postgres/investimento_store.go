package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wolfplanner/wolf-planner-api/internal/models"
	"github.com/wolfplanner/wolf-planner-api/internal/storage"
)

var _ storage.InvestimentoStore = (*InvestimentoStore)(nil)

// InvestimentoStore provides Postgres-backed persistence for investimentos.
// Ownership is two join hops away (investimento → objetivo → cliente → user).
type InvestimentoStore struct {
	db *DB
}

// NewInvestimentoStore constructs an investimento store over the shared pool.
func NewInvestimentoStore(db *DB) *InvestimentoStore {
	return &InvestimentoStore{db: db}
}

// ListByObjetivo returns every investimento under an objetivo. Callers must
// have verified ownership of the objetivo first.
func (s *InvestimentoStore) ListByObjetivo(ctx context.Context, objetivoID uuid.UUID) ([]models.Investimento, error) {
	const query = `
	SELECT id, objetivo_id, nome, valor, tipo, created_at
	FROM investimentos
	WHERE objetivo_id = $1
	ORDER BY created_at;
	`
	rows, err := s.db.Pool.Query(ctx, query, objetivoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Investimento
	for rows.Next() {
		inv, err := scanInvestimento(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// Create inserts an investimento row.
func (s *InvestimentoStore) Create(ctx context.Context, investimento models.Investimento) (models.Investimento, error) {
	const query = `
	INSERT INTO investimentos (id, objetivo_id, nome, valor, tipo)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, objetivo_id, nome, valor, tipo, created_at;
	`
	row := s.db.Pool.QueryRow(ctx, query,
		investimento.ID, investimento.ObjetivoID, investimento.Nome, investimento.Valor, investimento.Tipo)
	return scanInvestimento(row)
}

// UpdateOwned applies the non-nil patch fields to an investimento the user
// transitively owns. An empty patch returns the current row untouched.
func (s *InvestimentoStore) UpdateOwned(ctx context.Context, investimentoID, userID uuid.UUID, patch models.InvestimentoPatch) (models.Investimento, error) {
	if patch.Empty() {
		return s.getOwned(ctx, investimentoID, userID)
	}

	var sets []string
	args := []any{investimentoID, userID}
	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Nome != nil {
		addSet("nome", *patch.Nome)
	}
	if patch.Valor != nil {
		addSet("valor", *patch.Valor)
	}
	if patch.Tipo != nil {
		addSet("tipo", *patch.Tipo)
	}

	query := fmt.Sprintf(`
	UPDATE investimentos i SET %s
	FROM objetivos o
	JOIN clientes c ON o.cliente_id = c.id
	WHERE i.id = $1 AND i.objetivo_id = o.id AND c.user_id = $2
	RETURNING i.id, i.objetivo_id, i.nome, i.valor, i.tipo, i.created_at;`, strings.Join(sets, ", "))
	return scanInvestimento(s.db.Pool.QueryRow(ctx, query, args...))
}

// DeleteOwned removes an investimento the user transitively owns.
func (s *InvestimentoStore) DeleteOwned(ctx context.Context, investimentoID, userID uuid.UUID) error {
	const query = `
	DELETE FROM investimentos i
	USING objetivos o
	JOIN clientes c ON o.cliente_id = c.id
	WHERE i.id = $1 AND i.objetivo_id = o.id AND c.user_id = $2;
	`
	tag, err := s.db.Pool.Exec(ctx, query, investimentoID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// OwnedByUser reports whether the investimento exists under the user's
// ownership chain.
func (s *InvestimentoStore) OwnedByUser(ctx context.Context, investimentoID, userID uuid.UUID) (bool, error) {
	const query = `
	SELECT EXISTS (
		SELECT 1
		FROM investimentos i
		JOIN objetivos o ON i.objetivo_id = o.id
		JOIN clientes c ON o.cliente_id = c.id
		WHERE i.id = $1 AND c.user_id = $2
	);
	`
	var owned bool
	if err := s.db.Pool.QueryRow(ctx, query, investimentoID, userID).Scan(&owned); err != nil {
		return false, err
	}
	return owned, nil
}

func (s *InvestimentoStore) getOwned(ctx context.Context, investimentoID, userID uuid.UUID) (models.Investimento, error) {
	const query = `
	SELECT i.id, i.objetivo_id, i.nome, i.valor, i.tipo, i.created_at
	FROM investimentos i
	JOIN objetivos o ON i.objetivo_id = o.id
	JOIN clientes c ON o.cliente_id = c.id
	WHERE i.id = $1 AND c.user_id = $2;
	`
	return scanInvestimento(s.db.Pool.QueryRow(ctx, query, investimentoID, userID))
}

func scanInvestimento(row pgx.Row) (models.Investimento, error) {
	var inv models.Investimento
	err := row.Scan(&inv.ID, &inv.ObjetivoID, &inv.Nome, &inv.Valor, &inv.Tipo, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Investimento{}, storage.ErrNotFound
		}
		return models.Investimento{}, err
	}
	return inv, nil
}
