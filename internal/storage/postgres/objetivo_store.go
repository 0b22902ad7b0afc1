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

var _ storage.ObjetivoStore = (*ObjetivoStore)(nil)

// ObjetivoStore provides Postgres-backed persistence for objetivos. Ownership
// is one join hop away (objetivo → cliente → user); every write carries that
// join so the condition and mutation happen in one statement.
type ObjetivoStore struct {
	db *DB
}

// NewObjetivoStore constructs an objetivo store over the shared pool.
func NewObjetivoStore(db *DB) *ObjetivoStore {
	return &ObjetivoStore{db: db}
}

// ListByCliente returns every objetivo under a cliente. Callers must have
// verified ownership of the cliente first.
func (s *ObjetivoStore) ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]models.Objetivo, error) {
	const query = `
	SELECT id, cliente_id, nome, descricao, valor_meta, created_at
	FROM objetivos
	WHERE cliente_id = $1
	ORDER BY created_at;
	`
	rows, err := s.db.Pool.Query(ctx, query, clienteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Objetivo
	for rows.Next() {
		o, err := scanObjetivo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Create inserts an objetivo row.
func (s *ObjetivoStore) Create(ctx context.Context, objetivo models.Objetivo) (models.Objetivo, error) {
	const query = `
	INSERT INTO objetivos (id, cliente_id, nome, descricao, valor_meta)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, cliente_id, nome, descricao, valor_meta, created_at;
	`
	row := s.db.Pool.QueryRow(ctx, query,
		objetivo.ID, objetivo.ClienteID, objetivo.Nome, objetivo.Descricao, objetivo.ValorMeta)
	return scanObjetivo(row)
}

// UpdateOwned applies the patch to an objetivo whose cliente belongs to the
// user. ValorMeta is tri-state: a nil pointer leaves the column unchanged, an
// invalid NullDecimal writes SQL NULL. An empty patch returns the current row.
func (s *ObjetivoStore) UpdateOwned(ctx context.Context, objetivoID, userID uuid.UUID, patch models.ObjetivoPatch) (models.Objetivo, error) {
	if patch.Empty() {
		return s.getOwned(ctx, objetivoID, userID)
	}

	var sets []string
	args := []any{objetivoID, userID}
	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Nome != nil {
		addSet("nome", *patch.Nome)
	}
	if patch.Descricao != nil {
		addSet("descricao", *patch.Descricao)
	}
	if patch.ValorMeta != nil {
		addSet("valor_meta", *patch.ValorMeta)
	}

	query := fmt.Sprintf(`
	UPDATE objetivos o SET %s
	FROM clientes c
	WHERE o.id = $1 AND o.cliente_id = c.id AND c.user_id = $2
	RETURNING o.id, o.cliente_id, o.nome, o.descricao, o.valor_meta, o.created_at;`, strings.Join(sets, ", "))
	return scanObjetivo(s.db.Pool.QueryRow(ctx, query, args...))
}

// DeleteOwned removes an objetivo whose cliente belongs to the user.
func (s *ObjetivoStore) DeleteOwned(ctx context.Context, objetivoID, userID uuid.UUID) error {
	const query = `
	DELETE FROM objetivos o
	USING clientes c
	WHERE o.id = $1 AND o.cliente_id = c.id AND c.user_id = $2;
	`
	tag, err := s.db.Pool.Exec(ctx, query, objetivoID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// OwnedByUser reports whether the objetivo exists under a cliente owned by
// userID.
func (s *ObjetivoStore) OwnedByUser(ctx context.Context, objetivoID, userID uuid.UUID) (bool, error) {
	const query = `
	SELECT EXISTS (
		SELECT 1
		FROM objetivos o
		JOIN clientes c ON o.cliente_id = c.id
		WHERE o.id = $1 AND c.user_id = $2
	);
	`
	var owned bool
	if err := s.db.Pool.QueryRow(ctx, query, objetivoID, userID).Scan(&owned); err != nil {
		return false, err
	}
	return owned, nil
}

func (s *ObjetivoStore) getOwned(ctx context.Context, objetivoID, userID uuid.UUID) (models.Objetivo, error) {
	const query = `
	SELECT o.id, o.cliente_id, o.nome, o.descricao, o.valor_meta, o.created_at
	FROM objetivos o
	JOIN clientes c ON o.cliente_id = c.id
	WHERE o.id = $1 AND c.user_id = $2;
	`
	return scanObjetivo(s.db.Pool.QueryRow(ctx, query, objetivoID, userID))
}

func scanObjetivo(row pgx.Row) (models.Objetivo, error) {
	var o models.Objetivo
	err := row.Scan(&o.ID, &o.ClienteID, &o.Nome, &o.Descricao, &o.ValorMeta, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Objetivo{}, storage.ErrNotFound
		}
		return models.Objetivo{}, err
	}
	return o, nil
}
