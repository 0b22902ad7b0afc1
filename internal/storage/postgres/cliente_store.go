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

var _ storage.ClienteStore = (*ClienteStore)(nil)

// ClienteStore provides Postgres-backed persistence for clientes. Writes are
// conditional on ownership: the user filter is part of the statement, so the
// check and the mutation are a single atomic call.
type ClienteStore struct {
	db *DB
}

// NewClienteStore constructs a cliente store over the shared pool.
func NewClienteStore(db *DB) *ClienteStore {
	return &ClienteStore{db: db}
}

const clienteColumns = `id, user_id, nome, email, telefone, created_at, updated_at`

// ListByUser returns every cliente owned by userID.
func (s *ClienteStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Cliente, error) {
	query := fmt.Sprintf(`SELECT %s FROM clientes WHERE user_id = $1 ORDER BY created_at;`, clienteColumns)
	rows, err := s.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetOwned fetches one cliente scoped to its owner.
func (s *ClienteStore) GetOwned(ctx context.Context, clienteID, userID uuid.UUID) (models.Cliente, error) {
	query := fmt.Sprintf(`SELECT %s FROM clientes WHERE id = $1 AND user_id = $2;`, clienteColumns)
	return scanCliente(s.db.Pool.QueryRow(ctx, query, clienteID, userID))
}

// Create inserts a cliente row.
func (s *ClienteStore) Create(ctx context.Context, cliente models.Cliente) (models.Cliente, error) {
	query := fmt.Sprintf(`
	INSERT INTO clientes (id, user_id, nome, email, telefone)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING %s;`, clienteColumns)
	row := s.db.Pool.QueryRow(ctx, query, cliente.ID, cliente.UserID, cliente.Nome, cliente.Email, cliente.Telefone)
	return scanCliente(row)
}

// UpdateOwned applies the non-nil patch fields to a cliente the user owns.
// An empty patch returns the current row untouched.
func (s *ClienteStore) UpdateOwned(ctx context.Context, clienteID, userID uuid.UUID, patch models.ClientePatch) (models.Cliente, error) {
	if patch.Empty() {
		return s.GetOwned(ctx, clienteID, userID)
	}

	sets, args := []string{"updated_at = NOW()"}, []any{clienteID, userID}
	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Nome != nil {
		addSet("nome", *patch.Nome)
	}
	if patch.Email != nil {
		addSet("email", *patch.Email)
	}
	if patch.Telefone != nil {
		addSet("telefone", *patch.Telefone)
	}

	query := fmt.Sprintf(`
	UPDATE clientes SET %s
	WHERE id = $1 AND user_id = $2
	RETURNING %s;`, strings.Join(sets, ", "), clienteColumns)
	return scanCliente(s.db.Pool.QueryRow(ctx, query, args...))
}

// DeleteOwned removes a cliente the user owns.
func (s *ClienteStore) DeleteOwned(ctx context.Context, clienteID, userID uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM clientes WHERE id = $1 AND user_id = $2;`, clienteID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// OwnedByUser reports whether the cliente exists and belongs to userID.
func (s *ClienteStore) OwnedByUser(ctx context.Context, clienteID, userID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM clientes WHERE id = $1 AND user_id = $2);`
	var owned bool
	if err := s.db.Pool.QueryRow(ctx, query, clienteID, userID).Scan(&owned); err != nil {
		return false, err
	}
	return owned, nil
}

func scanCliente(row pgx.Row) (models.Cliente, error) {
	var c models.Cliente
	err := row.Scan(&c.ID, &c.UserID, &c.Nome, &c.Email, &c.Telefone, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Cliente{}, storage.ErrNotFound
		}
		return models.Cliente{}, err
	}
	return c, nil
}
