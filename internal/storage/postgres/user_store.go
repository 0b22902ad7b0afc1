package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/wolfplanner/wolf-planner-api/internal/models"
	"github.com/wolfplanner/wolf-planner-api/internal/storage"
)

var _ storage.UserStore = (*UserStore)(nil)

// UserStore provides Postgres-backed persistence for identities.
type UserStore struct {
	db *DB
}

// NewUserStore constructs a user store over the shared pool.
func NewUserStore(db *DB) *UserStore {
	return &UserStore{db: db}
}

// CreateUser inserts a new identity row.
func (s *UserStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
	INSERT INTO users (id, email, password_hash, confirmed)
	VALUES ($1, $2, $3, $4)
	RETURNING id, email, password_hash, confirmed, created_at;
	`
	row := s.db.Pool.QueryRow(ctx, query, user.ID, user.Email, user.PasswordHash, user.Confirmed)
	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, err
	}
	return created, nil
}

// FindByEmail fetches an identity by email address.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `
	SELECT id, email, password_hash, confirmed, created_at
	FROM users
	WHERE email = $1;
	`
	row := s.db.Pool.QueryRow(ctx, query, email)
	return scanUser(row)
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Confirmed, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
