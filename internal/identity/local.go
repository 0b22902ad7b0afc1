package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wolfplanner/wolf-planner-api/internal/auth"
	"github.com/wolfplanner/wolf-planner-api/internal/models"
	"github.com/wolfplanner/wolf-planner-api/internal/storage"
)

var _ Provider = (*LocalProvider)(nil)

// LocalProvider implements Provider on top of the users table and the JWT
// token manager. When requireConfirmation is set, fresh sign-ups start
// unconfirmed and cannot open a session until the confirmed flag is flipped
// out of band.
type LocalProvider struct {
	users               storage.UserStore
	tokens              *auth.TokenManager
	requireConfirmation bool
}

// NewLocalProvider constructs the provider.
func NewLocalProvider(users storage.UserStore, tokens *auth.TokenManager, requireConfirmation bool) *LocalProvider {
	return &LocalProvider{users: users, tokens: tokens, requireConfirmation: requireConfirmation}
}

// SignUp creates an account. The session is nil when email confirmation is
// still pending.
func (p *LocalProvider) SignUp(ctx context.Context, email, password string) (User, *Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if err := validateCredentials(email, password); err != nil {
		return User{}, nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := p.users.CreateUser(ctx, models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Confirmed:    !p.requireConfirmation,
	})
	if err != nil {
		return User{}, nil, err
	}

	user := User{ID: created.ID, Email: created.Email}
	if !created.Confirmed {
		return user, nil, nil
	}
	token, err := p.tokens.Generate(created.ID, created.Email)
	if err != nil {
		return User{}, nil, err
	}
	return user, &Session{AccessToken: token, User: user}, nil
}

// SignIn authenticates email/password and opens a session.
func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	user, err := p.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Session{}, ErrUnauthenticated
		}
		return Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Session{}, ErrUnauthenticated
	}
	if !user.Confirmed {
		return Session{}, ErrConfirmationRequired
	}
	token, err := p.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return Session{}, err
	}
	return Session{AccessToken: token, User: User{ID: user.ID, Email: user.Email}}, nil
}

// SignOut invalidates a session. Tokens are stateless here, so expiry does the
// work; the method keeps the provider contract.
func (p *LocalProvider) SignOut(ctx context.Context, token string) error {
	return nil
}

// Resolve maps a bearer credential to the user ID it was issued for.
func (p *LocalProvider) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := p.tokens.Parse(token)
	if err != nil {
		return uuid.Nil, ErrUnauthenticated
	}
	return userID, nil
}

func validateCredentials(email, password string) error {
	if email == "" || !strings.Contains(email, "@") {
		return errors.New("valid email is required")
	}
	if len(password) < 8 || !utf8.ValidString(password) {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}
