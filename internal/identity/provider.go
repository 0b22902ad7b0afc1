// Package identity is the boundary to the identity provider. The core
// consumes one capability from it, resolving a bearer credential to a user
// ID, plus the pass-through registration flows.
package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrUnauthenticated indicates missing or bad credentials. It never reveals
// whether an account exists.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrConfirmationRequired indicates an account was created but cannot start a
// session until its email address is confirmed.
var ErrConfirmationRequired = errors.New("email confirmation required")

// User is the provider-issued identity referenced by every cliente.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Session is an active credential for a user.
type Session struct {
	AccessToken string
	User        User
}

// Provider abstracts the identity service. SignUp may create an account
// without a session when confirmation is pending; callers fall back to SignIn
// in that case.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (User, *Session, error)
	SignIn(ctx context.Context, email, password string) (Session, error)
	SignOut(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
}
