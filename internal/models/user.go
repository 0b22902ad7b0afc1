package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity managed by the identity provider. Only the provider
// touches these rows; the resource services reference users by ID alone.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Confirmed    bool
	CreatedAt    time.Time
}
