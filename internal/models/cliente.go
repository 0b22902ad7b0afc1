package models

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is an end customer managed by a portfolio-owning user. The owning
// user is stamped at creation and never changes.
type Cliente struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Nome      string
	Email     string
	Telefone  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientePatch describes a partial update to a Cliente. Nil fields are left
// unchanged.
type ClientePatch struct {
	Nome     *string
	Email    *string
	Telefone *string
}

// Empty reports whether the patch changes nothing.
func (p ClientePatch) Empty() bool {
	return p.Nome == nil && p.Email == nil && p.Telefone == nil
}
