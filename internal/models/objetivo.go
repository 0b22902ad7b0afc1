package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Objetivo is a financial goal belonging to a Cliente. ValorMeta is the
// optional monetary target; a null target is distinct from a zero target.
type Objetivo struct {
	ID        uuid.UUID
	ClienteID uuid.UUID
	Nome      string
	Descricao *string
	ValorMeta decimal.NullDecimal
	CreatedAt time.Time
}

// ObjetivoPatch describes a partial update to an Objetivo. Nil fields are left
// unchanged. ValorMeta is the one tri-state field in the system: nil leaves
// the stored target untouched, a non-nil value with Valid=false clears it.
type ObjetivoPatch struct {
	Nome      *string
	Descricao *string
	ValorMeta *decimal.NullDecimal
}

// Empty reports whether the patch changes nothing.
func (p ObjetivoPatch) Empty() bool {
	return p.Nome == nil && p.Descricao == nil && p.ValorMeta == nil
}
