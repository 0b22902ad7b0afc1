package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Investimento is a monetary allocation belonging to an Objetivo. Valor is
// required; Tipo is a free-form tag.
type Investimento struct {
	ID         uuid.UUID
	ObjetivoID uuid.UUID
	Nome       string
	Valor      decimal.Decimal
	Tipo       *string
	CreatedAt  time.Time
}

// InvestimentoPatch describes a partial update to an Investimento. Nil fields
// are left unchanged; there is no nullable-write field here.
type InvestimentoPatch struct {
	Nome  *string
	Valor *decimal.Decimal
	Tipo  *string
}

// Empty reports whether the patch changes nothing.
func (p InvestimentoPatch) Empty() bool {
	return p.Nome == nil && p.Valor == nil && p.Tipo == nil
}

// Carteira is the derived full-portfolio view for one Cliente: every Objetivo
// plus that Objetivo's Investimentos keyed by objetivo id. Built on demand,
// never stored.
type Carteira struct {
	ClienteID                uuid.UUID
	Objetivos                []Objetivo
	InvestimentosPorObjetivo map[string][]Investimento
}
