// Package convert maps domain entities to their public JSON payloads. It is
// the only place monetary decimals become float64, so every endpoint
// serializes money identically, nested aggregation responses included.
package convert

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wolfplanner/wolf-planner-api/internal/models"
)

// ClientePayload is the public shape of a Cliente.
type ClientePayload struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Telefone  *string   `json:"telefone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ObjetivoPayload is the public shape of an Objetivo. ValorMeta is a JSON
// number or null.
type ObjetivoPayload struct {
	ID        string    `json:"id"`
	ClienteID string    `json:"cliente_id"`
	Nome      string    `json:"nome"`
	Descricao *string   `json:"descricao"`
	ValorMeta *float64  `json:"valor_meta"`
	CreatedAt time.Time `json:"created_at"`
}

// InvestimentoPayload is the public shape of an Investimento.
type InvestimentoPayload struct {
	ID         string    `json:"id"`
	ObjetivoID string    `json:"objetivo_id"`
	Nome       string    `json:"nome"`
	Valor      float64   `json:"valor"`
	Tipo       *string   `json:"tipo"`
	CreatedAt  time.Time `json:"created_at"`
}

// CarteiraPayload is the public shape of the full-portfolio view.
type CarteiraPayload struct {
	ClienteID                string                           `json:"cliente_id"`
	Objetivos                []ObjetivoPayload                `json:"objetivos"`
	InvestimentosPorObjetivo map[string][]InvestimentoPayload `json:"investimentos_por_objetivo"`
}

// Cliente converts a domain Cliente.
func Cliente(c models.Cliente) ClientePayload {
	return ClientePayload{
		ID:        c.ID.String(),
		UserID:    c.UserID.String(),
		Nome:      c.Nome,
		Email:     c.Email,
		Telefone:  c.Telefone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// Clientes converts a slice, always yielding a non-nil slice for JSON.
func Clientes(cs []models.Cliente) []ClientePayload {
	out := make([]ClientePayload, 0, len(cs))
	for _, c := range cs {
		out = append(out, Cliente(c))
	}
	return out
}

// Objetivo converts a domain Objetivo, normalizing the decimal target.
func Objetivo(o models.Objetivo) ObjetivoPayload {
	return ObjetivoPayload{
		ID:        o.ID.String(),
		ClienteID: o.ClienteID.String(),
		Nome:      o.Nome,
		Descricao: o.Descricao,
		ValorMeta: nullDecimalToFloat(o.ValorMeta),
		CreatedAt: o.CreatedAt,
	}
}

// Objetivos converts a slice, always yielding a non-nil slice for JSON.
func Objetivos(os []models.Objetivo) []ObjetivoPayload {
	out := make([]ObjetivoPayload, 0, len(os))
	for _, o := range os {
		out = append(out, Objetivo(o))
	}
	return out
}

// Investimento converts a domain Investimento, normalizing the decimal value.
func Investimento(i models.Investimento) InvestimentoPayload {
	return InvestimentoPayload{
		ID:         i.ID.String(),
		ObjetivoID: i.ObjetivoID.String(),
		Nome:       i.Nome,
		Valor:      i.Valor.InexactFloat64(),
		Tipo:       i.Tipo,
		CreatedAt:  i.CreatedAt,
	}
}

// Investimentos converts a slice, always yielding a non-nil slice for JSON.
func Investimentos(is []models.Investimento) []InvestimentoPayload {
	out := make([]InvestimentoPayload, 0, len(is))
	for _, i := range is {
		out = append(out, Investimento(i))
	}
	return out
}

// Carteira converts the aggregate view, applying the same normalization to
// every nested objetivo and investimento.
func Carteira(c models.Carteira) CarteiraPayload {
	porObjetivo := make(map[string][]InvestimentoPayload, len(c.InvestimentosPorObjetivo))
	for id, invs := range c.InvestimentosPorObjetivo {
		porObjetivo[id] = Investimentos(invs)
	}
	return CarteiraPayload{
		ClienteID:                c.ClienteID.String(),
		Objetivos:                Objetivos(c.Objetivos),
		InvestimentosPorObjetivo: porObjetivo,
	}
}

func nullDecimalToFloat(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}
