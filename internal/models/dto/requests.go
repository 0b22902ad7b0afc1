// Package dto holds the JSON request shapes accepted by the HTTP layer.
package dto

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ClienteCreateRequest struct {
	Nome     string  `json:"nome"`
	Email    string  `json:"email"`
	Telefone *string `json:"telefone"`
}

type ClienteUpdateRequest struct {
	Nome     *string `json:"nome"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
}

type ObjetivoCreateRequest struct {
	ClienteID string   `json:"cliente_id"`
	Nome      string   `json:"nome"`
	Descricao *string  `json:"descricao"`
	ValorMeta *float64 `json:"valor_meta"`
}

type ObjetivoUpdateRequest struct {
	Nome      *string        `json:"nome"`
	Descricao *string        `json:"descricao"`
	ValorMeta OptionalNumber `json:"valor_meta"`
}

type InvestimentoCreateRequest struct {
	ObjetivoID string   `json:"objetivo_id"`
	Nome       string   `json:"nome"`
	Valor      *float64 `json:"valor"`
	Tipo       *string  `json:"tipo"`
}

type InvestimentoUpdateRequest struct {
	Nome  *string  `json:"nome"`
	Valor *float64 `json:"valor"`
	Tipo  *string  `json:"tipo"`
}
