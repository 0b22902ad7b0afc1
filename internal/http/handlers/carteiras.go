package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wolfplanner/wolf-planner-api/internal/convert"
	"github.com/wolfplanner/wolf-planner-api/internal/http/respond"
	"github.com/wolfplanner/wolf-planner-api/internal/models"
	"github.com/wolfplanner/wolf-planner-api/internal/models/dto"
	"github.com/wolfplanner/wolf-planner-api/internal/service"

	"github.com/google/uuid"
)

// CarteiraHandler owns the /api/carteiras routes: objetivos, investimentos,
// and the full-portfolio view.
type CarteiraHandler struct {
	objetivos     *service.ObjetivoService
	investimentos *service.InvestimentoService
	carteiras     *service.CarteiraService
}

// NewCarteiraHandler constructs the handler.
func NewCarteiraHandler(objetivos *service.ObjetivoService, investimentos *service.InvestimentoService, carteiras *service.CarteiraService) *CarteiraHandler {
	return &CarteiraHandler{objetivos: objetivos, investimentos: investimentos, carteiras: carteiras}
}

// Register attaches the carteira routes to the mux.
func (h *CarteiraHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/carteiras/cliente/{id}/objetivos", h.listObjetivos)
	mux.HandleFunc("POST /api/carteiras/objetivos", h.createObjetivo)
	mux.HandleFunc("PUT /api/carteiras/objetivos/{id}", h.updateObjetivo)
	mux.HandleFunc("DELETE /api/carteiras/objetivos/{id}", h.deleteObjetivo)

	mux.HandleFunc("GET /api/carteiras/objetivo/{id}/investimentos", h.listInvestimentos)
	mux.HandleFunc("POST /api/carteiras/investimentos", h.createInvestimento)
	mux.HandleFunc("PUT /api/carteiras/investimentos/{id}", h.updateInvestimento)
	mux.HandleFunc("DELETE /api/carteiras/investimentos/{id}", h.deleteInvestimento)

	mux.HandleFunc("GET /api/carteiras/cliente/{id}/completa", h.completa)
}

func (h *CarteiraHandler) listObjetivos(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	clienteID, ok := pathID(w, r)
	if !ok {
		return
	}
	objetivos, err := h.objetivos.ListByCliente(r.Context(), userID, clienteID)
	if err != nil {
		storeError(w, err, "cliente not found")
		return
	}
	respond.JSON(w, http.StatusOK, convert.Objetivos(objetivos))
}

func (h *CarteiraHandler) createObjetivo(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req dto.ObjetivoCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Nome) == "" {
		respond.Error(w, http.StatusBadRequest, "nome is required")
		return
	}
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid cliente_id")
		return
	}

	var valorMeta decimal.NullDecimal
	if req.ValorMeta != nil {
		valorMeta = decimal.NullDecimal{Decimal: decimal.NewFromFloat(*req.ValorMeta), Valid: true}
	}
	objetivo, err := h.objetivos.Create(r.Context(), userID, clienteID, strings.TrimSpace(req.Nome), req.Descricao, valorMeta)
	if err != nil {
		storeError(w, err, "cliente not found")
		return
	}
	respond.JSON(w, http.StatusOK, convert.Objetivo(objetivo))
}

func (h *CarteiraHandler) updateObjetivo(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	objetivoID, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.ObjetivoUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	patch := models.ObjetivoPatch{Nome: req.Nome, Descricao: req.Descricao}
	// valor_meta is tri-state: an absent key leaves the target unchanged, an
	// explicit null clears it.
	if req.ValorMeta.Present {
		nd := decimal.NullDecimal{Valid: req.ValorMeta.Valid}
		if req.ValorMeta.Valid {
			nd.Decimal = decimal.NewFromFloat(req.ValorMeta.Value)
		}
		patch.ValorMeta = &nd
	}

	objetivo, err := h.objetivos.Update(r.Context(), userID, objetivoID, patch)
	if err != nil {
		storeError(w, err, "objetivo not found")
		return
	}
	respond.JSON(w, http.StatusOK, convert.Objetivo(objetivo))
}

func (h *CarteiraHandler) deleteObjetivo(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	objetivoID, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.objetivos.Delete(r.Context(), userID, objetivoID); err != nil {
		storeError(w, err, "objetivo not found")
		return
	}
	respond.Message(w, http.StatusOK, "objetivo deleted")
}

func (h *CarteiraHandler) listInvestimentos(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	objetivoID, ok := pathID(w, r)
	if !ok {
		return
	}
	investimentos, err := h.investimentos.ListByObjetivo(r.Context(), userID, objetivoID)
	if err != nil {
		storeError(w, err, "objetivo not found")
		return
	}
	respond.JSON(w, http.StatusOK, convert.Investimentos(investimentos))
}

func (h *CarteiraHandler) createInvestimento(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req dto.InvestimentoCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Nome) == "" {
		respond.Error(w, http.StatusBadRequest, "nome is required")
		return
	}
	if req.Valor == nil {
		respond.Error(w, http.StatusBadRequest, "valor is required")
		return
	}
	objetivoID, err := uuid.Parse(req.ObjetivoID)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid objetivo_id")
		return
	}

	investimento, err := h.investimentos.Create(r.Context(), userID, objetivoID,
		strings.TrimSpace(req.Nome), decimal.NewFromFloat(*req.Valor), req.Tipo)
	if err != nil {
		storeError(w, err, "objetivo not found")
		return
	}
	respond.JSON(w, http.StatusOK, convert.Investimento(investimento))
}

func (h *CarteiraHandler) updateInvestimento(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	investimentoID, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.InvestimentoUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	patch := models.InvestimentoPatch{Nome: req.Nome, Tipo: req.Tipo}
	if req.Valor != nil {
		valor := decimal.NewFromFloat(*req.Valor)
		patch.Valor = &valor
	}

	investimento, err := h.investimentos.Update(r.Context(), userID, investimentoID, patch)
	if err != nil {
		storeError(w, err, "investimento not found")
		return
	}
	respond.JSON(w, http.StatusOK, convert.Investimento(investimento))
}

func (h *CarteiraHandler) deleteInvestimento(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	investimentoID, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.investimentos.Delete(r.Context(), userID, investimentoID); err != nil {
		storeError(w, err, "investimento not found")
		return
	}
	respond.Message(w, http.StatusOK, "investimento deleted")
}

func (h *CarteiraHandler) completa(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	clienteID, ok := pathID(w, r)
	if !ok {
		return
	}
	carteira, err := h.carteiras.Completa(r.Context(), userID, clienteID)
	if err != nil {
		storeError(w, err, "cliente not found")
		return
	}
	respond.JSON(w, http.StatusOK, convert.Carteira(carteira))
}
