package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wolfplanner/wolf-planner-api/internal/convert"
	"github.com/wolfplanner/wolf-planner-api/internal/http/respond"
	"github.com/wolfplanner/wolf-planner-api/internal/models"
	"github.com/wolfplanner/wolf-planner-api/internal/models/dto"
	"github.com/wolfplanner/wolf-planner-api/internal/service"
)

// ClienteHandler owns the /api/clientes routes.
type ClienteHandler struct {
	svc *service.ClienteService
}

// NewClienteHandler constructs the handler.
func NewClienteHandler(svc *service.ClienteService) *ClienteHandler {
	return &ClienteHandler{svc: svc}
}

// Register attaches the cliente routes to the mux.
func (h *ClienteHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/clientes", h.list)
	mux.HandleFunc("POST /api/clientes", h.create)
	mux.HandleFunc("GET /api/clientes/{id}", h.get)
	mux.HandleFunc("PUT /api/clientes/{id}", h.update)
	mux.HandleFunc("DELETE /api/clientes/{id}", h.delete)
}

func (h *ClienteHandler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	clientes, err := h.svc.List(r.Context(), userID)
	if err != nil {
		storeError(w, err, "cliente not found")
		return
	}
	respond.JSON(w, http.StatusOK, convert.Clientes(clientes))
}

func (h *ClienteHandler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	clienteID, ok := pathID(w, r)
	if !ok {
		return
	}
	cliente, err := h.svc.Get(r.Context(), userID, clienteID)
	if err != nil {
		storeError(w, err, "cliente not found")
		return
	}
	respond.JSON(w, http.StatusOK, convert.Cliente(cliente))
}

func (h *ClienteHandler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req dto.ClienteCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Nome) == "" || strings.TrimSpace(req.Email) == "" {
		respond.Error(w, http.StatusBadRequest, "nome and email are required")
		return
	}

	cliente, err := h.svc.Create(r.Context(), userID, strings.TrimSpace(req.Nome), strings.TrimSpace(req.Email), req.Telefone)
	if err != nil {
		storeError(w, err, "cliente not found")
		return
	}
	respond.JSON(w, http.StatusOK, convert.Cliente(cliente))
}

func (h *ClienteHandler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	clienteID, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.ClienteUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	patch := models.ClientePatch{Nome: req.Nome, Email: req.Email, Telefone: req.Telefone}
	cliente, err := h.svc.Update(r.Context(), userID, clienteID, patch)
	if err != nil {
		storeError(w, err, "cliente not found")
		return
	}
	respond.JSON(w, http.StatusOK, convert.Cliente(cliente))
}

func (h *ClienteHandler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	clienteID, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), userID, clienteID); err != nil {
		storeError(w, err, "cliente not found")
		return
	}
	respond.Message(w, http.StatusOK, "cliente deleted")
}
