package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wolfplanner/wolf-planner-api/internal/http/respond"
	"github.com/wolfplanner/wolf-planner-api/internal/identity"
	"github.com/wolfplanner/wolf-planner-api/internal/models/dto"
)

// AuthHandler owns the pass-through registration and session endpoints.
type AuthHandler struct {
	provider identity.Provider
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(provider identity.Provider) *AuthHandler {
	return &AuthHandler{provider: provider}
}

// Register attaches the auth routes to the mux. These are the only /api
// routes outside the bearer middleware.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/register", h.register)
	mux.HandleFunc("POST /api/auth/login", h.login)
	mux.HandleFunc("POST /api/auth/logout", h.logout)
}

type tokenResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	User        identity.User `json:"user"`
}

// register creates an account. When the provider yields a user without a
// session (confirmation pending), an immediate login with the same
// credentials is attempted; only if that also fails does the response signal
// the pending-confirmation condition.
func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	user, session, err := h.provider.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if session == nil {
		fallback, err := h.provider.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			respond.Message(w, http.StatusCreated, "account created; confirm your email before logging in")
			return
		}
		session = &fallback
	}

	respond.JSON(w, http.StatusOK, tokenResponse{
		AccessToken: session.AccessToken,
		TokenType:   "bearer",
		User:        user,
	})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	session, err := h.provider.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		// A credential failure never reveals whether the account exists.
		respond.Error(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	respond.JSON(w, http.StatusOK, tokenResponse{
		AccessToken: session.AccessToken,
		TokenType:   "bearer",
		User:        session.User,
	})
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
	if err := h.provider.SignOut(r.Context(), token); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	respond.Message(w, http.StatusOK, "logged out")
}
