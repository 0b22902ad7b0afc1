// Package server wires stores, services, and handlers into an http.Server.
package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/wolfplanner/wolf-planner-api/internal/auth"
	"github.com/wolfplanner/wolf-planner-api/internal/config"
	"github.com/wolfplanner/wolf-planner-api/internal/http/handlers"
	"github.com/wolfplanner/wolf-planner-api/internal/identity"
	"github.com/wolfplanner/wolf-planner-api/internal/middleware"
	"github.com/wolfplanner/wolf-planner-api/internal/service"
	"github.com/wolfplanner/wolf-planner-api/internal/storage"
)

// Stores bundles the persistence dependencies the server needs. Injecting
// them keeps the wiring testable with fakes.
type Stores struct {
	Users         storage.UserStore
	Clientes      storage.ClienteStore
	Objetivos     storage.ObjetivoStore
	Investimentos storage.InvestimentoStore
}

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires middleware, services, and routes, and returns a ready server.
func New(cfg config.Config, stores Stores, log *zap.Logger) *Server {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	provider := identity.NewLocalProvider(stores.Users, tokens, cfg.RequireEmailConfirmation)

	owners := service.NewResolver(stores.Clientes, stores.Objetivos, stores.Investimentos)
	clientes := service.NewClienteService(stores.Clientes)
	objetivos := service.NewObjetivoService(stores.Objetivos, owners)
	investimentos := service.NewInvestimentoService(stores.Investimentos, owners)
	carteiras := service.NewCarteiraService(stores.Objetivos, stores.Investimentos, owners)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewAuthHandler(provider).Register(mux)

	protected := http.NewServeMux()
	handlers.NewClienteHandler(clientes).Register(protected)
	handlers.NewCarteiraHandler(objetivos, investimentos, carteiras).Register(protected)
	mux.Handle("/api/clientes", middleware.RequireAuth(provider)(protected))
	mux.Handle("/api/clientes/", middleware.RequireAuth(provider)(protected))
	mux.Handle("/api/carteiras/", middleware.RequireAuth(provider)(protected))

	handler := middleware.CORS(cfg.CORSOrigins)(middleware.Logging(log)(mux))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
