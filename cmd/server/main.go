// Command server starts the Wolf Planner HTTP API.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/wolfplanner/wolf-planner-api/internal/config"
	"github.com/wolfplanner/wolf-planner-api/internal/server"
	"github.com/wolfplanner/wolf-planner-api/internal/storage/postgres"
)

func main() {
	log, _ := zap.NewProduction()
	defer func() { _ = log.Sync() }()

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found; relying on existing environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("init database", zap.Error(err))
	}
	defer db.Close()

	stores := server.Stores{
		Users:         postgres.NewUserStore(db),
		Clientes:      postgres.NewClienteStore(db),
		Objetivos:     postgres.NewObjetivoStore(db),
		Investimentos: postgres.NewInvestimentoStore(db),
	}
	srv := server.New(cfg, stores, log)

	go func() {
		log.Info("wolf-planner-api listening", zap.String("addr", cfg.HTTPAddress()))
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Error("graceful shutdown error", zap.Error(err))
	}
}
