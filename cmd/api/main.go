package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/gelato/internal/config"
	gelatoHttp "github.com/MrJamesThe3rd/gelato/internal/http"
	"github.com/MrJamesThe3rd/gelato/internal/shop"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	store, closer, err := shop.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open storage", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer closer.Close()

	s, err := shop.Open(ctx, store, shop.Options{Currency: cfg.App.Currency})
	if err != nil {
		slog.Error("failed to load shop data", "error", err)
		os.Exit(1)
	}

	router := gelatoHttp.New(cfg.Server.CORSOrigins, gelatoHttp.NewHandlers(s))

	port := fmt.Sprintf(":%d", cfg.App.Port)

	server := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	go func() {
		slog.Info("starting server", "app", cfg.App.Name, "port", port, "backend", cfg.Storage.Backend)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shut down server", "error", err)
	}
}
