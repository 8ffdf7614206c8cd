package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"rentrisk/internal/config"
	"rentrisk/internal/database"
	"rentrisk/internal/handler"
	"rentrisk/internal/mw"
	"rentrisk/internal/schema"
	"rentrisk/internal/service"
)

func main() {
	cfg := config.New()

	logLevel := &slog.LevelVar{}
	logLevel.Set(slog.LevelInfo)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	mode, err := schema.ParseMode(cfg.SchemaCheckMode)
	if err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	// The registry is captured at dataset build time and is read-only for
	// the lifetime of the process, like the model it describes.
	registry, err := schema.Load(cfg.SchemaPath)
	if err != nil {
		slog.Error("failed to load schema registry", "error", err)
		os.Exit(1)
	}

	db, err := database.NewDB(cfg.DatabaseURI)
	if err != nil {
		slog.Error("failed to connect to DB", "error", err)
		os.Exit(1)
	}
	defer database.CloseDB(db)

	store := service.NewOrderStore(db)
	recon := service.NewReconstructor(store)
	clf := service.NewHTTPClassifier(cfg.ClassifierAddress)
	gate := service.NewGate(recon, registry, clf, mode)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.NotFound(handler.NotFound)
	r.Get("/debug/{level}", handler.DebugHandler(logLevel))

	r.Group(func(r chi.Router) {
		if cfg.JWTSecret != "" {
			r.Use(mw.ServiceAuth(cfg.JWTSecret))
		}
		r.Get("/ml_result/{order_id}", handler.PredictHandler(gate))
	})

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("starting server", "addr", cfg.RunAddress, "schema_columns", registry.Size(), "check_mode", string(mode))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-quit
	slog.Info("shutting down...")

	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}
