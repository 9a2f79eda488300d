// Campus FAQ chatbot with intent admin console and placement predictor.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/rishabhsssrrr13/ppss/internal/api"
	"github.com/rishabhsssrrr13/ppss/internal/bot"
	"github.com/rishabhsssrrr13/ppss/internal/config"
	"github.com/rishabhsssrrr13/ppss/internal/placement"
	"github.com/rishabhsssrrr13/ppss/internal/session"
	"github.com/rishabhsssrrr13/ppss/internal/store"
	"github.com/rishabhsssrrr13/ppss/web"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port)

	// Initialize dependencies.
	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

	seeded, err := repo.SeedIntents(context.Background(), store.DefaultIntents())
	if err != nil {
		slog.Error("Failed to seed default intents", "error", err)
		os.Exit(1)
	}
	if seeded > 0 {
		slog.Info("Seeded default intents", "count", seeded)
	}

	// Placement prediction is optional: without a model artifact the rest
	// of the application still works.
	var predictor *placement.Predictor
	if cfg.ModelPath != "" {
		clf, err := placement.LoadClassifier(cfg.ModelPath)
		if err != nil {
			slog.Warn("Failed to load placement model, placement prediction disabled", "path", cfg.ModelPath, "error", err)
		} else {
			resultLog, err := placement.NewResultLog(cfg.PlacementLogPath)
			if err != nil {
				slog.Error("Failed to initialize placement result log", "error", err)
				os.Exit(1)
			}
			predictor = placement.NewPredictor(clf, resultLog)
			slog.Info("Placement model loaded", "path", cfg.ModelPath)
		}
	} else {
		slog.Info("Placement prediction disabled (MODEL_PATH not set)")
	}

	// Initialize services.
	responder := bot.NewResponder(repo)
	sessions := session.NewManager(cfg.SessionTimeout)

	handler, err := api.NewHandler(repo, responder, predictor, sessions, cfg.AdminPassword, web.Templates())
	if err != nil {
		slog.Error("Failed to initialize handlers", "error", err)
		os.Exit(1)
	}

	// Setup router.
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	handler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
