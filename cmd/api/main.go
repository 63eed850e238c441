// Package main is the entry point for the Finanzas Personales API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/finanzas-personales/backend/config"
	"github.com/finanzas-personales/backend/internal/infra/db"
	"github.com/finanzas-personales/backend/internal/infra/dependency"
	"github.com/finanzas-personales/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Finanzas Personales API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.SavingsGoalModel{},
		&model.PaymentModel{},
		&model.CreditCardModel{},
		&model.TimelessPaymentModel{},
		&model.TimelessContributionModel{},
		&model.WishlistItemModel{},
		&model.SettingModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Wire dependencies and set up routes
	injector := dependency.NewInjector(cfg, database.DB(), logger)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Background engine: run the cut-off cycle and the reminder sweep once
	// at startup and then on every tick.
	engineCtx, stopEngine := context.WithCancel(context.Background())
	go runEngine(engineCtx, injector, cfg.Engine.TickInterval)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopEngine()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// runEngine drives the periodic background passes until ctx is cancelled.
func runEngine(ctx context.Context, injector *dependency.Injector, interval time.Duration) {
	runEnginePass(ctx, injector)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runEnginePass(ctx, injector)
		}
	}
}

// runEnginePass executes one cut-off cycle evaluation and one reminder sweep.
func runEnginePass(ctx context.Context, injector *dependency.Injector) {
	cycleOutput, err := injector.RunCutOffCycle.Execute(ctx)
	if err != nil {
		slog.Error("Cut-off cycle pass failed", "error", err)
	} else if len(cycleOutput.GeneratedPayments) > 0 {
		slog.Info("Cut-off cycle generated payments",
			"payments", len(cycleOutput.GeneratedPayments),
			"cards", len(cycleOutput.ProcessedCards),
		)
	}

	reminderOutput, err := injector.SendDueReminders.Execute(ctx)
	if err != nil {
		slog.Error("Reminder sweep failed", "error", err)
	} else if reminderOutput.Sent > 0 {
		slog.Info("Reminders sent", "count", reminderOutput.Sent)
	}
}
