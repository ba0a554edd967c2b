// @title           SimpleApp Users API
// @version         1.0
// @description     Minimal user management: list, create and delete users.
// @host            localhost:8080
// @BasePath        /api
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/fkhayef/simpleapp/internal/config"
	"github.com/fkhayef/simpleapp/internal/database"
	"github.com/fkhayef/simpleapp/internal/database/migrations"
	"github.com/fkhayef/simpleapp/internal/health"
	"github.com/fkhayef/simpleapp/internal/logging"
	"github.com/fkhayef/simpleapp/internal/server"
	"github.com/fkhayef/simpleapp/internal/user"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "driver", cfg.DatabaseDriver, "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database", "driver", cfg.DatabaseDriver)

	// Migrations are best-effort: a failure is logged and the service still starts.
	migrate(context.Background(), logger, cfg.DatabaseDriver, db)

	userRepo, err := user.NewRepository(cfg.DatabaseDriver, db)
	if err != nil {
		logger.Error("failed to create user repository", "error", err)
		os.Exit(1)
	}
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService, logger)
	healthHandler := health.NewHandler(db)

	r := newRouter(routerDeps{
		users:          userHandler,
		health:         healthHandler,
		allowedOrigins: cfg.CORSAllowedOrigins,
		logger:         logger,
	})

	srv := server.New(r, server.Options{
		Port:            cfg.Port,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)
	srv.OnShutdown("database", func(ctx context.Context) error {
		return db.Close()
	})

	logger.Info("starting API server", "port", cfg.Port, "env", cfg.AppEnv)
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func migrate(ctx context.Context, logger *slog.Logger, driver string, db *sql.DB) {
	dialect, err := migrations.ForDriver(driver)
	if err != nil {
		logger.Error("failed to apply migrations", "error", err)
		return
	}

	applied, err := migrations.Run(ctx, db, dialect)
	if err != nil {
		logger.Error("failed to apply migrations", "error", err)
		return
	}
	logger.Info("database migrations applied", "count", len(applied))
}
