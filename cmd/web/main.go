// Command web serves the browser UI for managing users. It holds the UI
// state per browser session and talks to the API service over HTTP.
package main

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/fkhayef/simpleapp/internal/client"
	"github.com/fkhayef/simpleapp/internal/config"
	"github.com/fkhayef/simpleapp/internal/health"
	"github.com/fkhayef/simpleapp/internal/logging"
	"github.com/fkhayef/simpleapp/internal/server"
	mw "github.com/fkhayef/simpleapp/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.LoadWeb()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	api := client.NewAPIClient(cfg.APIBaseURL, cfg.APITimeout)
	web := client.NewWebHandler(api, logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(mw.Logger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", health.NewHandler(nil).Live)
	r.Mount("/", web.Routes())

	srv := server.New(r, server.Options{
		Port:            cfg.Port,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)

	logger.Info("starting web server", "port", cfg.Port, "api", cfg.APIBaseURL, "env", cfg.AppEnv)
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
