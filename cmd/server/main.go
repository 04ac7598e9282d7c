package main

import (
	"log/slog"
	"net/http"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/joho/godotenv/autoload"

	"library/internal/catalog"
	"library/internal/config"
	"library/internal/filter"
	"library/internal/logger"
	"library/internal/opds"
	"library/internal/response"
	"library/internal/server"
)

func main() {
	_, thisFile, _, _ := runtime.Caller(0)

	cfg, err := config.Load()
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}

	err = logger.SetupSLog(os.Stderr, cfg.LogLevel, cfg.LogFormat, path.Dir(path.Dir(path.Dir(thisFile))), middleware.RequestIDKey)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}

	books := catalog.Sample()
	slog.Info("Loaded catalog", slog.Int("books", books.Len()), slog.String("locale", cfg.Locale.String()))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Mount("/api", server.Handler(
		books,
		filter.NewEngine(cfg.Locale),
		&opds.Builder{CoverBaseUrl: cfg.CoverBaseUrl, StartHref: "/api/opds/books"},
		&response.Responder{DebugMode: cfg.DebugMode, Logger: slog.Default().With(slog.String("component", "api"))},
	))

	srv := &http.Server{
		Addr:         cfg.BindAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Listening on " + cfg.BindAddr)
	slog.Error("aborting: " + srv.ListenAndServe().Error())
	os.Exit(1)
}
