package main

import (
	"log/slog"
	"net/http"
	"os"

	"notepad/internal/config"
	"notepad/internal/guard"
	"notepad/internal/handlers/health"
	"notepad/internal/handlers/note/categories"
	noteDelete "notepad/internal/handlers/note/delete"
	noteGet "notepad/internal/handlers/note/get"
	"notepad/internal/handlers/note/getall"
	noteSave "notepad/internal/handlers/note/save"
	noteUpdate "notepad/internal/handlers/note/update"
	"notepad/internal/handlers/user/login"
	"notepad/internal/handlers/user/logout"
	"notepad/internal/handlers/user/me"
	"notepad/internal/handlers/user/register"
	JWTMiddleware "notepad/internal/middleware"
	"notepad/internal/storage/postgres"
	"notepad/pkg/auth"
	"notepad/pkg/logger/handlers/slogpretty"
	"notepad/pkg/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.Load()
	log := setupLogger(cfg.Env)

	log.Info("starting notepad service", slog.String("env", cfg.Env))
	log.Debug("debug log enabled")

	storage, err := postgres.New(cfg.StoragePath)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	tokens := auth.New(cfg.TokenSecret, cfg.TokenTTL)
	ownership := guard.New(storage, storage)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/api/health", health.New(log, storage))
	router.Post("/api/register", register.New(log, storage, tokens))
	router.Post("/api/login", login.New(log, storage, tokens))
	router.Post("/api/logout", logout.New(log))

	router.Group(func(r chi.Router) {
		r.Use(JWTMiddleware.JWT(tokens))
		r.Get("/api/me", me.New(log, ownership))
		r.Route("/api/notes", func(r chi.Router) {
			r.Post("/", noteSave.New(log, ownership, storage))
			r.Get("/", getall.New(log, ownership, storage))
			r.Get("/categories", categories.New(log, ownership, storage))
			r.Get("/{note_id}", noteGet.New(log, ownership))
			r.Put("/{note_id}", noteUpdate.New(log, ownership, storage))
			r.Delete("/{note_id}", noteDelete.New(log, storage))
		})
	})

	log.Info("starting server", slog.String("address", cfg.Address))
	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Error("failed to start server")
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}
	handler := opts.NewPrettyHandler(os.Stdout)
	return slog.New(handler)
}
