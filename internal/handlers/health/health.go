package health

import (
	"log/slog"
	"net/http"

	"notepad/pkg/logger/sl"

	"github.com/go-chi/render"
)

type Response struct {
	Status string `json:"status"`
}

type Pinger interface {
	Ping() error
}

func New(log *slog.Logger, store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.health.New"

		if err := store.Ping(); err != nil {
			log.Error("storage unreachable", slog.String("op", op), sl.Err(err))
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, Response{Status: "unhealthy"})
			return
		}
		render.JSON(w, r, Response{Status: "healthy"})
	}
}
