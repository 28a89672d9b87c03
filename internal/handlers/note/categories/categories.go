package categories

import (
	"errors"
	"log/slog"
	"net/http"

	JWTMiddleware "notepad/internal/middleware"
	"notepad/internal/models"
	"notepad/internal/storage"
	"notepad/pkg/api/response"
	"notepad/pkg/logger/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type AccountResolver interface {
	ResolveAccount(userID int) (*models.User, error)
}

type CategoryGetter interface {
	GetCategories(userID int) ([]string, error)
}

func New(log *slog.Logger, accounts AccountResolver, categoryGetter CategoryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.note.categories.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		userID := JWTMiddleware.GetUserID(r.Context())
		if userID == 0 {
			log.Error("unauthorized: no user_id in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		if _, err := accounts.ResolveAccount(userID); err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				log.Warn("user not found", slog.Int("user_id", userID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
				return
			}
			log.Error("failed to resolve user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get categories"))
			return
		}

		cats, err := categoryGetter.GetCategories(userID)
		if err != nil {
			log.Error("failed to get categories", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get categories"))
			return
		}

		log.Info("categories delivered", slog.Int("count", len(cats)))
		render.JSON(w, r, cats)
	}
}
