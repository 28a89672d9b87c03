package getall

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

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

type AllNoteGetter interface {
	GetAllNotes(userID int, category *string, isPinned *bool) ([]models.Note, error)
}

func New(log *slog.Logger, accounts AccountResolver, allNoteGetter AllNoteGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.note.getall.New"

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

		var category *string
		if c := r.URL.Query().Get("category"); c != "" {
			category = &c
		}
		var isPinned *bool
		if p := r.URL.Query().Get("isPinned"); p != "" {
			v, err := strconv.ParseBool(p)
			if err != nil {
				log.Error("invalid isPinned filter", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid isPinned filter"))
				return
			}
			isPinned = &v
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
			render.JSON(w, r, response.Error("failed to get notes"))
			return
		}

		notes, err := allNoteGetter.GetAllNotes(userID, category, isPinned)
		if err != nil {
			log.Error("failed to get notes", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get notes"))
			return
		}

		log.Info("notes delivered", slog.Int("count", len(notes)))
		render.JSON(w, r, notes)
	}
}
