package get

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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type NoteResolver interface {
	ResolveOwnedNote(userID, noteID int) (*models.Note, error)
}

func New(log *slog.Logger, notes NoteResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.note.get.New"

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

		noteID, err := strconv.Atoi(chi.URLParam(r, "note_id"))
		if err != nil {
			log.Error("invalid note id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid note id"))
			return
		}

		note, err := notes.ResolveOwnedNote(userID, noteID)
		if errors.Is(err, storage.ErrNoteNotFound) {
			log.Info("note not found", slog.Int("note_id", noteID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("note not found"))
			return
		}
		if err != nil {
			log.Error("failed to get note", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get note"))
			return
		}

		log.Info("note delivered", slog.Int("note_id", noteID))
		render.JSON(w, r, note)
	}
}
