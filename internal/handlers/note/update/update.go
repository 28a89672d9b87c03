package update

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

// Request fields are pointers so an omitted field can be told apart from
// a zero value; omitted fields keep their stored value.
type Request struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	IsPinned *bool   `json:"is_pinned"`
}

type NoteResolver interface {
	ResolveOwnedNote(userID, noteID int) (*models.Note, error)
}

type NoteUpdater interface {
	UpdateNote(note *models.Note) error
}

func New(log *slog.Logger, notes NoteResolver, noteUpdater NoteUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.note.update.New"

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

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request body"))
			return
		}
		if req.Title != nil && *req.Title == "" {
			log.Error("empty title in request")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("title must not be empty"))
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
			render.JSON(w, r, response.Error("failed to update note"))
			return
		}

		if req.Title != nil {
			note.Title = *req.Title
		}
		if req.Content != nil {
			note.Content = *req.Content
		}
		if req.Category != nil {
			note.Category = req.Category
		}
		if req.IsPinned != nil {
			note.IsPinned = *req.IsPinned
		}

		err = noteUpdater.UpdateNote(note)
		if errors.Is(err, storage.ErrNoteNotFound) {
			log.Info("note not found", slog.Int("note_id", noteID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("note not found"))
			return
		}
		if err != nil {
			log.Error("failed to update note", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update note"))
			return
		}

		log.Info("note updated", slog.Int("note_id", noteID))
		render.JSON(w, r, note)
	}
}
