package save

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
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Title    string  `json:"title" validate:"required"`
	Content  string  `json:"content"`
	Category *string `json:"category"`
	IsPinned bool    `json:"is_pinned"`
}

type AccountResolver interface {
	ResolveAccount(userID int) (*models.User, error)
}

type NoteSaver interface {
	SaveNote(userID int, title, content string, category *string, isPinned bool) (*models.Note, error)
}

func New(log *slog.Logger, accounts AccountResolver, noteSaver NoteSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.note.save.New"

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

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}
		if err := validator.New().Struct(req); err != nil {
			validateErr := err.(validator.ValidationErrors)
			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
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
			render.JSON(w, r, response.Error("failed to create note"))
			return
		}

		note, err := noteSaver.SaveNote(userID, req.Title, req.Content, req.Category, req.IsPinned)
		if err != nil {
			log.Error("failed to create note", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create note"))
			return
		}

		log.Info("note created", slog.Int("note_id", note.ID))
		render.Status(r, http.StatusCreated)
		render.JSON(w, r, note)
	}
}
