package logout

import (
	"log/slog"
	"net/http"

	"notepad/pkg/api/response"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// New acknowledges the logout. Tokens are not revoked; they stay valid
// until their natural expiry.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.logout.New"

		log.Info("user logged out",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		render.JSON(w, r, response.OK())
	}
}
