package delete

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	JWTMiddleware "notepad/internal/middleware"
	"notepad/internal/storage/memory"
	"notepad/pkg/logger/handlers/slogdiscard"

	"github.com/go-chi/chi/v5"
)

func TestDeleteNote(t *testing.T) {
	store := memory.New()
	alice, _ := store.SaveUser("a@x.com", "pw1")
	bob, _ := store.SaveUser("b@x.com", "pw2")
	handler := New(slogdiscard.NewDiscardLogger(), store)

	del := func(userID int, noteID string) *httptest.ResponseRecorder {
		req, _ := http.NewRequest("DELETE", "/api/notes/"+noteID, nil)

		chiCtx := chi.NewRouteContext()
		chiCtx.URLParams.Add("note_id", noteID)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
		req = req.WithContext(JWTMiddleware.WithUserID(req.Context(), userID))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	t.Run("Delete then delete again", func(t *testing.T) {
		note, _ := store.SaveNote(alice, "T1", "", nil, false)
		id := strconv.Itoa(note.ID)

		if rr := del(alice, id); rr.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rr.Code)
		}
		if rr := del(alice, id); rr.Code != http.StatusNotFound {
			t.Errorf("Expected status 404 on second delete, got %d", rr.Code)
		}
	})

	t.Run("Foreign note looks absent", func(t *testing.T) {
		note, _ := store.SaveNote(alice, "T2", "", nil, false)

		if rr := del(bob, strconv.Itoa(note.ID)); rr.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rr.Code)
		}
		if _, err := store.GetNote(alice, note.ID); err != nil {
			t.Errorf("Note should still exist for owner: %v", err)
		}
	})

	t.Run("Invalid note id", func(t *testing.T) {
		if rr := del(alice, "abc"); rr.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rr.Code)
		}
	})
}
