package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"notepad/pkg/auth"
)

func TestJWTMiddleware(t *testing.T) {
	tokens := auth.New("test-secret", time.Hour)

	var gotUserID int
	handler := JWT(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Valid token", func(t *testing.T) {
		token, err := tokens.Issue(7)
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}

		req, _ := http.NewRequest("GET", "/api/notes", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		gotUserID = 0
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", rr.Code)
		}
		if gotUserID != 7 {
			t.Errorf("Expected user id 7 in context, got %d", gotUserID)
		}
	})

	t.Run("Missing header", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/notes", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", rr.Code)
		}
	})

	t.Run("Bearer prefix missing", func(t *testing.T) {
		token, _ := tokens.Issue(7)

		req, _ := http.NewRequest("GET", "/api/notes", nil)
		req.Header.Set("Authorization", token)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", rr.Code)
		}
	})

	t.Run("Invalid token", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/notes", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", rr.Code)
		}
	})

	t.Run("Expired token", func(t *testing.T) {
		expired := auth.New("test-secret", -time.Minute)
		token, _ := expired.Issue(7)

		req, _ := http.NewRequest("GET", "/api/notes", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", rr.Code)
		}
	})
}

func TestGetUserIDWithoutValue(t *testing.T) {
	req, _ := http.NewRequest("GET", "/", nil)
	if uid := GetUserID(req.Context()); uid != 0 {
		t.Errorf("Expected 0 for missing user id, got %d", uid)
	}
}
