package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"notepad/pkg/logger/handlers/slogdiscard"
)

type pingerFunc func() error

func (f pingerFunc) Ping() error { return f() }

func TestHealth(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		handler := New(slogdiscard.NewDiscardLogger(), pingerFunc(func() error { return nil }))

		req, _ := http.NewRequest("GET", "/api/health", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", rr.Code)
		}
		var resp Response
		json.Unmarshal(rr.Body.Bytes(), &resp)
		if resp.Status != "healthy" {
			t.Errorf("Expected healthy, got %q", resp.Status)
		}
	})

	t.Run("Storage down", func(t *testing.T) {
		handler := New(slogdiscard.NewDiscardLogger(), pingerFunc(func() error {
			return errors.New("connection refused")
		}))

		req, _ := http.NewRequest("GET", "/api/health", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected status 503, got %d", rr.Code)
		}
		var resp Response
		json.Unmarshal(rr.Body.Bytes(), &resp)
		if resp.Status != "unhealthy" {
			t.Errorf("Expected unhealthy, got %q", resp.Status)
		}
	})
}
