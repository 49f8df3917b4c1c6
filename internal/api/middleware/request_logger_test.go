package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func serve(t *testing.T, h echo.HandlerFunc) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	e := echo.New()
	e.Use(RequestLogger(zerolog.New(&buf)))
	e.GET("/api/empresas", h)

	req := httptest.NewRequest(http.MethodGet, "/api/empresas", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid log line %q: %v", buf.String(), err)
	}
	return entry
}

func TestRequestLogger_Success(t *testing.T) {
	entry := serve(t, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if entry["level"] != "info" {
		t.Fatalf("expected info level, got %v", entry["level"])
	}
	if entry["method"] != "GET" || entry["uri"] != "/api/empresas" {
		t.Fatalf("unexpected request fields: %+v", entry)
	}
	if entry["status"] != float64(http.StatusOK) {
		t.Fatalf("expected status 200, got %v", entry["status"])
	}
	if entry["request_id"] != "req-1" {
		t.Fatalf("expected request id req-1, got %v", entry["request_id"])
	}
}

func TestRequestLogger_ServerError(t *testing.T) {
	entry := serve(t, func(c echo.Context) error {
		return errors.New("mongo down")
	})

	if entry["level"] != "error" {
		t.Fatalf("expected error level, got %v", entry["level"])
	}
	if entry["status"] != float64(http.StatusInternalServerError) {
		t.Fatalf("expected status 500, got %v", entry["status"])
	}
	if entry["error"] != "mongo down" {
		t.Fatalf("expected error field, got %v", entry["error"])
	}
}

func TestRequestLogger_ClientError(t *testing.T) {
	entry := serve(t, func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "nope")
	})

	if entry["level"] != "warn" {
		t.Fatalf("expected warn level, got %v", entry["level"])
	}
}
