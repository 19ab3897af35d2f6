package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eknows/eknows-api/internal/auth"
)

func newProtectedEcho(registry *auth.Registry) *echo.Echo {
	e := echo.New()
	g := e.Group("/api/teacher")
	g.Use(BearerAuth(registry))
	g.GET("/whoami", func(c echo.Context) error {
		return c.String(http.StatusOK, fmt.Sprint(c.Get("user_id")))
	})
	return e
}

func get(e *echo.Echo, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/teacher/whoami", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestBearerAuthValidToken(t *testing.T) {
	registry := auth.NewRegistry(10)
	tok := registry.Issue(7)
	e := newProtectedEcho(registry)

	rec := get(e, "Bearer "+tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "7" {
		t.Fatalf("user_id = %q, want 7", rec.Body.String())
	}
}

func TestBearerAuthRejects(t *testing.T) {
	registry := auth.NewRegistry(10)
	tok := registry.Issue(7)
	e := newProtectedEcho(registry)

	cases := []struct {
		name  string
		authz string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic " + tok},
		{"no space", "Bearer" + tok},
		{"unknown token", "Bearer " + strings.Repeat("z", auth.TokenLength)},
		{"empty token", "Bearer "},
	}
	for _, tc := range cases {
		rec := get(e, tc.authz)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", tc.name, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Unauthorized") {
			t.Fatalf("%s: body = %s", tc.name, rec.Body.String())
		}
	}
}

func TestBearerAuthEvictedToken(t *testing.T) {
	registry := auth.NewRegistry(2)
	old := registry.Issue(1)
	registry.Issue(2)
	registry.Issue(3) // evicts the first token
	e := newProtectedEcho(registry)

	rec := get(e, "Bearer "+old)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 for evicted token", rec.Code)
	}
}
