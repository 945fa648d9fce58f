package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestSessionGeneratesIDWhenMissing(t *testing.T) {
	t.Parallel()

	var seen string
	handler := Session(nil)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = SessionIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatal("session id missing from context")
	}
	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("session id %q is not a uuid", seen)
	}
	if got := rec.Header().Get("X-Session-Id"); got != seen {
		t.Fatalf("header = %q, context = %q", got, seen)
	}
}

func TestSessionKeepsValidHeader(t *testing.T) {
	t.Parallel()

	want := uuid.NewString()
	var seen string
	handler := Session(nil)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = SessionIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Session-Id", want)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seen != want {
		t.Fatalf("session id = %q, want %q", seen, want)
	}
}

func TestSessionRejectsMalformedHeader(t *testing.T) {
	t.Parallel()

	var seen string
	handler := Session(nil)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = SessionIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Session-Id", "../../etc/passwd")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("malformed header not replaced, got %q", seen)
	}
	if seen == "../../etc/passwd" {
		t.Fatal("malformed session id passed through")
	}
}
