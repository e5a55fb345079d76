package rbac

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheckerDefaults(t *testing.T) {
	c := NewChecker(nil)
	if !c.Has("user", "quiz:generate") {
		t.Fatal("user should generate quizzes")
	}
	if c.Has("user", "events:read") {
		t.Fatal("user should not reach unlisted permissions")
	}
	if !c.Has("admin", "events:read") {
		t.Fatal("admin wildcard should match everything")
	}
	if c.Has("nobody", "doc:search") {
		t.Fatal("unknown role should have nothing")
	}
}

func TestCheckerPrefixWildcard(t *testing.T) {
	c := NewChecker(map[string][]string{"ops": {"doc:*"}})
	if !c.Has("ops", "doc:upload") || c.Has("ops", "quiz:generate") {
		t.Fatal("prefix wildcard mismatch")
	}
}

func TestRequireMiddleware(t *testing.T) {
	h := Require("doc:search")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(WithRole(context.Background(), "user")))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("allowed role got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("missing role got %d", rec.Code)
	}
}
