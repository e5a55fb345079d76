// Package http exposes the workspace over a JSON API. Handlers are thin:
// subject comes from the auth context, everything else is delegated to
// the workspace service.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	auth "github.com/quizforge/quizforge/internal/auth/middleware"
	"github.com/quizforge/quizforge/internal/session"
	"github.com/quizforge/quizforge/internal/workspace"
)

// Document bodies are plain extracted text; 10 MiB is far above any real
// upload.
const maxDocumentBytes = 10 << 20

// PUT /api/documents/{kind}  (body: text/plain)
func UploadDocumentHandler(svc *workspace.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.SubjectFromContext(r.Context())
		if userID == "" {
			http.Error(w, "no subject", http.StatusUnauthorized)
			return
		}
		kind := chi.URLParam(r, "kind")
		if !session.ValidKind(kind) {
			http.Error(w, "unknown document kind", http.StatusBadRequest)
			return
		}
		body, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes+1))
		if err != nil {
			http.Error(w, "read body", http.StatusBadRequest)
			return
		}
		if len(body) > maxDocumentBytes {
			http.Error(w, "document too large", http.StatusRequestEntityTooLarge)
			return
		}
		stats, err := svc.IngestDocument(r.Context(), userID, kind, string(body))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(stats)
	}
}

// DELETE /api/documents
func DeleteDocumentsHandler(svc *workspace.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.SubjectFromContext(r.Context())
		had, err := svc.DeleteDocuments(r.Context(), userID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]bool{"deleted": had})
	}
}

// GET /api/documents/status
func StatusHandler(svc *workspace.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.SubjectFromContext(r.Context())
		stats, err := svc.Status(r.Context(), userID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(stats)
	}
}

// statusFor maps workspace errors to HTTP codes. Missing documents and a
// missing prior search are client-state problems, not server faults.
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrNoCompetencyDoc),
		errors.Is(err, session.ErrNoQuestionDoc),
		errors.Is(err, session.ErrNoSearch):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
