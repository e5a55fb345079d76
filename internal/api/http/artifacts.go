package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	auth "github.com/quizforge/quizforge/internal/auth/middleware"
	"github.com/quizforge/quizforge/internal/docgen"
	"github.com/quizforge/quizforge/internal/docstore"
	"github.com/quizforge/quizforge/internal/workspace"
)

// GET /api/artifacts
func ListArtifactsHandler(svc *workspace.Service) http.HandlerFunc {
	type entry struct {
		docstore.Artifact
		URL string `json:"url,omitempty"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.SubjectFromContext(r.Context())
		arts, err := svc.Artifacts(r.Context(), userID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		out := make([]entry, 0, len(arts))
		for _, a := range arts {
			out = append(out, entry{Artifact: a, URL: svc.ArtifactURL(a)})
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}

// GET /api/artifacts/{artifactID}/download
func DownloadArtifactHandler(svc *workspace.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.SubjectFromContext(r.Context())
		id := chi.URLParam(r, "artifactID")
		rc, art, err := svc.OpenArtifact(r.Context(), userID, id)
		if errors.Is(err, docstore.ErrNotFound) {
			http.Error(w, "artifact not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rc.Close()
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+docgen.Filename(art.Discipline)+`.txt"`)
		_, _ = io.Copy(w, rc)
	}
}
