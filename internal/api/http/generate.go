package http

import (
	"encoding/json"
	"net/http"

	auth "github.com/quizforge/quizforge/internal/auth/middleware"
	"github.com/quizforge/quizforge/internal/docstore"
	"github.com/quizforge/quizforge/internal/workspace"
)

// POST /api/generate  { "seed": 0 }
// Builds one document per discipline matched by the last search.
func GenerateHandler(svc *workspace.Service) http.HandlerFunc {
	type out struct {
		Artifacts []docstore.Artifact `json:"artifacts"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.SubjectFromContext(r.Context())
		var req struct {
			Seed int64 `json:"seed"`
		}
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "bad json", http.StatusBadRequest)
				return
			}
		}
		arts, err := svc.Generate(r.Context(), userID, req.Seed)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		if arts == nil {
			arts = []docstore.Artifact{}
		}
		_ = json.NewEncoder(w).Encode(out{Artifacts: arts})
	}
}
