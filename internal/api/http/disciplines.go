package http

import (
	"encoding/json"
	"net/http"

	auth "github.com/quizforge/quizforge/internal/auth/middleware"
	"github.com/quizforge/quizforge/internal/session"
	"github.com/quizforge/quizforge/internal/workspace"
)

// GET /api/disciplines?q=математика
func SearchDisciplinesHandler(svc *workspace.Service) http.HandlerFunc {
	type out struct {
		Query string                  `json:"query"`
		Hits  []session.DisciplineHit `json:"hits"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.SubjectFromContext(r.Context())
		q := r.URL.Query().Get("q")
		hits, err := svc.Search(r.Context(), userID, q)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		if hits == nil {
			hits = []session.DisciplineHit{}
		}
		_ = json.NewEncoder(w).Encode(out{Query: q, Hits: hits})
	}
}
