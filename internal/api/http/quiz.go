package http

import (
	"encoding/json"
	"errors"
	"net/http"

	auth "github.com/quizforge/quizforge/internal/auth/middleware"
	"github.com/quizforge/quizforge/internal/mining"
	"github.com/quizforge/quizforge/internal/workspace"
)

// POST /api/quiz  { "seed": 0 }
// Seed 0 (or an empty body) draws a fresh quiz; any other seed is
// reproducible. When nothing could be extracted the response carries the
// extraction diagnostics instead of items.
func QuizHandler(svc *workspace.Service) http.HandlerFunc {
	type out struct {
		Items       []mining.Item `json:"items,omitempty"`
		Report      mining.Report `json:"report"`
		Diagnostics []string      `json:"diagnostics,omitempty"`
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
		items, rep, err := svc.Quiz(r.Context(), userID, req.Seed)
		if errors.Is(err, mining.ErrNoQuestions) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(out{Report: rep, Diagnostics: rep.Lines()})
			return
		}
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		_ = json.NewEncoder(w).Encode(out{Items: items, Report: rep})
	}
}
