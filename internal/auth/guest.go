package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	authmw "github.com/quizforge/quizforge/internal/auth/middleware"
)

// GuestLoginHandler issues a token for an anonymous workspace. A cookie
// pins the guest identity to the browser so a reload keeps the same
// documents.
func GuestLoginHandler(a *authmw.AuthService, enabled bool) http.HandlerFunc {
	type out struct {
		AccessToken string `json:"access_token"`
		Username    string `json:"username"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !enabled {
			http.Error(w, "guest auth disabled", http.StatusForbidden)
			return
		}

		// The cookie is client-controlled: reuse it only when the suffix
		// looks like an id we could have issued.
		userID := ""
		if c, err := r.Cookie("qf_guest_id"); err == nil && strings.HasPrefix(c.Value, "guest|") &&
			len(c.Value) >= len("guest|")+8 {
			userID = c.Value
		}
		if userID == "" {
			userID = "guest|" + uuid.NewString()
		}

		tok, err := a.IssueJWT(userID, "user")
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     "qf_guest_id",
			Value:    userID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Expires:  time.Now().Add(30 * 24 * time.Hour),
		})
		_ = json.NewEncoder(w).Encode(out{AccessToken: tok, Username: strings.TrimPrefix(userID, "guest|")[:8]})
	}
}
