package auth

import (
	"net/http"
	"os"
	"strings"

	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/httpx"
	jwtutil "github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/security/jwt"
	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/security/password"
)

// Login serves POST /auth/login for the single librarian account
// configured via LIBRARIAN_EMAIL and LIBRARIAN_PASSWORD_HASH (argon2id
// PHC string). Issues an HS256 access token on success.
func Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := httpx.DecodeJSON(r, &body); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid JSON")
			return
		}

		email := os.Getenv("LIBRARIAN_EMAIL")
		phc := os.Getenv("LIBRARIAN_PASSWORD_HASH")
		if email == "" || phc == "" {
			httpx.Error(w, http.StatusServiceUnavailable, "login not configured")
			return
		}

		if !strings.EqualFold(strings.TrimSpace(body.Email), email) {
			httpx.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		ok, err := password.Verify(body.Password, phc)
		if err != nil || !ok {
			httpx.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		ttl := jwtutil.DefaultAccessTTL()
		token, _, err := jwtutil.SignAccess(email, ttl)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "failed to sign token")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"token":     token,
			"expiresIn": int(ttl.Seconds()),
		})
	}
}
