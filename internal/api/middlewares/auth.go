package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/httpx"
	jwtutil "github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/security/jwt"
)

// RequireAuth verifies a Bearer JWT and injects the subject into the
// request context. There is a single librarian account, so no user
// lookup is needed beyond signature and expiry checks.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("Authorization")
		if raw == "" {
			httpx.Error(w, http.StatusUnauthorized, "missing Authorization header")
			return
		}
		tokenStr, err := bearer(raw)
		if err != nil {
			httpx.Error(w, http.StatusUnauthorized, "invalid Authorization header")
			return
		}
		claims, err := jwtutil.ParseAccess(tokenStr)
		if err != nil {
			httpx.Error(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := WithUserID(r.Context(), claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearer(h string) (string, error) {
	if !strings.HasPrefix(h, "Bearer ") && !strings.HasPrefix(h, "bearer ") {
		return "", errors.New("no bearer")
	}
	return strings.TrimSpace(h[len("Bearer "):]), nil
}

const ctxKeyUserID ctxKey = 1

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKeyUserID, userID)
}

func UserIDFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyUserID).(string)
	return v, ok && v != ""
}
