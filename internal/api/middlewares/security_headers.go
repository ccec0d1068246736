package middlewares

import (
	"net/http"
	"os"
)

var baseSecurityHeaders = map[string]string{
	"X-Content-Type-Options":  "nosniff",
	"X-Frame-Options":         "DENY",
	"X-XSS-Protection":        "1; mode=block",
	"X-DNS-Prefetch-Control":  "off",
	"Referrer-Policy":         "no-referrer",
	"Cache-Control":           "no-store, no-cache, must-revalidate, max-age=0",
	"Content-Security-Policy": "default-src 'self'",
}

func SecurityHeaders(next http.Handler) http.Handler {
	strict := os.Getenv("STRICT_SECURITY") == "1"

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for k, v := range baseSecurityHeaders {
			h.Set(k, v)
		}
		// HSTS only means anything over HTTPS
		if r.TLS != nil {
			h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload")
		}
		// COOP/COEP interfere with the presigned cover redirects in some
		// embeds, so they stay opt-in.
		if strict {
			h.Set("Cross-Origin-Opener-Policy", "same-origin")
			h.Set("Cross-Origin-Embedder-Policy", "require-corp")
			h.Set("Cross-Origin-Resource-Policy", "same-origin")
		}
		h.Set("Server", "")

		next.ServeHTTP(w, r)
	})
}
