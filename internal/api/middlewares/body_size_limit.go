package middlewares

import (
	"net/http"
	"os"
	"strconv"
)

// Covers go straight to S3 through presigned URLs, so bodies here are JSON
// documents; 5MB leaves ample headroom.
const defaultMaxBody = 5 << 20

func BodySizeLimit(next http.Handler) http.Handler {
	limit := int64(defaultMaxBody)
	if v, err := strconv.ParseInt(os.Getenv("MAX_BODY_SIZE"), 10, 64); err == nil && v > 0 {
		limit = v
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
