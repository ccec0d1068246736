package middlewares

import (
	"net/http"
	"slices"
)

// Query params the API understands. Request bodies are JSON, so only the
// query string needs scrubbing: unknown params are stripped and duplicates
// collapse to their first value, keeping polluted input away from handlers.
var knownParams = []string{
	"search", "genre", "authorName", "page", "limit", "sortBy", "order",
}

func HPP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		changed := false
		for k, v := range q {
			if !slices.Contains(knownParams, k) {
				q.Del(k)
				changed = true
				continue
			}
			if len(v) > 1 {
				q.Set(k, v[0])
				changed = true
			}
		}
		if changed {
			r.URL.RawQuery = q.Encode()
		}
		next.ServeHTTP(w, r)
	})
}
