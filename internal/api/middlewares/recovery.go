package middlewares

import (
	"log"
	"net/http"
	"runtime/debug"
)

// Recovery turns handler panics into plain 500s so one bad request cannot
// take the process down.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			rid := GetRequestID(r)
			if rid == "" {
				rid = "-"
			}
			log.Printf("[PANIC] rid=%s %s %s: %v\n%s", rid, r.Method, r.URL.Path, v, debug.Stack())
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}
