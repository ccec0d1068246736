package middlewares

import (
	"net/http"
	"time"
)

type timedWriter struct {
	http.ResponseWriter
	start   time.Time
	stamped bool
}

// stamp must run before headers are flushed to the wire.
func (w *timedWriter) stamp() {
	if w.stamped {
		return
	}
	w.stamped = true
	w.Header().Set("X-Response-Time", time.Since(w.start).String())
}

func (w *timedWriter) WriteHeader(code int) {
	w.stamp()
	w.ResponseWriter.WriteHeader(code)
}

func (w *timedWriter) Write(b []byte) (int, error) {
	w.stamp()
	return w.ResponseWriter.Write(b)
}

// ResponseTimeMiddleware reports handler latency in X-Response-Time.
func ResponseTimeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &timedWriter{ResponseWriter: w, start: time.Now()}
		next.ServeHTTP(tw, r)
		// 204 and HEAD responses may never write
		tw.stamp()
	})
}
