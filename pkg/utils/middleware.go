package utils

import "net/http"

type Middleware func(http.Handler) http.Handler

// ApplyMiddleware wraps handler so the first middleware listed runs
// outermost.
func ApplyMiddleware(handler http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}
	return handler
}
