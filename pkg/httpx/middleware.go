// Package httpx provides the small HTTP plumbing shared by the accounts
// handlers: JSON responses, middleware chaining, bearer-session
// authentication and per-key rate limiting.
package httpx

import "net/http"

// Middleware wraps an http.Handler with extra behavior.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares to h so the first middleware listed is the
// outermost (runs first on the way in, last on the way out).
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
