// Package middleware provides the HTTP middleware stack for the REST
// surface: request identity, logging, recovery, auth, CORS, and rate
// limiting, composed with Chain.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Chain folds several middleware into one. Order matters:
// Chain(mw1, mw2)(h) yields mw1(mw2(h)), so mw1 runs outermost.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
