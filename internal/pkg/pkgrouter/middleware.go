package pkgrouter

import (
	"context"
	"net/http"
)

// Middleware wraps an http.Handler, typically to add cross-cutting behavior.
type Middleware func(http.Handler) http.Handler

// Chain applies middleware in order, returning the final wrapped handler.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

type routeContextKey struct{}

// RouteFromContext returns the registered route template ("/anime/info/:id")
// serving the request, or "" outside a registered route.
func RouteFromContext(ctx context.Context) string {
	route, _ := ctx.Value(routeContextKey{}).(string)
	return route
}

// withRoute stores the route template so logging and metrics label requests
// by route instead of by raw path.
func withRoute(path string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), routeContextKey{}, path)))
		})
	}
}
