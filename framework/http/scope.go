package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/km-arc/go-container/framework/container"
)

var (
	// RequestKey resolves the current *http.Request inside a request scope.
	RequestKey = container.NewToken("http.request")

	// RequestIDKey resolves the chi request id (empty without middleware.RequestID).
	RequestIDKey = container.NewToken("http.request_id")
)

// ErrNoScope is returned when a request carries no container scope.
var ErrNoScope = errors.New("http: no container scope on request")

type scopeContextKey struct{}

// WithScope returns a copy of ctx carrying scope.
func WithScope(ctx context.Context, scope *container.Container) context.Context {
	return context.WithValue(ctx, scopeContextKey{}, scope)
}

// ScopeFrom returns the scope stored in ctx.
func ScopeFrom(ctx context.Context) (*container.Container, bool) {
	scope, ok := ctx.Value(scopeContextKey{}).(*container.Container)
	return scope, ok && scope != nil
}

// ScopeMiddleware derives one scope from root per request. The scope knows
// the request under RequestKey and RequestIDKey, is reachable through
// ScopeFrom, and has its Scoped instances released when the handler returns.
//
//	router := routing.New(gohttp.ScopeMiddleware(app.Container))
func ScopeMiddleware(root *container.Container) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scope := root.CreateScope()
			defer scope.ClearScope()

			r = r.WithContext(WithScope(r.Context(), scope))
			scope.RegisterInstance(RequestKey, r)
			scope.RegisterInstance(RequestIDKey, middleware.GetReqID(r.Context()))

			next.ServeHTTP(w, r)
		})
	}
}

// Resolve resolves id from the request's scope.
//
//	repo, err := gohttp.Resolve[*UserRepository](r, "users")
func Resolve[T any](r *http.Request, id any) (T, error) {
	scope, ok := ScopeFrom(r.Context())
	if !ok {
		var zero T
		return zero, ErrNoScope
	}
	return container.Resolve[T](scope, id)
}

// View exposes the request scope's bindings as named properties.
func View(r *http.Request, props map[string]any) (*container.View, error) {
	scope, ok := ScopeFrom(r.Context())
	if !ok {
		return nil, ErrNoScope
	}
	return container.NewView(scope, props), nil
}
