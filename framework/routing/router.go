package routing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router is the application's HTTP route table, backed by chi. Handlers
// reach request-scoped services through the middleware installed by New.
type Router struct {
	mux chi.Router
}

// New returns a Router whose chain starts with request IDs, client IP
// resolution and panic recovery, then runs mw in the order given.
func New(mw ...func(http.Handler) http.Handler) *Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(mw...)
	return &Router{mux: r}
}

// ── Routes ───────────────────────────────────────────────────────────────────

// Get, Post, Put, Patch and Delete bind h to pattern for one method.
func (r *Router) Get(pattern string, h http.HandlerFunc)    { r.mux.Get(pattern, h) }
func (r *Router) Post(pattern string, h http.HandlerFunc)   { r.mux.Post(pattern, h) }
func (r *Router) Put(pattern string, h http.HandlerFunc)    { r.mux.Put(pattern, h) }
func (r *Router) Patch(pattern string, h http.HandlerFunc)  { r.mux.Patch(pattern, h) }
func (r *Router) Delete(pattern string, h http.HandlerFunc) { r.mux.Delete(pattern, h) }

// ── Sub-routers ──────────────────────────────────────────────────────────────

// Group runs fn on a copy of the route table that can carry its own
// middleware without affecting routes outside fn.
func (r *Router) Group(fn func(r *Router)) {
	r.mux.Group(func(mx chi.Router) {
		fn(&Router{mux: mx})
	})
}

// Prefix mounts the routes declared in fn under pattern.
func (r *Router) Prefix(pattern string, fn func(r *Router)) {
	r.mux.Route(pattern, func(mx chi.Router) {
		fn(&Router{mux: mx})
	})
}

// Middleware appends mw to the chain. chi rejects this on the root router
// once a route exists.
func (r *Router) Middleware(mw ...func(http.Handler) http.Handler) {
	r.mux.Use(mw...)
}

// Param returns the value matched by {key} in the route pattern.
func Param(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

// ServeHTTP dispatches req through the middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Handler exposes the chi mux, e.g. for mounting under another handler.
func (r *Router) Handler() http.Handler {
	return r.mux
}
