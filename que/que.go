// Package que chains context passing middleware in front of http handlers.
// Each middleware returns the context the next one receives; returning a
// cancelled context stops the chain, which is how csrf.Verify aborts a bad
// post after writing its status.
package que

import (
	"context"
	"net/http"
)

// Middleware runs before the handler. It receives the context produced by
// the previous middleware and returns the one handed to the next.
type Middleware func(context.Context, http.ResponseWriter, *http.Request) context.Context

// HandlerFunc is an http.HandlerFunc that also receives the chain's context.
type HandlerFunc func(context.Context, http.ResponseWriter, *http.Request)

// Handler mirrors http.Handler with the chain's context as the first
// argument.
type Handler interface {
	ServeHTTP(context.Context, http.ResponseWriter, *http.Request)
}

// Q holds an ordered middleware chain.
type Q struct {
	ops []Middleware
}

// New starts a chain with the passed middleware, run in order.
//	q := que.New(headers.Set("X-Frame-Options", "SAMEORIGIN"), csrf.Verify)
func New(ops ...Middleware) *Q {
	return &Q{ops: ops}
}

// Add appends more middleware to the chain.
//	q := que.New(que.SetMethod)
//	q.Add(csrf.Verify)
func (q *Q) Add(ops ...Middleware) {
	q.ops = append(q.ops, ops...)
}

// Run executes the chain on its own, which is mostly useful in tests.
//	r := httptest.NewRequest("GET", "/", nil)
//	w := httptest.NewRecorder()
//	q.Run(r.Context(), w, r)
func (q *Q) Run(c context.Context, w http.ResponseWriter, r *http.Request) {
	q.apply(c, w, r)
}

// apply threads the context through every middleware. ok is false when one
// of them cancelled, meaning the response has already been written.
func (q *Q) apply(c context.Context, w http.ResponseWriter, r *http.Request) (_ context.Context, ok bool) {
	for _, op := range q.ops {
		c = op(c, w, r)
		if c.Err() != nil {
			return c, false
		}
	}
	return c, true
}

// HandleFunc wraps fn with the chain and returns a plain handler func a mux
// can mount.
//	mux.HandleFunc("/modals/about", q.HandleFunc(showAbout))
func (q *Q) HandleFunc(fn HandlerFunc) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if c, ok := q.apply(r.Context(), w, r); ok {
			fn(c, w, r)
		}
	}
}

// Handle wraps h with the chain.
func (q *Q) Handle(h Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, ok := q.apply(r.Context(), w, r); ok {
			h.ServeHTTP(c, w, r)
		}
	})
}
