package headers

import (
	"context"
	"net/http"

	"github.com/debianitram/modalview/que"
)

// Set sets the response header to the key and value provided
func Set(key, value string) que.Middleware {
	return func(c context.Context, w http.ResponseWriter, r *http.Request) context.Context {
		w.Header().Set(key, value)
		return c
	}
}
