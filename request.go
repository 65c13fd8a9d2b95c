package modalview

import (
	"net/http"
	"net/url"
)

// ajaxHeader is the header xhr clients send along with modal requests.
const ajaxHeader = "X-Requested-With"

// IsAjax reports whether the request was made through XMLHttpRequest. The
// views branch on this to decide between a full page and a modal fragment.
func IsAjax(r *http.Request) bool {
	return r.Header.Get(ajaxHeader) == "XMLHttpRequest"
}

// requestState captures what the response pipeline needs to know about the
// incoming request. It is computed once per request and never mutated, so
// views stay safe to share between goroutines.
type requestState struct {
	ajax     bool
	utilMode bool
	path     string
	query    url.Values
}

func classify(r *http.Request) requestState {
	q := r.URL.Query()
	return requestState{
		ajax: IsAjax(r),
		// a bare ?util= does not count, the marker needs a value
		utilMode: q.Get("util") != "",
		path:     r.URL.Path,
		query:    q,
	}
}
