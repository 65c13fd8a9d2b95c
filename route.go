package modalview

import (
	"net/http"
	"strings"
)

// Route matches a request against path patterns and exposes the params the
// pattern captured. It keeps small apps that mount a handful of modals from
// needing a router dependency.
type Route struct {
	req    *http.Request
	params map[string]string
}

// NewRoute wraps the request for matching.
func NewRoute(r *http.Request) Route {
	return Route{req: r}
}

// MatchesPath reports whether the request path fits the pattern. Pattern
// parts starting with ':' capture the matching path part; a trailing '*'
// accepts any remainder. Captured param formats are not validated.
//	route.MatchesPath("/modals/:name")
func (r *Route) MatchesPath(pattern string) bool {
	if !strings.ContainsAny(pattern, ":*") {
		return strings.Trim(r.req.URL.Path, "/") == strings.Trim(pattern, "/")
	}

	pathParts := splitPath(r.req.URL.Path)
	patternParts := splitPath(pattern)

	if patternParts[len(patternParts)-1] == "*" {
		patternParts = patternParts[:len(patternParts)-1]
		if len(pathParts) < len(patternParts) {
			return false
		}
		pathParts = pathParts[:len(patternParts)]
	} else if len(pathParts) != len(patternParts) {
		return false
	}

	params := make(map[string]string)
	for i, part := range patternParts {
		if part == "" {
			continue
		}
		if part[0] == ':' {
			params[part[1:]] = pathParts[i]
			continue
		}
		if part != pathParts[i] {
			return false
		}
	}
	r.params = params
	return true
}

// Matches is MatchesPath with a method check first. The method compare is
// case insensitive.
//	route.Matches("GET", "/modals/:name")
func (r *Route) Matches(method, pattern string) bool {
	return strings.EqualFold(r.req.Method, method) && r.MatchesPath(pattern)
}

// Get returns the value captured for the named pattern param, with or
// without its leading ':'.
func (r *Route) Get(name string) string {
	return r.params[strings.TrimPrefix(name, ":")]
}

// Contains indicates if the value exists anywhere within the request path.
func (r *Route) Contains(val string) bool {
	return strings.Contains(r.req.URL.Path, val)
}

func splitPath(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}
