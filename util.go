package modalview

import (
	"context"
	"errors"
	"net/url"
)

// Util is a named action a modal can trigger. It receives the merged query
// arguments; returning an error aborts the request with a 500 instead of
// rendering the modal.
type Util func(ctx context.Context, args url.Values) (UtilResult, error)

// Utils maps action names onto their implementations. Views are wired to a
// name at construction, never by reflection at request time.
type Utils map[string]Util

// UtilResult is what a finished action hands back to its view.
type UtilResult struct {
	// Response is shown inside the modal when no redirect happens.
	Response *Response

	// RedirectTo overrides the view's preset redirect target.
	RedirectTo string
}

// ErrUtilNotRegistered marks a view wired to an action name missing from
// its Utils map.
var ErrUtilNotRegistered = errors.New("no util registered under the name")

// mergeArgs lays the request query over the preset arguments; on collision
// the query wins.
func mergeArgs(preset, query url.Values) url.Values {
	merged := url.Values{}
	for k, vals := range preset {
		merged[k] = append([]string(nil), vals...)
	}
	for k, vals := range query {
		merged[k] = append([]string(nil), vals...)
	}
	return merged
}
