package modalview

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// Payload types carried in the json envelope.
const (
	PayloadContent  = "content"
	PayloadRedirect = "redirect"
)

// Payload is the json envelope xhr clients receive. Content payloads carry
// rendered markup to inject into the page; redirect payloads carry the
// location the client script should navigate to.
type Payload struct {
	Type       string `json:"type"`
	Content    string `json:"content,omitempty"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

func contentPayload(markup string) Payload {
	return Payload{Type: PayloadContent, Content: markup}
}

func redirectPayload(target string) Payload {
	return Payload{Type: PayloadRedirect, RedirectTo: target}
}

// viewError mirrors the logged fields in the json body handed to clients
// that asked for json.
type viewError struct {
	URL        *url.URL `json:"url"`
	Method     string   `json:"method"`
	StatusCode int      `json:"statusCode"`
	Err        string   `json:"message"`
}

func writeJSON(w http.ResponseWriter, logger zerolog.Logger, data interface{}) {
	w.Header().Add("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error().Err(err).Msg("encoding json response")
	}
}

func writeHTML(w http.ResponseWriter, markup string) {
	w.Header().Add("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(markup))
}

// abort ends the request early due to an error. The failure is logged with
// the details required to identify the issue and a json body is handed to
// xhr clients and those that accept json.
func abort(w http.ResponseWriter, r *http.Request, logger zerolog.Logger, statusCode int, err error) {
	vErr := &viewError{
		URL:        r.URL,
		Method:     r.Method,
		StatusCode: statusCode,
	}
	if err != nil {
		vErr.Err = err.Error()
	}

	logger.Error().
		Str("method", r.Method).
		Stringer("url", r.URL).
		Int("status", statusCode).
		Err(err).
		Msg("request aborted")

	w.WriteHeader(statusCode)
	if strings.Index(r.Header.Get("Accept"), "application/json") >= 0 || IsAjax(r) {
		json.NewEncoder(w).Encode(vErr)
	}
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
