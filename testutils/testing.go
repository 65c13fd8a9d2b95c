// Package testutils builds the requests and template fixtures the view
// tests lean on.
package testutils

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// NewRequest builds a plain request the way a browser address bar would
// issue it.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewAjaxRequest builds a request the way the modal client script issues
// it, with the XMLHttpRequest marker header set.
func NewAjaxRequest(method, target string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	r.Header.Set("X-Requested-With", "XMLHttpRequest")
	return r
}

// NewFormRequest builds a POST carrying the values form encoded.
func NewFormRequest(target string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// NewAjaxFormRequest is NewFormRequest with the XMLHttpRequest marker set.
func NewAjaxFormRequest(target string, values url.Values) *http.Request {
	r := NewFormRequest(target, values)
	r.Header.Set("X-Requested-With", "XMLHttpRequest")
	return r
}

// WriteViewFixtures drops the given name to content template files into a
// temp dir and returns its path for use as a renderer view path.
func WriteViewFixtures(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing fixture %s: %v", name, err)
		}
	}
	return dir
}
