// Package form extracts submitted values from plain and multipart encoded
// requests so handlers never care which encoding the browser picked.
package form

import (
	"net/http"
	"net/url"
	"strings"
)

const maxMultipartMemory = 10 << 20

// Values parses the request body and returns the values posted in it. Query
// params are deliberately left out; multipart file parts are left to the
// caller.
func Values(r *http.Request) (url.Values, error) {
	if strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil && err != http.ErrNotMultipart {
			return nil, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
	}
	return r.PostForm, nil
}
