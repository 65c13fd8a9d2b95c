package flash

import (
	"net/http"
	"time"
)

// Secure marks the flash cookie https-only. Apps should flip this on in
// production; tests and local dev talk plain http.
var Secure = false

// Set inserts a cookie into the response that contains the flash message
func Set(w http.ResponseWriter, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "flash",
		Value:    msg,
		Expires:  time.Time{},
		Secure:   Secure,
		HttpOnly: true,
		Path:     "/",
	})
}

// Get obtains the value within the flash cookie, then clears the value to prevent
// it from being seen in the next response.
func Get(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie("flash")
	if err != nil {
		return ""
	}
	val := c.Value
	Set(w, "")
	return val
}
