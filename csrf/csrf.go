// Package csrf issues and verifies per-visitor CSRF tokens. A token is the
// bcrypt hash of the server secret joined with the visitor's cookie id, so
// verification needs no server side storage.
package csrf

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/debianitram/modalview/uuid"
)

const (
	// CookieName holds the visitor id the token is bound to.
	CookieName = "app-cookie"

	// FieldName is the form field checked on POST.
	FieldName = "csrfToken"
)

// ErrNoCookie is returned when no visitor cookie exists on the request.
var ErrNoCookie = errors.New("no cookie found")

// ErrInvalidToken is returned when the submitted token fails verification.
var ErrInvalidToken = errors.New("invalid csrf token")

// Secure marks the visitor cookie https-only. Apps should flip this on in
// production; tests and local dev talk plain http.
var Secure = false

var secret string
var anonUUID string

func init() {
	secret = os.Getenv("CSRF_SECRET")
	anonUUID = os.Getenv("ANON_UUID")
}

// Setup overrides the env seeded secret and anonymous visitor id.
func Setup(csrfSecret, anon string) {
	secret = csrfSecret
	anonUUID = anon
}

// EnsureCookie returns the visitor id from the request cookie, minting and
// setting a new one when the request carries none. Pages that launch modals
// call this so the token embedded in the modal is bound to the visitor.
func EnsureCookie(w http.ResponseWriter, r *http.Request) string {
	if id, err := getUUIDFromCookie(r); err == nil {
		return id
	}
	id := uuid.New()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		Expires:  time.Now().Add(time.Hour * 24 * 14),
		HttpOnly: true,
		Secure:   Secure,
		Value:    id,
	})
	return id
}

// Token creates the token for the current visitor
func Token(r *http.Request) string {
	var uuid string
	id, err := getUUIDFromCookie(r)
	if err != nil {
		uuid = anonUUID
	} else {
		uuid = id
	}

	val, err := encrypt(secret + uuid)
	if err != nil {
		return ""
	}
	return val
}

// Check validates the token submitted with the form against the visitor cookie
func Check(r *http.Request) error {
	r.ParseForm()
	token := r.FormValue(FieldName)

	uuid, err := getUUIDFromCookie(r)
	if err == ErrNoCookie {
		uuid = anonUUID
	} else if err != nil {
		return err
	}

	if err := checkCrypt(token, secret+uuid); err != nil {
		return ErrInvalidToken
	}
	return nil
}

// Verify middleware method to check token
func Verify(c context.Context, w http.ResponseWriter, r *http.Request) context.Context {
	if r.Method != http.MethodPost {
		return c
	}

	if err := Check(r); err != nil {
		c2, cancel := context.WithCancel(c)
		cancel()
		w.WriteHeader(http.StatusForbidden)
		return c2
	}
	return c
}

func getUUIDFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || len(cookie.Value) == 0 {
		return "", ErrNoCookie
	}
	return cookie.Value, nil
}
