package que

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSetMethod(t *testing.T) {
	r := httptest.NewRequest("POST", "http://example.com/items/3", strings.NewReader("_method=put"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	SetMethod(r.Context(), httptest.NewRecorder(), r)

	if r.Method != "PUT" {
		t.Errorf("Fail: %s <=> PUT", r.Method)
	}
}

func TestSetMethodWithoutOverride(t *testing.T) {
	r := httptest.NewRequest("POST", "http://example.com/items", strings.NewReader("name=thing"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	SetMethod(r.Context(), httptest.NewRecorder(), r)

	if r.Method != "POST" {
		t.Errorf("Fail: %s <=> POST", r.Method)
	}
}

func TestSetMethodGet(t *testing.T) {
	r := httptest.NewRequest("GET", "http://example.com/items", nil)

	SetMethod(r.Context(), httptest.NewRecorder(), r)

	if r.Method != "GET" {
		t.Errorf("Fail: %s <=> GET", r.Method)
	}
}
