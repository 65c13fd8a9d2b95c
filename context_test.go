package modalview

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDataSetError(t *testing.T) {
	d := NewData()

	d.SetError("boom")
	if d["Error"] != "boom" {
		t.Errorf("string error not set: %v", d["Error"])
	}

	d.SetError(errors.New("bang"))
	if d["Error"] != "bang" {
		t.Errorf("error value not set: %v", d["Error"])
	}

	d.SetError(42)
	if d["Error"] != "" {
		t.Errorf("unknown type should clear the error: %v", d["Error"])
	}
}

func TestDataSet(t *testing.T) {
	d := NewData()
	d.Set("foo", "bar")
	if d["foo"] != "bar" {
		t.Error("Set fail")
	}
}

func TestTemplateDataReservedKeysWin(t *testing.T) {
	v := NewView()
	v.Title = "Real title"
	v.Data = Data{"title": "masked", "extra": "kept"}
	v.DataFunc = func(r *http.Request) Data {
		return Data{"description": "masked too", "per_request": r.URL.Path}
	}

	r := httptest.NewRequest("GET", "http://example.com/demo", nil)
	data := v.templateData(r, nil)

	if data["title"] != "Real title" {
		t.Errorf("extras must not mask the title: %v", data["title"])
	}
	if data["description"] != "description" {
		t.Errorf("extras must not mask the description: %v", data["description"])
	}
	if data["extra"] != "kept" {
		t.Error("static extras should be carried")
	}
	if data["per_request"] != "/demo" {
		t.Error("per request extras should be carried")
	}
}

func TestTemplateDataContextKeys(t *testing.T) {
	v := NewView()
	r := httptest.NewRequest("GET", "http://example.com/demo", nil)
	data := v.templateData(r, NewResponse("done", ""))

	keys := []string{
		"title",
		"description",
		"button_close",
		"content_template_name",
		"base_template_name",
		"icon",
		"response",
	}
	for _, key := range keys {
		if _, ok := data[key]; !ok {
			t.Errorf("missing context key %s", key)
		}
	}

	resp := data["response"].(*Response)
	if resp.Text != "done" || resp.Result != ResultInfo {
		t.Errorf("unexpected response entry: %+v", resp)
	}
}
