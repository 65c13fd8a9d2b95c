package html

import (
	"errors"
	"html/template"
	"strings"
	"testing"
)

func TestErrorsEmpty(t *testing.T) {
	var e Errors
	if e.Len() != 0 {
		t.Errorf("Fail: %d <=> 0", e.Len())
	}
	if e.Error() != nil {
		t.Errorf("Fail: %s <=> nil", e.Error())
	}
}

func TestErrorsSingle(t *testing.T) {
	var e Errors
	e.Add(errors.New("name is required"))

	if e.Len() != 1 {
		t.Errorf("Fail: %d <=> 1", e.Len())
	}
	if got := e.Error().Error(); got != "name is required" {
		t.Errorf("Fail: %s <=> name is required", got)
	}
}

func TestErrorsJoined(t *testing.T) {
	var e Errors
	e.Add(errors.New("one"))
	e.Add(errors.New("two"))

	if got := e.Error().Error(); got != "one---two" {
		t.Errorf("Fail: %s <=> one---two", got)
	}
}

func TestToErrorList(t *testing.T) {
	out, ok := ToErrorList("one---two").(template.HTML)
	if !ok {
		t.Fatal("Fail: should return safe html")
	}

	s := string(out)
	if strings.Count(s, "<li>") != 2 {
		t.Errorf("Fail: %s should hold two items", s)
	}
	if !strings.Contains(s, `<ul class="errors">`) {
		t.Errorf("Fail: %s should open a list", s)
	}
	if !strings.Contains(s, "</ul>") {
		t.Errorf("Fail: %s should close the list", s)
	}
}

func TestToErrorListFromError(t *testing.T) {
	var e Errors
	e.Add(errors.New("one"))
	e.Add(errors.New("two"))

	s := string(ToErrorList(e.Error()).(template.HTML))
	if strings.Count(s, "<li>") != 2 {
		t.Errorf("Fail: %s should hold two items", s)
	}
}

func TestToErrorListInvalidType(t *testing.T) {
	if got := ToErrorList(42); got != "Invalid type" {
		t.Errorf("Fail: %v <=> Invalid type", got)
	}
}
