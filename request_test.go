package modalview

import (
	"net/http/httptest"
	"testing"
)

func TestClassifyAjax(t *testing.T) {
	r := httptest.NewRequest("GET", "http://example.com/modals/demo", nil)
	if st := classify(r); st.ajax {
		t.Error("plain request classified as ajax")
	}

	r.Header.Set("X-Requested-With", "XMLHttpRequest")
	if st := classify(r); !st.ajax {
		t.Error("xhr request not classified as ajax")
	}
}

func TestClassifyUtilMarker(t *testing.T) {
	type test struct {
		url      string
		utilMode bool
	}

	tests := []test{
		{url: "/demo", utilMode: false},
		{url: "/demo?util=true", utilMode: true},
		{url: "/demo?util=1", utilMode: true},
		{url: "/demo?util=", utilMode: false},
		{url: "/demo?util", utilMode: false},
		{url: "/demo?other=true", utilMode: false},
	}

	for _, test := range tests {
		r := httptest.NewRequest("GET", "http://example.com"+test.url, nil)
		st := classify(r)
		if st.utilMode != test.utilMode {
			t.Errorf("Fail: %s => %v", test.url, st.utilMode)
		}
	}
}

func TestClassifyPathAndQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "http://example.com/modals/run?util=true&x=5", nil)
	st := classify(r)
	if st.path != "/modals/run" {
		t.Errorf("unexpected path: %s", st.path)
	}
	if st.query.Get("x") != "5" {
		t.Errorf("unexpected query: %v", st.query)
	}
}
