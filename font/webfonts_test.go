package font

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseWebVariant(t *testing.T) {
	tests := []struct {
		in   string
		want Variant
	}{
		{"regular", Variant{}},
		{"italic", Variant{Style: Italic}},
		{"700", Variant{Weight: Bold}},
		{"700italic", Variant{Weight: Bold, Style: Italic}},
		{"100", Variant{Weight: Thin}},
		{"300italic", Variant{Weight: Light, Style: Italic}},
	}

	for _, tt := range tests {
		got, err := parseWebVariant(tt.in)
		if err != nil {
			t.Errorf("parseWebVariant(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseWebVariant(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := parseWebVariant("chunky"); err == nil {
		t.Error("parseWebVariant(\"chunky\") succeeded, want error")
	}
}

func TestWebFontsSourceList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key = %q, want %q", got, "test-key")
		}
		_, _ = w.Write([]byte(`{
			"items": [
				{
					"family": "Roboto",
					"files": {
						"regular": "http://fonts/roboto-regular",
						"700italic": "http://fonts/roboto-bold-italic",
						"wiggly": "http://fonts/roboto-wiggly"
					}
				},
				{
					"family": "Lato",
					"files": {"300": "http://fonts/lato-light"}
				}
			]
		}`))
	}))
	defer srv.Close()

	src := NewWebFontsSource("test-key", WithWebFontsEndpoint(srv.URL), WithWebFontsClient(srv.Client()))
	families, err := src.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(families) != 2 {
		t.Fatalf("families = %d, want 2", len(families))
	}

	var roboto *Family
	for _, f := range families {
		if f.Name == "Roboto" {
			roboto = f
		}
	}
	if roboto == nil {
		t.Fatal("Roboto missing from listing")
	}
	// The unparseable "wiggly" variant is dropped.
	if roboto.Len() != 2 {
		t.Errorf("Roboto variants = %d, want 2", roboto.Len())
	}
	url, ok := roboto.Locator(Variant{Weight: Bold, Style: Italic})
	if !ok || url != "http://fonts/roboto-bold-italic" {
		t.Errorf("Locator(bold italic) = %q, %v", url, ok)
	}
}

func TestWebFontsSourceListErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	src := NewWebFontsSource("k", WithWebFontsEndpoint(srv.URL))
	if _, err := src.List(context.Background()); err == nil {
		t.Error("List with 403 response succeeded, want error")
	}
}
