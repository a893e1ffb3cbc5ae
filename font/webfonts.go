package font

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nyble/textual"
)

// webFontsEndpoint is the Google Web Fonts directory API.
const webFontsEndpoint = "https://www.googleapis.com/webfonts/v1/webfonts"

// WebFontsSource is a CatalogSource backed by the Google Web Fonts API.
type WebFontsSource struct {
	key      string
	endpoint string
	client   *http.Client
}

// WebFontsOption configures a WebFontsSource.
type WebFontsOption func(*WebFontsSource)

// WithWebFontsClient sets the HTTP client used for the directory request.
func WithWebFontsClient(client *http.Client) WebFontsOption {
	return func(s *WebFontsSource) {
		s.client = client
	}
}

// WithWebFontsEndpoint overrides the directory endpoint. Intended for tests.
func WithWebFontsEndpoint(endpoint string) WebFontsOption {
	return func(s *WebFontsSource) {
		s.endpoint = endpoint
	}
}

// NewWebFontsSource creates a source that lists the Google Web Fonts
// directory with the given API key.
func NewWebFontsSource(apiKey string, opts ...WebFontsOption) *WebFontsSource {
	s := &WebFontsSource{
		key:      apiKey,
		endpoint: webFontsEndpoint,
		client:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// webFontsListing mirrors the fields of the directory response we care
// about. Files maps variant strings ("regular", "700italic", "300") to
// download URLs.
type webFontsListing struct {
	Items []struct {
		Family string            `json:"family"`
		Files  map[string]string `json:"files"`
	} `json:"items"`
}

// List implements CatalogSource.
func (s *WebFontsSource) List(ctx context.Context) ([]*Family, error) {
	before := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.endpoint+"?key="+url.QueryEscape(s.key), nil)
	if err != nil {
		return nil, fmt.Errorf("font: building webfonts request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("font: requesting webfonts listing: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("font: webfonts listing: unexpected status %s", resp.Status)
	}

	var listing webFontsListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("font: decoding webfonts listing: %w", err)
	}

	families := make([]*Family, 0, len(listing.Items))
	for _, item := range listing.Items {
		fam := NewFamily(item.Family)

		for variantName, fileURL := range item.Files {
			v, err := parseWebVariant(variantName)
			if err != nil {
				textual.Logger().Warn("skipping unrecognised webfonts variant",
					"family", item.Family, "variant", variantName)
				continue
			}
			fam.Add(v, fileURL)
		}

		families = append(families, fam)
	}

	textual.Logger().Info("webfonts listing fetched",
		"families", len(families), "elapsed", time.Since(before))

	return families, nil
}

// parseWebVariant parses the directory's variant strings. They come in
// three forms: the word "regular", "<weight>italic", or a bare weight.
func parseWebVariant(s string) (Variant, error) {
	if s == "regular" {
		return Variant{}, nil
	}

	if weight, ok := strings.CutSuffix(s, "italic"); ok {
		// A bare "italic" means regular weight.
		v := Variant{Style: Italic}
		if weight == "" {
			return v, nil
		}
		w, err := ParseWeight(weight)
		if err != nil {
			return Variant{}, err
		}
		v.Weight = w
		return v, nil
	}

	w, err := ParseWeight(s)
	if err != nil {
		return Variant{}, err
	}
	return Variant{Weight: w}, nil
}
