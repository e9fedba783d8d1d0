package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/chorus-search/chorus/internal/engine"
	"github.com/chorus-search/chorus/internal/model"
)

// FieldMap names the keys of one provider's JSON hit object.
type FieldMap struct {
	URL       string `yaml:"url"`
	Title     string `yaml:"title"`
	Content   string `yaml:"content"`
	Thumbnail string `yaml:"thumbnail"`
	Author    string `yaml:"author"`
}

// JSONAPIConfig parameterizes one JSON-API provider.
type JSONAPIConfig struct {
	Descriptor engine.Descriptor
	// URL is the request template; see expandURL for placeholders.
	URL     string
	Headers map[string]string
	Cookies []string
	// ResultsPath is the dotted path to the array of hits in the response
	// object, e.g. "organic_results" or "data.items".
	ResultsPath string
	// SuggestionsPath optionally points at an array of suggestion strings.
	SuggestionsPath string
	Fields          FieldMap
	Category        string
	Template        string
	// SafeSearch and TimeRanges translate canonical levels into the
	// provider's parameter values for the URL template.
	SafeSearch map[string]string
	TimeRanges map[string]string
	// TokenURL, when set, is fetched out-of-band by the caller (PrimeToken)
	// and the response body is passed back in as a bearer token through
	// Params.EngineData under TokenDataKey.
	TokenURL     string
	TokenDataKey string
}

// JSONAPI is an engine backed by a JSON search API. The same type serves
// every JSON provider; only the configuration differs.
type JSONAPI struct {
	cfg JSONAPIConfig
}

// NewJSONAPI creates a JSON-API engine from cfg.
func NewJSONAPI(cfg JSONAPIConfig) *JSONAPI {
	return &JSONAPI{cfg: cfg}
}

func (j *JSONAPI) Descriptor() engine.Descriptor { return j.cfg.Descriptor }

func (j *JSONAPI) BuildRequest(query string, p model.Params) (model.RequestSpec, error) {
	headers := make(map[string]string, len(j.cfg.Headers)+1)
	for k, v := range j.cfg.Headers {
		headers[k] = v
	}
	if j.cfg.TokenDataKey != "" {
		token, ok := p.EngineData[j.cfg.TokenDataKey]
		if !ok || token == "" {
			return model.RequestSpec{}, fmt.Errorf("engine %s: missing token under %q", j.cfg.Descriptor.Name, j.cfg.TokenDataKey)
		}
		headers["Authorization"] = "Bearer " + token
	}

	return model.RequestSpec{
		URL:     expandURL(j.cfg.URL, query, p, j.cfg.SafeSearch, j.cfg.TimeRanges),
		Method:  http.MethodGet,
		Headers: headers,
		Cookies: j.cfg.Cookies,
	}, nil
}

// ParseResponse extracts hits via the configured field mapping. Malformed
// input yields an empty batch, never an error.
func (j *JSONAPI) ParseResponse(body []byte, _ model.Params) (model.ParsedBatch, error) {
	var root map[string]any
	if err := json.Unmarshal(body, &root); err != nil {
		return model.ParsedBatch{}, nil
	}

	batch := model.ParsedBatch{}
	for _, item := range lookupArray(root, j.cfg.ResultsPath) {
		hit, ok := item.(map[string]any)
		if !ok {
			continue
		}
		r := model.Result{
			URL:       stringField(hit, j.cfg.Fields.URL),
			Title:     stringField(hit, j.cfg.Fields.Title),
			Content:   stringField(hit, j.cfg.Fields.Content),
			Thumbnail: stringField(hit, j.cfg.Fields.Thumbnail),
			Author:    stringField(hit, j.cfg.Fields.Author),
			Category:  j.cfg.Category,
			Template:  j.cfg.Template,
		}
		if r.URL == "" {
			continue
		}
		batch.Results = append(batch.Results, r)
	}

	for _, item := range lookupArray(root, j.cfg.SuggestionsPath) {
		if s, ok := item.(string); ok {
			batch.Suggestions = append(batch.Suggestions, s)
		}
	}

	return batch, nil
}

// PrimeToken fetches the provider's session token. Engines without a
// configured token URL prime nothing.
func (j *JSONAPI) PrimeToken(ctx context.Context, client *http.Client) (key, value string, err error) {
	if j.cfg.TokenURL == "" {
		return "", "", nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, j.cfg.TokenURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("token request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("fetch token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("read token: %w", err)
	}
	return j.cfg.TokenDataKey, strings.TrimSpace(string(raw)), nil
}

// lookupArray resolves a dotted path like "data.items" to an array value.
func lookupArray(root map[string]any, path string) []any {
	if path == "" {
		return nil
	}
	var cur any = root
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[part]
	}
	arr, _ := cur.([]any)
	return arr
}

func stringField(hit map[string]any, key string) string {
	if key == "" {
		return ""
	}
	s, _ := hit[key].(string)
	return s
}
