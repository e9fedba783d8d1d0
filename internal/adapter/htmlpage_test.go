package adapter_test

import (
	"testing"
	"time"

	"github.com/chorus-search/chorus/internal/adapter"
	"github.com/chorus-search/chorus/internal/engine"
	"github.com/chorus-search/chorus/internal/model"
)

func htmlEngine() *adapter.HTMLPage {
	return adapter.NewHTMLPage(adapter.HTMLPageConfig{
		Descriptor: engine.Descriptor{
			Name:       "htmlx",
			Shortcut:   "h",
			Categories: []string{"general"},
			Timeout:    3 * time.Second,
			Weight:     1,
		},
		URL: "https://web.test/search?q={query}&p={page}",
		Selectors: adapter.Selectors{
			Result:  "div.result",
			Link:    "a.url",
			Title:   "h3",
			Snippet: "p.snippet",
		},
		Category: "general",
	})
}

func TestHTMLPageBuildRequest(t *testing.T) {
	spec, err := htmlEngine().BuildRequest("hello world", model.Params{Page: 3})
	if err != nil {
		t.Fatalf("BuildRequest: %v", err)
	}
	if spec.URL != "https://web.test/search?q=hello+world&p=3" {
		t.Errorf("URL = %q", spec.URL)
	}
}

func TestHTMLPageParseResponse(t *testing.T) {
	body := []byte(`<html><body>
		<div class="result">
			<h3> First hit </h3>
			<a class="url" href="https://a.com/1">link</a>
			<p class="snippet">snippet one</p>
		</div>
		<div class="result">
			<h3>No link, dropped</h3>
			<p class="snippet">snippet</p>
		</div>
		<div class="result">
			<a class="url" href="https://a.com/2">link</a>
			<h3>Second hit</h3>
			<p class="snippet">snippet two</p>
		</div>
	</body></html>`)

	batch, err := htmlEngine().ParseResponse(body, model.Params{})
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}
	if len(batch.Results) != 2 {
		t.Fatalf("got %d results, want 2 (link-less container dropped)", len(batch.Results))
	}
	if batch.Results[0].URL != "https://a.com/1" {
		t.Errorf("first URL = %q", batch.Results[0].URL)
	}
	if batch.Results[0].Title != "First hit" {
		t.Errorf("title = %q, want trimmed %q", batch.Results[0].Title, "First hit")
	}
	if batch.Results[0].Content != "snippet one" {
		t.Errorf("content = %q", batch.Results[0].Content)
	}
	if batch.Results[0].Category != "general" {
		t.Errorf("category = %q, want general", batch.Results[0].Category)
	}
}

func TestHTMLPageParseResponseNoMatches(t *testing.T) {
	batch, err := htmlEngine().ParseResponse([]byte("<html><body><p>blocked</p></body></html>"), model.Params{})
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}
	if len(batch.Results) != 0 {
		t.Errorf("got %d results from a page with no matches, want 0", len(batch.Results))
	}
}
