package adapter

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/chorus-search/chorus/internal/engine"
	"github.com/chorus-search/chorus/internal/model"
)

// Selectors names the CSS selectors used to pull hits out of a provider's
// HTML result page.
type Selectors struct {
	// Result matches one hit container; the remaining selectors are
	// evaluated relative to it.
	Result  string `yaml:"result"`
	Link    string `yaml:"link"`
	Title   string `yaml:"title"`
	Snippet string `yaml:"snippet"`
}

// HTMLPageConfig parameterizes one HTML-scraping provider.
type HTMLPageConfig struct {
	Descriptor engine.Descriptor
	URL        string
	Headers    map[string]string
	Cookies    []string
	Selectors  Selectors
	Category   string
	Template   string
	SafeSearch map[string]string
	TimeRanges map[string]string
}

// HTMLPage is an engine that scrapes a provider's HTML result page.
type HTMLPage struct {
	cfg HTMLPageConfig
}

// NewHTMLPage creates an HTML-scraping engine from cfg.
func NewHTMLPage(cfg HTMLPageConfig) *HTMLPage {
	return &HTMLPage{cfg: cfg}
}

func (h *HTMLPage) Descriptor() engine.Descriptor { return h.cfg.Descriptor }

func (h *HTMLPage) BuildRequest(query string, p model.Params) (model.RequestSpec, error) {
	return model.RequestSpec{
		URL:     expandURL(h.cfg.URL, query, p, h.cfg.SafeSearch, h.cfg.TimeRanges),
		Method:  http.MethodGet,
		Headers: h.cfg.Headers,
		Cookies: h.cfg.Cookies,
	}, nil
}

// ParseResponse extracts hits with the configured selectors. Pages that do
// not match (layout change, block page) yield an empty batch, not an error.
func (h *HTMLPage) ParseResponse(body []byte, _ model.Params) (model.ParsedBatch, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return model.ParsedBatch{}, nil
	}

	batch := model.ParsedBatch{}
	doc.Find(h.cfg.Selectors.Result).Each(func(_ int, sel *goquery.Selection) {
		link, _ := sel.Find(h.cfg.Selectors.Link).First().Attr("href")
		if link == "" {
			return
		}
		batch.Results = append(batch.Results, model.Result{
			URL:      link,
			Title:    strings.TrimSpace(sel.Find(h.cfg.Selectors.Title).First().Text()),
			Content:  strings.TrimSpace(sel.Find(h.cfg.Selectors.Snippet).First().Text()),
			Category: h.cfg.Category,
			Template: h.cfg.Template,
		})
	})

	return batch, nil
}
