package adapter

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/chorus-search/chorus/internal/engine"
	"github.com/chorus-search/chorus/internal/model"
)

// FeedConfig parameterizes one RSS/Atom provider.
type FeedConfig struct {
	Descriptor engine.Descriptor
	URL        string
	Headers    map[string]string
	Category   string
	Template   string
	TimeRanges map[string]string
}

// Feed is an engine backed by an RSS 2.0 or Atom feed endpoint.
type Feed struct {
	cfg FeedConfig
}

// NewFeed creates a feed engine from cfg.
func NewFeed(cfg FeedConfig) *Feed {
	return &Feed{cfg: cfg}
}

func (f *Feed) Descriptor() engine.Descriptor { return f.cfg.Descriptor }

func (f *Feed) BuildRequest(query string, p model.Params) (model.RequestSpec, error) {
	return model.RequestSpec{
		URL:     expandURL(f.cfg.URL, query, p, nil, f.cfg.TimeRanges),
		Method:  http.MethodGet,
		Headers: f.cfg.Headers,
	}, nil
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Author      string `xml:"author"`
	PubDate     string `xml:"pubDate"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
}

type atomEntry struct {
	Title     string     `xml:"title"`
	Links     []atomLink `xml:"link"`
	Summary   string     `xml:"summary"`
	Author    string     `xml:"author>name"`
	Published string     `xml:"published"`
	Updated   string     `xml:"updated"`
}

// feedDoc unmarshals both RSS 2.0 (<rss><channel><item>) and Atom
// (<feed><entry>) documents.
type feedDoc struct {
	Items   []rssItem   `xml:"channel>item"`
	Entries []atomEntry `xml:"entry"`
}

// ParseResponse converts feed items into results. Scores are left at zero
// so the executor defaults them to the engine weight. Malformed XML yields
// an empty batch.
func (f *Feed) ParseResponse(body []byte, _ model.Params) (model.ParsedBatch, error) {
	var doc feedDoc
	if err := xml.Unmarshal(body, &doc); err != nil {
		return model.ParsedBatch{}, nil
	}

	batch := model.ParsedBatch{}
	for _, it := range doc.Items {
		if it.Link == "" {
			continue
		}
		batch.Results = append(batch.Results, model.Result{
			URL:         it.Link,
			Title:       strings.TrimSpace(it.Title),
			Content:     strings.TrimSpace(it.Description),
			Author:      strings.TrimSpace(it.Author),
			PublishedAt: parseFeedTime(it.PubDate),
			Category:    f.cfg.Category,
			Template:    f.cfg.Template,
		})
	}
	for _, e := range doc.Entries {
		link := pickAtomLink(e.Links)
		if link == "" {
			continue
		}
		published := e.Published
		if published == "" {
			published = e.Updated
		}
		batch.Results = append(batch.Results, model.Result{
			URL:         link,
			Title:       strings.TrimSpace(e.Title),
			Content:     strings.TrimSpace(e.Summary),
			Author:      strings.TrimSpace(e.Author),
			PublishedAt: parseFeedTime(published),
			Category:    f.cfg.Category,
			Template:    f.cfg.Template,
		})
	}

	return batch, nil
}

// pickAtomLink prefers rel="alternate" (or unset rel) over other link kinds.
func pickAtomLink(links []atomLink) string {
	for _, l := range links {
		if l.Rel == "" || l.Rel == "alternate" {
			return l.Href
		}
	}
	if len(links) > 0 {
		return links[0].Href
	}
	return ""
}

var feedTimeLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
}

func parseFeedTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range feedTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
