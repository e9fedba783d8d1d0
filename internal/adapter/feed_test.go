package adapter_test

import (
	"testing"
	"time"

	"github.com/chorus-search/chorus/internal/adapter"
	"github.com/chorus-search/chorus/internal/engine"
	"github.com/chorus-search/chorus/internal/model"
)

func feedEngine() *adapter.Feed {
	return adapter.NewFeed(adapter.FeedConfig{
		Descriptor: engine.Descriptor{
			Name:       "feedx",
			Shortcut:   "f",
			Categories: []string{"news"},
			Timeout:    3 * time.Second,
			Weight:     1,
		},
		URL:      "https://news.test/rss?q={query}",
		Category: "news",
	})
}

func TestFeedParseRSS(t *testing.T) {
	body := []byte(`<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Example News</title>
    <item>
      <title>Story one</title>
      <link>https://news.test/1</link>
      <description>First story</description>
      <author>alice@example.com</author>
      <pubDate>Mon, 02 Jan 2006 15:04:05 -0700</pubDate>
    </item>
    <item>
      <title>No link</title>
      <description>dropped</description>
    </item>
  </channel>
</rss>`)

	batch, err := feedEngine().ParseResponse(body, model.Params{})
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}
	if len(batch.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(batch.Results))
	}
	r := batch.Results[0]
	if r.URL != "https://news.test/1" || r.Title != "Story one" || r.Content != "First story" {
		t.Errorf("result = %+v", r)
	}
	if r.PublishedAt == nil || r.PublishedAt.Year() != 2006 {
		t.Errorf("PublishedAt = %v, want parsed RFC1123Z date", r.PublishedAt)
	}
	if r.Category != "news" {
		t.Errorf("category = %q, want news", r.Category)
	}
	// Score stays zero; the executor defaults it to the engine weight.
	if r.Score != 0 {
		t.Errorf("score = %v, want 0 before executor tagging", r.Score)
	}
}

func TestFeedParseAtom(t *testing.T) {
	body := []byte(`<?xml version="1.0"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Example Feed</title>
  <entry>
    <title>Entry one</title>
    <link rel="self" href="https://news.test/self"/>
    <link rel="alternate" href="https://news.test/e1"/>
    <summary>Summary one</summary>
    <author><name>bob</name></author>
    <updated>2024-05-01T10:00:00Z</updated>
  </entry>
</feed>`)

	batch, err := feedEngine().ParseResponse(body, model.Params{})
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}
	if len(batch.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(batch.Results))
	}
	r := batch.Results[0]
	if r.URL != "https://news.test/e1" {
		t.Errorf("URL = %q, want the rel=alternate link", r.URL)
	}
	if r.Author != "bob" {
		t.Errorf("author = %q, want bob", r.Author)
	}
	if r.PublishedAt == nil || r.PublishedAt.Year() != 2024 {
		t.Errorf("PublishedAt = %v, want parsed updated time", r.PublishedAt)
	}
}

func TestFeedParseMalformed(t *testing.T) {
	batch, err := feedEngine().ParseResponse([]byte("<rss><channel><item>"), model.Params{})
	if err != nil {
		t.Fatalf("ParseResponse returned error %v, want empty batch", err)
	}
	if len(batch.Results) != 0 {
		t.Errorf("got %d results from malformed XML, want 0", len(batch.Results))
	}
}
