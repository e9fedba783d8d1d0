package model

import "time"

// Result is one search hit returned by an engine. The URL is the dedup key
// material; Score must be finite and non-negative. Optional fields past
// Template only apply to specific categories (images, videos, news).
type Result struct {
	URL      string  `json:"url"`
	Title    string  `json:"title,omitempty"`
	Content  string  `json:"content,omitempty"`
	Engine   string  `json:"engine"`
	Score    float64 `json:"score"`
	Category string  `json:"category,omitempty"`
	Template string  `json:"template,omitempty"`

	Thumbnail   string     `json:"thumbnail,omitempty"`
	ImgSrc      string     `json:"img_src,omitempty"`
	Author      string     `json:"author,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Duration    string     `json:"duration,omitempty"`
	Views       int64      `json:"views,omitempty"`
}

// Answer is an instant answer: a direct response to the query itself,
// produced by an answerer or extracted by an engine, shown above results.
type Answer struct {
	Text string `json:"answer"`
	URL  string `json:"url,omitempty"`
}

// InfoboxURL is one link inside an infobox.
type InfoboxURL struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// InfoboxAttribute is one key-value row inside an infobox.
type InfoboxAttribute struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Infobox is a knowledge panel about the query's subject. ID identifies
// the subject (typically a canonical URL) and is the dedup key when
// several engines return a panel for the same entity.
type Infobox struct {
	ID         string             `json:"id,omitempty"`
	Title      string             `json:"infobox"`
	Content    string             `json:"content,omitempty"`
	ImgSrc     string             `json:"img_src,omitempty"`
	URLs       []InfoboxURL       `json:"urls,omitempty"`
	Attributes []InfoboxAttribute `json:"attributes,omitempty"`
	Engine     string             `json:"engine"`
}

// ParsedBatch is everything an engine's parser extracts from one response.
type ParsedBatch struct {
	Results     []Result          `json:"results"`
	Suggestions []string          `json:"suggestions,omitempty"`
	Corrections []string          `json:"corrections,omitempty"`
	Answers     []Answer          `json:"answers,omitempty"`
	Infoboxes   []Infobox         `json:"infoboxes,omitempty"`
	EngineData  map[string]string `json:"engine_data,omitempty"`
}

// Aggregated is the final output of one query: merged, deduplicated and
// sorted results plus per-engine success accounting.
type Aggregated struct {
	Results           []Result  `json:"results"`
	Suggestions       []string  `json:"suggestions"`
	Corrections       []string  `json:"corrections"`
	Answers           []Answer  `json:"answers"`
	Infoboxes         []Infobox `json:"infoboxes"`
	TotalEngines      int       `json:"total_engines"`
	SuccessfulEngines int       `json:"successful_engines"`
	FailedEngines     []string  `json:"failed_engines"`
}
