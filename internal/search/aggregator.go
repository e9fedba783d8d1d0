package search

import (
	"net/url"
	"sort"
	"strings"

	"github.com/chorus-search/chorus/internal/model"
)

// Aggregate merges the successful outcomes of one query into the content
// fields of an Aggregated (engine accounting is left to the caller).
// Records are deduplicated by normalized URL with additive score merging
// (more engines agreeing raises confidence), the final list is sorted by
// score descending, and suggestions/corrections/answers are deduplicated
// in order of first appearance. Infoboxes keep the first panel seen per
// subject. Equal scores keep flattening order, but that is an
// implementation detail, not a guarantee.
func Aggregate(outcomes []model.Outcome) model.Aggregated {
	merged := make(map[string]*model.Result)
	var order []string

	for _, o := range outcomes {
		if !o.OK() {
			continue
		}
		for _, r := range o.Batch.Results {
			key, ok := normalizeURL(r.URL)
			if !ok {
				// Invalid record: dropped silently, not counted as a failure.
				continue
			}

			existing, seen := merged[key]
			if !seen {
				cp := r
				merged[key] = &cp
				order = append(order, key)
				continue
			}

			existing.Score += r.Score
			if len(r.Content) > len(existing.Content) {
				existing.Content = r.Content
			}
			if existing.Title == "" {
				existing.Title = r.Title
			}
			if existing.Thumbnail == "" {
				existing.Thumbnail = r.Thumbnail
			}
			// All other fields keep the first-seen record's values.
		}
	}

	results := make([]model.Result, 0, len(order))
	for _, key := range order {
		results = append(results, *merged[key])
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return model.Aggregated{
		Results:     results,
		Suggestions: dedupInOrder(collectStrings(outcomes, func(b model.ParsedBatch) []string { return b.Suggestions })),
		Corrections: dedupInOrder(collectStrings(outcomes, func(b model.ParsedBatch) []string { return b.Corrections })),
		Answers:     mergeAnswers(outcomes),
		Infoboxes:   mergeInfoboxes(outcomes),
	}
}

// normalizeURL computes the dedup key for raw: lowercase host, leading
// "www." label stripped, a single trailing "/" stripped from the path
// (unless the path is exactly "/"), query string and scheme kept verbatim.
// An empty URL, or one that parses but is not absolute, yields ok=false
// and the record is dropped. A URL that fails to parse at all falls back
// to a raw lowercase key so exact duplicates still merge.
func normalizeURL(raw string) (key string, ok bool) {
	if raw == "" {
		return "", false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return strings.ToLower(raw), true
	}
	if u.Scheme == "" || u.Host == "" {
		return "", false
	}

	host := strings.ToLower(u.Host)
	host = strings.TrimPrefix(host, "www.")

	path := u.Path
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}

	key = u.Scheme + "://" + host + path
	if u.RawQuery != "" {
		key += "?" + u.RawQuery
	}
	return key, true
}

// mergeAnswers concatenates answers across engines, dropping exact
// duplicates (same text and URL) in first-appearance order.
func mergeAnswers(outcomes []model.Outcome) []model.Answer {
	seen := make(map[model.Answer]bool)
	answers := []model.Answer{}
	for _, o := range outcomes {
		if !o.OK() {
			continue
		}
		for _, a := range o.Batch.Answers {
			if a.Text == "" || seen[a] {
				continue
			}
			seen[a] = true
			answers = append(answers, a)
		}
	}
	return answers
}

// mergeInfoboxes keeps one panel per subject, first engine wins. The
// subject key is the infobox ID when set, the title otherwise.
func mergeInfoboxes(outcomes []model.Outcome) []model.Infobox {
	seen := make(map[string]bool)
	boxes := []model.Infobox{}
	for _, o := range outcomes {
		if !o.OK() {
			continue
		}
		for _, box := range o.Batch.Infoboxes {
			key := box.ID
			if key == "" {
				key = strings.ToLower(box.Title)
			}
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			boxes = append(boxes, box)
		}
	}
	return boxes
}

func collectStrings(outcomes []model.Outcome, pick func(model.ParsedBatch) []string) []string {
	var all []string
	for _, o := range outcomes {
		if !o.OK() {
			continue
		}
		all = append(all, pick(o.Batch)...)
	}
	return all
}

// dedupInOrder removes duplicates keeping the first appearance of each value.
func dedupInOrder(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
