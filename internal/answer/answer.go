// Package answer provides instant answerers: local responders that turn
// recognizable queries (hashes, statistics, date/time, random values) into
// direct answers without touching any backend engine. Answerers are
// registered once at startup and dispatched by query keyword.
package answer

import (
	"strings"
	"sync"

	"github.com/chorus-search/chorus/internal/model"
)

// Answerer produces instant answers for queries matching its keywords.
type Answerer interface {
	// Name identifies the answerer.
	Name() string

	// Keywords returns the trigger words. An answerer is only consulted
	// when the query contains at least one of them.
	Keywords() []string

	// Answer returns instant answers for query, or nil when the query does
	// not match the answerer's patterns. Must be fast and purely local.
	Answer(query string) []model.Answer
}

// Registry holds registered answerers indexed by trigger keyword.
type Registry struct {
	mu        sync.RWMutex
	answerers []Answerer
	byKeyword map[string][]Answerer
}

// NewRegistry creates an empty answerer registry.
func NewRegistry() *Registry {
	return &Registry{byKeyword: make(map[string][]Answerer)}
}

// Register adds an answerer under each of its keywords.
func (r *Registry) Register(a Answerer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.answerers = append(r.answerers, a)
	for _, kw := range a.Keywords() {
		kw = strings.ToLower(kw)
		r.byKeyword[kw] = append(r.byKeyword[kw], a)
	}
}

// Names returns the registered answerer names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.answerers))
	for _, a := range r.answerers {
		names = append(names, a.Name())
	}
	return names
}

// Ask consults every answerer whose keywords appear in query, each at most
// once, in registration order.
func (r *Registry) Ask(query string) []model.Answer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	triggered := make(map[Answerer]bool)
	for _, word := range strings.Fields(strings.ToLower(query)) {
		for _, a := range r.byKeyword[word] {
			triggered[a] = true
		}
	}
	if len(triggered) == 0 {
		return nil
	}

	var answers []model.Answer
	for _, a := range r.answerers {
		if triggered[a] {
			answers = append(answers, a.Answer(query)...)
		}
	}
	return answers
}

// Defaults returns a registry preloaded with the built-in answerers.
func Defaults() *Registry {
	r := NewRegistry()
	r.Register(NewHash())
	r.Register(NewStatistics())
	r.Register(NewDateTime())
	r.Register(NewRandom())
	return r
}
