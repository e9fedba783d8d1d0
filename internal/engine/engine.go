package engine

import (
	"context"
	"net/http"
	"time"

	"github.com/chorus-search/chorus/internal/model"
)

// Descriptor holds the identity and policy for one backend engine. All
// fields are fixed at registration time except Disabled, which may be
// toggled administratively through the registry.
type Descriptor struct {
	Name           string        `json:"name"`
	Shortcut       string        `json:"shortcut"`
	Categories     []string      `json:"categories"`
	SupportsPaging bool          `json:"supports_paging"`
	MaxPage        int           `json:"max_page"`
	Timeout        time.Duration `json:"timeout"`
	// Weight is the default score applied to results the engine returns
	// with a zero score.
	Weight   float64 `json:"weight"`
	Disabled bool    `json:"disabled"`
}

// HasCategory reports whether the descriptor's category set contains c.
func (d Descriptor) HasCategory(c string) bool {
	for _, cat := range d.Categories {
		if cat == c {
			return true
		}
	}
	return false
}

// Engine is the interface every search backend adapter implements.
// BuildRequest and ParseResponse must be pure: no I/O, no shared mutable
// state. The executor performs the network call between them.
type Engine interface {
	// Descriptor returns the engine's identity and policy.
	Descriptor() Descriptor

	// BuildRequest produces the outbound HTTP shape for one query. It may
	// consult p.EngineData for engine-specific values such as pre-fetched
	// session tokens.
	BuildRequest(query string, p model.Params) (model.RequestSpec, error)

	// ParseResponse extracts a result batch from a raw response body. It
	// should return an empty batch rather than an error for malformed
	// input; the executor additionally guards against adapters that panic.
	ParseResponse(body []byte, p model.Params) (model.ParsedBatch, error)
}

// TokenPrimer is implemented by engines that need a session token fetched
// before they can be queried. Priming happens out-of-band: the caller runs
// PrimeToken ahead of dispatch and places the value into Params.EngineData
// under the returned key.
type TokenPrimer interface {
	PrimeToken(ctx context.Context, client *http.Client) (key, value string, err error)
}
