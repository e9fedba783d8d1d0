package model

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// NewID generates the identifier for a new search record. ULIDs sort
// lexicographically by creation time, which keeps history listings cheap.
func NewID() string {
	return ulid.Make().String()
}

// SearchRecord is one persisted history row describing a completed query.
type SearchRecord struct {
	ID                string    `json:"id"`
	Query             string    `json:"query"`
	Category          string    `json:"category"`
	TotalEngines      int       `json:"total_engines"`
	SuccessfulEngines int       `json:"successful_engines"`
	FailedEngines     []string  `json:"failed_engines,omitempty"`
	DurationMS        int       `json:"duration_ms"`
	CreatedAt         time.Time `json:"created_at"`
}
