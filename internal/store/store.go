package store

import (
	"context"

	"github.com/chorus-search/chorus/internal/model"
)

// SearchStats holds aggregate statistics over the search history.
type SearchStats struct {
	Total           int            `json:"total"`
	CountByCategory map[string]int `json:"count_by_category"`
	AvgDurationMS   float64        `json:"avg_duration_ms"`
	// AvgSuccessRate is the mean of successful_engines/total_engines over
	// searches that had at least one candidate engine.
	AvgSuccessRate float64 `json:"avg_success_rate"`
}

// Store defines the persistence operations for the search history.
type Store interface {
	CreateSearch(ctx context.Context, rec *model.SearchRecord) error
	GetSearch(ctx context.Context, id string) (*model.SearchRecord, error)
	ListSearches(ctx context.Context, limit, offset int) ([]*model.SearchRecord, int, error)
	GetSearchStats(ctx context.Context) (*SearchStats, error)
	Ping(ctx context.Context) error
	Close() error
}
