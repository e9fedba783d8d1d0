package model

// SafeSearch levels.
const (
	SafeSearchOff      = "off"
	SafeSearchModerate = "moderate"
	SafeSearchStrict   = "strict"
)

// Time-range buckets. An empty TimeRange means no recency filter.
const (
	TimeRangeDay   = "day"
	TimeRangeWeek  = "week"
	TimeRangeMonth = "month"
	TimeRangeYear  = "year"
	TimeRangeNone  = ""
)

// ValidSafeSearch reports whether s is a recognized safe-search level.
func ValidSafeSearch(s string) bool {
	switch s {
	case SafeSearchOff, SafeSearchModerate, SafeSearchStrict:
		return true
	}
	return false
}

// ValidTimeRange reports whether s is a recognized time-range bucket.
func ValidTimeRange(s string) bool {
	switch s {
	case TimeRangeDay, TimeRangeWeek, TimeRangeMonth, TimeRangeYear, TimeRangeNone:
		return true
	}
	return false
}

// Params carries the per-query request shape handed to every engine.
// It is passed by value and treated as immutable for the duration of a call.
type Params struct {
	// Page is 1-based. Engines that do not support paging ignore it.
	Page       int    `json:"page"`
	Locale     string `json:"locale,omitempty"`
	SafeSearch string `json:"safe_search,omitempty"`
	TimeRange  string `json:"time_range,omitempty"`

	// EngineData is a free-form side channel for engine-specific state such as
	// pre-fetched session tokens, keyed by engine-agreed names. It is primed by
	// the caller before dispatch; the orchestrator never writes to it.
	EngineData map[string]string `json:"engine_data,omitempty"`

	// MediaFilters carries optional media filter hints (e.g. image size,
	// video length) that individual engines may consult.
	MediaFilters map[string]string `json:"media_filters,omitempty"`
}
