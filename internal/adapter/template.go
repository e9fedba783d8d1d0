package adapter

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/chorus-search/chorus/internal/model"
)

// expandURL fills the {query}, {page}, {locale}, {safesearch} and
// {time_range} placeholders in a URL template. The safesearch and
// time_range maps translate the canonical levels into provider-specific
// values; missing entries expand to the empty string.
func expandURL(tpl, query string, p model.Params, safeSearch, timeRanges map[string]string) string {
	page := p.Page
	if page < 1 {
		page = 1
	}

	r := strings.NewReplacer(
		"{query}", url.QueryEscape(query),
		"{page}", strconv.Itoa(page),
		"{locale}", p.Locale,
		"{safesearch}", safeSearch[p.SafeSearch],
		"{time_range}", timeRanges[p.TimeRange],
	)
	return r.Replace(tpl)
}
