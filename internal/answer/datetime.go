package answer

import (
	"strings"
	"time"

	"github.com/chorus-search/chorus/internal/model"
)

// DateTime answers "what time is it" style queries with the current time.
type DateTime struct {
	// now is swappable for tests.
	now func() time.Time
}

// NewDateTime creates the date/time answerer.
func NewDateTime() *DateTime {
	return &DateTime{now: time.Now}
}

func (a *DateTime) Name() string { return "datetime" }

func (a *DateTime) Keywords() []string {
	return []string{"time", "date", "now", "today"}
}

func (a *DateTime) Answer(query string) []model.Answer {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, phrase := range []string{"time", "date", "today", "now"} {
		if strings.Contains(q, phrase) {
			return []model.Answer{{
				Text: a.now().Format("Monday, January 2, 2006 3:04 PM MST"),
			}}
		}
	}
	return nil
}
