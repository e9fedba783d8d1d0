package adapter

import (
	"fmt"
	"time"

	"github.com/chorus-search/chorus/internal/config"
	"github.com/chorus-search/chorus/internal/engine"
)

// FromSetting instantiates the right adapter kind for one settings entry.
func FromSetting(s config.EngineSetting) (engine.Engine, error) {
	desc := engine.Descriptor{
		Name:           s.Name,
		Shortcut:       s.Shortcut,
		Categories:     s.Categories,
		SupportsPaging: s.SupportsPaging,
		MaxPage:        s.MaxPage,
		Timeout:        time.Duration(s.TimeoutMS) * time.Millisecond,
		Weight:         s.Weight,
		Disabled:       s.Disabled,
	}

	switch s.Kind {
	case config.KindJSON:
		return NewJSONAPI(JSONAPIConfig{
			Descriptor:      desc,
			URL:             s.URL,
			Headers:         s.Headers,
			Cookies:         s.Cookies,
			ResultsPath:     s.ResultsPath,
			SuggestionsPath: s.SuggestionsPath,
			Fields: FieldMap{
				URL:       s.Fields.URL,
				Title:     s.Fields.Title,
				Content:   s.Fields.Content,
				Thumbnail: s.Fields.Thumbnail,
				Author:    s.Fields.Author,
			},
			Category:     s.Category,
			Template:     s.Template,
			SafeSearch:   s.SafeSearch,
			TimeRanges:   s.TimeRanges,
			TokenURL:     s.TokenURL,
			TokenDataKey: s.TokenDataKey,
		}), nil
	case config.KindHTML:
		return NewHTMLPage(HTMLPageConfig{
			Descriptor: desc,
			URL:        s.URL,
			Headers:    s.Headers,
			Cookies:    s.Cookies,
			Selectors: Selectors{
				Result:  s.Selectors.Result,
				Link:    s.Selectors.Link,
				Title:   s.Selectors.Title,
				Snippet: s.Selectors.Snippet,
			},
			Category:   s.Category,
			Template:   s.Template,
			SafeSearch: s.SafeSearch,
			TimeRanges: s.TimeRanges,
		}), nil
	case config.KindFeed:
		return NewFeed(FeedConfig{
			Descriptor: desc,
			URL:        s.URL,
			Headers:    s.Headers,
			Category:   s.Category,
			Template:   s.Template,
			TimeRanges: s.TimeRanges,
		}), nil
	default:
		return nil, fmt.Errorf("engine %q: unknown kind %q", s.Name, s.Kind)
	}
}
