package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Engine kinds recognized by the settings file.
const (
	KindJSON = "json"
	KindHTML = "html"
	KindFeed = "feed"
)

const (
	defaultEngineTimeoutMS = 3000
	defaultEngineWeight    = 1.0
)

// SelectorSetting names the CSS selectors for an HTML engine.
type SelectorSetting struct {
	Result  string `yaml:"result"`
	Link    string `yaml:"link"`
	Title   string `yaml:"title"`
	Snippet string `yaml:"snippet"`
}

// FieldSetting names the hit-object keys for a JSON engine.
type FieldSetting struct {
	URL       string `yaml:"url"`
	Title     string `yaml:"title"`
	Content   string `yaml:"content"`
	Thumbnail string `yaml:"thumbnail"`
	Author    string `yaml:"author"`
}

// EngineSetting is one declarative engine definition.
type EngineSetting struct {
	Name           string   `yaml:"name"`
	Shortcut       string   `yaml:"shortcut"`
	Kind           string   `yaml:"kind"`
	Categories     []string `yaml:"categories"`
	SupportsPaging bool     `yaml:"supports_paging"`
	MaxPage        int      `yaml:"max_page"`
	TimeoutMS      int      `yaml:"timeout_ms"`
	Weight         float64  `yaml:"weight"`
	Disabled       bool     `yaml:"disabled"`

	URL      string            `yaml:"url"`
	Headers  map[string]string `yaml:"headers"`
	Cookies  []string          `yaml:"cookies"`
	Category string            `yaml:"category"`
	Template string            `yaml:"template"`

	// JSON engines.
	ResultsPath     string            `yaml:"results_path"`
	SuggestionsPath string            `yaml:"suggestions_path"`
	Fields          FieldSetting      `yaml:"fields"`
	TokenURL        string            `yaml:"token_url"`
	TokenDataKey    string            `yaml:"token_data_key"`
	SafeSearch      map[string]string `yaml:"safesearch"`
	TimeRanges      map[string]string `yaml:"time_ranges"`

	// HTML engines.
	Selectors SelectorSetting `yaml:"selectors"`
}

// Settings is the parsed engine settings file.
type Settings struct {
	Engines []EngineSetting `yaml:"engines"`
}

// LoadSettings reads and validates the YAML engine settings file at path.
// Missing timeouts and weights receive defaults; names must be unique.
func LoadSettings(path string) (*Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}

	seen := make(map[string]bool, len(s.Engines))
	for i := range s.Engines {
		e := &s.Engines[i]
		if e.Name == "" {
			return nil, fmt.Errorf("engine %d: name is required", i)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("engine %q: duplicate name", e.Name)
		}
		seen[e.Name] = true

		switch e.Kind {
		case KindJSON, KindHTML, KindFeed:
		default:
			return nil, fmt.Errorf("engine %q: unknown kind %q", e.Name, e.Kind)
		}
		if e.URL == "" {
			return nil, fmt.Errorf("engine %q: url is required", e.Name)
		}
		if len(e.Categories) == 0 {
			return nil, fmt.Errorf("engine %q: at least one category is required", e.Name)
		}
		if e.TimeoutMS <= 0 {
			e.TimeoutMS = defaultEngineTimeoutMS
		}
		if e.Weight <= 0 {
			e.Weight = defaultEngineWeight
		}
	}

	return &s, nil
}
