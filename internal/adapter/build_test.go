package adapter_test

import (
	"testing"
	"time"

	"github.com/chorus-search/chorus/internal/adapter"
	"github.com/chorus-search/chorus/internal/config"
)

func TestFromSettingKinds(t *testing.T) {
	base := config.EngineSetting{
		Name:       "x",
		Shortcut:   "x",
		Categories: []string{"general"},
		TimeoutMS:  4000,
		Weight:     2,
		URL:        "https://x.test/?q={query}",
	}

	kinds := []struct {
		kind string
	}{
		{config.KindJSON},
		{config.KindHTML},
		{config.KindFeed},
	}
	for _, tt := range kinds {
		s := base
		s.Kind = tt.kind
		eng, err := adapter.FromSetting(s)
		if err != nil {
			t.Fatalf("FromSetting(%s): %v", tt.kind, err)
		}
		desc := eng.Descriptor()
		if desc.Name != "x" || desc.Weight != 2 {
			t.Errorf("%s descriptor = %+v", tt.kind, desc)
		}
		if desc.Timeout != 4*time.Second {
			t.Errorf("%s timeout = %v, want 4s", tt.kind, desc.Timeout)
		}
	}
}

func TestFromSettingUnknownKind(t *testing.T) {
	_, err := adapter.FromSetting(config.EngineSetting{Name: "x", Kind: "grpc"})
	if err == nil {
		t.Error("FromSetting with unknown kind should fail")
	}
}
