package engine_test

import (
	"testing"
	"time"

	"github.com/chorus-search/chorus/internal/engine"
	"github.com/chorus-search/chorus/internal/model"
)

// stubEngine is a minimal Engine for registry tests.
type stubEngine struct {
	desc engine.Descriptor
}

func (s *stubEngine) Descriptor() engine.Descriptor { return s.desc }

func (s *stubEngine) BuildRequest(_ string, _ model.Params) (model.RequestSpec, error) {
	return model.RequestSpec{URL: "https://example.test/search", Method: "GET"}, nil
}

func (s *stubEngine) ParseResponse(_ []byte, _ model.Params) (model.ParsedBatch, error) {
	return model.ParsedBatch{}, nil
}

func newStub(name string, categories []string, disabled bool) *stubEngine {
	return &stubEngine{desc: engine.Descriptor{
		Name:       name,
		Shortcut:   name[:1],
		Categories: categories,
		Timeout:    3 * time.Second,
		Weight:     1,
		Disabled:   disabled,
	}}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := engine.NewRegistry()
	reg.Register(newStub("alpha", []string{"general"}, false))

	e, ok := reg.Get("alpha")
	if !ok {
		t.Fatal("Get(alpha) not found after Register")
	}
	if e.Descriptor().Name != "alpha" {
		t.Errorf("descriptor name = %q, want %q", e.Descriptor().Name, "alpha")
	}

	if _, ok := reg.Get("missing"); ok {
		t.Error("Get(missing) = found, want not found")
	}
}

func TestRegistryReRegisterOverwrites(t *testing.T) {
	reg := engine.NewRegistry()
	reg.Register(newStub("alpha", []string{"general"}, false))
	reg.Register(newStub("beta", []string{"general"}, false))

	replacement := newStub("alpha", []string{"images"}, false)
	reg.Register(replacement)

	e, _ := reg.Get("alpha")
	if !e.Descriptor().HasCategory("images") {
		t.Error("re-registered engine did not replace prior entry")
	}

	// Overwrite keeps the original registration position.
	names := reg.Names()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("Names() = %v, want [alpha beta]", names)
	}
}

func TestRegistryByCategory(t *testing.T) {
	reg := engine.NewRegistry()
	reg.Register(newStub("alpha", []string{"general", "news"}, false))
	reg.Register(newStub("beta", []string{"images"}, false))
	reg.Register(newStub("gamma", []string{"general"}, false))

	matched := reg.ByCategory("general")
	if len(matched) != 2 {
		t.Fatalf("ByCategory(general) returned %d engines, want 2", len(matched))
	}
	// Registration order.
	if matched[0].Descriptor().Name != "alpha" || matched[1].Descriptor().Name != "gamma" {
		t.Errorf("ByCategory order = [%s %s], want [alpha gamma]",
			matched[0].Descriptor().Name, matched[1].Descriptor().Name)
	}

	if got := reg.ByCategory("videos"); len(got) != 0 {
		t.Errorf("ByCategory(videos) returned %d engines, want 0", len(got))
	}
}

func TestRegistryByCategoryHidesDisabled(t *testing.T) {
	reg := engine.NewRegistry()
	reg.Register(newStub("alpha", []string{"general"}, true))
	reg.Register(newStub("beta", []string{"general"}, false))

	matched := reg.ByCategory("general")
	if len(matched) != 1 || matched[0].Descriptor().Name != "beta" {
		t.Fatalf("ByCategory must never return a disabled engine, got %d entries", len(matched))
	}

	// Disabled engines remain retrievable directly.
	if _, ok := reg.Get("alpha"); !ok {
		t.Error("disabled engine should still be retrievable via Get")
	}
}

func TestRegistrySetDisabled(t *testing.T) {
	reg := engine.NewRegistry()
	reg.Register(newStub("alpha", []string{"general"}, false))

	if !reg.SetDisabled("alpha", true) {
		t.Fatal("SetDisabled(alpha) = false, want true")
	}
	if len(reg.ByCategory("general")) != 0 {
		t.Error("disabled engine still visible to ByCategory")
	}
	if !reg.Disabled("alpha") {
		t.Error("Disabled(alpha) = false after SetDisabled(true)")
	}

	reg.SetDisabled("alpha", false)
	if len(reg.ByCategory("general")) != 1 {
		t.Error("re-enabled engine not visible to ByCategory")
	}

	if reg.SetDisabled("missing", true) {
		t.Error("SetDisabled(missing) = true, want false")
	}
}

func TestRegistryList(t *testing.T) {
	reg := engine.NewRegistry()
	reg.Register(newStub("alpha", []string{"general"}, false))
	reg.Register(newStub("beta", []string{"images"}, false))
	reg.SetDisabled("beta", true)

	descs := reg.List()
	if len(descs) != 2 {
		t.Fatalf("List() returned %d descriptors, want 2", len(descs))
	}
	if descs[0].Name != "alpha" || descs[1].Name != "beta" {
		t.Errorf("List order = [%s %s], want [alpha beta]", descs[0].Name, descs[1].Name)
	}
	if !descs[1].Disabled {
		t.Error("List() must reflect the live disabled flag")
	}
}
