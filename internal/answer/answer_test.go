package answer_test

import (
	"strings"
	"testing"

	"github.com/chorus-search/chorus/internal/answer"
	"github.com/chorus-search/chorus/internal/model"
)

type fixedAnswerer struct {
	name     string
	keywords []string
	answers  []model.Answer
}

func (a *fixedAnswerer) Name() string        { return a.name }
func (a *fixedAnswerer) Keywords() []string  { return a.keywords }
func (a *fixedAnswerer) Answer(string) []model.Answer {
	return a.answers
}

func TestRegistryDispatchesByKeyword(t *testing.T) {
	reg := answer.NewRegistry()
	reg.Register(&fixedAnswerer{
		name:     "greeter",
		keywords: []string{"hello"},
		answers:  []model.Answer{{Text: "hi"}},
	})
	reg.Register(&fixedAnswerer{
		name:     "other",
		keywords: []string{"bye"},
		answers:  []model.Answer{{Text: "farewell"}},
	})

	got := reg.Ask("well hello there")
	if len(got) != 1 || got[0].Text != "hi" {
		t.Errorf("Ask = %v, want only the hello answerer's answer", got)
	}

	if got := reg.Ask("nothing matches"); got != nil {
		t.Errorf("Ask with no keyword match = %v, want nil", got)
	}
}

func TestRegistryAsksEachAnswererOnce(t *testing.T) {
	reg := answer.NewRegistry()
	reg.Register(&fixedAnswerer{
		name:     "multi",
		keywords: []string{"foo", "bar"},
		answers:  []model.Answer{{Text: "once"}},
	})

	got := reg.Ask("foo bar")
	if len(got) != 1 {
		t.Errorf("answerer with two matching keywords answered %d times, want 1", len(got))
	}
}

func TestRegistryNames(t *testing.T) {
	reg := answer.NewRegistry()
	reg.Register(&fixedAnswerer{name: "a", keywords: []string{"x"}})
	reg.Register(&fixedAnswerer{name: "b", keywords: []string{"y"}})

	names := reg.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Names = %v, want [a b] in registration order", names)
	}
}

func TestHashAnswerer(t *testing.T) {
	a := answer.NewHash()

	got := a.Answer("sha256 hello")
	if len(got) != 1 {
		t.Fatalf("got %d answers, want 1", len(got))
	}
	// sha256("hello")
	want := "SHA256: 2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if got[0].Text != want {
		t.Errorf("Answer = %q, want %q", got[0].Text, want)
	}

	got = a.Answer("md5 hello")
	if len(got) != 1 || got[0].Text != "MD5: 5d41402abc4b2a76b9719d911017c592" {
		t.Errorf("md5 answer = %v", got)
	}

	if got := a.Answer("sha256"); got != nil {
		t.Errorf("bare keyword should not answer, got %v", got)
	}
}

func TestStatisticsAnswerer(t *testing.T) {
	a := answer.NewStatistics()

	cases := []struct {
		query string
		want  string
	}{
		{"min 5 3 9 1 7", "min(5 3 9 1 7) = 1"},
		{"max 10 20 15", "max(10 20 15) = 20"},
		{"avg 1 2 3 4", "avg(1 2 3 4) = 2.5"},
		{"sum 10 20 30", "sum(10 20 30) = 60"},
	}
	for _, tt := range cases {
		got := a.Answer(tt.query)
		if len(got) != 1 || got[0].Text != tt.want {
			t.Errorf("Answer(%q) = %v, want %q", tt.query, got, tt.want)
		}
	}

	if got := a.Answer("sum ten twenty"); got != nil {
		t.Errorf("non-numeric operands should not answer, got %v", got)
	}
}

func TestDateTimeAnswerer(t *testing.T) {
	a := answer.NewDateTime()

	got := a.Answer("what time is it")
	if len(got) != 1 || got[0].Text == "" {
		t.Fatalf("got %v, want a formatted timestamp", got)
	}

	if got := a.Answer("timeless classics"); len(got) != 1 {
		// "time" is a substring match by design, same as the keyword gate.
		t.Errorf("substring match expected, got %v", got)
	}
}

func TestRandomAnswerer(t *testing.T) {
	a := answer.NewRandom()

	got := a.Answer("uuid")
	if len(got) != 1 || len(got[0].Text) != 36 || strings.Count(got[0].Text, "-") != 4 {
		t.Errorf("uuid answer = %v, want a 36-char hyphenated uuid", got)
	}

	got = a.Answer("random string 16")
	if len(got) != 1 || len(got[0].Text) != 16 {
		t.Errorf("random string answer = %v, want 16 chars", got)
	}

	if got := a.Answer("random number 9 3"); got != nil {
		t.Errorf("inverted range should not answer, got %v", got)
	}
}

func TestDefaultsRegistersBuiltins(t *testing.T) {
	reg := answer.Defaults()

	names := reg.Names()
	if len(names) != 4 {
		t.Fatalf("Defaults registered %d answerers, want 4: %v", len(names), names)
	}

	got := reg.Ask("sha1 abc")
	if len(got) != 1 || !strings.HasPrefix(got[0].Text, "SHA1: ") {
		t.Errorf("Ask(sha1 abc) = %v, want a SHA1 answer", got)
	}
}
