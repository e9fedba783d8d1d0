package model

import (
	"regexp"
	"testing"
)

// crockfordBase32 matches valid ULID strings (26 chars, Crockford Base32 alphabet).
var crockfordBase32 = regexp.MustCompile(`^[0123456789ABCDEFGHJKMNPQRSTVWXYZ]{26}$`)

func TestNewIDFormat(t *testing.T) {
	id := NewID()
	if !crockfordBase32.MatchString(id) {
		t.Errorf("NewID() = %q, does not match Crockford Base32 ULID format", id)
	}
}

func TestNewIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("NewID() produced duplicate: %s", id)
		}
		seen[id] = true
	}
}

func TestValidSafeSearch(t *testing.T) {
	valid := []string{SafeSearchOff, SafeSearchModerate, SafeSearchStrict}
	for _, s := range valid {
		if !ValidSafeSearch(s) {
			t.Errorf("ValidSafeSearch(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "on", "maximum"} {
		if ValidSafeSearch(s) {
			t.Errorf("ValidSafeSearch(%q) = true, want false", s)
		}
	}
}

func TestValidTimeRange(t *testing.T) {
	valid := []string{TimeRangeDay, TimeRangeWeek, TimeRangeMonth, TimeRangeYear, TimeRangeNone}
	for _, s := range valid {
		if !ValidTimeRange(s) {
			t.Errorf("ValidTimeRange(%q) = false, want true", s)
		}
	}
	if ValidTimeRange("decade") {
		t.Error(`ValidTimeRange("decade") = true, want false`)
	}
}

func TestOutcomeOK(t *testing.T) {
	ok := Outcome{Engine: "a"}
	if !ok.OK() {
		t.Error("outcome with nil failure should be OK")
	}

	failed := Outcome{Engine: "b", Failure: &Failure{Kind: FailTimeout, Message: "deadline elapsed"}}
	if failed.OK() {
		t.Error("outcome with failure should not be OK")
	}
	if got, want := failed.Failure.Error(), "timeout: deadline elapsed"; got != want {
		t.Errorf("Failure.Error() = %q, want %q", got, want)
	}
}
