package datetime

import "testing"

func TestTryParseAbsent(t *testing.T) {
	for _, s := range []string{"", "not a date", "null"} {
		if _, ok := TryParse(s); ok {
			t.Errorf("TryParse(%q) ok = true, want false", s)
		}
	}
}

func TestTryParseValid(t *testing.T) {
	got, ok := TryParse("2023-06-15T10:30:00.000Z")
	if !ok {
		t.Fatal("TryParse should succeed for a canonical ISO-8601 instant")
	}
	if got.Year() != 2023 || got.Month() != 6 || got.Day() != 15 {
		t.Errorf("TryParse produced %v, want 2023-06-15", got)
	}
}

func TestEpochSeconds(t *testing.T) {
	tm, ok := TryParse("2023-06-15T10:30:00.000Z")
	if !ok {
		t.Fatal("setup: expected a valid parse")
	}
	got := EpochSeconds(tm)
	if got <= 0 {
		t.Errorf("EpochSeconds = %v, want positive", got)
	}
}
