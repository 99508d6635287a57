package sanitize

import (
	"strings"
	"testing"
)

// The two worked examples for "Artist - Song Title" and
// "Track!@#$%^&*()" that DESIGN.md's "Sanitizer example
// inconsistency" entry discusses conflict with Title's rules; these
// tests assert the invariants instead, which the algorithm satisfies
// for every case below.

func TestTitleInvariants(t *testing.T) {
	inputs := []string{
		"", "   ", "Tëst Tráck", "Artist - Song Title",
		"Track!@#$%^&*()", strings.Repeat("a ", 60), "a/b\\c:d?e\"f*g<h>i|j",
	}
	for _, in := range inputs {
		got := Title(in)
		if strings.ContainsAny(got, `/\:?"*<>|`) {
			t.Errorf("Title(%q) = %q, contains a forbidden character", in, got)
		}
		if strings.Contains(got, ".") {
			t.Errorf("Title(%q) = %q, contains '.'", in, got)
		}
		if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
			t.Errorf("Title(%q) = %q, has leading/trailing hyphen", in, got)
		}
		if strings.Contains(got, "--") {
			t.Errorf("Title(%q) = %q, contains a run of two hyphens", in, got)
		}
		if len([]rune(got)) > 50 {
			t.Errorf("Title(%q) = %q, longer than 50 runes", in, got)
		}
		if Title(got) != got {
			t.Errorf("Title(%q) is not idempotent: Title(Title(in))=%q, Title(in)=%q", in, Title(got), got)
		}
	}
}

func TestTitleEmptyAndBlank(t *testing.T) {
	if got := Title(""); got != "untitled" {
		t.Errorf(`Title("") = %q, want "untitled"`, got)
	}
	if got := Title("   "); got != "untitled" {
		t.Errorf(`Title("   ") = %q, want "untitled"`, got)
	}
}

func TestTitlePreservesNonASCII(t *testing.T) {
	got := Title("Tëst Tráck")
	if got != "tëst-tráck" {
		t.Errorf(`Title("Tëst Tráck") = %q, want "tëst-tráck"`, got)
	}
}

func TestHashtags(t *testing.T) {
	got := Hashtags("great #House set with #Deep_House vibes, no ending #")
	want := []string{"house", "deep_house"}
	if len(got) != len(want) {
		t.Fatalf("Hashtags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Hashtags[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTagSetDedup(t *testing.T) {
	got := TagSet("#House #house", []string{"House", "Techno"})
	want := map[string]bool{"house": true, "techno": true}
	if len(got) != len(want) {
		t.Fatalf("TagSet = %v, want 2 deduped entries", got)
	}
	for _, g := range got {
		if !want[g] {
			t.Errorf("unexpected tag %q", g)
		}
	}
}

func TestEffectiveTagsUntagged(t *testing.T) {
	got := EffectiveTags("", nil)
	if len(got) != 1 || got[0] != Untagged {
		t.Errorf("EffectiveTags(empty) = %v, want [untagged]", got)
	}
}

func TestSortedUnique(t *testing.T) {
	got := SortedUnique([][]string{{"techno", "house"}, {"house"}, {"ambient"}})
	want := []string{"ambient", "house", "techno"}
	if len(got) != len(want) {
		t.Fatalf("SortedUnique = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SortedUnique[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
