// Package sanitize implements the title-to-slug sanitizer and the
// hashtag/tag-set derivation used throughout the projection and
// download pipeline.
package sanitize

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

const maxStemRunes = 50

// forbidden holds the filesystem-unsafe characters that get replaced
// with a hyphen.
var forbidden = map[rune]bool{
	'/': true, '\\': true, ':': true, '?': true, '"': true,
	'*': true, '<': true, '>': true, '|': true,
}

var hyphenRunRe = regexp.MustCompile(`[\s-]+`)

// Title sanitizes s into a filesystem-safe, lowercased slug. It is
// pure and total: every input, including the empty string, yields a
// valid non-empty slug.
//
// Steps: replace forbidden characters with a hyphen, drop all '.',
// collapse whitespace-or-hyphen runs into one hyphen, trim leading and
// trailing hyphens/space, lowercase via the Unicode simple lowercase mapping,
// and truncate to 50 code points. An empty result (or empty input)
// becomes "untitled".
func Title(s string) string {
	if strings.TrimSpace(s) == "" {
		return "untitled"
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case forbidden[r]:
			b.WriteRune('-')
		case r == '.':
			// dropped entirely, no replacement
		default:
			b.WriteRune(r)
		}
	}

	collapsed := hyphenRunRe.ReplaceAllString(b.String(), "-")
	trimmed := strings.Trim(collapsed, "- \t\n\r")
	lowered := strings.Map(unicode.ToLower, trimmed)

	runes := []rune(lowered)
	if len(runes) > maxStemRunes {
		runes = runes[:maxStemRunes]
		// truncation may leave a dangling hyphen; trim it for tidiness,
		// matching the "trim leading/trailing hyphens" step applied
		// once more after truncation.
		lowered = strings.TrimRight(string(runes), "-")
	} else {
		lowered = string(runes)
	}

	if lowered == "" {
		return "untitled"
	}
	return lowered
}

var hashtagRe = regexp.MustCompile(`#[A-Za-z0-9_]+`)

// Hashtags extracts and lowercases every #tag stem found in
// description, without the leading '#'.
func Hashtags(description string) []string {
	matches := hashtagRe.FindAllString(description, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.ToLower(strings.TrimPrefix(m, "#")))
	}
	return out
}

// TagSet computes the derived tag set for a track: the lowercased
// union of description hashtags and the explicit tag list, deduped.
// The result is nil (not "untagged") when empty; callers decide when
// to substitute the synthetic "untagged" tag.
func TagSet(description string, explicit []string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(tag string) {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		out = append(out, tag)
	}
	for _, t := range Hashtags(description) {
		add(t)
	}
	for _, t := range explicit {
		add(t)
	}
	return out
}

// Untagged is the synthetic tag assigned to tracks whose derived set
// is empty.
const Untagged = "untagged"

// EffectiveTags returns the derived tag set, substituting [Untagged]
// when the derived set is empty.
func EffectiveTags(description string, explicit []string) []string {
	tags := TagSet(description, explicit)
	if len(tags) == 0 {
		return []string{Untagged}
	}
	return tags
}

// SortedUnique returns the sorted, deduplicated union of tags across
// many tracks' effective tag sets.
func SortedUnique(tagSets [][]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tags := range tagSets {
		for _, t := range tags {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	sort.Strings(out)
	return out
}
