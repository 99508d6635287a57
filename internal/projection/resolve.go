package projection

import (
	"github.com/radio4000/r4fs/internal/catalog"
	"github.com/radio4000/r4fs/internal/sanitize"
)

// stem returns the sanitized filename stem for a track's title,
// falling back to "untitled" per the sanitizer contract.
func stem(t catalog.Track) string {
	return sanitize.Title(t.Title.OrElse(""))
}

// Resolve answers spec §4.4: given a channel's tracks (delivered
// newest-first) and a filename stem, find the matching track. Tracks
// are reversed to oldest-first before matching, and the first match
// under that order wins — a collided stem makes the later track
// unaddressable, the accepted limitation from spec §9's open
// questions.
func Resolve(tracks []catalog.Track, wantStem string) (catalog.Track, bool) {
	for _, t := range reversed(tracks) {
		if stem(t) == wantStem {
			return t, true
		}
	}
	return catalog.Track{}, false
}
