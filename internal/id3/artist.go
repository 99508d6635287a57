package id3

import "strings"

const unknownArtist = "Unknown Artist"

// SplitArtistTitle applies the spec's "artist-title" heuristic (§4.10):
// the title is a single string, the first " - " separated segment is
// the artist, the remainder is the title. Grounded on the pack's own
// artist/title splitting heuristic (sherlockholmesat221b-dbh-go-srv's
// youtube_utils.go), simplified to the spec's single fixed separator
// rather than that file's noise-stripping normalizer.
func SplitArtistTitle(raw string) (artist, title string) {
	parts := strings.SplitN(raw, " - ", 2)
	if len(parts) != 2 {
		return unknownArtist, strings.TrimSpace(raw)
	}
	artist = strings.TrimSpace(parts[0])
	title = strings.TrimSpace(parts[1])
	if artist == "" {
		artist = unknownArtist
	}
	if title == "" {
		title = strings.TrimSpace(raw)
	}
	return artist, title
}
