// Package ident extracts a YouTube video ID from a track URL (spec
// §4.9), used both for download output templates and for re-entry
// presence detection.
package ident

import "regexp"

var patterns = []*regexp.Regexp{
	regexp.MustCompile(`watch\?v=([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`embed/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`v/([A-Za-z0-9_-]{11})`),
}

// YouTubeID returns the first 11-character YouTube video ID found in
// url, trying each marker in turn.
func YouTubeID(url string) (string, bool) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}
