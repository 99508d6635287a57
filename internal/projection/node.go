// Package projection implements the path-driven state machine that
// translates kernel VFS requests into catalog queries: the path
// router, attribute/listing/content producers, and the track
// resolver (spec §4.1–§4.4), plus the FUSE node tree that wires them
// to github.com/hanwen/go-fuse/v2 (generalized from the teacher
// repo's node.go).
package projection

import (
	"strings"
)

// Kind enumerates the virtual path node kinds from spec §3.
type Kind int

const (
	KindUnknown Kind = iota
	KindRoot
	KindHelp
	KindControl
	KindChannelsDir
	KindChannelDir
	KindChannelAbout
	KindChannelImage
	KindChannelM3U
	KindTracksDir
	KindTracksJSON
	KindTrackText
	KindTagsDir
	KindTagDir
	KindTagTrackText
	KindFavoritesDir
	KindDownloadsDir
)

// AliasRoot, when non-empty, names which alias namespace a node was
// reached through ("favorites" or "downloads"); empty means the node
// was reached directly under /channels.
type Node struct {
	Kind      Kind
	Channel   string
	Tag       string
	Stem      string
	AliasRoot string
}

// IsAlias reports whether this node was reached through /favorites or
// /downloads rather than directly under /channels.
func (n Node) IsAlias() bool { return n.AliasRoot != "" }

// ControlFileName is the single writable path (spec §6): a write to
// this path, trimmed, is interpreted as a channel slug to enqueue.
// It deliberately does not appear in any directory's listing (spec
// §4.2 enumerates a fixed set of entries for "/" that does not
// include it); HELP.txt names it, and a lookup of that name reaches
// it.
const ControlFileName = "control"

const helpFileName = "HELP.txt"

// Classify splits an absolute path on '/', drops empty segments, and
// classifies the result into a Node, following spec §4.1: "positional,
// not regex-based". It returns ok=false for any path matching no node
// kind (callers translate that to ENOENT).
func Classify(path string) (Node, bool) {
	segments := splitPath(path)

	if len(segments) == 0 {
		return Node{Kind: KindRoot}, true
	}

	if len(segments) == 1 {
		switch segments[0] {
		case helpFileName:
			return Node{Kind: KindHelp}, true
		case ControlFileName:
			return Node{Kind: KindControl}, true
		case "channels":
			return Node{Kind: KindChannelsDir}, true
		case "favorites":
			return Node{Kind: KindFavoritesDir}, true
		case "downloads":
			return Node{Kind: KindDownloadsDir}, true
		}
		return Node{}, false
	}

	switch segments[0] {
	case "channels":
		return classifyChannelSubpath(segments[1:], "")
	case "favorites":
		return classifyAlias(segments[1:], "favorites")
	case "downloads":
		return classifyAlias(segments[1:], "downloads")
	}

	return Node{}, false
}

// classifyAlias handles /favorites/{slug}/... and /downloads/{slug}/...
// by rewriting to the equivalent /channels/{slug}/... classification
// and tagging the result with the alias root it came through (spec
// §4.1's "Favorites/Downloads aliases ... resolved by rewriting the
// path").
func classifyAlias(rest []string, aliasRoot string) (Node, bool) {
	if len(rest) == 0 {
		// Handled by the single-segment branch in Classify; unreachable
		// in practice but kept defensive.
		if aliasRoot == "favorites" {
			return Node{Kind: KindFavoritesDir}, true
		}
		return Node{Kind: KindDownloadsDir}, true
	}

	slug := rest[0]
	node, ok := classifyChannelSubpath(rest[1:], slug)
	if !ok {
		return Node{}, false
	}
	node.AliasRoot = aliasRoot
	return node, true
}

// classifyChannelSubpath classifies the segments following
// /channels/{slug} (slug may already be known, or be the first
// element of rest when slug=="").
func classifyChannelSubpath(rest []string, knownSlug string) (Node, bool) {
	slug := knownSlug
	if slug == "" {
		if len(rest) == 0 {
			return Node{}, false
		}
		slug = rest[0]
		rest = rest[1:]
	}

	if len(rest) == 0 {
		return Node{Kind: KindChannelDir, Channel: slug}, true
	}

	switch rest[0] {
	case "ABOUT.txt":
		if len(rest) == 1 {
			return Node{Kind: KindChannelAbout, Channel: slug}, true
		}
	case "image.url":
		if len(rest) == 1 {
			return Node{Kind: KindChannelImage, Channel: slug}, true
		}
	case "tracks.m3u":
		if len(rest) == 1 {
			return Node{Kind: KindChannelM3U, Channel: slug}, true
		}
	case "tracks":
		switch len(rest) {
		case 1:
			return Node{Kind: KindTracksDir, Channel: slug}, true
		case 2:
			if rest[1] == "tracks.json" {
				return Node{Kind: KindTracksJSON, Channel: slug}, true
			}
			if stem, ok := trimTxt(rest[1]); ok {
				return Node{Kind: KindTrackText, Channel: slug, Stem: stem}, true
			}
		}
	case "tags":
		switch len(rest) {
		case 1:
			return Node{Kind: KindTagsDir, Channel: slug}, true
		case 2:
			// rest[1] is whatever directory name the caller looked up,
			// which is always the sanitized form tagEntries listed.
			return Node{Kind: KindTagDir, Channel: slug, Tag: rest[1]}, true
		case 3:
			if stem, ok := trimTxt(rest[2]); ok {
				return Node{Kind: KindTagTrackText, Channel: slug, Tag: rest[1], Stem: stem}, true
			}
		}
	}

	return Node{}, false
}

func trimTxt(name string) (string, bool) {
	const suffix = ".txt"
	if !strings.HasSuffix(name, suffix) || len(name) <= len(suffix) {
		return "", false
	}
	return strings.TrimSuffix(name, suffix), true
}

func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
