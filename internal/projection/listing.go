package projection

import (
	"context"

	"github.com/radio4000/r4fs/internal/catalog"
	"github.com/radio4000/r4fs/internal/rerr"
	"github.com/radio4000/r4fs/internal/sanitize"
)

// Entry is one directory entry: a name plus whether it is itself a
// directory (needed to pick the right FUSE inode mode).
type Entry struct {
	Name  string
	IsDir bool
}

func file(name string) Entry { return Entry{Name: name} }
func dir(name string) Entry  { return Entry{Name: name, IsDir: true} }

// Listing enumerates a directory node's entries, per spec §4.2. The
// literal "." and ".." entries are not included here — go-fuse's
// high-level fs package (like the teacher's own node.go Readdir)
// supplies those from the kernel's VFS protocol, not from this layer.
func (p *Producer) Listing(ctx context.Context, node Node) ([]Entry, error) {
	switch node.Kind {
	case KindRoot:
		return []Entry{file(helpFileName), dir("channels"), dir("favorites"), dir("downloads")}, nil

	case KindChannelsDir:
		channels, err := p.Catalog.Channels(ctx)
		if err != nil {
			return nil, rerr.New(rerr.Catalog, "producer.Listing", err)
		}
		out := make([]Entry, len(channels))
		for i, ch := range channels {
			out[i] = dir(ch.Slug)
		}
		return out, nil

	case KindChannelDir:
		return []Entry{file("ABOUT.txt"), file("image.url"), file("tracks.m3u"), dir("tracks"), dir("tags")}, nil

	case KindTracksDir:
		tracks, err := p.tracks(ctx, node.Channel)
		if err != nil {
			return nil, err
		}
		out := []Entry{file("tracks.json")}
		for _, t := range reversed(tracks) {
			out = append(out, file(stem(t)+".txt"))
		}
		return out, nil

	case KindTagsDir:
		tracks, err := p.tracks(ctx, node.Channel)
		if err != nil {
			return nil, err
		}
		return tagEntries(tracks), nil

	case KindTagDir:
		tracks, err := p.tracks(ctx, node.Channel)
		if err != nil {
			return nil, err
		}
		filtered := tracksWithTag(tracks, node.Tag)
		out := make([]Entry, 0, len(filtered))
		for _, t := range reversed(filtered) {
			out = append(out, file(stem(t)+".txt"))
		}
		return out, nil

	case KindFavoritesDir:
		out := make([]Entry, 0)
		for _, slug := range p.Config.Favorites() {
			out = append(out, dir(slug))
		}
		return out, nil

	case KindDownloadsDir:
		out := make([]Entry, 0)
		for _, slug := range p.Config.Downloads() {
			out = append(out, dir(slug))
		}
		return out, nil
	}

	return nil, rerr.New(rerr.NotFound, "producer.Listing", nil)
}

// tagEntries lists the sanitized, deduplicated tag directory names, so
// the virtual listing matches the on-disk tag directories
// internal/job/postprocess.go's linkIntoTags creates under the same
// sanitize.Title name (spec §9): a tag like "hip hop" appears as
// "hip-hop" in both places, never as the raw "hip hop" here and
// "hip-hop" on disk.
func tagEntries(tracks []catalog.Track) []Entry {
	var sets [][]string
	for _, t := range tracks {
		effective := sanitize.EffectiveTags(t.Description.OrElse(""), t.Tags)
		sanitized := make([]string, len(effective))
		for i, tag := range effective {
			sanitized[i] = sanitize.Title(tag)
		}
		sets = append(sets, sanitized)
	}
	tags := sanitize.SortedUnique(sets)
	out := make([]Entry, len(tags))
	for i, tag := range tags {
		out[i] = dir(tag)
	}
	return out
}
