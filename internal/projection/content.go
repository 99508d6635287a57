package projection

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/radio4000/r4fs/internal/catalog"
	"github.com/radio4000/r4fs/internal/datetime"
	"github.com/radio4000/r4fs/internal/sanitize"
)

// HelpText is the fixed HELP.txt content (spec §4.3): its exact bytes
// are an external interface only in that stat size must match read
// bytes, which Attr and Content both derive from this single function.
func HelpText() []byte {
	return []byte(`radio4000fs

Navigate:
  /channels/{slug}/ABOUT.txt        channel description and stats
  /channels/{slug}/image.url        channel cover image URL
  /channels/{slug}/tracks.m3u       channel playlist, catalog order
  /channels/{slug}/tracks/          one {title}.txt per track
  /channels/{slug}/tracks/tracks.json
  /channels/{slug}/tags/            tag directories, derived from tracks
  /favorites/{slug}/...             alias of /channels/{slug}/...
  /downloads/{slug}/...             alias of /channels/{slug}/...

Download a channel:
  echo {slug} > control

Configuration lives in settings.json, favorites.txt, and downloads.txt
under the configuration directory; see R4_CONFIG_FILE and friends.
`)
}

// AboutText renders /channels/{slug}/ABOUT.txt (spec §4.3).
func AboutText(ch catalog.Channel, tracks []catalog.Track) []byte {
	name := ch.Name.OrElse(ch.Slug)
	rule := strings.Repeat("=", len([]rune(name)))

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", name, rule)

	desc := ch.Description.OrElse("No description.")
	fmt.Fprintf(&b, "%s\n\n", desc)

	fmt.Fprintf(&b, "Tracks: %d\n", len(tracks))
	if created, ok := datetime.TryParse(ch.CreatedAt); ok {
		fmt.Fprintf(&b, "Created: %s\n", formatLocalized(created))
	}
	b.WriteString("\n")

	if site, ok := ch.WebsiteURL.Get(); ok && site != "" {
		fmt.Fprintf(&b, "Website: %s\n\n", site)
	}

	fmt.Fprintf(&b, "Quick access:\n")
	fmt.Fprintf(&b, "  tracks/    tracks.m3u    tags/\n")

	return []byte(b.String())
}

// ImageURLText renders /channels/{slug}/image.url (spec §4.3).
func ImageURLText(ch catalog.Channel, storageBaseURL string) []byte {
	image, ok := ch.Image.Get()
	if !ok || image == "" {
		return nil
	}
	if strings.HasPrefix(image, "http") {
		return []byte(image + "\n")
	}
	base := strings.TrimRight(storageBaseURL, "/")
	return []byte(base + "/storage/v1/object/public/channels/" + image + "\n")
}

// TracksM3U renders /channels/{slug}/tracks.m3u: catalog order (not
// reversed), per spec §4.3.
func TracksM3U(tracks []catalog.Track) []byte {
	var b strings.Builder
	b.WriteString("#EXTM3U\n")
	for _, t := range tracks {
		fmt.Fprintf(&b, "#EXTINF:-1,%s\n", trackTitle(t))
		fmt.Fprintf(&b, "%s\n", t.URL)
	}
	return []byte(b.String())
}

// jsonTrack is the serializable shape for tracks.json: plain fields,
// no Optional wrapper, so the output is ordinary JSON.
type jsonTrack struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title,omitempty"`
	URL         string   `json:"url"`
	Description string   `json:"description,omitempty"`
	DiscogsURL  string   `json:"discogs_url,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func toJSONTrack(t catalog.Track) jsonTrack {
	return jsonTrack{
		ID:          t.ID.OrElse(""),
		Title:       t.Title.OrElse(""),
		URL:         t.URL,
		Description: t.Description.OrElse(""),
		DiscogsURL:  t.DiscogsURL.OrElse(""),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		Tags:        t.Tags,
	}
}

// TracksJSON renders /channels/{slug}/tracks/tracks.json: the
// reversed-order track array, 2-space indented (spec §4.3).
func TracksJSON(tracks []catalog.Track) []byte {
	rev := reversed(tracks)
	out := make([]jsonTrack, len(rev))
	for i, t := range rev {
		out[i] = toJSONTrack(t)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return []byte("[]")
	}
	return data
}

// TrackText renders a single track's .txt body, used both under
// tracks/ and under tags/{tag}/ (spec §4.3's "Track text format").
func TrackText(t catalog.Track) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", trackTitle(t))
	fmt.Fprintf(&b, "URL: %s\n", t.URL)

	if desc, ok := t.Description.Get(); ok && desc != "" {
		b.WriteString("\nDescription:\n")
		b.WriteString(desc)
		b.WriteString("\n")
	}

	if discogs, ok := t.DiscogsURL.Get(); ok && discogs != "" {
		fmt.Fprintf(&b, "\nDiscogs: %s\n", discogs)
	}

	created, createdOK := datetime.TryParse(t.CreatedAt)
	updated, updatedOK := datetime.TryParse(t.UpdatedAt)
	if createdOK || updatedOK {
		b.WriteString("\n")
		if createdOK {
			fmt.Fprintf(&b, "Added: %s\n", formatLocalized(created))
		}
		if updatedOK {
			fmt.Fprintf(&b, "Updated: %s\n", formatLocalized(updated))
		}
	}

	tags := sanitize.TagSet(t.Description.OrElse(""), t.Tags)
	if len(tags) > 0 {
		b.WriteString("\nTags:")
		for _, tag := range tags {
			b.WriteString(" #" + tag)
		}
		b.WriteString("\n")
	}

	return []byte(b.String())
}

// formatLocalized is the runtime's toLocaleString/toLocaleDateString
// equivalent (spec §4.3): deterministic, so stat size always matches
// the bytes Content emits.
func formatLocalized(t time.Time) string {
	return t.Format("Jan 2, 2006, 3:04 PM")
}
