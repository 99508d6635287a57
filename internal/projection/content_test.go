package projection

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/radio4000/r4fs/internal/catalog"
	"github.com/radio4000/r4fs/internal/option"
)

func TestAboutText_ContainsNameRuleAndStats(t *testing.T) {
	ch := catalog.Channel{Slug: "acidlab", Name: option.Some("Acid Lab"), Description: option.Some("303 all day")}
	tracks := []catalog.Track{{URL: "u1"}, {URL: "u2"}}

	got := string(AboutText(ch, tracks))
	if !strings.HasPrefix(got, "Acid Lab\n========\n") {
		t.Errorf("AboutText does not start with name + '=' rule: %q", got)
	}
	if !strings.Contains(got, "303 all day") {
		t.Error("AboutText missing description")
	}
	if !strings.Contains(got, "Tracks: 2") {
		t.Error("AboutText missing track count")
	}
}

func TestAboutText_DefaultDescription(t *testing.T) {
	ch := catalog.Channel{Slug: "acidlab"}
	got := string(AboutText(ch, nil))
	if !strings.Contains(got, "No description.") {
		t.Errorf("AboutText missing default description phrase: %q", got)
	}
}

func TestImageURLText_HTTPPassthrough(t *testing.T) {
	ch := catalog.Channel{Image: option.Some("https://cdn.example.com/cover.png")}
	got := string(ImageURLText(ch, "https://supa.example.co"))
	if got != "https://cdn.example.com/cover.png\n" {
		t.Errorf("ImageURLText = %q", got)
	}
}

func TestImageURLText_StorageRelativeKey(t *testing.T) {
	ch := catalog.Channel{Image: option.Some("acidlab/cover.png")}
	got := string(ImageURLText(ch, "https://supa.example.co/"))
	want := "https://supa.example.co/storage/v1/object/public/channels/acidlab/cover.png\n"
	if got != want {
		t.Errorf("ImageURLText = %q, want %q", got, want)
	}
}

func TestImageURLText_AbsentImage(t *testing.T) {
	ch := catalog.Channel{}
	got := ImageURLText(ch, "https://supa.example.co")
	if len(got) != 0 {
		t.Errorf("ImageURLText with no image = %q, want empty", got)
	}
}

func TestTracksM3U_CatalogOrderNotReversed(t *testing.T) {
	tracks := []catalog.Track{
		{Title: option.Some("Newest"), URL: "u2"},
		{Title: option.Some("Oldest"), URL: "u1"},
	}
	got := string(TracksM3U(tracks))
	want := "#EXTM3U\n#EXTINF:-1,Newest\nu2\n#EXTINF:-1,Oldest\nu1\n"
	if got != want {
		t.Errorf("TracksM3U = %q, want %q", got, want)
	}
}

func TestTracksM3U_UntitledFallback(t *testing.T) {
	got := string(TracksM3U([]catalog.Track{{URL: "u1"}}))
	if !strings.Contains(got, "#EXTINF:-1,Untitled\n") {
		t.Errorf("TracksM3U missing Untitled fallback: %q", got)
	}
}

func TestTracksJSON_ReversedAndIndented(t *testing.T) {
	tracks := []catalog.Track{
		{Title: option.Some("Newest"), URL: "u2"},
		{Title: option.Some("Oldest"), URL: "u1"},
	}
	data := TracksJSON(tracks)
	if !strings.Contains(string(data), "  \"title\": \"Oldest\"") {
		t.Errorf("TracksJSON is not 2-space indented or not reversed: %s", data)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("TracksJSON did not produce valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[0]["title"] != "Oldest" || decoded[1]["title"] != "Newest" {
		t.Errorf("TracksJSON order = %v, want oldest first", decoded)
	}
}

func TestTrackText_FullFormat(t *testing.T) {
	track := catalog.Track{
		Title:       option.Some("Deep House"),
		URL:         "https://example.com/1",
		Description: option.Some("a #house classic"),
		DiscogsURL:  option.Some("https://discogs.com/release/1"),
		CreatedAt:   "2020-01-01T00:00:00Z",
		UpdatedAt:   "2021-06-15T10:30:00Z",
	}
	got := string(TrackText(track))

	for _, want := range []string{
		"Title: Deep House\n",
		"URL: https://example.com/1\n",
		"Description:\na #house classic\n",
		"Discogs: https://discogs.com/release/1\n",
		"Added: ",
		"Updated: ",
		"Tags: #house\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("TrackText missing %q in:\n%s", want, got)
		}
	}
}

func TestTrackText_OmitsAbsentFields(t *testing.T) {
	track := catalog.Track{URL: "u1"}
	got := string(TrackText(track))
	if strings.Contains(got, "Description:") || strings.Contains(got, "Discogs:") ||
		strings.Contains(got, "Added:") || strings.Contains(got, "Updated:") || strings.Contains(got, "Tags:") {
		t.Errorf("TrackText with no optional fields should omit their sections: %q", got)
	}
	if !strings.HasPrefix(got, "Title: Untitled\nURL: u1\n") {
		t.Errorf("TrackText = %q", got)
	}
}

func TestTrackText_InvalidDatesOmitAddedUpdated(t *testing.T) {
	track := catalog.Track{URL: "u1", CreatedAt: "", UpdatedAt: "not a date"}
	got := string(TrackText(track))
	if strings.Contains(got, "Added:") || strings.Contains(got, "Updated:") {
		t.Errorf("TrackText with invalid dates should omit Added/Updated: %q", got)
	}
}
