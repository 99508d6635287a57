package projection

import (
	"context"
	"sort"
	"testing"

	"github.com/radio4000/r4fs/internal/catalog"
	"github.com/radio4000/r4fs/internal/catalog/catalogtest"
	"github.com/radio4000/r4fs/internal/config/configtest"
	"github.com/radio4000/r4fs/internal/option"
)

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestListing_Root(t *testing.T) {
	p := newProducer(catalogtest.New())
	entries, err := p.Listing(context.Background(), Node{Kind: KindRoot})
	if err != nil {
		t.Fatalf("Listing error = %v", err)
	}
	want := []string{"HELP.txt", "channels", "favorites", "downloads"}
	if got := names(entries); !equalStrings(got, want) {
		t.Errorf("Listing(/) = %v, want %v", got, want)
	}
}

func TestListing_ChannelDir(t *testing.T) {
	p := newProducer(catalogtest.New())
	entries, err := p.Listing(context.Background(), Node{Kind: KindChannelDir, Channel: "acidlab"})
	if err != nil {
		t.Fatalf("Listing error = %v", err)
	}
	want := []string{"ABOUT.txt", "image.url", "tracks.m3u", "tracks", "tags"}
	if got := names(entries); !equalStrings(got, want) {
		t.Errorf("Listing(channel dir) = %v, want %v", got, want)
	}
}

func TestListing_TracksDir_ReversedOrder(t *testing.T) {
	fake := catalogtest.New()
	fake.AddChannel(catalog.Channel{Slug: "acidlab"},
		catalog.Track{Title: option.Some("Newest"), URL: "u2"},
		catalog.Track{Title: option.Some("Oldest"), URL: "u1"},
	)
	p := newProducer(fake)

	entries, err := p.Listing(context.Background(), Node{Kind: KindTracksDir, Channel: "acidlab"})
	if err != nil {
		t.Fatalf("Listing error = %v", err)
	}
	want := []string{"tracks.json", "oldest.txt", "newest.txt"}
	if got := names(entries); !equalStrings(got, want) {
		t.Errorf("Listing(tracks dir) = %v, want %v (oldest first)", got, want)
	}
}

func TestListing_TagsDir_SortedUnionWithUntagged(t *testing.T) {
	fake := catalogtest.New()
	fake.AddChannel(catalog.Channel{Slug: "acidlab"},
		catalog.Track{Title: option.Some("a"), URL: "u1", Tags: []string{"Techno"}},
		catalog.Track{Title: option.Some("b"), URL: "u2", Description: option.Some("#House vibes")},
		catalog.Track{Title: option.Some("c"), URL: "u3"},
	)
	p := newProducer(fake)

	entries, err := p.Listing(context.Background(), Node{Kind: KindTagsDir, Channel: "acidlab"})
	if err != nil {
		t.Fatalf("Listing error = %v", err)
	}
	want := []string{"house", "techno", "untagged"}
	got := names(entries)
	sort.Strings(got)
	if !equalStrings(got, want) {
		t.Errorf("Listing(tags dir) = %v, want %v", got, want)
	}
}

func TestListing_TagDir_RestrictsToTaggedTracks(t *testing.T) {
	fake := catalogtest.New()
	fake.AddChannel(catalog.Channel{Slug: "acidlab"},
		catalog.Track{Title: option.Some("Techno Track"), URL: "u1", Tags: []string{"techno"}},
		catalog.Track{Title: option.Some("House Track"), URL: "u2", Tags: []string{"house"}},
	)
	p := newProducer(fake)

	entries, err := p.Listing(context.Background(), Node{Kind: KindTagDir, Channel: "acidlab", Tag: "house"})
	if err != nil {
		t.Fatalf("Listing error = %v", err)
	}
	want := []string{"house-track.txt"}
	if got := names(entries); !equalStrings(got, want) {
		t.Errorf("Listing(tag dir 'house') = %v, want %v", got, want)
	}
}

func TestListing_TagsDir_SanitizesMultiWordTags(t *testing.T) {
	fake := catalogtest.New()
	fake.AddChannel(catalog.Channel{Slug: "acidlab"},
		catalog.Track{Title: option.Some("a"), URL: "u1", Tags: []string{"hip hop"}},
	)
	p := newProducer(fake)

	entries, err := p.Listing(context.Background(), Node{Kind: KindTagsDir, Channel: "acidlab"})
	if err != nil {
		t.Fatalf("Listing error = %v", err)
	}
	want := []string{"hip-hop"}
	if got := names(entries); !equalStrings(got, want) {
		t.Errorf("Listing(tags dir) = %v, want %v (sanitized, matching the on-disk symlink name)", got, want)
	}
}

func TestListing_TagDir_MatchesSanitizedTagName(t *testing.T) {
	fake := catalogtest.New()
	fake.AddChannel(catalog.Channel{Slug: "acidlab"},
		catalog.Track{Title: option.Some("Hip Hop Track"), URL: "u1", Tags: []string{"hip hop"}},
	)
	p := newProducer(fake)

	// node.Tag arrives already sanitized, as it would from a lookup
	// under the sanitized name tagEntries lists.
	entries, err := p.Listing(context.Background(), Node{Kind: KindTagDir, Channel: "acidlab", Tag: "hip-hop"})
	if err != nil {
		t.Fatalf("Listing error = %v", err)
	}
	want := []string{"hip-hop-track.txt"}
	if got := names(entries); !equalStrings(got, want) {
		t.Errorf("Listing(tag dir 'hip-hop') = %v, want %v", got, want)
	}
}

func TestListing_Favorites_FromConfig(t *testing.T) {
	p := &Producer{Catalog: catalogtest.New(), Config: &configtest.Fake{Favs: []string{"acidlab", "techno-crew"}}}
	entries, err := p.Listing(context.Background(), Node{Kind: KindFavoritesDir})
	if err != nil {
		t.Fatalf("Listing error = %v", err)
	}
	want := []string{"acidlab", "techno-crew"}
	if got := names(entries); !equalStrings(got, want) {
		t.Errorf("Listing(favorites) = %v, want %v", got, want)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
