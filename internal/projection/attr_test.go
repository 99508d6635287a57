package projection

import (
	"context"
	"testing"
	"time"

	"github.com/radio4000/r4fs/internal/catalog"
	"github.com/radio4000/r4fs/internal/catalog/catalogtest"
	"github.com/radio4000/r4fs/internal/config/configtest"
	"github.com/radio4000/r4fs/internal/option"
	"github.com/radio4000/r4fs/internal/rerr"
)

func newProducer(fake *catalogtest.Fake) *Producer {
	return &Producer{Catalog: fake, Config: &configtest.Fake{}}
}

func TestAttr_Root_IsDirWithSizeZero(t *testing.T) {
	p := newProducer(catalogtest.New())
	stat, err := p.Attr(context.Background(), Node{Kind: KindRoot})
	if err != nil {
		t.Fatalf("Attr error = %v", err)
	}
	if !stat.IsDir || stat.Size != 0 {
		t.Errorf("Root stat = %+v, want IsDir=true Size=0", stat)
	}
}

func TestAttr_ChannelDir_UsesChannelTimes(t *testing.T) {
	fake := catalogtest.New()
	fake.AddChannel(catalog.Channel{
		Slug:      "acidlab",
		CreatedAt: "2020-01-01T00:00:00Z",
		UpdatedAt: "2021-06-15T10:30:00Z",
	})
	p := newProducer(fake)

	stat, err := p.Attr(context.Background(), Node{Kind: KindChannelDir, Channel: "acidlab"})
	if err != nil {
		t.Fatalf("Attr error = %v", err)
	}
	want, _ := time.Parse(time.RFC3339, "2020-01-01T00:00:00Z")
	if !stat.Mtime.Equal(want) {
		t.Errorf("Mtime = %v, want %v", stat.Mtime, want)
	}
}

func TestAttr_ChannelDir_InvalidDatesFallBackToNow(t *testing.T) {
	fake := catalogtest.New()
	fake.AddChannel(catalog.Channel{Slug: "acidlab", CreatedAt: "", UpdatedAt: "not a date"})
	p := newProducer(fake)

	before := time.Now().UTC()
	stat, err := p.Attr(context.Background(), Node{Kind: KindChannelDir, Channel: "acidlab"})
	after := time.Now().UTC()
	if err != nil {
		t.Fatalf("Attr error = %v", err)
	}
	if stat.Mtime.Before(before) || stat.Mtime.After(after) {
		t.Errorf("Mtime = %v, want wall-clock fallback in [%v, %v]", stat.Mtime, before, after)
	}
}

func TestAttr_TrackText_MtimeCtimeInversion(t *testing.T) {
	fake := catalogtest.New()
	fake.AddChannel(catalog.Channel{Slug: "acidlab"}, catalog.Track{
		Title:     option.Some("Deep House"),
		URL:       "https://example.com/1",
		CreatedAt: "2020-01-01T00:00:00Z",
		UpdatedAt: "2022-03-03T00:00:00Z",
	})
	p := newProducer(fake)

	stat, err := p.Attr(context.Background(), Node{Kind: KindTrackText, Channel: "acidlab", Stem: "deep-house"})
	if err != nil {
		t.Fatalf("Attr error = %v", err)
	}
	created, _ := time.Parse(time.RFC3339, "2020-01-01T00:00:00Z")
	updated, _ := time.Parse(time.RFC3339, "2022-03-03T00:00:00Z")
	if !stat.Mtime.Equal(created) {
		t.Errorf("Mtime = %v, want created_at %v", stat.Mtime, created)
	}
	if !stat.Ctime.Equal(updated) {
		t.Errorf("Ctime = %v, want updated_at %v", stat.Ctime, updated)
	}
	if !stat.Atime.Equal(updated) {
		t.Errorf("Atime = %v, want updated_at %v", stat.Atime, updated)
	}
}

func TestAttr_TrackText_NotFoundForUnknownStem(t *testing.T) {
	fake := catalogtest.New()
	fake.AddChannel(catalog.Channel{Slug: "acidlab"})
	p := newProducer(fake)

	_, err := p.Attr(context.Background(), Node{Kind: KindTrackText, Channel: "acidlab", Stem: "nope"})
	if !rerr.Is(err, rerr.NotFound) {
		t.Fatalf("err = %v, want NotFound", err)
	}
}

func TestAttr_CatalogError_PropagatesAsCatalogKind(t *testing.T) {
	fake := catalogtest.New()
	fake.Err = context.DeadlineExceeded
	p := newProducer(fake)

	_, err := p.Attr(context.Background(), Node{Kind: KindChannelDir, Channel: "acidlab"})
	if !rerr.Is(err, rerr.Catalog) {
		t.Fatalf("err = %v, want Catalog", err)
	}
}

func TestAttr_TracksDir_AggregatesEarliestCreatedLatestUpdated(t *testing.T) {
	fake := catalogtest.New()
	fake.AddChannel(catalog.Channel{Slug: "acidlab"},
		catalog.Track{Title: option.Some("b"), URL: "u2", CreatedAt: "2022-01-01T00:00:00Z", UpdatedAt: "2022-06-01T00:00:00Z"},
		catalog.Track{Title: option.Some("a"), URL: "u1", CreatedAt: "2020-01-01T00:00:00Z", UpdatedAt: "2020-02-01T00:00:00Z"},
	)
	p := newProducer(fake)

	stat, err := p.Attr(context.Background(), Node{Kind: KindTracksDir, Channel: "acidlab"})
	if err != nil {
		t.Fatalf("Attr error = %v", err)
	}
	earliest, _ := time.Parse(time.RFC3339, "2020-01-01T00:00:00Z")
	latest, _ := time.Parse(time.RFC3339, "2022-06-01T00:00:00Z")
	if !stat.Mtime.Equal(earliest) {
		t.Errorf("Mtime = %v, want earliest created_at %v", stat.Mtime, earliest)
	}
	if !stat.Ctime.Equal(latest) {
		t.Errorf("Ctime = %v, want latest updated_at %v", stat.Ctime, latest)
	}
}

func TestAttr_TracksDir_SkipsInvalidDatesInAggregate(t *testing.T) {
	fake := catalogtest.New()
	fake.AddChannel(catalog.Channel{Slug: "acidlab"},
		catalog.Track{Title: option.Some("invalid"), URL: "u2", CreatedAt: "", UpdatedAt: "not a date"},
		catalog.Track{Title: option.Some("valid"), URL: "u1", CreatedAt: "2020-01-01T00:00:00Z", UpdatedAt: "2020-02-01T00:00:00Z"},
	)
	p := newProducer(fake)

	stat, err := p.Attr(context.Background(), Node{Kind: KindTracksDir, Channel: "acidlab"})
	if err != nil {
		t.Fatalf("Attr error = %v", err)
	}
	want, _ := time.Parse(time.RFC3339, "2020-01-01T00:00:00Z")
	if !stat.Mtime.Equal(want) {
		t.Errorf("Mtime = %v, want %v (invalid-date track ignored)", stat.Mtime, want)
	}
}

func TestAttr_SyntheticFileSize_MatchesContentLength(t *testing.T) {
	fake := catalogtest.New()
	fake.AddChannel(catalog.Channel{Slug: "acidlab", Description: option.Some("house music")},
		catalog.Track{Title: option.Some("a"), URL: "u1"},
	)
	p := newProducer(fake)

	stat, err := p.Attr(context.Background(), Node{Kind: KindChannelAbout, Channel: "acidlab"})
	if err != nil {
		t.Fatalf("Attr error = %v", err)
	}
	content, err := p.Content(context.Background(), Node{Kind: KindChannelAbout, Channel: "acidlab"})
	if err != nil {
		t.Fatalf("Content error = %v", err)
	}
	if stat.Size != uint64(len(content)) {
		t.Errorf("stat.Size = %d, want len(content) = %d", stat.Size, len(content))
	}
}
