// Package catalogtest provides a minimal in-memory catalog.Catalog
// implementation for tests that exercise the projection and download
// pipeline end to end without a mock framework's call-expectation
// bookkeeping.
package catalogtest

import (
	"context"
	"fmt"

	"github.com/radio4000/r4fs/internal/catalog"
)

// Fake is an in-memory catalog.Catalog. Tracks are keyed by channel
// slug and stored in the order they are passed to AddChannel, matching the catalog's
// newest-first delivery contract when the caller adds newest first.
type Fake struct {
	ChannelsBySlug map[string]catalog.Channel
	Order          []string
	TracksBySlug   map[string][]catalog.Track
	Storage        string

	Err error // if set, every method returns this error
}

// New returns an empty fake catalog.
func New() *Fake {
	return &Fake{
		ChannelsBySlug: make(map[string]catalog.Channel),
		TracksBySlug:   make(map[string][]catalog.Track),
	}
}

// AddChannel registers a channel (in delivery order) with its tracks,
// newest-first as the real catalog would deliver them.
func (f *Fake) AddChannel(ch catalog.Channel, tracksNewestFirst ...catalog.Track) {
	f.ChannelsBySlug[ch.Slug] = ch
	f.Order = append(f.Order, ch.Slug)
	f.TracksBySlug[ch.Slug] = tracksNewestFirst
}

func (f *Fake) Channels(ctx context.Context) ([]catalog.Channel, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]catalog.Channel, 0, len(f.Order))
	for _, slug := range f.Order {
		out = append(out, f.ChannelsBySlug[slug])
	}
	return out, nil
}

func (f *Fake) Channel(ctx context.Context, slug string) (catalog.Channel, error) {
	if f.Err != nil {
		return catalog.Channel{}, f.Err
	}
	ch, ok := f.ChannelsBySlug[slug]
	if !ok {
		return catalog.Channel{}, fmt.Errorf("channel %q not found", slug)
	}
	return ch, nil
}

func (f *Fake) Tracks(ctx context.Context, channelSlug string) ([]catalog.Track, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.TracksBySlug[channelSlug], nil
}

func (f *Fake) StorageBaseURL() string {
	return f.Storage
}
