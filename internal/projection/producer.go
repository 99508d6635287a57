package projection

import (
	"context"
	"log/slog"

	"github.com/radio4000/r4fs/internal/catalog"
	"github.com/radio4000/r4fs/internal/config"
	"github.com/radio4000/r4fs/internal/rerr"
)

// Producer bundles the Catalog and Config collaborators the
// attribute/listing/content producers and the track resolver all
// depend on (spec §4.1–§4.4).
type Producer struct {
	Catalog catalog.Catalog
	Config  config.Config
	Logger  *slog.Logger
}

func (p *Producer) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// tracks fetches a channel's tracks, translating any catalog error
// into a *rerr.Error of Kind Catalog (spec §7).
func (p *Producer) tracks(ctx context.Context, channel string) ([]catalog.Track, error) {
	tracks, err := p.Catalog.Tracks(ctx, channel)
	if err != nil {
		p.logger().Error("catalog Tracks failed", "channel", channel, "error", err)
		return nil, rerr.New(rerr.Catalog, "producer.tracks", err)
	}
	return tracks, nil
}

func (p *Producer) channel(ctx context.Context, slug string) (catalog.Channel, error) {
	ch, err := p.Catalog.Channel(ctx, slug)
	if err != nil {
		p.logger().Error("catalog Channel failed", "channel", slug, "error", err)
		return catalog.Channel{}, rerr.New(rerr.Catalog, "producer.channel", err)
	}
	return ch, nil
}

func trackTitle(t catalog.Track) string {
	return t.Title.OrElse("Untitled")
}
