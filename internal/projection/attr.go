package projection

import (
	"context"
	"time"

	"github.com/radio4000/r4fs/internal/catalog"
	"github.com/radio4000/r4fs/internal/datetime"
	"github.com/radio4000/r4fs/internal/rerr"
)

// Attr computes the POSIX stat for node, per spec §4.1. It returns a
// *rerr.Error of Kind NotFound for node kinds that require a track
// match that does not exist, and of Kind Catalog for any failed
// catalog call.
func (p *Producer) Attr(ctx context.Context, node Node) (Stat, error) {
	switch node.Kind {
	case KindRoot, KindChannelsDir, KindFavoritesDir, KindDownloadsDir:
		now := datetime.Now()
		return dirStat(now, now), nil

	case KindHelp:
		content := HelpText()
		now := datetime.Now()
		return fileStat(uint64(len(content)), now, now, now), nil

	case KindControl:
		now := datetime.Now()
		return fileStat(0, now, now, now), nil

	case KindChannelDir:
		if node.IsAlias() {
			// Bare alias directory: no catalog access (spec §4.1).
			now := datetime.Now()
			return dirStat(now, now), nil
		}
		ch, err := p.channel(ctx, node.Channel)
		if err != nil {
			return Stat{}, err
		}
		mtime, ctime := channelTimes(ch)
		return dirStat(mtime, ctime), nil

	case KindChannelAbout:
		ch, tracks, err := p.channelAndTracks(ctx, node.Channel)
		if err != nil {
			return Stat{}, err
		}
		mtime, ctime := channelTimes(ch)
		content := AboutText(ch, tracks)
		return fileStat(uint64(len(content)), mtime, ctime, ctime), nil

	case KindChannelImage:
		ch, err := p.channel(ctx, node.Channel)
		if err != nil {
			return Stat{}, err
		}
		mtime, ctime := channelTimes(ch)
		content := ImageURLText(ch, p.Catalog.StorageBaseURL())
		return fileStat(uint64(len(content)), mtime, ctime, ctime), nil

	case KindChannelM3U:
		ch, err := p.channel(ctx, node.Channel)
		if err != nil {
			return Stat{}, err
		}
		tracks, err := p.tracks(ctx, node.Channel)
		if err != nil {
			return Stat{}, err
		}
		mtime, ctime := channelTimes(ch)
		content := TracksM3U(tracks)
		return fileStat(uint64(len(content)), mtime, ctime, ctime), nil

	case KindTracksDir, KindTagsDir:
		tracks, err := p.tracks(ctx, node.Channel)
		if err != nil {
			return Stat{}, err
		}
		mtime, ctime := aggregateTimes(tracks)
		return dirStat(mtime, ctime), nil

	case KindTagDir:
		tracks, err := p.tracks(ctx, node.Channel)
		if err != nil {
			return Stat{}, err
		}
		filtered := tracksWithTag(tracks, node.Tag)
		mtime, ctime := aggregateTimes(filtered)
		return dirStat(mtime, ctime), nil

	case KindTracksJSON:
		tracks, err := p.tracks(ctx, node.Channel)
		if err != nil {
			return Stat{}, err
		}
		mtime, ctime := aggregateTimes(tracks)
		content := TracksJSON(tracks)
		return fileStat(uint64(len(content)), mtime, ctime, ctime), nil

	case KindTrackText, KindTagTrackText:
		tracks, err := p.tracks(ctx, node.Channel)
		if err != nil {
			return Stat{}, err
		}
		track, found := Resolve(tracks, node.Stem)
		if !found {
			return Stat{}, rerr.New(rerr.NotFound, "producer.Attr", nil)
		}
		content := TrackText(track)
		mtime, mok := datetime.TryParse(track.CreatedAt)
		updated, uok := datetime.TryParse(track.UpdatedAt)
		if !mok {
			mtime = datetime.Now()
		}
		if !uok {
			updated = datetime.Now()
		}
		// Inversion is intentional (spec §4.1): mtime=created,
		// ctime=atime=updated, so ls -lt sorts chronologically.
		return fileStat(uint64(len(content)), mtime, updated, updated), nil
	}

	return Stat{}, rerr.New(rerr.NotFound, "producer.Attr", nil)
}

func (p *Producer) channelAndTracks(ctx context.Context, slug string) (catalog.Channel, []catalog.Track, error) {
	ch, err := p.channel(ctx, slug)
	if err != nil {
		return catalog.Channel{}, nil, err
	}
	tracks, err := p.tracks(ctx, slug)
	if err != nil {
		return catalog.Channel{}, nil, err
	}
	return ch, tracks, nil
}

// channelTimes returns a channel's created/updated instants, falling
// back to wall clock for whichever is absent/invalid.
func channelTimes(ch catalog.Channel) (mtime, ctime time.Time) {
	mtime, mok := datetime.TryParse(ch.CreatedAt)
	ctime, cok := datetime.TryParse(ch.UpdatedAt)
	if !mok {
		mtime = datetime.Now()
	}
	if !cok {
		ctime = datetime.Now()
	}
	return mtime, ctime
}

// aggregateTimes computes the earliest-created/latest-updated pair
// across tracks, falling back to wall clock entirely when no track
// yields a valid date (spec §4.1).
func aggregateTimes(tracks []catalog.Track) (mtime, ctime time.Time) {
	earliest, latest, ok := dateRange(tracks)
	if !ok {
		now := datetime.Now()
		return now, now
	}
	return earliest, latest
}
