package projection

import (
	"context"

	"github.com/radio4000/r4fs/internal/rerr"
)

// Content materializes the full byte content for a synthetic file
// node (spec §4.3). Read semantics (offset/length clipping) are the
// caller's responsibility (spec §4.3's "Read semantics"); Content
// always returns the whole file.
func (p *Producer) Content(ctx context.Context, node Node) ([]byte, error) {
	switch node.Kind {
	case KindHelp:
		return HelpText(), nil

	case KindChannelAbout:
		ch, tracks, err := p.channelAndTracks(ctx, node.Channel)
		if err != nil {
			return nil, err
		}
		return AboutText(ch, tracks), nil

	case KindChannelImage:
		ch, err := p.channel(ctx, node.Channel)
		if err != nil {
			return nil, err
		}
		return ImageURLText(ch, p.Catalog.StorageBaseURL()), nil

	case KindChannelM3U:
		tracks, err := p.tracks(ctx, node.Channel)
		if err != nil {
			return nil, err
		}
		return TracksM3U(tracks), nil

	case KindTracksJSON:
		tracks, err := p.tracks(ctx, node.Channel)
		if err != nil {
			return nil, err
		}
		return TracksJSON(tracks), nil

	case KindTrackText, KindTagTrackText:
		tracks, err := p.tracks(ctx, node.Channel)
		if err != nil {
			return nil, err
		}
		track, found := Resolve(tracks, node.Stem)
		if !found {
			return nil, rerr.New(rerr.NotFound, "producer.Content", nil)
		}
		return TrackText(track), nil
	}

	return nil, rerr.New(rerr.NotFound, "producer.Content", nil)
}

// ReadAt clips content to [offset, offset+length), the materialize-
// then-slice read semantics of spec §4.3. A short result signals EOF,
// never an error.
func ReadAt(content []byte, offset int64, length int) []byte {
	if offset < 0 || offset >= int64(len(content)) {
		return nil
	}
	end := offset + int64(length)
	if end > int64(len(content)) {
		end = int64(len(content))
	}
	return content[offset:end]
}
