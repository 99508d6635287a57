package projection

import (
	"time"

	"github.com/radio4000/r4fs/internal/catalog"
	"github.com/radio4000/r4fs/internal/datetime"
	"github.com/radio4000/r4fs/internal/sanitize"
)

// dateRange computes the earliest created_at and latest updated_at
// across tracks, filtering out records whose date strings fail to
// parse (spec §4.1). ok is false only when no track yields any valid
// date at all, signalling the wall-clock fallback; when only one of
// the two fields parses on some track, the other one is wall clock.
func dateRange(tracks []catalog.Track) (earliestCreated, latestUpdated time.Time, ok bool) {
	var createdOK, updatedOK bool
	for _, t := range tracks {
		if created, valid := datetime.TryParse(t.CreatedAt); valid {
			if !createdOK || created.Before(earliestCreated) {
				earliestCreated = created
			}
			createdOK = true
		}
		if updated, valid := datetime.TryParse(t.UpdatedAt); valid {
			if !updatedOK || updated.After(latestUpdated) {
				latestUpdated = updated
			}
			updatedOK = true
		}
	}
	if !createdOK && !updatedOK {
		return time.Time{}, time.Time{}, false
	}
	now := datetime.Now()
	if !createdOK {
		earliestCreated = now
	}
	if !updatedOK {
		latestUpdated = now
	}
	return earliestCreated, latestUpdated, true
}

// tracksWithTag filters tracks to those whose derived-or-untagged set
// includes tag. tag arrives already sanitized (it's a path segment
// taken from a tagEntries-listed directory name), so candidates are
// sanitized the same way before comparing — the listing and the
// lookup must agree on what "hip hop" turns into, or the two could
// diverge on the same tag (spec §9).
func tracksWithTag(tracks []catalog.Track, tag string) []catalog.Track {
	var out []catalog.Track
	for _, t := range tracks {
		for _, candidate := range sanitize.EffectiveTags(t.Description.OrElse(""), t.Tags) {
			if sanitize.Title(candidate) == tag {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// reversed returns a copy of tracks in reverse order: the catalog
// delivers newest-first (spec §3's ordering invariant); the projected
// view reverses it so position 0 is the oldest.
func reversed(tracks []catalog.Track) []catalog.Track {
	out := make([]catalog.Track, len(tracks))
	for i, t := range tracks {
		out[len(tracks)-1-i] = t
	}
	return out
}
