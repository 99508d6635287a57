package job

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/radio4000/r4fs/internal/catalog"
	"github.com/radio4000/r4fs/internal/config"
	"github.com/radio4000/r4fs/internal/datetime"
	"github.com/radio4000/r4fs/internal/sanitize"
)

// postProcess runs the three steps of spec §4.10 on a freshly
// downloaded file. Every failure is logged and non-fatal: the track
// still counts as downloaded.
func (r *Runner) postProcess(dest string, track catalog.Track, index int, slug string, settings config.Settings) {
	if r.Metadata != nil {
		if err := r.Metadata.Write(dest, track, index); err != nil {
			r.logger().Warn("job: id3 write failed", "file", dest, "error", err)
		}
	}

	stampTimes(dest, track, r.logger())

	if settings.Features.OrganizeByTags {
		r.linkIntoTags(dest, track, slug)
	}
}

// stampTimes sets mtime=created_at, atime=updated_at, falling back to
// wall clock for whichever is absent/invalid (spec §4.10). A
// missing-file error is tolerated: the downloader's finalization may
// still be renaming the file into place.
func stampTimes(path string, track catalog.Track, logger *slog.Logger) {
	mtime, ok := datetime.TryParse(track.CreatedAt)
	if !ok {
		mtime = datetime.Now()
	}
	atime, ok := datetime.TryParse(track.UpdatedAt)
	if !ok {
		atime = datetime.Now()
	}
	if err := os.Chtimes(path, atime, mtime); err != nil && !os.IsNotExist(err) {
		logger.Warn("job: chtimes failed", "file", path, "error", err)
	}
}

// linkIntoTags creates {slug}/tags/{sanitize(tag)}/ and a relative
// symlink back into tracks/{filename} for every tag the track carries
// (spec §4.10). Pre-existing links with the same name are replaced.
func (r *Runner) linkIntoTags(dest string, track catalog.Track, slug string) {
	channelDir := filepath.Join(r.Config.DownloadDir(), slug)
	filename := filepath.Base(dest)
	tags := sanitize.EffectiveTags(track.Description.OrElse(""), track.Tags)

	for _, tag := range tags {
		tagDir := filepath.Join(channelDir, "tags", sanitize.Title(tag))
		if err := os.MkdirAll(tagDir, 0o755); err != nil {
			r.logger().Warn("job: tag dir failed", "tag", tag, "error", err)
			continue
		}

		linkPath := filepath.Join(tagDir, filename)
		relTarget, err := filepath.Rel(tagDir, dest)
		if err != nil {
			r.logger().Warn("job: tag symlink relative path failed", "tag", tag, "error", err)
			continue
		}

		_ = os.Remove(linkPath)
		if err := os.Symlink(relTarget, linkPath); err != nil {
			r.logger().Warn("job: tag symlink failed", "tag", tag, "error", err)
		}
	}
}
