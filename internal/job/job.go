// Package job implements the per-channel download job (spec §4.7):
// fetch tracks, reconcile the on-disk presence set, invoke the
// downloader for each missing track, post-process successes, and
// emit a playlist.
package job

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/radio4000/r4fs/internal/catalog"
	"github.com/radio4000/r4fs/internal/config"
	"github.com/radio4000/r4fs/internal/id3"
	"github.com/radio4000/r4fs/internal/ident"
	"github.com/radio4000/r4fs/internal/queue"
	"github.com/radio4000/r4fs/internal/rerr"
	"github.com/radio4000/r4fs/internal/sanitize"
	"github.com/radio4000/r4fs/internal/supervisor"
)

var audioExtensions = []string{".mp3", ".opus", ".m4a", ".webm"}

// Runner implements queue.Runner, wiring the catalog, configuration,
// process supervisor, and ID3 writer together for one channel slug at
// a time (the queue guarantees at most one Run executes concurrently).
type Runner struct {
	Catalog    catalog.Catalog
	Config     config.Config
	Supervisor *supervisor.Supervisor
	Metadata   id3.MetadataWriter
	Logger     *slog.Logger
}

var _ queue.Runner = (*Runner)(nil)

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

// Run executes the steps of spec §4.7 for one channel slug.
func (r *Runner) Run(ctx context.Context, slug string) queue.Summary {
	tracks, err := r.Catalog.Tracks(ctx, slug)
	if err != nil {
		return queue.Summary{Err: rerr.New(rerr.Catalog, "job.Run", err)}
	}
	if len(tracks) == 0 {
		return queue.Summary{}
	}

	channelDir := filepath.Join(r.Config.DownloadDir(), slug)
	tracksDir := filepath.Join(channelDir, "tracks")
	if err := os.MkdirAll(tracksDir, 0o755); err != nil {
		return queue.Summary{Err: rerr.New(rerr.PostProcessFailed, "job.Run", err)}
	}

	existing, err := os.ReadDir(tracksDir)
	if err != nil {
		return queue.Summary{Err: rerr.New(rerr.PostProcessFailed, "job.Run", err)}
	}
	existingNames := make([]string, 0, len(existing))
	for _, e := range existing {
		existingNames = append(existingNames, e.Name())
	}

	settings := r.Config.Settings()
	var downloaded, skipped, failed int

	for i, track := range tracks {
		if ctx.Err() != nil {
			break
		}

		stem := sanitize.Title(track.Title.OrElse(""))
		if name, present := findPresent(existingNames, stem, track); present {
			skipped++
			r.logger().Info("job: already present", "channel", slug, "file", name)
			continue
		}

		disambiguator := track.ID.OrElse("")
		if disambiguator == "" {
			disambiguator, _ = ident.YouTubeID(track.URL)
		}
		outputTemplate := filepath.Join(tracksDir, fmt.Sprintf("%s [%s].%%(ext)s", stem, disambiguator))

		result, err := r.Supervisor.Run(ctx, settings.Downloader, downloaderArgs(settings, outputTemplate, track.URL))
		if err != nil {
			if rerr.Is(err, rerr.Cancelled) {
				break
			}
			r.logger().Error("job: downloader missing", "channel", slug, "error", err)
			failed++
			continue
		}

		dest, ok := resolveDestination(result, tracksDir, stem)
		if !ok {
			if result.Outcome.AlreadyDownloaded {
				skipped++
			} else {
				failed++
				r.logger().Warn("job: track failed", "channel", slug, "track", stem, "message", failureMessage(result))
			}
			continue
		}

		if result.Outcome.AlreadyDownloaded {
			skipped++
		} else {
			downloaded++
		}
		existingNames = append(existingNames, filepath.Base(dest))

		r.postProcess(dest, track, i, slug, settings)
	}

	if err := r.emitPlaylist(channelDir, tracksDir, tracks); err != nil {
		r.logger().Error("job: playlist emission failed", "channel", slug, "error", err)
	}

	r.logger().Info("job: finished", "channel", slug, "downloaded", downloaded, "skipped", skipped, "failed", failed)
	return queue.Summary{Downloaded: downloaded, Skipped: skipped, Failed: failed}
}

// findPresent implements spec §4.7 step 3's presence rule.
func findPresent(names []string, stem string, track catalog.Track) (string, bool) {
	youtubeID, hasYoutubeID := ident.YouTubeID(track.URL)
	trackID := track.ID.OrElse("")
	for _, name := range names {
		if strings.HasPrefix(name, stem) {
			return name, true
		}
		if trackID != "" && strings.Contains(name, "["+trackID+"]") {
			return name, true
		}
		if hasYoutubeID && strings.Contains(name, "["+youtubeID+"]") {
			return name, true
		}
	}
	return "", false
}

func downloaderArgs(settings config.Settings, outputTemplate, url string) []string {
	args := []string{
		"--format", settings.YtDlp.Format,
		"--audio-format", settings.YtDlp.AudioFormat,
		"--audio-quality", settings.YtDlp.AudioQuality,
		"--output", outputTemplate,
		"--no-playlist",
		"--newline",
	}
	if settings.YtDlp.ExtractAudio {
		args = append(args, "--extract-audio")
	}
	if settings.YtDlp.CookiesFile != "" {
		args = append(args, "--cookies", settings.YtDlp.CookiesFile)
	} else if settings.YtDlp.CookiesFromBrowser != "" {
		args = append(args, "--cookies-from-browser", settings.YtDlp.CookiesFromBrowser)
	}
	if settings.YtDlp.EmbedThumbnail {
		args = append(args, "--embed-thumbnail")
	}
	if settings.YtDlp.WriteThumbnail {
		args = append(args, "--write-thumbnail")
	}
	return append(args, url)
}

// resolveDestination verifies the scraped (or inferred) destination
// file actually exists, retrying once after 200ms to absorb
// filesystem-settle races (spec §4.7 step 4).
func resolveDestination(result supervisor.Result, tracksDir, stem string) (string, bool) {
	if result.ExitCode != 0 && !result.Outcome.AlreadyDownloaded {
		return "", false
	}

	dest := result.Outcome.Destination
	if dest == "" {
		dest = newestMatching(tracksDir, stem)
	}
	if dest == "" {
		return "", false
	}
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(tracksDir, dest)
	}

	if fileExists(dest) {
		return dest, true
	}
	time.Sleep(200 * time.Millisecond)
	if fileExists(dest) {
		return dest, true
	}
	return "", false
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func newestMatching(dir, stem string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	var best string
	var bestMod time.Time
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), stem) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if best == "" || info.ModTime().After(bestMod) {
			best = e.Name()
			bestMod = info.ModTime()
		}
	}
	return best
}

func failureMessage(result supervisor.Result) string {
	if s := strings.TrimSpace(result.Stderr); s != "" {
		return s
	}
	if s := strings.TrimSpace(result.Stdout); s != "" {
		return s
	}
	return fmt.Sprintf("exit code %d", result.ExitCode)
}

// emitPlaylist writes playlist.m3u in original catalog order (spec
// §4.7 step 5): for each track, the first on-disk filename whose name
// contains the sanitized title.
func (r *Runner) emitPlaylist(channelDir, tracksDir string, tracks []catalog.Track) error {
	names, err := os.ReadDir(tracksDir)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("#EXTM3U\n")
	for _, t := range tracks {
		stem := sanitize.Title(t.Title.OrElse(""))
		for _, n := range names {
			if isAudioFile(n.Name()) && strings.Contains(n.Name(), stem) {
				fmt.Fprintf(&b, "#EXTINF:-1,%s\n", t.Title.OrElse("Untitled"))
				fmt.Fprintf(&b, "tracks/%s\n", n.Name())
				break
			}
		}
	}

	return os.WriteFile(filepath.Join(channelDir, "playlist.m3u"), []byte(b.String()), 0o644)
}

func isAudioFile(name string) bool {
	for _, ext := range audioExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
