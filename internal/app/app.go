// Package app owns the handles the reference implementation keeps as
// module-level globals (spec §9): the catalog client, configuration,
// download queue, process supervisor, and the live FUSE server. A
// single App value is constructed once per process, by the mount
// command in cmd/r4fs.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	gofuse "github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"

	"github.com/radio4000/r4fs/internal/catalog"
	"github.com/radio4000/r4fs/internal/config"
	"github.com/radio4000/r4fs/internal/id3"
	"github.com/radio4000/r4fs/internal/job"
	"github.com/radio4000/r4fs/internal/projection"
	"github.com/radio4000/r4fs/internal/queue"
	"github.com/radio4000/r4fs/internal/rerr"
	"github.com/radio4000/r4fs/internal/supervisor"
)

// App bundles every piece of process-lifetime state the projection
// layer and the download pipeline need (spec §5's "shared resources").
type App struct {
	Config     config.Config
	Catalog    catalog.Catalog
	Supervisor *supervisor.Supervisor
	Queue      *queue.Queue
	Logger     *slog.Logger

	server    *fuse.Server
	cancel    context.CancelFunc
}

// New constructs an App from cfg. It fails with rerr.NotInitialized if
// Supabase credentials are missing (spec §7's "startup-fatal").
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.SupabaseURL() == "" || cfg.SupabaseKey() == "" {
		return nil, rerr.New(rerr.NotInitialized, "app.New", fmt.Errorf("missing SUPABASE_URL/SUPABASE_KEY"))
	}

	cat := catalog.NewSupabaseCatalog(cfg.SupabaseURL(), cfg.SupabaseKey())
	sup := &supervisor.Supervisor{Logger: logger}

	a := &App{
		Config:     cfg,
		Catalog:    cat,
		Supervisor: sup,
		Logger:     logger,
	}

	runner := &job.Runner{
		Catalog:    cat,
		Config:     cfg,
		Supervisor: sup,
		Metadata:   id3.TagWriter{},
		Logger:     logger,
	}
	a.Queue = queue.New(runner, logger)
	return a, nil
}

// Mount validates the on-disk layout, mounts the FUSE filesystem, and
// starts the queue worker and auto-enqueues any channels listed in
// downloads.txt (spec §6's `mount` subcommand).
func (a *App) Mount(ctx context.Context) error {
	mountPoint := a.Config.MountPoint()
	downloadRoot := a.Config.DownloadDir()
	if overlaps(mountPoint, downloadRoot) {
		return rerr.New(rerr.NotInitialized, "app.Mount", fmt.Errorf("mount point %q and download root %q overlap", mountPoint, downloadRoot))
	}
	if err := os.MkdirAll(mountPoint, 0o755); err != nil {
		return rerr.New(rerr.NotInitialized, "app.Mount", err)
	}
	if err := os.MkdirAll(downloadRoot, 0o755); err != nil {
		return rerr.New(rerr.NotInitialized, "app.Mount", err)
	}

	producer := &projection.Producer{Catalog: a.Catalog, Config: a.Config, Logger: a.Logger}
	root := projection.Root(producer, a.Queue)

	debug := a.Config.Settings().Mount.Debug
	server, err := gofuse.Mount(mountPoint, root, &gofuse.Options{
		MountOptions: fuse.MountOptions{Debug: debug},
	})
	if err != nil {
		return rerr.New(rerr.NotInitialized, "app.Mount", err)
	}
	a.server = server

	workerCtx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	go a.Queue.Run(workerCtx)

	for _, slug := range a.Config.Downloads() {
		if err := a.Queue.Enqueue(ctx, slug); err != nil {
			a.Logger.Warn("app: auto-enqueue failed", "slug", slug, "error", err)
		}
	}

	a.Logger.Info("app: mounted", "mountPoint", mountPoint, "downloadRoot", downloadRoot)
	return nil
}

// Unmount stops the download pipeline and unmounts the filesystem
// (spec §5's cancellation sequence: raise shutting_down, terminate any
// in-flight subprocess, wait for cleanup, then unmount).
func (a *App) Unmount() error {
	a.StopDownloads()

	if a.server == nil {
		return nil
	}
	if err := a.server.Unmount(); err != nil {
		return rerr.New(rerr.NotInitialized, "app.Unmount", err)
	}
	return nil
}

// StopDownloads raises shutting_down, terminates any in-flight
// subprocess, and waits for cleanup (spec §5), without touching the
// mount itself. Split out from Unmount so a process that observes the
// mount being torn down externally (e.g. `fusermount -u` run from the
// separate `unmount` subcommand) can still drain its queue.
func (a *App) StopDownloads() {
	a.Queue.Shutdown()
	a.Supervisor.Stop()
	if a.cancel != nil {
		a.cancel()
	}
	time.Sleep(100 * time.Millisecond)
}

// Wait blocks until the mount is unmounted by another party (e.g. the
// user running `fusermount -u`).
func (a *App) Wait() {
	if a.server != nil {
		a.server.Wait()
	}
}

func overlaps(mountPoint, downloadRoot string) bool {
	mp := filepath.Clean(mountPoint)
	dr := filepath.Clean(downloadRoot)
	if mp == dr {
		return true
	}
	return strings.HasPrefix(dr+string(filepath.Separator), mp+string(filepath.Separator)) ||
		strings.HasPrefix(mp+string(filepath.Separator), dr+string(filepath.Separator))
}
