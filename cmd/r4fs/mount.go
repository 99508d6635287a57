package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/radio4000/r4fs/internal/app"
	"github.com/radio4000/r4fs/internal/config"
)

func init() {
	rootCmd.AddCommand(mountCmd)
	rootCmd.AddCommand(unmountCmd)
}

var mountCmd = &cobra.Command{
	Use:   "mount",
	Short: "Initialize configuration, connect the catalog, and mount the filesystem",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configDir())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		a, err := app.New(cfg, logger)
		if err != nil {
			return fmt.Errorf("initialize app: %w", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := a.Mount(ctx); err != nil {
			return fmt.Errorf("mount: %w", err)
		}

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigCh
			logger.Info("r4fs: received shutdown signal")
			_ = a.Unmount()
		}()

		a.Wait()
		a.StopDownloads()
		return nil
	},
}

// configDir resolves the directory settings.json, favorites.txt, and
// downloads.txt live in. Unlike paths.mountPoint/paths.downloadDir
// (overridable via R4_MOUNT_POINT/R4_DOWNLOAD_DIR), spec §6 names no
// environment override for this directory itself.
func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "r4fs")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".r4fs")
}
