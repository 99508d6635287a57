package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/radio4000/r4fs/internal/config"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report mount state, mount point, and download root",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configDir())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		mountPoint := cfg.MountPoint()
		mounted, err := isMounted(mountPoint)
		if err != nil {
			fmt.Printf("mounted:       unknown (%v)\n", err)
		} else {
			fmt.Printf("mounted:       %t\n", mounted)
		}
		fmt.Printf("mount point:   %s\n", mountPoint)
		fmt.Printf("download root: %s\n", cfg.DownloadDir())
		fmt.Printf("favorites:     %d channel(s)\n", len(cfg.Favorites()))
		fmt.Printf("downloads:     %d channel(s)\n", len(cfg.Downloads()))
		return nil
	},
}

// isMounted reports whether mountPoint is currently a mounted
// filesystem, by scanning /proc/mounts the same way a `status`
// subcommand running as a separate process from the one that called
// `mount` has to: there is no pidfile or IPC between the two, so
// /proc/mounts is the only live source of truth either can consult.
func isMounted(mountPoint string) (bool, error) {
	f, err := os.Open("/proc/mounts")
	if err != nil {
		return false, err
	}
	defer f.Close()

	want := filepath.Clean(mountPoint)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		if filepath.Clean(fields[1]) == want {
			return true, nil
		}
	}
	return false, scanner.Err()
}
