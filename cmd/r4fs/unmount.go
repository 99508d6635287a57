package main

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/radio4000/r4fs/internal/config"
)

var unmountCmd = &cobra.Command{
	Use:   "unmount",
	Short: "Unmount the filesystem; the mounted process then stops its downloads",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configDir())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		mountPoint := cfg.MountPoint()
		if err := fusermountUnmount(mountPoint); err != nil {
			return fmt.Errorf("unmount %s: %w", mountPoint, err)
		}
		fmt.Println("unmounted", mountPoint)
		return nil
	},
}

// fusermountUnmount shells out to fusermount (falling back to umount
// on platforms without it), the same external-unmount path the
// teacher's own e2e test relies on `fs.Mount`'s server.Unmount to
// replicate in-process.
func fusermountUnmount(mountPoint string) error {
	if path, err := exec.LookPath("fusermount"); err == nil {
		return exec.Command(path, "-u", mountPoint).Run()
	}
	return exec.Command("umount", mountPoint).Run()
}
