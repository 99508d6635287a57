// Package main wires the radio4000fs CLI, following the pack's own
// cobra root-command shape (Zzhihon-Bt1QFM/cmd/root.go): a root
// command plus mount/unmount/status/version subcommands (spec §6).
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logger = slog.Default()

var rootCmd = &cobra.Command{
	Use:   "r4fs",
	Short: "radio4000fs projects a radio4000 catalog as a read-only filesystem",
}

// Execute runs the root command; the CLI surface's exit codes (0
// success, 1 failure) are spec §6's contract.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
