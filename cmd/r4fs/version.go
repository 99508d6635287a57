package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags; "dev" otherwise.
var version = "dev"

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the r4fs version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("r4fs", version)
		return nil
	},
}
