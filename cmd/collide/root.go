package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "collide",
	Short: "collide - exercise the collision-BSP core against a scene file",
	Long: `collide loads a scene.yaml fixture, compiles it to a BSP, and runs
locate/segment/classify queries against it for manual inspection.`,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
