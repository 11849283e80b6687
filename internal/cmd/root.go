package cmd

import (
	"github.com/philip928lin/pathnav/internal/util"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the pathnav CLI.
func NewRootCmd() *cobra.Command {
	var verbose int

	rootCmd := &cobra.Command{
		Use:   "pathnav",
		Short: "pathnav - navigate directory trees and manage path shortcuts",
		Long: `pathnav mirrors a directory tree in memory and lets you inspect it or
manage named shortcuts to frequently used paths.

Use subcommands to perform different operations:
  - tree: Render a directory tree
  - ls:   List the contents of one directory
  - sc:   Inspect or update a shortcuts file`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose < 1 {
				verbose = 1
			}
			if verbose > 5 {
				verbose = 5
			}
			logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
			util.InitializeLogger(logLvls[verbose-1])
		},
	}

	rootCmd.PersistentFlags().IntVarP(&verbose, "verbose", "v", 1,
		"Log verbosity level between 1 (error) and 5 (trace)")

	rootCmd.AddCommand(NewTreeCmd())
	rootCmd.AddCommand(NewLsCmd())
	rootCmd.AddCommand(NewScCmd())

	return rootCmd
}
