package cmd

import (
	"os"

	"github.com/philip928lin/pathnav"
	"github.com/philip928lin/pathnav/config"
	"github.com/philip928lin/pathnav/internal/util"
	"github.com/spf13/cobra"
)

// NewLsCmd creates and returns the ls subcommand, which lists the direct
// contents of one directory through a scanned folder node.
func NewLsCmd() *cobra.Command {
	var hidden bool

	cmd := &cobra.Command{
		Use:   "ls [PATH]",
		Short: "List the contents of one directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			return runLs(path, hidden)
		},
	}

	cmd.Flags().BoolVar(&hidden, "hidden", false, "Include hidden entries")

	return cmd
}

func runLs(path string, hidden bool) error {
	logger := util.GetLogger("ls")

	nav, err := pathnav.New(path, &config.Override{
		IgnoreHidden: util.Pointer(!hidden),
		Recursive:    util.Pointer(false),
		LazyScan:     util.Pointer(true),
	})
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to open directory")
		return err
	}
	return nav.Ls(os.Stdout)
}
