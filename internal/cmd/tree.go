package cmd

import (
	"os"

	"github.com/philip928lin/pathnav"
	"github.com/philip928lin/pathnav/config"
	"github.com/philip928lin/pathnav/internal/util"
	"github.com/philip928lin/pathnav/tree"
	"github.com/spf13/cobra"
)

// NewTreeCmd creates and returns the tree subcommand, which renders a
// box-drawing tree of a directory.
func NewTreeCmd() *cobra.Command {
	var (
		depth    int
		dirsOnly bool
		hidden   bool
		include  string
		exclude  string
	)

	cmd := &cobra.Command{
		Use:   "tree [PATH]",
		Short: "Render a directory tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			return runTree(path, depth, dirsOnly, hidden, include, exclude)
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "Depth limit; 0 renders all levels")
	cmd.Flags().BoolVar(&dirsOnly, "dirs-only", false, "Only show directories")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "Include hidden entries")
	cmd.Flags().StringVar(&include, "include", "", "Regex; only matching entry names are kept")
	cmd.Flags().StringVar(&exclude, "exclude", "", "Regex; matching entry names are skipped")

	return cmd
}

func runTree(path string, depth int, dirsOnly, hidden bool, include, exclude string) error {
	logger := util.GetLogger("tree")

	nav, err := pathnav.New(path, &config.Override{
		IgnoreHidden:   util.Pointer(!hidden),
		IncludePattern: util.Pointer(include),
		ExcludePattern: util.Pointer(exclude),
		LazyScan:       util.Pointer(true),
	})
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to open directory")
		return err
	}
	return nav.Tree(os.Stdout, tree.TreeOpts{MaxDepth: depth, DirsOnly: dirsOnly})
}
