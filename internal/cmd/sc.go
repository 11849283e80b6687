package cmd

import (
	"os"

	"github.com/philip928lin/pathnav/internal/util"
	"github.com/philip928lin/pathnav/shortcut"
	"github.com/spf13/cobra"
)

// NewScCmd creates and returns the sc subcommand group for inspecting and
// updating a persisted shortcuts file (JSON or YAML, by extension).
func NewScCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "sc",
		Short: "Inspect or update a shortcuts file",
	}
	cmd.PersistentFlags().StringVarP(&file, "file", "f", "shortcuts.json",
		"Shortcuts file (.json, .yaml, or .yml)")

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List all shortcuts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(file)
			if err != nil {
				return err
			}
			reg.Ls(os.Stdout)
			return nil
		},
	}

	addCmd := &cobra.Command{
		Use:   "add NAME PATH",
		Short: "Add or overwrite a shortcut",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(file)
			if err != nil {
				return err
			}
			reg.Add(args[0], args[1])
			return reg.Save(file)
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm NAME",
		Short: "Remove a shortcut",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(file)
			if err != nil {
				return err
			}
			if err := reg.Remove(args[0]); err != nil {
				return err
			}
			return reg.Save(file)
		},
	}

	cmd.AddCommand(lsCmd)
	cmd.AddCommand(addCmd)
	cmd.AddCommand(rmCmd)

	return cmd
}

// loadRegistry reads the shortcuts file when it exists; a missing file is
// an empty registry, not an error.
func loadRegistry(file string) (*shortcut.Registry, error) {
	logger := util.GetLogger("sc")

	reg := shortcut.NewRegistry()
	if _, err := os.Stat(file); os.IsNotExist(err) {
		logger.Debug().Str("file", file).Msg("No shortcuts file yet")
		return reg, nil
	}
	if err := reg.Load(file); err != nil {
		logger.Error().Err(err).Str("file", file).Msg("Failed to load shortcuts file")
		return nil, err
	}
	return reg, nil
}
