package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coinfolio-dev/coinfolio/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "coinfolio",
		Short:   "Crypto portfolio CSV import and normalization",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newTemplateCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}
