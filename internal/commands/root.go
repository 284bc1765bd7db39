package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salesplot-dev/salesplot/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "salesplot",
		Short:   "Aggregate sales CSVs and render them as charts",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}
