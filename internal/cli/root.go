// Package cli handles the command-line interface using cobra.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the root command. Run without arguments it performs
// one import-and-report pass using the configured paths.
func NewRootCmd() *cobra.Command {
	opts := &RunOptions{}

	rootCmd := &cobra.Command{
		Use:   "goodsreport",
		Short: "Import a product spreadsheet and report goods per country",
		Long: `goodsreport loads a product spreadsheet into a local SQLite store,
derives the country and product group tables and writes the number of
goods per country as "<country> - <count>" lines.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd.Context(), opts)
		},
	}

	opts.bindFlags(rootCmd)
	rootCmd.AddCommand(NewStatsCmd())

	return rootCmd
}
