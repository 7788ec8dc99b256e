package cli

import (
	"github.com/spf13/cobra"
)

// NewStatsCmd prints table sizes and the dimension tables of the store.
func NewStatsCmd() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show row counts and dimension tables of the store",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if db, err := c.Flags().GetString("db"); err == nil {
				opts.DBPath = db
			}
			return runStats(c.Context(), opts, c.OutOrStdout())
		},
	}
	return cmd
}
