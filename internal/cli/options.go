package cli

import (
	"github.com/spf13/cobra"

	"github.com/Igorek95/Test-work-Dzerbun/internal/config"
)

// RunOptions are path overrides; empty values keep the configured paths.
type RunOptions struct {
	DBPath     string
	SourcePath string
	ReportPath string
}

func (o *RunOptions) bindFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.DBPath, "db", "", "Path to the SQLite store (default $GOODS_DB_PATH or "+config.DefaultDBPath+")")
	cmd.Flags().StringVarP(&o.SourcePath, "source", "s", "", "Path to the source spreadsheet (default $GOODS_SOURCE_PATH or "+config.DefaultSourcePath+")")
	cmd.Flags().StringVarP(&o.ReportPath, "report", "r", "", "Path to the report file (default $GOODS_REPORT_PATH or "+config.DefaultReportPath+")")
}

// apply overlays the non-empty options onto cfg and revalidates it.
func (o *RunOptions) apply(cfg *config.Config) error {
	if o.DBPath != "" {
		cfg.DBPath = o.DBPath
	}
	if o.SourcePath != "" {
		cfg.SourcePath = o.SourcePath
	}
	if o.ReportPath != "" {
		cfg.ReportPath = o.ReportPath
	}
	return cfg.Validate()
}
