package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/Igorek95/Test-work-Dzerbun/internal/config"
	"github.com/Igorek95/Test-work-Dzerbun/internal/etl"
	"github.com/Igorek95/Test-work-Dzerbun/internal/pipeline"
	"github.com/Igorek95/Test-work-Dzerbun/internal/store"
	"github.com/Igorek95/Test-work-Dzerbun/pkg/database"
	"github.com/Igorek95/Test-work-Dzerbun/pkg/logger"
)

func loadConfig(opts *RunOptions) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := opts.apply(cfg); err != nil {
		return nil, err
	}

	if cfg.LogFile != "" {
		if err := logger.InitLogger(cfg.LogFile); err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
	}
	return cfg, nil
}

func runPipeline(ctx context.Context, opts *RunOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	defer logger.Close()

	runID := uuid.NewString()
	loaders := []etl.ReportLoader{etl.NewTextReportLoader(cfg.ReportPath)}

	if cfg.MongoConnString != "" {
		client, err := database.ConnectMongo(cfg.MongoConnString)
		if err != nil {
			return err
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(dctx)
		}()
		loaders = append(loaders, etl.NewMongoReportLoader(client, cfg.MongoDatabase, runID))
	}

	_, err = pipeline.New(cfg.DBPath, cfg.SourcePath, runID, loaders...).Run(ctx)
	return err
}

func runStats(ctx context.Context, opts *RunOptions, out io.Writer) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	defer logger.Close()

	m, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := m.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := m.CreateTables(ctx); err != nil {
		return err
	}

	stats, err := m.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "GOODS: %d\nCOUNTRY: %d\nISG: %d\n", stats.Goods, stats.Countries, stats.Groups)

	countries, err := m.Countries(ctx)
	if err != nil {
		return err
	}
	for _, c := range countries {
		fmt.Fprintf(out, "country %d: %s\n", c.ID, c.Name)
	}

	groups, err := m.ProductGroups(ctx)
	if err != nil {
		return err
	}
	for _, g := range groups {
		fmt.Fprintf(out, "group %d: %s\n", g.ID, g.Name)
	}
	return nil
}
