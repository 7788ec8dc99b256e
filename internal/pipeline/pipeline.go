// Package pipeline runs one import-and-report pass over the product store.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/Igorek95/Test-work-Dzerbun/internal/etl"
	"github.com/Igorek95/Test-work-Dzerbun/internal/store"
	"github.com/Igorek95/Test-work-Dzerbun/pkg/logger"
	"github.com/Igorek95/Test-work-Dzerbun/pkg/models"
)

type Pipeline struct {
	DBPath     string
	SourcePath string
	Loaders    []etl.ReportLoader
	RunID      string
}

// Summary describes a finished run.
type Summary struct {
	RunID  string
	Import store.ImportResult
	// ImportErr is set when the import failed and the run went on with
	// whatever the store held.
	ImportErr *store.ImportError
	Counts    []models.CountryCount
}

func New(dbPath, sourcePath, runID string, loaders ...etl.ReportLoader) *Pipeline {
	return &Pipeline{
		DBPath:     dbPath,
		SourcePath: sourcePath,
		Loaders:    loaders,
		RunID:      runID,
	}
}

// Run opens the store, ensures the schema, imports the source, aggregates
// per country, hands the result to every loader in order and releases the
// store. A failed import is logged and does not stop the run; every other
// failure does.
func (p *Pipeline) Run(ctx context.Context) (sum Summary, err error) {
	sum.RunID = p.RunID
	logger.Infof("[%s] Starting run. Store: %s, Source: %s", p.RunID, p.DBPath, p.SourcePath)
	startTime := time.Now()

	m, err := store.Open(p.DBPath)
	if err != nil {
		return sum, err
	}
	defer func() {
		if cerr := m.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := m.CreateTables(ctx); err != nil {
		return sum, err
	}

	res, err := m.ImportDataFromXLSX(ctx, p.SourcePath)
	sum.Import = res
	var impErr *store.ImportError
	switch {
	case errors.As(err, &impErr):
		sum.ImportErr = impErr
		logger.Errorf("[%s] Error importing data from %s: %v", p.RunID, p.SourcePath, impErr)
	case err != nil:
		return sum, err
	default:
		logger.Infof("[%s] Imported %d goods, %d countries (%d new), %d groups (%d new)",
			p.RunID, res.Goods, len(res.Countries), res.CountriesAdded, len(res.Groups), res.GroupsAdded)
	}

	stats, err := m.Stats(ctx)
	if err != nil {
		return sum, err
	}
	logger.Infof("[%s] Store holds %d goods, %d countries, %d groups", p.RunID, stats.Goods, stats.Countries, stats.Groups)

	counts, err := m.CountGoodsPerCountry(ctx)
	if err != nil {
		return sum, err
	}
	sum.Counts = counts

	for _, l := range p.Loaders {
		if err := l.Load(ctx, counts); err != nil {
			logger.Errorf("[%s] Report loading failed: %v", p.RunID, err)
			return sum, err
		}
	}

	logger.Infof("[%s] Run finished in %s. %d countries reported.", p.RunID, time.Since(startTime).Round(time.Millisecond), len(counts))
	return sum, nil
}
