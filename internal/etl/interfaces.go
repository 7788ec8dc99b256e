package etl

import (
	"context"

	"github.com/Igorek95/Test-work-Dzerbun/pkg/models"
)

// Row is one data row keyed by header label.
type Row map[string]string

// Sheet is a parsed tabular source: its header labels and data rows.
type Sheet struct {
	Header []string
	Rows   []Row
}

type Extractor interface {
	Extract(ctx context.Context) (*Sheet, error)
}

type ReportLoader interface {
	Load(ctx context.Context, counts []models.CountryCount) error
}
