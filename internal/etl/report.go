package etl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Igorek95/Test-work-Dzerbun/pkg/logger"
	"github.com/Igorek95/Test-work-Dzerbun/pkg/models"
)

// TextReportLoader writes one "<country> - <count>" line per pair,
// creating or truncating the file at Path.
type TextReportLoader struct {
	Path string
}

func NewTextReportLoader(path string) *TextReportLoader {
	return &TextReportLoader{Path: path}
}

func (l *TextReportLoader) Load(ctx context.Context, counts []models.CountryCount) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(l.Path)
	if err != nil {
		return fmt.Errorf("failed to create report '%s': %w", l.Path, err)
	}

	if err := WriteReport(f, counts); err != nil {
		f.Close()
		return fmt.Errorf("failed to write report '%s': %w", l.Path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close report '%s': %w", l.Path, err)
	}

	logger.Infof("Report written to %s (%d lines)", l.Path, len(counts))
	return nil
}

// WriteReport serializes counts in the given order.
func WriteReport(w io.Writer, counts []models.CountryCount) error {
	bw := bufio.NewWriter(w)
	for _, c := range counts {
		if _, err := fmt.Fprintf(bw, "%s - %d\n", c.Country, c.Count); err != nil {
			return err
		}
	}
	return bw.Flush()
}
