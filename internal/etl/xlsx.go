package etl

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXExtractor reads a workbook whose first row is the header.
type XLSXExtractor struct {
	Path string
	// Sheet defaults to the first worksheet.
	Sheet string
}

func NewXLSXExtractor(path string) *XLSXExtractor {
	return &XLSXExtractor{Path: path}
}

func (x *XLSXExtractor) Extract(ctx context.Context) (*Sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(x.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook '%s': %w", x.Path, err)
	}
	defer f.Close()

	sheetName := x.Sheet
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook '%s' has no worksheets", x.Path)
		}
		sheetName = sheets[0]
	}

	raw, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet '%s': %w", sheetName, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("worksheet '%s' has no header row", sheetName)
	}

	header := raw[0]
	seen := make(map[string]bool, len(header))
	for _, label := range header {
		if label == "" {
			continue
		}
		if seen[label] {
			return nil, fmt.Errorf("worksheet '%s' has duplicate header '%s'", sheetName, label)
		}
		seen[label] = true
	}

	sheet := &Sheet{Header: header}
	for _, cells := range raw[1:] {
		if blankRow(cells) {
			continue
		}
		row := make(Row, len(header))
		for i, label := range header {
			if label == "" {
				continue
			}
			if i < len(cells) {
				row[label] = cells[i]
			} else {
				row[label] = ""
			}
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet, nil
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
