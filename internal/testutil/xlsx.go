// Package testutil builds spreadsheet fixtures for tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Igorek95/Test-work-Dzerbun/pkg/models"
)

// GoodsHeader is the header row of a well-formed product spreadsheet.
var GoodsHeader = []string{
	models.SourceProductID,
	models.SourceProductName,
	models.SourceBarcode,
	models.SourceGroupID,
	models.SourceGroupName,
	models.SourceCountry,
}

// SampleGoods is the three-product fixture: two Italian, one French.
var SampleGoods = [][]interface{}{
	{1, "Apple", "111", 10, 100, "Italy"},
	{2, "Pear", "222", 10, 100, "Italy"},
	{3, "Bread", "333", 20, 200, "France"},
}

// WriteXLSX saves header and rows to the first sheet of a new workbook at path.
func WriteXLSX(t testing.TB, path string, header []string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headerCells := make([]interface{}, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerCells); err != nil {
		t.Fatalf("failed to write header: %v", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			t.Fatalf("failed to compute cell name: %v", err)
		}
		row := r
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("failed to write row %d: %v", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
}

// WriteGoodsXLSX writes rows under GoodsHeader into dir/name and returns the path.
func WriteGoodsXLSX(t testing.TB, dir, name string, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(dir, name)
	WriteXLSX(t, path, GoodsHeader, rows)
	return path
}
