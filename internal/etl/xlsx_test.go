package etl

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Igorek95/Test-work-Dzerbun/internal/testutil"
)

func TestXLSXExtractor_Extract(t *testing.T) {
	path := testutil.WriteGoodsXLSX(t, t.TempDir(), "data.xlsx", testutil.SampleGoods)

	sheet, err := NewXLSXExtractor(path).Extract(context.Background())
	require.NoError(t, err)

	assert.Equal(t, testutil.GoodsHeader, sheet.Header)
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, Row{
		"ID_TOVAR": "1",
		"TOVAR":    "Apple",
		"BARCOD":   "111",
		"ID_ISG":   "10",
		"ISG":      "100",
		"COUNTRY":  "Italy",
	}, sheet.Rows[0])
	assert.Equal(t, "France", sheet.Rows[2]["COUNTRY"])
}

func TestXLSXExtractor_ShortAndBlankRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.xlsx")
	testutil.WriteXLSX(t, path, testutil.GoodsHeader, [][]interface{}{
		{1, "Apple", "111"},
		{"", "", "", "", "", ""},
		{2, "Pear", "222", 10, 100, "Italy"},
	})

	sheet, err := NewXLSXExtractor(path).Extract(context.Background())
	require.NoError(t, err)

	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "", sheet.Rows[0]["COUNTRY"])
	assert.Equal(t, "Pear", sheet.Rows[1]["TOVAR"])
}

func TestXLSXExtractor_MissingFile(t *testing.T) {
	_, err := NewXLSXExtractor(filepath.Join(t.TempDir(), "nope.xlsx")).Extract(context.Background())
	assert.Error(t, err)
}

func TestXLSXExtractor_DuplicateHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.xlsx")
	testutil.WriteXLSX(t, path, []string{"ID_TOVAR", "TOVAR", "TOVAR"}, [][]interface{}{{1, "a", "b"}})

	_, err := NewXLSXExtractor(path).Extract(context.Background())
	assert.ErrorContains(t, err, "duplicate header")
}
