package etl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Igorek95/Test-work-Dzerbun/pkg/models"
)

func sampleSheet(rows ...Row) *Sheet {
	return &Sheet{
		Header: []string{"ID_TOVAR", "TOVAR", "BARCOD", "ID_ISG", "ISG", "COUNTRY", "EXTRA"},
		Rows:   rows,
	}
}

func TestTransformer_Rename(t *testing.T) {
	tr := NewTransformer(models.DefaultMapping())
	sheet := sampleSheet(Row{
		"ID_TOVAR": "1", "TOVAR": "Apple", "BARCOD": "111",
		"ID_ISG": "10", "ISG": "Fruit", "COUNTRY": "Italy", "EXTRA": "x",
	})

	rows, err := tr.Rename(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, Row{
		"ID_TOVAR":     "1",
		"NAME_TOVAR":   "Apple",
		"BARCOD":       "111",
		"ID_ISG":       "10",
		"NAME_ISG":     "Fruit",
		"NAME_COUNTRY": "Italy",
	}, rows[0])
}

func TestTransformer_MissingColumn(t *testing.T) {
	tr := NewTransformer(models.DefaultMapping())
	sheet := &Sheet{Header: []string{"ID_TOVAR", "TOVAR", "BARCOD", "ID_ISG", "isg"}}

	_, err := tr.Rename(sheet)
	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"ISG", "COUNTRY"}, missing.Columns)
}

func TestTransformer_TransformToGoods(t *testing.T) {
	tr := NewTransformer(models.DefaultMapping())
	sheet := sampleSheet(
		Row{"ID_TOVAR": "1", "TOVAR": "Apple", "BARCOD": "0111", "ID_ISG": "10", "ISG": "Fruit", "COUNTRY": "Italy"},
		Row{"ID_TOVAR": "2", "TOVAR": "Bread", "BARCOD": "222", "ID_ISG": "", "ISG": "", "COUNTRY": "France"},
	)

	goods, err := tr.TransformToGoods(sheet)
	require.NoError(t, err)
	require.Len(t, goods, 2)

	assert.Equal(t, int64(1), goods[0].ID)
	assert.Equal(t, "0111", goods[0].Barcode)
	require.NotNil(t, goods[0].GroupID)
	assert.Equal(t, int64(10), *goods[0].GroupID)
	assert.Equal(t, "Italy", goods[0].CountryName)

	assert.Nil(t, goods[1].GroupID)
	assert.Equal(t, "France", goods[1].CountryName)
}

func TestTransformer_BadID(t *testing.T) {
	tr := NewTransformer(models.DefaultMapping())

	_, err := tr.TransformToGoods(sampleSheet(
		Row{"ID_TOVAR": "1", "COUNTRY": "Italy"},
		Row{"ID_TOVAR": "two", "COUNTRY": "Italy"},
	))
	assert.ErrorContains(t, err, "row 3")

	_, err = tr.TransformToGoods(sampleSheet(Row{"ID_TOVAR": " ", "COUNTRY": "Italy"}))
	assert.ErrorContains(t, err, "product id is required")
}
