package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Igorek95/Test-work-Dzerbun/pkg/models"
)

func TestConvertToInt64(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "1", want: 1},
		{in: " 42 ", want: 42},
		{in: "-7", want: -7},
		{in: "10.0", want: 10},
		{in: "1E+3", want: 1000},
		{in: "1.5", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ConvertToInt64(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertCell(t *testing.T) {
	intField := models.FieldConfig{Source: "ID_ISG", Column: "ID_ISG", Type: "int"}
	strField := models.FieldConfig{Source: "TOVAR", Column: "NAME_TOVAR", Type: "string"}

	v, err := ConvertCell("10", intField)
	require.NoError(t, err)
	assert.Equal(t, int64(10), v)

	v, err = ConvertCell("  ", intField)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ConvertCell("Apple", strField)
	require.NoError(t, err)
	assert.Equal(t, "Apple", v)

	_, err = ConvertCell("x1", intField)
	assert.Error(t, err)
}
