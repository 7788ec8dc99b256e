package models

// Source header labels as they appear in the spreadsheet.
const (
	SourceProductID   = "ID_TOVAR"
	SourceProductName = "TOVAR"
	SourceBarcode     = "BARCOD"
	SourceGroupID     = "ID_ISG"
	SourceGroupName   = "ISG"
	SourceCountry     = "COUNTRY"
)

// Canonical GOODS column names.
const (
	ColumnID          = "ID_TOVAR"
	ColumnName        = "NAME_TOVAR"
	ColumnBarcode     = "BARCOD"
	ColumnGroupID     = "ID_ISG"
	ColumnGroupName   = "NAME_ISG"
	ColumnCountryName = "NAME_COUNTRY"
)

// FieldConfig maps one source header to a GOODS column.
type FieldConfig struct {
	Source string `json:"source"`
	Column string `json:"column"`
	Type   string `json:"type"`
}

// ColumnMapping is the ordered header rename applied before rows hit GOODS.
type ColumnMapping []FieldConfig

// DefaultMapping is the fixed mapping of the product spreadsheet.
func DefaultMapping() ColumnMapping {
	return ColumnMapping{
		{Source: SourceProductID, Column: ColumnID, Type: "int"},
		{Source: SourceProductName, Column: ColumnName, Type: "string"},
		{Source: SourceBarcode, Column: ColumnBarcode, Type: "string"},
		{Source: SourceGroupID, Column: ColumnGroupID, Type: "int"},
		{Source: SourceGroupName, Column: ColumnGroupName, Type: "string"},
		{Source: SourceCountry, Column: ColumnCountryName, Type: "string"},
	}
}

// Columns returns the canonical column names in mapping order.
func (m ColumnMapping) Columns() []string {
	cols := make([]string, 0, len(m))
	for _, f := range m {
		cols = append(cols, f.Column)
	}
	return cols
}
