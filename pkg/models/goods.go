package models

// Good is one imported product row. Country and group are kept as the
// source text; the COUNTRY and ISG tables are not referenced by id.
type Good struct {
	ID          int64
	Name        string
	Barcode     string
	GroupID     *int64
	GroupName   string
	CountryName string
}

// Country is a row of the COUNTRY dimension table.
type Country struct {
	ID   int64
	Name string
}

// ProductGroup is a row of the ISG dimension table.
type ProductGroup struct {
	ID   int64
	Name string
}

// CountryCount is one line of the per-country report.
type CountryCount struct {
	Country string
	Count   int64
}
