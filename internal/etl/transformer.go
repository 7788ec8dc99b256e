package etl

import (
	"fmt"

	"github.com/Igorek95/Test-work-Dzerbun/pkg/models"
	"github.com/Igorek95/Test-work-Dzerbun/pkg/utils"
)

type Transformer struct {
	Mapping   models.ColumnMapping
	validator *Validator
}

func NewTransformer(mapping models.ColumnMapping) *Transformer {
	return &Transformer{Mapping: mapping, validator: NewValidator(mapping)}
}

// Rename maps source header labels to GOODS column names. Columns that are
// not part of the mapping are dropped.
func (t *Transformer) Rename(sheet *Sheet) ([]Row, error) {
	if err := t.validator.ValidateHeader(sheet.Header); err != nil {
		return nil, err
	}

	out := make([]Row, 0, len(sheet.Rows))
	for _, r := range sheet.Rows {
		renamed := make(Row, len(t.Mapping))
		for _, f := range t.Mapping {
			renamed[f.Column] = r[f.Source]
		}
		out = append(out, renamed)
	}
	return out, nil
}

// TransformToGoods renames and converts every row of the sheet.
func (t *Transformer) TransformToGoods(sheet *Sheet) ([]models.Good, error) {
	rows, err := t.Rename(sheet)
	if err != nil {
		return nil, err
	}

	goods := make([]models.Good, 0, len(rows))
	for i, r := range rows {
		g, err := t.toGood(r)
		if err != nil {
			// +2: one for the header, one for 1-based numbering
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		goods = append(goods, g)
	}
	return goods, nil
}

func (t *Transformer) toGood(r Row) (models.Good, error) {
	var g models.Good
	for _, f := range t.Mapping {
		val, err := utils.ConvertCell(r[f.Column], f)
		if err != nil {
			return g, fmt.Errorf("field %s: %w", f.Source, err)
		}

		switch f.Column {
		case models.ColumnID:
			if val == nil {
				return g, fmt.Errorf("field %s: product id is required", f.Source)
			}
			g.ID = val.(int64)
		case models.ColumnName:
			g.Name = val.(string)
		case models.ColumnBarcode:
			g.Barcode = val.(string)
		case models.ColumnGroupID:
			if val != nil {
				id := val.(int64)
				g.GroupID = &id
			}
		case models.ColumnGroupName:
			g.GroupName = val.(string)
		case models.ColumnCountryName:
			g.CountryName = val.(string)
		}
	}
	return g, nil
}
