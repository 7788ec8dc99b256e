package etl

import (
	"fmt"
	"strings"

	"github.com/Igorek95/Test-work-Dzerbun/pkg/models"
)

// MissingColumnsError lists expected source headers absent from a sheet.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing expected column(s): %s", strings.Join(e.Columns, ", "))
}

type Validator struct {
	Mapping models.ColumnMapping
}

func NewValidator(mapping models.ColumnMapping) *Validator {
	return &Validator{Mapping: mapping}
}

// ValidateHeader checks that every mapped source label is present.
// Labels are matched exactly, case included.
func (v *Validator) ValidateHeader(header []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	var missing []string
	for _, f := range v.Mapping {
		if !present[f.Source] {
			missing = append(missing, f.Source)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Columns: missing}
	}
	return nil
}
