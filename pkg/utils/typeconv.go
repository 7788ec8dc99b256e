package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Igorek95/Test-work-Dzerbun/pkg/models"
)

// ConvertCell converts a raw spreadsheet cell according to the field type.
// Blank int cells convert to nil.
func ConvertCell(val string, cfg models.FieldConfig) (interface{}, error) {
	switch cfg.Type {
	case "int":
		if strings.TrimSpace(val) == "" {
			return nil, nil
		}
		return ConvertToInt64(val)
	default:
		return val, nil
	}
}

// ConvertToInt64 parses an integer cell. Spreadsheet numbers may come back
// formatted as floats ("10.0", "1E+3"); those are accepted when integral.
func ConvertToInt64(val string) (int64, error) {
	s := strings.TrimSpace(val)
	if s == "" {
		return 0, fmt.Errorf("empty value is not an integer")
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %q to int", val)
	}
	if f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("cannot convert %q to int: not a whole number", val)
	}
	return int64(f), nil
}
