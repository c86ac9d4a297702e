// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/break-even/pkg/constants"
	"github.com/samber/lo"
)

var tables = []string{constants.TableBreakEven, constants.TableForecast, constants.TableSensitivity}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateTable checks if the CSV table selector names a known table.
func ValidateTable(table string) error {
	if !lo.Contains(tables, table) {
		return fmt.Errorf("expected table to be one of %v, got %s", tables, table)
	}
	return nil
}
