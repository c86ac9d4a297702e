// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/break-even/internal/config"
	"github.com/iwvelando/break-even/pkg/breakeven"
)

// ExampleYAML is a complete configuration using the worked example figures:
// fixed costs 3000, variable cost 10, price 25, range 500.
const ExampleYAML = `inputs:
  fixedCosts: 3000
  variableCostPerUnit: 10
  pricePerUnit: 25
  estimatedMonthlySales: 200
  analysisUnitRange: 500
forecast:
  months: 12
  monthlyGrowthPercent: 5
sensitivity:
  dimension: sales_volume
output:
  format: pretty
  table: breakeven
`

// ExampleConfiguration returns the configuration described by ExampleYAML.
func ExampleConfiguration() config.Configuration {
	return config.Configuration{
		Inputs: config.Inputs{
			FixedCosts:            3000,
			VariableCostPerUnit:   10,
			PricePerUnit:          25,
			EstimatedMonthlySales: 200,
			AnalysisUnitRange:     500,
		},
		Forecast:    config.ForecastConfig{Months: 12, MonthlyGrowthPercent: 5},
		Sensitivity: config.SensitivityConfig{Dimension: string(breakeven.DimensionSalesVolume)},
		Output:      config.OutputConfig{Format: "pretty", Table: "breakeven"},
	}
}

// FindMonth returns the forecast point for month, or nil.
func FindMonth(points []breakeven.ForecastPoint, month int) *breakeven.ForecastPoint {
	for i := range points {
		if points[i].Month == month {
			return &points[i]
		}
	}
	return nil
}
