// Package breakeven computes break-even and profitability metrics for a
// single-product business: contribution margin, break-even volume, margin of
// safety, operating leverage, a constant-growth sales forecast and a
// one-variable profit sensitivity sweep.
//
// Every function in this package is a pure computation over its arguments.
package breakeven

import "fmt"

// Inputs holds the business figures every computation starts from.
type Inputs struct {
	FixedCosts            float64 `json:"fixedCosts"`
	VariableCostPerUnit   float64 `json:"variableCostPerUnit"`
	PricePerUnit          float64 `json:"pricePerUnit"`
	EstimatedMonthlySales float64 `json:"estimatedMonthlySales"`
	AnalysisUnitRange     int     `json:"analysisUnitRange"`
}

// CheckModel reports ErrInvalidModel when the price does not exceed the
// variable cost.
func (in Inputs) CheckModel() error {
	if in.PricePerUnit <= in.VariableCostPerUnit {
		return fmt.Errorf("%w (price %.2f, variable cost %.2f)",
			ErrInvalidModel, in.PricePerUnit, in.VariableCostPerUnit)
	}
	return nil
}

// ContributionMargin is the revenue per unit left after variable cost.
func (in Inputs) ContributionMargin() float64 {
	return in.PricePerUnit - in.VariableCostPerUnit
}

// RangeTooNarrow reports whether the analysis range is smaller than the
// estimated monthly sales.
func RangeTooNarrow(in Inputs) bool {
	return float64(in.AnalysisUnitRange) < in.EstimatedMonthlySales
}
