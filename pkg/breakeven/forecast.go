package breakeven

import (
	"fmt"
	"math"

	"github.com/iwvelando/break-even/pkg/constants"
	"github.com/iwvelando/break-even/pkg/mathutil"
)

// ForecastParams describes a constant-growth sales projection.
type ForecastParams struct {
	StartingSales        float64 `json:"startingSales"`
	MonthlyGrowthPercent float64 `json:"monthlyGrowthPercent"`
	Months               int     `json:"months"`
}

// ForecastPoint is one month of a projection.
type ForecastPoint struct {
	Month  int     `json:"month"`
	Sales  float64 `json:"sales"`
	Profit float64 `json:"profit"`
}

// Validate checks the projection arguments.
func (p ForecastParams) Validate() error {
	if p.Months < constants.MinForecastMonths || p.Months > constants.MaxForecastMonths {
		return fmt.Errorf("%w: forecast months must be between %d and %d, got %d",
			ErrInvalidParameter, constants.MinForecastMonths, constants.MaxForecastMonths, p.Months)
	}
	if p.MonthlyGrowthPercent < constants.MinGrowthPercent || p.MonthlyGrowthPercent > constants.MaxGrowthPercent {
		return fmt.Errorf("%w: monthly growth must be between %.0f%% and %.0f%%, got %.2f%%",
			ErrInvalidParameter, constants.MinGrowthPercent, constants.MaxGrowthPercent, p.MonthlyGrowthPercent)
	}
	if p.StartingSales < 0 || math.IsNaN(p.StartingSales) {
		return fmt.Errorf("%w: starting sales cannot be negative, got %.2f", ErrInvalidParameter, p.StartingSales)
	}
	return nil
}

// Forecast projects sales and profit for months 1..p.Months. Month m sells
// StartingSales * (1 + growth/100)^(m-1) units; profit uses the contribution
// margin and fixed costs of in.
func Forecast(in Inputs, p ForecastParams) ([]ForecastPoint, error) {
	if err := in.CheckModel(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	cm := in.ContributionMargin()
	factor := 1 + mathutil.ApplyPercentage(1, p.MonthlyGrowthPercent)

	points := make([]ForecastPoint, p.Months)
	for i := range points {
		sales := p.StartingSales * math.Pow(factor, float64(i))
		points[i] = ForecastPoint{
			Month:  i + 1,
			Sales:  sales,
			Profit: cm*sales - in.FixedCosts,
		}
	}
	return points, nil
}
