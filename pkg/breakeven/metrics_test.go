package breakeven

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleInputs() Inputs {
	return Inputs{
		FixedCosts:            3000,
		VariableCostPerUnit:   10,
		PricePerUnit:          25,
		EstimatedMonthlySales: 200,
		AnalysisUnitRange:     500,
	}
}

func TestComputeWorkedExample(t *testing.T) {
	m, err := Compute(exampleInputs())
	require.NoError(t, err)

	assert.InDelta(t, 15.0, m.ContributionMarginPerUnit, 1e-9)
	assert.InDelta(t, 0.6, m.ContributionMarginRatio, 1e-9)
	assert.InDelta(t, 200.0, m.BreakEvenUnits, 1e-9)
	assert.InDelta(t, 5000.0, m.BreakEvenRevenue, 1e-9)
	assert.InDelta(t, 300.0, m.MarginOfSafetyUnits, 1e-9)
	assert.InDelta(t, 7500.0, m.MarginOfSafetyRevenue, 1e-9)
	assert.InDelta(t, 12500.0, m.RevenueAtRange, 1e-9)
	assert.InDelta(t, 8000.0, m.TotalCostsAtRange, 1e-9)
	assert.InDelta(t, 4500.0, m.ProfitAtRange, 1e-9)
	assert.InDelta(t, 0.36, m.OperatingProfitMargin, 1e-9)
	assert.InDelta(t, 9.0, m.OperatingProfitPerUnit, 1e-9)
	assert.InDelta(t, 5000.0, m.EstimatedMonthlyRevenue, 1e-9)

	require.NotNil(t, m.PaybackPeriodMonths)
	assert.InDelta(t, 1.0, *m.PaybackPeriodMonths, 1e-9)

	require.NotNil(t, m.OperatingLeverage)
	assert.InDelta(t, 7500.0/4500.0, *m.OperatingLeverage, 1e-9)
}

func TestComputeInvalidModel(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		variable float64
	}{
		{"price equals variable cost", 10, 10},
		{"price below variable cost", 10, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := exampleInputs()
			in.PricePerUnit = tt.price
			in.VariableCostPerUnit = tt.variable

			_, err := Compute(in)
			assert.ErrorIs(t, err, ErrInvalidModel)
		})
	}
}

func TestComputeProperties(t *testing.T) {
	cases := []Inputs{
		{FixedCosts: 3000, VariableCostPerUnit: 10, PricePerUnit: 25, EstimatedMonthlySales: 200, AnalysisUnitRange: 500},
		{FixedCosts: 0, VariableCostPerUnit: 0, PricePerUnit: 1, EstimatedMonthlySales: 1, AnalysisUnitRange: 0},
		{FixedCosts: 12345.67, VariableCostPerUnit: 3.21, PricePerUnit: 9.99, EstimatedMonthlySales: 75, AnalysisUnitRange: 10000},
		{FixedCosts: 50000, VariableCostPerUnit: 99.5, PricePerUnit: 100, EstimatedMonthlySales: 10, AnalysisUnitRange: 30},
	}

	for _, in := range cases {
		m, err := Compute(in)
		require.NoError(t, err)

		units := float64(in.AnalysisUnitRange)
		assert.InDelta(t, in.FixedCosts, m.BreakEvenUnits*m.ContributionMarginPerUnit, 1e-6)
		assert.InDelta(t, m.ContributionMarginPerUnit*units-in.FixedCosts, m.ProfitAtRange, 1e-6)
		assert.InDelta(t, units-m.BreakEvenUnits, m.MarginOfSafetyUnits, 1e-9)
		assert.InDelta(t, m.MarginOfSafetyUnits*in.PricePerUnit, m.MarginOfSafetyRevenue, 1e-9)
	}
}

func TestComputeZeroRange(t *testing.T) {
	in := exampleInputs()
	in.AnalysisUnitRange = 0

	m, err := Compute(in)
	require.NoError(t, err)

	assert.Equal(t, 0.0, m.OperatingProfitMargin)
	assert.InDelta(t, -3000.0, m.ProfitAtRange, 1e-9)
	assert.Nil(t, m.OperatingLeverage)
}

func TestComputeZeroSalesLeavesPaybackUndefined(t *testing.T) {
	in := exampleInputs()
	in.EstimatedMonthlySales = 0

	m, err := Compute(in)
	require.NoError(t, err)
	assert.Nil(t, m.PaybackPeriodMonths)
}

func TestComputeOperatingLeverageUndefined(t *testing.T) {
	tests := []struct {
		name           string
		fixedCosts     float64
		expectedProfit float64
	}{
		{"profit exactly zero", 7500, 0},
		{"profit negative", 8000, -500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := exampleInputs()
			in.FixedCosts = tt.fixedCosts

			m, err := Compute(in)
			require.NoError(t, err)
			assert.InDelta(t, tt.expectedProfit, m.ProfitAtRange, 1e-9)
			assert.Nil(t, m.OperatingLeverage)
			assert.Equal(t, LeverageNotApplicable, ClassifyLeverage(m.OperatingLeverage))
		})
	}
}

func TestBreakEvenBeyondRange(t *testing.T) {
	m, err := Compute(exampleInputs())
	require.NoError(t, err)
	assert.False(t, BreakEvenBeyondRange(m, 500))
	assert.False(t, BreakEvenBeyondRange(m, 200))
	assert.True(t, BreakEvenBeyondRange(m, 199))
}

func TestRangeTooNarrow(t *testing.T) {
	in := exampleInputs()
	assert.False(t, RangeTooNarrow(in))

	in.AnalysisUnitRange = 150
	assert.True(t, RangeTooNarrow(in))

	in.AnalysisUnitRange = 200
	assert.False(t, RangeTooNarrow(in))
}
