package breakeven

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepSalesVolumeSlopeIsContributionMargin(t *testing.T) {
	in := exampleInputs()
	series, err := Sweep(in, DimensionSalesVolume, 160, 240)
	require.NoError(t, err)
	require.Len(t, series.Points, 10)

	assert.Equal(t, "Sales Volume", series.Label)
	assert.Equal(t, 160.0, series.Points[0].Value)
	assert.Equal(t, 240.0, series.Points[9].Value)

	for i := 1; i < len(series.Points); i++ {
		prev, cur := series.Points[i-1], series.Points[i]
		slope := (cur.Profit - prev.Profit) / (cur.Value - prev.Value)
		assert.InDelta(t, in.ContributionMargin(), slope, 1e-9)
	}
}

func TestSweepDimensions(t *testing.T) {
	in := exampleInputs()

	tests := []struct {
		dim   Dimension
		value float64
		want  float64
	}{
		{DimensionPrice, 30, 200*(30-10) - 3000},
		{DimensionVariableCost, 12, 200*(25-12) - 3000},
		{DimensionFixedCosts, 2500, 200*15 - 2500},
		{DimensionSalesVolume, 300, 300*15 - 3000},
	}

	for _, tt := range tests {
		t.Run(string(tt.dim), func(t *testing.T) {
			series, err := Sweep(in, tt.dim, tt.value, tt.value)
			require.NoError(t, err)
			require.Len(t, series.Points, 10)
			for _, p := range series.Points {
				assert.Equal(t, tt.value, p.Value)
				assert.InDelta(t, tt.want, p.Profit, 1e-9)
			}
		})
	}
}

func TestSweepVariableCostMayExceedPrice(t *testing.T) {
	series, err := Sweep(exampleInputs(), DimensionVariableCost, 20, 30)
	require.NoError(t, err)
	last := series.Points[len(series.Points)-1]
	assert.InDelta(t, 200*(25-30)-3000.0, last.Profit, 1e-9)
}

func TestSweepRejections(t *testing.T) {
	_, err := Sweep(Inputs{PricePerUnit: 10, VariableCostPerUnit: 15}, DimensionPrice, 1, 2)
	assert.ErrorIs(t, err, ErrInvalidModel)

	_, err = Sweep(exampleInputs(), DimensionPrice, 30, 20)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Sweep(exampleInputs(), Dimension("margin"), 1, 2)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestSweepRejectsNonFiniteBounds(t *testing.T) {
	bounds := []struct {
		name   string
		lo, hi float64
	}{
		{"infinite high", 20, math.Inf(1)},
		{"infinite low", math.Inf(-1), 30},
		{"both infinite", math.Inf(-1), math.Inf(1)},
		{"nan low", math.NaN(), 30},
		{"nan high", 20, math.NaN()},
	}

	for _, tt := range bounds {
		t.Run(tt.name, func(t *testing.T) {
			series, err := Sweep(exampleInputs(), DimensionPrice, tt.lo, tt.hi)
			assert.ErrorIs(t, err, ErrInvalidParameter)
			assert.Empty(t, series.Points)
		})
	}
}

func TestDefaultSweepRangeAndBounds(t *testing.T) {
	in := exampleInputs()

	lo, hi, err := DefaultSweepRange(in, DimensionPrice)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, lo, 1e-9)
	assert.InDelta(t, 30.0, hi, 1e-9)

	lo, hi, err = SweepBounds(in, DimensionFixedCosts)
	require.NoError(t, err)
	assert.InDelta(t, 1500.0, lo, 1e-9)
	assert.InDelta(t, 4500.0, hi, 1e-9)

	lo, hi, err = DefaultSweepRange(in, DimensionSalesVolume)
	require.NoError(t, err)
	assert.InDelta(t, 160.0, lo, 1e-9)
	assert.InDelta(t, 240.0, hi, 1e-9)
}

func TestParseDimension(t *testing.T) {
	tests := map[string]Dimension{
		"price":                  DimensionPrice,
		"Price per Unit":         DimensionPrice,
		"variable-cost":          DimensionVariableCost,
		"Variable Cost per Unit": DimensionVariableCost,
		"fixed_costs":            DimensionFixedCosts,
		"Fixed Costs":            DimensionFixedCosts,
		" Sales Volume ":         DimensionSalesVolume,
		"sales":                  DimensionSalesVolume,
	}

	for input, expected := range tests {
		got, err := ParseDimension(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, got, input)
	}

	_, err := ParseDimension("margin")
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Contains(t, err.Error(), "expected one of price, variable_cost, fixed_costs, sales_volume")
}
