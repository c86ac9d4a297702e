package breakeven

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/break-even/pkg/constants"
	"github.com/iwvelando/break-even/pkg/mathutil"
)

// Dimension names the input varied by a sensitivity sweep.
type Dimension string

const (
	DimensionPrice        Dimension = "price"
	DimensionVariableCost Dimension = "variable_cost"
	DimensionFixedCosts   Dimension = "fixed_costs"
	DimensionSalesVolume  Dimension = "sales_volume"
)

// Dimensions lists every sweepable input in display order.
var Dimensions = []Dimension{
	DimensionPrice,
	DimensionVariableCost,
	DimensionFixedCosts,
	DimensionSalesVolume,
}

var dimensionLabels = map[Dimension]string{
	DimensionPrice:        "Price per Unit",
	DimensionVariableCost: "Variable Cost per Unit",
	DimensionFixedCosts:   "Fixed Costs",
	DimensionSalesVolume:  "Sales Volume",
}

// Label is the human-readable name of the dimension.
func (d Dimension) Label() string {
	if label, ok := dimensionLabels[d]; ok {
		return label
	}
	return string(d)
}

// ParseDimension accepts a canonical name ("variable_cost"), a hyphenated or
// spaced variant, or a display label ("Variable Cost per Unit").
func ParseDimension(value string) (Dimension, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	switch normalized {
	case "price", "price_per_unit":
		return DimensionPrice, nil
	case "variable_cost", "variable_cost_per_unit", "variablecost":
		return DimensionVariableCost, nil
	case "fixed_costs", "fixed_cost", "fixedcosts":
		return DimensionFixedCosts, nil
	case "sales_volume", "sales", "salesvolume":
		return DimensionSalesVolume, nil
	}
	names := make([]string, len(Dimensions))
	for i, d := range Dimensions {
		names[i] = string(d)
	}
	return "", fmt.Errorf("%w: unknown sensitivity dimension %q, expected one of %s",
		ErrInvalidParameter, value, strings.Join(names, ", "))
}

// SensitivityPoint is a swept value and the profit it produces.
type SensitivityPoint struct {
	Value  float64 `json:"value"`
	Profit float64 `json:"profit"`
}

// SensitivitySeries is the result of sweeping one dimension.
type SensitivitySeries struct {
	Dimension Dimension          `json:"dimension"`
	Label     string             `json:"label"`
	Points    []SensitivityPoint `json:"points"`
}

// BaseValue returns the current value of dimension d in in.
func BaseValue(in Inputs, d Dimension) (float64, error) {
	switch d {
	case DimensionPrice:
		return in.PricePerUnit, nil
	case DimensionVariableCost:
		return in.VariableCostPerUnit, nil
	case DimensionFixedCosts:
		return in.FixedCosts, nil
	case DimensionSalesVolume:
		return in.EstimatedMonthlySales, nil
	}
	return 0, fmt.Errorf("%w: unknown sensitivity dimension %q", ErrInvalidParameter, string(d))
}

// DefaultSweepRange returns 80%..120% of the base value of d.
func DefaultSweepRange(in Inputs, d Dimension) (lo, hi float64, err error) {
	base, err := BaseValue(in, d)
	if err != nil {
		return 0, 0, err
	}
	return constants.SweepDefaultLow * base, constants.SweepDefaultHigh * base, nil
}

// SweepBounds returns the widest range offered for d: 50%..150% of its base.
func SweepBounds(in Inputs, d Dimension) (lo, hi float64, err error) {
	base, err := BaseValue(in, d)
	if err != nil {
		return 0, 0, err
	}
	return constants.SweepBoundLow * base, constants.SweepBoundHigh * base, nil
}

// Sweep evaluates profit = sales*cm - fixedCosts at SensitivityPoints values
// spaced evenly from lo to hi, substituting each into dimension d and holding
// every other input at its value in in. Sales is the estimated monthly sales.
func Sweep(in Inputs, d Dimension, lo, hi float64) (SensitivitySeries, error) {
	if err := in.CheckModel(); err != nil {
		return SensitivitySeries{}, err
	}
	if _, err := BaseValue(in, d); err != nil {
		return SensitivitySeries{}, err
	}
	if !isFinite(lo) || !isFinite(hi) || lo > hi {
		return SensitivitySeries{}, fmt.Errorf("%w: sweep range [%v, %v] is invalid", ErrInvalidParameter, lo, hi)
	}

	values := mathutil.Linspace(lo, hi, constants.SensitivityPoints)
	series := SensitivitySeries{
		Dimension: d,
		Label:     d.Label(),
		Points:    make([]SensitivityPoint, len(values)),
	}
	for i, v := range values {
		series.Points[i] = SensitivityPoint{Value: v, Profit: profitWith(in, d, v)}
	}
	return series, nil
}

func profitWith(in Inputs, d Dimension, v float64) float64 {
	price, variable, fixed, sales := in.PricePerUnit, in.VariableCostPerUnit, in.FixedCosts, in.EstimatedMonthlySales
	switch d {
	case DimensionPrice:
		price = v
	case DimensionVariableCost:
		variable = v
	case DimensionFixedCosts:
		fixed = v
	case DimensionSalesVolume:
		sales = v
	}
	return sales*(price-variable) - fixed
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
