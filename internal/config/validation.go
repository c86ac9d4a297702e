package config

import (
	"errors"
	"fmt"

	"github.com/iwvelando/break-even/pkg/breakeven"
	"github.com/iwvelando/break-even/pkg/constants"
	"github.com/iwvelando/break-even/pkg/validation"
	"go.uber.org/multierr"
)

// ErrInvalidConfiguration wraps every hard validation failure.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Validate checks hard constraints on the configured values and returns all
// violations combined. A price at or below the variable cost is not reported
// here; the calculator reports it as breakeven.ErrInvalidModel.
func (c *Configuration) Validate() error {
	var err error

	err = multierr.Append(err, validation.NonNegative("fixedCosts", c.Inputs.FixedCosts))
	err = multierr.Append(err, validation.NonNegative("variableCostPerUnit", c.Inputs.VariableCostPerUnit))
	err = multierr.Append(err, validation.Positive("pricePerUnit", c.Inputs.PricePerUnit))
	err = multierr.Append(err, validation.NonNegative("estimatedMonthlySales", c.Inputs.EstimatedMonthlySales))
	err = multierr.Append(err, validation.IntInRange("analysisUnitRange", c.Inputs.AnalysisUnitRange, 0, constants.MaxAnalysisUnitRange))

	err = multierr.Append(err, validation.IntInRange("forecast.months", c.Forecast.Months,
		constants.MinForecastMonths, constants.MaxForecastMonths))
	err = multierr.Append(err, validation.InRange("forecast.monthlyGrowthPercent", c.Forecast.MonthlyGrowthPercent,
		constants.MinGrowthPercent, constants.MaxGrowthPercent))
	if c.Forecast.StartingSales != nil {
		err = multierr.Append(err, validation.NonNegative("forecast.startingSales", *c.Forecast.StartingSales))
	}

	if c.Sensitivity.Min != nil {
		err = multierr.Append(err, validation.Finite("sensitivity.min", *c.Sensitivity.Min))
	}
	if c.Sensitivity.Max != nil {
		err = multierr.Append(err, validation.Finite("sensitivity.max", *c.Sensitivity.Max))
	}

	if _, dimErr := breakeven.ParseDimension(c.Sensitivity.Dimension); dimErr != nil {
		err = multierr.Append(err, dimErr)
	} else if _, lo, hi, rangeErr := c.SweepRange(); rangeErr != nil {
		err = multierr.Append(err, rangeErr)
	} else if lo > hi {
		err = multierr.Append(err, fmt.Errorf("sensitivity.min (%.2f) must not exceed sensitivity.max (%.2f)", lo, hi))
	}

	if c.Output.Format != "" {
		err = multierr.Append(err, validation.ValidateOutputFormat(c.Output.Format))
	}
	if c.Output.Table != "" {
		err = multierr.Append(err, validation.ValidateTable(c.Output.Table))
	}

	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return nil
}

// ValidateConfiguration performs soft checks on the configuration and
// returns warnings. The configuration is still usable when warnings exist.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	in := c.ToInputs()
	if breakeven.RangeTooNarrow(in) {
		warnings = append(warnings, fmt.Sprintf(
			"analysis range (%d units) is smaller than estimated monthly sales (%.0f units); increase the units range to cover a full month of sales",
			in.AnalysisUnitRange, in.EstimatedMonthlySales))
	}

	m, err := breakeven.Compute(in)
	if err != nil {
		warnings = append(warnings, err.Error())
		return warnings
	}

	if breakeven.BreakEvenBeyondRange(m, in.AnalysisUnitRange) {
		warnings = append(warnings, fmt.Sprintf(
			"break-even point (%.0f units) is beyond the analysis range (%d units); consider increasing price, reducing costs or increasing sales volume",
			m.BreakEvenUnits, in.AnalysisUnitRange))
	}

	if dim, lo, hi, err := c.SweepRange(); err == nil {
		boundLo, boundHi, _ := breakeven.SweepBounds(in, dim)
		if lo < boundLo || hi > boundHi {
			warnings = append(warnings, fmt.Sprintf(
				"sensitivity range for %s [%.2f, %.2f] extends beyond 50%%-150%% of the base value [%.2f, %.2f]",
				dim.Label(), lo, hi, boundLo, boundHi))
		}
	}

	return warnings
}
