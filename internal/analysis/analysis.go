// Package analysis runs the full break-even analysis for a configuration:
// metrics, classifications, recommendations, the cost table, the forecast
// and the sensitivity sweep.
package analysis

import (
	"fmt"

	"github.com/iwvelando/break-even/internal/config"
	"github.com/iwvelando/break-even/pkg/breakeven"
	"go.uber.org/zap"
)

// Report holds every result derived from one configuration.
type Report struct {
	Inputs               breakeven.Inputs            `json:"inputs"`
	Metrics              breakeven.Metrics           `json:"metrics"`
	Safety               breakeven.SafetyStatus      `json:"safety"`
	Leverage             breakeven.LeverageStatus    `json:"leverage"`
	Profit               breakeven.ProfitStatus      `json:"profit"`
	RangeTooNarrow       bool                        `json:"rangeTooNarrow"`
	BreakEvenBeyondRange bool                        `json:"breakEvenBeyondRange"`
	Warnings             []string                    `json:"warnings,omitempty"`
	Insights             []string                    `json:"insights"`
	CostTable            []breakeven.CostPoint       `json:"costTable"`
	ForecastParams       breakeven.ForecastParams    `json:"forecastParams"`
	Forecast             []breakeven.ForecastPoint   `json:"forecast"`
	Sensitivity          breakeven.SensitivitySeries `json:"sensitivity"`
}

// Run validates conf and computes its Report. A price at or below the
// variable cost yields an error wrapping breakeven.ErrInvalidModel.
func Run(logger *zap.Logger, conf config.Configuration) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	in := conf.ToInputs()
	report := &Report{
		Inputs:         in,
		Warnings:       conf.ValidateConfiguration(),
		ForecastParams: conf.ForecastParams(),
	}

	metrics, err := breakeven.Compute(in)
	if err != nil {
		logger.Warn("model rejected",
			zap.String("op", "analysis.Run"),
			zap.Float64("pricePerUnit", in.PricePerUnit),
			zap.Float64("variableCostPerUnit", in.VariableCostPerUnit),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to compute metrics: %w", err)
	}
	report.Metrics = metrics
	report.Safety = breakeven.ClassifySafety(metrics.MarginOfSafetyUnits, in.AnalysisUnitRange)
	report.Leverage = breakeven.ClassifyLeverage(metrics.OperatingLeverage)
	report.Profit = breakeven.ClassifyProfit(metrics.ProfitAtRange, metrics.RevenueAtRange)
	report.RangeTooNarrow = breakeven.RangeTooNarrow(in)
	report.BreakEvenBeyondRange = breakeven.BreakEvenBeyondRange(metrics, in.AnalysisUnitRange)
	report.Insights = Insights(report)

	logger.Debug("metrics computed",
		zap.String("op", "analysis.Run"),
		zap.Float64("breakEvenUnits", metrics.BreakEvenUnits),
		zap.Float64("profitAtRange", metrics.ProfitAtRange),
		zap.String("safety", string(report.Safety)),
		zap.String("leverage", string(report.Leverage)),
	)

	report.CostTable = breakeven.CostTable(in)

	report.Forecast, err = breakeven.Forecast(in, report.ForecastParams)
	if err != nil {
		return nil, fmt.Errorf("failed to compute forecast: %w", err)
	}

	dim, lo, hi, err := conf.SweepRange()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve sensitivity range: %w", err)
	}
	report.Sensitivity, err = breakeven.Sweep(in, dim, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("failed to compute sensitivity: %w", err)
	}

	for _, warning := range report.Warnings {
		logger.Debug("configuration warning",
			zap.String("op", "analysis.Run"),
			zap.String("warning", warning),
		)
	}

	logger.Info("analysis computed",
		zap.String("op", "analysis.Run"),
		zap.Int("forecastMonths", len(report.Forecast)),
		zap.String("sensitivityDimension", string(dim)),
		zap.Int("warnings", len(report.Warnings)),
	)

	return report, nil
}
