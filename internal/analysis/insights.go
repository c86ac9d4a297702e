package analysis

import (
	"fmt"

	"github.com/iwvelando/break-even/pkg/breakeven"
)

var safetyMessages = map[breakeven.SafetyStatus]string{
	breakeven.SafetyNegative: "Your units range is below break-even, meaning the business is operating at a loss.",
	breakeven.SafetyLow:      "Margin of safety is low: sales can easily fall below break-even.",
	breakeven.SafetyHealthy:  "Margin of safety is healthy. You have a buffer before losses occur.",
}

var leverageMessages = map[breakeven.LeverageStatus]string{
	breakeven.LeverageNotApplicable: "Operating leverage not calculated because profit is zero or negative.",
	breakeven.LeverageHigh:          "Operating leverage is high: profits are sensitive to changes in quantity.",
	breakeven.LeverageModerate:      "Operating leverage is moderate.",
	breakeven.LeverageLow:           "Operating leverage is low: profits are relatively stable.",
}

var profitMessages = map[breakeven.ProfitStatus]string{
	breakeven.ProfitLoss:    "You're not making a profit at your maximum sales volume. Reassess your pricing or cost structure.",
	breakeven.ProfitThin:    "You're making a small profit (less than 20% of revenue). Consider increasing price or reducing costs.",
	breakeven.ProfitHealthy: "You're making a healthy profit at your current sales volume.",
}

// SafetyMessage describes a margin-of-safety status.
func SafetyMessage(status breakeven.SafetyStatus) string {
	return safetyMessages[status]
}

// LeverageMessage describes an operating-leverage status.
func LeverageMessage(status breakeven.LeverageStatus) string {
	return leverageMessages[status]
}

// ProfitMessage describes a profit status.
func ProfitMessage(status breakeven.ProfitStatus) string {
	return profitMessages[status]
}

// Insights returns the recommendations for a computed report, in the order
// break-even, profit, margin of safety, operating leverage.
func Insights(r *Report) []string {
	var insights []string

	if r.BreakEvenBeyondRange {
		insights = append(insights, fmt.Sprintf(
			"Break-even point (%.0f units) is beyond your analysis range (%d units). Consider lowering fixed or variable costs, or increasing price.",
			r.Metrics.BreakEvenUnits, r.Inputs.AnalysisUnitRange))
	} else {
		insights = append(insights, fmt.Sprintf(
			"You will break even after selling approximately %.0f units. Sales beyond this will generate profit.",
			r.Metrics.BreakEvenUnits))
	}

	insights = append(insights, ProfitMessage(r.Profit))
	insights = append(insights, SafetyMessage(r.Safety))
	insights = append(insights, LeverageMessage(r.Leverage))

	return insights
}
