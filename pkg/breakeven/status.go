package breakeven

import "github.com/iwvelando/break-even/pkg/constants"

// SafetyStatus classifies the margin of safety.
type SafetyStatus string

const (
	SafetyNegative SafetyStatus = "negative"
	SafetyLow      SafetyStatus = "low"
	SafetyHealthy  SafetyStatus = "healthy"
)

// LeverageStatus classifies the degree of operating leverage.
type LeverageStatus string

const (
	LeverageNotApplicable LeverageStatus = "not_applicable"
	LeverageLow           LeverageStatus = "low"
	LeverageModerate      LeverageStatus = "moderate"
	LeverageHigh          LeverageStatus = "high"
)

// ProfitStatus classifies profit relative to revenue at the analysis range.
type ProfitStatus string

const (
	ProfitLoss    ProfitStatus = "loss"
	ProfitThin    ProfitStatus = "thin"
	ProfitHealthy ProfitStatus = "healthy"
)

// ClassifySafety returns negative below zero, low under 10% of the range
// and healthy otherwise.
func ClassifySafety(marginOfSafetyUnits float64, rangeUnits int) SafetyStatus {
	switch {
	case marginOfSafetyUnits < 0:
		return SafetyNegative
	case marginOfSafetyUnits < constants.SafetyLowFraction*float64(rangeUnits):
		return SafetyLow
	default:
		return SafetyHealthy
	}
}

// ClassifyLeverage maps a degree of operating leverage to its band. A nil
// value means leverage is undefined because profit is not positive.
func ClassifyLeverage(dol *float64) LeverageStatus {
	if dol == nil {
		return LeverageNotApplicable
	}
	switch {
	case *dol > constants.LeverageHighThreshold:
		return LeverageHigh
	case *dol > constants.LeverageModerateThreshold:
		return LeverageModerate
	default:
		return LeverageLow
	}
}

// ClassifyProfit returns loss for non-positive profit, thin when profit is
// under 20% of revenue and healthy otherwise.
func ClassifyProfit(profit, revenue float64) ProfitStatus {
	switch {
	case profit <= 0:
		return ProfitLoss
	case profit < constants.ThinProfitFraction*revenue:
		return ProfitThin
	default:
		return ProfitHealthy
	}
}
