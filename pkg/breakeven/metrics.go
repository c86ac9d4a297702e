package breakeven

import "github.com/iwvelando/break-even/pkg/mathutil"

// Metrics holds everything derived from a single set of Inputs.
type Metrics struct {
	ContributionMarginPerUnit float64 `json:"contributionMarginPerUnit"`
	ContributionMarginRatio   float64 `json:"contributionMarginRatio"`
	BreakEvenUnits            float64 `json:"breakEvenUnits"`
	BreakEvenRevenue          float64 `json:"breakEvenRevenue"`
	MarginOfSafetyUnits       float64 `json:"marginOfSafetyUnits"`
	MarginOfSafetyRevenue     float64 `json:"marginOfSafetyRevenue"`
	RevenueAtRange            float64 `json:"revenueAtRange"`
	TotalCostsAtRange         float64 `json:"totalCostsAtRange"`
	ProfitAtRange             float64 `json:"profitAtRange"`
	OperatingProfitMargin     float64 `json:"operatingProfitMargin"`
	OperatingProfitPerUnit    float64 `json:"operatingProfitPerUnit"`
	EstimatedMonthlyRevenue   float64 `json:"estimatedMonthlyRevenue"`

	// PaybackPeriodMonths is nil when the estimated monthly sales is zero.
	PaybackPeriodMonths *float64 `json:"paybackPeriodMonths,omitempty"`

	// OperatingLeverage is nil unless ProfitAtRange is positive.
	OperatingLeverage *float64 `json:"operatingLeverage,omitempty"`
}

// Compute derives the full metric set from in. It returns ErrInvalidModel
// when the price does not exceed the variable cost.
func Compute(in Inputs) (Metrics, error) {
	if err := in.CheckModel(); err != nil {
		return Metrics{}, err
	}

	units := float64(in.AnalysisUnitRange)
	cm := in.ContributionMargin()

	var m Metrics
	m.ContributionMarginPerUnit = cm
	m.ContributionMarginRatio = mathutil.SafeDivide(cm, in.PricePerUnit, 0)
	m.BreakEvenUnits = mathutil.SafeDivide(in.FixedCosts, cm, 0)
	m.BreakEvenRevenue = m.BreakEvenUnits * in.PricePerUnit

	m.RevenueAtRange = units * in.PricePerUnit
	m.TotalCostsAtRange = in.FixedCosts + in.VariableCostPerUnit*units
	m.ProfitAtRange = m.RevenueAtRange - m.TotalCostsAtRange
	m.OperatingProfitMargin = mathutil.SafeDivide(m.ProfitAtRange, m.RevenueAtRange, 0)
	m.OperatingProfitPerUnit = m.OperatingProfitMargin * in.PricePerUnit
	m.EstimatedMonthlyRevenue = in.PricePerUnit * in.EstimatedMonthlySales

	m.MarginOfSafetyUnits = units - m.BreakEvenUnits
	m.MarginOfSafetyRevenue = m.MarginOfSafetyUnits * in.PricePerUnit

	if in.EstimatedMonthlySales != 0 {
		payback := m.BreakEvenUnits / in.EstimatedMonthlySales
		m.PaybackPeriodMonths = &payback
	}

	if m.ProfitAtRange > 0 {
		dol := (cm * units) / m.ProfitAtRange
		m.OperatingLeverage = &dol
	}

	return m, nil
}

// BreakEvenBeyondRange reports whether break-even is only reached past the
// analysis range.
func BreakEvenBeyondRange(m Metrics, rangeUnits int) bool {
	return m.BreakEvenUnits > float64(rangeUnits)
}
