// Package output provides utilities for formatting and displaying analysis results.
package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/break-even/internal/analysis"
	"github.com/iwvelando/break-even/pkg/breakeven"
	"github.com/iwvelando/break-even/pkg/constants"
	"github.com/iwvelando/break-even/pkg/format"
	"github.com/iwvelando/break-even/pkg/mathutil"
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CSV headers for each exported table.
var (
	BreakEvenHeader = []string{"Units", "Total Costs", "Revenue"}
	ForecastHeader  = []string{"Month", "Forecasted Sales", "Forecasted Profit"}
)

// PrettyFormat writes a human-readable report.
func PrettyFormat(w io.Writer, r *analysis.Report) {
	p := message.NewPrinter(language.English)
	m := r.Metrics
	in := r.Inputs

	_, _ = fmt.Fprintf(w, "--- Financial Key Metrics ---\n")
	_, _ = fmt.Fprintf(w, "Break-Even Units          | %s\n", format.Units(m.BreakEvenUnits))
	_, _ = fmt.Fprintf(w, "Break-Even Revenue        | %s\n", format.Currency(m.BreakEvenRevenue))
	_, _ = fmt.Fprintf(w, "Contribution Margin/Unit  | %s\n", format.Currency(m.ContributionMarginPerUnit))
	_, _ = fmt.Fprintf(w, "Contribution Margin Ratio | %s\n", format.Percent(m.ContributionMarginRatio))
	_, _ = fmt.Fprintf(w, "Estimated Monthly Revenue | %s\n", format.Currency(m.EstimatedMonthlyRevenue))
	_, _ = p.Fprintf(w, "Operating Profit Margin   | %s at %d units\n", format.Percent(m.OperatingProfitMargin), in.AnalysisUnitRange)
	if m.PaybackPeriodMonths != nil {
		_, _ = fmt.Fprintf(w, "Time to Break Even        | %.1f months\n", *m.PaybackPeriodMonths)
	} else {
		_, _ = fmt.Fprintf(w, "Time to Break Even        | n/a (no estimated sales)\n")
	}

	_, _ = fmt.Fprintf(w, "\n--- Break-Even Analysis ---\n")
	_, _ = fmt.Fprintf(w, "Margin of Safety          | %s units\n", format.Units(m.MarginOfSafetyUnits))
	_, _ = fmt.Fprintf(w, "Margin of Safety Revenue  | %s\n", format.Currency(m.MarginOfSafetyRevenue))
	_, _ = p.Fprintf(w, "Profit at %d units        | %s\n", in.AnalysisUnitRange, format.Currency(m.ProfitAtRange))
	if m.OperatingLeverage != nil {
		_, _ = fmt.Fprintf(w, "Operating Leverage        | %.2f (%s)\n", *m.OperatingLeverage, r.Leverage)
	} else {
		_, _ = fmt.Fprintf(w, "Operating Leverage        | n/a\n")
	}
	_, _ = fmt.Fprintf(w, "Margin of Safety Status   | %s\n", r.Safety)
	_, _ = fmt.Fprintf(w, "Operating Profit/Unit     | %s\n", format.Currency(m.OperatingProfitPerUnit))

	if len(r.Warnings) > 0 {
		_, _ = fmt.Fprintf(w, "\n--- Warnings ---\n")
		for _, warning := range r.Warnings {
			_, _ = fmt.Fprintf(w, "! %s\n", warning)
		}
	}

	_, _ = fmt.Fprintf(w, "\n--- Insights & Recommendations ---\n")
	for _, insight := range r.Insights {
		_, _ = fmt.Fprintf(w, "* %s\n", insight)
	}

	_, _ = fmt.Fprintf(w, "\n--- Sales & Profit Forecast (%.2f%% monthly growth) ---\n", r.ForecastParams.MonthlyGrowthPercent)
	_, _ = fmt.Fprintf(w, "Month | Sales       | Profit\n")
	_, _ = fmt.Fprintf(w, "_____ | ___________ | ______\n")
	for _, point := range r.Forecast {
		_, _ = p.Fprintf(w, "%5d | %11.2f | %s\n", point.Month, point.Sales, format.Currency(point.Profit))
	}

	_, _ = fmt.Fprintf(w, "\n--- Sensitivity of Profit to %s ---\n", r.Sensitivity.Label)
	for _, point := range r.Sensitivity.Points {
		_, _ = p.Fprintf(w, "%14.2f | %s\n", point.Value, format.Currency(point.Profit))
	}
}

// CsvFormat writes the selected table in comma-separated value format.
func CsvFormat(w io.Writer, r *analysis.Report, table string) error {
	switch table {
	case constants.TableBreakEven, "":
		return BreakEvenCSV(w, r.CostTable)
	case constants.TableForecast:
		return ForecastCSV(w, r.Forecast)
	case constants.TableSensitivity:
		return SensitivityCSV(w, r.Sensitivity)
	}
	return fmt.Errorf("unknown table %q", table)
}

// CsvString returns the selected table as a CSV string.
func CsvString(r *analysis.Report, table string) (string, error) {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, r, table); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// BreakEvenCSV writes the cost table with the "Units,Total Costs,Revenue" header.
func BreakEvenCSV(w io.Writer, table []breakeven.CostPoint) error {
	rows := lo.Map(table, func(c breakeven.CostPoint, _ int) []string {
		return []string{strconv.Itoa(c.Units), csvFloat(c.TotalCosts), csvFloat(c.Revenue)}
	})
	return writeCSV(w, BreakEvenHeader, rows)
}

// ForecastCSV writes the forecast with the "Month,Forecasted Sales,Forecasted Profit" header.
func ForecastCSV(w io.Writer, points []breakeven.ForecastPoint) error {
	rows := lo.Map(points, func(p breakeven.ForecastPoint, _ int) []string {
		return []string{strconv.Itoa(p.Month), csvFloat(p.Sales), csvFloat(p.Profit)}
	})
	return writeCSV(w, ForecastHeader, rows)
}

// SensitivityCSV writes the sweep with a "<dimension label>,Profit" header.
func SensitivityCSV(w io.Writer, series breakeven.SensitivitySeries) error {
	rows := lo.Map(series.Points, func(p breakeven.SensitivityPoint, _ int) []string {
		return []string{csvFloat(p.Value), csvFloat(p.Profit)}
	})
	label := series.Label
	if label == "" {
		label = series.Dimension.Label()
	}
	return writeCSV(w, []string{label, "Profit"}, rows)
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}

func csvFloat(v float64) string {
	return strconv.FormatFloat(mathutil.Round(v), 'f', -1, 64)
}
