package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/break-even/pkg/breakeven"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `inputs:
  fixedCosts: 4000
  variableCostPerUnit: 12.5
  pricePerUnit: 30
  estimatedMonthlySales: 250
  analysisUnitRange: 800
forecast:
  months: 6
  monthlyGrowthPercent: 2.5
  startingSales: 300
sensitivity:
  dimension: Variable Cost per Unit
  min: 10
  max: 15
logging:
  level: debug
  format: console
output:
  format: csv
  table: forecast
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestLoadConfiguration(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, Inputs{
		FixedCosts:            4000,
		VariableCostPerUnit:   12.5,
		PricePerUnit:          30,
		EstimatedMonthlySales: 250,
		AnalysisUnitRange:     800,
	}, conf.Inputs)
	assert.Equal(t, 6, conf.Forecast.Months)
	assert.Equal(t, 2.5, conf.Forecast.MonthlyGrowthPercent)
	require.NotNil(t, conf.Forecast.StartingSales)
	assert.Equal(t, 300.0, *conf.Forecast.StartingSales)
	assert.Equal(t, "Variable Cost per Unit", conf.Sensitivity.Dimension)
	assert.Equal(t, "debug", conf.Logging.Level)
	assert.Equal(t, "console", conf.Logging.Format)
	assert.Equal(t, "csv", conf.Output.Format)
	assert.Equal(t, "forecast", conf.Output.Table)
	assert.NoError(t, conf.Validate())
}

func TestLoadConfigurationDefaults(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, "logging:\n  level: info\n"))
	require.NoError(t, err)

	assert.Equal(t, 3000.0, conf.Inputs.FixedCosts)
	assert.Equal(t, 10.0, conf.Inputs.VariableCostPerUnit)
	assert.Equal(t, 25.0, conf.Inputs.PricePerUnit)
	assert.Equal(t, 200.0, conf.Inputs.EstimatedMonthlySales)
	assert.Equal(t, 500, conf.Inputs.AnalysisUnitRange)
	assert.Equal(t, 12, conf.Forecast.Months)
	assert.Equal(t, 5.0, conf.Forecast.MonthlyGrowthPercent)
	assert.Nil(t, conf.Forecast.StartingSales)
	assert.Equal(t, "price", conf.Sensitivity.Dimension)
	assert.Nil(t, conf.Sensitivity.Min)
	assert.Equal(t, "pretty", conf.Output.Format)
	assert.Equal(t, "breakeven", conf.Output.Table)
}

func TestLoadConfigurationEnvOverride(t *testing.T) {
	t.Setenv("BREAKEVEN_INPUTS_PRICEPERUNIT", "40")
	t.Setenv("BREAKEVEN_FORECAST_STARTINGSALES", "120")

	conf, err := LoadConfiguration(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 40.0, conf.Inputs.PricePerUnit)
	require.NotNil(t, conf.Forecast.StartingSales)
	assert.Equal(t, 120.0, *conf.Forecast.StartingSales)
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigurationFromReader(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, 30.0, conf.Inputs.PricePerUnit)

	_, err = LoadConfigurationFromReader(strings.NewReader("inputs: [unterminated"))
	assert.Error(t, err)
}

func TestLoadConfigurationFromReaderIgnoresEnv(t *testing.T) {
	t.Setenv("BREAKEVEN_INPUTS_PRICEPERUNIT", "5")
	t.Setenv("BREAKEVEN_FORECAST_STARTINGSALES", "120")
	t.Setenv("BREAKEVEN_SENSITIVITY_DIMENSION", "fixed_costs")

	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 30.0, conf.Inputs.PricePerUnit)
	require.NotNil(t, conf.Forecast.StartingSales)
	assert.Equal(t, 300.0, *conf.Forecast.StartingSales)
	assert.Equal(t, "Variable Cost per Unit", conf.Sensitivity.Dimension)

	conf, err = LoadConfigurationFromReader(strings.NewReader("logging:\n  level: info\n"))
	require.NoError(t, err)
	assert.Equal(t, 25.0, conf.Inputs.PricePerUnit)
	assert.Nil(t, conf.Forecast.StartingSales)
}

func TestLoadConfigurationRejectsFractionalIntegers(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		expectErr bool
	}{
		{"fractional range", "inputs:\n  analysisUnitRange: 500.7\n", true},
		{"fractional months", "forecast:\n  months: 6.5\n", true},
		{"whole float range", "inputs:\n  analysisUnitRange: 500.0\n", false},
		{"integer range", "inputs:\n  analysisUnitRange: 750\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := LoadConfigurationFromReader(strings.NewReader(tt.yaml))
			if tt.expectErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "expected a whole number")
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, conf.Inputs.AnalysisUnitRange)
		})
	}

	_, err := LoadConfiguration(writeConfig(t, "inputs:\n  analysisUnitRange: 500.7\n"))
	assert.Error(t, err)
}

func TestForecastParams(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, breakeven.ForecastParams{StartingSales: 300, MonthlyGrowthPercent: 2.5, Months: 6}, conf.ForecastParams())

	conf.Forecast.StartingSales = nil
	assert.Equal(t, 250.0, conf.ForecastParams().StartingSales)
}

func TestSweepRange(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleConfig))
	require.NoError(t, err)

	dim, lo, hi, err := conf.SweepRange()
	require.NoError(t, err)
	assert.Equal(t, breakeven.DimensionVariableCost, dim)
	assert.Equal(t, 10.0, lo)
	assert.Equal(t, 15.0, hi)

	conf.Sensitivity.Min = nil
	conf.Sensitivity.Max = nil
	_, lo, hi, err = conf.SweepRange()
	require.NoError(t, err)
	assert.InDelta(t, 10.0, lo, 1e-9)
	assert.InDelta(t, 15.0, hi, 1e-9)

	conf.Sensitivity.Dimension = "margin"
	_, _, _, err = conf.SweepRange()
	assert.ErrorIs(t, err, breakeven.ErrInvalidParameter)
}
