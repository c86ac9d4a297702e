// Package config defines the data structures related to configuration and
// includes functions for loading, defaulting and validating it.
package config

import (
	"fmt"
	"io"
	"math"
	"reflect"
	"strings"

	"github.com/iwvelando/break-even/pkg/breakeven"
	"github.com/iwvelando/break-even/pkg/constants"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for break-even.
type Configuration struct {
	Inputs      Inputs            `yaml:"inputs" mapstructure:"inputs"`
	Forecast    ForecastConfig    `yaml:"forecast" mapstructure:"forecast"`
	Sensitivity SensitivityConfig `yaml:"sensitivity" mapstructure:"sensitivity"`
	Logging     LoggingConfig     `yaml:"logging,omitempty" mapstructure:"logging"`
	Output      OutputConfig      `yaml:"output,omitempty" mapstructure:"output"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" mapstructure:"format"` // pretty, csv
	Table  string `yaml:"table,omitempty" mapstructure:"table"`   // breakeven, forecast, sensitivity (csv only)
}

// Inputs holds the business figures.
type Inputs struct {
	FixedCosts            float64 `yaml:"fixedCosts" mapstructure:"fixedCosts"`
	VariableCostPerUnit   float64 `yaml:"variableCostPerUnit" mapstructure:"variableCostPerUnit"`
	PricePerUnit          float64 `yaml:"pricePerUnit" mapstructure:"pricePerUnit"`
	EstimatedMonthlySales float64 `yaml:"estimatedMonthlySales" mapstructure:"estimatedMonthlySales"`
	AnalysisUnitRange     int     `yaml:"analysisUnitRange" mapstructure:"analysisUnitRange"`
}

// ForecastConfig controls the sales and profit projection. An unset
// StartingSales falls back to Inputs.EstimatedMonthlySales.
type ForecastConfig struct {
	Months               int      `yaml:"months" mapstructure:"months"`
	MonthlyGrowthPercent float64  `yaml:"monthlyGrowthPercent" mapstructure:"monthlyGrowthPercent"`
	StartingSales        *float64 `yaml:"startingSales,omitempty" mapstructure:"startingSales"`
}

// SensitivityConfig selects the swept input and its range. Unset bounds
// fall back to 80% and 120% of the input's base value.
type SensitivityConfig struct {
	Dimension string   `yaml:"dimension" mapstructure:"dimension"`
	Min       *float64 `yaml:"min,omitempty" mapstructure:"min"`
	Max       *float64 `yaml:"max,omitempty" mapstructure:"max"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Environment variables prefixed with BREAKEVEN_
// override file values, e.g. BREAKEVEN_INPUTS_PRICEPERUNIT.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	bindEnv(v)
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r with the same
// defaults as LoadConfiguration. The environment is not consulted: the
// document alone determines the result.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")

	v.SetDefault("inputs.fixedCosts", constants.DefaultFixedCosts)
	v.SetDefault("inputs.variableCostPerUnit", constants.DefaultVariableCostPerUnit)
	v.SetDefault("inputs.pricePerUnit", constants.DefaultPricePerUnit)
	v.SetDefault("inputs.estimatedMonthlySales", constants.DefaultEstimatedMonthlySales)
	v.SetDefault("inputs.analysisUnitRange", constants.DefaultAnalysisUnitRange)
	v.SetDefault("forecast.months", constants.DefaultForecastMonths)
	v.SetDefault("forecast.monthlyGrowthPercent", constants.DefaultGrowthPercent)
	v.SetDefault("sensitivity.dimension", constants.DefaultSensitivityDimension)
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("output.table", constants.TableBreakEven)

	return v
}

// bindEnv lets BREAKEVEN_* variables override file values.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Optional keys have no default; binding makes them visible to env overrides.
	for _, key := range []string{"forecast.startingSales", "sensitivity.min", "sensitivity.max"} {
		_ = v.BindEnv(key)
	}
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		wholeNumberHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&configuration, hook); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// wholeNumberHook rejects fractional values bound for integer fields, which
// weak decoding would otherwise truncate.
func wholeNumberHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	if f := reflect.ValueOf(data).Float(); math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, fmt.Errorf("expected a whole number, got %v", f)
	}
	return data, nil
}

// ToInputs converts the configured figures into calculator inputs.
func (c *Configuration) ToInputs() breakeven.Inputs {
	return breakeven.Inputs{
		FixedCosts:            c.Inputs.FixedCosts,
		VariableCostPerUnit:   c.Inputs.VariableCostPerUnit,
		PricePerUnit:          c.Inputs.PricePerUnit,
		EstimatedMonthlySales: c.Inputs.EstimatedMonthlySales,
		AnalysisUnitRange:     c.Inputs.AnalysisUnitRange,
	}
}

// ForecastParams resolves the projection arguments, defaulting the starting
// sales to the estimated monthly sales.
func (c *Configuration) ForecastParams() breakeven.ForecastParams {
	starting := c.Inputs.EstimatedMonthlySales
	if c.Forecast.StartingSales != nil {
		starting = *c.Forecast.StartingSales
	}
	return breakeven.ForecastParams{
		StartingSales:        starting,
		MonthlyGrowthPercent: c.Forecast.MonthlyGrowthPercent,
		Months:               c.Forecast.Months,
	}
}

// SweepRange resolves the sensitivity dimension and its bounds.
func (c *Configuration) SweepRange() (breakeven.Dimension, float64, float64, error) {
	dim, err := breakeven.ParseDimension(c.Sensitivity.Dimension)
	if err != nil {
		return "", 0, 0, err
	}

	lo, hi, err := breakeven.DefaultSweepRange(c.ToInputs(), dim)
	if err != nil {
		return "", 0, 0, err
	}
	if c.Sensitivity.Min != nil {
		lo = *c.Sensitivity.Min
	}
	if c.Sensitivity.Max != nil {
		hi = *c.Sensitivity.Max
	}
	return dim, lo, hi, nil
}
