// Package constants provides shared constants for the break-even application.
package constants

// Model thresholds
const (
	// SafetyLowFraction is the share of the analysis range below which a
	// positive margin of safety is considered low.
	SafetyLowFraction = 0.1

	// LeverageHighThreshold is the degree of operating leverage above which
	// profits are considered highly sensitive to volume.
	LeverageHighThreshold = 5.0

	// LeverageModerateThreshold is the lower (exclusive) bound of moderate leverage.
	LeverageModerateThreshold = 2.0

	// ThinProfitFraction is the share of revenue below which a positive
	// profit is considered thin.
	ThinProfitFraction = 0.2
)

// Forecast and sensitivity limits
const (
	// MinForecastMonths is the shortest forecast horizon.
	MinForecastMonths = 1

	// MaxForecastMonths is the longest forecast horizon.
	MaxForecastMonths = 24

	// MinGrowthPercent is the lowest accepted monthly growth rate.
	MinGrowthPercent = -100.0

	// MaxGrowthPercent is the highest accepted monthly growth rate.
	MaxGrowthPercent = 100.0

	// SensitivityPoints is the number of samples in a sensitivity sweep.
	SensitivityPoints = 10

	// SweepDefaultLow and SweepDefaultHigh scale a base value into the
	// default sweep range.
	SweepDefaultLow  = 0.8
	SweepDefaultHigh = 1.2

	// SweepBoundLow and SweepBoundHigh scale a base value into the widest
	// accepted sweep range.
	SweepBoundLow  = 0.5
	SweepBoundHigh = 1.5

	// MaxAnalysisUnitRange is the largest analysis range accepted from config.
	MaxAnalysisUnitRange = 10000
)

// Default business inputs
const (
	DefaultFixedCosts            = 3000.0
	DefaultVariableCostPerUnit   = 10.0
	DefaultPricePerUnit          = 25.0
	DefaultEstimatedMonthlySales = 200.0
	DefaultAnalysisUnitRange     = 500
	DefaultForecastMonths        = 12
	DefaultGrowthPercent         = 5.0
	DefaultSensitivityDimension  = "price"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// CSV table selectors
const (
	TableBreakEven   = "breakeven"
	TableForecast    = "forecast"
	TableSensitivity = "sensitivity"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment variables that override config keys.
	EnvPrefix = "BREAKEVEN"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// Numeric constants
const (
	// DecimalPlaces is the number of decimals kept for currency values.
	DecimalPlaces = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)
