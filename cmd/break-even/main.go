package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/iwvelando/break-even/internal/analysis"
	"github.com/iwvelando/break-even/internal/config"
	"github.com/iwvelando/break-even/internal/logging"
	"github.com/iwvelando/break-even/pkg/breakeven"
	"github.com/iwvelando/break-even/pkg/constants"
	"github.com/iwvelando/break-even/pkg/output"
	"github.com/iwvelando/break-even/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile,
		fmt.Sprintf("path to configuration file (see %s)", constants.ExampleConfigFile))
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	tableFlag := flag.String("table", "", "table to emit with csv output: breakeven, forecast, sensitivity")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI overrides take precedence over config
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	table := conf.Output.Table
	if *tableFlag != "" {
		table = *tableFlag
	}
	if table == "" {
		table = constants.TableBreakEven
	}
	if err := validation.ValidateTable(table); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	report, err := analysis.Run(logger, *conf)
	if err != nil {
		if errors.Is(err, breakeven.ErrInvalidModel) {
			logger.Fatal("price per unit must be greater than variable cost",
				zap.String("op", "main"),
				zap.Float64("pricePerUnit", conf.Inputs.PricePerUnit),
				zap.Float64("variableCostPerUnit", conf.Inputs.VariableCostPerUnit),
			)
		}
		logger.Fatal("failed to run break-even analysis",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(os.Stdout, report)
	case constants.OutputFormatCSV:
		if err := output.CsvFormat(os.Stdout, report, table); err != nil {
			logger.Fatal("failed to write csv output",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}
