// Package main is the entry point for the DCF valuation engine runner.
// It reads a financial input bundle as JSON from a file argument (or stdin),
// runs a comprehensive multi-scenario DCF analysis, and writes the report as
// JSON to stdout. Logs go to stderr so the report stream stays clean.
//
// The engine itself is a pure computation module; data acquisition and any
// HTTP/API surface live in their own services and are not part of this
// binary.
package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/investapp/dcf-engine/internal/config"
	"github.com/investapp/dcf-engine/internal/domain"
	"github.com/investapp/dcf-engine/internal/modules/dcf"
	"github.com/investapp/dcf-engine/pkg/logger"
)

func main() {
	// Load configuration first to get log level
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	var in io.Reader = os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			log.Fatal().Err(err).Str("path", os.Args[1]).Msg("Failed to open input bundle")
		}
		defer f.Close()
		in = f
	}

	var bundle domain.FinancialInputBundle
	if err := json.NewDecoder(in).Decode(&bundle); err != nil {
		log.Fatal().Err(err).Msg("Failed to decode input bundle")
	}

	engine := dcf.New(cfg, log)
	report, err := engine.CalculateComprehensiveDCF(bundle)
	if err != nil {
		log.Fatal().Err(err).Str("ticker", bundle.Ticker).Msg("DCF analysis failed")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode report")
	}
}
