// Package cmd implements the cval CLI, a calculator for commodity values.
package cmd

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/etnz/commodity"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&evalCmd{}, "calculator")
	c.Register(&sumCmd{}, "calculator")
	c.Register(&fmtCmd{}, "calculator")

	c.Register(&commoditiesCmd{}, "registry")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var debug = flag.Bool("debug", false, "Log commodity registrations and display precision raises.")

// appConfig holds the environment-driven settings, parsed once in Configure.
type appConfig struct {
	DisplayPrecision int      `env:"CVAL_DISPLAY_PRECISION" envDefault:"-1"`
	ExtraPrecision   int      `env:"CVAL_EXTRA_PRECISION" envDefault:"-1"`
	ISO              []string `env:"CVAL_ISO" envSeparator:","`
	Debug            bool     `env:"CVAL_DEBUG"`
	Plain            bool     `env:"CVAL_PLAIN"`
}

var config appConfig

// Configure parses the CVAL_* environment variables and applies them to the
// library settings. Call it after flag.Parse and before Execute.
func Configure() error {
	if err := env.Parse(&config); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if config.DisplayPrecision >= 0 {
		commodity.SetDefaultDisplayPrecision(config.DisplayPrecision)
	}
	if config.ExtraPrecision >= 0 {
		commodity.SetExtraPrecision(config.ExtraPrecision)
	}
	if config.Debug || *debug {
		commodity.DefaultRegistry.SetLogger(newLogger())
	}
	for _, code := range config.ISO {
		commodity.InternCurrency(code)
	}
	return nil
}

// newLogger builds the development logger installed on the default registry
// when -debug or CVAL_DEBUG is set.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableCaller = true
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// valueString renders a value in display form, or in full precision form.
func valueString(v commodity.Value, full bool) string {
	if full {
		switch t := v.(type) {
		case commodity.Amount:
			return t.FullString()
		case *commodity.Balance:
			return t.FullString()
		}
	}
	return fmt.Sprint(v)
}
