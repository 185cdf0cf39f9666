// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/opcodegen/internal/arch/sm83"
	"github.com/retroenv/opcodegen/internal/options"
	"github.com/retroenv/opcodegen/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Default option values.
const (
	DefaultName    = "Opcodes"
	DefaultPackage = "opcodes"
	DefaultISA     = sm83.Name
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// DefaultProgram returns the program options that are used when no flags are given.
func DefaultProgram() options.Program {
	return options.Program{
		Flags: options.Flags{
			ISA: DefaultISA,
		},
		OutputFlags: options.OutputFlags{
			Name:    DefaultName,
			Package: DefaultPackage,
			PerLine: writer.DefaultEntriesPerLine,
		},
	}
}
