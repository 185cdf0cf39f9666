// Package main implements a conformance runner that executes an emulator
// with every CPU test ROM and reports the verdict of each run.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/retroenv/opcodegen/internal/config"
	"github.com/retroenv/opcodegen/internal/conformance"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

func main() {
	ctx := app.Context()

	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var cfg conformance.Config
	flags.StringVar(&cfg.Emulator, "emu", "", "emulator binary that is started with the test ROM path as last argument")
	flags.StringVar(&cfg.FixtureDir, "dir", "cpu_instrs/individual", "directory of the test ROMs")
	flags.DurationVar(&cfg.Timeout, "timeout", conformance.DefaultTimeout, "maximum run time per test ROM")
	debug := flags.Bool("debug", false, "enable debugging options for extended logging")
	quiet := flags.Bool("q", false, "perform operations quietly")

	if err := flags.Parse(os.Args[1:]); err != nil || cfg.Emulator == "" {
		fmt.Printf("usage: conformance -emu <emulator> [options] [test ROMs]\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}

	logger := config.CreateLogger(*debug, *quiet)
	fixtures := flags.Args()
	if len(fixtures) == 0 {
		fixtures = conformance.DefaultFixtures
	}

	if err := run(ctx, logger, cfg, fixtures); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Conformance run failed", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, cfg conformance.Config, fixtures []string) error {
	runner, err := conformance.New(logger, cfg)
	if err != nil {
		return fmt.Errorf("creating runner: %w", err)
	}

	start := time.Now()
	results, err := runner.RunAll(ctx, fixtures)
	if err != nil {
		return err
	}

	var passed int
	for _, result := range results {
		if result.Outcome == conformance.Pass {
			passed++
			continue
		}
		fmt.Printf("%s output:\n%s\n", result.Fixture, result.Output)
	}

	logger.Info("Conformance run finished",
		log.Int("passed", passed),
		log.Int("total", len(results)),
		log.String("duration", time.Since(start).Round(time.Millisecond).String()))

	if !conformance.Passed(results) {
		return fmt.Errorf("%d of %d test ROMs did not pass", len(results)-passed, len(results))
	}
	return nil
}
