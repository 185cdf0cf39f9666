// Package main implements a comparator of emulator CPU state traces that
// prints the first line where the traces diverge.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/opcodegen/internal/config"
	"github.com/retroenv/opcodegen/internal/logcompare"
	"github.com/retroenv/retrogolib/log"
)

func main() {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := logcompare.DefaultOptions()
	flags.IntVar(&opts.SkipLines, "skip", opts.SkipLines, "number of header lines of the reference trace to skip")
	flags.IntVar(&opts.Width, "width", opts.Width, "number of leading characters of every reference line to compare")
	debug := flags.Bool("debug", false, "enable debugging options for extended logging")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) != 2 {
		fmt.Printf("usage: logcompare [options] <reference trace> <emulator trace>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}

	logger := config.CreateLogger(*debug, false)
	mismatch, err := compareFiles(args[0], args[1], opts)
	if err != nil {
		logger.Error("Comparing traces failed", log.Err(err))
		os.Exit(1)
	}
	if mismatch == nil {
		logger.Info("Traces match")
		return
	}

	fmt.Printf("Line %d\n", mismatch.Line)
	fmt.Printf("Expected: %s\n", mismatch.Expected)
	fmt.Printf("Actual:   %s\n", mismatch.Actual)
	os.Exit(1)
}

func compareFiles(expectedFile, actualFile string, opts logcompare.Options) (*logcompare.Mismatch, error) {
	expected, err := os.Open(expectedFile)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", expectedFile, err)
	}
	defer func() { _ = expected.Close() }()

	actual, err := os.Open(actualFile)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", actualFile, err)
	}
	defer func() { _ = actual.Close() }()

	mismatch, err := logcompare.Compare(expected, actual, opts)
	if err != nil {
		return nil, fmt.Errorf("comparing: %w", err)
	}
	return mismatch, nil
}
