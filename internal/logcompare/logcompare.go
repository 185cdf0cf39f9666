// Package logcompare compares a CPU state trace of an emulator against a
// reference trace and reports the first diverging line.
package logcompare

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReferenceState is an example state line of the reference trace format.
// Only this prefix of every reference line is compared.
const ReferenceState = "A:01 F:Z-HC BC:0013 DE:00d8 HL:014d SP:fffe PC:0100"

// Default options of a comparison.
const (
	DefaultSkipLines = 7
	DefaultWidth     = len(ReferenceState)
)

// Options of a comparison.
type Options struct {
	SkipLines int // header lines of the expected trace to skip
	Width     int // number of leading characters of every expected line to compare
}

// DefaultOptions returns the options for comparing against a reference trace
// in the common Game Boy trace format.
func DefaultOptions() Options {
	return Options{
		SkipLines: DefaultSkipLines,
		Width:     DefaultWidth,
	}
}

// Mismatch describes the first line that differs between both traces.
type Mismatch struct {
	Line     int // 1-based line number, counted after the skipped header
	Expected string
	Actual   string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("line %d: expected '%s', got '%s'", m.Line, m.Expected, m.Actual)
}

// Compare reads both traces line by line. Expected lines are truncated to the
// configured width, actual lines are trimmed and both are compared case
// insensitively. The comparison stops at the end of the shorter trace.
// It returns nil if no mismatch was found.
func Compare(expected, actual io.Reader, opts Options) (*Mismatch, error) {
	expectedScanner := bufio.NewScanner(expected)
	actualScanner := bufio.NewScanner(actual)

	for range opts.SkipLines {
		if !expectedScanner.Scan() {
			return nil, scanError("expected", expectedScanner)
		}
	}

	for line := 1; ; line++ {
		if !expectedScanner.Scan() {
			return nil, scanError("expected", expectedScanner)
		}
		if !actualScanner.Scan() {
			return nil, scanError("actual", actualScanner)
		}

		exp := normalizeExpected(expectedScanner.Text(), opts.Width)
		act := normalizeActual(actualScanner.Text())
		if exp != act {
			return &Mismatch{
				Line:     line,
				Expected: exp,
				Actual:   act,
			}, nil
		}
	}
}

func normalizeExpected(line string, width int) string {
	if width > 0 && len(line) > width {
		line = line[:width]
	}
	return strings.ToUpper(line)
}

func normalizeActual(line string) string {
	return strings.ToUpper(strings.TrimSpace(line))
}

func scanError(name string, scanner *bufio.Scanner) error {
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s trace: %w", name, err)
	}
	return nil
}
