// Package conformance runs an emulator against CPU test ROMs and classifies
// every run by the verdict that the test ROM prints.
package conformance

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// Default configuration values.
const (
	DefaultTimeout    = 5 * time.Second
	DefaultPassMarker = "Passed"
	DefaultFailMarker = "Failed"

	waitDelay = time.Second
)

// DefaultFixtures are the individual test ROMs of the blargg cpu_instrs suite.
var DefaultFixtures = []string{
	"01-special.gb",
	"02-interrupts.gb",
	"03-op sp,hl.gb",
	"04-op r,imm.gb",
	"05-op rp.gb",
	"06-ld r,r.gb",
	"07-jr,jp,call,ret,rst.gb",
	"08-misc instrs.gb",
	"09-op r,r.gb",
	"10-bit ops.gb",
	"11-op a,(hl).gb",
}

// ErrNoEmulator is returned when no emulator binary is configured.
var ErrNoEmulator = errors.New("no emulator configured")

// Outcome is the classification of a single fixture run.
type Outcome int

// Run outcomes.
const (
	Pass       Outcome = iota // output contains the pass marker
	Fail                      // output contains the fail marker
	Crash                     // emulator exited without a verdict

	// Unexpected is an emulator that timed out without a verdict. Reports
	// that only distinguish pass, fail and crash count it as Crash.
	Unexpected
)

var outcomeNames = map[Outcome]string{
	Pass:       "passed",
	Fail:       "failed",
	Crash:      "crashed",
	Unexpected: "unexpected output",
}

func (o Outcome) String() string {
	name, ok := outcomeNames[o]
	if !ok {
		return fmt.Sprintf("outcome(%d)", int(o))
	}
	return name
}

// Config of a conformance runner.
type Config struct {
	Emulator   string        // emulator binary
	Args       []string      // arguments passed before the fixture path
	FixtureDir string        // directory that relative fixture names are resolved in
	Timeout    time.Duration // maximum run time per fixture
	PassMarker string
	FailMarker string
}

// Result of a single fixture run.
type Result struct {
	Fixture  string
	Outcome  Outcome
	Output   string
	Duration time.Duration
}

// Runner runs fixtures sequentially.
type Runner struct {
	logger *log.Logger
	cfg    Config
}

// New creates a new runner. Unset configuration values are set to their defaults.
func New(logger *log.Logger, cfg Config) (*Runner, error) {
	if cfg.Emulator == "" {
		return nil, ErrNoEmulator
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.PassMarker == "" {
		cfg.PassMarker = DefaultPassMarker
	}
	if cfg.FailMarker == "" {
		cfg.FailMarker = DefaultFailMarker
	}

	return &Runner{
		logger: logger,
		cfg:    cfg,
	}, nil
}

// Run executes the emulator with the fixture and classifies its output.
// The emulator is stopped when the timeout expires.
func (r *Runner) Run(ctx context.Context, fixture string) (Result, error) {
	runCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	path := fixture
	if r.cfg.FixtureDir != "" && !filepath.IsAbs(fixture) {
		path = filepath.Join(r.cfg.FixtureDir, fixture)
	}

	args := append(append([]string{}, r.cfg.Args...), path)
	cmd := exec.CommandContext(runCtx, r.cfg.Emulator, args...)
	cmd.WaitDelay = waitDelay

	start := time.Now()
	output, err := cmd.CombinedOutput()
	result := Result{
		Fixture:  fixture,
		Output:   string(output),
		Duration: time.Since(start),
	}

	if ctx.Err() != nil {
		return result, ctx.Err()
	}

	if err != nil && cmd.ProcessState == nil {
		return result, fmt.Errorf("starting emulator: %w", err)
	}

	result.Outcome = r.classify(result.Output, errors.Is(runCtx.Err(), context.DeadlineExceeded))
	r.logger.Debug("Fixture finished",
		log.String("fixture", fixture),
		log.Stringer("outcome", result.Outcome),
		log.String("duration", result.Duration.String()))
	return result, nil
}

// classify maps the emulator output to an outcome. Test ROMs do not exit
// after printing their verdict, so an emulator that exits on its own without
// a verdict has crashed.
func (r *Runner) classify(output string, timedOut bool) Outcome {
	switch {
	case strings.Contains(output, r.cfg.PassMarker):
		return Pass
	case strings.Contains(output, r.cfg.FailMarker):
		return Fail
	case timedOut:
		return Unexpected
	default:
		return Crash
	}
}

// RunAll runs all fixtures in order and logs their outcome. It stops early
// only if the context is cancelled.
func (r *Runner) RunAll(ctx context.Context, fixtures []string) ([]Result, error) {
	results := make([]Result, 0, len(fixtures))
	for _, fixture := range fixtures {
		result, err := r.Run(ctx, fixture)
		if err != nil {
			return results, fmt.Errorf("running %s: %w", fixture, err)
		}
		results = append(results, result)

		if result.Outcome == Pass {
			r.logger.Info("Fixture passed", log.String("fixture", fixture))
		} else {
			r.logger.Error("Fixture did not pass",
				log.String("fixture", fixture),
				log.Stringer("outcome", result.Outcome))
		}
	}
	return results, nil
}

// Passed returns whether all results passed.
func Passed(results []Result) bool {
	for _, result := range results {
		if result.Outcome != Pass {
			return false
		}
	}
	return true
}
