// Package detector handles output target detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/opcodegen/internal/emitter"
	"github.com/retroenv/opcodegen/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles output target detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new target detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the output target from options or file auto-detection.
// It first checks if a target is explicitly specified in options, otherwise
// attempts to detect the target from the output filename extension.
func (d *Detector) Detect(opts options.Program) string {
	if opts.Target != "" {
		return strings.ToLower(opts.Target)
	}

	target := d.detectFromFile(opts.Output)
	d.logger.Debug("Auto-detected target",
		log.String("target", target),
		log.String("file", opts.Output))
	return target
}

// detectFromFile determines the output target based on file extension.
func (d *Detector) detectFromFile(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".rs":
		return emitter.Rust
	case ".c", ".h":
		return emitter.C
	default:
		// stdout and unknown extensions get go output
		return emitter.Go
	}
}
