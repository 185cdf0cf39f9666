// Package pipeline orchestrates the opcode table compilation workflow stages.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/retroenv/opcodegen/internal/arch"
	"github.com/retroenv/opcodegen/internal/arch/sm83"
	"github.com/retroenv/opcodegen/internal/detector"
	"github.com/retroenv/opcodegen/internal/emitter"
	"github.com/retroenv/opcodegen/internal/loader"
	"github.com/retroenv/opcodegen/internal/options"
	"github.com/retroenv/opcodegen/internal/table"
	"github.com/retroenv/opcodegen/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete compilation workflow.
type Pipeline struct {
	logger     *log.Logger
	detector   *detector.Detector
	loader     *loader.Loader
	dumpWriter io.Writer
}

// New creates a new compilation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:     logger,
		detector:   detector.New(logger),
		loader:     loader.New(),
		dumpWriter: os.Stderr,
	}
}

// Execute runs the complete compilation pipeline and writes the emitted
// source to the writer.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, writer io.Writer) (*table.Result, error) {
	isa, err := CreateISA(opts.ISA)
	if err != nil {
		return nil, fmt.Errorf("creating isa: %w", err)
	}

	src, err := p.loader.Load(opts, isa)
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	return p.ExecuteWithTemplates(ctx, src, isa, opts, writer)
}

// ExecuteWithTemplates runs the compilation pipeline with pre-loaded templates.
// This is useful for testing and programmatic usage where the templates are already in memory.
func (p *Pipeline) ExecuteWithTemplates(ctx context.Context, src *loader.Source, isa *arch.ISA,
	opts options.Program, writer io.Writer) (*table.Result, error) {

	target := p.detector.Detect(opts)
	em, err := emitter.New(target)
	if err != nil {
		return nil, fmt.Errorf("creating emitter: %w", err)
	}

	if opts.Dump {
		spew.Fdump(p.dumpWriter, src.Templates)
	}

	p.printInfo(opts, src, isa, target)

	result, err := Compile(ctx, src.Templates, isa)
	if err != nil {
		return nil, fmt.Errorf("compiling: %w", err)
	}
	p.logResult(result)

	buf := &bytes.Buffer{}
	if err := em.Emit(buf, result.Table, options.NewEmitter(opts, src.Name)); err != nil {
		return nil, fmt.Errorf("emitting: %w", err)
	}

	// Verify output (if requested)
	if opts.Verify {
		if err := verification.VerifyOutput(p.logger, target, buf.Bytes(), result.Table); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	if _, err := writer.Write(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}
	return result, nil
}

// CreateISA returns the description of the named instruction set.
func CreateISA(name string) (*arch.ISA, error) {
	var isa *arch.ISA

	switch strings.ToLower(name) {
	case sm83.Name, "":
		isa = sm83.New()
	default:
		return nil, fmt.Errorf("unsupported isa '%s'", name)
	}

	if err := isa.Validate(); err != nil {
		return nil, fmt.Errorf("validating isa %s: %w", isa.Name, err)
	}
	return isa, nil
}

// printInfo prints information about the templates being compiled.
func (p *Pipeline) printInfo(opts options.Program, src *loader.Source, isa *arch.ISA, target string) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Compiling opcode table",
		log.String("isa", isa.Name),
		log.String("templates", src.Name),
		log.Int("rows", len(src.Templates)),
		log.String("target", target),
	)
}

// logResult logs every cross phase override and the number of writes per phase.
func (p *Pipeline) logResult(result *table.Result) {
	for _, override := range result.Overrides {
		p.logger.Debug("Opcode overridden",
			log.Hex("opcode", override.Replacement.Opcode),
			log.String("previous", override.Previous.Mnemonic),
			log.Stringer("previous_phase", override.Previous.Phase),
			log.String("replacement", override.Replacement.Mnemonic),
			log.String("source", override.Replacement.Source),
		)
	}
	for _, phase := range table.Phases {
		p.logger.Debug("Phase applied",
			log.Stringer("phase", phase),
			log.Int("writes", result.Counts[phase]),
		)
	}
}
