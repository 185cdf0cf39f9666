// Package loader handles template source loading operations.
package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/opcodegen/internal/arch"
	"github.com/retroenv/opcodegen/internal/options"
	"github.com/retroenv/opcodegen/internal/template"
)

// Loader handles loading template sources from disk or from the ISA defaults.
type Loader struct{}

// New creates a new template loader.
func New() *Loader {
	return &Loader{}
}

// Source is a loaded and classified template source.
type Source struct {
	Name      string // base name of the source file
	Templates []template.Template
}

// Load reads the template file given in the options. If no input file is
// set, the default templates embedded for the ISA are used.
func (l *Loader) Load(opts options.Program, isa *arch.ISA) (*Source, error) {
	if opts.Input == "" {
		return l.LoadFromBytes(isa.TemplatesName, isa.Templates, isa)
	}

	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	return l.load(filepath.Base(opts.Input), file, isa)
}

// LoadFromBytes parses a template source that is already in memory.
func (l *Loader) LoadFromBytes(name string, data []byte, isa *arch.ISA) (*Source, error) {
	return l.load(name, bytes.NewReader(data), isa)
}

func (l *Loader) load(name string, r io.Reader, isa *arch.ISA) (*Source, error) {
	templates, err := template.Parse(r, isa)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	return &Source{
		Name:      name,
		Templates: templates,
	}, nil
}
