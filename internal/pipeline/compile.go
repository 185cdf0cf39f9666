package pipeline

import (
	"context"
	"fmt"

	"github.com/retroenv/opcodegen/internal/arch"
	"github.com/retroenv/opcodegen/internal/denseblock"
	"github.com/retroenv/opcodegen/internal/expander"
	"github.com/retroenv/opcodegen/internal/table"
	"github.com/retroenv/opcodegen/internal/template"
)

// Compile generates the writes of all phases for the templates and folds
// them into a total opcode table. The context is checked between the stages.
func Compile(ctx context.Context, templates []template.Template, isa *arch.ISA) (*table.Result, error) {
	stages := []struct {
		name     string
		generate func() ([]table.Write, error)
	}{
		{"generating dense blocks", func() ([]table.Write, error) { return denseblock.GenerateAll(isa) }},
		{"expanding templates", func() ([]table.Write, error) { return expander.ExpandAll(templates, isa) }},
		{"converting literal templates", func() ([]table.Write, error) { return expander.Literals(templates) }},
	}

	var writes []table.Write
	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		generated, err := stage.generate()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", stage.name, err)
		}
		writes = append(writes, generated...)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result, err := table.Assemble(writes, isa.Undefined)
	if err != nil {
		return nil, fmt.Errorf("assembling table: %w", err)
	}
	return result, nil
}
