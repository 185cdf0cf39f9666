// Package expander expands parametrized instruction templates into one
// opcode write per operand of the placeholder class.
package expander

import (
	"errors"
	"fmt"

	"github.com/retroenv/opcodegen/internal/arch"
	"github.com/retroenv/opcodegen/internal/table"
	"github.com/retroenv/opcodegen/internal/template"
)

// ErrNotParametrized is returned when a literal template is passed for expansion.
var ErrNotParametrized = errors.New("template has no placeholder")

// Expand enumerates every operand of the template's placeholder class. For
// operand index i the binary representation of i, zero padded to the class
// width, is written into the placeholder run of the bit columns and the
// placeholder token of the mnemonic is replaced by the operand name.
func Expand(t template.Template, isa *arch.ISA) ([]table.Write, error) {
	if t.Kind != template.Parametrized {
		return nil, fmt.Errorf("%w: '%s' at %s", ErrNotParametrized, t.Mnemonic, t.Source())
	}

	operands, err := isa.ClassOperands(t.Class)
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", t.Source(), err)
	}
	if width := arch.Width(len(operands)); width != t.RunWidth {
		return nil, fmt.Errorf("expanding %s: class %s needs %d columns, template run has %d",
			t.Source(), t.Class, width, t.RunWidth)
	}

	writes := make([]table.Write, 0, len(operands))
	for i, operand := range operands {
		bits := t.Bits
		for j := range t.RunWidth {
			shift := t.RunWidth - 1 - j
			bits[t.RunStart+j] = fmt.Sprint((i >> shift) & 1)
		}

		opcode, err := template.ParseBits(bits)
		if err != nil {
			return nil, fmt.Errorf("expanding %s operand %s: %w", t.Source(), operand, err)
		}

		writes = append(writes, table.Write{
			Opcode:   opcode,
			Mnemonic: t.Substitute(operand),
			Phase:    table.PlaceholderExpansion,
			Source:   t.Source(),
		})
	}
	return writes, nil
}

// ExpandAll expands all parametrized templates in order and ignores literal rows.
func ExpandAll(templates []template.Template, isa *arch.ISA) ([]table.Write, error) {
	var writes []table.Write
	for _, t := range templates {
		if t.Kind != template.Parametrized {
			continue
		}
		expanded, err := Expand(t, isa)
		if err != nil {
			return nil, err
		}
		writes = append(writes, expanded...)
	}
	return writes, nil
}

// Literals converts all literal templates to writes of the literal override phase.
func Literals(templates []template.Template) ([]table.Write, error) {
	var writes []table.Write
	for _, t := range templates {
		if t.Kind != template.Literal {
			continue
		}
		opcode, err := t.Opcode()
		if err != nil {
			return nil, err
		}
		writes = append(writes, table.Write{
			Opcode:   opcode,
			Mnemonic: t.Mnemonic,
			Phase:    table.LiteralOverride,
			Source:   t.Source(),
		})
	}
	return writes, nil
}
