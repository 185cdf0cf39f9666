// Package denseblock generates opcode ranges that are the full cross product
// of a destination and a source operand, without any template row.
package denseblock

import (
	"errors"
	"fmt"

	"github.com/retroenv/opcodegen/internal/arch"
	"github.com/retroenv/opcodegen/internal/table"
)

// Entries is the number of opcodes of a dense block.
const Entries = 64

const operandCount = 8

var (
	errClassSize = errors.New("dense block needs exactly 8 operands")
	errBase      = errors.New("dense block base must have its low 6 bits clear")
)

// Generate enumerates all destination and source combinations of the block.
// The opcode of destination d and source s is base | d<<3 | s.
func Generate(block arch.DenseBlock, isa *arch.ISA) ([]table.Write, error) {
	operands, err := isa.ClassOperands(block.Class)
	if err != nil {
		return nil, fmt.Errorf("dense block at $%02X: %w", block.Base, err)
	}
	if len(operands) != operandCount {
		return nil, fmt.Errorf("%w, class %s has %d", errClassSize, block.Class, len(operands))
	}
	if block.Base&0x3f != 0 {
		return nil, fmt.Errorf("%w, got $%02X", errBase, block.Base)
	}

	source := fmt.Sprintf("dense block $%02X", block.Base)
	writes := make([]table.Write, 0, Entries)
	for d, dest := range operands {
		for s, src := range operands {
			writes = append(writes, table.Write{
				Opcode:   block.Base | uint8(d<<3) | uint8(s),
				Mnemonic: fmt.Sprintf("%s %s, %s", block.Mnemonic, dest, src),
				Phase:    table.DenseBlock,
				Source:   source,
			})
		}
	}
	return writes, nil
}

// GenerateAll generates all dense blocks of the ISA.
func GenerateAll(isa *arch.ISA) ([]table.Write, error) {
	var writes []table.Write
	for _, block := range isa.DenseBlocks {
		generated, err := Generate(block, isa)
		if err != nil {
			return nil, err
		}
		writes = append(writes, generated...)
	}
	return writes, nil
}
