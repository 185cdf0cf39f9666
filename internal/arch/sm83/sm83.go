// Package sm83 describes the single-byte instruction encoding of the Sharp SM83,
// the CPU core of the Game Boy.
package sm83

import (
	_ "embed"

	"github.com/retroenv/opcodegen/internal/arch"
)

//go:generate go run ../../.. -isa sm83 -t go -p sm83 -n Opcodes -o opcodes_gen.go -q

// Name is the name of the ISA as used on the command line.
const Name = "sm83"

// TemplatesName is the file name of the embedded template source.
const TemplatesName = "templates.tsv"

//go:embed templates.tsv
var templates []byte

// LoadBase is the opcode of the first ld r8, r8 instruction.
const LoadBase = 0x40

// Halt is the opcode that the ld [hl], [hl] combination of the load block decodes as.
const Halt = 0x76

// Prefix is the opcode that selects the CB-prefixed instruction table.
const Prefix = 0xcb

// Operand names of the placeholder classes, ordered by their encoding.
var (
	R8     = []string{"b", "c", "d", "e", "h", "l", "[hl]", "a"}
	R16    = []string{"bc", "de", "hl", "sp"}
	R16Stk = []string{"bc", "de", "hl", "af"}
	R16Mem = []string{"bc", "de", "hl+", "hl-"}
	Cond   = []string{"nz", "z", "nc", "c"}
)

// Undefined lists the opcodes that lock up the CPU.
var Undefined = []uint8{0xd3, 0xdb, 0xdd, 0xe3, 0xe4, 0xeb, 0xec, 0xed, 0xf4, 0xfc, 0xfd}

// New returns the SM83 ISA description.
func New() *arch.ISA {
	return &arch.ISA{
		Name: Name,
		Operands: map[arch.Class][]string{
			arch.R8:     R8,
			arch.R16:    R16,
			arch.R16Stk: R16Stk,
			arch.R16Mem: R16Mem,
			arch.Cond:   Cond,
		},
		DenseBlocks: []arch.DenseBlock{
			{Base: LoadBase, Mnemonic: "ld", Class: arch.R8},
		},
		Undefined:     Undefined,
		Templates:     templates,
		TemplatesName: TemplatesName,
	}
}
