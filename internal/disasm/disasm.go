// Package disasm implements a linear SM83 disassembler that decodes
// instructions using a generated opcode table.
package disasm

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/opcodegen/internal/arch/sm83"
	"github.com/retroenv/retrogolib/log"
)

// Operand placeholders of the mnemonics in the opcode table.
const (
	Imm8  = "imm8"
	Imm16 = "imm16"
)

// Instruction is a single decoded instruction.
type Instruction struct {
	Address uint16
	Bytes   []byte
	Text    string
}

// String returns the instruction formatted as a listing line.
func (i Instruction) String() string {
	hexBytes := make([]string, len(i.Bytes))
	for j, b := range i.Bytes {
		hexBytes[j] = fmt.Sprintf("%02X", b)
	}
	return fmt.Sprintf("%04X: %-8s  %s", i.Address, strings.Join(hexBytes, " "), i.Text)
}

// Decode decodes the instruction at the given offset of the code. The imm8
// operand is replaced by the following byte, the imm16 operand by the
// following two bytes in little endian order. If the code ends before all
// operand bytes are available, the first byte is returned as data.
func Decode(code []byte, offset int, base uint16, opcodes *[256]string) Instruction {
	opcode := code[offset]
	address := base + uint16(offset)
	text := opcodes[opcode]
	remaining := code[offset+1:]

	size := 1
	switch {
	case opcode == sm83.Prefix:
		size = 2
	case strings.Contains(text, Imm16):
		size = 3
	case strings.Contains(text, Imm8):
		size = 2
	}

	if size-1 > len(remaining) {
		return Instruction{
			Address: address,
			Bytes:   code[offset : offset+1],
			Text:    fmt.Sprintf("db $%02X", opcode),
		}
	}

	switch {
	case opcode == sm83.Prefix:
		text = fmt.Sprintf("%s $%02X", text, remaining[0])
	case size == 3:
		value := uint16(remaining[0]) | uint16(remaining[1])<<8
		text = strings.Replace(text, Imm16, fmt.Sprintf("$%04X", value), 1)
	case size == 2:
		text = strings.Replace(text, Imm8, fmt.Sprintf("$%02X", remaining[0]), 1)
	}

	return Instruction{
		Address: address,
		Bytes:   code[offset : offset+size],
		Text:    text,
	}
}

// Disassemble decodes the code linearly, starting at the given base address.
func Disassemble(code []byte, base uint16, opcodes *[256]string) []Instruction {
	var instructions []Instruction
	for offset := 0; offset < len(code); {
		ins := Decode(code, offset, base, opcodes)
		instructions = append(instructions, ins)
		offset += len(ins.Bytes)
	}
	return instructions
}

// Disasm implements a linear disassembler that writes a listing.
type Disasm struct {
	logger  *log.Logger
	opcodes *[256]string
}

// New creates a new disassembler that decodes using the given opcode table.
func New(logger *log.Logger, opcodes *[256]string) *Disasm {
	return &Disasm{
		logger:  logger,
		opcodes: opcodes,
	}
}

// Process disassembles the code and writes one listing line per instruction.
func (dis *Disasm) Process(ctx context.Context, w io.Writer, code []byte, base uint16) error {
	instructions := Disassemble(code, base, dis.opcodes)
	dis.logger.Debug("Decoded instructions",
		log.Hex("address", base),
		log.Int("bytes", len(code)),
		log.Int("instructions", len(instructions)))

	for _, ins := range instructions {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, ins.String()); err != nil {
			return fmt.Errorf("writing instruction: %w", err)
		}
	}
	return nil
}
