// Package arch contains the types that describe the single-byte instruction
// encoding of a CPU: its placeholder classes, their operand names and the
// parts of the opcode space that are generated without templates.
// The architecture specific definitions live in sub packages.
package arch

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/retroenv/retrogolib/set"
)

var (
	errNoOperands         = errors.New("class has no operands")
	errDuplicateOperand   = errors.New("duplicate operand name")
	errUnknownClass       = errors.New("unknown placeholder class")
	errDenseBlockClass    = errors.New("dense block needs an 8-way operand class")
	errDenseBlockBase     = errors.New("dense block base must have its low 6 bits clear")
	errDuplicateUndefined = errors.New("undefined opcode listed more than once")
)

// Class is a tagged kind of instruction placeholder. A placeholder stands for
// a family of interchangeable operands that share a fixed width bit encoding.
type Class int

// Placeholder classes, in the order they are matched against mnemonic tokens.
const (
	NoClass Class = iota
	R8            // 8-way register
	R16           // 16-bit register pair
	R16Stk        // 16-bit stack pair
	R16Mem        // 16-bit memory pair
	Cond          // condition code
)

// Classes lists all placeholder classes.
var Classes = []Class{R8, R16, R16Stk, R16Mem, Cond}

var classNames = map[Class]string{
	R8:     "r8",
	R16:    "r16",
	R16Stk: "r16stk",
	R16Mem: "r16mem",
	Cond:   "cond",
}

// String returns the placeholder token of the class as it appears in templates.
func (c Class) String() string {
	name, ok := classNames[c]
	if !ok {
		return fmt.Sprintf("class(%d)", int(c))
	}
	return name
}

// ClassFromName returns the class for the given placeholder token.
// The match is exact, "r16stk" never matches the "r16" class.
func ClassFromName(name string) (Class, bool) {
	for _, class := range Classes {
		if classNames[class] == name {
			return class, true
		}
	}
	return NoClass, false
}

// Width returns the number of bits needed to encode count options,
// which is ceil(log2(count)).
func Width(count int) int {
	if count <= 1 {
		return 0
	}
	return bits.Len(uint(count - 1))
}

// DenseBlock describes a range of the opcode space that is the full cross
// product of a destination and a source operand of the same 8-way class.
type DenseBlock struct {
	Base     uint8  // first opcode of the block
	Mnemonic string // instruction name written before the operands
	Class    Class  // operand class of both destination and source
}

// ISA describes the single-byte encoding of one CPU.
type ISA struct {
	Name string

	// Operands contains the ordered operand names of every placeholder class,
	// the index of a name is its bit encoding.
	Operands map[Class][]string

	// DenseBlocks are generated by direct enumeration before any template.
	DenseBlocks []DenseBlock

	// Undefined lists the opcodes that the CPU does not define.
	Undefined []uint8

	// Templates is the default template source of the ISA.
	Templates []byte
	// TemplatesName is the file name of the default template source.
	TemplatesName string
}

// ClassOperands returns the operand names of a class.
func (isa *ISA) ClassOperands(class Class) ([]string, error) {
	names, ok := isa.Operands[class]
	if !ok || len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", errNoOperands, class)
	}
	return names, nil
}

// ClassWidth returns the encoding bit width of a class.
func (isa *ISA) ClassWidth(class Class) (int, error) {
	names, err := isa.ClassOperands(class)
	if err != nil {
		return 0, err
	}
	return Width(len(names)), nil
}

// UndefinedSet returns the undefined opcodes as a set.
func (isa *ISA) UndefinedSet() set.Set[uint8] {
	undefined := set.New[uint8]()
	for _, opcode := range isa.Undefined {
		undefined.Add(opcode)
	}
	return undefined
}

// Validate checks the ISA definition for consistency.
func (isa *ISA) Validate() error {
	for class, names := range isa.Operands {
		if _, ok := classNames[class]; !ok {
			return fmt.Errorf("%w: %s", errUnknownClass, class)
		}
		if len(names) == 0 {
			return fmt.Errorf("%w: %s", errNoOperands, class)
		}
		seen := set.New[string]()
		for _, name := range names {
			if seen.Contains(name) {
				return fmt.Errorf("%w '%s' in class %s", errDuplicateOperand, name, class)
			}
			seen.Add(name)
		}
	}

	for _, block := range isa.DenseBlocks {
		width, err := isa.ClassWidth(block.Class)
		if err != nil {
			return fmt.Errorf("dense block at $%02X: %w", block.Base, err)
		}
		if width != 3 {
			return fmt.Errorf("%w, got %s with width %d", errDenseBlockClass, block.Class, width)
		}
		if block.Base&0x3f != 0 {
			return fmt.Errorf("%w, got $%02X", errDenseBlockBase, block.Base)
		}
	}

	if len(isa.UndefinedSet()) != len(isa.Undefined) {
		return errDuplicateUndefined
	}
	return nil
}
