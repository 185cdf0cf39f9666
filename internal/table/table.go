// Package table assembles opcode to mnemonic writes into a total 256 entry table.
package table

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/retroenv/retrogolib/set"
)

// Size is the number of entries of an opcode table.
const Size = 256

// Undefined is the mnemonic of opcodes that the CPU does not define.
const Undefined = "undefined"

// ErrInvalidPhase is returned for a write that does not belong to a known phase.
var ErrInvalidPhase = errors.New("invalid generation phase")

// Table maps every opcode byte to its mnemonic.
type Table [Size]string

// Phase defines the order in which writes are applied. A write of a later
// phase replaces a write of an earlier phase for the same opcode.
type Phase int

// Generation phases, in application order.
const (
	DenseBlock Phase = iota
	PlaceholderExpansion
	LiteralOverride
)

// Phases lists all phases in application order.
var Phases = []Phase{DenseBlock, PlaceholderExpansion, LiteralOverride}

var phaseNames = map[Phase]string{
	DenseBlock:           "dense block",
	PlaceholderExpansion: "placeholder expansion",
	LiteralOverride:      "literal override",
}

func (p Phase) String() string {
	name, ok := phaseNames[p]
	if !ok {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return name
}

// Write assigns a mnemonic to an opcode.
type Write struct {
	Opcode   uint8
	Mnemonic string
	Phase    Phase
	Source   string // origin of the write, used in error messages
}

func (w Write) String() string {
	return fmt.Sprintf("$%02X '%s' (%s, %s)", w.Opcode, w.Mnemonic, w.Phase, w.Source)
}

// Override records a write that replaced a write of an earlier phase.
type Override struct {
	Previous    Write
	Replacement Write
}

// Result is the outcome of assembling a table.
type Result struct {
	Table     Table
	Overrides []Override
	Counts    map[Phase]int // number of writes per phase
}

// Seed returns a table that has every entry set to a debug marker unique to
// its index, the lowercase hex value of the index.
func Seed() Table {
	var t Table
	for i := range t {
		t[i] = SeedMarker(uint8(i))
	}
	return t
}

// SeedMarker returns the debug marker of an unassigned opcode.
func SeedMarker(opcode uint8) string {
	return fmt.Sprintf("%02x", opcode)
}

// Assemble applies the writes to a seeded table in phase order. Writes of the
// same phase must not target the same opcode. After all phases, opcodes listed
// as undefined that were not written are set to Undefined; any other opcode
// without a write results in a CoverageError.
func Assemble(writes []Write, undefined []uint8) (*Result, error) {
	ordered := slices.Clone(writes)
	for _, w := range ordered {
		if _, ok := phaseNames[w.Phase]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPhase, w)
		}
	}
	slices.SortStableFunc(ordered, func(a, b Write) int {
		return int(a.Phase) - int(b.Phase)
	})

	res := &Result{
		Table:  Seed(),
		Counts: map[Phase]int{},
	}
	var owners [Size]*Write
	written := set.New[uint8]()

	for i := range ordered {
		w := &ordered[i]
		previous := owners[w.Opcode]

		if previous != nil {
			if previous.Phase == w.Phase {
				return nil, &CollisionError{First: *previous, Second: *w}
			}
			res.Overrides = append(res.Overrides, Override{Previous: *previous, Replacement: *w})
		}

		owners[w.Opcode] = w
		written.Add(w.Opcode)
		res.Table[w.Opcode] = w.Mnemonic
		res.Counts[w.Phase]++
	}

	undefinedSet := set.New[uint8]()
	for _, opcode := range undefined {
		undefinedSet.Add(opcode)
		if written.Contains(opcode) {
			return nil, &UndefinedConflictError{Write: *owners[opcode]}
		}
		res.Table[opcode] = Undefined
	}

	var missing []uint8
	for i := range Size {
		opcode := uint8(i)
		if !written.Contains(opcode) && !undefinedSet.Contains(opcode) {
			missing = append(missing, opcode)
		}
	}
	if len(missing) > 0 {
		return nil, &CoverageError{Missing: missing}
	}

	return res, nil
}

// CollisionError is returned when two writes of the same phase target the same opcode.
type CollisionError struct {
	First  Write
	Second Write
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("opcode $%02X written twice in %s phase: %s and %s",
		e.First.Opcode, e.First.Phase, e.First, e.Second)
}

// UndefinedConflictError is returned when an opcode declared as undefined is written.
type UndefinedConflictError struct {
	Write Write
}

func (e *UndefinedConflictError) Error() string {
	return fmt.Sprintf("opcode $%02X is declared undefined but written by %s", e.Write.Opcode, e.Write)
}

// CoverageError is returned when opcodes are left without a mnemonic.
type CoverageError struct {
	Missing []uint8
}

func (e *CoverageError) Error() string {
	opcodes := make([]string, 0, len(e.Missing))
	for _, opcode := range e.Missing {
		opcodes = append(opcodes, fmt.Sprintf("$%02X", opcode))
	}
	return fmt.Sprintf("%d opcodes have no mnemonic: %s", len(e.Missing), strings.Join(opcodes, ", "))
}
