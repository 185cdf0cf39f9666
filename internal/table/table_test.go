package table

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// fill returns writes that cover every opcode except the given ones.
func fill(phase Phase, except ...uint8) []Write {
	skip := map[uint8]bool{}
	for _, opcode := range except {
		skip[opcode] = true
	}

	var writes []Write
	for i := range Size {
		if skip[uint8(i)] {
			continue
		}
		writes = append(writes, Write{Opcode: uint8(i), Mnemonic: "fill", Phase: phase, Source: "test"})
	}
	return writes
}

func TestSeed(t *testing.T) {
	seeded := Seed()
	assert.Equal(t, "00", seeded[0x00])
	assert.Equal(t, "c7", seeded[0xc7])
	assert.Equal(t, "ff", seeded[0xff])
}

func TestAssemblePhaseOrder(t *testing.T) {
	writes := fill(DenseBlock)
	// listed in reverse phase order to check that the order of the writes does not matter
	writes = append([]Write{
		{Opcode: 0x76, Mnemonic: "halt", Phase: LiteralOverride, Source: "line 2"},
		{Opcode: 0x76, Mnemonic: "expanded", Phase: PlaceholderExpansion, Source: "line 1"},
	}, writes...)

	res, err := Assemble(writes, nil)
	assert.NoError(t, err)
	assert.Equal(t, "halt", res.Table[0x76])
	assert.Equal(t, "fill", res.Table[0x75])

	assert.Equal(t, 2, len(res.Overrides))
	assert.Equal(t, "fill", res.Overrides[0].Previous.Mnemonic)
	assert.Equal(t, "expanded", res.Overrides[0].Replacement.Mnemonic)
	assert.Equal(t, "expanded", res.Overrides[1].Previous.Mnemonic)
	assert.Equal(t, "halt", res.Overrides[1].Replacement.Mnemonic)

	assert.Equal(t, Size, res.Counts[DenseBlock])
	assert.Equal(t, 1, res.Counts[PlaceholderExpansion])
	assert.Equal(t, 1, res.Counts[LiteralOverride])
}

func TestAssembleCollision(t *testing.T) {
	writes := fill(PlaceholderExpansion)
	writes = append(writes, Write{Opcode: 0x10, Mnemonic: "stop", Phase: PlaceholderExpansion, Source: "line 9"})

	_, err := Assemble(writes, nil)
	var collisionErr *CollisionError
	assert.True(t, errors.As(err, &collisionErr))
	assert.Equal(t, uint8(0x10), collisionErr.First.Opcode)
	assert.Equal(t, "fill", collisionErr.First.Mnemonic)
	assert.Equal(t, "stop", collisionErr.Second.Mnemonic)
	assert.ErrorContains(t, err, "opcode $10 written twice in placeholder expansion phase")
}

func TestAssembleCoverage(t *testing.T) {
	_, err := Assemble(fill(LiteralOverride, 0x00, 0xfe), nil)
	var coverageErr *CoverageError
	assert.True(t, errors.As(err, &coverageErr))
	assert.Equal(t, 2, len(coverageErr.Missing))
	assert.Equal(t, uint8(0x00), coverageErr.Missing[0])
	assert.Equal(t, uint8(0xfe), coverageErr.Missing[1])
	assert.ErrorContains(t, err, "2 opcodes have no mnemonic: $00, $FE")
}

func TestAssembleUndefined(t *testing.T) {
	res, err := Assemble(fill(LiteralOverride, 0xd3, 0xdb), []uint8{0xd3, 0xdb})
	assert.NoError(t, err)
	assert.Equal(t, Undefined, res.Table[0xd3])
	assert.Equal(t, Undefined, res.Table[0xdb])

	_, err = Assemble(fill(LiteralOverride), []uint8{0xd3})
	var conflictErr *UndefinedConflictError
	assert.True(t, errors.As(err, &conflictErr))
	assert.Equal(t, uint8(0xd3), conflictErr.Write.Opcode)
}

func TestAssembleInvalidPhase(t *testing.T) {
	writes := fill(DenseBlock)
	writes[3].Phase = Phase(7)

	_, err := Assemble(writes, nil)
	assert.True(t, errors.Is(err, ErrInvalidPhase))
}

func TestAssembleDoesNotModifyInput(t *testing.T) {
	writes := []Write{
		{Opcode: 1, Mnemonic: "b", Phase: LiteralOverride},
		{Opcode: 1, Mnemonic: "a", Phase: DenseBlock},
	}
	_, _ = Assemble(writes, nil)
	assert.Equal(t, "b", writes[0].Mnemonic)
	assert.Equal(t, "a", writes[1].Mnemonic)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "dense block", DenseBlock.String())
	assert.Equal(t, "literal override", LiteralOverride.String())
	assert.Equal(t, "phase(9)", Phase(9).String())
}
