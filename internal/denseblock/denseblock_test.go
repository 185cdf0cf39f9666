package denseblock

import (
	"testing"

	"github.com/retroenv/opcodegen/internal/arch"
	"github.com/retroenv/opcodegen/internal/arch/sm83"
	"github.com/retroenv/opcodegen/internal/table"
	"github.com/retroenv/retrogolib/assert"
)

func TestGenerate(t *testing.T) {
	isa := sm83.New()
	block := arch.DenseBlock{Base: sm83.LoadBase, Mnemonic: "ld", Class: arch.R8}

	writes, err := Generate(block, isa)
	assert.NoError(t, err)
	assert.Equal(t, Entries, len(writes))

	for _, w := range writes {
		assert.Equal(t, table.DenseBlock, w.Phase)
		assert.True(t, w.Opcode >= 0x40 && w.Opcode <= 0x7f)
	}

	tests := []struct {
		opcode   uint8
		mnemonic string
	}{
		{0x40, "ld b, b"},
		{0x41, "ld b, c"},
		{0x47, "ld b, a"},
		{0x6e, "ld l, [hl]"},
		{0x70, "ld [hl], b"},
		{0x76, "ld [hl], [hl]"},
		{0x7f, "ld a, a"},
	}
	for _, tt := range tests {
		w := writes[tt.opcode-0x40]
		assert.Equal(t, tt.opcode, w.Opcode)
		assert.Equal(t, tt.mnemonic, w.Mnemonic)
	}
}

func TestGenerateErrors(t *testing.T) {
	isa := sm83.New()

	_, err := Generate(arch.DenseBlock{Base: 0x40, Mnemonic: "ld", Class: arch.Cond}, isa)
	assert.ErrorContains(t, err, "exactly 8 operands")

	_, err = Generate(arch.DenseBlock{Base: 0x48, Mnemonic: "ld", Class: arch.R8}, isa)
	assert.ErrorContains(t, err, "low 6 bits clear")
}

func TestGenerateAll(t *testing.T) {
	writes, err := GenerateAll(sm83.New())
	assert.NoError(t, err)
	assert.Equal(t, Entries, len(writes))
}
