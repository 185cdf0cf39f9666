package sm83

import (
	"testing"

	"github.com/retroenv/opcodegen/internal/arch"
	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	isa := New()
	assert.NoError(t, isa.Validate())
	assert.Equal(t, Name, isa.Name)
	assert.NotEmpty(t, isa.Templates)

	for _, class := range arch.Classes {
		_, err := isa.ClassOperands(class)
		assert.NoError(t, err, "class %s", class)
	}
}

func TestClassWidths(t *testing.T) {
	isa := New()
	expected := map[arch.Class]int{
		arch.R8:     3,
		arch.R16:    2,
		arch.R16Stk: 2,
		arch.R16Mem: 2,
		arch.Cond:   2,
	}
	for class, width := range expected {
		got, err := isa.ClassWidth(class)
		assert.NoError(t, err)
		assert.Equal(t, width, got, "class %s", class)
	}
}

func TestOpcodes(t *testing.T) {
	assert.Equal(t, "halt", Opcodes[Halt])
	assert.Equal(t, "prefix cb", Opcodes[Prefix])
	assert.Equal(t, "ld b, b", Opcodes[LoadBase])
	assert.Equal(t, "ld a, a", Opcodes[0x7f])

	for _, opcode := range Undefined {
		assert.Equal(t, "undefined", Opcodes[opcode])
	}
	for i, mnemonic := range Opcodes {
		assert.NotEmpty(t, mnemonic, "opcode %02x", i)
	}
}
