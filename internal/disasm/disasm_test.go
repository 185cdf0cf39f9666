package disasm

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/retroenv/opcodegen/internal/arch/sm83"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		code      []byte
		wantText  string
		wantBytes int
	}{
		{
			name:      "no operand",
			code:      []byte{0x00},
			wantText:  "nop",
			wantBytes: 1,
		},
		{
			name:      "imm8 operand",
			code:      []byte{0x3e, 0x42},
			wantText:  "ld a, $42",
			wantBytes: 2,
		},
		{
			name:      "imm16 operand is little endian",
			code:      []byte{0xc3, 0x50, 0x01},
			wantText:  "jp $0150",
			wantBytes: 3,
		},
		{
			name:      "imm8 in the middle of the mnemonic",
			code:      []byte{0xe0, 0x40},
			wantText:  "ldh [$40], a",
			wantBytes: 2,
		},
		{
			name:      "prefix consumes the following byte",
			code:      []byte{0xcb, 0x37},
			wantText:  "prefix cb $37",
			wantBytes: 2,
		},
		{
			name:      "truncated operand",
			code:      []byte{0x01, 0x34},
			wantText:  "db $01",
			wantBytes: 1,
		},
		{
			name:      "undefined opcode",
			code:      []byte{0xd3},
			wantText:  "undefined",
			wantBytes: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := Decode(tt.code, 0, 0x100, &sm83.Opcodes)
			assert.Equal(t, tt.wantText, ins.Text)
			assert.Equal(t, tt.wantBytes, len(ins.Bytes))
			assert.Equal(t, uint16(0x100), ins.Address)
		})
	}
}

func TestDisassemble(t *testing.T) {
	code := []byte{
		0x00,             // nop
		0xc3, 0x50, 0x01, // jp $0150
		0x20, 0xfe, // jr nz, $FE
		0x76, // halt
		0x18, // jr imm8, truncated
	}

	instructions := Disassemble(code, 0x100, &sm83.Opcodes)
	assert.Equal(t, 5, len(instructions))

	expected := []struct {
		address uint16
		text    string
	}{
		{0x100, "nop"},
		{0x101, "jp $0150"},
		{0x104, "jr nz, $FE"},
		{0x106, "halt"},
		{0x107, "db $18"},
	}
	for i, exp := range expected {
		assert.Equal(t, exp.address, instructions[i].Address)
		assert.Equal(t, exp.text, instructions[i].Text)
	}
}

func TestInstructionString(t *testing.T) {
	ins := Instruction{Address: 0x0150, Bytes: []byte{0xc3, 0x00, 0x02}, Text: "jp $0200"}
	assert.Equal(t, "0150: C3 00 02  jp $0200", ins.String())
}

func TestProcess(t *testing.T) {
	dis := New(log.NewTestLogger(t), &sm83.Opcodes)

	buf := &bytes.Buffer{}
	err := dis.Process(context.Background(), buf, []byte{0x00, 0x3c, 0xc9}, 0x0200)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, 3, len(lines))
	assert.Equal(t, "0200: 00        nop", lines[0])
	assert.Equal(t, "0201: 3C        inc a", lines[1])
	assert.Equal(t, "0202: C9        ret", lines[2])
}

func TestProcessCancelled(t *testing.T) {
	dis := New(log.NewTestLogger(t), &sm83.Opcodes)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := dis.Process(ctx, &bytes.Buffer{}, []byte{0x00}, 0)
	assert.ErrorContains(t, err, "context canceled")
}
