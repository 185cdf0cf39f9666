package verification

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/opcodegen/internal/arch/sm83"
	"github.com/retroenv/opcodegen/internal/emitter"
	"github.com/retroenv/opcodegen/internal/options"
	"github.com/retroenv/opcodegen/internal/table"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func emit(t *testing.T, target string, tbl table.Table) []byte {
	t.Helper()
	e, err := emitter.New(target)
	assert.NoError(t, err)

	buf := &bytes.Buffer{}
	err = e.Emit(buf, tbl, options.Emitter{Name: "Opcodes", Package: "sm83", PerLine: 8})
	assert.NoError(t, err)
	return buf.Bytes()
}

func TestVerifyOutput(t *testing.T) {
	logger := log.NewTestLogger(t)
	tbl := table.Table(sm83.Opcodes)

	for _, target := range emitter.Targets {
		t.Run(target, func(t *testing.T) {
			output := emit(t, target, tbl)
			assert.NoError(t, VerifyOutput(logger, target, output, tbl))
		})
	}
}

func TestVerifyOutputMismatch(t *testing.T) {
	// mismatches are logged at error level, which fails tests using the test logger
	logs := &bytes.Buffer{}
	cfg := log.DefaultConfig()
	cfg.Output = logs
	cfg.TimeFormat = "-"
	logger := log.NewWithConfig(cfg)

	tbl := table.Table(sm83.Opcodes)
	output := emit(t, emitter.Rust, tbl)

	changed := tbl
	changed[0x76] = "ld [hl], [hl]"
	changed[0x00] = "nope"

	err := VerifyOutput(logger, emitter.Rust, output, changed)
	assert.ErrorContains(t, err, "2 opcode mismatches")

	logged := logs.String()
	assert.Equal(t, 2, strings.Count(logged, "Opcode mismatch"))
	assert.Contains(t, logged, `"opcode":"0x00","expected":"nope","got":"nop"`)
	assert.Contains(t, logged, `"opcode":"0x76","expected":"ld [hl], [hl]","got":"halt"`)
}

func TestVerifyOutputUnparsable(t *testing.T) {
	logger := log.NewTestLogger(t)

	err := VerifyOutput(logger, emitter.Go, []byte("not go"), table.Table{})
	assert.ErrorContains(t, err, "parsing go output")
}
