package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/opcodegen/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags_Defaults(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"prog"}

	opts, err := ParseFlags()
	assert.NoError(t, err)
	assert.Equal(t, "", opts.Input)
	assert.Equal(t, "", opts.Output)
	assert.Equal(t, "", opts.Target)
	assert.Equal(t, "sm83", opts.ISA)
	assert.Equal(t, "Opcodes", opts.Name)
	assert.Equal(t, "opcodes", opts.Package)
	assert.Equal(t, 8, opts.PerLine)
	assert.False(t, opts.Verify)
}

//nolint:funlen // test functions can be long
func TestParseArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, opts options.Program)
	}{
		{
			name: "file options",
			args: []string{"-i", "rows.tsv", "-o", "out.rs"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, "rows.tsv", opts.Input)
				assert.Equal(t, "out.rs", opts.Output)
			},
		},
		{
			name: "target is lowercased",
			args: []string{"-t", "RUST"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, "rust", opts.Target)
			},
		},
		{
			name: "output formatting",
			args: []string{"-n", "Mnemonics", "-p", "sm83", "-l", "16"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, "Mnemonics", opts.Name)
				assert.Equal(t, "sm83", opts.Package)
				assert.Equal(t, 16, opts.PerLine)
			},
		},
		{
			name: "behavior flags",
			args: []string{"-verify", "-dump", "-debug", "-q"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.True(t, opts.Verify)
				assert.True(t, opts.Dump)
				assert.True(t, opts.Debug)
				assert.True(t, opts.Quiet)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseArgs("prog", tt.args)
			assert.NoError(t, err)
			tt.check(t, opts)
		})
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		usageError  bool
		errContains string
	}{
		{
			name:        "unknown flag",
			args:        []string{"-x"},
			usageError:  true,
			errContains: "flag provided but not defined",
		},
		{
			name:        "positional argument",
			args:        []string{"rows.tsv"},
			usageError:  true,
			errContains: "unexpected argument rows.tsv",
		},
		{
			name:        "unsupported target",
			args:        []string{"-t", "zig"},
			errContains: "unsupported target: zig",
		},
		{
			name:        "invalid array name",
			args:        []string{"-n", "opcode table"},
			errContains: "not a valid identifier",
		},
		{
			name:        "zero entries per line",
			args:        []string{"-l", "0"},
			errContains: "entries per line must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs("prog", tt.args)
			assert.Error(t, err)
			assert.ErrorContains(t, err, tt.errContains)

			var usageErr *UsageError
			assert.Equal(t, tt.usageError, errors.As(err, &usageErr))
		})
	}
}
