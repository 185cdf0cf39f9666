package detector

import (
	"testing"

	"github.com/retroenv/opcodegen/internal/emitter"
	"github.com/retroenv/opcodegen/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name       string
		targetOpt  string
		outputFile string
		wantTarget string
	}{
		{
			name:       "explicit rust target option",
			targetOpt:  "rust",
			outputFile: "opcodes.go",
			wantTarget: emitter.Rust,
		},
		{
			name:       "explicit target option is lowercased",
			targetOpt:  "C",
			outputFile: "",
			wantTarget: emitter.C,
		},
		{
			name:       "detect from .rs extension",
			outputFile: "src/opcodes.rs",
			wantTarget: emitter.Rust,
		},
		{
			name:       "console output defaults to go",
			outputFile: "",
			wantTarget: emitter.Go,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.Program{
				Parameters: options.Parameters{Output: tt.outputFile},
				Flags:      options.Flags{Target: tt.targetOpt},
			}

			got := d.Detect(opts)
			assert.Equal(t, tt.wantTarget, got)
		})
	}
}

func TestDetectFromFile(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name       string
		filename   string
		wantTarget string
	}{
		{
			name:       ".go extension",
			filename:   "opcodes_gen.go",
			wantTarget: emitter.Go,
		},
		{
			name:       ".RS extension (uppercase)",
			filename:   "OPCODES.RS",
			wantTarget: emitter.Rust,
		},
		{
			name:       ".c extension",
			filename:   "opcodes.c",
			wantTarget: emitter.C,
		},
		{
			name:       ".h extension",
			filename:   "opcodes.h",
			wantTarget: emitter.C,
		},
		{
			name:       "no extension",
			filename:   "opcodes",
			wantTarget: emitter.Go,
		},
		{
			name:       ".txt extension",
			filename:   "opcodes.txt",
			wantTarget: emitter.Go,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.detectFromFile(tt.filename)
			assert.Equal(t, tt.wantTarget, got)
		})
	}
}
