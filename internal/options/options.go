// Package options contains the program options.
package options

import "strings"

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"template source file (default: embedded templates of the ISA)"`
	Output string `flag:"o" usage:"output source file (default: stdout)"`
}

// Flags contains behavior options.
type Flags struct {
	ISA    string `flag:"isa" usage:"instruction set to compile" default:"sm83"`
	Target string `flag:"t" usage:"output language: go, rust, c (default: auto-detect)"`
	Verify bool   `flag:"verify" usage:"verify output by parsing it back and comparing to the table"`
	Dump   bool   `flag:"dump" usage:"dump the loaded templates"`
	Debug  bool   `flag:"debug" usage:"enable debug logging"`
	Quiet  bool   `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	Name    string `flag:"n" usage:"name of the emitted array" default:"Opcodes"`
	Package string `flag:"p" usage:"package name of go output" default:"opcodes"`
	PerLine int    `flag:"l" usage:"table entries per output line" default:"8"`
}

// Program options of the opcode table compiler.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// Emitter defines options to control the emitted source.
type Emitter struct {
	Name    string // array name
	Package string // package name, only used by go output
	PerLine int    // table entries per output line
	Source  string // name of the template source, written to the header
}

// NewEmitter returns emitter options based on the program options.
func NewEmitter(opts Program, source string) Emitter {
	return Emitter{
		Name:    opts.Name,
		Package: strings.ToLower(opts.Package),
		PerLine: opts.PerLine,
		Source:  source,
	}
}
