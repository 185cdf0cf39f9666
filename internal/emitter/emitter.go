// Package emitter serializes an opcode table as a fixed size array literal
// in the syntax of a target language, and parses emitted literals back.
package emitter

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/retroenv/opcodegen/internal/options"
	"github.com/retroenv/opcodegen/internal/table"
)

// Output targets.
const (
	Go   = "go"
	Rust = "rust"
	C    = "c"
)

// Targets lists all supported output targets.
var Targets = []string{Go, Rust, C}

var (
	// ErrUnknownTarget is returned for an unsupported output target.
	ErrUnknownTarget = errors.New("unsupported output target")
	// ErrNoTable is returned when parsed source does not contain a table literal.
	ErrNoTable = errors.New("no table literal found")
	// ErrEntryCount is returned when a parsed table literal does not have one entry per opcode.
	ErrEntryCount = errors.New("wrong number of table entries")
)

// Emitter writes and reads table literals of one target language.
type Emitter interface {
	// Emit writes the table as array literal source.
	Emit(w io.Writer, t table.Table, opts options.Emitter) error
	// Parse extracts the table from source written by Emit.
	Parse(src []byte) (table.Table, error)
}

// New returns the emitter for the given target.
func New(target string) (Emitter, error) {
	switch strings.ToLower(target) {
	case Go:
		return golang{}, nil
	case Rust:
		return rust{}, nil
	case C:
		return clang{}, nil
	default:
		return nil, fmt.Errorf("%w '%s', valid targets: %s", ErrUnknownTarget, target, strings.Join(Targets, ", "))
	}
}

// Parse extracts the table from source emitted for the given target.
func Parse(target string, src []byte) (table.Table, error) {
	e, err := New(target)
	if err != nil {
		return table.Table{}, err
	}
	return e.Parse(src)
}

func entriesToTable(entries []string) (table.Table, error) {
	var t table.Table
	if len(entries) != table.Size {
		return t, fmt.Errorf("%w: %d, expected %d", ErrEntryCount, len(entries), table.Size)
	}
	copy(t[:], entries)
	return t, nil
}

// snakeCase converts a Go style identifier like OpcodeNames to opcode_names.
func snakeCase(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 && name[i-1] != '_' {
				sb.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func sourceName(opts options.Emitter) string {
	if opts.Source == "" {
		return "templates"
	}
	return opts.Source
}
