package emitter

import (
	"fmt"
	"io"

	"github.com/retroenv/opcodegen/internal/options"
	"github.com/retroenv/opcodegen/internal/table"
	"github.com/retroenv/opcodegen/internal/writer"
)

type clang struct{}

// Emit writes the table as a static array of constant strings. Every line is
// followed by a comment with the opcode of its first entry.
func (clang) Emit(w io.Writer, t table.Table, opts options.Emitter) error {
	wr := writer.New(w, writer.Options{
		Indent:         "    ",
		EntriesPerLine: opts.PerLine,
	})

	if err := wr.Printf("/* Code generated by opcodegen from %s; DO NOT EDIT. */\n\n", sourceName(opts)); err != nil {
		return err
	}
	if err := wr.Printf("static const char *const %s[%d] = {\n", snakeCase(opts.Name), table.Size); err != nil {
		return err
	}

	opcode := 0
	lineWriter := func(line string, entryCount int) error {
		if err := wr.Printf("%s /* 0x%02X */\n", line, opcode); err != nil {
			return err
		}
		opcode += entryCount
		return nil
	}
	if err := wr.BundleEntries(t[:], lineWriter); err != nil {
		return err
	}
	return wr.Printf("};\n")
}

// Parse returns the string literals of the first initializer list in the source.
func (clang) Parse(src []byte) (table.Table, error) {
	entries, err := scanLiterals(src, '{', '}')
	if err != nil {
		return table.Table{}, fmt.Errorf("parsing c source: %w", err)
	}
	return entriesToTable(entries)
}
