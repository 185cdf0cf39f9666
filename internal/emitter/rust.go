package emitter

import (
	"io"
	"strings"

	"github.com/retroenv/opcodegen/internal/options"
	"github.com/retroenv/opcodegen/internal/table"
	"github.com/retroenv/opcodegen/internal/writer"
)

type rust struct{}

// Emit writes the table as a public constant array of string slices.
func (rust) Emit(w io.Writer, t table.Table, opts options.Emitter) error {
	wr := writer.New(w, writer.Options{
		Indent:         "    ",
		EntriesPerLine: opts.PerLine,
	})

	if err := wr.Printf("// Code generated by opcodegen from %s; DO NOT EDIT.\n\n", sourceName(opts)); err != nil {
		return err
	}
	name := strings.ToUpper(snakeCase(opts.Name))
	if err := wr.Printf("pub const %s: [&str; %d] = [\n", name, table.Size); err != nil {
		return err
	}
	if err := wr.BundleEntries(t[:], nil); err != nil {
		return err
	}
	return wr.Printf("];\n")
}

// Parse returns the string literals of the first array in the source.
func (rust) Parse(src []byte) (table.Table, error) {
	entries, err := scanLiterals(src, '[', ']')
	if err != nil {
		return table.Table{}, err
	}
	return entriesToTable(entries)
}
