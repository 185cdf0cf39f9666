package emitter

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"io"
	"strconv"

	"github.com/retroenv/opcodegen/internal/options"
	"github.com/retroenv/opcodegen/internal/table"
	"github.com/retroenv/opcodegen/internal/writer"
)

type golang struct{}

// Emit writes a gofmt formatted Go source file that declares the table as
// a package level [256]string variable.
func (golang) Emit(w io.Writer, t table.Table, opts options.Emitter) error {
	buf := &bytes.Buffer{}
	wr := writer.New(buf, writer.Options{
		Indent:         "\t",
		EntriesPerLine: opts.PerLine,
	})

	if err := wr.Printf("// Code generated by opcodegen from %s; DO NOT EDIT.\n\npackage %s\n\n",
		sourceName(opts), opts.Package); err != nil {
		return err
	}
	if err := wr.Printf("// %s maps every opcode byte to its mnemonic.\nvar %s = [%d]string{\n",
		opts.Name, opts.Name, table.Size); err != nil {
		return err
	}
	if err := wr.BundleEntries(t[:], nil); err != nil {
		return err
	}
	if err := wr.Printf("}\n"); err != nil {
		return err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting go source: %w", err)
	}
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("writing go source: %w", err)
	}
	return nil
}

// Parse returns the first string array literal that is assigned to a package
// level variable.
func (golang) Parse(src []byte) (table.Table, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", src, parser.SkipObjectResolution)
	if err != nil {
		return table.Table{}, fmt.Errorf("parsing go source: %w", err)
	}

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}
		for _, spec := range gen.Specs {
			value, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for _, expr := range value.Values {
				lit, ok := expr.(*ast.CompositeLit)
				if !ok {
					continue
				}
				return compositeToTable(fset, lit)
			}
		}
	}
	return table.Table{}, ErrNoTable
}

func compositeToTable(fset *token.FileSet, lit *ast.CompositeLit) (table.Table, error) {
	entries := make([]string, 0, len(lit.Elts))
	for _, elt := range lit.Elts {
		basic, ok := elt.(*ast.BasicLit)
		if !ok || basic.Kind != token.STRING {
			return table.Table{}, fmt.Errorf("%w: unexpected element at %s", ErrNoTable, fset.Position(elt.Pos()))
		}
		s, err := strconv.Unquote(basic.Value)
		if err != nil {
			return table.Table{}, fmt.Errorf("unquoting %s: %w", basic.Value, err)
		}
		entries = append(entries, s)
	}
	return entriesToTable(entries)
}
