// Package writer implements the line writing functionality shared by the emitters.
package writer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultEntriesPerLine is the number of table entries written per line if not configured.
const DefaultEntriesPerLine = 8

type lineWriterFunc func(line string, entryCount int) error

// Writer implements common source file writing functionality.
type Writer struct {
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	Indent         string // prefix of every entry line
	EntriesPerLine int
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	if options.EntriesPerLine <= 0 {
		options.EntriesPerLine = DefaultEntriesPerLine
	}
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// Printf writes a formatted string.
func (w Writer) Printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(w.writer, format, args...); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// BundleEntries writes the entries as quoted string literals, bundling
// EntriesPerLine entries per line. Every entry is followed by a comma.
func (w Writer) BundleEntries(entries []string, lineWriter lineWriterFunc) error {
	remaining := len(entries)
	for i := 0; remaining > 0; {
		toWrite := min(remaining, w.options.EntriesPerLine)

		buf := &strings.Builder{}
		buf.WriteString(w.options.Indent)
		for j := range toWrite {
			if j > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(strconv.Quote(entries[i+j]))
			buf.WriteByte(',')
		}
		line := buf.String()

		if lineWriter != nil {
			if err := lineWriter(line, toWrite); err != nil {
				return fmt.Errorf("writing entry line using custom writer: %w", err)
			}
		} else {
			if _, err := fmt.Fprintf(w.writer, "%s\n", line); err != nil {
				return fmt.Errorf("writing entry line: %w", err)
			}
		}

		i += toWrite
		remaining -= toWrite
	}

	return nil
}
