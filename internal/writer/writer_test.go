package writer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestBundleEntries(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf, Options{Indent: "\t", EntriesPerLine: 3})

	err := w.BundleEntries([]string{"nop", "ld [bc], a", "say \"hi\"", "halt"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, "\t\"nop\", \"ld [bc], a\", \"say \\\"hi\\\"\",\n\t\"halt\",\n", buf.String())
}

func TestBundleEntriesLineWriter(t *testing.T) {
	w := New(&bytes.Buffer{}, Options{EntriesPerLine: 2})

	var lines []string
	var counts []int
	err := w.BundleEntries([]string{"a", "b", "c"}, func(line string, entryCount int) error {
		lines = append(lines, line)
		counts = append(counts, entryCount)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, len(lines))
	assert.Equal(t, `"a", "b",`, lines[0])
	assert.Equal(t, `"c",`, lines[1])
	assert.Equal(t, 2, counts[0])
	assert.Equal(t, 1, counts[1])

	errWrite := errors.New("disk full")
	err = w.BundleEntries([]string{"a"}, func(string, int) error { return errWrite })
	assert.True(t, errors.Is(err, errWrite))
}

func TestDefaultEntriesPerLine(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf, Options{})

	entries := make([]string, 10)
	assert.NoError(t, w.BundleEntries(entries, nil))
	assert.Equal(t, `"", "", "", "", "", "", "", "",`+"\n"+`"", "",`+"\n", buf.String())
}
