package emitter

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

var errUnterminated = errors.New("unterminated literal")

// scanLiterals returns the double quoted string literals of the first list
// that follows an assignment and is enclosed by the open and close bytes.
// Line and block comments are skipped.
func scanLiterals(src []byte, opening, closing byte) ([]string, error) {
	var entries []string
	assigned := false
	depth := 0

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			end := indexFrom(src, i+2, "\n")
			if end < 0 {
				i = len(src)
				continue
			}
			i = end

		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := indexFrom(src, i+2, "*/")
			if end < 0 {
				return nil, fmt.Errorf("%w: block comment", errUnterminated)
			}
			i = end + 1

		case c == '"':
			end, err := stringEnd(src, i)
			if err != nil {
				return nil, err
			}
			if depth > 0 {
				s, err := strconv.Unquote(string(src[i : end+1]))
				if err != nil {
					return nil, fmt.Errorf("unquoting %s: %w", src[i:end+1], err)
				}
				entries = append(entries, s)
			}
			i = end

		case c == '=' && depth == 0:
			assigned = true

		case c == opening && assigned:
			depth++

		case c == closing && depth > 0:
			depth--
			if depth == 0 {
				return entries, nil
			}
		}
	}

	if depth > 0 {
		return nil, fmt.Errorf("%w: table literal", errUnterminated)
	}
	return nil, ErrNoTable
}

// stringEnd returns the index of the quote that terminates the string
// literal starting at index start.
func stringEnd(src []byte, start int) (int, error) {
	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case '"':
			return i, nil
		case '\n':
			return 0, fmt.Errorf("%w: string at offset %d", errUnterminated, start)
		}
	}
	return 0, fmt.Errorf("%w: string at offset %d", errUnterminated, start)
}

func indexFrom(src []byte, from int, sep string) int {
	i := bytes.Index(src[from:], []byte(sep))
	if i < 0 {
		return -1
	}
	return from + i
}
