// Package template parses instruction template rows and classifies them into
// literal rows and rows that are parametrized by a placeholder class.
package template

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/retroenv/opcodegen/internal/arch"
)

// Fields is the number of fields of a complete row: the mnemonic followed by
// the 8 bit columns, most significant bit first.
const Fields = 9

// BitColumns is the number of bit columns of a row.
const BitColumns = Fields - 1

// Row parsing errors. They are returned wrapped in a SyntaxError.
var (
	ErrFieldCount           = errors.New("wrong number of fields")
	ErrEmptyMnemonic        = errors.New("empty mnemonic")
	ErrMnemonicCharacter    = errors.New("mnemonic contains a non-printable character")
	ErrBitValue             = errors.New("bit column is not 0 or 1")
	ErrUnknownPlaceholder   = errors.New("unrecognized placeholder")
	ErrMultiplePlaceholders = errors.New("more than one placeholder in mnemonic")
	ErrPlaceholderRun       = errors.New("placeholder columns do not form a single run of the class width")
	ErrPlaceholderMismatch  = errors.New("placeholder column does not match the mnemonic placeholder")
	ErrNotLiteral           = errors.New("template is not a literal row")
)

// Kind is the classification of a template row.
type Kind int

// Template kinds.
const (
	Literal      Kind = iota // fully specified bit pattern
	Parametrized             // contains a placeholder run
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Parametrized:
		return "parametrized"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Template is a single classified instruction template row.
type Template struct {
	Line     int                // line number in the template source
	Mnemonic string             // mnemonic text, may contain one placeholder token
	Bits     [BitColumns]string // bit columns, most significant first
	Kind     Kind

	Class    arch.Class // placeholder class of parametrized rows
	RunStart int        // index of the first bit column of the placeholder run
	RunWidth int        // number of bit columns of the placeholder run

	placeholderAt int // byte offset of the placeholder token in the mnemonic
}

// Source returns a short description of the template origin.
func (t Template) Source() string {
	return fmt.Sprintf("line %d", t.Line)
}

// Opcode returns the opcode encoded by a literal row.
func (t Template) Opcode() (uint8, error) {
	if t.Kind != Literal {
		return 0, fmt.Errorf("%w: '%s' at %s", ErrNotLiteral, t.Mnemonic, t.Source())
	}
	return ParseBits(t.Bits)
}

// Substitute returns the mnemonic with the placeholder token replaced by the operand name.
func (t Template) Substitute(operand string) string {
	token := t.Class.String()
	return t.Mnemonic[:t.placeholderAt] + operand + t.Mnemonic[t.placeholderAt+len(token):]
}

// ParseBits concatenates the bit columns and parses them as an 8 bit binary number.
func ParseBits(bits [BitColumns]string) (uint8, error) {
	value, err := strconv.ParseUint(strings.Join(bits[:], ""), 2, 8)
	if err != nil {
		return 0, fmt.Errorf("parsing bit columns %v: %w", bits, err)
	}
	return uint8(value), nil
}

// SyntaxError describes a template row that could not be classified.
type SyntaxError struct {
	Line int
	Row  string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d '%s': %v", e.Line, e.Row, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Parse reads tab delimited template rows. Empty lines and lines starting
// with # are ignored. Every other row has to be either a literal row or a
// row parametrized by exactly one placeholder class of the ISA.
func Parse(r io.Reader, isa *arch.ISA) ([]Template, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var templates []Template
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading template row: %w", err)
		}

		line, _ := reader.FieldPos(0)
		t, err := parseRow(record, isa)
		if err != nil {
			return nil, &SyntaxError{
				Line: line,
				Row:  strings.Join(record, "\t"),
				Err:  err,
			}
		}
		t.Line = line
		templates = append(templates, t)
	}

	return templates, nil
}

func parseRow(record []string, isa *arch.ISA) (Template, error) {
	if len(record) > Fields {
		return Template{}, fmt.Errorf("%w: %d, at most %d expected", ErrFieldCount, len(record), Fields)
	}

	var t Template
	t.Mnemonic = strings.TrimSpace(record[0])
	if t.Mnemonic == "" {
		return Template{}, ErrEmptyMnemonic
	}
	if err := checkPrintable(t.Mnemonic); err != nil {
		return Template{}, err
	}
	for i := range t.Bits {
		if i+1 < len(record) {
			t.Bits[i] = strings.TrimSpace(record[i+1])
		}
	}

	class, offset, err := findPlaceholder(t.Mnemonic)
	if err != nil {
		return Template{}, err
	}

	if class == arch.NoClass {
		if err := checkLiteral(t.Bits, len(record)); err != nil {
			return Template{}, err
		}
		t.Kind = Literal
		return t, nil
	}

	width, err := isa.ClassWidth(class)
	if err != nil {
		return Template{}, err
	}

	start, err := locateRun(t.Bits, class, width)
	if err != nil {
		return Template{}, err
	}

	t.Kind = Parametrized
	t.Class = class
	t.RunStart = start
	t.RunWidth = width
	t.placeholderAt = offset
	for i := start; i < start+width; i++ {
		t.Bits[i] = class.String()
	}
	return t, nil
}

// checkPrintable rejects mnemonics that the emitters would have to write
// with escape sequences, as Go, Rust and C disagree on their syntax.
func checkPrintable(mnemonic string) error {
	if !utf8.ValidString(mnemonic) {
		return fmt.Errorf("%w: invalid UTF-8", ErrMnemonicCharacter)
	}
	for i, r := range mnemonic {
		if !strconv.IsPrint(r) {
			return fmt.Errorf("%w %U at offset %d", ErrMnemonicCharacter, r, i)
		}
	}
	return nil
}

// findPlaceholder returns the placeholder class of the mnemonic and the byte
// offset of its token. Tokens are matched exactly, not as substrings.
func findPlaceholder(mnemonic string) (arch.Class, int, error) {
	class := arch.NoClass
	offset := -1

	start := -1
	for i := 0; i <= len(mnemonic); i++ {
		if i < len(mnemonic) && isTokenChar(rune(mnemonic[i])) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start < 0 {
			continue
		}

		token := mnemonic[start:i]
		if found, ok := arch.ClassFromName(token); ok {
			if class != arch.NoClass {
				return arch.NoClass, 0, fmt.Errorf("%w: %s and %s", ErrMultiplePlaceholders, class, found)
			}
			class = found
			offset = start
		}
		start = -1
	}

	return class, offset, nil
}

func isTokenChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isBit(s string) bool {
	return s == "0" || s == "1"
}

func checkLiteral(bits [BitColumns]string, fields int) error {
	for _, bit := range bits {
		if isBit(bit) {
			continue
		}
		if _, ok := arch.ClassFromName(bit); ok {
			return fmt.Errorf("%w '%s' in bit column of a mnemonic without placeholder",
				ErrPlaceholderMismatch, bit)
		}
		if bit != "" {
			return fmt.Errorf("%w '%s'", ErrUnknownPlaceholder, bit)
		}
	}

	if fields != Fields {
		return fmt.Errorf("%w: %d, literal rows need %d", ErrFieldCount, fields, Fields)
	}
	for _, bit := range bits {
		if bit == "" {
			return fmt.Errorf("%w: empty column", ErrBitValue)
		}
	}
	return nil
}

// locateRun finds the contiguous run of bit columns that the placeholder
// occupies. The run either repeats the placeholder name in every column or
// has the name in its first column followed by empty columns, which is how
// merged spreadsheet cells are exported.
func locateRun(bits [BitColumns]string, class arch.Class, width int) (int, error) {
	token := class.String()

	start := -1
	for i, bit := range bits {
		if bit == token {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, fmt.Errorf("%w: no bit column names %s", ErrPlaceholderRun, token)
	}
	if start+width > BitColumns {
		return 0, fmt.Errorf("%w: %s needs %d columns starting at column %d", ErrPlaceholderRun, token, width, start+1)
	}

	merged := width > 1 && bits[start+1] == ""
	for i := start + 1; i < start+width; i++ {
		switch {
		case merged && bits[i] == "":
		case !merged && bits[i] == token:
		default:
			return 0, fmt.Errorf("%w: %s needs %d columns starting at column %d", ErrPlaceholderRun, token, width, start+1)
		}
	}

	for i, bit := range bits {
		if i >= start && i < start+width {
			continue
		}
		switch {
		case isBit(bit):
		case bit == token:
			return 0, fmt.Errorf("%w: %s is wider than %d columns", ErrPlaceholderRun, token, width)
		case bit == "":
			return 0, fmt.Errorf("%w: empty column %d", ErrBitValue, i+1)
		default:
			if _, ok := arch.ClassFromName(bit); ok {
				return 0, fmt.Errorf("%w: column %d names %s, mnemonic uses %s", ErrPlaceholderMismatch, i+1, bit, token)
			}
			return 0, fmt.Errorf("%w '%s'", ErrUnknownPlaceholder, bit)
		}
	}

	return start, nil
}
