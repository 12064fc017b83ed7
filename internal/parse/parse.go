// internal/parse/parse.go
//
// Shared input handling for the daily puzzle parsers.
// Responsibilities:
//   - ParseError: the single error type every parser returns on malformed input.
//   - Line/block splitting that tolerates CRLF and trailing blank lines.
//   - Unsigned integer token parsing with an explicit bit width.
//
// Parsers never return partial data alongside an error.

package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyInput is wrapped by ParseError when a parser receives no content.
var ErrEmptyInput = errors.New("empty input")

// ParseError describes malformed puzzle input.
// Line is 1-based; 0 means the error is not tied to a single line.
type ParseError struct {
	Day  int
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "day %d: parse", e.Day)
	if e.Line > 0 {
		fmt.Fprintf(&b, " line %d", e.Line)
	}
	b.WriteString(": ")
	b.WriteString(e.Msg)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Errorf builds a ParseError for day/line with a formatted message.
func Errorf(day, line int, err error, format string, args ...any) *ParseError {
	return &ParseError{Day: day, Line: line, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Normalize converts CRLF to LF and strips trailing whitespace from the text.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.TrimRight(text, " \t\n")
}

// Lines splits normalized text into lines. Empty text yields no lines.
func Lines(text string) []string {
	text = Normalize(text)
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Block is a run of consecutive non-blank lines and the 1-based line number it starts on.
type Block struct {
	Start int
	Lines []string
}

// Blocks groups lines into blank-line separated blocks.
// Lines consisting only of spaces or tabs count as blank.
func Blocks(text string) []Block {
	var (
		out []Block
		cur *Block
	)
	for i, line := range Lines(text) {
		if strings.TrimSpace(line) == "" {
			cur = nil
			continue
		}
		if cur == nil {
			out = append(out, Block{Start: i + 1})
			cur = &out[len(out)-1]
		}
		cur.Lines = append(cur.Lines, line)
	}
	return out
}

// Uint parses a decimal token into an unsigned integer that must fit in bits.
func Uint(tok string, bits int) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(tok), 10, bits)
}

// CommaUints parses a comma separated list of unsigned integers.
// Empty fields (e.g. "1,,2") are rejected.
func CommaUints(s string, bits int) ([]uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyInput
	}
	fields := strings.Split(s, ",")
	out := make([]uint64, 0, len(fields))
	for _, f := range fields {
		v, err := Uint(f, bits)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
