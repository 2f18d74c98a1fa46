// Package codec converts records to and from the pipe-delimited line format of the data files.
package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Delimiter separates fields on a line.
	Delimiter = "|"
	// CommentPrefix marks header and comment lines, which are never data.
	CommentPrefix = "#"
)

// ErrShortLine is returned by Decode when a line has fewer fields than the schema.
// Stores skip such lines instead of failing.
var ErrShortLine = errors.New("short line")

// ParseError is returned when a field cannot be converted to its typed value.
type ParseError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: parse %s %q: %v", e.Line, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("parse %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Codec maps one entity type to its line layout.
type Codec[T any] interface {
	// Header is the comment line written at the top of a rewritten file.
	Header() string
	// Fields is the minimum number of fields a data line must have.
	Fields() int
	Encode(rec T) string
	Decode(fields []string) (T, error)
}

// unsafeChars replaces the characters that would split a record across fields or lines.
var unsafeChars = strings.NewReplacer(Delimiter, " ", "\r", " ", "\n", " ")

// Sanitize makes a free-text value safe to store: the delimiter and line breaks are
// replaced by a space and surrounding whitespace is trimmed. The replacement is lossy.
func Sanitize(s string) string {
	return strings.TrimSpace(unsafeChars.Replace(s))
}

// Split breaks a data line into fields, keeping trailing empty fields.
func Split(line string) []string {
	return strings.Split(line, Delimiter)
}

// IsData reports whether a raw line carries a record.
func IsData(line string) bool {
	t := strings.TrimSpace(line)
	return t != "" && !strings.HasPrefix(t, CommentPrefix)
}

// DecodeLine splits a line and decodes it, stamping line numbers on parse errors.
func DecodeLine[T any](c Codec[T], lineNo int, line string) (T, error) {
	fields := Split(line)
	if len(fields) < c.Fields() {
		var zero T
		return zero, ErrShortLine
	}
	rec, err := c.Decode(fields)
	if err != nil {
		var pErr *ParseError
		if errors.As(err, &pErr) {
			pErr.Line = lineNo
		}
		return rec, err
	}
	return rec, nil
}

func join(fields ...string) string {
	return strings.Join(fields, Delimiter)
}

func parseInt(field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &ParseError{Field: field, Value: value, Err: err}
	}
	return n, nil
}
