package fieldpath

import (
	"errors"
	"fmt"
)

var (
	// ErrNilPath reports a nil (absent) path expression, which is distinct
	// from the empty string: "" is the valid spelling of Empty.
	ErrNilPath = errors.New("nil field path source")

	// ErrParse is the sentinel for syntax errors; use errors.Is to detect
	// them and errors.As with *ParseError for positions.
	ErrParse = errors.New("field path parse error")
)

// ParseError describes why a path expression failed to parse. Line and Col
// locate the first syntax error (line is 1-based, column 0-based); further
// errors reported before the grammar gave up are available via Errs.
type ParseError struct {
	Line int
	Col  int
	Msg  string

	errs []error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}

func (e *ParseError) Unwrap() []error {
	return append([]error{ErrParse}, e.errs...)
}

// Errs returns every syntax error recorded while parsing, first to last.
func (e *ParseError) Errs() []error {
	res := make([]error, len(e.errs))
	copy(res, e.errs)
	return res
}
