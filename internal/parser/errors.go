package parser

import (
	"fmt"
	"strings"

	"github.com/leengari/listdiff/internal/column"
)

// LineError reports an input line the parser could not turn into a row
type LineError struct {
	Line   int         // 1-based line number
	Text   string      // raw line content
	Side   column.Side // column the bad token belongs to (empty for whole-line errors)
	Reason string
	Err    error
}

func (e *LineError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("line %d", e.Line))

	if e.Side != "" {
		parts = append(parts, fmt.Sprintf("%s value", e.Side))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	parts = append(parts, fmt.Sprintf("%q", e.Text))

	return strings.Join(parts, ": ")
}

func (e *LineError) Unwrap() error { return e.Err }
