package parser

import (
	"fmt"
	"slices"
	"strings"

	"github.com/montymxb/FDSSL/internal/ast"
)

// ParseError reports where parsing stopped and what the parser expected there.
// Message replaces the expected/found description for failures that are not
// about a missing construct (nesting limit, integer range, vector shape).
type ParseError struct {
	Pos      ast.Position
	Expected []string
	Found    string
	Message  string

	// fatal errors stop ordered choice even when no input was consumed.
	fatal bool
	// unclosed marks a block that hit end of input or the depth limit.
	// Block items never fall back to raw text over it.
	unclosed bool
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Pos.Filename != "" {
		b.WriteString(e.Pos.Filename)
		b.WriteString(":")
	}
	fmt.Fprintf(&b, "%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Describe())
	return b.String()
}

// Describe returns the error text without the location prefix.
func (e *ParseError) Describe() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("expected %s, found %s", joinExpected(e.Expected), e.Found)
}

// Offset is the 0-based byte offset the error points at.
func (e *ParseError) Offset() int {
	return e.Pos.Offset
}

// committed reports whether the failing rule, started at start, consumed input
// or hit a fatal condition. Ordered choice must not try further alternatives.
func (e *ParseError) committed(start int) bool {
	return e.fatal || e.Pos.Offset > start
}

func joinExpected(expected []string) string {
	switch len(expected) {
	case 0:
		return "something else"
	case 1:
		return expected[0]
	default:
		return strings.Join(expected[:len(expected)-1], ", ") + " or " + expected[len(expected)-1]
	}
}

// merge keeps the error that got furthest. Errors at the same offset have
// their expected sets combined.
func merge(a, b *ParseError) *ParseError {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.Pos.Offset > b.Pos.Offset:
		return a
	case b.Pos.Offset > a.Pos.Offset:
		return b
	}

	if a.Message != "" || b.Message != "" {
		if a.Message != "" {
			return a
		}
		return b
	}

	merged := *a
	merged.Expected = slices.Clone(a.Expected)
	for _, exp := range b.Expected {
		if !slices.Contains(merged.Expected, exp) {
			merged.Expected = append(merged.Expected, exp)
		}
	}
	return &merged
}

// label replaces the expected set of a clean failure at start with a single
// construct name, so "expected \"Int\" or \"[\"" reads as "expected type".
func label(err *ParseError, start int, name string) *ParseError {
	if err == nil || err.committed(start) || err.Message != "" {
		return err
	}
	labeled := *err
	labeled.Expected = []string{name}
	return &labeled
}
