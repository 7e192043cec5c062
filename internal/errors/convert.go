package errors

import (
	stderrors "errors"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/montymxb/FDSSL/internal/ast"
	"github.com/montymxb/FDSSL/internal/parser"
)

// Convert turns an error from either parser into a CompilerError.
func Convert(err error) (CompilerError, bool) {
	var perr *parser.ParseError
	if stderrors.As(err, &perr) {
		return FromParseError(perr), true
	}
	return FromSyntaxError(err)
}

// FromParseError converts a recursive descent parser failure.
func FromParseError(err *parser.ParseError) CompilerError {
	ce := CompilerError{
		Level:    Error,
		Code:     classify(err.Message, err.Found),
		Message:  err.Describe(),
		Position: err.Pos,
		Length:   foundLength(err.Found),
	}

	switch ce.Code {
	case ErrorUnexpectedEOF:
		if slices.Contains(err.Expected, `"}"`) {
			ce.Suggestions = append(ce.Suggestions, Suggestion{Message: "close the open block", Replacement: "}"})
		}
	case ErrorUnexpectedToken:
		if len(err.Expected) == 1 && strings.HasPrefix(err.Expected[0], `"`) {
			if lit, uerr := strconv.Unquote(err.Expected[0]); uerr == nil {
				ce.Suggestions = append(ce.Suggestions, Suggestion{Message: "insert " + err.Expected[0], Replacement: lit})
			}
		}
	case ErrorNestingTooDeep:
		ce.HelpText = "flatten the nesting or raise the limit with parser.WithMaxDepth"
	}

	if ce.Code != ErrorUnexpectedToken && ce.Code != ErrorUnexpectedEOF {
		ce.Notes = append(ce.Notes, GetErrorDescription(ce.Code))
	}

	return ce
}

// FromSyntaxError converts an error produced by the participle grammar.
func FromSyntaxError(err error) (CompilerError, bool) {
	var perr participle.Error
	if !stderrors.As(err, &perr) {
		return CompilerError{}, false
	}

	pos := perr.Position()
	message := perr.Message()
	found := ""
	if strings.Contains(message, "<EOF>") {
		found = "end of input"
	}

	return CompilerError{
		Level:   Error,
		Code:    classify(message, found),
		Message: message,
		Position: ast.Position{
			Filename: pos.Filename,
			Offset:   pos.Offset,
			Line:     pos.Line,
			Column:   pos.Column,
		},
		Length: 1,
	}, true
}

func classify(message, found string) string {
	switch {
	case strings.HasPrefix(message, "nesting exceeds"):
		return ErrorNestingTooDeep
	case strings.HasPrefix(message, "integer literal"):
		return ErrorIntegerOutOfRange
	case strings.HasPrefix(message, "vector element"):
		return ErrorVectorShape
	case strings.Contains(message, "is a keyword"):
		return ErrorReservedName
	case found == "end of input":
		return ErrorUnexpectedEOF
	default:
		return ErrorUnexpectedToken
	}
}

// foundLength is the marker width for a "found" description.
func foundLength(found string) int {
	if text, err := strconv.Unquote(found); err == nil && len(text) > 0 {
		return len([]rune(text))
	}
	return 1
}
