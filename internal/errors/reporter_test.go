package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montymxb/FDSSL/grammar"
	"github.com/montymxb/FDSSL/internal/ast"
	"github.com/montymxb/FDSSL/internal/parser"
)

func init() {
	color.NoColor = true
}

func parseError(t *testing.T, source string, opts ...parser.Option) *parser.ParseError {
	t.Helper()
	opts = append([]parser.Option{parser.WithFilename("test.fd")}, opts...)
	_, err := parser.New(source, opts...).ParseSource()
	require.Error(t, err)

	var perr *parser.ParseError
	require.True(t, stderrors.As(err, &perr))
	return perr
}

func TestErrorReporter(t *testing.T) {
	source := "f (a Int) -> () {}"
	reporter := NewErrorReporter("test.fd", source)

	ce := FromParseError(parseError(t, source))
	formatted := reporter.FormatError(ce)

	assert.Contains(t, formatted, "error["+ErrorUnexpectedToken+"]")
	assert.Contains(t, formatted, `expected ":", "," or ")", found "Int"`)
	assert.Contains(t, formatted, "test.fd:1:6")
	assert.Contains(t, formatted, "  1 │ f (a Int) -> () {}")
	assert.Contains(t, formatted, "      ^^^\n")
}

func TestContextLines(t *testing.T) {
	source := "a () -> () {}\nb () -> () { 1 } }\nc () -> () {}"
	ce := FromParseError(parseError(t, source))
	assert.Equal(t, 2, ce.Position.Line)

	formatted := NewErrorReporter("test.fd", source).FormatError(ce)
	assert.Contains(t, formatted, "  1 │ a () -> () {}")
	assert.Contains(t, formatted, "  2 │ b () -> () { 1 } }")
	assert.Contains(t, formatted, "  3 │ c () -> () {}")
}

func TestMissingArrowSuggestion(t *testing.T) {
	ce := FromParseError(parseError(t, "f () () {}"))
	assert.Equal(t, ErrorUnexpectedToken, ce.Code)
	require.Len(t, ce.Suggestions, 1)
	assert.Equal(t, `insert "->"`, ce.Suggestions[0].Message)
	assert.Equal(t, "->", ce.Suggestions[0].Replacement)

	formatted := NewErrorReporter("test.fd", "f () () {}").FormatError(ce)
	assert.Contains(t, formatted, `help try: insert "->"`)
}

func TestUnclosedBlock(t *testing.T) {
	ce := FromParseError(parseError(t, "f () -> () { {"))
	assert.Equal(t, ErrorUnexpectedEOF, ce.Code)
	require.NotEmpty(t, ce.Suggestions)
	assert.Equal(t, "}", ce.Suggestions[0].Replacement)
}

func TestMessageErrorCodes(t *testing.T) {
	cases := []struct {
		source string
		opts   []parser.Option
		code   string
	}{
		{"f () -> () {{{}}}", []parser.Option{parser.WithMaxDepth(2)}, ErrorNestingTooDeep},
		{"[[[1]]]", []parser.Option{parser.WithMaxDepth(2)}, ErrorNestingTooDeep},
		{"99999999999999999999", nil, ErrorIntegerOutOfRange},
		{"[1, [2]]", nil, ErrorVectorShape},
	}

	for _, tc := range cases {
		var err error
		if strings.HasPrefix(tc.source, "f ") {
			_, err = parser.New(tc.source, tc.opts...).ParseSource()
		} else {
			_, err = parser.New(tc.source, tc.opts...).Value()
		}
		ce, ok := Convert(err)
		require.True(t, ok, tc.source)
		assert.Equal(t, tc.code, ce.Code, tc.source)
		assert.Contains(t, ce.Notes, GetErrorDescription(tc.code), tc.source)
	}

	ce := FromParseError(parseError(t, "f () -> () {{{}}}", parser.WithMaxDepth(2)))
	assert.Contains(t, ce.HelpText, "WithMaxDepth")
}

func TestFromSyntaxError(t *testing.T) {
	_, err := grammar.ParseValue("test.fd", "[1, [2]]")
	require.Error(t, err)

	ce, ok := FromSyntaxError(err)
	require.True(t, ok)
	assert.Equal(t, ErrorVectorShape, ce.Code)
	assert.Equal(t, 4, ce.Position.Offset)
	assert.Equal(t, "test.fd", ce.Position.Filename)

	_, err = grammar.ParseValue("test.fd", "99999999999999999999")
	require.Error(t, err)
	ce, ok = FromSyntaxError(err)
	require.True(t, ok)
	assert.Equal(t, ErrorIntegerOutOfRange, ce.Code)

	_, err = grammar.Parse("test.fd", "Int () -> () {}")
	require.Error(t, err)
	ce, ok = FromSyntaxError(err)
	require.True(t, ok)
	assert.Equal(t, ErrorReservedName, ce.Code)

	_, ok = FromSyntaxError(fmt.Errorf("failed to read file"))
	assert.False(t, ok)
}

func TestConvertUnwraps(t *testing.T) {
	perr := parseError(t, "f () () {}")
	ce, ok := Convert(fmt.Errorf("parse failed: %w", perr))
	require.True(t, ok)
	assert.Equal(t, perr.Pos, ce.Position)
}

func TestReportPlainError(t *testing.T) {
	out := NewErrorReporter("test.fd", "").Report(fmt.Errorf("failed to read file"))
	assert.Equal(t, "error: failed to read file\n", out)
}

func TestCreateMarker(t *testing.T) {
	reporter := NewErrorReporter("test.fd", "")
	assert.Equal(t, "    ^^", reporter.createMarker(5, 2, Error))
	assert.Equal(t, "^", reporter.createMarker(1, 0, Warning))
}

func TestErrorDescriptions(t *testing.T) {
	codes := []string{
		ErrorUnexpectedToken,
		ErrorUnexpectedEOF,
		ErrorNestingTooDeep,
		ErrorIntegerOutOfRange,
		ErrorVectorShape,
		ErrorReservedName,
	}
	for _, code := range codes {
		assert.True(t, strings.HasPrefix(code, "E01"))
		assert.NotEqual(t, "Unknown error", GetErrorDescription(code), code)
	}
	assert.Equal(t, "Unknown error", GetErrorDescription("E9999"))
}

func TestLineOutOfRange(t *testing.T) {
	ce := CompilerError{Level: Warning, Message: "odd", Position: ast.Position{Line: 9, Column: 1}}
	formatted := NewErrorReporter("x.fd", "one line").FormatError(ce)
	assert.Contains(t, formatted, "warning: odd")
	assert.NotContains(t, formatted, "one line")
}
