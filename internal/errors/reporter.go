package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/montymxb/FDSSL/internal/ast"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError is a parser failure prepared for display.
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // Error code like E0100
	Message     string       // Primary error message
	Position    ast.Position // Location in source
	Length      int          // Length of the problematic region
	Suggestions []Suggestion
	Notes       []string
	HelpText    string
}

// Suggestion represents a suggested fix
type Suggestion struct {
	Message     string
	Replacement string // optional
}

// ErrorReporter renders errors against the source they came from.
type ErrorReporter struct {
	filename string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Report converts err and formats it. Errors that did not come from either
// parser are printed as a plain error line.
func (er *ErrorReporter) Report(err error) string {
	if ce, ok := Convert(err); ok {
		return er.FormatError(ce)
	}
	return fmt.Sprintf("%s: %s\n", er.getLevelColor(Error)(string(Error)), err)
}

// FormatError formats a compiler error with Rust-like styling and suggestions
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var result strings.Builder

	levelColor := er.getLevelColor(err.Level)
	dim := color.New(color.Faint).SprintFunc()

	// error[E0100]: message
	if err.Code != "" {
		fmt.Fprintf(&result, "%s[%s]: %s\n", levelColor(string(err.Level)), err.Code, err.Message)
	} else {
		fmt.Fprintf(&result, "%s: %s\n", levelColor(string(err.Level)), err.Message)
	}

	width := er.getLineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", width)
	bar := dim("│")

	filename := er.filename
	if err.Position.Filename != "" {
		filename = err.Position.Filename
	}
	fmt.Fprintf(&result, "%s %s %s:%d:%d\n", indent, dim("-->"), filename, err.Position.Line, err.Position.Column)
	fmt.Fprintf(&result, "%s %s\n", indent, bar)

	er.writeContext(&result, err, width)

	if len(err.Suggestions) > 0 {
		fmt.Fprintf(&result, "%s %s\n", indent, bar)
		cyan := color.New(color.FgCyan).SprintFunc()
		for i, suggestion := range err.Suggestions {
			if i == 0 {
				fmt.Fprintf(&result, "%s %s %s: %s\n", indent, cyan("help"), cyan("try"), suggestion.Message)
			} else {
				fmt.Fprintf(&result, "%s %s %s\n", indent, cyan("    "), suggestion.Message)
			}
			if suggestion.Replacement != "" {
				fmt.Fprintf(&result, "%s %s %s\n", indent, cyan("│"), cyan(suggestion.Replacement))
			}
		}
	}

	blue := color.New(color.FgBlue).SprintFunc()
	for _, note := range err.Notes {
		fmt.Fprintf(&result, "%s %s %s %s\n", indent, bar, blue("note:"), note)
	}

	if err.HelpText != "" {
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(&result, "%s %s %s %s\n", indent, bar, green("help:"), err.HelpText)
	}

	result.WriteString("\n")
	return result.String()
}

// writeContext prints the failing line with one line of context on each side
// and the marker underneath.
func (er *ErrorReporter) writeContext(result *strings.Builder, err CompilerError, width int) {
	line := err.Position.Line
	indent := strings.Repeat(" ", width)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	if line > 1 && line-1 <= len(er.lines) {
		fmt.Fprintf(result, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, line-1)), dim("│"), er.lines[line-2])
	}

	if line > 0 && line <= len(er.lines) {
		fmt.Fprintf(result, "%s %s %s\n", bold(fmt.Sprintf("%*d", width, line)), dim("│"), er.lines[line-1])
		fmt.Fprintf(result, "%s %s %s\n", indent, dim("│"), er.createMarker(err.Position.Column, err.Length, err.Level))
	}

	if line > 0 && line < len(er.lines) {
		fmt.Fprintf(result, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, line+1)), dim("│"), er.lines[line])
	}
}

func (er *ErrorReporter) getLevelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func (er *ErrorReporter) createMarker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, column-1))
	return spaces + er.getLevelColor(level)(strings.Repeat("^", length))
}

func (er *ErrorReporter) getLineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}
