package errors

// Error codes for the FDSSL tools.
//
// Error code ranges:
// E0100-E0199: Parser errors
// E0900-E0999: Reserved for tooling errors

const (
	// E0100: A construct was expected but something else was found
	ErrorUnexpectedToken = "E0100"

	// E0101: Input ended inside a declaration or block
	ErrorUnexpectedEOF = "E0101"

	// E0102: Nesting deeper than the parser allows
	ErrorNestingTooDeep = "E0102"

	// E0103: Integer literal does not fit in 64 bits
	ErrorIntegerOutOfRange = "E0103"

	// E0104: Vector elements with different shapes
	ErrorVectorShape = "E0104"

	// E0105: Keyword used where a name is required
	ErrorReservedName = "E0105"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedToken:
		return "The parser found input that does not fit the grammar at this point"
	case ErrorUnexpectedEOF:
		return "The source ended before the declaration or block was closed"
	case ErrorNestingTooDeep:
		return "Nested blocks, vectors or array types exceed the parser depth limit"
	case ErrorIntegerOutOfRange:
		return "Integer literal is outside the signed 64-bit range"
	case ErrorVectorShape:
		return "All elements of a vector must have the same type"
	case ErrorReservedName:
		return "Keywords cannot be used as declaration, binding or variable names"
	default:
		return "Unknown error"
	}
}
