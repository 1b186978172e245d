//go:build !iso8601_debug

package iso8601

/*
AssertionsEnabled reports whether this package was built with the
"iso8601_debug" tag, in which case recognized-but-unsupported syntax
panics rather than producing an error.
*/
const AssertionsEnabled = false

// numericZone returns the error for a recognized numeric zone offset.
func numericZone(off int, sign byte) error {
	return errorNumericZone(off, sign)
}
