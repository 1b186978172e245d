//go:build iso8601_debug

package iso8601

/*
AssertionsEnabled reports whether this package was built with the
"iso8601_debug" tag, in which case recognized-but-unsupported syntax
panics rather than producing an error.
*/
const AssertionsEnabled = true

// numericZone panics: numeric zone offsets are recognized but not
// implemented, and debug builds treat reaching this path as a defect.
func numericZone(off int, sign byte) error {
	err := errorNumericZone(off, sign)
	debugFail(err)
	panic(err)
}
