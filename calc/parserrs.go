package calc

import "strconv"

// ParseError is the error for any input that does not parse. It carries only
// the position at which parsing stopped. It implements InputError.
type ParseError struct {
	// Col is the zero-based rune index of the rune that stopped the parse, or
	// 0 if the parse stopped at the end of the input.
	Col int
}

func (err *ParseError) Error() string {
	return errpos(err.Col, "parse error")
}

func (err *ParseError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the zero-based rune index at which the input was rejected.
	Pos() int
}

var _ InputError = (*ParseError)(nil)
