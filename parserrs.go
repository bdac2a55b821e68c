package scicalc

import "strconv"

// NumberError is an error indicating a run of digits and dots that is not a
// number, e.g. "1.2.3" or ".". It implements InputError.
type NumberError struct {
	// Col is the position of the first rune of the number.
	Col int
	// Text is the text that failed to convert.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "malformed number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// CharError is an error indicating a rune that cannot begin a factor, or the
// end of input where a factor is required. It implements InputError.
type CharError struct {
	// Col is the position of the rune.
	Col int
	// Char is the unexpected rune. It is -1 at the end of input.
	Char rune
}

func (err *CharError) Error() string {
	if err.Char < 0 {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "unexpected end of expression")
	}
	return errpos(err.Col, "unexpected "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Pos() int {
	return err.Col
}

// FuncError is an error indicating a name that is not a known function. It
// implements InputError.
type FuncError struct {
	// Col is the position of the first rune of the name.
	Col int
	// Name is the unknown name.
	Name string
}

func (err *FuncError) Error() string {
	return errpos(err.Col, "unknown function "+strconv.Quote(err.Name))
}

func (err *FuncError) Pos() int {
	return err.Col
}

// TrailingError is an error indicating input left over after a complete
// expression, e.g. the ")" in "2+3)". It implements InputError.
type TrailingError struct {
	// Col is the position of the first unconsumed rune.
	Col int
	// Char is the first unconsumed rune.
	Char rune
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.QuoteRune(err.Char)+" after expression")
}

func (err *TrailingError) Pos() int {
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
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the text that caused the error.
	Pos() int
}

var (
	_ InputError = (*NumberError)(nil)
	_ InputError = (*CharError)(nil)
	_ InputError = (*FuncError)(nil)
	_ InputError = (*TrailingError)(nil)
)
