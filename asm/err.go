package asm

import (
	"github.com/ezrec/uvm32/translate"
)

var f = translate.From

// ErrSyntax reports a fatal listing error with its line context.
type ErrSyntax struct {
	LineNo int    // 1-based source line number.
	Line   string // Raw line text.
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrFieldCount reports a line with fewer than the three required fields.
type ErrFieldCount int

func (err ErrFieldCount) Error() string {
	return f("expected 3 fields, found %d", int(err))
}

// ErrParseField reports a field that is not a prefixed hexadecimal
// numeral.
type ErrParseField string

func (err ErrParseField) Error() string {
	return f("'%v' is not a hex field", string(err))
}
