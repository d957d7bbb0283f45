package isa

import (
	"github.com/ezrec/uvm32/translate"
)

var f = translate.From

// ErrField reports an instruction field value that does not fit its bit
// width.
type ErrField struct {
	Field string
	Value int64
	Bits  int
}

func (err *ErrField) Error() string {
	return f("%v %v does not fit in %v bits", err.Field, err.Value, err.Bits)
}
