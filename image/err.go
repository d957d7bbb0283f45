package image

import (
	"errors"

	"github.com/ezrec/uvm32/translate"
)

var f = translate.From

// ErrEmpty reports a zero-length instruction stream.
var ErrEmpty = errors.New(f("image is empty"))

// ErrMisaligned reports a stream whose byte length is not a whole number
// of instruction words.
type ErrMisaligned int

func (err ErrMisaligned) Error() string {
	return f("image length %d is not a multiple of %d", int(err), WORD_BYTES)
}
