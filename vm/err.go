package vm

import (
	"github.com/ezrec/uvm32/translate"
)

var f = translate.From

// ErrRuntime locates a fatal execution error by instruction index.
type ErrRuntime struct {
	Step int // 0-based index into the instruction stream.
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("instruction %d %v", err.Step, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrAddress reports a memory access outside the machine's cells.
type ErrAddress struct {
	Address uint32
	Size    int
}

func (err *ErrAddress) Error() string {
	return f("address 0x%04X outside memory of %d cells", err.Address, err.Size)
}

// ErrDumpRange reports a memory dump window outside the machine's cells.
type ErrDumpRange struct {
	Start int
	End   int
	Size  int
}

func (err *ErrDumpRange) Error() string {
	return f("dump range %d:%d outside memory of %d cells", err.Start, err.End, err.Size)
}
