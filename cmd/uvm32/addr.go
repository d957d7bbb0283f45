package main

import (
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/uvm32/internal"
	"github.com/ezrec/uvm32/isa"
	"github.com/ezrec/uvm32/translate"
	"github.com/ezrec/uvm32/vm"
)

var f = translate.From

type ErrAddressExpression string

func (err ErrAddressExpression) Error() string {
	return f("'%v' is not an address expression", string(err))
}

// evalAddress evaluates a memory address flag. The ISA and machine
// defines are predeclared, so '-e MEMORY_SIZE' works.
func evalAddress(expr string) (address int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range internal.IterSeq2Concat(isa.Defines(), vm.Defines()) {
		var value int64
		value, err = strconv.ParseInt(str, 0, 64)
		if err != nil {
			// Ignore non-integer defines.
			continue
		}
		pred[key] = starlark.MakeInt64(value)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "address", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrAddressExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrAddressExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrAddressExpression(expr)
		return
	}
	address = int(st_int64)
	return
}
