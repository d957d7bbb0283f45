// Package toolchain drives the file-level assemble and execute
// operations. The binary image file is the only contract between the two
// stages; neither operation needs the other.
package toolchain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/uvm32/asm"
	"github.com/ezrec/uvm32/image"
	"github.com/ezrec/uvm32/vm"
)

// Toolchain runs assemble and execute operations against files.
type Toolchain struct {
	Tracef func(format string, args ...any) // If set, traces all stages.
}

func (tc *Toolchain) tracef(format string, args ...any) {
	if tc.Tracef != nil {
		tc.Tracef(format, args...)
	}
}

// Assemble translates a listing file into a binary image and a YAML
// assembly log. Every artifact is rendered in memory before anything is
// written, so a failed parse leaves no files behind.
func (tc *Toolchain) Assemble(listingPath, binaryPath, logPath string) (err error) {
	inf, err := os.Open(listingPath)
	if err != nil {
		return fmt.Errorf("%v: %w", listingPath, err)
	}
	defer inf.Close()

	assembler := &asm.Assembler{Tracef: tc.Tracef}

	prog, err := assembler.Parse(inf)
	if err != nil {
		return fmt.Errorf("%v: %w", listingPath, err)
	}

	logData, err := yaml.Marshal(prog.Log())
	if err != nil {
		return fmt.Errorf("%v: %w", logPath, err)
	}

	err = image.Save(binaryPath, prog.Binary())
	if err != nil {
		return fmt.Errorf("%v: %w", binaryPath, err)
	}

	err = os.WriteFile(logPath, logData, 0o644)
	if err != nil {
		return fmt.Errorf("%v: %w", logPath, err)
	}

	tc.tracef("%v: %v instructions -> %v", listingPath, len(prog.Entries), binaryPath)

	return
}

// Execute runs a binary image and writes the result snapshot as YAML.
// The dump range is validated before the image is even read, so a bad
// range executes nothing; any failure leaves no result file behind.
func (tc *Toolchain) Execute(binaryPath string, start, end int, resultPath string) (err error) {
	machine := vm.NewMachine(vm.WithTracef(tc.Tracef))

	err = machine.ValidateRange(start, end)
	if err != nil {
		return
	}

	words, err := image.Load(binaryPath)
	if err != nil {
		return fmt.Errorf("%v: %w", binaryPath, err)
	}

	tc.tracef("%v: %v instructions, dump [%v:%v)", binaryPath, len(words), start, end)

	err = machine.Run(words)
	if err != nil {
		return fmt.Errorf("%v: %w", binaryPath, err)
	}

	snap, err := machine.Snapshot(start, end)
	if err != nil {
		return
	}

	resultData, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%v: %w", resultPath, err)
	}

	err = os.WriteFile(resultPath, resultData, 0o644)
	if err != nil {
		return fmt.Errorf("%v: %w", resultPath, err)
	}

	return
}
