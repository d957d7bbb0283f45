// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm translates instruction listings into uvm32 programs.
package asm

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/uvm32/isa"
)

// Assembler is a single-pass assembler for uvm32 listings.
//
// Each non-blank line carries three whitespace-separated fields: the
// opcode, register, and operand, each written as a two-character prefix
// (conventionally "0x") followed by hexadecimal digits. Fields past the
// third are ignored, so trailing remarks need no marker.
type Assembler struct {
	Tracef func(format string, args ...any) // If set, traces assembly actions.
}

func (asm *Assembler) tracef(format string, args ...any) {
	if asm.Tracef != nil {
		asm.Tracef(format, args...)
	}
}

// parseField converts one listing field to its unsigned value. The first
// two characters are the prefix; they are stripped unexamined, and the
// remainder must be hexadecimal.
func (asm *Assembler) parseField(field string) (value uint32, err error) {
	if len(field) <= 2 {
		err = ErrParseField(field)
		return
	}

	v64, err := strconv.ParseUint(field[2:], 16, 32)
	if err != nil {
		err = ErrParseField(field)
		return
	}

	value = uint32(v64)

	return
}

// parseLine packs the first three fields of a line into an instruction
// word.
func (asm *Assembler) parseLine(fields []string) (word isa.Word, err error) {
	if len(fields) < 3 {
		err = ErrFieldCount(len(fields))
		return
	}

	var value [3]uint32
	for n := range value {
		value[n], err = asm.parseField(fields[n])
		if err != nil {
			return
		}
	}

	return isa.Encode(isa.Op(value[0]), value[1], value[2])
}

// Parse reads a listing and assembles it into a Program.
//
// Blank lines are skipped. The first malformed line aborts the parse with
// an ErrSyntax carrying its 1-based line number and raw text; no partial
// Program is returned.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	prog = &Program{}

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		fields := strings.Fields(line)
		if len(fields) == 0 {
			asm.tracef("%v: blank", lineno)
			continue
		}

		var word isa.Word
		word, err = asm.parseLine(fields)
		if err != nil {
			return
		}

		asm.tracef("%v: %v", lineno, word)

		prog.Entries = append(prog.Entries, Entry{
			LineNo: lineno,
			Source: line,
			Word:   word,
		})
	}

	err = scanner.Err()

	return
}
