// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"fmt"
	"iter"
	"maps"
)

// Op is the 5-bit operation selector of an instruction word.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_LOAD_CONST = Op(6)  // ldc
	OP_LOAD_MEM   = Op(8)  // ldm
	OP_NEG_MEM    = Op(10) // neg
	OP_STORE_MEM  = Op(25) // stm
)

// Recognized returns true if the machine dispatches this opcode.
// Unrecognized opcodes encode and decode normally but execute as no-ops.
func (op Op) Recognized() bool {
	switch op {
	case OP_LOAD_CONST, OP_LOAD_MEM, OP_NEG_MEM, OP_STORE_MEM:
		return true
	}

	return false
}

// Instruction field widths, shifts, and masks.
const (
	OPCODE_BITS   = 5
	REGISTER_BITS = 6
	OPERAND_BITS  = 21

	REGISTER_SHIFT = OPCODE_BITS
	OPERAND_SHIFT  = OPCODE_BITS + REGISTER_BITS

	OPCODE_MASK   = (1 << OPCODE_BITS) - 1
	REGISTER_MASK = (1 << REGISTER_BITS) - 1
	OPERAND_MASK  = (1 << OPERAND_BITS) - 1
)

var _isa_defines = map[string]string{
	"OPCODE_BITS":   fmt.Sprintf("%v", OPCODE_BITS),
	"REGISTER_BITS": fmt.Sprintf("%v", REGISTER_BITS),
	"OPERAND_BITS":  fmt.Sprintf("%v", OPERAND_BITS),
	"OP_LOAD_CONST": fmt.Sprintf("%v", int(OP_LOAD_CONST)),
	"OP_LOAD_MEM":   fmt.Sprintf("%v", int(OP_LOAD_MEM)),
	"OP_NEG_MEM":    fmt.Sprintf("%v", int(OP_NEG_MEM)),
	"OP_STORE_MEM":  fmt.Sprintf("%v", int(OP_STORE_MEM)),
}

// Defines returns the ISA constants for expression evaluation.
func Defines() iter.Seq2[string, string] {
	return maps.All(_isa_defines)
}

// Word is a packed instruction.
//
//	┌──────────────────────────┬────────────┬──────────┐
//	│ operand (21 bits)        │ register   │ opcode   │
//	│ [11:32)                  │ [5:11)     │ [0:5)    │
//	└──────────────────────────┴────────────┴──────────┘
//
// The operand field is 21 bits wide, not 32; an address can name more
// cells than the default machine memory holds, which is why the machine
// bounds-checks every access.
type Word uint32

// Encode packs the three instruction fields into a Word. A field that
// does not fit its width is rejected with an ErrField; nothing is
// silently masked.
func Encode(op Op, register, operand uint32) (word Word, err error) {
	if op < 0 || op > OPCODE_MASK {
		err = &ErrField{Field: "opcode", Value: int64(op), Bits: OPCODE_BITS}
		return
	}
	if register > REGISTER_MASK {
		err = &ErrField{Field: "register", Value: int64(register), Bits: REGISTER_BITS}
		return
	}
	if operand > OPERAND_MASK {
		err = &ErrField{Field: "operand", Value: int64(operand), Bits: OPERAND_BITS}
		return
	}

	word = Word(operand)<<OPERAND_SHIFT | Word(register)<<REGISTER_SHIFT | Word(op)

	return
}

// Fields unpacks a word into its opcode, register, and operand fields.
// Decoding is total; every 32-bit value is a structurally valid word.
func (word Word) Fields() (op Op, register uint8, operand uint32) {
	op = Op(word & OPCODE_MASK)
	register = uint8((word >> REGISTER_SHIFT) & REGISTER_MASK)
	operand = uint32(word >> OPERAND_SHIFT)

	return
}

// Opcode returns the 5-bit operation selector.
func (word Word) Opcode() Op {
	return Op(word & OPCODE_MASK)
}

// Register returns the 6-bit register index.
func (word Word) Register() uint8 {
	return uint8((word >> REGISTER_SHIFT) & REGISTER_MASK)
}

// Operand returns the 21-bit unsigned operand.
func (word Word) Operand() uint32 {
	return uint32(word >> OPERAND_SHIFT)
}

// String renders the word and its decoded fields for tracing.
func (word Word) String() string {
	op, register, operand := word.Fields()

	return fmt.Sprintf("0x%08X %v r%v 0x%X", uint32(word), op, register, operand)
}
