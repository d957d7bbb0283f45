// Package isa defines the instruction set of the uvm32 machine.
//
// An instruction is a single 32-bit word packing three fields, least
// significant first: a 5-bit opcode, a 6-bit register index, and a 21-bit
// unsigned operand. The operand is an immediate constant or a memory
// address, depending on the opcode. Four opcodes are recognized by the
// machine; every other opcode value decodes cleanly but dispatches to
// nothing.
//
// Encoding and decoding are exact inverses. The three fields partition
// all 32 bits, so any word re-encodes from its own fields without loss,
// and any in-range field triple survives a round trip unchanged.
package isa
