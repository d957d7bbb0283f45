// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package vm executes packed uvm32 instruction streams.
package vm

import (
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/uvm32/isa"
)

const (
	MEMORY_SIZE    = 1024 // Default memory cells.
	REGISTER_COUNT = 64   // Register file size, fixed by the 6-bit field.
)

var _machine_defines = map[string]string{
	"MEMORY_SIZE":    fmt.Sprintf("%v", MEMORY_SIZE),
	"REGISTER_COUNT": fmt.Sprintf("%v", REGISTER_COUNT),
}

// Defines returns the machine constants for expression evaluation.
func Defines() iter.Seq2[string, string] {
	return maps.All(_machine_defines)
}

// Machine is one interpreter instance: a register file, a flat memory,
// and the record of registers written during the run. Every machine owns
// its state outright; concurrent machines never share anything.
type Machine struct {
	Tracef func(format string, args ...any) // If set, traces execution.

	Register [REGISTER_COUNT]int64 // Register file.
	Memory   []int64               // Flat memory cells.

	Steps   int // Instructions dispatched.
	Skipped int // Instructions with unrecognized opcodes.

	written map[uint8]int64 // Last value written per recorded register.
	touched []uint8         // Recorded registers, first-touch order.
}

// MachineOption configures a Machine at construction.
type MachineOption func(*Machine)

// WithMemorySize sets the number of memory cells.
func WithMemorySize(cells int) MachineOption {
	return func(m *Machine) {
		m.Memory = make([]int64, cells)
	}
}

// WithTracef attaches an execution tracer.
func WithTracef(tracef func(format string, args ...any)) MachineOption {
	return func(m *Machine) {
		m.Tracef = tracef
	}
}

// NewMachine creates a machine with zeroed registers and memory.
func NewMachine(options ...MachineOption) (m *Machine) {
	m = &Machine{}

	for _, option := range options {
		option(m)
	}

	if m.Memory == nil {
		m.Memory = make([]int64, MEMORY_SIZE)
	}

	m.Reset()

	return
}

// Reset rezeroes all machine state for a fresh run.
func (m *Machine) Reset() {
	clear(m.Register[:])
	clear(m.Memory)

	m.Steps = 0
	m.Skipped = 0
	m.written = make(map[uint8]int64, REGISTER_COUNT)
	m.touched = m.touched[:0]
}

func (m *Machine) tracef(format string, args ...any) {
	if m.Tracef != nil {
		m.Tracef(format, args...)
	}
}

// record logs the register's current value into the run record,
// last-write-wins.
func (m *Machine) record(register uint8) {
	if _, ok := m.written[register]; !ok {
		m.touched = append(m.touched, register)
	}

	m.written[register] = m.Register[register]
}

// load returns the memory cell addressed by an operand.
func (m *Machine) load(address uint32) (value int64, err error) {
	if int(address) >= len(m.Memory) {
		err = &ErrAddress{Address: address, Size: len(m.Memory)}
		return
	}

	value = m.Memory[address]

	return
}

// store writes the memory cell addressed by an operand.
func (m *Machine) store(address uint32, value int64) (err error) {
	if int(address) >= len(m.Memory) {
		err = &ErrAddress{Address: address, Size: len(m.Memory)}
		return
	}

	m.Memory[address] = value

	return
}

// Step dispatches a single instruction word.
//
// The word's register is recorded after dispatch, even for unrecognized
// opcodes, which change nothing but still log the register's current
// contents.
func (m *Machine) Step(word isa.Word) (err error) {
	op, register, operand := word.Fields()

	m.Steps += 1

	switch op {
	case isa.OP_LOAD_CONST:
		m.Register[register] = int64(operand)
		m.tracef("%v: r%v = %v", word, register, m.Register[register])

	case isa.OP_LOAD_MEM:
		var value int64
		value, err = m.load(operand)
		if err != nil {
			return
		}
		m.Register[register] = value
		m.tracef("%v: r%v = [0x%04X] = %v", word, register, operand, value)

	case isa.OP_STORE_MEM:
		err = m.store(operand, m.Register[register])
		if err != nil {
			return
		}
		m.tracef("%v: [0x%04X] = r%v = %v", word, operand, register, m.Register[register])

	case isa.OP_NEG_MEM:
		var value int64
		value, err = m.load(operand)
		if err != nil {
			return
		}
		m.Register[register] = -value
		m.tracef("%v: r%v = -[0x%04X] = %v", word, register, operand, -value)

	default:
		m.Skipped += 1
		m.tracef("%v: skipped", word)
	}

	m.record(register)

	return
}

// Run executes the stream in one linear pass from the machine's current
// state. There are no branches; the stream either completes or fails
// fast, with the failing instruction's index wrapped in ErrRuntime.
func (m *Machine) Run(words []isa.Word) (err error) {
	for n, word := range words {
		err = m.Step(word)
		if err != nil {
			return &ErrRuntime{Step: n, Err: err}
		}
	}

	return
}

// ValidateRange checks a memory dump window. Callers check before a run
// begins, so a bad window executes nothing. start >= end is legal and
// yields an empty window.
func (m *Machine) ValidateRange(start, end int) (err error) {
	if start < 0 || start >= len(m.Memory) || end < 0 || end > len(m.Memory) {
		err = &ErrDumpRange{Start: start, End: end, Size: len(m.Memory)}
	}

	return
}

// Snapshot captures the recorded registers and the [start,end) memory
// window.
func (m *Machine) Snapshot(start, end int) (snap *Snapshot, err error) {
	err = m.ValidateRange(start, end)
	if err != nil {
		return
	}

	snap = &Snapshot{}

	for _, register := range m.touched {
		snap.Registers = append(snap.Registers, RegisterState{
			Index: register,
			Value: m.written[register],
		})
	}

	for address := start; address < end; address++ {
		snap.Memory = append(snap.Memory, MemoryState{
			Address: uint32(address),
			Value:   m.Memory[address],
		})
	}

	return
}
