package asm

import (
	"iter"

	"github.com/ezrec/uvm32/isa"
)

// Entry is one assembled listing line.
type Entry struct {
	LineNo int      // 1-based source line number.
	Source string   // Raw line text.
	Word   isa.Word // Packed instruction.
}

// Program is an assembled instruction stream, in source order.
type Program struct {
	Entries []Entry
}

// Binary returns the packed instruction stream.
func (prog *Program) Binary() (words []isa.Word) {
	for _, entry := range prog.Entries {
		words = append(words, entry.Word)
	}

	return
}

// Words returns an iterator over the instruction stream, keyed by
// instruction index.
func (prog *Program) Words() iter.Seq2[int, isa.Word] {
	return func(yield func(index int, word isa.Word) bool) {
		for n, entry := range prog.Entries {
			if !yield(n, entry.Word) {
				return
			}
		}
	}
}
