// Package image reads and writes packed uvm32 instruction streams.
//
// An image is a headerless sequence of 4-byte little-endian words, one
// word per instruction, with no trailer and no padding.
package image

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/ezrec/uvm32/isa"
)

// WORD_BYTES is the wire size of one instruction.
const WORD_BYTES = 4

// Write emits the instruction stream as little-endian words.
func Write(w io.Writer, words []isa.Word) (err error) {
	err = binary.Write(w, binary.LittleEndian, words)
	if err != nil {
		err = fmt.Errorf("writing image: %w", err)
	}

	return
}

// Read consumes an entire instruction stream. Empty streams are rejected,
// as are streams whose byte length is not a whole number of words; a
// trailing fragment is never silently dropped.
func Read(r io.Reader) (words []isa.Word, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		err = fmt.Errorf("reading image: %w", err)
		return
	}

	if len(data) == 0 {
		err = ErrEmpty
		return
	}

	if len(data)%WORD_BYTES != 0 {
		err = ErrMisaligned(len(data))
		return
	}

	words = make([]isa.Word, 0, len(data)/WORD_BYTES)
	for at := 0; at < len(data); at += WORD_BYTES {
		words = append(words, isa.Word(binary.LittleEndian.Uint32(data[at:])))
	}

	return
}

// Save writes the instruction stream to a file. The image is rendered in
// memory first, so a failed render leaves no file behind.
func Save(path string, words []isa.Word) (err error) {
	var buf bytes.Buffer

	err = Write(&buf, words)
	if err != nil {
		return
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Load reads an instruction stream from a file.
func Load(path string) (words []isa.Word, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Read(inf)
}
