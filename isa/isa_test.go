package isa_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/uvm32/isa"
)

var _ = Describe("Encode", func() {
	It("packs fields least significant first", func() {
		// ldc r0, 5 -> opcode 6, register 0, operand 5
		word, err := isa.Encode(isa.OP_LOAD_CONST, 0, 5)
		Expect(err).ToNot(HaveOccurred())
		Expect(word).To(Equal(isa.Word(0x00002806)))

		// stm r0, [10] -> opcode 25, register 0, operand 10
		word, err = isa.Encode(isa.OP_STORE_MEM, 0, 10)
		Expect(err).ToNot(HaveOccurred())
		Expect(word).To(Equal(isa.Word(0x00005019)))
	})

	It("accepts every field at its maximum", func() {
		word, err := isa.Encode(isa.Op(31), 63, 1<<21-1)
		Expect(err).ToNot(HaveOccurred())
		Expect(word).To(Equal(isa.Word(0xFFFFFFFF)))
	})

	It("rejects an oversized opcode", func() {
		_, err := isa.Encode(isa.Op(32), 0, 0)
		Expect(err).To(HaveOccurred())

		var fieldErr *isa.ErrField
		Expect(errors.As(err, &fieldErr)).To(BeTrue())
		Expect(fieldErr.Field).To(Equal("opcode"))
		Expect(fieldErr.Value).To(Equal(int64(32)))
		Expect(fieldErr.Bits).To(Equal(isa.OPCODE_BITS))
	})

	It("rejects a negative opcode", func() {
		_, err := isa.Encode(isa.Op(-1), 0, 0)
		Expect(err).To(HaveOccurred())
	})

	It("rejects an oversized register", func() {
		_, err := isa.Encode(isa.OP_LOAD_CONST, 64, 0)
		Expect(err).To(HaveOccurred())

		var fieldErr *isa.ErrField
		Expect(errors.As(err, &fieldErr)).To(BeTrue())
		Expect(fieldErr.Field).To(Equal("register"))
	})

	It("rejects an oversized operand", func() {
		_, err := isa.Encode(isa.OP_LOAD_CONST, 0, 1<<21)
		Expect(err).To(HaveOccurred())

		var fieldErr *isa.ErrField
		Expect(errors.As(err, &fieldErr)).To(BeTrue())
		Expect(fieldErr.Field).To(Equal("operand"))
		Expect(fieldErr.Bits).To(Equal(isa.OPERAND_BITS))
	})
})

var _ = Describe("Fields", func() {
	It("unpacks the documented example", func() {
		op, register, operand := isa.Word(0x00002806).Fields()
		Expect(op).To(Equal(isa.OP_LOAD_CONST))
		Expect(register).To(Equal(uint8(0)))
		Expect(operand).To(Equal(uint32(5)))
	})

	It("matches the single-field accessors", func() {
		word := isa.Word(0x00005019)
		op, register, operand := word.Fields()
		Expect(op).To(Equal(word.Opcode()))
		Expect(register).To(Equal(word.Register()))
		Expect(operand).To(Equal(word.Operand()))
	})

	It("is total over unrecognized opcodes", func() {
		op, register, operand := isa.Word(0xFFFFFFFF).Fields()
		Expect(op).To(Equal(isa.Op(31)))
		Expect(register).To(Equal(uint8(63)))
		Expect(operand).To(Equal(uint32(1<<21-1)))
		Expect(op.Recognized()).To(BeFalse())
	})

	It("round-trips every in-range field combination it is shown", func() {
		opcodes := []uint32{0, 1, 6, 8, 10, 25, 30, 31}
		registers := []uint32{0, 1, 31, 32, 62, 63}
		operands := []uint32{0, 1, 5, 10, 1023, 1024, 0xABCDE, 1<<21 - 1}

		for _, op := range opcodes {
			for _, register := range registers {
				for _, operand := range operands {
					word, err := isa.Encode(isa.Op(op), register, operand)
					Expect(err).ToNot(HaveOccurred())

					gotOp, gotRegister, gotOperand := word.Fields()
					Expect(gotOp).To(Equal(isa.Op(op)))
					Expect(gotRegister).To(Equal(uint8(register)))
					Expect(gotOperand).To(Equal(operand))
				}
			}
		}
	})

	It("re-encodes any decoded word exactly", func() {
		words := []isa.Word{
			0x00000000,
			0x00002806,
			0x00005019,
			0xDEADBEEF,
			0x80000001,
			0xFFFFFFFF,
		}

		for _, word := range words {
			op, register, operand := word.Fields()
			again, err := isa.Encode(op, uint32(register), operand)
			Expect(err).ToNot(HaveOccurred())
			Expect(again).To(Equal(word))
		}
	})
})

var _ = Describe("Op", func() {
	It("renders mnemonics", func() {
		Expect(isa.OP_LOAD_CONST.String()).To(Equal("ldc"))
		Expect(isa.OP_LOAD_MEM.String()).To(Equal("ldm"))
		Expect(isa.OP_NEG_MEM.String()).To(Equal("neg"))
		Expect(isa.OP_STORE_MEM.String()).To(Equal("stm"))
		Expect(isa.Op(31).String()).To(Equal("Op(31)"))
	})

	It("recognizes exactly the four machine opcodes", func() {
		recognized := 0
		for op := range 32 {
			if isa.Op(op).Recognized() {
				recognized++
			}
		}
		Expect(recognized).To(Equal(4))
	})
})

var _ = Describe("Word", func() {
	It("renders the packed value and mnemonic", func() {
		text := isa.Word(0x00002806).String()
		Expect(text).To(ContainSubstring("0x00002806"))
		Expect(text).To(ContainSubstring("ldc"))
		Expect(text).To(ContainSubstring("r0"))
	})
})
