package alu

import (
	"github.com/ezrec/nibalu/nibble"
)

// Opcode selects an ALU operation.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD  = Opcode(0)  // add
	OP_SUB  = Opcode(1)  // sub
	OP_RSUB = Opcode(2)  // rsub
	OP_MUL  = Opcode(3)  // mul
	OP_AND  = Opcode(4)  // and
	OP_OR   = Opcode(5)  // or
	OP_XOR  = Opcode(6)  // xor
	OP_NAND = Opcode(7)  // nand
	OP_PASS = Opcode(8)  // pass
	OP_NOT  = Opcode(9)  // not
	OP_SHL  = Opcode(10) // shl
	OP_SHR  = Opcode(11) // shr
	OP_SLA  = Opcode(12) // sla
	OP_SRA  = Opcode(13) // sra
	OP_ROL  = Opcode(14) // rol
	OP_ROR  = Opcode(15) // ror
)

const OPCODE_COUNT = 16 // Size of the opcode space.

// Decode converts an opcode nibble into an Opcode.
func Decode(n nibble.Nibble) (op Opcode, err error) {
	if !n.Valid() {
		err = ErrOpcode(n)
		return
	}

	op = Opcode(n)
	return
}

// Valid reports whether op is one of the sixteen opcodes.
func (op Opcode) Valid() bool {
	return op >= OP_ADD && op <= OP_ROR
}

// Arithmetic reports whether op is a flag-producing opcode.
func (op Opcode) Arithmetic() bool {
	return op >= OP_ADD && op <= OP_MUL
}

// Canonical resolves opcode aliases.
// Arithmetic shift left is the same operation as logical shift left.
func (op Opcode) Canonical() Opcode {
	if op == OP_SLA {
		return OP_SHL
	}
	return op
}

// Nibble returns the 4-bit encoding of op.
func (op Opcode) Nibble() nibble.Nibble {
	return nibble.Nibble(op)
}

// ParseMnemonic returns the opcode named by its mnemonic, e.g. "rsub".
func ParseMnemonic(name string) (op Opcode, err error) {
	for op = range Opcode(OPCODE_COUNT) {
		if op.String() == name {
			return
		}
	}

	op = 0
	err = ErrMnemonic(name)
	return
}
