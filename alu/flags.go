package alu

import (
	"github.com/ezrec/nibalu/nibble"
)

// Flags is the status output of an arithmetic opcode.
type Flags struct {
	Zero     bool // Result is all zero bits.
	Carry    bool // Unsigned carry out of ADD, or borrow in SUB/RSUB.
	Overflow bool // Signed result does not fit in a nibble.
}

// String renders the flags as "ZCV", with '-' for each clear flag.
func (fl Flags) String() string {
	text := []byte("---")
	if fl.Zero {
		text[0] = 'Z'
	}
	if fl.Carry {
		text[1] = 'C'
	}
	if fl.Overflow {
		text[2] = 'V'
	}
	return string(text)
}

// Result of a single ALU evaluation.
type Result struct {
	Output   nibble.Nibble
	Flags    Flags
	HasFlags bool // Set only for the arithmetic family.
}

func zero(out nibble.Nibble) bool {
	return out == 0
}

// logic wraps a flagless result.
func logic(out nibble.Nibble) Result {
	return Result{Output: out}
}
