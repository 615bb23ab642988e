// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package alu

import (
	"github.com/ezrec/nibalu/nibble"
)

// Evaluate computes op over the operands a and b.
//
// Arithmetic opcodes set Result.HasFlags. A domain violation in any
// argument is reported without computing anything.
func Evaluate(a, b nibble.Nibble, op Opcode) (res Result, err error) {
	switch {
	case !a.Valid():
		err = &ErrOperand{Name: "A", Err: nibble.ErrRange(a)}
		return
	case !b.Valid():
		err = &ErrOperand{Name: "B", Err: nibble.ErrRange(b)}
		return
	case !op.Valid():
		err = ErrOpcode(op)
		return
	}

	switch op.Canonical() {
	case OP_ADD:
		res = add(a, b)
	case OP_SUB:
		res = subtract(a, b)
	case OP_RSUB:
		res = subtract(b, a)
	case OP_MUL:
		res = multiply(a, b)
	case OP_AND:
		res = logic(a & b)
	case OP_OR:
		res = logic(a | b)
	case OP_XOR:
		res = logic(a ^ b)
	case OP_NAND:
		res = logic((a & b).OnesComplement())
	case OP_PASS:
		res = logic(a)
	case OP_NOT:
		res = logic(a.OnesComplement())
	case OP_SHL:
		res = logic((a << 1) & nibble.MASK)
	case OP_SHR:
		res = logic(a >> 1)
	case OP_SRA:
		res = logic(nibble.FromSigned(a.Signed() >> 1))
	case OP_ROL:
		res = logic(((a << 1) | (a >> (nibble.WIDTH - 1))) & nibble.MASK)
	case OP_ROR:
		res = logic((a >> 1) | ((a & 1) << (nibble.WIDTH - 1)))
	}

	return
}

// MustEvaluate is Evaluate for arguments known to be in the domain.
// It panics on a domain violation.
func MustEvaluate(a, b nibble.Nibble, op Opcode) Result {
	res, err := Evaluate(a, b, op)
	if err != nil {
		panic(err)
	}
	return res
}

// add is A+B. The carry is the fifth bit of the unsigned sum.
func add(a, b nibble.Nibble) (res Result) {
	sum := a.Unsigned() + b.Unsigned()
	out := nibble.Nibble(sum) & nibble.MASK

	res = Result{
		Output:   out,
		HasFlags: true,
		Flags: Flags{
			Zero:     zero(out),
			Carry:    sum > int(nibble.MASK),
			Overflow: a.Negative() == b.Negative() && out.Negative() != a.Negative(),
		},
	}
	return
}

// subtract is minuend-subtrahend, with Carry set on unsigned borrow.
func subtract(minuend, subtrahend nibble.Nibble) (res Result) {
	m := minuend.Unsigned()
	s := subtrahend.Unsigned()

	borrow := m < s
	diff := m - s
	if borrow {
		diff += nibble.COUNT
	}
	out := nibble.Nibble(diff)

	// Overflow needs operands of differing sign and a result whose
	// sign differs from the minuend.
	overflow := minuend.Negative() != subtrahend.Negative() &&
		out.Negative() != minuend.Negative()

	res = Result{
		Output:   out,
		HasFlags: true,
		Flags: Flags{
			Zero:     zero(out),
			Carry:    borrow,
			Overflow: overflow,
		},
	}
	return
}

// multiply is the signed product truncated to a nibble. Carry is unused.
func multiply(a, b nibble.Nibble) (res Result) {
	product := a.Signed() * b.Signed()
	out := nibble.FromSigned(product)

	res = Result{
		Output:   out,
		HasFlags: true,
		Flags: Flags{
			Zero:     zero(out),
			Overflow: out.Signed() != product,
		},
	}
	return
}
