package alu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/nibalu/nibble"
)

func TestEvaluate(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		a, b   nibble.Nibble
		op     Opcode
		output nibble.Nibble
		flags  string
	}){
		{"add_overflow", 0b0111, 0b0001, OP_ADD, 0b1000, "--V"},
		{"add_carry_zero", 0b1111, 0b0001, OP_ADD, 0b0000, "ZC-"},
		{"add_neg_neg", 0b1000, 0b1000, OP_ADD, 0b0000, "ZCV"},
		{"add_plain", 0b0010, 0b0011, OP_ADD, 0b0101, "---"},
		{"sub_borrow", 0b0000, 0b0001, OP_SUB, 0b1111, "-C-"},
		{"sub_overflow", 0b1000, 0b0001, OP_SUB, 0b0111, "--V"},
		{"sub_borrow_overflow", 0b0111, 0b1111, OP_SUB, 0b1000, "-CV"},
		{"sub_zero", 0b0101, 0b0101, OP_SUB, 0b0000, "Z--"},
		{"rsub_borrow", 0b0001, 0b0000, OP_RSUB, 0b1111, "-C-"},
		{"rsub_plain", 0b0001, 0b0100, OP_RSUB, 0b0011, "---"},
		{"mul_overflow_zero", 0b0100, 0b0100, OP_MUL, 0b0000, "Z-V"},
		{"mul_neg_neg", 0b1111, 0b1111, OP_MUL, 0b0001, "---"},
		{"mul_min_neg", 0b1000, 0b1111, OP_MUL, 0b1000, "--V"},
		{"mul_fits_min", 0b0010, 0b1100, OP_MUL, 0b1000, "---"},
		{"mul_zero", 0b0000, 0b1011, OP_MUL, 0b0000, "Z--"},
		{"and", 0b1100, 0b1010, OP_AND, 0b1000, ""},
		{"or", 0b1100, 0b1010, OP_OR, 0b1110, ""},
		{"xor", 0b1100, 0b1010, OP_XOR, 0b0110, ""},
		{"nand", 0b1100, 0b1010, OP_NAND, 0b0111, ""},
		{"pass", 0b1010, 0b0110, OP_PASS, 0b1010, ""},
		{"not", 0b1010, 0b0110, OP_NOT, 0b0101, ""},
		{"shl", 0b1011, 0b0000, OP_SHL, 0b0110, ""},
		{"sla", 0b1011, 0b0000, OP_SLA, 0b0110, ""},
		{"shr", 0b1011, 0b0000, OP_SHR, 0b0101, ""},
		{"sra_neg", 0b1011, 0b0000, OP_SRA, 0b1101, ""},
		{"sra_min", 0b1000, 0b0000, OP_SRA, 0b1100, ""},
		{"sra_pos", 0b0110, 0b0000, OP_SRA, 0b0011, ""},
		{"rol", 0b1011, 0b0000, OP_ROL, 0b0111, ""},
		{"ror", 0b1011, 0b0000, OP_ROR, 0b1101, ""},
	}

	for _, entry := range table {
		res, err := Evaluate(entry.a, entry.b, entry.op)
		assert.NoError(err, entry.name)
		assert.Equal(entry.output, res.Output, entry.name)
		assert.Equal(entry.op.Arithmetic(), res.HasFlags, entry.name)
		if res.HasFlags {
			assert.Equal(entry.flags, res.Flags.String(), entry.name)
		} else {
			assert.Equal(Flags{}, res.Flags, entry.name)
		}
	}
}

func TestEvaluate_Domain(t *testing.T) {
	assert := assert.New(t)

	_, err := Evaluate(16, 0, OP_ADD)
	assert.True(errors.Is(err, nibble.ErrDomain))
	var operr *ErrOperand
	assert.True(errors.As(err, &operr))
	assert.Equal("A", operr.Name)

	_, err = Evaluate(0, 200, OP_ADD)
	assert.True(errors.As(err, &operr))
	assert.Equal("B", operr.Name)

	_, err = Evaluate(0, 0, Opcode(16))
	assert.True(errors.Is(err, ErrOpcodeInvalid))
	_, err = Evaluate(0, 0, Opcode(-1))
	assert.True(errors.Is(err, ErrOpcodeInvalid))

	assert.Panics(func() { MustEvaluate(0, 0, Opcode(99)) })
	assert.NotPanics(func() { MustEvaluate(15, 15, OP_ROR) })
}

func TestEvaluate_Total(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for a := range nibble.All() {
		for b := range nibble.All() {
			for op := range Opcode(OPCODE_COUNT) {
				res, err := Evaluate(a, b, op)
				assert.NoError(err)
				assert.True(res.Output.Valid())
				count++
			}
		}
	}
	assert.Equal(4096, count)
}

func TestZeroFlag(t *testing.T) {
	assert := assert.New(t)

	for a := range nibble.All() {
		for b := range nibble.All() {
			for op := range SubsetArithmetic4.All() {
				res := MustEvaluate(a, b, op)
				assert.Equal(res.Output.Unsigned() == 0, res.Flags.Zero, fmt.Sprintf("%v %v %v", a, b, op))
			}
		}
	}
}

func TestAdd_Commutative(t *testing.T) {
	assert := assert.New(t)

	for a := range nibble.All() {
		for b := range nibble.All() {
			assert.Equal(MustEvaluate(a, b, OP_ADD), MustEvaluate(b, a, OP_ADD))
		}
	}
}

func TestAdd_MixedSignsNeverOverflow(t *testing.T) {
	assert := assert.New(t)

	for a := range nibble.All() {
		for b := range nibble.All() {
			res := MustEvaluate(a, b, OP_ADD)
			if a.Negative() != b.Negative() {
				assert.False(res.Flags.Overflow, fmt.Sprintf("%v+%v", a, b))
			}
			// Overflow iff the true signed sum does not fit.
			sum := a.Signed() + b.Signed()
			assert.Equal(sum < -8 || sum > 7, res.Flags.Overflow, fmt.Sprintf("%v+%v", a, b))
			assert.Equal(a.Unsigned()+b.Unsigned() > 15, res.Flags.Carry, fmt.Sprintf("%v+%v", a, b))
		}
	}
}

func TestSub_Mirror(t *testing.T) {
	assert := assert.New(t)

	for a := range nibble.All() {
		for b := range nibble.All() {
			ab := MustEvaluate(a, b, OP_SUB)
			ba := MustEvaluate(a, b, OP_RSUB)
			name := fmt.Sprintf("%v,%v", a, b)

			// RSUB is SUB with the operands swapped.
			assert.Equal(MustEvaluate(b, a, OP_SUB), ba, name)

			// Results are two's-complement negations of each other.
			assert.Equal(nibble.FromSigned(-ab.Output.Signed()), ba.Output, name)

			// Exactly one direction borrows, unless the operands are equal.
			if a == b {
				assert.False(ab.Flags.Carry, name)
				assert.False(ba.Flags.Carry, name)
			} else {
				assert.NotEqual(ab.Flags.Carry, ba.Flags.Carry, name)
			}

			diff := a.Signed() - b.Signed()
			assert.Equal(diff < -8 || diff > 7, ab.Flags.Overflow, name)
		}
	}
}

func TestMul_Overflow(t *testing.T) {
	assert := assert.New(t)

	res := MustEvaluate(0b0100, 0b0100, OP_MUL)
	assert.True(res.Flags.Overflow)
	assert.False(res.Flags.Carry)
	assert.Equal(nibble.Nibble(0), res.Output)

	for a := range nibble.All() {
		for b := range nibble.All() {
			res := MustEvaluate(a, b, OP_MUL)
			product := a.Signed() * b.Signed()
			assert.False(res.Flags.Carry)
			assert.Equal(product < -8 || product > 7, res.Flags.Overflow)
			assert.Equal(nibble.FromSigned(product), res.Output)
		}
	}
}

func TestRotate_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	for a := range nibble.All() {
		left := MustEvaluate(a, 0, OP_ROL).Output
		assert.Equal(a, MustEvaluate(left, 0, OP_ROR).Output, a.String())
		right := MustEvaluate(a, 0, OP_ROR).Output
		assert.Equal(a, MustEvaluate(right, 0, OP_ROL).Output, a.String())
	}
}

func TestShift(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(nibble.Nibble(0b1100), MustEvaluate(0b1000, 0, OP_SRA).Output)

	for a := range nibble.All() {
		for b := range nibble.All() {
			assert.Equal(MustEvaluate(a, b, OP_SHL), MustEvaluate(a, b, OP_SLA))
		}

		sra := MustEvaluate(a, 0, OP_SRA).Output
		shr := MustEvaluate(a, 0, OP_SHR).Output
		if a.Negative() {
			assert.NotEqual(sra, shr, a.String())
			assert.Equal(shr|nibble.SIGN, sra, a.String())
		} else {
			assert.Equal(shr, sra, a.String())
		}
	}
}

func TestLogic_IgnoresB(t *testing.T) {
	assert := assert.New(t)

	unary := Subset{OP_PASS, OP_NOT, OP_SHL, OP_SHR, OP_SLA, OP_SRA, OP_ROL, OP_ROR}
	for a := range nibble.All() {
		for op := range unary.All() {
			want := MustEvaluate(a, 0, op)
			for b := range nibble.All() {
				assert.Equal(want, MustEvaluate(a, b, op), op.String())
			}
		}
	}
}
