package alu

import (
	"errors"

	"github.com/ezrec/nibalu/translate"
)

var f = translate.From

var (
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrSubsetEmpty     = errors.New(f("opcode subset empty"))
	ErrSubsetUnordered = errors.New(f("opcode subset not strictly ascending"))
	ErrMnemonicInvalid = errors.New(f("mnemonic invalid"))
)

// ErrOpcode is an opcode outside the 4-bit opcode space.
type ErrOpcode int

func (eo ErrOpcode) Error() string {
	return f("opcode %d: %v", int(eo), ErrOpcodeInvalid)
}

func (eo ErrOpcode) Unwrap() error {
	return ErrOpcodeInvalid
}

// ErrOperand is an operand outside the nibble domain.
type ErrOperand struct {
	Name string
	Err  error
}

func (err *ErrOperand) Error() string {
	return f("operand %v: %v", err.Name, err.Err)
}

func (err *ErrOperand) Unwrap() error {
	return err.Err
}

// ErrMnemonic is a name that is not an opcode mnemonic.
type ErrMnemonic string

func (err ErrMnemonic) Error() string {
	return f("'%v': %v", string(err), ErrMnemonicInvalid)
}

func (err ErrMnemonic) Unwrap() error {
	return ErrMnemonicInvalid
}
