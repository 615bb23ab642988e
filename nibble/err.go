package nibble

import (
	"errors"

	"github.com/ezrec/nibalu/translate"
)

var f = translate.From

var (
	ErrDomain = errors.New(f("outside the 4-bit domain"))
	ErrSyntax = errors.New(f("not a 4-bit binary string"))
)

// ErrRange is a value that does not fit in a nibble.
type ErrRange int

func (err ErrRange) Error() string {
	return f("%d is %v", int(err), ErrDomain)
}

func (err ErrRange) Unwrap() error {
	return ErrDomain
}

// ErrParse is a string that is not exactly four binary digits.
type ErrParse string

func (err ErrParse) Error() string {
	return f("'%v' is %v", string(err), ErrSyntax)
}

func (err ErrParse) Unwrap() error {
	return ErrSyntax
}
