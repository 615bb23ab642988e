package verify

import (
	"errors"

	"github.com/ezrec/nibalu/table"
	"github.com/ezrec/nibalu/translate"
)

var f = translate.From

var (
	ErrRowMismatch      = errors.New(f("row differs from the evaluator"))
	ErrPropertyFailed   = errors.New(f("property does not hold"))
	ErrPropertyMultiple = errors.New(f("property must be a single expression"))
)

// ErrMismatch is a row that disagrees with the evaluator.
type ErrMismatch struct {
	Index    int       // Zero based row index, excluding the header.
	Got      table.Row // Row as read.
	Expected table.Row // Row as evaluated.
}

func (err *ErrMismatch) Error() string {
	return f("row %d: got '%v' expected '%v': %v", err.Index, err.Got, err.Expected, ErrRowMismatch)
}

func (err *ErrMismatch) Unwrap() error {
	return ErrRowMismatch
}

// ErrProperty is a property that failed on a row.
type ErrProperty struct {
	Expr  string
	Index int
	Row   table.Row
	Err   error
}

func (err *ErrProperty) Error() string {
	return f("$(%v) row %d '%v': %v", err.Expr, err.Index, err.Row, err.Err)
}

func (err *ErrProperty) Unwrap() error {
	return err.Err
}
