package table

import (
	"errors"

	"github.com/ezrec/nibalu/translate"
)

var f = translate.From

var (
	ErrConfigUnknown  = errors.New(f("table unknown"))
	ErrSchemaInvalid  = errors.New(f("schema invalid"))
	ErrSchemaOpcode   = errors.New(f("flag schema requires arithmetic opcodes"))
	ErrHeaderMissing  = errors.New(f("header missing"))
	ErrHeaderInvalid  = errors.New(f("header invalid"))
	ErrFieldCount     = errors.New(f("wrong number of fields"))
	ErrFlagInvalid    = errors.New(f("flag is not 0 or 1"))
	ErrRowCountDiffer = errors.New(f("row count differs from the iteration domain"))
)

// ErrRowCount is a table whose size is not the declared cross product.
type ErrRowCount struct {
	Expected int
	Got      int
}

func (err *ErrRowCount) Error() string {
	return f("%v: expected %d rows, got %d", ErrRowCountDiffer, err.Expected, err.Got)
}

func (err *ErrRowCount) Unwrap() error {
	return ErrRowCountDiffer
}

// ErrSyntax locates a malformed line of a table.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrOutput is a failure to produce the output file.
type ErrOutput struct {
	Path string
	Err  error
}

func (err *ErrOutput) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrOutput) Unwrap() error {
	return err.Err
}
