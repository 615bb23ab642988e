package verify

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/nibalu/table"
)

// Parameters visible to a property expression: unsigned values,
// two's-complement values, then flags (None on a flagless table).
var _property_params = []string{
	"a", "b", "op", "out",
	"sa", "sb", "sout",
	"zero", "carry", "overflow",
}

// Property is a Starlark boolean expression over a row, e.g.
// "zero == (out == 0)".
type Property struct {
	Expr string

	thread *starlark.Thread
	check  starlark.Callable
}

// NewProperty compiles expr.
func NewProperty(expr string) (prop *Property, err error) {
	if strings.ContainsAny(expr, "\n;") {
		err = ErrPropertyMultiple
		return
	}

	prog := "def check(" + strings.Join(_property_params, ", ") + "):\n" +
		"    return (" + expr + ")\n"

	thread := &starlark.Thread{Name: "property"}
	opts := syntax.FileOptions{}
	dict, err := starlark.ExecFileOptions(&opts, thread, "property", prog, nil)
	if err != nil {
		return
	}

	prop = &Property{
		Expr:   expr,
		thread: thread,
		check:  dict["check"].(starlark.Callable),
	}
	return
}

func flagValue(row table.Row, set bool) starlark.Value {
	if !row.HasFlags {
		return starlark.None
	}
	return starlark.Bool(set)
}

// Test evaluates the property on a row.
func (prop *Property) Test(row table.Row) (ok bool, err error) {
	args := starlark.Tuple{
		starlark.MakeInt(row.A.Unsigned()),
		starlark.MakeInt(row.B.Unsigned()),
		starlark.MakeInt(int(row.Opcode)),
		starlark.MakeInt(row.Output.Unsigned()),
		starlark.MakeInt(row.A.Signed()),
		starlark.MakeInt(row.B.Signed()),
		starlark.MakeInt(row.Output.Signed()),
		flagValue(row, row.Flags.Zero),
		flagValue(row, row.Flags.Carry),
		flagValue(row, row.Flags.Overflow),
	}

	value, err := starlark.Call(prop.thread, prop.check, args, nil)
	if err != nil {
		return
	}

	ok = bool(value.Truth())
	return
}

// Properties checks every property on every row, stopping at the first
// failure.
func Properties(rows []table.Row, props ...*Property) (err error) {
	for _, prop := range props {
		for index, row := range rows {
			var ok bool
			ok, err = prop.Test(row)
			if err == nil && !ok {
				err = ErrPropertyFailed
			}
			if err != nil {
				err = &ErrProperty{Expr: prop.Expr, Index: index, Row: row, Err: err}
				return
			}
		}
	}

	return
}
