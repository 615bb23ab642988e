package table

import (
	"strings"

	"github.com/ezrec/nibalu/alu"
	"github.com/ezrec/nibalu/nibble"
)

// Row is one line of a truth table.
type Row struct {
	A        nibble.Nibble
	B        nibble.Nibble
	Opcode   alu.Opcode
	Output   nibble.Nibble
	Flags    alu.Flags
	HasFlags bool // Set for rows of a SCHEMA_FLAGS table.
}

func flagField(set bool) string {
	if set {
		return FLAG_SET
	}
	return FLAG_CLEAR
}

// Fields renders the row's columns.
func (row Row) Fields() (fields []string) {
	fields = []string{
		row.A.String(),
		row.B.String(),
		row.Opcode.Nibble().String(),
		row.Output.String(),
	}

	if row.HasFlags {
		fields = append(fields,
			flagField(row.Flags.Zero),
			flagField(row.Flags.Carry),
			flagField(row.Flags.Overflow),
		)
	}

	return
}

// String is the tab separated line, without a newline.
func (row Row) String() string {
	return strings.Join(row.Fields(), "\t")
}

func parseFlag(field string) (set bool, err error) {
	switch field {
	case FLAG_SET:
		set = true
	case FLAG_CLEAR:
	default:
		err = ErrFlagInvalid
	}
	return
}

// ParseRow decodes a line of a table with the given schema.
func ParseRow(line string, sc Schema) (row Row, err error) {
	fields := strings.Split(line, "\t")
	if len(fields) != len(sc.Columns()) {
		err = ErrFieldCount
		return
	}

	var code nibble.Nibble
	nibbles := []*nibble.Nibble{&row.A, &row.B, &code, &row.Output}

	for n, ptr := range nibbles {
		*ptr, err = nibble.Parse(fields[n])
		if err != nil {
			return
		}
	}

	row.Opcode, err = alu.Decode(code)
	if err != nil {
		return
	}

	if sc == SCHEMA_FLAGS {
		row.HasFlags = true
		flags := []*bool{&row.Flags.Zero, &row.Flags.Carry, &row.Flags.Overflow}
		for n, ptr := range flags {
			*ptr, err = parseFlag(fields[4+n])
			if err != nil {
				return
			}
		}
	}

	return
}
