package table

import (
	"strings"
)

// Schema selects the column layout of a table.
type Schema int

//go:generate go tool stringer -linecomment -type=Schema
const (
	SCHEMA_NOFLAGS = Schema(0) // noflags
	SCHEMA_FLAGS   = Schema(1) // flags
)

const (
	FLAG_CLEAR = "0"
	FLAG_SET   = "1"
)

var _schema_columns = map[Schema][]string{
	SCHEMA_NOFLAGS: {"A[4]", "B[4]", "C[4]", "Output[4]"},
	SCHEMA_FLAGS:   {"A[4]", "B[4]", "C[4]", "Output[4]", "Zero_flag", "Carry", "Overflow_flag"},
}

// Valid reports whether sc is a known schema.
func (sc Schema) Valid() bool {
	_, ok := _schema_columns[sc]
	return ok
}

// Columns returns the column names of the schema.
func (sc Schema) Columns() []string {
	return _schema_columns[sc]
}

// Header is the tab separated header line, without a newline.
func (sc Schema) Header() string {
	return strings.Join(sc.Columns(), "\t")
}

// ParseHeader identifies the schema of a header line.
func ParseHeader(line string) (sc Schema, err error) {
	for sc = range Schema(len(_schema_columns)) {
		if sc.Header() == line {
			return
		}
	}

	sc = 0
	err = ErrHeaderInvalid
	return
}
