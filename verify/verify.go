// Package verify checks truth tables against the ALU evaluator and
// against user supplied Starlark properties.
package verify

import (
	"github.com/ezrec/nibalu/table"
)

// Table checks that rows are exactly the table cfg declares: the
// cross-product row count, in enumeration order, each matching the
// evaluator.
func Table(cfg table.Config, rows []table.Row) (err error) {
	err = cfg.Validate()
	if err != nil {
		return
	}

	if len(rows) != cfg.ExpectedRows() {
		err = &table.ErrRowCount{Expected: cfg.ExpectedRows(), Got: len(rows)}
		return
	}

	index := 0
	for expected := range cfg.Rows() {
		if rows[index] != expected {
			err = &ErrMismatch{Index: index, Got: rows[index], Expected: expected}
			return
		}
		index++
	}

	return
}
