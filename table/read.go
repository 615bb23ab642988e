package table

import (
	"bufio"
	"io"
)

// Read parses a table, identifying its schema from the header line.
func Read(r io.Reader) (sc Schema, rows []Row, err error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		err = scanner.Err()
		if err == nil {
			err = ErrHeaderMissing
		}
		return
	}

	header := scanner.Text()
	sc, err = ParseHeader(header)
	if err != nil {
		err = &ErrSyntax{LineNo: 1, Line: header, Err: err}
		return
	}

	for lineno := 2; scanner.Scan(); lineno++ {
		line := scanner.Text()
		var row Row
		row, err = ParseRow(line, sc)
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			rows = nil
			return
		}
		rows = append(rows, row)
	}

	err = scanner.Err()
	if err != nil {
		rows = nil
	}

	return
}
