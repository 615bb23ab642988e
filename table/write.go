// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package table

import (
	"bufio"
	"errors"
	"io"
	"log"
	"os"
)

// Write serializes the table described by cfg to w.
//
// Generation aborts on the first write error, and count is then zero:
// buffered rows are not known to have reached w. A table whose row count
// is not the declared cross product is reported as *ErrRowCount.
func Write(w io.Writer, cfg Config) (count int, err error) {
	defer func() {
		if err != nil {
			count = 0
		}
	}()

	err = cfg.Validate()
	if err != nil {
		return
	}

	bw := bufio.NewWriter(w)

	_, err = io.WriteString(bw, cfg.Schema.Header()+"\n")
	if err != nil {
		return
	}

	for row := range cfg.Rows() {
		_, err = io.WriteString(bw, row.String()+"\n")
		if err != nil {
			return
		}
		count++
	}

	err = bw.Flush()
	if err != nil {
		return
	}

	if count != cfg.ExpectedRows() {
		err = &ErrRowCount{Expected: cfg.ExpectedRows(), Got: count}
	}

	return
}

// Generator produces a configured table.
type Generator struct {
	Verbose bool   // If set, logs each table produced.
	Config  Config // Table to produce.
}

// Write serializes the configured table to w.
func (gen *Generator) Write(w io.Writer) (count int, err error) {
	count, err = Write(w, gen.Config)
	if err == nil && gen.Verbose {
		log.Printf("table: %v: %d rows (%v)", gen.Config.Name, count, gen.Config.Subset)
	}
	return
}

// Generate writes the configured table to the file at path, replacing it.
// On failure the partial file is removed; a retry regenerates it wholesale.
func (gen *Generator) Generate(path string) (count int, err error) {
	defer func() {
		if err != nil {
			err = &ErrOutput{Path: path, Err: err}
		}
	}()

	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	count, err = gen.Write(ouf)
	err = errors.Join(err, ouf.Close())
	if err != nil {
		os.Remove(path)
		count = 0
		return
	}

	if gen.Verbose {
		log.Printf("table: %v written to %v", gen.Config.Name, path)
	}

	return
}
