// Package table enumerates the ALU over an iteration domain and
// serializes the result as a tab-delimited truth table.
//
// A table is described by a Config: the opcode subset to enumerate and
// the Schema (with or without the flag columns). Rows are produced with
// A ascending in the outer loop, B in the middle and the opcode in the
// inner loop, so the output is reproducible byte for byte. The number of
// rows is always 16 x 16 x len(subset).
package table
