// Package alu implements a 4-bit arithmetic logic unit.
//
// Sixteen opcodes are split into two families. The arithmetic family
// (add, sub, rsub, mul) produces a result nibble together with the Zero,
// Carry and Overflow flags. The logic and shift family produces only a
// result nibble.
//
// Evaluate is total over the 4-bit x 4-bit x 4-bit input space; the only
// failure is a domain violation in one of its arguments.
package alu
