// Package nibble implements the 4-bit storage unit of the ALU.
//
// A Nibble holds an unsigned value in [0,15]. The same bits can be viewed
// as a two's-complement integer in [-8,7] through Signed(); the most
// significant bit is the sign bit. Values outside the 4-bit range are a
// contract violation and are rejected by the constructors with ErrDomain.
package nibble
