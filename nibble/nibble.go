// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package nibble

import (
	"fmt"
	"iter"
)

const (
	WIDTH = 4                        // Bits in a nibble.
	COUNT = 1 << WIDTH               // Number of distinct nibbles.
	MASK  = Nibble(COUNT - 1)        // All bits set.
	SIGN  = Nibble(1 << (WIDTH - 1)) // Two's-complement sign bit.
)

// Nibble is a 4-bit unsigned value.
type Nibble uint8

// FromUnsigned checks that value fits in 4 bits.
func FromUnsigned(value int) (n Nibble, err error) {
	if value < 0 || value >= COUNT {
		err = ErrRange(value)
		return
	}

	n = Nibble(value)
	return
}

// Must is FromUnsigned for values already known to be in range.
// It panics on a domain violation.
func Must(value int) Nibble {
	n, err := FromUnsigned(value)
	if err != nil {
		panic(err)
	}
	return n
}

// FromSigned encodes value as 4-bit two's complement.
// Out of range values wrap silently; overflow is detected by the caller.
func FromSigned(value int) Nibble {
	return Nibble(value & int(MASK))
}

// FromBits assembles a nibble from its bits, most significant first.
func FromBits(bits [WIDTH]bool) (n Nibble) {
	for _, bit := range bits {
		n <<= 1
		if bit {
			n |= 1
		}
	}
	return
}

// Parse decodes a 4-digit binary string such as "1010".
func Parse(text string) (n Nibble, err error) {
	if len(text) != WIDTH {
		err = ErrParse(text)
		return
	}

	for _, ch := range []byte(text) {
		n <<= 1
		switch ch {
		case '0':
		case '1':
			n |= 1
		default:
			err = ErrParse(text)
			n = 0
			return
		}
	}

	return
}

// All iterates over every nibble in ascending order.
func All() iter.Seq[Nibble] {
	return func(yield func(Nibble) bool) {
		for n := range Nibble(COUNT) {
			if !yield(n) {
				return
			}
		}
	}
}

// Valid reports whether n is within the 4-bit domain.
func (n Nibble) Valid() bool {
	return n <= MASK
}

// Unsigned returns the base-2 value, [0,15].
func (n Nibble) Unsigned() int {
	return int(n)
}

// Signed returns the two's-complement value, [-8,7].
func (n Nibble) Signed() int {
	value := int(n)
	if n.Negative() {
		value -= COUNT
	}
	return value
}

// Negative is true when the sign bit is set.
func (n Nibble) Negative() bool {
	return n&SIGN != 0
}

// OnesComplement flips all four bits.
func (n Nibble) OnesComplement() Nibble {
	return ^n & MASK
}

// Bits returns the bits of n, most significant first.
func (n Nibble) Bits() (bits [WIDTH]bool) {
	for i := range WIDTH {
		bits[i] = (n>>(WIDTH-1-i))&1 == 1
	}
	return
}

// String renders n as four binary digits.
func (n Nibble) String() string {
	if !n.Valid() {
		return fmt.Sprintf("Nibble(%d)", uint8(n))
	}

	var text [WIDTH]byte
	for i, bit := range n.Bits() {
		text[i] = '0'
		if bit {
			text[i] = '1'
		}
	}
	return string(text[:])
}
