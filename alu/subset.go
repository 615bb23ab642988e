package alu

import (
	"iter"
	"slices"
	"strings"
)

// Subset is an ordered set of opcodes, the iteration domain of a table.
type Subset []Opcode

var (
	// SubsetArithmetic3 is the arithmetic family without multiply.
	SubsetArithmetic3 = Subset{OP_ADD, OP_SUB, OP_RSUB}
	// SubsetArithmetic4 is the full arithmetic family.
	SubsetArithmetic4 = Subset{OP_ADD, OP_SUB, OP_RSUB, OP_MUL}
	// SubsetAll is every opcode.
	SubsetAll = Subset{
		OP_ADD, OP_SUB, OP_RSUB, OP_MUL,
		OP_AND, OP_OR, OP_XOR, OP_NAND,
		OP_PASS, OP_NOT, OP_SHL, OP_SHR,
		OP_SLA, OP_SRA, OP_ROL, OP_ROR,
	}
)

// ParseSubset parses a comma separated mnemonic list, e.g. "add,sub".
func ParseSubset(text string) (subset Subset, err error) {
	for _, word := range strings.Split(text, ",") {
		var op Opcode
		op, err = ParseMnemonic(strings.TrimSpace(word))
		if err != nil {
			subset = nil
			return
		}
		subset = append(subset, op)
	}

	err = subset.Validate()
	if err != nil {
		subset = nil
	}
	return
}

// Validate checks the subset is non-empty, in the opcode space and
// strictly ascending.
func (subset Subset) Validate() (err error) {
	if len(subset) == 0 {
		return ErrSubsetEmpty
	}

	for n, op := range subset {
		if !op.Valid() {
			return ErrOpcode(op)
		}
		if n > 0 && op <= subset[n-1] {
			return ErrSubsetUnordered
		}
	}

	return
}

// Len is the number of opcodes in the subset.
func (subset Subset) Len() int {
	return len(subset)
}

// Contains reports whether op is in the subset.
func (subset Subset) Contains(op Opcode) bool {
	return slices.Contains(subset, op)
}

// Arithmetic reports whether every opcode produces flags.
func (subset Subset) Arithmetic() bool {
	for _, op := range subset {
		if !op.Arithmetic() {
			return false
		}
	}
	return true
}

// All iterates over the opcodes in order.
func (subset Subset) All() iter.Seq[Opcode] {
	return slices.Values(subset)
}

// String is the comma separated mnemonic list.
func (subset Subset) String() string {
	names := make([]string, len(subset))
	for n, op := range subset {
		names[n] = op.String()
	}
	return strings.Join(names, ",")
}
