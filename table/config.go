package table

import (
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/nibalu/alu"
	"github.com/ezrec/nibalu/internal"
	"github.com/ezrec/nibalu/nibble"
)

// Config declares a table: which opcodes to enumerate and which columns
// to emit.
type Config struct {
	Name     string     // Short name, e.g. "arith".
	Filename string     // Canonical output filename.
	Subset   alu.Subset // Opcode iteration domain.
	Schema   Schema     // Column layout.
}

var (
	// ConfigArithmetic3 is the flag table without multiply.
	ConfigArithmetic3 = Config{
		Name:     "arith3",
		Filename: "alu_arithmetic3_truth_table.txt",
		Subset:   alu.SubsetArithmetic3,
		Schema:   SCHEMA_FLAGS,
	}
	// ConfigArithmetic is the flag table for the full arithmetic family.
	ConfigArithmetic = Config{
		Name:     "arith",
		Filename: "alu_arithmetic_truth_table.txt",
		Subset:   alu.SubsetArithmetic4,
		Schema:   SCHEMA_FLAGS,
	}
	// ConfigComplete is every opcode, without flags.
	ConfigComplete = Config{
		Name:     "complete",
		Filename: "alu_complete_truth_table.txt",
		Subset:   alu.SubsetAll,
		Schema:   SCHEMA_NOFLAGS,
	}
)

// Configs lists the predefined tables.
var Configs = []Config{ConfigArithmetic3, ConfigArithmetic, ConfigComplete}

// Lookup finds a predefined table by name.
// The returned Config owns its Subset.
func Lookup(name string) (cfg Config, err error) {
	for _, cfg = range Configs {
		if cfg.Name == name {
			cfg.Subset = slices.Clone(cfg.Subset)
			return
		}
	}

	cfg = Config{}
	err = ErrConfigUnknown
	return
}

// WithSubset returns cfg enumerating subset instead, renamed so that
// neither its name nor its filename collide with the original table.
func (cfg Config) WithSubset(subset alu.Subset) Config {
	suffix := strings.ReplaceAll(subset.String(), ",", "_")

	cfg.Subset = slices.Clone(subset)
	cfg.Name += "/" + subset.String()
	if len(cfg.Filename) != 0 {
		base, ext, _ := strings.Cut(cfg.Filename, ".")
		cfg.Filename = base + "_" + suffix
		if len(ext) != 0 {
			cfg.Filename += "." + ext
		}
	}
	return cfg
}

// Validate checks the subset, and that a flag schema only carries
// flag-producing opcodes.
func (cfg Config) Validate() (err error) {
	if !cfg.Schema.Valid() {
		return ErrSchemaInvalid
	}

	err = cfg.Subset.Validate()
	if err != nil {
		return
	}

	if cfg.Schema == SCHEMA_FLAGS && !cfg.Subset.Arithmetic() {
		return ErrSchemaOpcode
	}

	return
}

// ExpectedRows is the size of the iteration domain.
func (cfg Config) ExpectedRows() int {
	return nibble.COUNT * nibble.COUNT * cfg.Subset.Len()
}

// Row evaluates a single combination under this table's schema.
func (cfg Config) Row(a, b nibble.Nibble, op alu.Opcode) (row Row) {
	res := alu.MustEvaluate(a, b, op)

	row = Row{
		A:      a,
		B:      b,
		Opcode: op,
		Output: res.Output,
	}

	if cfg.Schema == SCHEMA_FLAGS {
		row.Flags = res.Flags
		row.HasFlags = true
	}

	return
}

// Rows enumerates the table: A outer, B middle, opcode inner.
// The configuration must be valid.
func (cfg Config) Rows() iter.Seq[Row] {
	blocks := make([]iter.Seq[Row], 0, nibble.COUNT)
	for a := range nibble.All() {
		blocks = append(blocks, cfg.block(a))
	}
	return internal.Concat(blocks...)
}

// block is every row with A fixed.
func (cfg Config) block(a nibble.Nibble) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for b := range nibble.All() {
			for op := range cfg.Subset.All() {
				if !yield(cfg.Row(a, b, op)) {
					return
				}
			}
		}
	}
}
