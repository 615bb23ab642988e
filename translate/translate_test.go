package translate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("row 7 opcode add", From("row %d opcode %v", 7, "add"))
	assert.Equal("plain", From("plain"))
}

func TestFprintf(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	n, err := Fprintf(buf, "%v rows\n", 768)
	assert.NoError(err)
	assert.Equal(buf.Len(), n)
	assert.Contains(buf.String(), "rows\n")
}
