package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"unlambda/internal/driver"
)

func TestStartEvaluatesEachLineIndependently(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("`.Xi\n`.Yi\n")

	Start(in, &out, Options{})

	assert.Equal(t, "X\nY\n", out.String())
}

func TestStartSkipsBlankLines(t *testing.T) {
	var out bytes.Buffer
	Start(strings.NewReader("\n`.Zi\n"), &out, Options{})
	assert.Equal(t, "Z\n", out.String())
}

func TestStartReportsParseErrorsAndContinues(t *testing.T) {
	var out bytes.Buffer
	Start(strings.NewReader("z\n`.Qi\n"), &out, Options{})
	assert.Contains(t, out.String(), "error:")
	assert.Contains(t, out.String(), "Q")
}

func TestStartIsNotInteractiveOverAStringReader(t *testing.T) {
	var out bytes.Buffer
	Start(strings.NewReader("i\n"), &out, Options{Parse: driver.ParseOptions{}})
	assert.NotContains(t, out.String(), prompt)
}
