package prompt

import (
	"bytes"
	"testing"

	"github.com/alantheprice/goclack/pkg/style"
	"github.com/stretchr/testify/assert"
)

func TestIntro(t *testing.T) {
	var out bytes.Buffer
	writeIntro(&out, style.Plain(), "setup")
	assert.Equal(t, "┌  setup\n", out.String())

	out.Reset()
	writeIntro(&out, style.Plain(), "")
	assert.Equal(t, "┌\n", out.String())
}

func TestOutro(t *testing.T) {
	var out bytes.Buffer
	writeOutro(&out, style.Plain(), "done")
	assert.Equal(t, "│\n└  done\n\n", out.String())

	out.Reset()
	writeOutro(&out, style.Plain(), "")
	assert.Equal(t, "│\n└\n\n", out.String())
}

func TestSteps(t *testing.T) {
	var out bytes.Buffer
	writeStep(&out, style.Plain(), stepInfo, "note")
	assert.Equal(t, "│\n◇  note\n", out.String())

	out.Reset()
	writeStep(&out, style.Plain(), stepWarn, "careful")
	assert.Equal(t, "│\n▲  careful\n", out.String())

	out.Reset()
	writeStep(&out, style.Plain(), stepErr, "broken")
	assert.Equal(t, "│\n■  broken\n", out.String())
}
