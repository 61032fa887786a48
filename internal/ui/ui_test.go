package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterRoutesStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut)

	p.Success("Bounded context '%s' created", "shopping")
	p.List("Created:", []string{"Cargo.toml", "src/lib.rs"})
	p.Steps([]string{"Add it to the workspace"})
	p.Warnings([]string{"/package/name: bad"})
	p.Error(errors.New("boom"))
	p.Usage("cargo bounded-context add <name>")

	// Buffers are not terminals, so no escape codes are emitted.
	assert.Equal(t,
		"✅ Bounded context 'shopping' created\n"+
			"Created:\n  Cargo.toml\n  src/lib.rs\n"+
			"\nNext steps:\n  1. Add it to the workspace\n",
		out.String())
	assert.Equal(t,
		"Warnings:\n  - /package/name: bad\n"+
			"Error: boom\n"+
			"Usage: cargo bounded-context add <name>\n",
		errOut.String())
}

func TestPrinterSkipsEmptySections(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut)

	p.List("Created:", nil)
	p.Steps(nil)
	p.Warnings(nil)

	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}
