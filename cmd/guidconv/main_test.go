package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loopbackUpper = "{E0E16197-DD56-4A10-9195-5EE7A155A838}"

func TestConvertArgs(t *testing.T) {
	var buf bytes.Buffer
	c := converter{out: &buf}
	require.NoError(t, c.args([]string{loopbackUpper}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "{e0e16197-dd56-4a10-9195-5ee7a155a838}\n"), out)
	assert.Contains(t, out, "  Data1:      0xe0e16197\n")
	assert.Contains(t, out, "  Data4:      91 95 5e e7 a1 55 a8 38\n")
	assert.Contains(t, out, "  windows:    97 61 e1 e0 56 dd 10 4a 91 95 5e e7 a1 55 a8 38\n")
	assert.Contains(t, out, "  big-endian: e0 e1 61 97 dd 56 4a 10 91 95 5e e7 a1 55 a8 38\n")
	assert.Contains(t, out, "  variant:    RFC 4122\n")
	assert.Contains(t, out, "  version:    4\n")
	assert.Contains(t, out, "  name:       VMIDLoopback\n")
}

func TestConvertLines(t *testing.T) {
	in := strings.NewReader(loopbackUpper + "\n\n  {01234567-89ab-cdef-0123-456789abcdef}  \nnot-a-guid\n")
	var buf bytes.Buffer
	c := converter{out: &buf}
	err := c.lines(in)
	assert.ErrorIs(t, err, errMalformedInput)
	assert.Equal(t, 1, c.bad)
	assert.Equal(t, 2, strings.Count(buf.String(), "  Data1:"))
	assert.NotContains(t, buf.String(), "not-a-guid")
}

func TestCheckOnly(t *testing.T) {
	var buf bytes.Buffer
	c := converter{check: true, out: &buf}
	require.NoError(t, c.args([]string{loopbackUpper}))
	assert.Zero(t, buf.Len())

	assert.ErrorIs(t, c.args([]string{"{e0e16197-dd56-4a10-9195-5ee7a155a838"}), errMalformedInput)
}
