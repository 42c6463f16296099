// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("  2501 \nhttps://example.com\nlast"), &out, false)

	got, err := c.Ask("cycle: ")
	require.NoError(t, err)
	assert.Equal(t, "2501", got)

	got, err = c.Ask("url: ")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got)

	got, err = c.Ask("date: ")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = c.Ask("more: ")
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	assert.Equal(t, "cycle: url: date: more: ", out.String())
}

func TestMessagesWithoutColor(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, false)

	c.Info("status %d", 200)
	c.Success("done %s", "ciclo2501.txt")
	c.Error("Error: bad link.", "https://example.com/format")
	c.Error("Error: bad cycle.", "")

	assert.Equal(t,
		"status 200\ndone ciclo2501.txt\nError: bad link. https://example.com/format\nError: bad cycle.\n",
		out.String())
}

func TestMessagesWithColor(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, true)

	c.Error("Error: bad cycle.", "")
	c.Success("ok")

	assert.Contains(t, out.String(), "\x1b[31mError: bad cycle.")
	assert.Contains(t, out.String(), "\x1b[32mok")
}
