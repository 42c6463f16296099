// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package console implements the operator terminal: line prompts on an
// input stream and plain, red, green or blue status lines on an output
// stream.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Console reads answers from in and writes messages to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	red   *color.Color
	green *color.Color
	blue  *color.Color
}

// New returns a Console. When colored is false messages are written
// without escape codes.
func New(in io.Reader, out io.Writer, colored bool) *Console {
	c := &Console{
		in:    bufio.NewReader(in),
		out:   out,
		red:   color.New(color.FgRed),
		green: color.New(color.FgGreen),
		blue:  color.New(color.FgBlue),
	}
	for _, col := range []*color.Color{c.red, c.green, c.blue} {
		if colored {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

// Ask writes prompt and returns the next input line without surrounding
// whitespace. A final line without a newline is accepted; an input stream
// that ends before any answer yields io.ErrUnexpectedEOF.
func (c *Console) Ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Info writes a plain line.
func (c *Console) Info(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Success writes a green line.
func (c *Console) Success(format string, args ...any) {
	c.green.Fprintf(c.out, format+"\n", args...)
}

// Error writes msg in red followed, when hint is set, by hint in blue.
func (c *Console) Error(msg, hint string) {
	if hint == "" {
		c.red.Fprintln(c.out, msg)
		return
	}
	c.red.Fprint(c.out, msg+" ")
	c.blue.Fprintln(c.out, hint)
}
