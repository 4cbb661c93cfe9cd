// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clipboard copies text to the user's clipboard and wipes copied
// secrets after a delay.
//
// The system clipboard is tried first. When it is unavailable (headless
// sessions, SSH) the text is sent to the terminal as an OSC 52 sequence.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnsupported is returned by [SystemClipboard] when no clipboard utility
// is available on the host.
var ErrUnsupported = errors.New("system clipboard unsupported")

// Writer replaces the clipboard contents with text.
type Writer interface {
	WriteText(text string) error
}

// SystemClipboard writes through the host clipboard (pbcopy, xclip,
// wl-copy, the Windows API).
type SystemClipboard struct{}

// WriteText implements Writer.
func (SystemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}

// TerminalClipboard writes OSC 52 sequences to a terminal. Inside tmux or
// screen the sequence is wrapped in the multiplexer's passthrough.
type TerminalClipboard struct {
	out  io.Writer
	wrap func(osc52.Sequence) osc52.Sequence
}

// NewTerminalClipboard returns a TerminalClipboard writing to out. The
// multiplexer is detected from the environment.
func NewTerminalClipboard(out io.Writer) *TerminalClipboard {
	return &TerminalClipboard{out: out, wrap: multiplexerWrap(os.Getenv("TMUX"), os.Getenv("TERM"))}
}

func multiplexerWrap(tmux, term string) func(osc52.Sequence) osc52.Sequence {
	switch {
	case tmux != "":
		return osc52.Sequence.Tmux
	case strings.HasPrefix(term, "screen"):
		return osc52.Sequence.Screen
	default:
		return func(s osc52.Sequence) osc52.Sequence { return s }
	}
}

// WriteText implements Writer. The sequence is written synchronously.
func (c *TerminalClipboard) WriteText(text string) error {
	if _, err := c.wrap(osc52.New(text)).WriteTo(c.out); err != nil {
		return fmt.Errorf("terminal clipboard: %w", err)
	}
	return nil
}
