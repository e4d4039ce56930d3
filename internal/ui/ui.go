// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package ui renders the report primitives shared by all commands: section
// headers and glyph-prefixed status lines.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"golang.org/x/term"
)

const ruleWidth = 60

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

// Printer writes report sections. Color is applied to glyphs and headers
// only; the payload text stays plain so output remains grep-friendly.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a Printer writing to w. Color output is the caller's
// decision (usually the --color flag gated by Detect).
func NewPrinter(w io.Writer, color bool) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w, color: color}
}

// Detect reports whether colored output is reasonable by default: stdout is
// a terminal and NO_COLOR is unset.
func Detect() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Writer exposes the underlying writer for payload output (tables, raw JSON)
// that bypasses the glyph helpers.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Header prints a rule-framed section title.
func (p *Printer) Header(text string) {
	rule := strings.Repeat("━", ruleWidth)
	fmt.Fprintf(p.w, "\n%s\n", p.render(headerStyle, rule))
	fmt.Fprintf(p.w, "%s\n", p.render(headerStyle, "  "+text))
	fmt.Fprintf(p.w, "%s\n\n", p.render(headerStyle, rule))
}

// Successf prints a green-check line.
func (p *Printer) Successf(format string, args ...any) {
	p.line(successStyle, "✓", format, args...)
}

// Errorf prints a red-cross line.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(errorStyle, "✗", format, args...)
}

// Warningf prints a yellow-bang line.
func (p *Printer) Warningf(format string, args ...any) {
	p.line(warningStyle, "!", format, args...)
}

// Infof prints an arrow-prefixed detail line.
func (p *Printer) Infof(format string, args ...any) {
	p.line(infoStyle, "→", format, args...)
}

// Printf prints without a glyph.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// Println prints a plain line.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.w, args...)
}

// Highlightf prints format in the error color when color is on. Used for
// drawing the eye to non-zero ALARM counts and the like.
func (p *Printer) Highlightf(format string, args ...any) {
	fmt.Fprintln(p.w, p.render(errorStyle, fmt.Sprintf(format, args...)))
}

func (p *Printer) line(style lipgloss.Style, glyph string, format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(style, glyph), fmt.Sprintf(format, args...))
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}
