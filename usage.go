// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parley

import (
	"strings"

	"golang.org/x/term"
)

// DefaultUsageWidth is the column at which usage lines wrap.
const DefaultUsageWidth = 80

var getSizeFn = term.GetSize

// TerminalWidth returns the column width of the terminal attached to
// fd, or DefaultUsageWidth when fd is not a terminal.
func TerminalWidth(fd int) int {
	if w, _, err := getSizeFn(fd); err == nil && w > 0 {
		return w
	}
	return DefaultUsageWidth
}

// SetUsageWidth changes the wrap column for Usage.
func (p *Parser) SetUsageWidth(width int) {
	if width > 0 {
		p.width = width
	}
}

// Usage renders a one-line-wrapped usage string: required arguments
// first, optional arguments bracketed after them, the final positional
// argument last. Continuation lines are indented to align under the
// app name.
func (p *Parser) Usage() string {
	var b strings.Builder
	b.WriteString("Usage: ")
	b.WriteString(quoteAppName(p.appName))
	indent := b.Len()
	line := 0

	emit := func(s string) {
		if len(s)+line > p.width {
			b.WriteString("\n")
			b.WriteString(strings.Repeat(" ", indent))
			line = 0
		} else {
			line += len(s)
		}
		b.WriteString(s)
	}

	for _, arg := range p.args {
		if !arg.required || arg == p.final {
			continue
		}
		b.WriteString(" ")
		emit(arg.usageString(true))
	}
	for _, arg := range p.args {
		if arg.required || arg == p.final {
			continue
		}
		b.WriteString(" ")
		emit(arg.usageString(true))
	}
	if p.final != nil {
		emit(p.final.usageString(false))
	}
	return b.String()
}

func quoteAppName(name string) string {
	if strings.Contains(name, " ") {
		return `"` + name + `"`
	}
	return name
}
