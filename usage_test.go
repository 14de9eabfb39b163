// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parley

import (
	"errors"
	"strings"
	"testing"
)

func TestUsageOrdering(t *testing.T) {
	p := New()
	p.SetAppName("app")
	if err := p.AddArgument("--beta", Arity(1)); err != nil {
		t.Fatalf("AddArgument() error = %v", err)
	}
	if err := p.AddArgument("--alpha", Arity(1), Required()); err != nil {
		t.Fatalf("AddArgument() error = %v", err)
	}
	if err := p.AddFinalArgument("out"); err != nil {
		t.Fatalf("AddFinalArgument() error = %v", err)
	}

	got := p.Usage()
	want := "Usage: app --alpha ALPHA [--beta BETA] OUT"
	if got != want {
		t.Errorf("Usage() = %q, want %q", got, want)
	}
}

func TestUsagePlaceholders(t *testing.T) {
	tests := []struct {
		name    string
		declare func(p *Parser) error
		want    string
	}{
		{
			name: "bare flag",
			declare: func(p *Parser) error {
				return p.AddArgumentPair("-v", "--verbose")
			},
			want: "Usage: app [--verbose]",
		},
		{
			name: "short only",
			declare: func(p *Parser) error {
				return p.AddArgument("-v", Arity(1))
			},
			want: "Usage: app [-v V]",
		},
		{
			name: "fixed arity capped at three placeholders",
			declare: func(p *Parser) error {
				return p.AddArgument("--pos", Arity(5), Required())
			},
			want: "Usage: app --pos POS POS POS ...",
		},
		{
			name: "one or more",
			declare: func(p *Parser) error {
				return p.AddArgument("--tags", AtLeastOne())
			},
			want: "Usage: app [--tags TAGS [TAGS...]]",
		},
		{
			name: "zero or more",
			declare: func(p *Parser) error {
				return p.AddArgument("--files", ZeroOrMore())
			},
			want: "Usage: app [--files [FILES FILES...]]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			p.SetAppName("app")
			if err := tt.declare(p); err != nil {
				t.Fatalf("declare error = %v", err)
			}
			if got := p.Usage(); got != tt.want {
				t.Errorf("Usage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUsageWrapsAndIndents(t *testing.T) {
	p := New()
	p.SetAppName("app")
	p.SetUsageWidth(20)
	if err := p.AddArgument("--alpha", Arity(1), Required()); err != nil {
		t.Fatalf("AddArgument() error = %v", err)
	}
	if err := p.AddArgument("--beta", Arity(1)); err != nil {
		t.Fatalf("AddArgument() error = %v", err)
	}

	got := p.Usage()
	want := "Usage: app --alpha ALPHA \n          [--beta BETA]"
	if got != want {
		t.Errorf("Usage() = %q, want %q", got, want)
	}

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("Usage() produced %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[1], strings.Repeat(" ", len("Usage: app"))) {
		t.Errorf("continuation line %q not indented under the app name", lines[1])
	}
}

func TestUsageQuotesAppName(t *testing.T) {
	p := New()
	p.SetAppName("my app")
	if err := p.AddArgument("-v"); err != nil {
		t.Fatalf("AddArgument() error = %v", err)
	}
	got := p.Usage()
	if !strings.HasPrefix(got, `Usage: "my app"`) {
		t.Errorf("Usage() = %q, want quoted app name prefix", got)
	}
}

func TestUsageAppNameFromArgv(t *testing.T) {
	p := New()
	if err := p.AddArgument("-v"); err != nil {
		t.Fatalf("AddArgument() error = %v", err)
	}
	if err := p.Parse([]string{"/usr/local/bin/tool", "-v"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := p.Usage(); !strings.HasPrefix(got, "Usage: tool") {
		t.Errorf("Usage() = %q, want app name derived from the argv path", got)
	}
}

func TestTerminalWidth(t *testing.T) {
	orig := getSizeFn
	defer func() { getSizeFn = orig }()

	getSizeFn = func(fd int) (int, int, error) { return 120, 40, nil }
	if got := TerminalWidth(1); got != 120 {
		t.Errorf("TerminalWidth() = %d, want 120", got)
	}

	getSizeFn = func(fd int) (int, int, error) { return 0, 0, errors.New("not a terminal") }
	if got := TerminalWidth(1); got != DefaultUsageWidth {
		t.Errorf("TerminalWidth() = %d, want %d fallback", got, DefaultUsageWidth)
	}
}
