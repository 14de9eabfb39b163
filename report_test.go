// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parley

import (
	"bytes"
	"strings"
	"testing"
)

func TestExitOnErrorParse(t *testing.T) {
	p := New()
	p.SetAppName("tool")
	p.SetExitOnError(true)

	var buf bytes.Buffer
	p.SetErrorOutput(&buf)
	code := -1
	p.exitFn = func(c int) { code = c }

	if err := p.AddArgument("--name", Arity(1), Required()); err != nil {
		t.Fatalf("AddArgument() error = %v", err)
	}
	if err := p.Parse([]string{"tool"}); err == nil {
		t.Fatal("Parse() error = nil, want error")
	}

	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	out := buf.String()
	if !strings.Contains(out, "parley:") {
		t.Errorf("output %q missing error prefix", out)
	}
	if !strings.Contains(out, "Usage: tool") {
		t.Errorf("output %q missing usage text", out)
	}
}

func TestExitOnErrorDeclaration(t *testing.T) {
	p := New()
	p.SetExitOnError(true)

	var buf bytes.Buffer
	p.SetErrorOutput(&buf)
	code := -1
	p.exitFn = func(c int) { code = c }

	if err := p.AddArgument("abc"); err == nil {
		t.Fatal("AddArgument() error = nil, want error")
	}

	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	out := buf.String()
	if !strings.Contains(out, "parley:") {
		t.Errorf("output %q missing error prefix", out)
	}
	// Declaration failures do not print usage.
	if strings.Contains(out, "Usage:") {
		t.Errorf("output %q unexpectedly contains usage text", out)
	}
}

func TestStructuredErrorsDoNotExit(t *testing.T) {
	p := New()
	var buf bytes.Buffer
	p.SetErrorOutput(&buf)
	exited := false
	p.exitFn = func(int) { exited = true }

	if err := p.AddArgument("--name", Arity(1), Required()); err != nil {
		t.Fatalf("AddArgument() error = %v", err)
	}
	if err := p.Parse([]string{"tool"}); err == nil {
		t.Fatal("Parse() error = nil, want error")
	}

	if exited {
		t.Error("default error mode called exit")
	}
	if buf.Len() != 0 {
		t.Errorf("default error mode wrote diagnostics: %q", buf.String())
	}
}
