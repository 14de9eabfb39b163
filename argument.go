// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parley

import "strings"

// arity describes how many values an argument consumes: either an exact
// count, or a variable number with a minimum of zero ('*') or one ('+').
type arity struct {
	variable bool
	count    int // exact count when fixed
	min      int // minimum count when variable: 0 or 1
}

func exactly(n int) arity { return arity{count: n} }
func atLeastOne() arity   { return arity{variable: true, min: 1} }
func zeroOrMore() arity   { return arity{variable: true, min: 0} }

// single reports whether the argument stores one string rather than a
// list: fixed arity of at most one.
func (a arity) single() bool { return !a.variable && a.count <= 1 }

// argument is one registered flag or the final positional argument.
type argument struct {
	short    string // "-x" or empty
	long     string // "--xxx" or empty
	required bool
	def      string
	help     string
	arity    arity
	slot     slot
}

// canonicalName prefers the long form; it is the retrieval key.
func (a *argument) canonicalName() string {
	if a.long != "" {
		return a.long
	}
	return a.short
}

// Option configures a single argument at declaration time.
type Option func(*argument)

// Arity declares that the argument consumes exactly n values.
func Arity(n int) Option {
	return func(a *argument) { a.arity = exactly(n) }
}

// AtLeastOne declares a variable arity of one or more values ('+').
func AtLeastOne() Option {
	return func(a *argument) { a.arity = atLeastOne() }
}

// ZeroOrMore declares a variable arity of zero or more values ('*').
func ZeroOrMore() Option {
	return func(a *argument) { a.arity = zeroOrMore() }
}

// Default sets the value reported when the argument is absent from the
// command line. An argument with a non-empty default is never counted
// toward the required tally.
func Default(v string) Option {
	return func(a *argument) { a.def = v }
}

// Required marks the argument as mandatory.
func Required() Option {
	return func(a *argument) { a.required = true }
}

// NotRequired clears the required mark. Only useful on the final
// positional argument, which is required by default.
func NotRequired() Option {
	return func(a *argument) { a.required = false }
}

// Help attaches descriptive text to the argument.
func Help(text string) Option {
	return func(a *argument) { a.help = text }
}

// delimit prefixes a stripped name with one dash for single-character
// names and two dashes otherwise, producing the stored key form.
func delimit(name string) string {
	if len(name) == 1 {
		return "-" + name
	}
	return "--" + name
}

// strip removes the leading dash, and a second one on long names.
func strip(name string) string {
	begin := 0
	if len(name) > 0 && name[0] == '-' {
		begin++
	}
	if len(name) > 3 && name[1] == '-' {
		begin++
	}
	return name[begin:]
}

func placeholder(name string) string {
	return strings.ToUpper(strip(name))
}

// verifyName checks the short/long dash conventions: "-x" for short
// forms, "--xxx" for long forms. Three-character names can satisfy
// neither convention and are always rejected.
func verifyName(name string) error {
	if name == "" {
		return &InvalidNameError{Name: name, Reason: "argument names must be non-empty"}
	}
	if (len(name) == 2 && name[0] != '-') || len(name) == 3 {
		return &InvalidNameError{Name: name, Reason: "short names must begin with '-'"}
	}
	if len(name) > 3 && !strings.HasPrefix(name, "--") {
		return &InvalidNameError{Name: name, Reason: "multi-character names must begin with '--'"}
	}
	return nil
}

// usageString renders the argument for the usage line. Named arguments
// show their canonical name, bracketed when optional; the final
// positional argument is rendered unnamed.
func (a *argument) usageString(named bool) string {
	var b strings.Builder
	uname := placeholder(a.canonicalName())
	if named && !a.required {
		b.WriteString("[")
	}
	if named {
		b.WriteString(a.canonicalName())
	}
	if !a.arity.variable {
		n := min(3, a.arity.count)
		for i := 0; i < n; i++ {
			b.WriteString(" ")
			b.WriteString(uname)
		}
		if n < a.arity.count {
			b.WriteString(" ...")
		}
	} else {
		b.WriteString(" ")
		if a.arity.min == 0 {
			b.WriteString("[")
		}
		b.WriteString(uname)
		b.WriteString(" ")
		if a.arity.min == 1 {
			b.WriteString("[")
		}
		b.WriteString(uname)
		b.WriteString("...]")
	}
	if named && !a.required {
		b.WriteString("]")
	}
	return b.String()
}
