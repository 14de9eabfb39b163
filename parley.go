// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parley

import (
	"io"
	"os"
	"strings"
)

// Parser is an ordered registry of argument declarations plus the state
// accumulated by the most recent Parse call. The zero value is not
// usable; construct with New. A Parser is not safe for concurrent use.
type Parser struct {
	args        []*argument
	index       map[string]*argument
	final       *argument
	required    int // declared-required arguments without a default
	appName     string
	ignoreFirst bool
	width       int

	exitOnError bool
	errWriter   io.Writer
	exitFn      func(int)
}

// New returns an empty parser. The first parsed token is skipped by
// default, matching the convention that argv[0] is the program path.
func New() *Parser {
	return &Parser{
		index:       make(map[string]*argument),
		ignoreFirst: true,
		width:       DefaultUsageWidth,
		errWriter:   os.Stderr,
		exitFn:      os.Exit,
	}
}

// SetAppName overrides the program name used in usage text. When unset,
// the name is derived from the first parsed token.
func (p *Parser) SetAppName(name string) { p.appName = name }

// IgnoreFirstToken controls whether Parse skips the first element of the
// argument vector. Default true.
func (p *Parser) IgnoreFirstToken(ignore bool) { p.ignoreFirst = ignore }

// SetExitOnError switches the parser into its compatibility error mode:
// declaration and parse errors are printed to the error writer, followed
// by the usage text for parse errors, and the process exits with status
// 2. The default mode returns structured errors instead.
func (p *Parser) SetExitOnError(exit bool) { p.exitOnError = exit }

// SetErrorOutput redirects diagnostics printed in the exit-on-error
// mode. Defaults to stderr.
func (p *Parser) SetErrorOutput(w io.Writer) { p.errWriter = w }

// Empty reports whether nothing has been declared.
func (p *Parser) Empty() bool { return len(p.index) == 0 }

// Reset clears all declarations and parsed state, returning the parser
// to its initial configuration.
func (p *Parser) Reset() {
	p.args = nil
	p.index = make(map[string]*argument)
	p.final = nil
	p.required = 0
	p.appName = ""
	p.ignoreFirst = true
}

// AddArgument registers a single-form argument. Names longer than two
// characters are validated as long forms ("--name"); one- and
// two-character names as short forms ("-n"). Arity defaults to zero.
func (p *Parser) AddArgument(name string, opts ...Option) error {
	if err := verifyName(name); err != nil {
		return p.report(err, false)
	}
	arg := &argument{}
	if len(name) > 2 {
		arg.long = name
	} else {
		arg.short = name
	}
	for _, opt := range opts {
		opt(arg)
	}
	return p.insert(arg)
}

// AddArgumentPair registers an argument with both a short and a long
// form, each validated independently.
func (p *Parser) AddArgumentPair(short, long string, opts ...Option) error {
	if err := verifyName(short); err != nil {
		return p.report(err, false)
	}
	if err := verifyName(long); err != nil {
		return p.report(err, false)
	}
	arg := &argument{short: short, long: long}
	for _, opt := range opts {
		opt(arg)
	}
	return p.insert(arg)
}

// AddFinalArgument registers the single trailing positional argument.
// The name is stored as "--<name>" regardless of length, consumes one
// value by default, and is required unless NotRequired is given. It is
// matched by position, never by key.
func (p *Parser) AddFinalArgument(name string, opts ...Option) error {
	if p.final != nil {
		return p.report(&DuplicateNameError{Name: p.final.long}, false)
	}
	arg := &argument{
		long:     "--" + strip(name),
		required: true,
		arity:    exactly(1),
	}
	for _, opt := range opts {
		opt(arg)
	}
	if err := p.insert(arg); err != nil {
		return err
	}
	p.final = arg
	return nil
}

func (p *Parser) insert(arg *argument) error {
	if arg.short != "" {
		if _, taken := p.index[arg.short]; taken {
			return p.report(&DuplicateNameError{Name: arg.short}, false)
		}
	}
	if arg.long != "" {
		if _, taken := p.index[arg.long]; taken {
			return p.report(&DuplicateNameError{Name: arg.long}, false)
		}
	}
	if arg.arity.single() {
		arg.slot = slot{value: arg.def}
	} else {
		arg.slot = slot{list: true}
	}
	p.args = append(p.args, arg)
	if arg.short != "" {
		p.index[arg.short] = arg
	}
	if arg.long != "" {
		p.index[arg.long] = arg
	}
	if arg.required && arg.def == "" {
		p.required++
	}
	return nil
}

// Parse walks the argument vector left to right, assigning values to
// the declared arguments and enforcing arity, requiredness, and the
// required-before-optional key ordering. Re-parsing overwrites the
// values of a previous run.
func (p *Parser) Parse(argv []string) error {
	if err := p.parse(argv); err != nil {
		return p.report(err, true)
	}
	return nil
}

func (p *Parser) parse(argv []string) error {
	if p.appName == "" && p.ignoreFirst && len(argv) > 0 {
		base := argv[0]
		if i := strings.LastIndexAny(base, `/\`); i >= 0 {
			base = base[i+1:]
		}
		p.appName = base
	}

	for _, arg := range p.args {
		arg.slot.reset(arg.def)
	}

	// How many trailing tokens the final argument reserves.
	nfinal := 0
	nrequired := p.required
	if p.final != nil && p.final.required {
		if p.final.def == "" {
			nrequired--
		}
		if p.final.arity.variable {
			nfinal = p.final.arity.min
		} else {
			nfinal = p.final.arity.count
		}
	}

	start := 0
	if p.ignoreFirst {
		start = 1
	}
	end := len(argv) - nfinal

	var active *argument
	consumed := 0
	for i := start; i < end; i++ {
		el := argv[i]
		next, isKey := p.index[el]
		if !isKey {
			// A value for the active argument.
			if active == nil || (!active.arity.variable && consumed >= active.arity.count) {
				return &TooManyValuesError{Arg: activeName(active)}
			}
			if active.arity.single() {
				active.slot.value = el
			} else {
				active.slot.items = append(active.slot.items, el)
			}
			consumed++
			continue
		}

		// A new key: the previous active argument must be satisfied.
		if active != nil {
			starved := !active.arity.variable && consumed != active.arity.count ||
				active.arity.variable && consumed < active.arity.min
			if starved {
				return &MissingValuesError{Key: el, Active: activeName(active)}
			}
		}
		active = next
		if !active.required && nrequired > 0 {
			return &RequiredOrderError{Key: el}
		}
		remaining := len(argv) - i - nfinal - 1
		if !active.arity.variable && active.arity.count > remaining ||
			active.arity.variable && active.arity.min > remaining {
			return &InsufficientTokensError{Key: el}
		}
		if active.required && active.def == "" {
			nrequired--
		}
		consumed = 0
		if !active.arity.variable && active.arity.count == 0 {
			// Record presence of a bare flag.
			active.slot.value = "true"
		}
	}

	left := nfinal
	for i := max(start, len(argv)-nfinal); i < len(argv); i++ {
		el := argv[i]
		if _, isKey := p.index[el]; isKey {
			return &StraySpecifierError{Token: el}
		}
		if p.final.arity.single() {
			p.final.slot.value = el
		} else {
			p.final.slot.items = append(p.final.slot.items, el)
		}
		left--
	}

	if nrequired > 0 || left > 0 {
		return &MissingRequiredError{App: p.appName}
	}
	return nil
}

func activeName(a *argument) string {
	if a == nil {
		return ""
	}
	return a.canonicalName()
}
