// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parley declares and parses command-line arguments. A caller
// registers named flags with short and/or long forms, an arity, an
// optional default, and a required mark, then feeds the parser the raw
// argument vector and reads typed values back by name.
//
// # Basic usage
//
//	p := parley.New()
//	p.AddArgument("-a")
//	p.AddArgumentPair("-n", "--name")
//	p.AddArgumentPair("-i", "--input", parley.Arity(1), parley.Default("123"))
//	p.AddArgument("--strings", parley.AtLeastOne())
//
//	if err := p.Parse(os.Args); err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	    fmt.Fprintln(os.Stderr, p.Usage())
//	    os.Exit(2)
//	}
//
//	name, _ := p.GetString("name")
//	input, _ := p.GetInt("input") // 123 unless --input was given
//	strs, _ := parley.Get[[]string](p, "strings")
//
// # Arity
//
// Each argument consumes a fixed number of values (parley.Arity(n),
// default zero) or a variable number: parley.AtLeastOne for one or
// more, parley.ZeroOrMore for zero or more. A bare flag (arity zero)
// records its presence, so Count reports it and GetString returns
// "true".
//
// # The final positional argument
//
// AddFinalArgument registers one trailing argument matched by position
// rather than by key. Its tokens are reserved at the end of the vector
// and must not collide with any registered key.
//
//	p.AddFinalArgument("output") // required, one value
//
// # Key ordering
//
// All required arguments must appear on the command line before any
// optional key is used. An optional key encountered while required
// arguments are outstanding is a parse error; optional and required
// keys cannot be freely interleaved.
//
// # Errors
//
// Every failure is reported at the point of detection through a typed
// error (InvalidNameError, TooManyValuesError, MissingRequiredError,
// ...) that callers can match with errors.As. SetExitOnError(true)
// switches to a compatibility mode that prints the message and usage
// text and terminates the process instead.
package parley
