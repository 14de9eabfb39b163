// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parley

import "fmt"

// InvalidNameError is returned when a declaration uses a malformed short
// or long form.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Name, e.Reason)
}

// DuplicateNameError is returned when a declaration reuses a short or
// long form that is already registered.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("argument %q is already registered", e.Name)
}

// TooManyValuesError is returned when a fixed-arity argument receives
// more values than it declared. Arg is empty when a value appears before
// any key has been seen.
type TooManyValuesError struct {
	Arg string
}

func (e *TooManyValuesError) Error() string {
	return fmt.Sprintf("attempt to pass too many inputs to %s", e.Arg)
}

// MissingValuesError is returned when a new key is encountered before
// the previously active argument received its minimum number of values.
type MissingValuesError struct {
	Key    string // the key that cut the active argument short
	Active string // the argument still expecting values
}

func (e *MissingValuesError) Error() string {
	return fmt.Sprintf("encountered argument %s when expecting more inputs to %s", e.Key, e.Active)
}

// RequiredOrderError is returned when an optional key appears while
// required arguments are still outstanding. All required keys must come
// before any optional one.
type RequiredOrderError struct {
	Key string
}

func (e *RequiredOrderError) Error() string {
	return fmt.Sprintf("encountered argument %s when expecting more required arguments", e.Key)
}

// InsufficientTokensError is returned when too few tokens remain to
// satisfy a newly activated argument's minimum arity.
type InsufficientTokensError struct {
	Key string
}

func (e *InsufficientTokensError) Error() string {
	return fmt.Sprintf("too few inputs passed to argument %s", e.Key)
}

// StraySpecifierError is returned when a token reserved for the final
// positional argument matches a registered key.
type StraySpecifierError struct {
	Token string
}

func (e *StraySpecifierError) Error() string {
	return fmt.Sprintf("encountered argument specifier %s while parsing final required inputs", e.Token)
}

// MissingRequiredError is returned when the input ends with required
// arguments, or final-argument positions, still unsatisfied.
type MissingRequiredError struct {
	App string
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("too few required arguments passed to %s", e.App)
}

// UnknownArgumentError is returned by retrieval for a name that was
// never declared.
type UnknownArgumentError struct {
	Name string
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("unknown argument %q", e.Name)
}

// NoValueError is returned by retrieval for a declared argument that
// holds no value.
type NoValueError struct {
	Name string
}

func (e *NoValueError) Error() string {
	return fmt.Sprintf("no value for argument %q", e.Name)
}

// TypeError is returned by retrieval when the requested type does not
// fit the argument's slot, or when numeric conversion fails. Err holds
// the underlying conversion error, if any.
type TypeError struct {
	Name  string
	Value string
	Err   error
}

func (e *TypeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot convert value %q of argument %q: %v", e.Value, e.Name, e.Err)
	}
	return fmt.Sprintf("unsupported type requested for argument %q", e.Name)
}

func (e *TypeError) Unwrap() error {
	return e.Err
}
