// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parley

import "strconv"

// Get retrieves a parsed value by its stripped name ("count" for
// "--count", "n" for "-n"). Single-value arguments convert to string,
// int, or float64; list arguments to []string. Any other type parameter
// fails with a TypeError. Numeric conversion happens here, at the
// retrieval site, and fails with a TypeError wrapping the strconv error.
func Get[T any](p *Parser, name string) (T, error) {
	var zero T
	arg, ok := p.index[delimit(name)]
	if !ok {
		return zero, &UnknownArgumentError{Name: name}
	}
	if arg.slot.count() == 0 {
		return zero, &NoValueError{Name: name}
	}
	switch any(zero).(type) {
	case string:
		if arg.slot.list {
			return zero, &TypeError{Name: name}
		}
		return any(arg.slot.value).(T), nil
	case int:
		if arg.slot.list {
			return zero, &TypeError{Name: name}
		}
		n, err := strconv.Atoi(arg.slot.value)
		if err != nil {
			return zero, &TypeError{Name: name, Value: arg.slot.value, Err: err}
		}
		return any(n).(T), nil
	case float64:
		if arg.slot.list {
			return zero, &TypeError{Name: name}
		}
		f, err := strconv.ParseFloat(arg.slot.value, 64)
		if err != nil {
			return zero, &TypeError{Name: name, Value: arg.slot.value, Err: err}
		}
		return any(f).(T), nil
	case []string:
		if !arg.slot.list {
			return zero, &TypeError{Name: name}
		}
		items := make([]string, len(arg.slot.items))
		copy(items, arg.slot.items)
		return any(items).(T), nil
	default:
		return zero, &TypeError{Name: name}
	}
}

// GetString is shorthand for Get[string].
func (p *Parser) GetString(name string) (string, error) {
	return Get[string](p, name)
}

// GetInt is shorthand for Get[int].
func (p *Parser) GetInt(name string) (int, error) {
	return Get[int](p, name)
}

// GetFloat64 is shorthand for Get[float64].
func (p *Parser) GetFloat64(name string) (float64, error) {
	return Get[float64](p, name)
}

// GetStrings is shorthand for Get[[]string].
func (p *Parser) GetStrings(name string) ([]string, error) {
	return Get[[]string](p, name)
}

// Has reports whether an argument with the given stripped name was
// declared.
func (p *Parser) Has(name string) bool {
	_, ok := p.index[delimit(name)]
	return ok
}

// Count returns the number of values held by the named argument: zero
// or one for single-value arguments, the list length otherwise. It
// returns zero for undeclared names.
func (p *Parser) Count(name string) int {
	arg, ok := p.index[delimit(name)]
	if !ok {
		return 0
	}
	return arg.slot.count()
}
