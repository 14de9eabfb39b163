// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parley

// slot holds an argument's parsed values: either a single string or a
// list of strings, chosen at declaration time. Arguments with a fixed
// arity of at most one get a single-string slot seeded with the default;
// everything else gets a list.
type slot struct {
	list  bool
	value string
	items []string
}

// reset restores the slot to its pre-parse state.
func (s *slot) reset(def string) {
	if s.list {
		s.items = nil
		return
	}
	s.value = def
}

// count reports how many values the slot holds. A single-string slot
// counts as one when non-empty, which includes an applied default.
func (s *slot) count() int {
	if s.list {
		return len(s.items)
	}
	if s.value != "" {
		return 1
	}
	return 0
}
