// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tagprint shows the structured-error mode: parse errors come
// back to the caller, which decides how to present them.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/parley-cli/parley"
)

func main() {
	p := parley.New()
	p.AddArgument("--tags", parley.AtLeastOne(), parley.Required(),
		parley.Help("Tags to print"))
	p.AddArgumentPair("-n", "--repeat", parley.Arity(1), parley.Default("1"),
		parley.Help("How many times to print them"))

	if err := p.Parse(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, p.Usage())
		os.Exit(2)
	}

	repeat, err := p.GetInt("repeat")
	if err != nil {
		log.Fatalf("repeat: %v", err)
	}
	tags, err := parley.Get[[]string](p, "tags")
	if err != nil {
		log.Fatalf("tags: %v", err)
	}

	for i := 0; i < repeat; i++ {
		fmt.Println(strings.Join(tags, " "))
	}
}
