// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command copytool shows the exit-on-error mode: malformed input prints
// the error and usage text and terminates, so the main path needs no
// parse error handling.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/parley-cli/parley"
)

func main() {
	p := parley.New()
	p.SetExitOnError(true)
	p.SetUsageWidth(parley.TerminalWidth(int(os.Stderr.Fd())))

	p.AddArgumentPair("-i", "--into", parley.Arity(1), parley.Required(),
		parley.Help("Destination directory"))
	p.AddArgumentPair("-v", "--verbose", parley.Help("Print each file as it is planned"))
	p.AddArgument("--exclude", parley.ZeroOrMore(), parley.Help("Names to skip"))
	p.AddFinalArgument("sources", parley.AtLeastOne(), parley.Help("Files to copy"))

	p.Parse(os.Args)

	dest, err := p.GetString("into")
	if err != nil {
		log.Fatalf("into: %v", err)
	}
	sources, err := parley.Get[[]string](p, "sources")
	if err != nil {
		log.Fatalf("sources: %v", err)
	}
	excluded := make(map[string]bool)
	if p.Count("exclude") > 0 {
		names, err := p.GetStrings("exclude")
		if err != nil {
			log.Fatalf("exclude: %v", err)
		}
		for _, name := range names {
			excluded[name] = true
		}
	}

	verbose := p.Count("v") > 0
	for _, src := range sources {
		if excluded[src] {
			if verbose {
				fmt.Println(color.YellowString("skip %s", src))
			}
			continue
		}
		if verbose {
			fmt.Println(color.GreenString("copy %s -> %s", src, dest))
		}
	}
}
