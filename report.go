// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parley

import (
	"fmt"

	"github.com/fatih/color"
)

// report applies the configured error mode. In the default mode the
// error is simply returned. In exit-on-error mode the message is
// printed, the usage text follows for parse errors, and the process
// exits with status 2.
func (p *Parser) report(err error, showUsage bool) error {
	if err == nil || !p.exitOnError {
		return err
	}
	fmt.Fprintln(p.errWriter, color.RedString("parley: %v", err))
	if showUsage {
		fmt.Fprintln(p.errWriter, p.Usage())
	}
	p.exitFn(2)
	return err
}
