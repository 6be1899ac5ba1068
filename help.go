// This file is part of tiny-cmdline.
//
// Copyright (C) 2021-2026  Bingcheng Cai
//
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package cmdline

import "fmt"

// PrintHelp - Prints the help.
//
// A registered option with short name 'h' or long name "help" owns the
// help output: its action is invoked with no argument and nothing else is
// printed. This is how a program replaces the generated usage text.
// Without one the generated usage is written to Writer.
func (cmd *Cmdline) PrintHelp() {
	for _, opt := range cmd.registry.Options() {
		if opt.Short == 'h' || opt.Long == "help" {
			Logger.Printf("help owned by -%c, --%s\n", opt.Short, opt.Long)
			opt.Action("")
			return
		}
	}
	cmd.usage()
}

// usage writes one line per registered option, in registration order.
func (cmd *Cmdline) usage() {
	for _, opt := range cmd.registry.Options() {
		fmt.Fprint(Writer, opt.Usage())
	}
}
