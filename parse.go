// This file is part of tiny-cmdline.
//
// Copyright (C) 2021-2026  Bingcheng Cai
//
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package cmdline

import (
	"strings"

	"github.com/caibingcheng/tiny-cmdline/internal/option"
	"github.com/caibingcheng/tiny-cmdline/internal/scanner"
)

// Parse - Processes the given arguments, normally os.Args[1:], dispatching
// every recognized option to its action in command line order.
//
// Parse does not return errors, command line misuse is terminal: -h or
// --help prints the help and exits the process with status 0, an
// unrecognized or malformed option prints the help and exits with status
// 1. The scanner's own diagnostics are suppressed for the duration of the
// call and restored afterwards, the help output is the diagnostic.
func (cmd *Cmdline) Parse(args []string) {
	Logger.Printf("parse %v\n", args)
	short, long := cmd.encodings()
	restore := scanner.SuppressDiagnostics()
	defer restore()
	s := scanner.New(args, short, long)
	for s.Scan() {
		c := s.Option()
		// The raw token checks catch a help request even when another
		// option consumed the token as its argument.
		if c == 'h' || s.PrevToken() == "--help" || s.PrevToken() == "-h" {
			cmd.PrintHelp()
			exitFn(0)
			return
		}
		if c == scanner.Unknown {
			cmd.PrintHelp()
			exitFn(1)
			return
		}
		// The encodings are derived from the registry, the identifier
		// always resolves.
		Logger.Printf("dispatch %d with %q\n", c, s.Arg())
		cmd.registry.Get(c).Action(s.Arg())
	}
}

// encodings projects the registry into the short option specification
// string and the long option table, built fresh on every Parse call.
func (cmd *Cmdline) encodings() (string, []scanner.LongOption) {
	var short strings.Builder
	var long []scanner.LongOption
	for _, opt := range cmd.registry.Options() {
		if opt.Short != 0 {
			short.WriteByte(opt.Short)
			if opt.Mode != option.None {
				// A single ':' for both remaining modes, the short
				// form cannot spell the difference.
				short.WriteByte(':')
			}
		}
		if opt.Long != "" {
			long = append(long, scanner.LongOption{Name: opt.Long, HasArg: int(opt.Mode), Val: opt.Val})
		}
	}
	return short.String(), long
}
