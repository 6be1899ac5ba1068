// This file is part of tiny-cmdline.
//
// Copyright (C) 2021-2026  Bingcheng Cai
//
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

// Package scanner - POSIX style command line argument scanner.
//
// The scanner consumes the two encodings a getopt style backend takes, the
// short option specification string ("vf:p:") and the long option table,
// and walks the argument list one recognized option at a time:
//
//	s := scanner.New(args, short, long)
//	for s.Scan() {
//		switch s.Option() {
//		...
//		}
//	}
//
// It understands short option clusters ("-abc"), attached short arguments
// ("-p8080"), separate arguments ("-p 8080", "--port 8080"), attached long
// arguments ("--port=8080"), unambiguous long name abbreviation ("--por"),
// the "--" terminator and operands mixed between options. Operands are
// skipped and scanning continues past them, which observes the same option
// sequence a permuting getopt does.
package scanner

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/caibingcheng/tiny-cmdline/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Writer - Where diagnostics are written to. Defaults to os.Stderr.
var Writer io.Writer = os.Stderr

// printDiagnostics mirrors the classic opterr toggle, package wide state
// read and restored around a scan by the caller.
var printDiagnostics = true

// SuppressDiagnostics - Turns diagnostic printing off and returns the
// function that restores the previous setting.
func SuppressDiagnostics() (restore func()) {
	saved := printDiagnostics
	printDiagnostics = false
	return func() { printDiagnostics = saved }
}

// Unknown - Option() result for an unrecognized or malformed option.
const Unknown = '?'

// Argument requirement codes for long options, matching the classic
// no_argument, required_argument and optional_argument values.
const (
	NoArgument = iota
	RequiredArgument
	OptionalArgument
)

// LongOption - One entry of the long option table.
type LongOption struct {
	Name   string // Name without the leading dashes
	HasArg int    // One of NoArgument, RequiredArgument, OptionalArgument
	Val    int    // Value reported by Option() on a match
}

// Scanner - Scans an argument list against a short option specification
// string and a long option table.
type Scanner struct {
	args  []string
	short map[byte]bool // known short options, true when one takes an argument
	long  []LongOption

	optind int
	group  string // remainder of a short option cluster being scanned
	prev   string // most recently consumed option related token
	done   bool   // saw the "--" terminator

	opt int
	arg string
}

// New - Returns a scanner over args.
// The short specification string lists every short option character,
// followed by ':' when the option takes an argument. The long option table
// is matched in order, the first entry wins.
func New(args []string, short string, long []LongOption) *Scanner {
	s := &Scanner{
		args:  args,
		short: map[byte]bool{},
		long:  long,
	}
	for i := 0; i < len(short); i++ {
		c := short[i]
		takesArg := i+1 < len(short) && short[i+1] == ':'
		if takesArg {
			i++
		}
		s.short[c] = takesArg
	}
	Logger.Printf("scanner over %v, short %q, long %v\n", args, short, long)
	return s
}

// Scan - Advances to the next recognized option, reporting false when the
// arguments are exhausted or the "--" terminator was consumed. Operands
// are skipped. Unrecognized and malformed options are still a scan result,
// reported as Unknown.
func (s *Scanner) Scan() bool {
	s.opt = 0
	s.arg = ""
	if s.done {
		return false
	}
	if s.group != "" {
		return s.scanShort()
	}
	for s.optind < len(s.args) {
		tok := s.args[s.optind]
		switch {
		case tok == "--":
			s.optind++
			s.prev = tok
			s.done = true
			return false
		case strings.HasPrefix(tok, "--"):
			s.optind++
			s.prev = tok
			return s.scanLong(strings.TrimPrefix(tok, "--"))
		case len(tok) >= 2 && tok[0] == '-':
			s.group = tok[1:]
			return s.scanShort()
		default:
			// Operand, including a lone "-". Skipped, a permuting
			// getopt moves these behind the options.
			s.optind++
		}
	}
	return false
}

// Option - Returns the matched identifier of the last Scan, the short
// character code or the long table entry's Val, or Unknown.
func (s *Scanner) Option() int {
	return s.opt
}

// Arg - Returns the argument value collected by the last Scan, empty when
// the option received none.
func (s *Scanner) Arg() string {
	return s.arg
}

// PrevToken - Returns the most recently consumed option related token.
// When an option took its argument from the following token that token is
// the one reported, the same answer argv[optind-1] gives after a getopt
// call consumed it.
func (s *Scanner) PrevToken() string {
	return s.prev
}

// scanShort consumes one character of the current cluster.
func (s *Scanner) scanShort() bool {
	tok := s.args[s.optind]
	c := s.group[0]
	s.group = s.group[1:]
	// The element is consumed as soon as its last character is being
	// processed, before the character is even looked up.
	if s.group == "" {
		s.prev = tok
		s.optind++
	}
	takesArg, known := s.short[c]
	if !known {
		s.diagnostic(text.ErrorUnrecognizedShort, c)
		s.opt = Unknown
		return true
	}
	s.opt = int(c)
	if !takesArg {
		Logger.Printf("short -%c\n", c)
		return true
	}
	if s.group != "" {
		// The rest of the cluster is the attached argument.
		s.arg = s.group
		s.group = ""
		s.prev = tok
		s.optind++
		Logger.Printf("short -%c with attached argument %q\n", c, s.arg)
		return true
	}
	if s.optind < len(s.args) {
		s.arg = s.args[s.optind]
		s.prev = s.arg
		s.optind++
		Logger.Printf("short -%c with argument %q\n", c, s.arg)
		return true
	}
	s.diagnostic(text.ErrorMissingArgumentShort, c)
	s.opt = Unknown
	return true
}

// scanLong matches the text after the dashes against the long table.
func (s *Scanner) scanLong(body string) bool {
	name, value, hasValue := strings.Cut(body, "=")
	var match *LongOption
	ambiguous := false
	for i := range s.long {
		lo := &s.long[i]
		if lo.Name == name {
			match = lo
			ambiguous = false
			break
		}
		if strings.HasPrefix(lo.Name, name) {
			if match == nil {
				match = lo
			} else {
				ambiguous = true
			}
		}
	}
	if ambiguous {
		s.diagnostic(text.ErrorAmbiguousOption, "--"+body)
		s.opt = Unknown
		return true
	}
	if match == nil {
		s.diagnostic(text.ErrorUnrecognizedLong, body)
		s.opt = Unknown
		return true
	}
	Logger.Printf("long --%s matched %q\n", name, match.Name)
	s.opt = match.Val
	if hasValue {
		if match.HasArg == NoArgument {
			s.diagnostic(text.ErrorExtraArgument, match.Name)
			s.opt = Unknown
			return true
		}
		s.arg = value
		return true
	}
	if match.HasArg == RequiredArgument {
		if s.optind < len(s.args) {
			s.arg = s.args[s.optind]
			s.prev = s.arg
			s.optind++
			return true
		}
		s.diagnostic(text.ErrorMissingArgumentLong, match.Name)
		s.opt = Unknown
		return true
	}
	return true
}

func (s *Scanner) diagnostic(format string, a ...any) {
	if !printDiagnostics {
		return
	}
	fmt.Fprintf(Writer, format+"\n", a...)
}
