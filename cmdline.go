// This file is part of tiny-cmdline.
//
// Copyright (C) 2021-2026  Bingcheng Cai
//
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

/*
Package cmdline - declarative command line option registration and parsing.

Options are registered with a long name, a short name or both, each bound
to an action that runs when the option shows up on the command line. Parse
drives a getopt style scanner over the arguments and dispatches every
match. Usage output is generated from the registrations, one line per
option in registration order.

The short name 'h' and the long name "help" are reserved for the help
request: -h or --help prints the help and exits the process with status 0.
An unrecognized or malformed option prints the help and exits with status
1. There is no error return from Parse, misuse of the command line is
handled once, at the top, by printing help and stopping.

Usage:

	port := int32(8080)
	cmd := cmdline.New()
	cmdline.Var(cmd, "port", 'p', &port, "listen port")
	cmd.AddFunc("version", 'v', func() { fmt.Println("1.0.0") }, cmdline.NoArgument, "print version")
	cmd.Parse(os.Args[1:])

Actions receive the raw argument text, empty when the option takes or was
given none. Variable bindings are built on top of actions: Var parses the
text as an integer, VarFunc takes the conversion as an argument and Flag
assigns fixed values for plain flags.
*/
package cmdline

import (
	"io"
	"log"
	"os"

	"github.com/caibingcheng/tiny-cmdline/internal/option"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

var Writer io.Writer = os.Stdout // io.Writer to write usage output to. Defaults to os.Stdout.

var ErrWriter io.Writer = os.Stderr // io.Writer to write registration warnings to. Defaults to os.Stderr.

// exitFn - This variable allows to test os.Exit calls
var exitFn = os.Exit

// Argument - Indicates whether an option takes an argument value.
type Argument int

// Argument modes. A RequiredArgument option consumes a value, attached
// (-p8080, --port=8080) or as the following argument (-p 8080, --port
// 8080). An OptionalArgument option only consumes an attached
// --long=value, never the following argument.
const (
	NoArgument Argument = iota
	RequiredArgument
	OptionalArgument
)

// Action - Callback bound to an option. It receives the raw argument text,
// empty when the option takes or was given no argument.
type Action func(value string)

// Cmdline - main object.
type Cmdline struct {
	registry *option.Registry
}

// New returns an empty Cmdline ready for option registration.
func New() *Cmdline {
	return &Cmdline{registry: option.NewRegistry()}
}
