// This file is part of tiny-cmdline.
//
// Copyright (C) 2021-2026  Bingcheng Cai
//
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

// Package option - internal option struct and registry.
package option

import (
	"fmt"
	"io"
	"log"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Mode - Indicates how an option relates to an argument value.
type Mode int

// Argument modes
const (
	None Mode = iota
	Required
	Optional
)

// Identifiers for options without a short name start past the single byte
// range so they can never collide with a short character code.
const counterSeed = 256

// Option - main object, one registered command line option.
type Option struct {
	Short  byte   // Short name, 0 when the option has no short form
	Long   string // Long name, empty when the option has no long form
	Mode   Mode   // Whether the option consumes an argument value
	Action func(value string)
	Help   string // Description used for generated usage output
	Val    int    // Identifier, assigned by the registry
}

// New - Returns a new option object.
func New(long string, short byte, mode Mode, action func(value string), help string) *Option {
	return &Option{
		Short:  short,
		Long:   long,
		Mode:   mode,
		Action: action,
		Help:   help,
	}
}

// Usage - Returns the option's usage line.
// The argument marker is only shown for options that require a value.
func (opt *Option) Usage() string {
	arg := " "
	if opt.Mode == Required {
		arg = " <arg> "
	}
	switch {
	case opt.Short == 0:
		return fmt.Sprintf("\t--%s%s%s\n", opt.Long, arg, opt.Help)
	case opt.Long == "":
		return fmt.Sprintf("\t-%c%s%s\n", opt.Short, arg, opt.Help)
	default:
		return fmt.Sprintf("\t-%c, --%s%s%s\n", opt.Short, opt.Long, arg, opt.Help)
	}
}

// Registry - Collection of options keyed by identifier.
// It remembers registration order so usage output and the derived scanner
// encodings are stable.
type Registry struct {
	options map[int]*Option
	order   []int
	counter int
}

// NewRegistry - Returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		options: map[int]*Option{},
		counter: counterSeed,
	}
}

// Add - Assigns the option's identifier, the short character code or the
// next counter value for options without one, and stores the option.
// The first registration for an identifier wins, Add reports whether the
// option was stored.
func (r *Registry) Add(opt *Option) bool {
	id := int(opt.Short)
	if opt.Short == 0 {
		id = r.counter
		r.counter++
	}
	if _, ok := r.options[id]; ok {
		Logger.Printf("rejected duplicate id %d for -%c, --%s\n", id, opt.Short, opt.Long)
		return false
	}
	opt.Val = id
	r.options[id] = opt
	r.order = append(r.order, id)
	return true
}

// Get - Returns the option registered under the given identifier or nil.
func (r *Registry) Get(id int) *Option {
	return r.options[id]
}

// Options - Returns the options in registration order.
func (r *Registry) Options() []*Option {
	list := make([]*Option, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.options[id])
	}
	return list
}
