// This file is part of tiny-cmdline.
//
// Copyright (C) 2021-2026  Bingcheng Cai
//
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package cmdline

import "strconv"

// ConvertFunc - Conversion strategy turning raw argument text into a typed
// value, picked at the VarFunc call site.
type ConvertFunc[T any] func(value string) T

// Integer - Types the default conversion can produce.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Var - Registers an option that requires an argument and stores the
// converted value into p. The default conversion parses the text as a base
// 10 64 bit integer and narrows it to T; malformed text panics. Bind with
// VarFunc or Add instead when the text needs validation or another type.
func Var[T Integer](cmd *Cmdline, long string, short byte, p *T, help string) {
	VarFunc(cmd, long, short, p, convertInteger[T], help)
}

// VarFunc - Like Var with a caller supplied conversion:
//
//	cmdline.VarFunc(cmd, "file", 'f', &file, func(value string) string { return value }, "file path")
func VarFunc[T any](cmd *Cmdline, long string, short byte, p *T, convert ConvertFunc[T], help string) {
	cmd.Add(long, short, func(value string) { *p = convert(value) }, RequiredArgument, help)
}

// Flag - Registers an option that takes no argument. p receives def right
// away and placed when the flag shows up on the command line.
func Flag[T any](cmd *Cmdline, long string, short byte, p *T, def, placed T, help string) {
	*p = def
	cmd.Add(long, short, func(string) { *p = placed }, NoArgument, help)
}

func convertInteger[T Integer](value string) T {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		panic(err)
	}
	return T(n)
}
