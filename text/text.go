// This file is part of tiny-cmdline.
//
// Copyright (C) 2021-2026  Bingcheng Cai
//
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

// Package text - user facing strings.
//
// The messages are declared as vars so a program can replace them, for
// example to translate them.
package text

// WarningOnDuplicate holds the text for the registration warning printed
// when an option's identifier is already taken.
// It has a byte placeholder '%c' for the short name and a string
// placeholder '%s' for the long name of the rejected option.
var WarningOnDuplicate = "duplicate option -%c, --%s"

// ErrorUnrecognizedShort holds the scanner diagnostic for an unknown short
// option. It has a byte placeholder '%c' for the offending character.
var ErrorUnrecognizedShort = "invalid option -- '%c'"

// ErrorUnrecognizedLong holds the scanner diagnostic for an unknown long
// option. It has a string placeholder '%s' for the text after the dashes.
var ErrorUnrecognizedLong = "unrecognized option '--%s'"

// ErrorMissingArgumentShort holds the scanner diagnostic for a short option
// that requires an argument and reached the end of the arguments.
// It has a byte placeholder '%c' for the option character.
var ErrorMissingArgumentShort = "option requires an argument -- '%c'"

// ErrorMissingArgumentLong holds the scanner diagnostic for a long option
// that requires an argument and reached the end of the arguments.
// It has a string placeholder '%s' for the option name.
var ErrorMissingArgumentLong = "option '--%s' requires an argument"

// ErrorExtraArgument holds the scanner diagnostic for a long option that
// takes no argument but was given one with '='.
// It has a string placeholder '%s' for the option name.
var ErrorExtraArgument = "option '--%s' doesn't allow an argument"

// ErrorAmbiguousOption holds the scanner diagnostic for a long option
// prefix that matches more than one name.
// It has a string placeholder '%s' for the token as typed.
var ErrorAmbiguousOption = "option '%s' is ambiguous"
