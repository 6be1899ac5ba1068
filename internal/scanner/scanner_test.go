// This file is part of tiny-cmdline.
//
// Copyright (C) 2021-2026  Bingcheng Cai
//
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package scanner

import (
	"bytes"
	"os"
	"reflect"
	"testing"
)

type match struct {
	Opt  int
	Arg  string
	Prev string
}

func scanAll(s *Scanner) []match {
	var matches []match
	for s.Scan() {
		matches = append(matches, match{s.Option(), s.Arg(), s.PrevToken()})
	}
	return matches
}

func testTable() (string, []LongOption) {
	return "vp:", []LongOption{
		{Name: "verbose", HasArg: NoArgument, Val: 'v'},
		{Name: "port", HasArg: RequiredArgument, Val: 'p'},
		{Name: "color", HasArg: OptionalArgument, Val: 258},
		{Name: "portable", HasArg: NoArgument, Val: 259},
	}
}

func TestScan(t *testing.T) {
	restore := SuppressDiagnostics()
	defer restore()

	tests := []struct {
		name     string
		args     []string
		expected []match
	}{
		{"empty", []string{}, nil},
		{"operands only", []string{"in.txt", "out.txt"}, nil},
		{"lone dash is an operand", []string{"-", "-v"}, []match{{'v', "", "-v"}}},

		{"short flag", []string{"-v"}, []match{{'v', "", "-v"}}},
		{"short cluster", []string{"-vv"}, []match{{'v', "", ""}, {'v', "", "-vv"}}},
		{"short with separate argument", []string{"-p", "8080"}, []match{{'p', "8080", "8080"}}},
		{"short with attached argument", []string{"-p8080"}, []match{{'p', "8080", "-p8080"}}},
		{"cluster ending in argument", []string{"-vp80"}, []match{{'v', "", ""}, {'p', "80", "-vp80"}}},

		{"long flag", []string{"--verbose"}, []match{{'v', "", "--verbose"}}},
		{"long with separate argument", []string{"--port", "8080"}, []match{{'p', "8080", "8080"}}},
		{"long with attached argument", []string{"--port=8080"}, []match{{'p', "8080", "--port=8080"}}},
		{"long optional without value", []string{"--color"}, []match{{258, "", "--color"}}},
		{"long optional with value", []string{"--color=auto"}, []match{{258, "auto", "--color=auto"}}},
		{"long optional ignores the following token", []string{"--color", "auto"}, []match{{258, "", "--color"}}},
		{"required argument takes the next token whatever it is", []string{"--port", "--verbose"}, []match{{'p', "--verbose", "--verbose"}}},

		{"abbreviation", []string{"--verb"}, []match{{'v', "", "--verb"}}},
		{"abbreviation with value", []string{"--col=auto"}, []match{{258, "auto", "--col=auto"}}},
		{"longer abbreviation", []string{"--porta"}, []match{{259, "", "--porta"}}},
		{"ambiguous abbreviation", []string{"--po"}, []match{{Unknown, "", "--po"}}},

		{"unknown short", []string{"-z"}, []match{{Unknown, "", "-z"}}},
		{"unknown short mid cluster", []string{"-zv"}, []match{{Unknown, "", ""}, {'v', "", "-zv"}}},
		{"unknown long", []string{"--zeta"}, []match{{Unknown, "", "--zeta"}}},
		{"missing argument short", []string{"-p"}, []match{{Unknown, "", "-p"}}},
		{"missing argument long", []string{"--port"}, []match{{Unknown, "", "--port"}}},
		{"extra argument", []string{"--verbose=1"}, []match{{Unknown, "", "--verbose=1"}}},

		{"terminator", []string{"-v", "--", "-p", "80"}, []match{{'v', "", "-v"}}},
		{"terminator first", []string{"--", "-v"}, nil},
		{"options between operands", []string{"in.txt", "-v", "out.txt", "--port", "80"}, []match{{'v', "", "-v"}, {'p', "80", "80"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			short, long := testTable()
			s := New(tt.args, short, long)
			got := scanAll(s)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("wrong matches: got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestScanExactMatchAfterPrefix(t *testing.T) {
	restore := SuppressDiagnostics()
	defer restore()

	// "port" prefixes "portable" but the exact match wins regardless of
	// table order.
	long := []LongOption{
		{Name: "portable", HasArg: NoArgument, Val: 1},
		{Name: "port", HasArg: RequiredArgument, Val: 2},
	}
	s := New([]string{"--port=80"}, "", long)
	got := scanAll(s)
	expected := []match{{2, "80", "--port=80"}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("wrong matches: got %v, want %v", got, expected)
	}
}

func TestScanStopsAfterTerminator(t *testing.T) {
	restore := SuppressDiagnostics()
	defer restore()

	short, long := testTable()
	s := New([]string{"--", "-v"}, short, long)
	for s.Scan() {
		t.Fatalf("match after terminator: %d", s.Option())
	}
	// Extra Scan calls keep reporting the end.
	if s.Scan() {
		t.Errorf("scan resumed after terminator")
	}
}

func TestDiagnostics(t *testing.T) {
	buf := &bytes.Buffer{}
	Writer = buf
	defer func() { Writer = os.Stderr }()

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"unknown short", []string{"-z"}, "invalid option -- 'z'\n"},
		{"unknown long", []string{"--zeta"}, "unrecognized option '--zeta'\n"},
		{"missing argument short", []string{"-p"}, "option requires an argument -- 'p'\n"},
		{"missing argument long", []string{"--port"}, "option '--port' requires an argument\n"},
		{"extra argument", []string{"--verbose=1"}, "option '--verbose' doesn't allow an argument\n"},
		{"ambiguous", []string{"--po"}, "option '--po' is ambiguous\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			short, long := testTable()
			s := New(tt.args, short, long)
			for s.Scan() {
			}
			if buf.String() != tt.expected {
				t.Errorf("wrong diagnostic: got %q, want %q", buf.String(), tt.expected)
			}
		})
	}
}

func TestSuppressDiagnostics(t *testing.T) {
	buf := &bytes.Buffer{}
	Writer = buf
	defer func() { Writer = os.Stderr }()

	restore := SuppressDiagnostics()
	s := New([]string{"-z"}, "v", nil)
	for s.Scan() {
	}
	if buf.Len() != 0 {
		t.Errorf("diagnostic printed while suppressed: %q", buf.String())
	}
	restore()

	s = New([]string{"-z"}, "v", nil)
	for s.Scan() {
	}
	expected := "invalid option -- 'z'\n"
	if buf.String() != expected {
		t.Errorf("diagnostic not printed after restore: %q", buf.String())
	}
}
