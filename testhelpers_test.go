package cmdline

import (
	"bytes"
	"fmt"
	"os"
)

func setupLogging() *bytes.Buffer {
	s := ""
	buf := bytes.NewBufferString(s)
	Logger.SetOutput(buf)
	return buf
}

// setupParse - Captures usage output, registration warnings and exit calls.
// The exit code is -1 until exitFn runs. The returned cleanup restores the
// package state.
//
// Usage:
//
//	usageBuf, warnBuf, exitCode, cleanup := setupParse()
//	defer cleanup()
func setupParse() (usageBuf, warnBuf *bytes.Buffer, exitCode *int, cleanup func()) {
	usageBuf = &bytes.Buffer{}
	warnBuf = &bytes.Buffer{}
	code := -1
	Writer = usageBuf
	ErrWriter = warnBuf
	exitFn = func(c int) { code = c }
	return usageBuf, warnBuf, &code, func() {
		Writer = os.Stdout
		ErrWriter = os.Stderr
		exitFn = os.Exit
	}
}

// Test helper to compare two string outputs and find the first difference
func firstDiff(got, expected string) string {
	same := ""
	for i, gc := range got {
		if len([]rune(expected)) <= i {
			return fmt.Sprintf("got:\n%s\nIndex: %d | diff: got '%s' - exp '%s'\n", got, len(expected), got, expected)
		}
		if gc != []rune(expected)[i] {
			return fmt.Sprintf("got:\n%s\nIndex: %d | diff: got '%c' - exp '%c'\n%s\n", got, i, gc, []rune(expected)[i], same)
		}
		same += string(gc)
	}
	if len(expected) > len(got) {
		return fmt.Sprintf("got:\n%s\nIndex: %d | diff: got '%s' - exp '%s'\n", got, len(got), got, expected)
	}
	return ""
}
