package cmdline

import (
	"fmt"

	"github.com/caibingcheng/tiny-cmdline/internal/option"
	"github.com/caibingcheng/tiny-cmdline/text"
)

// Add - Registers an option bound to action.
//
// Every option gets an identifier, the short name's character code or an
// internal value for options registered without a short name. Registering
// two options under the same identifier collides: a warning is printed to
// ErrWriter and the later registration is dropped whole, so not even its
// long form will parse.
func (cmd *Cmdline) Add(long string, short byte, action Action, mode Argument, help string) {
	opt := option.New(long, short, option.Mode(mode), action, help)
	if !cmd.registry.Add(opt) {
		fmt.Fprintf(ErrWriter, text.WarningOnDuplicate+"\n", short, long)
		return
	}
	Logger.Printf("added -%c, --%s as %d\n", short, long, opt.Val)
}

// AddFunc - Registers an option bound to a callback that takes no value.
// The callback is adapted into the Action shape, dropping whatever
// argument text the scanner collected.
func (cmd *Cmdline) AddFunc(long string, short byte, fn func(), mode Argument, help string) {
	cmd.Add(long, short, func(string) { fn() }, mode, help)
}
