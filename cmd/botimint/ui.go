package main

import (
	"fmt"
	"io"

	"github.com/Kodylow/botimint/internal/ui"
)

// Re-export ui functions for convenience in this package
var (
	title   = ui.Title
	subtle  = ui.Subtle
	success = ui.Success
	warning = ui.Warning
	errorf  = ui.Error
	key     = ui.Key
	value   = ui.Value
	cmdText = ui.Command
)

// printIfSet prints a key-value line if the value is non-empty.
func printIfSet(w io.Writer, label, val string) {
	if val != "" {
		fmt.Fprintf(w, "  %s %s\n", key(label), value(val))
	}
}
