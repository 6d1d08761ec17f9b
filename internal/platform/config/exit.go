package config

import (
	"fmt"
	"io"
	"os"
)

// exit terminates the process; tests replace it.
var exit = os.Exit

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	exitf(os.Stderr, format, args...)
}

// ExitOnError exits through Exitf when err is non-nil, prefixing it with
// what the process was doing.
func ExitOnError(err error, doing string) {
	if err == nil {
		return
	}
	Exitf("%s: %v", doing, err)
}

func exitf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
	exit(1)
}
