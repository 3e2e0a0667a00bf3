package cmdUtils

import (
	"fmt"
	"os"
)

var (
	errPrefix   string = "ERR"
	fatalPrefix string = "FATAL"
)

const (
	yellow = "\033[33m"
	red    = "\033[31m"
	reset  = "\033[0m"
)

func LogError(reason string, err error) {
	// Print in yellow
	fmt.Fprintf(os.Stderr, "%s%s%s %s%s\n", yellow, errPrefix, reset, reason, err)
}

func LogFatalError(reason string, err error) {
	// Print in red
	fmt.Fprintf(os.Stderr, "%s%s%s %s%s\n", red, fatalPrefix, reset, reason, err)
	os.Exit(1)
}
