// Package main provides the patternbook CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/patternbook/internal/demo"
)

// version is overridable at build time via -ldflags.
var version = "0.1.0"

// Exit codes.
const (
	exitOK        = 0
	exitRunError  = 1
	exitUserError = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if isUserError(err) {
			os.Exit(exitUserError)
		}
		os.Exit(exitRunError)
	}
	os.Exit(exitOK)
}

// isUserError reports whether the failure was caused by bad invocation
// rather than a demo failing at runtime.
func isUserError(err error) bool {
	return errors.Is(err, demo.ErrDemoNotFound)
}
