// Package main provides the turntable CLI: it rotates square numerical
// tables embedded in CSV batches and keeps an optional run history.
// Implements: docs/ARCHITECTURE § CLI.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
