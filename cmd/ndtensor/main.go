// Package main provides the ndtensor diagnostics CLI.
package main

import (
	"os"
)

func main() {
	if err := NewCLI().Execute(); err != nil {
		os.Exit(1)
	}
}
