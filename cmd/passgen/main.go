// Package main is the entry point for the passgen CLI.
package main

import (
	"fmt"
	"os"

	"github.com/vaultpass/passgen/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
