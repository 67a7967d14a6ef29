package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/exticons/cmd/exticons"
	"github.com/pterm/pterm"
)

func main() {
	rootCmd := exticons.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, pterm.Red(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
