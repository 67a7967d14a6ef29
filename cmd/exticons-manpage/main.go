package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/exticons/cmd/exticons"
	"github.com/arthur-debert/exticons/internal/version"
)

// Writes the exticons(1) man page to stdout, or one page per command into
// the directory given as the only argument.
func main() {
	rootCmd := exticons.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "EXTICONS",
		Section: "1",
		Source:  "exticons " + version.Version,
		Manual:  "exticons manual",
	}

	var err error
	if len(os.Args) > 1 {
		err = doc.GenManTree(rootCmd, header, os.Args[1])
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
