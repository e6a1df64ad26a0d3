// Command pesci runs the pesci interpreter: with no arguments it opens
// an interactive session, and with one file argument (optionally
// `+`-prefixed to enable debug mode) it runs that file to completion.
package main

import (
	"fmt"
	"os"

	"github.com/pesci-lang/pesci/cmd/pesci/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
