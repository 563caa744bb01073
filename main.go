// Command devlisp is the देवलिस्प interpreter's command-line entry
// point: a REPL by default, plus "run" and "eval" subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/devlisp/devlisp/cmd/devlisp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
