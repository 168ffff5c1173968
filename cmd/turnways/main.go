// Command turnways is the CLI front end for the turnways interpreter.
package main

import (
	"fmt"
	"os"

	"github.com/tw-lang/turnways/cmd/turnways/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
