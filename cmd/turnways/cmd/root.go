package cmd

import (
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "turnways",
	Short: "A column-rotated toy scripting language",
	Long: `turnways runs programs written in the turnways language: a small
imperative scripting language whose source files and program output
are both stored rotated 90 degrees, one physical line per column of
the "real" text.

turnways run reads a source file (or an interactively typed one),
rotates it back to normal text, and evaluates it, rotating any printed
output back to vertical form before it is written out.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic detail to stderr")
}
