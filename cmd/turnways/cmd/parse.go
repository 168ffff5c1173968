package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tw-lang/turnways/internal/errtext"
	"github.com/tw-lang/turnways/internal/lexer"
	"github.com/tw-lang/turnways/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a turnways source file and dump its AST",
	Long: `Parse a turnways file, already-horizontal (no rotation applied),
and print one line per top-level statement of the resulting AST.`,
	Args: cobra.ExactArgs(1),
	RunE: parseFile,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func parseFile(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	prog, err := parser.New(lexer.New(string(content))).ParseProgram()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errtext.Diagnostic(err, args[0], string(content), true))
		return fmt.Errorf("parsing failed")
	}

	fmt.Fprint(cmd.OutOrStdout(), prog.String())
	return nil
}
