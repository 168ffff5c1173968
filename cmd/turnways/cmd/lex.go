package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tw-lang/turnways/internal/lexer"
)

var (
	lexShowPos  bool
	lexShowType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a turnways source file",
	Long: `Tokenize a turnways file and print the resulting tokens.

Unlike run, lex reads the file as already-horizontal text — it is a
debugging aid for internal/lexer, not a way to execute vertical source.`,
	Args: cobra.ExactArgs(1),
	RunE: lexFile,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show token type names")
}

func lexFile(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	l := lexer.New(string(content))
	out := cmd.OutOrStdout()
	for {
		tok := l.NextToken()
		printToken(out, tok)
		if tok.Type == lexer.EOF {
			break
		}
	}
	return nil
}

func printToken(out io.Writer, tok lexer.Token) {
	line := ""
	if lexShowType {
		line += fmt.Sprintf("[%-14s]", tok.Type)
	}
	switch tok.Type {
	case lexer.EOF:
		line += " EOF"
	case lexer.ILLEGAL:
		line += fmt.Sprintf(" ILLEGAL: %q", tok.Literal)
	case lexer.NUMBER:
		line += fmt.Sprintf(" %v", tok.Number)
	default:
		if tok.Literal != "" {
			line += fmt.Sprintf(" %q", tok.Literal)
		} else {
			line += fmt.Sprintf(" %s", tok.Type)
		}
	}
	if lexShowPos {
		line += fmt.Sprintf(" @%s", tok.Pos.String())
	}
	fmt.Fprintln(out, line)
}
