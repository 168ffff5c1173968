package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tw-lang/turnways/internal/driver"
	"github.com/tw-lang/turnways/internal/errtext"
	"github.com/tw-lang/turnways/internal/turnways"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a turnways source file",
	Long: `Run a turnways program.

With a file argument, the file's contents are treated as vertical
source and evaluated directly.

Without one, run prompts for a file path on stdin using the language's
own protocol: the prompt is itself rotated like print-buffer output,
and the path is read back as vertical multi-line input —
consecutive non-empty lines joined by newline, terminated by a blank
line — then Flip-rotated into the actual path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		var err error
		path, err = promptForPath(cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	res := driver.RunFile(path, cmd.OutOrStdout())
	if res.Err != nil {
		if verbose {
			fmt.Fprintln(cmd.ErrOrStderr(), errtext.Diagnostic(res.Err, path, res.Source, true))
		}
		return nil // the failure was already reported through the sink; exit code stays 0 per spec.md §6.
	}
	return nil
}

// promptForPath implements spec.md §6's CLI protocol: the fixed prompt
// is rotated with turnways.Flop and printed with a trailing newline (the
// same output a print-zone flush of it would produce), then vertical input is read from stdin —
// consecutive non-empty lines until a blank line — and Flip-rotated
// back into the path the caller actually wants to open.
func promptForPath(out io.Writer) (string, error) {
	promptZone := turnways.Flop("Enter file path to source code:")
	if _, err := fmt.Fprintln(out, promptZone); err != nil {
		return "", err
	}

	scanner := bufio.NewScanner(os.Stdin)
	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	vertical := ""
	for i, l := range lines {
		if i > 0 {
			vertical += "\n"
		}
		vertical += l
	}
	return turnways.Flip(vertical), nil
}
