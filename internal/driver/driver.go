// Package driver runs the whole turnways pipeline — rotate the raw
// vertical source back to horizontal text, lex, parse, evaluate — the
// way the reference implementation's top-level script does, wrapping
// the whole thing in a single catch-all that reports failures through
// the print zone rather than aborting the process.
package driver

import (
	"io"
	"os"

	"github.com/tw-lang/turnways/internal/errtext"
	"github.com/tw-lang/turnways/internal/interp"
	"github.com/tw-lang/turnways/internal/lexer"
	"github.com/tw-lang/turnways/internal/parser"
	"github.com/tw-lang/turnways/internal/turnways"
)

// Result carries everything a caller might want to report after a run:
// the horizontal source the vertical input flipped into (useful for
// `--dump-source`-style diagnostics) and the error, if any, that ended
// the run early.
type Result struct {
	Source string
	Err    error
}

// RunFile reads path, treats its contents as turnways-vertical source,
// and evaluates it against sink. Any failure — unreadable file, a
// lexer/parser/evaluator error — is both returned and appended to the
// print zone as the plain sink message the language itself would
// produce, then the zone is flushed to sink regardless of how the run
// ended, so partial output before the fault is never lost.
func RunFile(path string, sink io.Writer) Result {
	content, err := os.ReadFile(path)
	if err != nil {
		ioErr := &errtext.IOError{Path: path}
		zone := &interp.PrintZone{}
		zone.AppendText(errtext.SinkMessage(ioErr))
		_ = zone.Flush(sink)
		return Result{Err: ioErr}
	}
	return Run(string(content), sink)
}

// Run flips the vertical source into horizontal text and evaluates it
// against a fresh Interpreter; RunFile calls it with the contents of
// the file it read. Exposed directly so source held in memory (as in
// this package's tests) can be run without a round trip to disk.
//
// The double transform — Flop then Flip — is not optional: Flop first
// pads every line to a uniform width, so the subsequent Flip has a
// rectangular grid to rotate back. Applying Flip alone to ragged
// vertical source (lines of unequal length) corrupts it, per spec.md
// §4.7 step 2 and §9's warning against "optimizing away" this step.
func Run(verticalSource string, sink io.Writer) Result {
	source := turnways.Flip(turnways.Flop(verticalSource))

	it := interp.New(sink)

	prog, err := parser.New(lexer.New(source)).ParseProgram()
	if err != nil {
		reportFailure(it, err)
		return Result{Source: source, Err: err}
	}

	if err := it.Run(prog); err != nil {
		reportFailure(it, err)
		return Result{Source: source, Err: err}
	}

	if err := it.Print.Flush(sink); err != nil {
		return Result{Source: source, Err: err}
	}
	return Result{Source: source}
}

func reportFailure(it *interp.Interpreter, err error) {
	it.Print.AppendText(errtext.SinkMessage(err))
	_ = it.Print.Flush(it.Sink)
}
