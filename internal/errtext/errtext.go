// Package errtext turns the typed errors raised by internal/parser,
// internal/interp and internal/driver into the two textual forms a
// turnways run can produce: the plain sink message the language itself
// prints on failure, and a caret-pointing diagnostic for a human
// reading the CLI's stderr.
package errtext

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tw-lang/turnways/internal/lexer"
)

// Positioned is implemented by every error kind that carries a source
// position: parser.SyntaxError and interp's NameError/TypeError/
// IndexError. interp's ValueError carries no position (it signals an
// internal bug, not a source-level fault) and is therefore not
// Positioned.
type Positioned interface {
	error
	Position() lexer.Position
}

// IOError is raised by internal/driver when the requested source file
// cannot be read. It has no source position of its own: the failure
// happens before any lexing takes place.
type IOError struct {
	Path string
}

func (e *IOError) Error() string {
	return fmt.Sprintf("File '%s' not found. Please try again.", e.Path)
}

// SinkMessage renders err the way the language itself reports a
// failure inside the print zone: a single plain sentence, with no
// position or caret. IOError gets its own wording; everything else
// becomes "An error occurred: <message>", matching the reference
// implementation's blanket except-clause.
func SinkMessage(err error) string {
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return ioErr.Error()
	}
	return fmt.Sprintf("An error occurred: %s", err.Error())
}

// Diagnostic renders err as a caret-pointing, file/line/column
// annotated report for a human at a terminal. It is never written to
// the print zone — only to the CLI's stderr — and source may be empty
// if it is unavailable (e.g. for an IOError, which predates reading
// any source at all).
func Diagnostic(err error, file, source string, color bool) string {
	p, hasPos := err.(Positioned)

	var sb strings.Builder

	if !hasPos {
		sb.WriteString(fmt.Sprintf("Error: %s\n", err.Error()))
		return sb.String()
	}
	pos := p.Position()

	if file != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%s\n", file, pos.String()))
	} else {
		sb.WriteString(fmt.Sprintf("Error at %s\n", pos.String()))
	}

	if line := sourceLine(source, pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(err.Error())
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// sourceLine returns the 1-indexed line of source, or "" if lineNum is
// out of range or source is empty.
func sourceLine(source string, lineNum int) string {
	if source == "" {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
