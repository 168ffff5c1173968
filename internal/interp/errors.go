package interp

import (
	"fmt"

	"github.com/tw-lang/turnways/internal/lexer"
)

// NameError is raised when a variable is referenced before it is bound.
type NameError struct {
	Pos  lexer.Position
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("Variable '%s' not defined", e.Name)
}

// Position satisfies internal/errtext.Positioned.
func (e *NameError) Position() lexer.Position { return e.Pos }

// TypeError is raised by indexing a non-array or by arithmetic over
// incompatible operand types.
type TypeError struct {
	Pos     lexer.Position
	Message string
}

func (e *TypeError) Error() string { return e.Message }

// Position satisfies internal/errtext.Positioned.
func (e *TypeError) Position() lexer.Position { return e.Pos }

// IndexError is raised when an array index falls outside [0, len).
type IndexError struct {
	Pos lexer.Position
}

func (e *IndexError) Error() string { return "Array index out of range" }

// Position satisfies internal/errtext.Positioned.
func (e *IndexError) Position() lexer.Position { return e.Pos }

// ValueError is raised on an AST shape the evaluator does not
// recognize. Reaching it indicates an internal bug, not a user error:
// the parser only ever emits shapes the evaluator knows how to walk.
type ValueError struct {
	Message string
}

func (e *ValueError) Error() string { return e.Message }
