// Package interp walks the AST defined in internal/ast against a
// variable Environment, producing Values and print-zone side effects.
package interp

import (
	"fmt"
	"io"

	"github.com/tw-lang/turnways/internal/ast"
)

// signal is the non-value result a statement's execution can yield,
// used to unwind out of a while loop without exceptions. See spec.md
// §4.6 and §9 ("Control-flow signals, not exceptions").
type signal int

const (
	signalNone signal = iota
	signalBreak
	signalContinue
)

// Interpreter walks a Program against a single flat Environment and a
// PrintZone. One Interpreter corresponds to one run: the driver makes
// a fresh one per invocation (see internal/driver), never a shared
// package-level global.
type Interpreter struct {
	Env   *Environment
	Print *PrintZone
	Sink  io.Writer
}

// New returns an Interpreter with a fresh Environment and PrintZone,
// flushing to sink whenever the program executes `page` or finishes.
func New(sink io.Writer) *Interpreter {
	return &Interpreter{Env: NewEnvironment(), Print: &PrintZone{}, Sink: sink}
}

// Run evaluates every top-level statement of prog in order. A signal
// returned by a bare top-level Break/Continue (outside any while loop)
// is consumed silently, matching the reference implementation, whose
// driver loop ignores any non-nil return from evaluate() at the top
// level — see DESIGN.md's Open Question decision.
func (it *Interpreter) Run(prog *ast.Program) error {
	for _, stmt := range prog.Statements {
		if _, err := it.execStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execStatement(stmt ast.Statement) (signal, error) {
	switch s := stmt.(type) {
	case *ast.Let:
		v, err := it.eval(s.Expr)
		if err != nil {
			return signalNone, err
		}
		it.Env.Set(s.Name, v)
		return signalNone, nil

	case *ast.Print:
		v, err := it.eval(s.Expr)
		if err != nil {
			return signalNone, err
		}
		it.Print.Append(v)
		return signalNone, nil

	case *ast.If:
		cond, err := it.eval(s.Cond)
		if err != nil {
			return signalNone, err
		}
		if !cond.Truthy() {
			return signalNone, nil
		}
		return it.execBody(s.Body)

	case *ast.While:
		return it.execWhile(s)

	case *ast.Break:
		return signalBreak, nil

	case *ast.Continue:
		return signalContinue, nil

	case *ast.Page:
		if err := it.Print.Flush(it.Sink); err != nil {
			return signalNone, err
		}
		return signalNone, nil

	case *ast.ExprStmt:
		if _, err := it.eval(s.Expr); err != nil {
			return signalNone, err
		}
		return signalNone, nil
	}

	return signalNone, &ValueError{Message: fmt.Sprintf("Unexpected statement: %T", stmt)}
}

// execBody runs stmts in order. A signal from any statement propagates
// out unchanged — an If forwards a Break/Continue from inside its body
// to whatever While encloses it, rather than consuming it itself.
func (it *Interpreter) execBody(stmts []ast.Statement) (signal, error) {
	for _, stmt := range stmts {
		sig, err := it.execStatement(stmt)
		if err != nil {
			return signalNone, err
		}
		if sig != signalNone {
			return sig, nil
		}
	}
	return signalNone, nil
}

// execWhile implements spec.md §4.6's While semantics precisely at the
// statement level: the body's statement-by-statement pass stops as
// soon as any one statement yields a signal (not only Break/Continue
// nodes themselves — a nested While's own unconsumed Break would stop
// here too, but nested loops only ever let signalNone escape them, by
// construction).
func (it *Interpreter) execWhile(s *ast.While) (signal, error) {
	for {
		cond, err := it.eval(s.Cond)
		if err != nil {
			return signalNone, err
		}
		if !cond.Truthy() {
			return signalNone, nil
		}

		broke := false
		for _, stmt := range s.Body {
			sig, err := it.execStatement(stmt)
			if err != nil {
				return signalNone, err
			}
			if sig == signalBreak {
				broke = true
				break
			}
			if sig == signalContinue {
				break
			}
		}
		if broke {
			return signalNone, nil
		}
	}
}
