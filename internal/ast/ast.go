// Package ast defines the node shapes produced by the parser and
// consumed by the evaluator.
package ast

import (
	"fmt"
	"strings"

	"github.com/tw-lang/turnways/internal/lexer"
)

// Node is implemented by every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() lexer.Position
}

// Statement is implemented by statement nodes.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by expression nodes.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node: an ordered list of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{}
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Statements {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// ---- Statements ----

// Let binds the value of Expr to Name in the environment.
type Let struct {
	Token lexer.Token
	Name  string
	Expr  Expression
}

func (s *Let) statementNode()            {}
func (s *Let) TokenLiteral() string      { return s.Token.Literal }
func (s *Let) Pos() lexer.Position       { return s.Token.Pos }
func (s *Let) String() string {
	return fmt.Sprintf("let %s = %s;", s.Name, s.Expr.String())
}

// Print appends the stringified value of Expr to the print buffer.
type Print struct {
	Token lexer.Token
	Expr  Expression
}

func (s *Print) statementNode()       {}
func (s *Print) TokenLiteral() string { return s.Token.Literal }
func (s *Print) Pos() lexer.Position  { return s.Token.Pos }
func (s *Print) String() string       { return fmt.Sprintf("print(%s);", s.Expr.String()) }

// If executes Body once if Cond is truthy. There is no else clause.
type If struct {
	Token lexer.Token
	Cond  Expression
	Body  []Statement
}

func (s *If) statementNode()       {}
func (s *If) TokenLiteral() string { return s.Token.Literal }
func (s *If) Pos() lexer.Position  { return s.Token.Pos }
func (s *If) String() string {
	return fmt.Sprintf("if (%s) { %s }", s.Cond.String(), stmtsString(s.Body))
}

// While executes Body repeatedly while Cond is truthy.
type While struct {
	Token lexer.Token
	Cond  Expression
	Body  []Statement
}

func (s *While) statementNode()       {}
func (s *While) TokenLiteral() string { return s.Token.Literal }
func (s *While) Pos() lexer.Position  { return s.Token.Pos }
func (s *While) String() string {
	return fmt.Sprintf("while (%s) { %s }", s.Cond.String(), stmtsString(s.Body))
}

// Break terminates the innermost enclosing While.
type Break struct {
	Token lexer.Token
}

func (s *Break) statementNode()       {}
func (s *Break) TokenLiteral() string { return s.Token.Literal }
func (s *Break) Pos() lexer.Position  { return s.Token.Pos }
func (s *Break) String() string       { return "break;" }

// Continue re-tests the condition of the innermost enclosing While.
type Continue struct {
	Token lexer.Token
}

func (s *Continue) statementNode()       {}
func (s *Continue) TokenLiteral() string { return s.Token.Literal }
func (s *Continue) Pos() lexer.Position  { return s.Token.Pos }
func (s *Continue) String() string       { return "continue;" }

// Page flushes the print buffer through the turnways rotation.
type Page struct {
	Token lexer.Token
}

func (s *Page) statementNode()       {}
func (s *Page) TokenLiteral() string { return s.Token.Literal }
func (s *Page) Pos() lexer.Position  { return s.Token.Pos }
func (s *Page) String() string       { return "page;" }

// ExprStmt is an expression used as a top-level statement.
type ExprStmt struct {
	Expr Expression
}

func (s *ExprStmt) statementNode()       {}
func (s *ExprStmt) TokenLiteral() string { return s.Expr.TokenLiteral() }
func (s *ExprStmt) Pos() lexer.Position  { return s.Expr.Pos() }
func (s *ExprStmt) String() string       { return s.Expr.String() }

func stmtsString(stmts []Statement) string {
	var sb strings.Builder
	for i, s := range stmts {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}

// ---- Expressions ----

// Number is a decimal literal.
type Number struct {
	Token lexer.Token
	Value float64
}

func (e *Number) expressionNode()      {}
func (e *Number) TokenLiteral() string { return e.Token.Literal }
func (e *Number) Pos() lexer.Position  { return e.Token.Pos }
func (e *Number) String() string       { return e.Token.Literal }

// String is a double-quoted string literal with quotes stripped.
type String struct {
	Token lexer.Token
	Value string
}

func (e *String) expressionNode()      {}
func (e *String) TokenLiteral() string { return e.Token.Literal }
func (e *String) Pos() lexer.Position  { return e.Token.Pos }
func (e *String) String() string       { return fmt.Sprintf("%q", e.Value) }

// Bool is a true/false literal.
type Bool struct {
	Token lexer.Token
	Value bool
}

func (e *Bool) expressionNode()      {}
func (e *Bool) TokenLiteral() string { return e.Token.Literal }
func (e *Bool) Pos() lexer.Position  { return e.Token.Pos }
func (e *Bool) String() string       { return e.Token.Literal }

// Var is a variable reference.
type Var struct {
	Token lexer.Token
	Name  string
}

func (e *Var) expressionNode()      {}
func (e *Var) TokenLiteral() string { return e.Token.Literal }
func (e *Var) Pos() lexer.Position  { return e.Token.Pos }
func (e *Var) String() string       { return e.Name }

// ArrayLit is an array literal. The parser only ever produces zero or
// one element (see internal/parser's exprList) because the lexer does not
// recognize a comma token; the evaluator still handles an arbitrary
// number of elements.
type ArrayLit struct {
	Token    lexer.Token
	Elements []Expression
}

func (e *ArrayLit) expressionNode()      {}
func (e *ArrayLit) TokenLiteral() string { return e.Token.Literal }
func (e *ArrayLit) Pos() lexer.Position  { return e.Token.Pos }
func (e *ArrayLit) String() string {
	parts := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Index reads an element out of an array by position.
type Index struct {
	Token  lexer.Token
	Target Expression
	Idx    Expression
}

func (e *Index) expressionNode()      {}
func (e *Index) TokenLiteral() string { return e.Token.Literal }
func (e *Index) Pos() lexer.Position  { return e.Token.Pos }
func (e *Index) String() string {
	return fmt.Sprintf("%s[%s]", e.Target.String(), e.Idx.String())
}

// IndexAssign assigns Value to Target[Idx]. No grammar rule of
// internal/parser ever constructs this node (there is no `=` production
// outside `let`); it exists so the evaluator's value model is complete
// per the language's latent assignment semantics.
type IndexAssign struct {
	Token  lexer.Token
	Target Expression
	Idx    Expression
	Value  Expression
}

func (e *IndexAssign) expressionNode()      {}
func (e *IndexAssign) TokenLiteral() string { return e.Token.Literal }
func (e *IndexAssign) Pos() lexer.Position  { return e.Token.Pos }
func (e *IndexAssign) String() string {
	return fmt.Sprintf("%s[%s] = %s", e.Target.String(), e.Idx.String(), e.Value.String())
}

// BinOp is an arithmetic operator: Plus, Minus, Mul, or Div.
type BinOp struct {
	Token lexer.Token
	Op    BinOpKind
	Left  Expression
	Right Expression
}

// BinOpKind enumerates the arithmetic operators.
type BinOpKind int

const (
	OpPlus BinOpKind = iota
	OpMinus
	OpMul
	OpDiv
)

var binOpSymbols = map[BinOpKind]string{
	OpPlus:  "+",
	OpMinus: "-",
	OpMul:   "*",
	OpDiv:   "/",
}

func (e *BinOp) expressionNode()      {}
func (e *BinOp) TokenLiteral() string { return e.Token.Literal }
func (e *BinOp) Pos() lexer.Position  { return e.Token.Pos }
func (e *BinOp) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), binOpSymbols[e.Op], e.Right.String())
}

// CmpOp is a comparison operator.
type CmpOp struct {
	Token lexer.Token
	Op    CmpOpKind
	Left  Expression
	Right Expression
}

// CmpOpKind enumerates the comparison operators.
type CmpOpKind int

const (
	OpEq CmpOpKind = iota
	OpNe
	OpLt
	OpGt
	OpLe
	OpGe
)

var cmpOpSymbols = map[CmpOpKind]string{
	OpEq: "==",
	OpNe: "!=",
	OpLt: "<",
	OpGt: ">",
	OpLe: "<=",
	OpGe: ">=",
}

func (e *CmpOp) expressionNode()      {}
func (e *CmpOp) TokenLiteral() string { return e.Token.Literal }
func (e *CmpOp) Pos() lexer.Position  { return e.Token.Pos }
func (e *CmpOp) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), cmpOpSymbols[e.Op], e.Right.String())
}
