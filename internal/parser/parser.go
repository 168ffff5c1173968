// Package parser implements the recursive-descent parser from tokens to
// the AST defined in internal/ast.
package parser

import (
	"fmt"

	"github.com/tw-lang/turnways/internal/ast"
	"github.com/tw-lang/turnways/internal/lexer"
)

// SyntaxError reports a parser expectation mismatch at a source position.
type SyntaxError struct {
	Pos     lexer.Position
	Message string
}

func (e *SyntaxError) Error() string { return e.Message }

// Position satisfies internal/errtext.Positioned.
func (e *SyntaxError) Position() lexer.Position { return e.Pos }

// Parser consumes a token stream and builds an AST, failing on the
// first expectation mismatch rather than accumulating errors — a
// syntax error aborts the whole parse, matching the single-pass
// try/except around lex+parse+eval in the language's reference
// implementation.
type Parser struct {
	l *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token
}

// New creates a Parser over l and primes the two-token lookahead.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) expect(t lexer.TokenType, what string) error {
	if p.curToken.Type != t {
		return &SyntaxError{
			Pos:     p.curToken.Pos,
			Message: fmt.Sprintf("Expected %s, got %s", what, p.curToken.Type),
		}
	}
	p.nextToken()
	return nil
}

// ParseProgram parses the whole token stream into a Program, returning
// the first SyntaxError encountered, if any.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for p.curToken.Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.curToken.Type {
	case lexer.LET:
		return p.parseLet()
	case lexer.PRINT:
		return p.parsePrint()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.BREAK:
		return p.parseBreak()
	case lexer.CONTINUE:
		return p.parseContinue()
	case lexer.PAGE:
		return p.parsePage()
	default:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{Expr: expr}, nil
	}
}

func (p *Parser) parseLet() (ast.Statement, error) {
	tok := p.curToken
	p.nextToken() // consume 'let'

	if p.curToken.Type != lexer.IDENTIFIER {
		return nil, &SyntaxError{Pos: p.curToken.Pos, Message: "Expected variable name after 'let'"}
	}
	name := p.curToken.Literal
	p.nextToken()

	if err := p.expect(lexer.EQUAL_ASSIGN, "'=' after variable name"); err != nil {
		return nil, err
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.SEMICOLON, "';' after variable declaration"); err != nil {
		return nil, err
	}

	return &ast.Let{Token: tok, Name: name, Expr: expr}, nil
}

func (p *Parser) parsePrint() (ast.Statement, error) {
	tok := p.curToken
	p.nextToken() // consume 'print'

	if err := p.expect(lexer.LPAREN, "'(' after 'print'"); err != nil {
		return nil, err
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.RPAREN, "')' after print argument"); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.SEMICOLON, "';' after print statement"); err != nil {
		return nil, err
	}

	return &ast.Print{Token: tok, Expr: expr}, nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	tok := p.curToken
	p.nextToken() // consume 'if'

	if err := p.expect(lexer.LPAREN, "'(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RPAREN, "')' after condition"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock("if")
	if err != nil {
		return nil, err
	}
	return &ast.If{Token: tok, Cond: cond, Body: body}, nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	tok := p.curToken
	p.nextToken() // consume 'while'

	if err := p.expect(lexer.LPAREN, "'(' after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RPAREN, "')' after condition"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock("while")
	if err != nil {
		return nil, err
	}
	return &ast.While{Token: tok, Cond: cond, Body: body}, nil
}

func (p *Parser) parseBlock(kind string) ([]ast.Statement, error) {
	if err := p.expect(lexer.LBRACE, fmt.Sprintf("'{' to start %s block", kind)); err != nil {
		return nil, err
	}
	var body []ast.Statement
	for p.curToken.Type != lexer.RBRACE && p.curToken.Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	if err := p.expect(lexer.RBRACE, fmt.Sprintf("'}' to end %s block", kind)); err != nil {
		return nil, err
	}
	return body, nil
}

func (p *Parser) parseBreak() (ast.Statement, error) {
	tok := p.curToken
	p.nextToken()
	if err := p.expect(lexer.SEMICOLON, "';' after 'break'"); err != nil {
		return nil, err
	}
	return &ast.Break{Token: tok}, nil
}

func (p *Parser) parseContinue() (ast.Statement, error) {
	tok := p.curToken
	p.nextToken()
	if err := p.expect(lexer.SEMICOLON, "';' after 'continue'"); err != nil {
		return nil, err
	}
	return &ast.Continue{Token: tok}, nil
}

func (p *Parser) parsePage() (ast.Statement, error) {
	tok := p.curToken
	p.nextToken()
	if err := p.expect(lexer.SEMICOLON, "';' after 'page'"); err != nil {
		return nil, err
	}
	return &ast.Page{Token: tok}, nil
}

// parseExpression implements `expression := comparison indexing*`.
// Indexing is applied once, after the whole comparison has parsed —
// binding looser than comparison, which is unusual but frozen behavior
// (see DESIGN.md).
func (p *Parser) parseExpression() (ast.Expression, error) {
	node, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	return p.parseIndexing(node)
}

func (p *Parser) parseIndexing(node ast.Expression) (ast.Expression, error) {
	for p.curToken.Type == lexer.LBRACKET {
		tok := p.curToken
		p.nextToken() // consume '['
		idx, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RBRACKET, "']' after array index"); err != nil {
			return nil, err
		}
		node = &ast.Index{Token: tok, Target: node, Idx: idx}
	}
	return node, nil
}

var cmpKinds = map[lexer.TokenType]ast.CmpOpKind{
	lexer.EQUALS:         ast.OpEq,
	lexer.NOT_EQUALS:     ast.OpNe,
	lexer.LESS:           ast.OpLt,
	lexer.GREATER:        ast.OpGt,
	lexer.LESS_EQUALS:    ast.OpLe,
	lexer.GREATER_EQUALS: ast.OpGe,
}

// parseComparison implements `comparison := term (CMP term)?`. At most
// one comparison operator may appear: comparisons do not associate.
func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	kind, ok := cmpKinds[p.curToken.Type]
	if !ok {
		return left, nil
	}
	tok := p.curToken
	p.nextToken()
	right, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return &ast.CmpOp{Token: tok, Op: kind, Left: left, Right: right}, nil
}

// parseTerm implements `term := factor ((+|-) factor)*`, left-associative.
func (p *Parser) parseTerm() (ast.Expression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type == lexer.PLUS || p.curToken.Type == lexer.MINUS {
		tok := p.curToken
		op := ast.OpPlus
		if tok.Type == lexer.MINUS {
			op = ast.OpMinus
		}
		p.nextToken()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Token: tok, Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseFactor implements the grammar's factor rule. MUL and DIV tokens
// exist in internal/lexer but no rule here accepts them: `*`/`/` cannot
// appear in a well-formed program. This is a frozen, observed property
// of the language, not an oversight — see DESIGN.md.
func (p *Parser) parseFactor() (ast.Expression, error) {
	tok := p.curToken
	switch tok.Type {
	case lexer.NUMBER:
		p.nextToken()
		return &ast.Number{Token: tok, Value: tok.Number}, nil
	case lexer.STRING:
		p.nextToken()
		return &ast.String{Token: tok, Value: tok.Literal}, nil
	case lexer.TRUE:
		p.nextToken()
		return &ast.Bool{Token: tok, Value: true}, nil
	case lexer.FALSE:
		p.nextToken()
		return &ast.Bool{Token: tok, Value: false}, nil
	case lexer.IDENTIFIER:
		p.nextToken()
		return &ast.Var{Token: tok, Name: tok.Literal}, nil
	case lexer.LBRACKET:
		return p.parseArrayLit(tok)
	case lexer.LPAREN:
		p.nextToken()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return expr, nil
	}
	return nil, &SyntaxError{Pos: tok.Pos, Message: fmt.Sprintf("Unexpected token: %s", tok.Type)}
}

// parseArrayLit implements `exprList := ε | expression (',' expression)*`.
// internal/lexer has no COMMA token type (it is absent from the
// language's closed token set), so the `(',' expression)*` repetition
// could never match and is not implemented: at most one element is
// parsed, and anything other than `]` after it is a syntax error. Array
// literals of more than one element are therefore unreachable.
// See DESIGN.md.
func (p *Parser) parseArrayLit(tok lexer.Token) (ast.Expression, error) {
	p.nextToken() // consume '['
	var elements []ast.Expression
	if p.curToken.Type != lexer.RBRACKET {
		el, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	if err := p.expect(lexer.RBRACKET, "']' to close array literal"); err != nil {
		return nil, err
	}
	return &ast.ArrayLit{Token: tok, Elements: elements}, nil
}
