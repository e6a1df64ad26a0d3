// Package parser turns the token stream internal/lexer produces into
// the pkg/ast tree internal/validator and internal/interp consume. It
// is a conventional hand-written recursive-descent/precedence-climbing
// parser, following the shape of the teacher's internal/parser package
// (a Parser struct holding cur/peek tokens, parseXxx methods per
// grammar rule, errors carrying source position), adapted from
// DWScript's Pascal-like grammar to the small indentation-sensitive
// expression grammar §4 of the specification accepts.
package parser

import (
	"fmt"

	"github.com/pesci-lang/pesci/internal/lexer"
	"github.com/pesci-lang/pesci/pkg/ast"
)

// Parser consumes a token stream and builds a *ast.Module.
type Parser struct {
	lex *lexer.Lexer

	cur  lexer.Token
	peek lexer.Token
}

// New constructs a Parser positioned before the first token of src.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lex.Next()
}

func pos(t lexer.Token) ast.Pos { return ast.Pos{Line: t.Line, Column: t.Column} }

// ParseError is returned by ParseModule on a syntax error; it carries
// the source position so callers can render it with the caret-pointer
// format internal/errors uses for every other error kind.
type ParseError struct {
	P   ast.Pos
	Msg string
}

func (e *ParseError) Error() string { return fmt.Sprintf("%d:%d: %s", e.P.Line, e.P.Column, e.Msg) }

func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{P: pos(p.cur), Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) expect(t lexer.TokenType) (lexer.Token, error) {
	if p.cur.Type != t {
		return lexer.Token{}, p.errorf("expected %v, got %v", t, p.cur.Type)
	}
	tok := p.cur
	p.next()
	return tok, nil
}

// skipNewlines consumes any run of blank NEWLINE tokens, used between
// top-level/suite statements where blank lines are insignificant.
func (p *Parser) skipNewlines() {
	for p.cur.Type == lexer.NEWLINE {
		p.next()
	}
}

// ParseModule parses src as a complete program.
func ParseModule(src string) (*ast.Module, error) {
	p := New(src)
	return p.parseModule()
}

func (p *Parser) parseModule() (*ast.Module, error) {
	start := pos(p.cur)
	var body []ast.Stmt
	p.skipNewlines()
	for p.cur.Type != lexer.EOF {
		stmts, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmts...)
		p.skipNewlines()
	}
	m := &ast.Module{Body: body}
	m.SetPos(start)
	return m, nil
}
