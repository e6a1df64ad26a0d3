package parser

import (
	"github.com/pesci-lang/pesci/internal/lexer"
	"github.com/pesci-lang/pesci/pkg/ast"
)

// parseStatement parses one logical-line statement or compound
// statement, returning one or more ast.Stmt (a simple_stmt line may
// hold several `;`-separated statements).
func (p *Parser) parseStatement() ([]ast.Stmt, error) {
	switch p.cur.Type {
	case lexer.IF:
		s, err := p.parseIf()
		return []ast.Stmt{s}, err
	case lexer.WHILE:
		s, err := p.parseWhile()
		return []ast.Stmt{s}, err
	case lexer.FOR:
		s, err := p.parseFor()
		return []ast.Stmt{s}, err
	case lexer.DEF:
		s, err := p.parseFunctionDef()
		return []ast.Stmt{s}, err
	default:
		return p.parseSimpleStmtLine()
	}
}

// parseSimpleStmtLine parses a `;`-separated run of small statements
// ending in NEWLINE or EOF.
func (p *Parser) parseSimpleStmtLine() ([]ast.Stmt, error) {
	var out []ast.Stmt
	for {
		s, err := p.parseSmallStmt()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
		if p.cur.Type == lexer.SEMICOLON {
			p.next()
			if p.cur.Type == lexer.NEWLINE || p.cur.Type == lexer.EOF {
				break
			}
			continue
		}
		break
	}
	if p.cur.Type == lexer.NEWLINE {
		p.next()
	} else if p.cur.Type != lexer.EOF && p.cur.Type != lexer.DEDENT {
		return nil, p.errorf("unexpected token %v after statement", p.cur.Type)
	}
	return out, nil
}

func (p *Parser) parseSmallStmt() (ast.Stmt, error) {
	start := pos(p.cur)
	switch p.cur.Type {
	case lexer.PASS:
		p.next()
		s := &ast.Pass{}
		s.SetPos(start)
		return s, nil
	case lexer.BREAK:
		p.next()
		s := &ast.Break{}
		s.SetPos(start)
		return s, nil
	case lexer.CONTINUE:
		p.next()
		s := &ast.Continue{}
		s.SetPos(start)
		return s, nil
	case lexer.PRINT:
		return p.parsePrint(start)
	case lexer.RETURN:
		return p.parseReturn(start)
	case lexer.GLOBAL:
		return p.parseGlobal(start)
	default:
		return p.parseExprOrAssign(start)
	}
}

func (p *Parser) parsePrint(start ast.Pos) (ast.Stmt, error) {
	p.next()
	var vals []ast.Expr
	if p.atExprStart() {
		first, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		vals = append(vals, first)
		for p.cur.Type == lexer.COMMA {
			p.next()
			if !p.atExprStart() {
				break
			}
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			vals = append(vals, e)
		}
	}
	s := &ast.Print{Values: vals}
	s.SetPos(start)
	return s, nil
}

func (p *Parser) parseReturn(start ast.Pos) (ast.Stmt, error) {
	p.next()
	var val ast.Expr
	if p.atExprStart() {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		val = e
	}
	s := &ast.Return{Value: val}
	s.SetPos(start)
	return s, nil
}

func (p *Parser) parseGlobal(start ast.Pos) (ast.Stmt, error) {
	p.next()
	var names []string
	tok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	names = append(names, tok.Literal)
	for p.cur.Type == lexer.COMMA {
		p.next()
		tok, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		names = append(names, tok.Literal)
	}
	s := &ast.Global{Names: names}
	s.SetPos(start)
	return s, nil
}

var augOps = map[lexer.TokenType]ast.BinOpKind{
	lexer.PLUSEQ:    ast.Add,
	lexer.MINUSEQ:   ast.Sub,
	lexer.STAREQ:    ast.Mult,
	lexer.SLASHEQ:   ast.Div,
	lexer.DSLASHEQ:  ast.FloorDiv,
	lexer.PERCENTEQ: ast.Mod,
	lexer.DSTAREQ:   ast.Pow,
	lexer.LSHIFTEQ:  ast.LShift,
	lexer.RSHIFTEQ:  ast.RShift,
	lexer.PIPEEQ:    ast.BitOr,
	lexer.CARETEQ:   ast.BitXor,
	lexer.AMPEQ:     ast.BitAnd,
}

// parseExprOrAssign parses an ExprStmt, Assign or AugAssign: the
// common prefix is a testlist, disambiguated by what follows it.
func (p *Parser) parseExprOrAssign(start ast.Pos) (ast.Stmt, error) {
	lhs, err := p.parseTestList()
	if err != nil {
		return nil, err
	}
	if op, ok := augOps[p.cur.Type]; ok {
		name, ok := lhs.(*ast.Name)
		if !ok {
			return nil, p.errorf("augmented assignment target must be a name")
		}
		p.next()
		rhs, err := p.parseTestList()
		if err != nil {
			return nil, err
		}
		s := &ast.AugAssign{Target: name, Op: op, Value: rhs}
		s.SetPos(start)
		return s, nil
	}
	if p.cur.Type == lexer.ASSIGN {
		p.next()
		rhs, err := p.parseTestList()
		if err != nil {
			return nil, err
		}
		s := &ast.Assign{Target: lhs, Value: rhs}
		s.SetPos(start)
		return s, nil
	}
	s := &ast.ExprStmt{Value: lhs}
	s.SetPos(start)
	return s, nil
}

// parseTestList parses a comma-separated expression list, collapsing
// to a bare Expr when there's exactly one and no trailing comma, or an
// ast.Tuple otherwise (covers both expression and assignment-target
// positions, matching Python's own grammar reuse).
func (p *Parser) parseTestList() (ast.Expr, error) {
	start := pos(p.cur)
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.COMMA {
		return first, nil
	}
	elts := []ast.Expr{first}
	for p.cur.Type == lexer.COMMA {
		p.next()
		if !p.atExprStart() {
			break
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
	}
	t := &ast.Tuple{Elts: elts}
	t.SetPos(start)
	return t, nil
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	start := pos(p.cur)
	p.next()
	test, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	var orelse []ast.Stmt
	switch p.cur.Type {
	case lexer.ELIF:
		elif, err := p.parseIf()
		if err != nil {
			return nil, err
		}
		orelse = []ast.Stmt{elif}
	case lexer.ELSE:
		p.next()
		orelse, err = p.parseSuite()
		if err != nil {
			return nil, err
		}
	}
	s := &ast.If{Test: test, Body: body, Orelse: orelse}
	s.SetPos(start)
	return s, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	start := pos(p.cur)
	p.next()
	test, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	var orelse []ast.Stmt
	if p.cur.Type == lexer.ELSE {
		p.next()
		orelse, err = p.parseSuite()
		if err != nil {
			return nil, err
		}
	}
	s := &ast.While{Test: test, Body: body, Orelse: orelse}
	s.SetPos(start)
	return s, nil
}

func (p *Parser) parseFor() (ast.Stmt, error) {
	start := pos(p.cur)
	p.next()
	// The target is parsed below the comparison level so that `in` is
	// left for the loop header instead of being read as membership.
	tstart := pos(p.cur)
	var elts []ast.Expr
	for {
		e, err := p.parseBitOr()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
		if p.cur.Type != lexer.COMMA {
			break
		}
		p.next()
	}
	var target ast.Expr = elts[0]
	if len(elts) > 1 {
		t := &ast.Tuple{Elts: elts}
		t.SetPos(tstart)
		target = t
	}
	if _, err := p.expect(lexer.IN); err != nil {
		return nil, err
	}
	iter, err := p.parseTestList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	var orelse []ast.Stmt
	if p.cur.Type == lexer.ELSE {
		p.next()
		orelse, err = p.parseSuite()
		if err != nil {
			return nil, err
		}
	}
	s := &ast.For{Target: target, Iter: iter, Body: body, Orelse: orelse}
	s.SetPos(start)
	return s, nil
}

func (p *Parser) parseFunctionDef() (ast.Stmt, error) {
	start := pos(p.cur)
	p.next()
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	s := &ast.FunctionDef{Name: name.Literal, Args: args, Body: body}
	s.SetPos(start)
	return s, nil
}

// parseArguments parses a function definition's formal parameter
// list: plain names, names with `=default`, an optional `*args`, and
// an optional `**kwargs` (§3 Arguments, §4.4).
func (p *Parser) parseArguments() (ast.Arguments, error) {
	var out ast.Arguments
	for p.cur.Type != lexer.RPAREN {
		switch p.cur.Type {
		case lexer.STAR:
			p.next()
			name, err := p.expect(lexer.IDENT)
			if err != nil {
				return out, err
			}
			out.Vararg = name.Literal
		case lexer.DSTAR:
			p.next()
			name, err := p.expect(lexer.IDENT)
			if err != nil {
				return out, err
			}
			out.Kwarg = name.Literal
		default:
			name, err := p.expect(lexer.IDENT)
			if err != nil {
				return out, err
			}
			out.Args = append(out.Args, name.Literal)
			if p.cur.Type == lexer.ASSIGN {
				p.next()
				def, err := p.parseExpr()
				if err != nil {
					return out, err
				}
				out.Defaults = append(out.Defaults, def)
			} else if len(out.Defaults) > 0 {
				return out, p.errorf("non-default argument follows default argument")
			}
		}
		if p.cur.Type == lexer.COMMA {
			p.next()
			continue
		}
		break
	}
	return out, nil
}

// parseSuite parses a statement block: either `:` NEWLINE INDENT
// statement+ DEDENT, or an inline `:` simple_stmt on the same line.
func (p *Parser) parseSuite() ([]ast.Stmt, error) {
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.NEWLINE {
		return p.parseSimpleStmtLine()
	}
	p.next()
	p.skipNewlines()
	if _, err := p.expect(lexer.INDENT); err != nil {
		return nil, err
	}
	var body []ast.Stmt
	for p.cur.Type != lexer.DEDENT && p.cur.Type != lexer.EOF {
		stmts, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmts...)
		p.skipNewlines()
	}
	if _, err := p.expect(lexer.DEDENT); err != nil {
		return nil, err
	}
	return body, nil
}
