package parser

import (
	"strconv"

	"github.com/pesci-lang/pesci/internal/lexer"
	"github.com/pesci-lang/pesci/pkg/ast"
)

// atExprStart reports whether the current token can begin an
// expression, used to detect the absence of an optional trailing
// expression (bare `return`, bare `print`, a trailing comma in a
// call/list).
func (p *Parser) atExprStart() bool {
	switch p.cur.Type {
	case lexer.NEWLINE, lexer.EOF, lexer.DEDENT, lexer.COLON, lexer.RPAREN,
		lexer.RBRACKET, lexer.RBRACE, lexer.SEMICOLON, lexer.COMMA:
		return false
	default:
		return true
	}
}

// parseExpr parses a full expression, including `or`/`and` chains
// (equivalent to Python's `test` grammar rule minus conditional
// expressions and lambdas, which are outside the accepted subset).
func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseOrTest()
}

func (p *Parser) parseOrTest() (ast.Expr, error) {
	start := pos(p.cur)
	left, err := p.parseAndTest()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.OR {
		return left, nil
	}
	values := []ast.Expr{left}
	for p.cur.Type == lexer.OR {
		p.next()
		v, err := p.parseAndTest()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	e := &ast.BoolOp{Op: ast.Or, Values: values}
	e.SetPos(start)
	return e, nil
}

func (p *Parser) parseAndTest() (ast.Expr, error) {
	start := pos(p.cur)
	left, err := p.parseNotTest()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.AND {
		return left, nil
	}
	values := []ast.Expr{left}
	for p.cur.Type == lexer.AND {
		p.next()
		v, err := p.parseNotTest()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	e := &ast.BoolOp{Op: ast.And, Values: values}
	e.SetPos(start)
	return e, nil
}

func (p *Parser) parseNotTest() (ast.Expr, error) {
	if p.cur.Type == lexer.NOT {
		start := pos(p.cur)
		p.next()
		operand, err := p.parseNotTest()
		if err != nil {
			return nil, err
		}
		e := &ast.UnaryOp{Op: ast.Not, Operand: operand}
		e.SetPos(start)
		return e, nil
	}
	return p.parseComparison()
}

var cmpOps = map[lexer.TokenType]ast.CmpOpKind{
	lexer.EQ:    ast.Eq,
	lexer.NOTEQ: ast.NotEq,
	lexer.LT:    ast.Lt,
	lexer.LTE:   ast.LtE,
	lexer.GT:    ast.Gt,
	lexer.GTE:   ast.GtE,
}

func (p *Parser) parseComparison() (ast.Expr, error) {
	start := pos(p.cur)
	left, err := p.parseBitOr()
	if err != nil {
		return nil, err
	}
	var ops []ast.CmpOpKind
	var comparators []ast.Expr
	for {
		op, ok, err := p.tryCompOp()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		rhs, err := p.parseBitOr()
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
		comparators = append(comparators, rhs)
	}
	if len(ops) == 0 {
		return left, nil
	}
	e := &ast.Compare{Left: left, Ops: ops, Comparators: comparators}
	e.SetPos(start)
	return e, nil
}

func (p *Parser) tryCompOp() (ast.CmpOpKind, bool, error) {
	if op, ok := cmpOps[p.cur.Type]; ok {
		p.next()
		return op, true, nil
	}
	switch p.cur.Type {
	case lexer.IN:
		p.next()
		return ast.In, true, nil
	case lexer.IS:
		p.next()
		if p.cur.Type == lexer.NOT {
			p.next()
			return ast.IsNot, true, nil
		}
		return ast.Is, true, nil
	case lexer.NOT:
		if p.peek.Type == lexer.IN {
			p.next()
			p.next()
			return ast.NotIn, true, nil
		}
	}
	return 0, false, nil
}

func (p *Parser) parseBitOr() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseBitXor, map[lexer.TokenType]ast.BinOpKind{lexer.PIPE: ast.BitOr})
}

func (p *Parser) parseBitXor() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseBitAnd, map[lexer.TokenType]ast.BinOpKind{lexer.CARET: ast.BitXor})
}

func (p *Parser) parseBitAnd() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseShift, map[lexer.TokenType]ast.BinOpKind{lexer.AMP: ast.BitAnd})
}

func (p *Parser) parseShift() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseArith, map[lexer.TokenType]ast.BinOpKind{
		lexer.LSHIFT: ast.LShift, lexer.RSHIFT: ast.RShift,
	})
}

func (p *Parser) parseArith() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseTerm, map[lexer.TokenType]ast.BinOpKind{
		lexer.PLUS: ast.Add, lexer.MINUS: ast.Sub,
	})
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseFactor, map[lexer.TokenType]ast.BinOpKind{
		lexer.STAR: ast.Mult, lexer.SLASH: ast.Div, lexer.DSLASH: ast.FloorDiv, lexer.PERCENT: ast.Mod,
	})
}

// parseBinaryLevel is the shared left-associative precedence-climbing
// step: parse one operand via next, then fold in `(op operand)*` for
// any operator in ops, each producing a BinOp whose Op child is itself
// a positioned ast.Operator node (§4.3: the operator is folded before
// the right operand as an observable step).
func (p *Parser) parseBinaryLevel(next func() (ast.Expr, error), ops map[lexer.TokenType]ast.BinOpKind) (ast.Expr, error) {
	start := pos(p.cur)
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		kind, ok := ops[p.cur.Type]
		if !ok {
			return left, nil
		}
		opPos := pos(p.cur)
		p.next()
		right, err := next()
		if err != nil {
			return nil, err
		}
		opNode := &ast.Operator{Op: kind}
		opNode.SetPos(opPos)
		bin := &ast.BinOp{Left: left, Op: opNode, Right: right}
		bin.SetPos(start)
		left = bin
	}
}

// parseFactor handles the unary `~` prefix; unary +/- are outside the
// accepted subset (§4.3), so MINUS/PLUS never appear here.
func (p *Parser) parseFactor() (ast.Expr, error) {
	if p.cur.Type == lexer.TILDE {
		start := pos(p.cur)
		p.next()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		e := &ast.UnaryOp{Op: ast.Invert, Operand: operand}
		e.SetPos(start)
		return e, nil
	}
	return p.parsePower()
}

// parsePower implements right-associative `**`.
func (p *Parser) parsePower() (ast.Expr, error) {
	start := pos(p.cur)
	base, err := p.parseTrailers()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.DSTAR {
		return base, nil
	}
	opPos := pos(p.cur)
	p.next()
	right, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	opNode := &ast.Operator{Op: ast.Pow}
	opNode.SetPos(opPos)
	e := &ast.BinOp{Left: base, Op: opNode, Right: right}
	e.SetPos(start)
	return e, nil
}

// parseTrailers parses an atom followed by any run of `.attr`,
// `(args)`, `[slice]` trailers (§4.3 Attribute/Call/Subscript).
func (p *Parser) parseTrailers() (ast.Expr, error) {
	start := pos(p.cur)
	expr, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur.Type {
		case lexer.DOT:
			p.next()
			name, err := p.expect(lexer.IDENT)
			if err != nil {
				return nil, err
			}
			a := &ast.Attribute{Value: expr, Attr: name.Literal}
			a.SetPos(start)
			expr = a
		case lexer.LPAREN:
			p.next()
			call, err := p.parseCallTail(expr, start)
			if err != nil {
				return nil, err
			}
			expr = call
		case lexer.LBRACKET:
			p.next()
			sub, err := p.parseSubscriptTail(expr, start)
			if err != nil {
				return nil, err
			}
			expr = sub
		default:
			return expr, nil
		}
	}
}

// parseCallTail parses a call's argument list after the `(` has
// already been consumed (§4.4: positional, then keyword, then `*seq`,
// then `**mapping`).
func (p *Parser) parseCallTail(fn ast.Expr, start ast.Pos) (ast.Expr, error) {
	call := &ast.Call{Func: fn}
	for p.cur.Type != lexer.RPAREN {
		switch p.cur.Type {
		case lexer.STAR:
			p.next()
			name, err := p.expect(lexer.IDENT)
			if err != nil {
				return nil, err
			}
			n := &ast.Name{Id: name.Literal}
			n.SetPos(pos(name))
			call.Star = n
		case lexer.DSTAR:
			p.next()
			name, err := p.expect(lexer.IDENT)
			if err != nil {
				return nil, err
			}
			n := &ast.Name{Id: name.Literal}
			n.SetPos(pos(name))
			call.Kstar = n
		default:
			if p.cur.Type == lexer.IDENT && p.peek.Type == lexer.ASSIGN {
				name := p.cur
				p.next()
				p.next()
				val, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				call.Keywords = append(call.Keywords, ast.Keyword{Arg: name.Literal, Value: val})
			} else {
				arg, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				call.Args = append(call.Args, arg)
			}
		}
		if p.cur.Type == lexer.COMMA {
			p.next()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	call.SetPos(start)
	return call, nil
}

// parseSubscriptTail parses `[index]` or `[lower:upper:step]` after
// the `[` has already been consumed (§4.3 Subscript/Slice).
func (p *Parser) parseSubscriptTail(value ast.Expr, start ast.Pos) (ast.Expr, error) {
	var lower, upper, step ast.Expr
	isSlice := false

	if p.cur.Type != lexer.COLON {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		lower = e
	}
	if p.cur.Type == lexer.COLON {
		isSlice = true
		p.next()
		if p.cur.Type != lexer.COLON && p.cur.Type != lexer.RBRACKET {
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			upper = e
		}
		if p.cur.Type == lexer.COLON {
			p.next()
			if p.cur.Type != lexer.RBRACKET {
				e, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				step = e
			}
		}
	}
	if _, err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}

	var sliceExpr ast.Expr
	if isSlice {
		s := &ast.Slice{Lower: lower, Upper: upper, Step: step}
		s.SetPos(start)
		sliceExpr = s
	} else {
		idx := &ast.Index{Value: lower}
		idx.SetPos(start)
		sliceExpr = idx
	}
	sub := &ast.Subscript{Value: value, Slice: sliceExpr}
	sub.SetPos(start)
	return sub, nil
}

// parseAtom parses the grammar's terminal expressions: literals,
// names, parenthesized/bracketed/braced groupings.
func (p *Parser) parseAtom() (ast.Expr, error) {
	start := pos(p.cur)
	switch p.cur.Type {
	case lexer.INT:
		tok := p.cur
		p.next()
		n := &ast.Num{IsFloat: false, Int: tok.Literal}
		n.SetPos(start)
		return n, nil
	case lexer.FLOAT:
		tok := p.cur
		p.next()
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, p.errorf("invalid float literal %q", tok.Literal)
		}
		n := &ast.Num{IsFloat: true, Float: f}
		n.SetPos(start)
		return n, nil
	case lexer.STRING:
		tok := p.cur
		p.next()
		s := &ast.Str{Value: tok.Literal}
		s.SetPos(start)
		return s, nil
	case lexer.TRUE:
		p.next()
		n := &ast.NameConstant{Value: "True"}
		n.SetPos(start)
		return n, nil
	case lexer.FALSE:
		p.next()
		n := &ast.NameConstant{Value: "False"}
		n.SetPos(start)
		return n, nil
	case lexer.NONE:
		p.next()
		n := &ast.NameConstant{Value: "None"}
		n.SetPos(start)
		return n, nil
	case lexer.IDENT:
		tok := p.cur
		p.next()
		n := &ast.Name{Id: tok.Literal}
		n.SetPos(start)
		return n, nil
	case lexer.LPAREN:
		p.next()
		return p.parseParenForm(start)
	case lexer.LBRACKET:
		p.next()
		return p.parseListForm(start)
	case lexer.LBRACE:
		p.next()
		return p.parseDictForm(start)
	default:
		return nil, p.errorf("unexpected token %v", p.cur.Type)
	}
}

// parseParenForm parses `(expr)` or a parenthesized tuple, after `(`
// has been consumed.
func (p *Parser) parseParenForm(start ast.Pos) (ast.Expr, error) {
	if p.cur.Type == lexer.RPAREN {
		p.next()
		t := &ast.Tuple{}
		t.SetPos(start)
		return t, nil
	}
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.COMMA {
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return first, nil
	}
	elts := []ast.Expr{first}
	for p.cur.Type == lexer.COMMA {
		p.next()
		if p.cur.Type == lexer.RPAREN {
			break
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	t := &ast.Tuple{Elts: elts}
	t.SetPos(start)
	return t, nil
}

// parseListForm parses `[elt, ...]`, after `[` has been consumed.
func (p *Parser) parseListForm(start ast.Pos) (ast.Expr, error) {
	var elts []ast.Expr
	for p.cur.Type != lexer.RBRACKET {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
		if p.cur.Type == lexer.COMMA {
			p.next()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	l := &ast.List{Elts: elts}
	l.SetPos(start)
	return l, nil
}

// parseDictForm parses `{key: value, ...}`, after `{` has been
// consumed.
func (p *Parser) parseDictForm(start ast.Pos) (ast.Expr, error) {
	var keys, values []ast.Expr
	for p.cur.Type != lexer.RBRACE {
		k, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
		values = append(values, v)
		if p.cur.Type == lexer.COMMA {
			p.next()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	d := &ast.Dict{Keys: keys, Values: values}
	d.SetPos(start)
	return d, nil
}
