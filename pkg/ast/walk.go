package ast

// Children returns the direct child nodes of n in evaluation order.
// internal/validator walks the whole tree through this method to
// reject node kinds outside the accepted subset (original_source/pesci's
// validator.py uses ast.iter_child_nodes for the same purpose); the
// debug-mode AST dump (internal/debug) uses it to print one node per
// line, indented by tree depth.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Module:
		return stmts(n.Body)
	case *ExprStmt:
		return []Node{n.Value}
	case *Assign:
		return []Node{n.Target, n.Value}
	case *AugAssign:
		return []Node{n.Target, n.Value}
	case *Print:
		return exprs(n.Values)
	case *If:
		out := []Node{n.Test}
		out = append(out, stmts(n.Body)...)
		out = append(out, stmts(n.Orelse)...)
		return out
	case *While:
		out := []Node{n.Test}
		out = append(out, stmts(n.Body)...)
		out = append(out, stmts(n.Orelse)...)
		return out
	case *For:
		out := []Node{n.Target, n.Iter}
		out = append(out, stmts(n.Body)...)
		out = append(out, stmts(n.Orelse)...)
		return out
	case *FunctionDef:
		out := exprs(n.Args.Defaults)
		out = append(out, stmts(n.Body)...)
		return out
	case *Return:
		if n.Value == nil {
			return nil
		}
		return []Node{n.Value}
	case *BinOp:
		return []Node{n.Left, n.Op, n.Right}
	case *BoolOp:
		return exprs(n.Values)
	case *UnaryOp:
		return []Node{n.Operand}
	case *Compare:
		out := []Node{n.Left}
		out = append(out, exprs(n.Comparators)...)
		return out
	case *Call:
		out := []Node{n.Func}
		out = append(out, exprs(n.Args)...)
		for _, kw := range n.Keywords {
			out = append(out, kw.Value)
		}
		if n.Star != nil {
			out = append(out, n.Star)
		}
		if n.Kstar != nil {
			out = append(out, n.Kstar)
		}
		return out
	case *Dict:
		out := exprs(n.Values)
		out = append(out, exprs(n.Keys)...)
		return out
	case *Tuple:
		return exprs(n.Elts)
	case *List:
		return exprs(n.Elts)
	case *Attribute:
		return []Node{n.Value}
	case *Subscript:
		return []Node{n.Value, n.Slice}
	case *Index:
		return []Node{n.Value}
	case *Slice:
		var out []Node
		if n.Lower != nil {
			out = append(out, n.Lower)
		}
		if n.Upper != nil {
			out = append(out, n.Upper)
		}
		if n.Step != nil {
			out = append(out, n.Step)
		}
		return out
	case *ListComp:
		return []Node{n.Elt}
	case *DictComp:
		return []Node{n.Key, n.Value}
	case *IfExp:
		return []Node{n.Test, n.Body, n.Orelse}
	default:
		return nil
	}
}

func stmts(ss []Stmt) []Node {
	out := make([]Node, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func exprs(es []Expr) []Node {
	out := make([]Node, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}
