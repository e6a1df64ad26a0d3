package interp

import (
	perrors "github.com/pesci-lang/pesci/internal/errors"
	"github.com/pesci-lang/pesci/internal/value"
	"github.com/pesci-lang/pesci/pkg/ast"
)

// binOpFrame implements §4.3 Binary arithmetic: evaluate left, then the
// operator child (its leafFrame pushes an OpToken, making the operator
// fold one observable step exactly as the spec orders it), then right.
type binOpFrame struct {
	frameCommon
	node  *ast.BinOp
	phase int // 0: need left, 1: need op, 2: need right
	left  value.Value
	op    ast.BinOpKind
}

func (f *binOpFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	switch f.phase {
	case 0:
		if in == nil {
			return newFrame(f, f.node.Left), nil, nil
		}
		f.left = s.Env.Pop()
		f.phase = 1
		return newFrame(f, f.node.Op), nil, nil
	case 1:
		tok, ok := s.Env.Pop().(*value.OpToken)
		if !ok {
			return nil, nil, runtimeErr(f.node.Pos(), "malformed operator")
		}
		f.op = tok.Op
		f.phase = 2
		return newFrame(f, f.node.Right), nil, nil
	default:
		right := s.Env.Pop()
		result, err := value.BinOp(f.left, f.op, right)
		if err != nil {
			return nil, nil, runtimeErr(f.node.Pos(), "%v", err)
		}
		s.Env.Push(result)
		return f.parent, fin(), nil
	}
}

// boolOpFrame implements §4.3 Short-circuit logic: operands are
// evaluated left to right, stopping at the first truthy (or) / falsy
// (and) one, whose value — not its boolean coercion — is the result.
type boolOpFrame struct {
	frameCommon
	node *ast.BoolOp
	n    int
}

func (f *boolOpFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	if in != nil {
		v := s.Env.Pop()
		truthy := value.Truthy(v)
		last := f.n == len(f.node.Values)
		if last || (f.node.Op == ast.Or && truthy) || (f.node.Op == ast.And && !truthy) {
			s.Env.Push(v)
			return f.parent, fin(), nil
		}
	}
	next := newFrame(f, f.node.Values[f.n])
	f.n++
	return next, nil, nil
}

// unaryOpFrame implements §4.3 Unary (not, invert).
type unaryOpFrame struct {
	frameCommon
	node *ast.UnaryOp
}

func (f *unaryOpFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	if in == nil {
		return newFrame(f, f.node.Operand), nil, nil
	}
	v := s.Env.Pop()
	switch f.node.Op {
	case ast.Not:
		s.Env.Push(value.NewBool(!value.Truthy(v)))
		return f.parent, fin(), nil
	case ast.Invert:
		r, err := value.Invert(v)
		if err != nil {
			return nil, nil, runtimeErr(f.node.Pos(), "%v", err)
		}
		s.Env.Push(r)
		return f.parent, fin(), nil
	default:
		return nil, nil, runtimeErr(f.node.Pos(), "unsupported unary operator")
	}
}

// compareFrame implements §4.3 Chained comparison: "evaluate all
// comparators (right sides), then evaluate left" — deliberately
// preserving that order rather than the more natural left-to-right one
// (§9 Design Notes / Open Questions: this is kept exactly as the
// original source's observable step order, not assumed to be a bug).
type compareFrame struct {
	frameCommon
	node        *ast.Compare
	n           int
	comparators []value.Value
	haveLeft    bool
}

func (f *compareFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	if !f.haveLeft {
		if in != nil {
			f.comparators = append(f.comparators, s.Env.Pop())
		}
		if f.n < len(f.node.Comparators) {
			next := newFrame(f, f.node.Comparators[f.n])
			f.n++
			return next, nil, nil
		}
		f.haveLeft = true
		return newFrame(f, f.node.Left), nil, nil
	}
	left := s.Env.Pop()
	operands := append([]value.Value{left}, f.comparators...)
	for i, op := range f.node.Ops {
		ok, err := applyCmp(operands[i], op, operands[i+1])
		if err != nil {
			return nil, nil, runtimeErr(f.node.Pos(), "%v", err)
		}
		if !ok {
			s.Env.Push(value.False)
			return f.parent, fin(), nil
		}
	}
	s.Env.Push(value.True)
	return f.parent, fin(), nil
}

func applyCmp(l value.Value, op ast.CmpOpKind, r value.Value) (bool, error) {
	switch op {
	case ast.Eq:
		return value.Equals(l, r)
	case ast.NotEq:
		eq, err := value.Equals(l, r)
		return !eq, err
	case ast.Lt:
		return value.Less(l, r)
	case ast.LtE:
		lt, err := value.Less(l, r)
		if err != nil || lt {
			return lt, err
		}
		return value.Equals(l, r)
	case ast.Gt:
		return value.Less(r, l)
	case ast.GtE:
		gt, err := value.Less(r, l)
		if err != nil || gt {
			return gt, err
		}
		return value.Equals(l, r)
	case ast.Is:
		return value.Is(l, r), nil
	case ast.IsNot:
		return !value.Is(l, r), nil
	case ast.In:
		return value.Contains(r, l)
	case ast.NotIn:
		ok, err := value.Contains(r, l)
		return !ok, err
	default:
		return false, nil
	}
}

// dictFrame implements §4.3 Dict: "Evaluate children in source order
// (for Dict: values first, then keys, then zip them into a mapping)".
type dictFrame struct {
	frameCommon
	node      *ast.Dict
	n         int
	values    []value.Value
	keys      []value.Value
	doneValue bool
}

func (f *dictFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	if !f.doneValue {
		if in != nil {
			f.values = append(f.values, s.Env.Pop())
		}
		if f.n < len(f.node.Values) {
			next := newFrame(f, f.node.Values[f.n])
			f.n++
			return next, nil, nil
		}
		f.doneValue = true
		f.n = 0
		in = nil
	} else if in != nil {
		f.keys = append(f.keys, s.Env.Pop())
	}
	if f.n < len(f.node.Keys) {
		next := newFrame(f, f.node.Keys[f.n])
		f.n++
		return next, nil, nil
	}
	d := value.NewDict()
	for i := range f.keys {
		if err := d.Set(f.keys[i], f.values[i]); err != nil {
			return nil, nil, runtimeErr(f.node.Pos(), "%v", err)
		}
	}
	s.Env.Push(d)
	return f.parent, fin(), nil
}

// tupleFrame / listFrame implement §4.3 Tuple / List literal
// construction: evaluate elements in source order.
type tupleFrame struct {
	frameCommon
	node *ast.Tuple
	n    int
	vals []value.Value
}

func (f *tupleFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	if in != nil {
		f.vals = append(f.vals, s.Env.Pop())
	}
	if f.n < len(f.node.Elts) {
		next := newFrame(f, f.node.Elts[f.n])
		f.n++
		return next, nil, nil
	}
	s.Env.Push(value.NewTuple(f.vals))
	return f.parent, fin(), nil
}

type listFrame struct {
	frameCommon
	node *ast.List
	n    int
	vals []value.Value
}

func (f *listFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	if in != nil {
		f.vals = append(f.vals, s.Env.Pop())
	}
	if f.n < len(f.node.Elts) {
		next := newFrame(f, f.node.Elts[f.n])
		f.n++
		return next, nil, nil
	}
	s.Env.Push(value.NewList(f.vals))
	return f.parent, fin(), nil
}

// attributeFrame implements §4.3 Attribute access.
type attributeFrame struct {
	frameCommon
	node *ast.Attribute
}

func (f *attributeFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	if in == nil {
		return newFrame(f, f.node.Value), nil, nil
	}
	base := s.Env.Pop()
	if len(f.node.Attr) > 0 && f.node.Attr[0] == '_' {
		return nil, nil, invalidAttr(f.node.Pos(), f.node.Attr)
	}
	v, err := value.GetAttr(base, f.node.Attr)
	if err != nil {
		return nil, nil, runtimeErr(f.node.Pos(), "%v", err)
	}
	s.Env.Push(v)
	return f.parent, fin(), nil
}

// subscriptFrame / indexFrame / sliceFrame implement §4.3 Subscript /
// Slice.
type subscriptFrame struct {
	frameCommon
	node     *ast.Subscript
	haveBase bool
	base     value.Value
}

func (f *subscriptFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	if !f.haveBase {
		if in == nil {
			return newFrame(f, f.node.Value), nil, nil
		}
		f.base = s.Env.Pop()
		f.haveBase = true
		return newFrame(f, f.node.Slice), nil, nil
	}
	result, err := applySubscript(f.base, s.Env.Pop())
	if err != nil {
		return nil, nil, runtimeErr(f.node.Pos(), "%v", err)
	}
	s.Env.Push(result)
	return f.parent, fin(), nil
}

// indexFrame evaluates a plain (non-slice) subscript key; the child
// leaves its value on the evaluation stack and indexFrame simply
// completes, so the parent subscriptFrame pops the key directly.
type indexFrame struct {
	frameCommon
	node *ast.Index
}

func (f *indexFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	if in == nil {
		return newFrame(f, f.node.Value), nil, nil
	}
	return f.parent, fin(), nil
}

type sliceFrame struct {
	frameCommon
	node                  *ast.Slice
	phase                 int
	lower, upper, stepVal value.Value
}

func (f *sliceFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	parts := []ast.Expr{f.node.Lower, f.node.Upper, f.node.Step}
	for f.phase < 3 {
		if parts[f.phase] == nil {
			f.phase++
			continue
		}
		if in == nil {
			return newFrame(f, parts[f.phase]), nil, nil
		}
		switch f.phase {
		case 0:
			f.lower = s.Env.Pop()
		case 1:
			f.upper = s.Env.Pop()
		case 2:
			f.stepVal = s.Env.Pop()
		}
		f.phase++
		in = nil
		if f.phase < 3 && parts[f.phase] != nil {
			return newFrame(f, parts[f.phase]), nil, nil
		}
	}
	s.Env.Push(&value.Slice{Lower: f.lower, Upper: f.upper, Step: f.stepVal})
	return f.parent, fin(), nil
}

func invalidAttr(pos ast.Pos, name string) error {
	return perrors.New(perrors.ErrInvalidAttribute, pos, "attribute name %q begins with underscore", name)
}
