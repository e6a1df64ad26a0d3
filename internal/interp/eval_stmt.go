package interp

import (
	"github.com/pesci-lang/pesci/internal/value"
	"github.com/pesci-lang/pesci/pkg/ast"
)

// Every statement frame completes by leaving exactly one value on the
// evaluation stack: None for statements with no natural result, the
// expression's value for a bare expression statement. That single
// residual is what §4.1's top-level loop pops after each statement —
// printed in interactive mode when non-null, discarded otherwise.

// exprStmtFrame evaluates a bare expression statement; the child's
// pushed value is left in place as the statement's residual, which the
// REPL uses to echo the result of a typed expression.
type exprStmtFrame struct {
	frameCommon
	node *ast.ExprStmt
}

func (f *exprStmtFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	if in == nil {
		return newFrame(f, f.node.Value), nil, nil
	}
	return f.parent, fin(), nil
}

// assignFrame implements §4.3 Assignment: evaluate the RHS once, then
// bind it to the (possibly destructuring) target.
type assignFrame struct {
	frameCommon
	node *ast.Assign
}

func (f *assignFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	if in == nil {
		return newFrame(f, f.node.Value), nil, nil
	}
	val := s.Env.Pop()
	if err := bindTarget(s.Env, f.node.Target, val); err != nil {
		return nil, nil, err
	}
	s.Env.Push(value.NoneValue)
	return f.parent, fin(), nil
}

// augAssignFrame implements §4.3 Augmented assignment.
type augAssignFrame struct {
	frameCommon
	node *ast.AugAssign
}

func (f *augAssignFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	if in == nil {
		return newFrame(f, f.node.Value), nil, nil
	}
	rhs := s.Env.Pop()
	cur, ok := s.Env.GetVar(f.node.Target.Id)
	if !ok {
		return nil, nil, runtimeErr(f.node.Pos(), "name %q is not defined", f.node.Target.Id)
	}
	result, err := value.BinOp(cur, f.node.Op, rhs)
	if err != nil {
		return nil, nil, runtimeErr(f.node.Pos(), "%v", err)
	}
	if err := s.Env.SetVar(f.node.Target.Id, result); err != nil {
		return nil, nil, err
	}
	s.Env.Push(value.NoneValue)
	return f.parent, fin(), nil
}

// printFrame implements §4.3 Print.
type printFrame struct {
	frameCommon
	node  *ast.Print
	n     int
	parts []string
}

func (f *printFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	if in != nil {
		f.parts = append(f.parts, s.Env.Pop().String())
	}
	if f.n < len(f.node.Values) {
		next := newFrame(f, f.node.Values[f.n])
		f.n++
		return next, nil, nil
	}
	if s.Print != nil {
		s.Print(joinPrintLine(f.parts) + "\n")
	}
	s.Env.Push(value.NoneValue)
	return f.parent, fin(), nil
}

// ifFrame implements §4.3 Conditional. The taken branch's stmtsFrame is
// parented directly to the if's own parent, so the branch's completion
// value becomes the if statement's residual.
type ifFrame struct {
	frameCommon
	node *ast.If
}

func (f *ifFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	if in == nil {
		return newFrame(f, f.node.Test), nil, nil
	}
	if value.Truthy(s.Env.Pop()) {
		return newFrame(f.parent, stmtList(f.node.Body)), nil, nil
	}
	return newFrame(f.parent, stmtList(f.node.Orelse)), nil, nil
}

// whileFrame implements §4.3 While, including the break/continue
// resolution of the Open Question recorded in DESIGN.md (the original
// spec left break/continue unimplemented; pesci implements them via
// the cBreak/cContinue completion types).
type whileFrame struct {
	frameCommon
	node         *ast.While
	awaitingBody bool
}

func (f *whileFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	if f.awaitingBody {
		if in.abrupt() {
			switch in.typ {
			case cBreak:
				s.Env.Push(value.NoneValue)
				return f.parent, fin(), nil
			case cContinue:
				f.awaitingBody = false
				return newFrame(f, f.node.Test), nil, nil
			default: // cReturn: propagate past the loop
				return f.parent, in, nil
			}
		}
		s.Env.Pop() // discard the body's completion value
		f.awaitingBody = false
		return newFrame(f, f.node.Test), nil, nil
	}
	if in == nil {
		return newFrame(f, f.node.Test), nil, nil
	}
	if value.Truthy(s.Env.Pop()) {
		f.awaitingBody = true
		return newFrame(f, stmtList(f.node.Body)), nil, nil
	}
	return newFrame(f.parent, stmtList(f.node.Orelse)), nil, nil
}

// forFrame implements §4.3 For.
type forFrame struct {
	frameCommon
	node         *ast.For
	elements     []value.Value
	idx          int
	haveIter     bool
	awaitingBody bool
}

func (f *forFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	if !f.haveIter {
		if in == nil {
			return newFrame(f, f.node.Iter), nil, nil
		}
		elems, err := iterableElements(f.node.Iter.Pos(), s.Env.Pop())
		if err != nil {
			return nil, nil, err
		}
		f.elements = elems
		f.haveIter = true
		return f.advance(s)
	}
	if f.awaitingBody {
		if in.abrupt() {
			switch in.typ {
			case cBreak:
				s.Env.Push(value.NoneValue)
				return f.parent, fin(), nil
			case cContinue:
				f.awaitingBody = false
				f.idx++
				return f.advance(s)
			default:
				return f.parent, in, nil
			}
		}
		s.Env.Pop() // discard the body's completion value
		f.awaitingBody = false
		f.idx++
		return f.advance(s)
	}
	return f.advance(s)
}

func (f *forFrame) advance(s *Stepper) (frame, *cval, error) {
	if f.idx >= len(f.elements) {
		return newFrame(f.parent, stmtList(f.node.Orelse)), nil, nil
	}
	if err := bindTarget(s.Env, f.node.Target, f.elements[f.idx]); err != nil {
		return nil, nil, err
	}
	f.awaitingBody = true
	return newFrame(f, stmtList(f.node.Body)), nil, nil
}

// breakFrame/continueFrame escape the innermost loop via an abrupt
// completion the loop frames above intercept. They push nothing; the
// intercepting loop supplies its own completion value.
type breakFrame struct{ frameCommon }

func (f *breakFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	return f.parent, &cval{typ: cBreak}, nil
}

type continueFrame struct{ frameCommon }

func (f *continueFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	return f.parent, &cval{typ: cContinue}, nil
}

type passFrame struct{ frameCommon }

func (f *passFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	s.Env.Push(value.NoneValue)
	return f.parent, fin(), nil
}

// globalFrame implements §4.3 Global declaration.
type globalFrame struct {
	frameCommon
	node *ast.Global
}

func (f *globalFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	for _, name := range f.node.Names {
		s.Env.AddGlobal(name)
	}
	s.Env.Push(value.NoneValue)
	return f.parent, fin(), nil
}

// funcDefFrame implements §4.3 Function definition: the default-value
// expressions are evaluated eagerly, once, at definition time (matching
// Python's own mutable-default-argument semantics) and stored on the
// resulting Func.
type funcDefFrame struct {
	frameCommon
	node     *ast.FunctionDef
	idx      int
	defaults []value.Value
}

func (f *funcDefFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	if in != nil {
		f.defaults = append(f.defaults, s.Env.Pop())
	}
	if f.idx < len(f.node.Args.Defaults) {
		next := newFrame(f, f.node.Args.Defaults[f.idx])
		f.idx++
		return next, nil, nil
	}
	fn := &value.Func{
		Name:        f.node.Name,
		Params:      f.node.Args.Args,
		RestParam:   f.node.Args.Vararg,
		RestKwParam: f.node.Args.Kwarg,
		Defaults:    f.defaults,
		Body:        f.node.Body,
	}
	if err := s.Env.SetVar(f.node.Name, fn); err != nil {
		return nil, nil, err
	}
	s.Env.Push(value.NoneValue)
	return f.parent, fin(), nil
}

// returnFrame implements §4.3 Return: the result is left on the
// evaluation stack and a cReturn completion carried upward, which
// callFrame (eval_call.go) intercepts to pop the call's result.
type returnFrame struct {
	frameCommon
	node *ast.Return
}

func (f *returnFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	if f.node.Value == nil {
		s.Env.Push(value.NoneValue)
		return f.parent, &cval{typ: cReturn}, nil
	}
	if in == nil {
		return newFrame(f, f.node.Value), nil, nil
	}
	return f.parent, &cval{typ: cReturn}, nil
}
