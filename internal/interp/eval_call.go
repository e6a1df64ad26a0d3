package interp

import (
	"sort"

	perrors "github.com/pesci-lang/pesci/internal/errors"
	"github.com/pesci-lang/pesci/internal/value"
	"github.com/pesci-lang/pesci/pkg/ast"
)

// callFrame implements §4.4 Function Calling. It walks the argument
// resolution order exactly as specified (positional expressions, then
// keyword values, then the callee expression), resolves star/kstar
// splats by direct environment lookup (they name an already-bound
// variable, not a sub-expression to evaluate), dispatches to either a
// HostFn or a Func, and — for a Func — drives the bound body as a
// child frame before popping the scope it pushed.
type callFrame struct {
	frameCommon
	node *ast.Call

	posN     int
	posVals  []value.Value
	posDone  bool
	kwN      int
	kwVals   []value.Value
	kwDone   bool
	callee   value.Value
	haveFunc bool

	dispatched bool
}

func (f *callFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	if !f.posDone {
		if in != nil {
			f.posVals = append(f.posVals, s.Env.Pop())
		}
		if f.posN < len(f.node.Args) {
			next := newFrame(f, f.node.Args[f.posN])
			f.posN++
			return next, nil, nil
		}
		f.posDone = true
		in = nil
	}
	if !f.kwDone {
		if in != nil {
			f.kwVals = append(f.kwVals, s.Env.Pop())
		}
		if f.kwN < len(f.node.Keywords) {
			next := newFrame(f, f.node.Keywords[f.kwN].Value)
			f.kwN++
			return next, nil, nil
		}
		f.kwDone = true
		in = nil
	}
	if !f.haveFunc {
		if in != nil {
			f.callee = s.Env.Pop()
			f.haveFunc = true
		} else {
			return newFrame(f, f.node.Func), nil, nil
		}
	}
	if !f.dispatched {
		f.dispatched = true
		return f.dispatch(s)
	}
	return f.finish(s, in)
}

func (f *callFrame) dispatch(s *Stepper) (frame, *cval, error) {
	pos := append([]value.Value{}, f.posVals...)
	if f.node.Star != nil {
		starVal, ok := s.Env.GetVar(f.node.Star.Id)
		if !ok {
			return nil, nil, runtimeErr(f.node.Pos(), "name %q is not defined", f.node.Star.Id)
		}
		elems, ok := sequenceElems(starVal)
		if !ok {
			return nil, nil, runtimeErr(f.node.Pos(), "argument after * must be a sequence, not %s", starVal.Type())
		}
		pos = append(pos, elems...)
	}

	kw := map[string]value.Value{}
	for i, k := range f.node.Keywords {
		kw[k.Arg] = f.kwVals[i]
	}
	if f.node.Kstar != nil {
		kstarVal, ok := s.Env.GetVar(f.node.Kstar.Id)
		if !ok {
			return nil, nil, runtimeErr(f.node.Pos(), "name %q is not defined", f.node.Kstar.Id)
		}
		d, ok := kstarVal.(*value.Dict)
		if !ok {
			return nil, nil, runtimeErr(f.node.Pos(), "argument after ** must be a dict, not %s", kstarVal.Type())
		}
		d.Range(func(k, v value.Value) {
			if ks, ok := k.(*value.Str); ok {
				kw[ks.V] = v
			}
		})
	}

	switch callee := f.callee.(type) {
	case *value.HostFn:
		if callee.Annotated {
			kw[value.HostKeyInterpreter] = &value.Opaque{Name: "interpreter", Data: s.interp}
			kw[value.HostKeyEnvironment] = &value.Opaque{Name: "environment", Data: s.Env}
		}
		result, err := callee.Fn(pos, kw)
		if err != nil {
			return nil, nil, runtimeErr(f.node.Pos(), "%v", err)
		}
		s.Env.Push(result)
		return f.parent, fin(), nil
	case *value.Func:
		if err := bindFuncCall(s.Env, callee, pos, kw, f.node.Pos()); err != nil {
			return nil, nil, err
		}
		s.pushCall(callee.Name, f.node.Pos().Line)
		return newFrame(f, stmtList(callee.Body)), nil, nil
	default:
		return nil, nil, runtimeErr(f.node.Pos(), "'%s' object is not callable", f.callee.Type())
	}
}

// finish consumes the body's completion: the stmtsFrame (normal exit)
// or returnFrame (cReturn) left exactly one value on the stack, which
// becomes the call's result only in the cReturn case.
func (f *callFrame) finish(s *Stepper, in *cval) (frame, *cval, error) {
	if in != nil && (in.typ == cBreak || in.typ == cContinue) {
		return nil, nil, runtimeErr(f.node.Pos(), "break or continue outside loop in function body")
	}
	result := value.Value(value.NoneValue)
	v := s.Env.Pop()
	if in != nil && in.typ == cReturn {
		result = v
	}
	if err := s.Env.PopScope(); err != nil {
		return nil, nil, err
	}
	s.popCall()
	s.Env.Push(result)
	return f.parent, fin(), nil
}

// bindFuncCall implements §4.4's binding algorithm steps 1-8: push a
// new scope, then resolve defaults, positionals, keywords and rest
// parameters against the formal parameter list, failing with
// bad-function-call on a missing argument, double assignment or an
// unrecognized keyword with no rest-keyword parameter to absorb it.
// Excess positionals with no rest parameter are dropped, not rejected.
// On failure the scope it pushed is popped again, so an aborted call
// never leaks a context onto the caller's stack.
func bindFuncCall(env *Environment, fn *value.Func, pos []value.Value, kw map[string]value.Value, callPos ast.Pos) error {
	env.PushScope()
	if err := bindFormals(env, fn, pos, kw, callPos); err != nil {
		_ = env.PopScope()
		return err
	}
	return nil
}

func bindFormals(env *Environment, fn *value.Func, pos []value.Value, kw map[string]value.Value, callPos ast.Pos) error {
	n := len(fn.Params)
	k := len(fn.Defaults)

	remaining := make(map[string]bool, n)
	for _, p := range fn.Params {
		remaining[p] = true
	}
	wasDefault := make(map[string]bool, k)
	boundPositional := make(map[string]bool, n)

	for i := n - k; i < n; i++ {
		if i < 0 {
			continue
		}
		name := fn.Params[i]
		if err := env.SetVar(name, fn.Defaults[i-(n-k)]); err != nil {
			return err
		}
		delete(remaining, name)
		wasDefault[name] = true
	}

	bindCount := n
	if len(pos) < bindCount {
		bindCount = len(pos)
	}
	for i := 0; i < bindCount; i++ {
		name := fn.Params[i]
		if err := env.SetVar(name, pos[i]); err != nil {
			return err
		}
		delete(remaining, name)
		boundPositional[name] = true
	}
	var excess []value.Value
	if len(pos) > n {
		excess = append(excess, pos[n:]...)
	}

	// Keyword actuals are processed in sorted name order so binding
	// errors and the rest-keyword dict's iteration order are
	// deterministic (§8 Determinism) despite kw being a Go map.
	names := make([]string, 0, len(kw))
	for name := range kw {
		names = append(names, name)
	}
	sort.Strings(names)

	restKw := value.NewDict()
	for _, name := range names {
		val := kw[name]
		isParam := false
		for _, p := range fn.Params {
			if p == name {
				isParam = true
				break
			}
		}
		switch {
		case isParam && (remaining[name] || (wasDefault[name] && !boundPositional[name])):
			if err := env.SetVar(name, val); err != nil {
				return err
			}
			delete(remaining, name)
		case isParam:
			return perrors.New(perrors.ErrBadFunctionCall, callPos, "%s() got multiple values for argument %q", fn.Name, name)
		case fn.RestKwParam != "":
			_ = restKw.Set(value.NewStr(name), val)
		default:
			return perrors.New(perrors.ErrBadFunctionCall, callPos, "%s() got an unexpected keyword argument %q", fn.Name, name)
		}
	}

	// With no rest-positional parameter, excess positional actuals are
	// silently discarded rather than rejected (DESIGN.md Open Question
	// decision 7).
	if fn.RestParam != "" {
		if err := env.SetVar(fn.RestParam, value.NewTuple(excess)); err != nil {
			return err
		}
	}

	if fn.RestKwParam != "" {
		if err := env.SetVar(fn.RestKwParam, restKw); err != nil {
			return err
		}
	}

	if len(remaining) > 0 {
		return perrors.New(perrors.ErrBadFunctionCall, callPos, "%s() missing required argument(s)", fn.Name)
	}
	return nil
}
