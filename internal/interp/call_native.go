package interp

import (
	"github.com/pesci-lang/pesci/internal/value"
	"github.com/pesci-lang/pesci/pkg/ast"
)

// CallFunction invokes callee with the given positional/keyword
// arguments from host (Go) code rather than from a Call AST node. It
// exists so higher-order built-ins (map, filter, sorted's key=,
// reduce) can drive a guest Func the same way the evaluator's own
// callFrame does, without synthesizing a fake Call node. A Func is
// driven to completion synchronously via a throwaway Stepper sharing
// the caller's Environment, since built-ins are plain Go functions and
// have no frame of their own to suspend into.
func (in *Interpreter) CallFunction(callee value.Value, pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	switch c := callee.(type) {
	case *value.HostFn:
		if c.Annotated {
			annotated := make(map[string]value.Value, len(kw)+2)
			for k, v := range kw {
				annotated[k] = v
			}
			annotated[value.HostKeyInterpreter] = &value.Opaque{Name: "interpreter", Data: in}
			annotated[value.HostKeyEnvironment] = &value.Opaque{Name: "environment", Data: in.Env}
			kw = annotated
		}
		return c.Fn(pos, kw)
	case *value.Func:
		if err := bindFuncCall(in.Env, c, pos, kw, ast.Pos{}); err != nil {
			return nil, err
		}
		stepper := NewStepper(in)
		stepper.StartBody(c.Body)
		if err := stepper.Run(); err != nil {
			_ = in.Env.PopScope()
			return nil, err
		}
		if stepper.pending != nil && (stepper.pending.typ == cBreak || stepper.pending.typ == cContinue) {
			_ = in.Env.PopScope()
			return nil, runtimeErr(ast.Pos{}, "break or continue outside loop in function body")
		}
		result := in.Env.Pop()
		if stepper.pending == nil || stepper.pending.typ != cReturn {
			result = value.NoneValue
		}
		if err := in.Env.PopScope(); err != nil {
			return nil, err
		}
		return result, nil
	default:
		return nil, runtimeErr(ast.Pos{}, "'%s' object is not callable", callee.Type())
	}
}
