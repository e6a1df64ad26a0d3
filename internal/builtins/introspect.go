package builtins

import (
	"fmt"

	"github.com/pesci-lang/pesci/internal/interp"
	"github.com/pesci-lang/pesci/internal/value"
)

// builtinType implements type(), returning the argument's type tag
// as a Str (pesci has no class objects to return a real type value,
// per §1 Non-goals: "no user-defined classes").
func builtinType(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) != 1 {
		return nil, arityError("type", 1, len(pos))
	}
	return value.NewStr("<type '" + pos[0].Type() + "'>"), nil
}

// builtinHasattr implements hasattr(obj, name); the underscore guard
// (§3 invariants) applies here exactly as it does to `.` access, since
// hasattr is the reflective equivalent of an Attribute lookup.
func builtinHasattr(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) != 2 {
		return nil, arityError("hasattr", 2, len(pos))
	}
	name, ok := pos[1].(*value.Str)
	if !ok {
		return nil, fmt.Errorf("hasattr() attribute name must be string")
	}
	if len(name.V) > 0 && name.V[0] == '_' {
		return value.False, nil
	}
	_, err := value.GetAttr(pos[0], name.V)
	return value.NewBool(err == nil), nil
}

// builtinAll / builtinAny implement the short-circuit-over-an-iterable
// predicates, reusing value.Truthy so they never disagree with BoolOp.
func builtinAll(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) != 1 {
		return nil, arityError("all", 1, len(pos))
	}
	elems, err := elementsOf(pos[0])
	if err != nil {
		return nil, err
	}
	for _, e := range elems {
		if !value.Truthy(e) {
			return value.False, nil
		}
	}
	return value.True, nil
}

func builtinAny(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) != 1 {
		return nil, arityError("any", 1, len(pos))
	}
	elems, err := elementsOf(pos[0])
	if err != nil {
		return nil, err
	}
	for _, e := range elems {
		if value.Truthy(e) {
			return value.True, nil
		}
	}
	return value.False, nil
}

// builtinStr implements str().
func builtinStr(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) == 0 {
		return value.NewStr(""), nil
	}
	if len(pos) != 1 {
		return nil, arityError("str", 1, len(pos))
	}
	return value.NewStr(pos[0].String()), nil
}

// builtinFormat implements format(value[, format_spec]); only a small
// subset of Python's Format Specification Mini-Language is supported
// (width, precision and the f/d/x/o/b/% presentation types), enough
// for guest code formatting numbers for print.
func builtinFormat(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) < 1 || len(pos) > 2 {
		return nil, fmt.Errorf("format() takes 1 or 2 arguments (%d given)", len(pos))
	}
	spec := ""
	if len(pos) == 2 {
		sv, ok := pos[1].(*value.Str)
		if !ok {
			return nil, fmt.Errorf("format() spec must be a string")
		}
		spec = sv.V
	}
	s, err := formatSpec(pos[0], spec)
	if err != nil {
		return nil, err
	}
	return value.NewStr(s), nil
}

// pesci_help / pesci_dir are pesci's versions of original_source/pesci's
// __main__.py preloaded help()/dir() symbols (SPEC_FULL.md §C.1):
// annotated host functions using the interpreter/environment handles
// injected at call time to print a static message and the visible
// environment description, respectively.
func builtinHelp(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	in, err := callerFrom(kw)
	if err != nil {
		return nil, err
	}
	if in.Print != nil {
		in.Print("No help available. Try with 'dir()'.\n")
	}
	return value.NoneValue, nil
}

func builtinDir(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	env, err := environmentFrom(kw)
	if err != nil {
		return nil, err
	}
	in, err := callerFrom(kw)
	if err != nil {
		return nil, err
	}
	if in.Print != nil {
		in.Print(env.Description() + "\n")
	}
	return value.NoneValue, nil
}

func environmentFrom(kw map[string]value.Value) (*interp.Environment, error) {
	op, ok := kw[value.HostKeyEnvironment]
	if !ok {
		return nil, fmt.Errorf("internal error: missing environment handle")
	}
	o, ok := op.(*value.Opaque)
	if !ok {
		return nil, fmt.Errorf("internal error: malformed environment handle")
	}
	env, ok := o.Data.(*interp.Environment)
	if !ok {
		return nil, fmt.Errorf("internal error: malformed environment handle")
	}
	return env, nil
}
