package interp

import (
	"strings"

	"github.com/pesci-lang/pesci/internal/value"
	"github.com/pesci-lang/pesci/pkg/ast"
)

// sequenceElems returns v's elements for destructuring (Assign/For
// tuple-pattern binding, §4.3): List and Tuple give their elements
// directly; Str gives one single-character Str per rune, matching
// Python's string-is-a-sequence-of-characters iteration.
func sequenceElems(v value.Value) ([]value.Value, bool) {
	switch v := v.(type) {
	case *value.List:
		return v.Elems, true
	case *value.Tuple:
		return v.Elems, true
	case *value.Str:
		rs := []rune(v.V)
		out := make([]value.Value, len(rs))
		for i, r := range rs {
			out[i] = value.NewStr(string(r))
		}
		return out, true
	default:
		return nil, false
	}
}

// iterableElements materializes the for-loop iterable (§4.3: "must
// yield a list, tuple, string, or built-in iterable"). Dict iteration
// yields its keys, matching Python's default dict iteration.
func iterableElements(pos ast.Pos, v value.Value) ([]value.Value, error) {
	if elems, ok := sequenceElems(v); ok {
		return elems, nil
	}
	if d, ok := v.(*value.Dict); ok {
		return d.Keys(), nil
	}
	return nil, runtimeErr(pos, "'%s' object is not iterable", v.Type())
}

// bindTarget binds val to target, which is either a single Name or a
// Tuple/List pattern of Name nodes (§4.3 Assignment / For). Anything
// else (nested patterns, attribute/subscript targets) is outside the
// accepted subset's assignment target grammar and is a runtime error.
func bindTarget(env *Environment, target ast.Expr, val value.Value) error {
	switch t := target.(type) {
	case *ast.Name:
		return env.SetVar(t.Id, val)
	case *ast.Tuple:
		return bindPattern(env, t.Elts, val, target.Pos())
	case *ast.List:
		return bindPattern(env, t.Elts, val, target.Pos())
	default:
		return runtimeErr(target.Pos(), "invalid assignment target")
	}
}

func bindPattern(env *Environment, names []ast.Expr, val value.Value, pos ast.Pos) error {
	elems, ok := sequenceElems(val)
	if !ok {
		return runtimeErr(pos, "cannot unpack non-sequence %s", val.Type())
	}
	if len(elems) != len(names) {
		return runtimeErr(pos, "cannot unpack %d values into %d targets", len(elems), len(names))
	}
	for i, n := range names {
		name, ok := n.(*ast.Name)
		if !ok {
			return runtimeErr(n.Pos(), "invalid assignment target")
		}
		if err := env.SetVar(name.Id, elems[i]); err != nil {
			return err
		}
	}
	return nil
}

// joinPrintLine implements §4.3's Print concatenation rule: values are
// separated by a single space, except that a part which is already a
// string ending in a newline suppresses the following separator, so
// manual newlines in source strings aren't doubled up with a stray
// space before the next value.
func joinPrintLine(parts []string) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 && !strings.HasSuffix(parts[i-1], "\n") {
			b.WriteByte(' ')
		}
		b.WriteString(p)
	}
	return b.String()
}
