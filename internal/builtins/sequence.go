package builtins

import (
	"fmt"

	"github.com/pesci-lang/pesci/internal/value"
	"github.com/pesci-lang/pesci/pkg/ast"
)

// elementsOf coerces any of the spec's recognized iterables (list,
// tuple, str, dict — iterating a dict yields its keys, matching
// Python) into a plain slice, the same coercion iterableElements
// performs inside the evaluator's For statement.
func elementsOf(v value.Value) ([]value.Value, error) {
	switch v := v.(type) {
	case *value.List:
		return v.Elems, nil
	case *value.Tuple:
		return v.Elems, nil
	case *value.Str:
		rs := []rune(v.V)
		out := make([]value.Value, len(rs))
		for i, r := range rs {
			out[i] = value.NewStr(string(r))
		}
		return out, nil
	case *value.Dict:
		return append([]value.Value{}, v.Keys()...), nil
	default:
		return nil, fmt.Errorf("'%s' object is not iterable", v.Type())
	}
}

// builtinLen implements len().
func builtinLen(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) != 1 {
		return nil, arityError("len", 1, len(pos))
	}
	switch v := pos[0].(type) {
	case *value.Str:
		return value.NewInt(int64(len([]rune(v.V)))), nil
	case *value.List:
		return value.NewInt(int64(len(v.Elems))), nil
	case *value.Tuple:
		return value.NewInt(int64(len(v.Elems))), nil
	case *value.Dict:
		return value.NewInt(int64(v.Len())), nil
	default:
		return nil, fmt.Errorf("object of type '%s' has no len()", v.Type())
	}
}

// builtinList implements list([iterable]).
func builtinList(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) == 0 {
		return value.NewList(nil), nil
	}
	elems, err := elementsOf(pos[0])
	if err != nil {
		return nil, err
	}
	return value.NewList(append([]value.Value{}, elems...)), nil
}

// builtinTuple implements tuple([iterable]).
func builtinTuple(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) == 0 {
		return value.NewTuple(nil), nil
	}
	elems, err := elementsOf(pos[0])
	if err != nil {
		return nil, err
	}
	return value.NewTuple(append([]value.Value{}, elems...)), nil
}

// builtinDict implements dict([mapping]); only the no-argument and
// single dict-argument (copy) forms are supported, matching what a
// sandboxed subset actually exercises — keyword-pair construction
// (dict(a=1)) goes through the kw map directly.
func builtinDict(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	d := value.NewDict()
	if len(pos) == 1 {
		src, ok := pos[0].(*value.Dict)
		if !ok {
			return nil, fmt.Errorf("dict() argument must be a dict, not '%s'", pos[0].Type())
		}
		src.Range(func(k, v value.Value) { _ = d.Set(k, v) })
	}
	for k, v := range kw {
		if err := d.Set(value.NewStr(k), v); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// builtinRange implements range(stop) / range(start, stop[, step]).
func builtinRange(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) < 1 || len(pos) > 3 {
		return nil, fmt.Errorf("range() takes 1 to 3 arguments (%d given)", len(pos))
	}
	ints := make([]int64, len(pos))
	for i, p := range pos {
		iv, ok := toInt(p)
		if !ok {
			return nil, fmt.Errorf("'%s' object cannot be interpreted as an integer", p.Type())
		}
		ints[i] = iv.Int64()
	}
	start, stop, step := int64(0), ints[0], int64(1)
	if len(ints) >= 2 {
		start, stop = ints[0], ints[1]
	}
	if len(ints) == 3 {
		step = ints[2]
	}
	if step == 0 {
		return nil, fmt.Errorf("range() arg 3 must not be zero")
	}
	var out []value.Value
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, value.NewInt(i))
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, value.NewInt(i))
		}
	}
	return value.NewList(out), nil
}

// builtinReversed implements reversed(seq).
func builtinReversed(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) != 1 {
		return nil, arityError("reversed", 1, len(pos))
	}
	elems, err := elementsOf(pos[0])
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, len(elems))
	for i, e := range elems {
		out[len(elems)-1-i] = e
	}
	return value.NewList(out), nil
}

// builtinEnumerate implements enumerate(seq, start=0).
func builtinEnumerate(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) != 1 {
		return nil, arityError("enumerate", 1, len(pos))
	}
	elems, err := elementsOf(pos[0])
	if err != nil {
		return nil, err
	}
	start := int64(0)
	if s, ok := kw["start"]; ok {
		iv, ok := toInt(s)
		if !ok {
			return nil, fmt.Errorf("enumerate() start must be an integer")
		}
		start = iv.Int64()
	}
	out := make([]value.Value, len(elems))
	for i, e := range elems {
		out[i] = value.NewTuple([]value.Value{value.NewInt(start + int64(i)), e})
	}
	return value.NewList(out), nil
}

// builtinZip implements zip(*iterables), truncating to the shortest.
func builtinZip(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) == 0 {
		return value.NewList(nil), nil
	}
	seqs := make([][]value.Value, len(pos))
	minLen := -1
	for i, p := range pos {
		elems, err := elementsOf(p)
		if err != nil {
			return nil, err
		}
		seqs[i] = elems
		if minLen == -1 || len(elems) < minLen {
			minLen = len(elems)
		}
	}
	out := make([]value.Value, minLen)
	for i := 0; i < minLen; i++ {
		tup := make([]value.Value, len(seqs))
		for j := range seqs {
			tup[j] = seqs[j][i]
		}
		out[i] = value.NewTuple(tup)
	}
	return value.NewList(out), nil
}

// builtinSum implements sum(iterable, start=0).
func builtinSum(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) < 1 || len(pos) > 2 {
		return nil, fmt.Errorf("sum() takes 1 or 2 arguments (%d given)", len(pos))
	}
	elems, err := elementsOf(pos[0])
	if err != nil {
		return nil, err
	}
	var total value.Value = value.NewInt(0)
	if len(pos) == 2 {
		total = pos[1]
	}
	for _, e := range elems {
		total, err = value.BinOp(total, ast.Add, e)
		if err != nil {
			return nil, err
		}
	}
	return total, nil
}

// builtinMax / builtinMin implement max()/min() over either a single
// iterable argument or two-or-more positional arguments.
func builtinMax(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	return extreme("max", pos, kw, false)
}

func builtinMin(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	return extreme("min", pos, kw, true)
}

func extreme(name string, pos []value.Value, kw map[string]value.Value, wantMin bool) (value.Value, error) {
	var candidates []value.Value
	if len(pos) == 1 {
		elems, err := elementsOf(pos[0])
		if err != nil {
			return nil, err
		}
		candidates = elems
	} else {
		candidates = pos
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%s() arg is an empty sequence", name)
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		var better bool
		var err error
		if wantMin {
			better, err = value.Less(c, best)
		} else {
			better, err = value.Less(best, c)
		}
		if err != nil {
			return nil, err
		}
		if better {
			best = c
		}
	}
	return best, nil
}

// builtinSlice implements slice([start,] stop[, step]) (§6 Built-ins
// table), producing the same value.Slice the evaluator's own Slice AST
// node produces, so a[slice(1, 3)] and a[1:3] behave identically.
func builtinSlice(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	switch len(pos) {
	case 1:
		return &value.Slice{Upper: pos[0]}, nil
	case 2:
		return &value.Slice{Lower: pos[0], Upper: pos[1]}, nil
	case 3:
		return &value.Slice{Lower: pos[0], Upper: pos[1], Step: pos[2]}, nil
	default:
		return nil, fmt.Errorf("slice() takes 1 to 3 arguments (%d given)", len(pos))
	}
}
