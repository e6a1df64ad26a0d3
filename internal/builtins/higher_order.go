package builtins

import (
	"fmt"
	"sort"

	"github.com/pesci-lang/pesci/internal/interp"
	"github.com/pesci-lang/pesci/internal/value"
)

// callerFrom extracts the interpreter handle an annotated HostFn
// receives via the well-known keyword entries (§6 Annotated
// host-function convention), used by every builtin in this file that
// needs to invoke a guest callable (map, filter, reduce, sorted's
// key=).
func callerFrom(kw map[string]value.Value) (*interp.Interpreter, error) {
	op, ok := kw[value.HostKeyInterpreter]
	if !ok {
		return nil, fmt.Errorf("internal error: missing interpreter handle")
	}
	o, ok := op.(*value.Opaque)
	if !ok {
		return nil, fmt.Errorf("internal error: malformed interpreter handle")
	}
	in, ok := o.Data.(*interp.Interpreter)
	if !ok {
		return nil, fmt.Errorf("internal error: malformed interpreter handle")
	}
	return in, nil
}

// builtinMap implements map(func, iterable), annotated since it must
// drive a guest Func or HostFn once per element (§6 Built-ins table).
func builtinMap(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) != 2 {
		return nil, arityError("map", 2, len(pos))
	}
	in, err := callerFrom(kw)
	if err != nil {
		return nil, err
	}
	elems, err := elementsOf(pos[1])
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, len(elems))
	for i, e := range elems {
		r, err := in.CallFunction(pos[0], []value.Value{e}, nil)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return value.NewList(out), nil
}

// builtinFilter implements filter(func, iterable); a None predicate
// keeps truthy elements, matching Python's filter(None, seq).
func builtinFilter(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) != 2 {
		return nil, arityError("filter", 2, len(pos))
	}
	elems, err := elementsOf(pos[1])
	if err != nil {
		return nil, err
	}
	_, predIsNone := pos[0].(*value.None)
	var in *interp.Interpreter
	if !predIsNone {
		in, err = callerFrom(kw)
		if err != nil {
			return nil, err
		}
	}
	var out []value.Value
	for _, e := range elems {
		keep := value.Truthy(e)
		if !predIsNone {
			r, err := in.CallFunction(pos[0], []value.Value{e}, nil)
			if err != nil {
				return nil, err
			}
			keep = value.Truthy(r)
		}
		if keep {
			out = append(out, e)
		}
	}
	return value.NewList(out), nil
}

// builtinReduce implements reduce(func, iterable[, initializer]).
func builtinReduce(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) < 2 || len(pos) > 3 {
		return nil, fmt.Errorf("reduce() takes 2 or 3 arguments (%d given)", len(pos))
	}
	in, err := callerFrom(kw)
	if err != nil {
		return nil, err
	}
	elems, err := elementsOf(pos[1])
	if err != nil {
		return nil, err
	}
	var acc value.Value
	start := 0
	if len(pos) == 3 {
		acc = pos[2]
	} else {
		if len(elems) == 0 {
			return nil, fmt.Errorf("reduce() of empty sequence with no initial value")
		}
		acc = elems[0]
		start = 1
	}
	for _, e := range elems[start:] {
		acc, err = in.CallFunction(pos[0], []value.Value{acc, e}, nil)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// builtinSortedKeyed implements sorted(), including the key= keyword
// form; Table() registers it as an annotated built-in so sorted(xs,
// key=f) can invoke the guest key function.
func builtinSortedKeyed(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) != 1 {
		return nil, arityError("sorted", 1, len(pos))
	}
	elems, err := elementsOf(pos[0])
	if err != nil {
		return nil, err
	}
	out := append([]value.Value{}, elems...)

	keyFn, hasKey := kw["key"]
	var keys []value.Value
	if hasKey {
		if _, isNone := keyFn.(*value.None); !isNone {
			in, err := callerFrom(kw)
			if err != nil {
				return nil, err
			}
			keys = make([]value.Value, len(out))
			for i, e := range out {
				k, err := in.CallFunction(keyFn, []value.Value{e}, nil)
				if err != nil {
					return nil, err
				}
				keys[i] = k
			}
		}
	}

	var sortErr error
	less := func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		a, b := out[i], out[j]
		if keys != nil {
			a, b = keys[i], keys[j]
		}
		lt, err := value.Less(a, b)
		if err != nil {
			sortErr = err
		}
		return lt
	}
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return less(idx[i], idx[j]) })
	if sortErr != nil {
		return nil, sortErr
	}
	sorted := make([]value.Value, len(out))
	for i, k := range idx {
		sorted[i] = out[k]
	}
	if reverse, ok := kw["reverse"]; ok && value.Truthy(reverse) {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}
	return value.NewList(sorted), nil
}
