package interp

import (
	"fmt"

	"github.com/pesci-lang/pesci/internal/value"
)

// applySubscript implements §4.3 Subscript / Slice for the single-
// index case and the lower:upper:step case produced by sliceFrame.
// Defaults per the spec are 0, length, 1.
func applySubscript(base value.Value, key value.Value) (value.Value, error) {
	if sv, ok := key.(*value.Slice); ok {
		return applySlice(base, sv)
	}
	switch b := base.(type) {
	case *value.List:
		idx, err := sliceIndex(key, len(b.Elems))
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(b.Elems) {
			return nil, fmt.Errorf("list index out of range")
		}
		return b.Elems[idx], nil
	case *value.Tuple:
		idx, err := sliceIndex(key, len(b.Elems))
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(b.Elems) {
			return nil, fmt.Errorf("tuple index out of range")
		}
		return b.Elems[idx], nil
	case *value.Str:
		rs := []rune(b.V)
		idx, err := sliceIndex(key, len(rs))
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(rs) {
			return nil, fmt.Errorf("string index out of range")
		}
		return value.NewStr(string(rs[idx])), nil
	case *value.Dict:
		v, ok, err := b.Get(key)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("key %s not found", value.Repr(key))
		}
		return v, nil
	default:
		return nil, fmt.Errorf("'%s' object is not subscriptable", base.Type())
	}
}

func sliceIndex(key value.Value, length int) (int, error) {
	iv, ok := key.(*value.Int)
	if !ok {
		return 0, fmt.Errorf("indices must be integers, not %s", key.Type())
	}
	idx := int(iv.V.Int64())
	if idx < 0 {
		idx += length
	}
	return idx, nil
}

func applySlice(base value.Value, sv *value.Slice) (value.Value, error) {
	length, elems, isStr, err := subscriptLength(base)
	if err != nil {
		return nil, err
	}
	step := 1
	if sv.Step != nil {
		iv, ok := sv.Step.(*value.Int)
		if !ok {
			return nil, fmt.Errorf("slice step must be an integer")
		}
		step = int(iv.V.Int64())
		if step == 0 {
			return nil, fmt.Errorf("slice step cannot be zero")
		}
	}
	lower, upper := sliceDefaultBounds(step, length)
	if sv.Lower != nil {
		lower, err = resolveBound(sv.Lower, length)
		if err != nil {
			return nil, err
		}
	}
	if sv.Upper != nil {
		upper, err = resolveBound(sv.Upper, length)
		if err != nil {
			return nil, err
		}
	}
	var out []value.Value
	if step > 0 {
		for i := clamp(lower, 0, length); i < clamp(upper, 0, length); i += step {
			out = append(out, elems[i])
		}
	} else {
		for i := clamp(lower, -1, length-1); i > clamp(upper, -1, length-1); i += step {
			out = append(out, elems[i])
		}
	}
	if isStr {
		var b []rune
		for _, e := range out {
			b = append(b, []rune(e.(*value.Str).V)...)
		}
		return value.NewStr(string(b)), nil
	}
	if _, ok := base.(*value.Tuple); ok {
		return value.NewTuple(out), nil
	}
	return value.NewList(out), nil
}

func subscriptLength(base value.Value) (int, []value.Value, bool, error) {
	switch b := base.(type) {
	case *value.List:
		return len(b.Elems), b.Elems, false, nil
	case *value.Tuple:
		return len(b.Elems), b.Elems, false, nil
	case *value.Str:
		rs := []rune(b.V)
		elems := make([]value.Value, len(rs))
		for i, r := range rs {
			elems[i] = value.NewStr(string(r))
		}
		return len(rs), elems, true, nil
	default:
		return 0, nil, false, fmt.Errorf("'%s' object is not sliceable", base.Type())
	}
}

func sliceDefaultBounds(step, length int) (int, int) {
	if step > 0 {
		return 0, length
	}
	return length - 1, -1
}

func resolveBound(v value.Value, length int) (int, error) {
	iv, ok := v.(*value.Int)
	if !ok {
		return 0, fmt.Errorf("slice indices must be integers")
	}
	idx := int(iv.V.Int64())
	if idx < 0 {
		idx += length
	}
	return idx, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
