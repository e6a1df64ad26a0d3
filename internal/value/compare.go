package value

import (
	"fmt"
	"strings"
)

// Equals implements the `==`/`!=` comparators (§4.3). Numeric types
// compare across int/float/bool (True == 1, 1.0 == 1); containers
// compare structurally, element by element; everything else compares
// by identity semantics on the type tag, matching the original
// source's reliance on Python's default equality for unrelated types
// (always false rather than an error).
func Equals(a, b Value) (bool, error) {
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			return af == bf, nil
		}
		return false, nil
	}
	switch a := a.(type) {
	case *Str:
		b, ok := b.(*Str)
		return ok && a.V == b.V, nil
	case *None:
		_, ok := b.(*None)
		return ok, nil
	case *List:
		b, ok := b.(*List)
		if !ok || len(a.Elems) != len(b.Elems) {
			return false, nil
		}
		for i := range a.Elems {
			eq, err := Equals(a.Elems[i], b.Elems[i])
			if err != nil || !eq {
				return false, err
			}
		}
		return true, nil
	case *Tuple:
		b, ok := b.(*Tuple)
		if !ok || len(a.Elems) != len(b.Elems) {
			return false, nil
		}
		for i := range a.Elems {
			eq, err := Equals(a.Elems[i], b.Elems[i])
			if err != nil || !eq {
				return false, err
			}
		}
		return true, nil
	case *Dict:
		b, ok := b.(*Dict)
		if !ok || a.Len() != b.Len() {
			return false, nil
		}
		eq := true
		a.Range(func(k, v Value) {
			if !eq {
				return
			}
			bv, ok, err := b.Get(k)
			if err != nil || !ok {
				eq = false
				return
			}
			same, err := Equals(v, bv)
			if err != nil || !same {
				eq = false
			}
		})
		return eq, nil
	case *Func:
		b, ok := b.(*Func)
		return ok && a == b, nil
	case *HostFn:
		b, ok := b.(*HostFn)
		return ok && a == b, nil
	default:
		return false, nil
	}
}

// Less implements the `<` ordering relation the Compare rule builds
// `<=`, `>` and `>=` from. Only numeric types and same-typed sequences
// (str, list, tuple, lexicographic) support ordering; anything else is
// a runtime error, matching Python's TypeError for e.g. dict < dict.
func Less(a, b Value) (bool, error) {
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			return af < bf, nil
		}
	}
	switch a := a.(type) {
	case *Str:
		if b, ok := b.(*Str); ok {
			return a.V < b.V, nil
		}
	case *List:
		if b, ok := b.(*List); ok {
			return lessSeq(a.Elems, b.Elems)
		}
	case *Tuple:
		if b, ok := b.(*Tuple); ok {
			return lessSeq(a.Elems, b.Elems)
		}
	}
	return false, fmt.Errorf("'<' not supported between instances of '%s' and '%s'", a.Type(), b.Type())
}

func lessSeq(a, b []Value) (bool, error) {
	for i := 0; i < len(a) && i < len(b); i++ {
		eq, err := Equals(a[i], b[i])
		if err != nil {
			return false, err
		}
		if eq {
			continue
		}
		return Less(a[i], b[i])
	}
	return len(a) < len(b), nil
}

// Is implements the `is`/`is not` identity test (§4.3). None, Bool and
// small conventions aside, identity in pesci is reference identity for
// mutable containers and functions, and value identity for the
// singletons None/True/False (there is exactly one of each).
func Is(a, b Value) bool {
	switch a := a.(type) {
	case *None:
		_, ok := b.(*None)
		return ok
	case *Bool:
		bb, ok := b.(*Bool)
		return ok && a.V == bb.V
	case *List:
		bb, ok := b.(*List)
		return ok && a == bb
	case *Dict:
		bb, ok := b.(*Dict)
		return ok && a == bb
	case *Func:
		bb, ok := b.(*Func)
		return ok && a == bb
	case *HostFn:
		bb, ok := b.(*HostFn)
		return ok && a == bb
	case *Tuple:
		bb, ok := b.(*Tuple)
		return ok && a == bb
	default:
		eq, err := Equals(a, b)
		return err == nil && eq
	}
}

// Contains implements the `in`/`not in` membership test. Str tests
// substring containment; List/Tuple test element equality; Dict tests
// key presence.
func Contains(container, item Value) (bool, error) {
	switch c := container.(type) {
	case *Str:
		sub, ok := item.(*Str)
		if !ok {
			return false, fmt.Errorf("'in <string>' requires string as left operand, not %s", item.Type())
		}
		return strings.Contains(c.V, sub.V), nil
	case *List:
		for _, e := range c.Elems {
			eq, err := Equals(e, item)
			if err != nil {
				return false, err
			}
			if eq {
				return true, nil
			}
		}
		return false, nil
	case *Tuple:
		for _, e := range c.Elems {
			eq, err := Equals(e, item)
			if err != nil {
				return false, err
			}
			if eq {
				return true, nil
			}
		}
		return false, nil
	case *Dict:
		_, ok, err := c.Get(item)
		return ok, err
	default:
		return false, fmt.Errorf("argument of type '%s' is not iterable", container.Type())
	}
}
