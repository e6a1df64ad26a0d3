package value

import (
	"fmt"
	"strings"
)

// GetAttr implements the host side of §4.3 Attribute access: "look up
// the attribute on the host value". The underscore guard is enforced
// by the caller (internal/interp's attributeFrame) before GetAttr is
// reached. Only a representative slice of each host type's real
// Python methods is exposed — enough for idiomatic subset programs to
// call `.upper()`, `.append()`, `.keys()` and friends — rather than a
// full reflection-based bridge to the host language's method set.
func GetAttr(recv Value, name string) (Value, error) {
	switch recv := recv.(type) {
	case *Str:
		if fn, ok := strMethod(recv, name); ok {
			return fn, nil
		}
	case *List:
		if fn, ok := listMethod(recv, name); ok {
			return fn, nil
		}
	case *Dict:
		if fn, ok := dictMethod(recv, name); ok {
			return fn, nil
		}
	}
	return nil, fmt.Errorf("'%s' object has no attribute '%s'", recv.Type(), name)
}

func bound(name string, fn HostFunc) *HostFn {
	return &HostFn{Name: name, Fn: fn}
}

func strMethod(s *Str, name string) (Value, bool) {
	switch name {
	case "upper":
		return bound(name, func(pos []Value, kw map[string]Value) (Value, error) {
			return NewStr(strings.ToUpper(s.V)), nil
		}), true
	case "lower":
		return bound(name, func(pos []Value, kw map[string]Value) (Value, error) {
			return NewStr(strings.ToLower(s.V)), nil
		}), true
	case "strip":
		return bound(name, func(pos []Value, kw map[string]Value) (Value, error) {
			return NewStr(strings.TrimSpace(s.V)), nil
		}), true
	case "split":
		return bound(name, func(pos []Value, kw map[string]Value) (Value, error) {
			sep := " "
			if len(pos) > 0 {
				if sv, ok := pos[0].(*Str); ok {
					sep = sv.V
				}
			}
			var parts []string
			if len(pos) == 0 {
				parts = strings.Fields(s.V)
			} else {
				parts = strings.Split(s.V, sep)
			}
			out := make([]Value, len(parts))
			for i, p := range parts {
				out[i] = NewStr(p)
			}
			return NewList(out), nil
		}), true
	case "join":
		return bound(name, func(pos []Value, kw map[string]Value) (Value, error) {
			if len(pos) != 1 {
				return nil, fmt.Errorf("join() takes exactly one argument")
			}
			elems, ok := sequenceElemsFor(pos[0])
			if !ok {
				return nil, fmt.Errorf("can only join an iterable")
			}
			parts := make([]string, len(elems))
			for i, e := range elems {
				sv, ok := e.(*Str)
				if !ok {
					return nil, fmt.Errorf("sequence item %d: expected str", i)
				}
				parts[i] = sv.V
			}
			return NewStr(strings.Join(parts, s.V)), nil
		}), true
	case "startswith":
		return bound(name, func(pos []Value, kw map[string]Value) (Value, error) {
			prefix, err := strArg(pos, 0)
			if err != nil {
				return nil, err
			}
			return NewBool(strings.HasPrefix(s.V, prefix)), nil
		}), true
	case "endswith":
		return bound(name, func(pos []Value, kw map[string]Value) (Value, error) {
			suffix, err := strArg(pos, 0)
			if err != nil {
				return nil, err
			}
			return NewBool(strings.HasSuffix(s.V, suffix)), nil
		}), true
	case "replace":
		return bound(name, func(pos []Value, kw map[string]Value) (Value, error) {
			if len(pos) != 2 {
				return nil, fmt.Errorf("replace() takes exactly two arguments")
			}
			old, err := strArg(pos, 0)
			if err != nil {
				return nil, err
			}
			nw, err := strArg(pos, 1)
			if err != nil {
				return nil, err
			}
			return NewStr(strings.ReplaceAll(s.V, old, nw)), nil
		}), true
	case "find":
		return bound(name, func(pos []Value, kw map[string]Value) (Value, error) {
			sub, err := strArg(pos, 0)
			if err != nil {
				return nil, err
			}
			return NewInt(int64(strings.Index(s.V, sub))), nil
		}), true
	}
	return nil, false
}

func strArg(pos []Value, i int) (string, error) {
	if i >= len(pos) {
		return "", fmt.Errorf("missing string argument")
	}
	sv, ok := pos[i].(*Str)
	if !ok {
		return "", fmt.Errorf("expected str argument, got %s", pos[i].Type())
	}
	return sv.V, nil
}

func sequenceElemsFor(v Value) ([]Value, bool) {
	switch v := v.(type) {
	case *List:
		return v.Elems, true
	case *Tuple:
		return v.Elems, true
	default:
		return nil, false
	}
}

func listMethod(l *List, name string) (Value, bool) {
	switch name {
	case "append":
		return bound(name, func(pos []Value, kw map[string]Value) (Value, error) {
			if len(pos) != 1 {
				return nil, fmt.Errorf("append() takes exactly one argument")
			}
			l.Elems = append(l.Elems, pos[0])
			return NoneValue, nil
		}), true
	case "pop":
		return bound(name, func(pos []Value, kw map[string]Value) (Value, error) {
			if len(l.Elems) == 0 {
				return nil, fmt.Errorf("pop from empty list")
			}
			idx := len(l.Elems) - 1
			if len(pos) == 1 {
				iv, ok := pos[0].(*Int)
				if !ok {
					return nil, fmt.Errorf("pop() index must be int")
				}
				idx = int(iv.V.Int64())
				if idx < 0 {
					idx += len(l.Elems)
				}
			}
			if idx < 0 || idx >= len(l.Elems) {
				return nil, fmt.Errorf("pop index out of range")
			}
			v := l.Elems[idx]
			l.Elems = append(l.Elems[:idx], l.Elems[idx+1:]...)
			return v, nil
		}), true
	case "index":
		return bound(name, func(pos []Value, kw map[string]Value) (Value, error) {
			if len(pos) != 1 {
				return nil, fmt.Errorf("index() takes exactly one argument")
			}
			for i, e := range l.Elems {
				eq, err := Equals(e, pos[0])
				if err != nil {
					return nil, err
				}
				if eq {
					return NewInt(int64(i)), nil
				}
			}
			return nil, fmt.Errorf("value not in list")
		}), true
	case "count":
		return bound(name, func(pos []Value, kw map[string]Value) (Value, error) {
			if len(pos) != 1 {
				return nil, fmt.Errorf("count() takes exactly one argument")
			}
			n := 0
			for _, e := range l.Elems {
				eq, err := Equals(e, pos[0])
				if err != nil {
					return nil, err
				}
				if eq {
					n++
				}
			}
			return NewInt(int64(n)), nil
		}), true
	}
	return nil, false
}

func dictMethod(d *Dict, name string) (Value, bool) {
	switch name {
	case "keys":
		return bound(name, func(pos []Value, kw map[string]Value) (Value, error) {
			return NewList(append([]Value{}, d.Keys()...)), nil
		}), true
	case "values":
		return bound(name, func(pos []Value, kw map[string]Value) (Value, error) {
			out := make([]Value, 0, d.Len())
			d.Range(func(_, v Value) { out = append(out, v) })
			return NewList(out), nil
		}), true
	case "items":
		return bound(name, func(pos []Value, kw map[string]Value) (Value, error) {
			out := make([]Value, 0, d.Len())
			d.Range(func(k, v Value) { out = append(out, NewTuple([]Value{k, v})) })
			return NewList(out), nil
		}), true
	case "get":
		return bound(name, func(pos []Value, kw map[string]Value) (Value, error) {
			if len(pos) < 1 {
				return nil, fmt.Errorf("get() takes at least one argument")
			}
			v, ok, err := d.Get(pos[0])
			if err != nil {
				return nil, err
			}
			if ok {
				return v, nil
			}
			if len(pos) > 1 {
				return pos[1], nil
			}
			return NoneValue, nil
		}), true
	case "pop":
		return bound(name, func(pos []Value, kw map[string]Value) (Value, error) {
			if len(pos) < 1 {
				return nil, fmt.Errorf("pop() takes at least one argument")
			}
			v, ok, err := d.Get(pos[0])
			if err != nil {
				return nil, err
			}
			if !ok {
				if len(pos) > 1 {
					return pos[1], nil
				}
				return nil, fmt.Errorf("key not found")
			}
			d.Delete(pos[0])
			return v, nil
		}), true
	}
	return nil, false
}
