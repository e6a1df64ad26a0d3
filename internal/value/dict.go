package value

import (
	"fmt"
	"math"
)

// Dict is a mapping from hashable Values to Values, preserving
// insertion order for iteration (dict.keys()/items() and the zip of
// Dict literal Keys/Values rely on that order — §8 scenario 3 expects
// sorted(kw.keys()) == ['a', 'b'] for kwargs passed in source order).
//
// Keys must be hashable: Int, Float (NaN never equals itself, per §9
// Design Notes), Bool, Str, and Tuple of hashable values. List, Dict,
// Func and HostFn are rejected with a runtime-error (§9).
type Dict struct {
	keys   []Value
	hashes []string
	index  map[string]int
	vals   map[string]Value
}

func NewDict() *Dict {
	return &Dict{index: map[string]int{}, vals: map[string]Value{}}
}

// HashKey computes the canonical hash string for a dict key, or an
// error if the value is unhashable.
func HashKey(v Value) (string, error) {
	switch v := v.(type) {
	case *Int:
		return "i:" + v.V.String(), nil
	case *Float:
		if math.IsNaN(v.V) {
			return "", fmt.Errorf("NaN is not a valid dict key")
		}
		// An integral float hashes the same as the equal Int, so that
		// {1: "a"}[1.0] succeeds, matching Python's numeric-key equality.
		if v.V == math.Trunc(v.V) && !math.IsInf(v.V, 0) {
			return "i:" + fmt.Sprintf("%.0f", v.V), nil
		}
		return "f:" + fmt.Sprintf("%b", v.V), nil
	case *Bool:
		if v.V {
			return "i:1", nil
		}
		return "i:0", nil
	case *Str:
		return "s:" + v.V, nil
	case *Tuple:
		s := "t:("
		for i, e := range v.Elems {
			if i > 0 {
				s += ","
			}
			h, err := HashKey(e)
			if err != nil {
				return "", err
			}
			s += h
		}
		return s + ")", nil
	default:
		return "", fmt.Errorf("unhashable type: '%s'", v.Type())
	}
}

// Set inserts or updates key -> val, preserving first-insertion order.
func (d *Dict) Set(key, val Value) error {
	h, err := HashKey(key)
	if err != nil {
		return err
	}
	if _, ok := d.index[h]; !ok {
		d.index[h] = len(d.keys)
		d.keys = append(d.keys, key)
		d.hashes = append(d.hashes, h)
	}
	d.vals[h] = val
	return nil
}

// Get looks up key, returning (value, true) if present.
func (d *Dict) Get(key Value) (Value, bool, error) {
	h, err := HashKey(key)
	if err != nil {
		return nil, false, err
	}
	v, ok := d.vals[h]
	return v, ok, nil
}

// Delete removes key if present; it is a no-op otherwise.
func (d *Dict) Delete(key Value) error {
	h, err := HashKey(key)
	if err != nil {
		return err
	}
	i, ok := d.index[h]
	if !ok {
		return nil
	}
	d.keys = append(d.keys[:i], d.keys[i+1:]...)
	d.hashes = append(d.hashes[:i], d.hashes[i+1:]...)
	delete(d.vals, h)
	delete(d.index, h)
	for k, idx := range d.index {
		if idx > i {
			d.index[k] = idx - 1
		}
	}
	return nil
}

// Keys returns the dict's keys in insertion order.
func (d *Dict) Keys() []Value { return d.keys }

// Len returns the number of entries.
func (d *Dict) Len() int { return len(d.keys) }

// Range calls f for each (key, value) pair in insertion order.
func (d *Dict) Range(f func(key, val Value)) {
	for i, k := range d.keys {
		f(k, d.vals[d.hashes[i]])
	}
}

func (*Dict) Type() string { return "dict" }

func (d *Dict) String() string {
	s := "{"
	for i, k := range d.keys {
		if i > 0 {
			s += ", "
		}
		s += Repr(k) + ": " + Repr(d.vals[d.hashes[i]])
	}
	return s + "}"
}
