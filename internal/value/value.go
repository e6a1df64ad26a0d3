// Package value implements the tagged value universe the evaluator
// manipulates (§3): integers, floats, booleans, strings, null, lists,
// tuples, dicts, host-provided callables, user-defined closures, and
// the transient operator tokens that travel on the evaluation stack.
//
// The interface shape follows internal/interp/runtime/primitives.go in
// the teacher repository (Type/String/Equals/CompareTo), adapted to
// Pesci's dynamic-typing rules rather than DWScript's static one.
package value

import (
	"fmt"
	"math/big"
)

// Value is implemented by every runtime value pesci's evaluator can
// produce or bind to a name.
type Value interface {
	// Type returns a short lowercase type tag ("int", "float", "str", ...)
	// used by the type() builtin and in error messages.
	Type() string
	// String returns the str() rendering of the value.
	String() string
}

// Truthy implements §4.3's truthiness predicate: empty string/list/
// tuple/dict, 0, 0.0, false and None are falsy; everything else is
// truthy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case *Int:
		return v.V.Sign() != 0
	case *Float:
		return v.V != 0
	case *Bool:
		return v.V
	case *Str:
		return v.V != ""
	case *List:
		return len(v.Elems) != 0
	case *Tuple:
		return len(v.Elems) != 0
	case *Dict:
		return len(v.keys) != 0
	case *None:
		return false
	default:
		return true
	}
}

// None is the null value. There is exactly one logical None; NoneValue
// is the canonical instance, but equality compares by type, not pointer.
type None struct{}

func (*None) Type() string   { return "NoneType" }
func (*None) String() string { return "None" }

// NoneValue is the canonical None singleton built-ins and the
// evaluator return for "no value".
var NoneValue = &None{}

// Int is an arbitrary-precision integer (§3: "Int (arbitrary precision
// preferred, at least 64-bit)"). math/big is the standard-library
// bignum; no third-party bignum library appears anywhere in the
// retrieval pack, so the standard library is the grounded choice here
// (see DESIGN.md).
type Int struct {
	V *big.Int
}

func NewInt(i int64) *Int { return &Int{V: big.NewInt(i)} }

func (*Int) Type() string   { return "int" }
func (i *Int) String() string { return i.V.String() }

// Float is an IEEE-754 double.
type Float struct {
	V float64
}

func NewFloat(f float64) *Float { return &Float{V: f} }

func (*Float) Type() string { return "float" }
func (f *Float) String() string {
	return formatFloat(f.V)
}

// Bool is a boolean value.
type Bool struct {
	V bool
}

var (
	True  = &Bool{V: true}
	False = &Bool{V: false}
)

func NewBool(b bool) *Bool {
	if b {
		return True
	}
	return False
}

func (*Bool) Type() string { return "bool" }
func (b *Bool) String() string {
	if b.V {
		return "True"
	}
	return "False"
}

// Str is a UTF-8 string value.
type Str struct {
	V string
}

func NewStr(s string) *Str { return &Str{V: s} }

func (*Str) Type() string   { return "str" }
func (s *Str) String() string { return s.V }

// List is an ordered, mutable sequence (§3).
type List struct {
	Elems []Value
}

func NewList(elems []Value) *List { return &List{Elems: elems} }

func (*List) Type() string { return "list" }
func (l *List) String() string {
	return "[" + joinRepr(l.Elems) + "]"
}

// Tuple is an ordered, immutable sequence (§3). Immutability is a
// convention enforced by the evaluator never exposing a mutator for
// Tuple, not by a copy-on-read — matching the Python source's direct
// reuse of the host tuple type.
type Tuple struct {
	Elems []Value
}

func NewTuple(elems []Value) *Tuple { return &Tuple{Elems: elems} }

func (*Tuple) Type() string { return "tuple" }
func (t *Tuple) String() string {
	if len(t.Elems) == 1 {
		return "(" + Repr(t.Elems[0]) + ",)"
	}
	return "(" + joinRepr(t.Elems) + ")"
}

func joinRepr(vs []Value) string {
	s := ""
	for i, v := range vs {
		if i > 0 {
			s += ", "
		}
		s += Repr(v)
	}
	return s
}

// Repr renders a value the way it would appear nested inside a
// container literal's str() form (strings get quoted).
func Repr(v Value) string {
	if s, ok := v.(*Str); ok {
		return "'" + s.V + "'"
	}
	return v.String()
}

// Slice is the value produced by the slice() built-in and by the
// evaluator's own Slice AST node (§6 Built-ins table; §4.3 Subscript /
// Slice): three optional bounds consumed by subscript application.
// It never needs arithmetic or comparison of its own; it exists only
// to travel on the evaluation stack and as a subscript key.
type Slice struct {
	Lower, Upper, Step Value
}

func (*Slice) Type() string   { return "slice" }
func (*Slice) String() string { return "<slice>" }

func formatFloat(f float64) string {
	s := fmt.Sprintf("%g", f)
	// Ensure floats always carry a decimal point or exponent, matching
	// Python's str(float) convention (3.0 not 3).
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' || c == 'n' /* nan/inf */ {
			return s
		}
	}
	return s + ".0"
}
