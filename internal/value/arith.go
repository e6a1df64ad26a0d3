package value

import (
	"fmt"
	"math"
	"math/big"

	"github.com/pesci-lang/pesci/pkg/ast"
)

// BinOp implements the numeric tower documented in §4.3/§9: integer
// operands stay integer except for true division (always float);
// mixing an int with a float promotes the int to float; floor division
// yields an integer only when both operands are integers. String
// concatenation/repetition and list/tuple concatenation are the
// non-numeric cases the original source relies on Python operator
// overloading for; Pesci documents each combination explicitly instead
// of leaning on host overloading (§9 Design Notes).
func BinOp(left Value, op ast.BinOpKind, right Value) (Value, error) {
	// String/list/tuple concatenation and string/sequence repetition.
	if v, ok, err := sequenceOp(left, op, right); ok || err != nil {
		return v, err
	}

	li, lIsInt := left.(*Int)
	ri, rIsInt := right.(*Int)
	if lIsInt && rIsInt {
		return intOp(li, op, ri)
	}

	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if lok && rok {
		return floatOp(lf, op, rf)
	}

	return nil, fmt.Errorf("unsupported operand type(s) for %s: '%s' and '%s'", op, left.Type(), right.Type())
}

func asFloat(v Value) (float64, bool) {
	switch v := v.(type) {
	case *Int:
		f := new(big.Float).SetInt(v.V)
		r, _ := f.Float64()
		return r, true
	case *Float:
		return v.V, true
	case *Bool:
		if v.V {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func sequenceOp(left Value, op ast.BinOpKind, right Value) (Value, bool, error) {
	switch op {
	case ast.Add:
		if l, ok := left.(*Str); ok {
			if r, ok := right.(*Str); ok {
				return NewStr(l.V + r.V), true, nil
			}
			return nil, true, fmt.Errorf("cannot concatenate 'str' and '%s' objects", right.Type())
		}
		if l, ok := left.(*List); ok {
			if r, ok := right.(*List); ok {
				out := make([]Value, 0, len(l.Elems)+len(r.Elems))
				out = append(out, l.Elems...)
				out = append(out, r.Elems...)
				return NewList(out), true, nil
			}
			return nil, true, fmt.Errorf("can only concatenate list (not \"%s\") to list", right.Type())
		}
		if l, ok := left.(*Tuple); ok {
			if r, ok := right.(*Tuple); ok {
				out := make([]Value, 0, len(l.Elems)+len(r.Elems))
				out = append(out, l.Elems...)
				out = append(out, r.Elems...)
				return NewTuple(out), true, nil
			}
			return nil, true, fmt.Errorf("can only concatenate tuple (not \"%s\") to tuple", right.Type())
		}
	case ast.Mult:
		if l, ok := left.(*Str); ok {
			if n, ok := right.(*Int); ok {
				return NewStr(repeatStr(l.V, n.V)), true, nil
			}
		}
		if n, ok := left.(*Int); ok {
			if r, ok := right.(*Str); ok {
				return NewStr(repeatStr(r.V, n.V)), true, nil
			}
		}
		if l, ok := left.(*List); ok {
			if n, ok := right.(*Int); ok {
				return NewList(repeatSlice(l.Elems, n.V)), true, nil
			}
		}
	}
	return nil, false, nil
}

func repeatStr(s string, n *big.Int) string {
	count := n.Int64()
	if count <= 0 {
		return ""
	}
	out := ""
	for i := int64(0); i < count; i++ {
		out += s
	}
	return out
}

func repeatSlice(elems []Value, n *big.Int) []Value {
	count := n.Int64()
	if count <= 0 {
		return nil
	}
	out := make([]Value, 0, int64(len(elems))*count)
	for i := int64(0); i < count; i++ {
		out = append(out, elems...)
	}
	return out
}

func intOp(l *Int, op ast.BinOpKind, r *Int) (Value, error) {
	switch op {
	case ast.Add:
		return &Int{V: new(big.Int).Add(l.V, r.V)}, nil
	case ast.Sub:
		return &Int{V: new(big.Int).Sub(l.V, r.V)}, nil
	case ast.Mult:
		return &Int{V: new(big.Int).Mul(l.V, r.V)}, nil
	case ast.Div:
		// True division of two ints always yields a float (§4.3).
		if r.V.Sign() == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		lf, _ := new(big.Float).SetInt(l.V).Float64()
		rf, _ := new(big.Float).SetInt(r.V).Float64()
		return NewFloat(lf / rf), nil
	case ast.FloorDiv:
		if r.V.Sign() == 0 {
			return nil, fmt.Errorf("integer division or modulo by zero")
		}
		q := new(big.Int)
		m := new(big.Int)
		q.QuoRem(l.V, r.V, m)
		// QuoRem truncates toward zero; floor division rounds toward
		// negative infinity, so adjust when the remainder and divisor
		// disagree in sign.
		if m.Sign() != 0 && (m.Sign() < 0) != (r.V.Sign() < 0) {
			q.Sub(q, big.NewInt(1))
		}
		return &Int{V: q}, nil
	case ast.Mod:
		if r.V.Sign() == 0 {
			return nil, fmt.Errorf("integer division or modulo by zero")
		}
		m := new(big.Int).Mod(l.V, r.V)
		if m.Sign() != 0 && r.V.Sign() < 0 {
			m.Add(m, r.V)
		}
		return &Int{V: m}, nil
	case ast.Pow:
		if r.V.Sign() < 0 {
			lf, _ := new(big.Float).SetInt(l.V).Float64()
			rf, _ := new(big.Float).SetInt(r.V).Float64()
			return NewFloat(math.Pow(lf, rf)), nil
		}
		return &Int{V: new(big.Int).Exp(l.V, r.V, nil)}, nil
	case ast.LShift:
		return &Int{V: new(big.Int).Lsh(l.V, uint(r.V.Int64()))}, nil
	case ast.RShift:
		return &Int{V: new(big.Int).Rsh(l.V, uint(r.V.Int64()))}, nil
	case ast.BitOr:
		return &Int{V: new(big.Int).Or(l.V, r.V)}, nil
	case ast.BitXor:
		return &Int{V: new(big.Int).Xor(l.V, r.V)}, nil
	case ast.BitAnd:
		return &Int{V: new(big.Int).And(l.V, r.V)}, nil
	default:
		return nil, fmt.Errorf("unsupported operator %s for int", op)
	}
}

func floatOp(l float64, op ast.BinOpKind, r float64) (Value, error) {
	switch op {
	case ast.Add:
		return NewFloat(l + r), nil
	case ast.Sub:
		return NewFloat(l - r), nil
	case ast.Mult:
		return NewFloat(l * r), nil
	case ast.Div:
		if r == 0 {
			return nil, fmt.Errorf("float division by zero")
		}
		return NewFloat(l / r), nil
	case ast.FloorDiv:
		if r == 0 {
			return nil, fmt.Errorf("float floor division by zero")
		}
		return NewFloat(math.Floor(l / r)), nil
	case ast.Mod:
		if r == 0 {
			return nil, fmt.Errorf("float modulo")
		}
		m := math.Mod(l, r)
		if m != 0 && (m < 0) != (r < 0) {
			m += r
		}
		return NewFloat(m), nil
	case ast.Pow:
		return NewFloat(math.Pow(l, r)), nil
	default:
		return nil, fmt.Errorf("unsupported operator %s for float", op)
	}
}

// Invert implements the `~x` unary operator; only defined for integers.
func Invert(v Value) (Value, error) {
	i, ok := v.(*Int)
	if !ok {
		return nil, fmt.Errorf("bad operand type for unary ~: '%s'", v.Type())
	}
	return &Int{V: new(big.Int).Not(i.V)}, nil
}
