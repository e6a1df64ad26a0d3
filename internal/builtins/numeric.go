// Package builtins assembles the host built-ins table the evaluator
// consults once scope lookup fails (§3: "a reference to the external
// built-ins table"). Each entry follows the teacher's one-function-
// per-builtin layout (internal/interp/builtins_*.go in the teacher
// repository), adapted from DWScript's static-argument convention to
// pesci's dynamic positional/keyword HostFunc signature.
package builtins

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/pesci-lang/pesci/internal/value"
)

func arityError(name string, want int, got int) error {
	return fmt.Errorf("%s() takes exactly %d argument(s) (%d given)", name, want, got)
}

func toFloat(v value.Value) (float64, bool) {
	switch v := v.(type) {
	case *value.Int:
		f := new(big.Float).SetInt(v.V)
		r, _ := f.Float64()
		return r, true
	case *value.Float:
		return v.V, true
	case *value.Bool:
		if v.V {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func toInt(v value.Value) (*big.Int, bool) {
	switch v := v.(type) {
	case *value.Int:
		return v.V, true
	case *value.Bool:
		if v.V {
			return big.NewInt(1), true
		}
		return big.NewInt(0), true
	default:
		return nil, false
	}
}

// builtinAbs implements abs().
func builtinAbs(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) != 1 {
		return nil, arityError("abs", 1, len(pos))
	}
	switch v := pos[0].(type) {
	case *value.Int:
		return &value.Int{V: new(big.Int).Abs(v.V)}, nil
	case *value.Float:
		return value.NewFloat(math.Abs(v.V)), nil
	case *value.Bool:
		if v.V {
			return value.NewInt(1), nil
		}
		return value.NewInt(0), nil
	default:
		return nil, fmt.Errorf("bad operand type for abs(): '%s'", v.Type())
	}
}

// builtinBool implements bool(), reusing the evaluator's own
// truthiness predicate so the two never drift apart.
func builtinBool(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) == 0 {
		return value.False, nil
	}
	if len(pos) != 1 {
		return nil, arityError("bool", 1, len(pos))
	}
	return value.NewBool(value.Truthy(pos[0])), nil
}

// builtinInt implements int(), including the two-argument string-with-
// base form (int("ff", 16)).
func builtinInt(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) == 0 {
		return value.NewInt(0), nil
	}
	switch v := pos[0].(type) {
	case *value.Int:
		return v, nil
	case *value.Bool:
		if v.V {
			return value.NewInt(1), nil
		}
		return value.NewInt(0), nil
	case *value.Float:
		i, _ := big.NewFloat(v.V).Int(nil)
		return &value.Int{V: i}, nil
	case *value.Str:
		base := 10
		if len(pos) > 1 {
			bi, ok := toInt(pos[1])
			if !ok {
				return nil, fmt.Errorf("int() base must be an integer")
			}
			base = int(bi.Int64())
		}
		i, ok := new(big.Int).SetString(strings.TrimSpace(v.V), base)
		if !ok {
			return nil, fmt.Errorf("invalid literal for int() with base %d: %q", base, v.V)
		}
		return &value.Int{V: i}, nil
	default:
		return nil, fmt.Errorf("int() argument must be a string or a number, not '%s'", v.Type())
	}
}

// builtinFloat implements float().
func builtinFloat(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) == 0 {
		return value.NewFloat(0), nil
	}
	if len(pos) != 1 {
		return nil, arityError("float", 1, len(pos))
	}
	if sv, ok := pos[0].(*value.Str); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(sv.V), 64)
		if err != nil {
			return nil, fmt.Errorf("could not convert string to float: %q", sv.V)
		}
		return value.NewFloat(f), nil
	}
	f, ok := toFloat(pos[0])
	if !ok {
		return nil, fmt.Errorf("float() argument must be a string or a number, not '%s'", pos[0].Type())
	}
	return value.NewFloat(f), nil
}

// builtinComplex implements complex(real, imag=0); the accepted
// subset has no complex literal syntax, so this built-in is the only
// producer of a *value.Complex (§6 Built-ins table).
func builtinComplex(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	var re, im float64
	if len(pos) > 0 {
		f, ok := toFloat(pos[0])
		if !ok {
			return nil, fmt.Errorf("complex() first argument must be a number")
		}
		re = f
	}
	if len(pos) > 1 {
		f, ok := toFloat(pos[1])
		if !ok {
			return nil, fmt.Errorf("complex() second argument must be a number")
		}
		im = f
	}
	return value.NewComplex(re, im), nil
}

// builtinPow implements pow(base, exp[, mod]).
func builtinPow(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) < 2 || len(pos) > 3 {
		return nil, fmt.Errorf("pow() takes 2 or 3 arguments (%d given)", len(pos))
	}
	bi, biok := toInt(pos[0])
	ei, eiok := toInt(pos[1])
	if biok && eiok && ei.Sign() >= 0 {
		if len(pos) == 3 {
			mi, ok := toInt(pos[2])
			if !ok {
				return nil, fmt.Errorf("pow() 3rd argument must be an integer")
			}
			return &value.Int{V: new(big.Int).Exp(bi, ei, mi)}, nil
		}
		return &value.Int{V: new(big.Int).Exp(bi, ei, nil)}, nil
	}
	bf, bok := toFloat(pos[0])
	ef, eok := toFloat(pos[1])
	if !bok || !eok {
		return nil, fmt.Errorf("unsupported operand type(s) for pow()")
	}
	return value.NewFloat(math.Pow(bf, ef)), nil
}

// builtinRound implements round(number[, ndigits]).
func builtinRound(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) < 1 || len(pos) > 2 {
		return nil, fmt.Errorf("round() takes 1 or 2 arguments (%d given)", len(pos))
	}
	f, ok := toFloat(pos[0])
	if !ok {
		return nil, fmt.Errorf("type %s doesn't define __round__ method", pos[0].Type())
	}
	if len(pos) == 1 {
		return value.NewInt(int64(math.Round(f))), nil
	}
	ndigits, ok := toInt(pos[1])
	if !ok {
		return nil, fmt.Errorf("round() second argument must be an integer")
	}
	scale := math.Pow(10, float64(ndigits.Int64()))
	return value.NewFloat(math.Round(f*scale) / scale), nil
}

// builtinCmp implements the Python-2-style cmp() three-way comparator
// (the original source target predates Python 3's removal of cmp()).
func builtinCmp(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) != 2 {
		return nil, arityError("cmp", 2, len(pos))
	}
	eq, err := value.Equals(pos[0], pos[1])
	if err != nil {
		return nil, err
	}
	if eq {
		return value.NewInt(0), nil
	}
	less, err := value.Less(pos[0], pos[1])
	if err != nil {
		return nil, err
	}
	if less {
		return value.NewInt(-1), nil
	}
	return value.NewInt(1), nil
}

// builtinHash implements hash(), delegating to the dict key-hashing
// algorithm so hash(x) == hash(y) whenever x == y as a dict key.
func builtinHash(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) != 1 {
		return nil, arityError("hash", 1, len(pos))
	}
	h, err := value.HashKey(pos[0])
	if err != nil {
		return nil, fmt.Errorf("unhashable type: '%s'", pos[0].Type())
	}
	var sum int64
	for _, c := range h {
		sum = sum*31 + int64(c)
	}
	return value.NewInt(sum), nil
}

// builtinBin/builtinOct/builtinHex implement the base-prefixed integer
// string renderers.
func builtinBin(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	return intRadix("bin", pos, 2, "0b")
}

func builtinOct(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	return intRadix("oct", pos, 8, "0o")
}

func builtinHex(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	return intRadix("hex", pos, 16, "0x")
}

func intRadix(name string, pos []value.Value, base int, prefix string) (value.Value, error) {
	if len(pos) != 1 {
		return nil, arityError(name, 1, len(pos))
	}
	i, ok := toInt(pos[0])
	if !ok {
		return nil, fmt.Errorf("'%s' object cannot be interpreted as an integer", pos[0].Type())
	}
	if i.Sign() < 0 {
		return value.NewStr("-" + prefix + new(big.Int).Abs(i).Text(base)), nil
	}
	return value.NewStr(prefix + i.Text(base)), nil
}

// builtinOrd implements ord(), the character-to-codepoint converter.
func builtinOrd(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	if len(pos) != 1 {
		return nil, arityError("ord", 1, len(pos))
	}
	s, ok := pos[0].(*value.Str)
	if !ok {
		return nil, fmt.Errorf("ord() expected string, got %s", pos[0].Type())
	}
	r := []rune(s.V)
	if len(r) != 1 {
		return nil, fmt.Errorf("ord() expected a character, but string of length %d found", len(r))
	}
	return value.NewInt(int64(r[0])), nil
}
