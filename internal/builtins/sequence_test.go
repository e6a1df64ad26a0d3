package builtins

import (
	"testing"

	"github.com/pesci-lang/pesci/internal/value"
)

func ints(xs ...int64) []value.Value {
	out := make([]value.Value, len(xs))
	for i, x := range xs {
		out[i] = value.NewInt(x)
	}
	return out
}

func TestBuiltinLen(t *testing.T) {
	got, err := builtinLen([]value.Value{value.NewList(ints(1, 2, 3))}, nil)
	if err != nil {
		t.Fatalf("len: %v", err)
	}
	if got.String() != "3" {
		t.Fatalf("got %q, want 3", got)
	}
}

func TestBuiltinLenUnsupportedType(t *testing.T) {
	if _, err := builtinLen([]value.Value{value.NewInt(1)}, nil); err == nil {
		t.Fatal("expected an error for len() of an int")
	}
}

func TestBuiltinRangeThreeArgNegativeStep(t *testing.T) {
	got, err := builtinRange(ints(10, 0, -2), nil)
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if got.String() != "[10, 8, 6, 4, 2]" {
		t.Fatalf("got %q", got)
	}
}

func TestBuiltinRangeZeroStepErrors(t *testing.T) {
	if _, err := builtinRange(ints(0, 5, 0), nil); err == nil {
		t.Fatal("expected an error for range() with a zero step")
	}
}

func TestBuiltinReversed(t *testing.T) {
	got, err := builtinReversed([]value.Value{value.NewList(ints(1, 2, 3))}, nil)
	if err != nil {
		t.Fatalf("reversed: %v", err)
	}
	if got.String() != "[3, 2, 1]" {
		t.Fatalf("got %q", got)
	}
}

func TestBuiltinEnumerateWithStart(t *testing.T) {
	got, err := builtinEnumerate([]value.Value{value.NewList([]value.Value{value.NewStr("a"), value.NewStr("b")})}, map[string]value.Value{"start": value.NewInt(1)})
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if got.String() != "[(1, 'a'), (2, 'b')]" {
		t.Fatalf("got %q", got)
	}
}

func TestBuiltinZipTruncatesToShortest(t *testing.T) {
	got, err := builtinZip([]value.Value{value.NewList(ints(1, 2, 3)), value.NewList(ints(4, 5))}, nil)
	if err != nil {
		t.Fatalf("zip: %v", err)
	}
	if got.String() != "[(1, 4), (2, 5)]" {
		t.Fatalf("got %q", got)
	}
}

func TestBuiltinSum(t *testing.T) {
	got, err := builtinSum([]value.Value{value.NewList(ints(1, 2, 3))}, nil)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if got.String() != "6" {
		t.Fatalf("got %q, want 6", got)
	}
}

func TestBuiltinSumWithStart(t *testing.T) {
	got, err := builtinSum([]value.Value{value.NewList(ints(1, 2, 3)), value.NewInt(10)}, nil)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if got.String() != "16" {
		t.Fatalf("got %q, want 16", got)
	}
}

func TestBuiltinMaxMinOverMultipleArgs(t *testing.T) {
	mx, err := builtinMax(ints(3, 7, 2), nil)
	if err != nil {
		t.Fatalf("max: %v", err)
	}
	if mx.String() != "7" {
		t.Fatalf("got %q, want 7", mx)
	}
	mn, err := builtinMin(ints(3, 7, 2), nil)
	if err != nil {
		t.Fatalf("min: %v", err)
	}
	if mn.String() != "2" {
		t.Fatalf("got %q, want 2", mn)
	}
}

func TestBuiltinMaxEmptySequenceErrors(t *testing.T) {
	if _, err := builtinMax([]value.Value{value.NewList(nil)}, nil); err == nil {
		t.Fatal("expected an error for max() of an empty sequence")
	}
}

func TestBuiltinDictCopyAndKwargs(t *testing.T) {
	src := value.NewDict()
	_ = src.Set(value.NewStr("a"), value.NewInt(1))
	got, err := builtinDict([]value.Value{src}, map[string]value.Value{"b": value.NewInt(2)})
	if err != nil {
		t.Fatalf("dict: %v", err)
	}
	d := got.(*value.Dict)
	if d.Len() != 2 {
		t.Fatalf("got len %d, want 2", d.Len())
	}
}

func TestBuiltinSlice(t *testing.T) {
	got, err := builtinSlice(ints(1, 5, 2), nil)
	if err != nil {
		t.Fatalf("slice: %v", err)
	}
	sl, ok := got.(*value.Slice)
	if !ok {
		t.Fatalf("got %T", got)
	}
	if sl.Lower.String() != "1" || sl.Upper.String() != "5" || sl.Step.String() != "2" {
		t.Fatalf("got %#v", sl)
	}
}

func TestBuiltinListFromString(t *testing.T) {
	got, err := builtinList([]value.Value{value.NewStr("ab")}, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got.String() != "['a', 'b']" {
		t.Fatalf("got %q", got)
	}
}
