package value

import (
	"math/big"
	"testing"

	"github.com/pesci-lang/pesci/pkg/ast"
)

func TestBinOpIntStaysInt(t *testing.T) {
	got, err := BinOp(NewInt(7), ast.FloorDiv, NewInt(2))
	if err != nil {
		t.Fatalf("BinOp: %v", err)
	}
	if _, ok := got.(*Int); !ok {
		t.Fatalf("got %T, want *Int", got)
	}
	if got.String() != "3" {
		t.Fatalf("got %q, want 3", got)
	}
}

func TestBinOpTrueDivisionAlwaysFloat(t *testing.T) {
	got, err := BinOp(NewInt(4), ast.Div, NewInt(2))
	if err != nil {
		t.Fatalf("BinOp: %v", err)
	}
	if _, ok := got.(*Float); !ok {
		t.Fatalf("got %T, want *Float", got)
	}
	if got.String() != "2.0" {
		t.Fatalf("got %q, want 2.0", got)
	}
}

func TestBinOpMixedIntFloatPromotesToFloat(t *testing.T) {
	got, err := BinOp(NewInt(3), ast.Add, NewFloat(0.5))
	if err != nil {
		t.Fatalf("BinOp: %v", err)
	}
	if got.String() != "3.5" {
		t.Fatalf("got %q, want 3.5", got)
	}
}

func TestBinOpFloorDivRoundsTowardNegativeInfinity(t *testing.T) {
	cases := []struct {
		l, r int64
		want string
	}{
		{7, 2, "3"},
		{-7, 2, "-4"},
		{7, -2, "-4"},
		{-7, -2, "3"},
	}
	for _, c := range cases {
		got, err := BinOp(NewInt(c.l), ast.FloorDiv, NewInt(c.r))
		if err != nil {
			t.Fatalf("%d // %d: %v", c.l, c.r, err)
		}
		if got.String() != c.want {
			t.Fatalf("%d // %d = %q, want %q", c.l, c.r, got, c.want)
		}
	}
}

func TestBinOpModFollowsDivisorSign(t *testing.T) {
	got, err := BinOp(NewInt(-7), ast.Mod, NewInt(3))
	if err != nil {
		t.Fatalf("BinOp: %v", err)
	}
	if got.String() != "2" {
		t.Fatalf("got %q, want 2 (Python-style modulo)", got)
	}
}

func TestBinOpDivisionByZeroErrors(t *testing.T) {
	if _, err := BinOp(NewInt(1), ast.Div, NewInt(0)); err == nil {
		t.Fatal("expected division by zero to error")
	}
	if _, err := BinOp(NewInt(1), ast.FloorDiv, NewInt(0)); err == nil {
		t.Fatal("expected floor division by zero to error")
	}
	if _, err := BinOp(NewInt(1), ast.Mod, NewInt(0)); err == nil {
		t.Fatal("expected modulo by zero to error")
	}
}

func TestBinOpStringConcatAndRepeat(t *testing.T) {
	got, err := BinOp(NewStr("ab"), ast.Add, NewStr("cd"))
	if err != nil {
		t.Fatalf("BinOp: %v", err)
	}
	if got.String() != "abcd" {
		t.Fatalf("got %q, want abcd", got)
	}
	got, err = BinOp(NewStr("ab"), ast.Mult, NewInt(3))
	if err != nil {
		t.Fatalf("BinOp: %v", err)
	}
	if got.String() != "ababab" {
		t.Fatalf("got %q, want ababab", got)
	}
}

func TestBinOpListConcat(t *testing.T) {
	got, err := BinOp(NewList([]Value{NewInt(1)}), ast.Add, NewList([]Value{NewInt(2)}))
	if err != nil {
		t.Fatalf("BinOp: %v", err)
	}
	if got.String() != "[1, 2]" {
		t.Fatalf("got %q, want [1, 2]", got)
	}
}

func TestBinOpStringPlusIntErrors(t *testing.T) {
	if _, err := BinOp(NewStr("a"), ast.Add, NewInt(1)); err == nil {
		t.Fatal("expected an error concatenating str and int")
	}
}

func TestBinOpPowNegativeExponentYieldsFloat(t *testing.T) {
	got, err := BinOp(NewInt(2), ast.Pow, NewInt(-1))
	if err != nil {
		t.Fatalf("BinOp: %v", err)
	}
	if got.String() != "0.5" {
		t.Fatalf("got %q, want 0.5", got)
	}
}

func TestBinOpBitwise(t *testing.T) {
	got, err := BinOp(NewInt(6), ast.BitAnd, NewInt(3))
	if err != nil || got.String() != "2" {
		t.Fatalf("got %q, %v, want 2", got, err)
	}
	got, err = BinOp(NewInt(6), ast.BitOr, NewInt(1))
	if err != nil || got.String() != "7" {
		t.Fatalf("got %q, %v, want 7", got, err)
	}
	got, err = BinOp(NewInt(1), ast.LShift, NewInt(4))
	if err != nil || got.String() != "16" {
		t.Fatalf("got %q, %v, want 16", got, err)
	}
}

func TestInvert(t *testing.T) {
	got, err := Invert(&Int{V: big.NewInt(0)})
	if err != nil {
		t.Fatalf("Invert: %v", err)
	}
	if got.String() != "-1" {
		t.Fatalf("got %q, want -1", got)
	}
}

func TestInvertRejectsNonInt(t *testing.T) {
	if _, err := Invert(NewStr("x")); err == nil {
		t.Fatal("expected an error inverting a non-int")
	}
}
