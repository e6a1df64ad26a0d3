package builtins

import (
	"strings"
	"testing"

	"github.com/pesci-lang/pesci/internal/interp"
	"github.com/pesci-lang/pesci/internal/value"
)

func TestBuiltinType(t *testing.T) {
	got, err := builtinType([]value.Value{value.NewInt(1)}, nil)
	if err != nil {
		t.Fatalf("type: %v", err)
	}
	if got.String() != "<type 'int'>" {
		t.Fatalf("got %q", got)
	}
}

func TestBuiltinHasattrRejectsUnderscoreNames(t *testing.T) {
	got, err := builtinHasattr([]value.Value{value.NewStr("x"), value.NewStr("_secret")}, nil)
	if err != nil {
		t.Fatalf("hasattr: %v", err)
	}
	if value.Truthy(got) {
		t.Fatal("expected hasattr to refuse an underscore-prefixed name")
	}
}

func TestBuiltinHasattrFindsStrMethod(t *testing.T) {
	got, err := builtinHasattr([]value.Value{value.NewStr("x"), value.NewStr("upper")}, nil)
	if err != nil {
		t.Fatalf("hasattr: %v", err)
	}
	if !value.Truthy(got) {
		t.Fatal("expected hasattr(\"x\", \"upper\") to be true")
	}
}

func TestBuiltinAllAny(t *testing.T) {
	all, err := builtinAll([]value.Value{value.NewList(ints(1, 2, 3))}, nil)
	if err != nil || !value.Truthy(all) {
		t.Fatalf("all: %v, %v", all, err)
	}
	any, err := builtinAny([]value.Value{value.NewList(ints(0, 0, 1))}, nil)
	if err != nil || !value.Truthy(any) {
		t.Fatalf("any: %v, %v", any, err)
	}
	none, err := builtinAny([]value.Value{value.NewList(ints(0, 0))}, nil)
	if err != nil || value.Truthy(none) {
		t.Fatalf("any of all-falsy: %v, %v", none, err)
	}
}

func TestBuiltinStr(t *testing.T) {
	got, err := builtinStr([]value.Value{value.NewInt(5)}, nil)
	if err != nil {
		t.Fatalf("str: %v", err)
	}
	if got.String() != "5" {
		t.Fatalf("got %q", got)
	}
}

func TestBuiltinHelpAndDirWriteThroughPrint(t *testing.T) {
	var out strings.Builder
	in := interp.New(Table(), func(s string) { out.WriteString(s) })
	if _, err := builtinHelp(nil, withHandles(in)); err != nil {
		t.Fatalf("help: %v", err)
	}
	if !strings.Contains(out.String(), "dir()") {
		t.Fatalf("help() did not mention dir(): %q", out.String())
	}
	out.Reset()
	if _, err := builtinDir(nil, withHandles(in)); err != nil {
		t.Fatalf("dir: %v", err)
	}
	if out.String() == "" {
		t.Fatal("dir() produced no output")
	}
}
