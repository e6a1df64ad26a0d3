package interp

import (
	"strings"
	"testing"

	perrors "github.com/pesci-lang/pesci/internal/errors"
	"github.com/pesci-lang/pesci/internal/value"
)

func TestPopScopeRefusesGlobal(t *testing.T) {
	env := NewEnvironment()
	err := env.PopScope()
	if !perrors.Is(err, perrors.ErrContextsEmpty) {
		t.Fatalf("got %v, want contexts-empty", err)
	}
	env.PushScope()
	if err := env.PopScope(); err != nil {
		t.Fatalf("popping a pushed scope: %v", err)
	}
}

func TestSetVarRejectsUnderscoreNames(t *testing.T) {
	env := NewEnvironment()
	err := env.SetVar("_secret", value.NewInt(1))
	if !perrors.Is(err, perrors.ErrBadSymbolName) {
		t.Fatalf("got %v, want bad-symbol-name", err)
	}
	if _, ok := env.GetVar("_secret"); ok {
		t.Fatal("rejected name was bound anyway")
	}
}

func TestGlobalDeclarationWritesGlobalScope(t *testing.T) {
	env := NewEnvironment()
	if err := env.SetVar("x", value.NewInt(0)); err != nil {
		t.Fatal(err)
	}
	env.PushScope()
	env.AddGlobal("x")
	if err := env.SetVar("x", value.NewInt(5)); err != nil {
		t.Fatal(err)
	}
	if err := env.SetVar("y", value.NewInt(1)); err != nil {
		t.Fatal(err)
	}
	if err := env.PopScope(); err != nil {
		t.Fatal(err)
	}
	x, ok := env.GetVar("x")
	if !ok {
		t.Fatal("x missing from global scope")
	}
	if x.(*value.Int).V.Int64() != 5 {
		t.Fatalf("x = %v, want 5 (global declaration should write the global scope)", x)
	}
	if _, ok := env.GetVar("y"); ok {
		t.Fatal("y without a global declaration escaped its scope")
	}
}

func TestGetSymbolFallsBackToBuiltins(t *testing.T) {
	env := NewEnvironment()
	env.Setup(nil, map[string]value.Value{"answer": value.NewInt(42)})
	v, err := env.GetSymbol("answer")
	if err != nil {
		t.Fatalf("GetSymbol: %v", err)
	}
	if v.(*value.Int).V.Int64() != 42 {
		t.Fatalf("answer = %v", v)
	}
	_, err = env.GetSymbol("nope")
	if !perrors.Is(err, perrors.ErrSymbolNotFound) {
		t.Fatalf("got %v, want symbol-not-found", err)
	}
}

func TestVisibleContextInnermostWinsAndHidesUnderscores(t *testing.T) {
	env := NewEnvironment()
	if err := env.SetVar("x", value.NewInt(1)); err != nil {
		t.Fatal(err)
	}
	env.PushScope()
	if err := env.SetVar("x", value.NewInt(2)); err != nil {
		t.Fatal(err)
	}
	env.currentScope().vars["_internal"] = value.NewInt(9)
	ctx := env.VisibleContext()
	if ctx["x"].(*value.Int).V.Int64() != 2 {
		t.Fatalf("x = %v, want the innermost binding", ctx["x"])
	}
	if _, ok := ctx["_internal"]; ok {
		t.Fatal("underscore-prefixed key is visible")
	}
}

func TestUnwindKeepsOnlyGlobalScope(t *testing.T) {
	env := NewEnvironment()
	env.PushScope()
	env.PushScope()
	env.Unwind()
	if len(env.contexts) != 1 {
		t.Fatalf("contexts = %d, want 1", len(env.contexts))
	}
	if err := env.PopScope(); !perrors.Is(err, perrors.ErrContextsEmpty) {
		t.Fatalf("got %v, want contexts-empty after unwind", err)
	}
}

func TestDescriptionSortsBindings(t *testing.T) {
	env := NewEnvironment()
	env.SetVar("b", value.NewInt(2))
	env.SetVar("a", value.NewInt(1))
	desc := env.Description()
	ai := strings.Index(desc, "a: 1")
	bi := strings.Index(desc, "b: 2")
	if ai < 0 || bi < 0 || ai > bi {
		t.Fatalf("description not sorted:\n%s", desc)
	}
	if !strings.HasPrefix(desc, "ENV :0:") {
		t.Fatalf("description missing ip header:\n%s", desc)
	}
}
