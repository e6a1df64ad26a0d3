package parser

import (
	"testing"

	"github.com/pesci-lang/pesci/pkg/ast"
)

func mustParse(t *testing.T, src string) *ast.Module {
	t.Helper()
	m, err := ParseModule(src)
	if err != nil {
		t.Fatalf("ParseModule(%q): %v", src, err)
	}
	return m
}

func TestParseAssignAndBinOp(t *testing.T) {
	m := mustParse(t, "a = 3\nb = 4\nprint a + b * 2\n")
	if len(m.Body) != 3 {
		t.Fatalf("got %d statements, want 3", len(m.Body))
	}
	assign, ok := m.Body[0].(*ast.Assign)
	if !ok {
		t.Fatalf("statement 0 is %T, want *ast.Assign", m.Body[0])
	}
	if _, ok := assign.Target.(*ast.Name); !ok {
		t.Fatalf("assign target is %T", assign.Target)
	}
	print, ok := m.Body[2].(*ast.Print)
	if !ok || len(print.Values) != 1 {
		t.Fatalf("statement 2 is %T", m.Body[2])
	}
	bin, ok := print.Values[0].(*ast.BinOp)
	if !ok || bin.Op.Op != ast.Add {
		t.Fatalf("expected top-level Add BinOp, got %#v", print.Values[0])
	}
	rhs, ok := bin.Right.(*ast.BinOp)
	if !ok || rhs.Op.Op != ast.Mult {
		t.Fatalf("expected */+ precedence, got right=%#v", bin.Right)
	}
}

func TestParseFunctionDefWithDefaults(t *testing.T) {
	m := mustParse(t, "def f(x, y=10):\n    return x - y\n")
	fn, ok := m.Body[0].(*ast.FunctionDef)
	if !ok {
		t.Fatalf("got %T", m.Body[0])
	}
	if fn.Name != "f" || len(fn.Args.Args) != 2 || len(fn.Args.Defaults) != 1 {
		t.Fatalf("unexpected arguments: %#v", fn.Args)
	}
	if len(fn.Body) != 1 {
		t.Fatalf("expected one body statement, got %d", len(fn.Body))
	}
	if _, ok := fn.Body[0].(*ast.Return); !ok {
		t.Fatalf("body[0] is %T", fn.Body[0])
	}
}

func TestParseStarAndKstarCall(t *testing.T) {
	m := mustParse(t, "f(*args, **kwargs)\n")
	stmt, ok := m.Body[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("got %T", m.Body[0])
	}
	call, ok := stmt.Value.(*ast.Call)
	if !ok {
		t.Fatalf("got %T", stmt.Value)
	}
	if call.Star == nil || call.Star.Id != "args" {
		t.Fatalf("Star = %#v", call.Star)
	}
	if call.Kstar == nil || call.Kstar.Id != "kwargs" {
		t.Fatalf("Kstar = %#v", call.Kstar)
	}
}

func TestParseChainedCompare(t *testing.T) {
	m := mustParse(t, "a = 1 < b <= c\n")
	assign := m.Body[0].(*ast.Assign)
	cmp, ok := assign.Value.(*ast.Compare)
	if !ok {
		t.Fatalf("got %T", assign.Value)
	}
	if len(cmp.Ops) != 2 || cmp.Ops[0] != ast.Lt || cmp.Ops[1] != ast.LtE {
		t.Fatalf("ops = %#v", cmp.Ops)
	}
}

func TestParseForLoop(t *testing.T) {
	m := mustParse(t, "for x in range(10):\n    print x\n")
	forStmt, ok := m.Body[0].(*ast.For)
	if !ok {
		t.Fatalf("got %T", m.Body[0])
	}
	if _, ok := forStmt.Target.(*ast.Name); !ok {
		t.Fatalf("target = %#v", forStmt.Target)
	}
	if _, ok := forStmt.Iter.(*ast.Call); !ok {
		t.Fatalf("iter = %#v", forStmt.Iter)
	}
}

func TestParseSliceAndIndex(t *testing.T) {
	m := mustParse(t, "a = xs[1:2]\nb = xs[0]\n")
	assign1 := m.Body[0].(*ast.Assign)
	sub1 := assign1.Value.(*ast.Subscript)
	if _, ok := sub1.Slice.(*ast.Slice); !ok {
		t.Fatalf("expected Slice, got %#v", sub1.Slice)
	}
	assign2 := m.Body[1].(*ast.Assign)
	sub2 := assign2.Value.(*ast.Subscript)
	if _, ok := sub2.Slice.(*ast.Index); !ok {
		t.Fatalf("expected Index, got %#v", sub2.Slice)
	}
}

func TestParseDictAndList(t *testing.T) {
	m := mustParse(t, "d = {1: 2, 3: 4}\nl = [1, 2, 3]\n")
	assign1 := m.Body[0].(*ast.Assign)
	if d, ok := assign1.Value.(*ast.Dict); !ok || len(d.Keys) != 2 {
		t.Fatalf("got %#v", assign1.Value)
	}
	assign2 := m.Body[1].(*ast.Assign)
	if l, ok := assign2.Value.(*ast.List); !ok || len(l.Elts) != 3 {
		t.Fatalf("got %#v", assign2.Value)
	}
}

func TestParseGlobalAndAugAssign(t *testing.T) {
	m := mustParse(t, "def f():\n    global a\n    a += 1\n")
	fn := m.Body[0].(*ast.FunctionDef)
	if _, ok := fn.Body[0].(*ast.Global); !ok {
		t.Fatalf("got %T", fn.Body[0])
	}
	aug, ok := fn.Body[1].(*ast.AugAssign)
	if !ok || aug.Op != ast.Add {
		t.Fatalf("got %#v", fn.Body[1])
	}
}

func TestParseSemicolonSeparatedStatements(t *testing.T) {
	m := mustParse(t, "a = 3; b = 4\n")
	if len(m.Body) != 2 {
		t.Fatalf("got %d statements, want 2", len(m.Body))
	}
}
