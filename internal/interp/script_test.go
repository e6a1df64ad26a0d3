package interp_test

import (
	"strings"
	"testing"

	"github.com/pesci-lang/pesci/internal/builtins"
	"github.com/pesci-lang/pesci/internal/errors"
	"github.com/pesci-lang/pesci/internal/interp"
	"github.com/pesci-lang/pesci/internal/parser"
	"github.com/pesci-lang/pesci/internal/validator"
)

// runScript parses, validates and runs src against a fresh
// Interpreter, returning everything written through Print.
func runScript(t *testing.T, src string) string {
	t.Helper()
	mod, err := parser.ParseModule(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	if err := validator.Validate(mod); err != nil {
		t.Fatalf("validate %q: %v", src, err)
	}
	var out strings.Builder
	in := interp.New(builtins.Table(), func(s string) { out.WriteString(s) })
	in.Load(mod)
	if err := in.Run(); err != nil {
		t.Fatalf("run %q: %v", src, err)
	}
	return out.String()
}

func TestArithmeticPrecedence(t *testing.T) {
	got := runScript(t, "a=3\nb=4\nprint a+b*2\n")
	if got != "11\n" {
		t.Fatalf("got %q, want %q", got, "11\n")
	}
}

func TestFunctionWithDefaultArgument(t *testing.T) {
	got := runScript(t, "def f(x, y=10):\n    return x - y\nprint f(3), f(3, 5)\n")
	if got != "-7 -2\n" {
		t.Fatalf("got %q", got)
	}
}

func TestStarArgsSum(t *testing.T) {
	src := "def total(*args):\n    s = 0\n    for a in args:\n        s += a\n    return s\nprint total(1, 2, 3, 4)\n"
	got := runScript(t, src)
	if got != "10\n" {
		t.Fatalf("got %q", got)
	}
}

func TestKwargsSortedKeys(t *testing.T) {
	src := "def names(**kwargs):\n    return sorted(kwargs)\nprint names(b=2, a=1, c=3)\n"
	got := runScript(t, src)
	if got != "['a', 'b', 'c']\n" {
		t.Fatalf("got %q", got)
	}
}

func TestGlobalDeclaration(t *testing.T) {
	src := "count = 0\ndef bump():\n    global count\n    count += 1\nbump()\nbump()\nprint count\n"
	got := runScript(t, src)
	if got != "2\n" {
		t.Fatalf("got %q", got)
	}
}

func TestNestedForLoops(t *testing.T) {
	src := "total = 0\nfor i in range(3):\n    for j in range(3):\n        total += i * j\nprint total\n"
	got := runScript(t, src)
	if got != "9\n" {
		t.Fatalf("got %q", got)
	}
}

func TestChainedCompare(t *testing.T) {
	got := runScript(t, "a=1\nb=2\nc=3\nprint a < b < c\nprint a < b < 1\n")
	if got != "True\nFalse\n" {
		t.Fatalf("got %q", got)
	}
}

func TestBreakAndContinue(t *testing.T) {
	src := "out = []\nfor i in range(10):\n    if i == 5:\n        break\n    if i % 2 == 0:\n        continue\n    out = out + [i]\nprint out\n"
	got := runScript(t, src)
	if got != "[1, 3]\n" {
		t.Fatalf("got %q", got)
	}
}

func TestWhileLoop(t *testing.T) {
	src := "n = 5\nacc = 1\nwhile n > 1:\n    acc *= n\n    n -= 1\nprint acc\n"
	got := runScript(t, src)
	if got != "120\n" {
		t.Fatalf("got %q", got)
	}
}

func TestBoolOpShortCircuit(t *testing.T) {
	src := "def boom():\n    return 1/0\nprint False and boom()\nprint True or boom()\n"
	got := runScript(t, src)
	if got != "False\nTrue\n" {
		t.Fatalf("got %q", got)
	}
}

func TestUnderscoreNameGuard(t *testing.T) {
	mod, err := parser.ParseModule("_secret = 1\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := validator.Validate(mod); err != nil {
		t.Fatalf("validate: %v", err)
	}
	in := interp.New(builtins.Table(), func(string) {})
	in.Load(mod)
	err = in.Run()
	if err == nil {
		t.Fatal("expected bad-symbol-name error, got nil")
	}
}

func TestHigherOrderBuiltins(t *testing.T) {
	src := "def double(x):\n    return x * 2\nxs = [1, 2, 3]\nprint map(double, xs)\n"
	got := runScript(t, src)
	if got != "[2, 4, 6]\n" {
		t.Fatalf("got %q", got)
	}
}

// runScriptErr is runScript's counterpart for programs expected to
// fail at evaluation time; it returns the run error.
func runScriptErr(t *testing.T, src string) error {
	t.Helper()
	mod, err := parser.ParseModule(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	if err := validator.Validate(mod); err != nil {
		t.Fatalf("validate %q: %v", src, err)
	}
	in := interp.New(builtins.Table(), func(string) {})
	in.Load(mod)
	return in.Run()
}

func TestDefaultArgumentScenario(t *testing.T) {
	got := runScript(t, "def f(x, y=10):\n    return x - y\nprint f(3), f(3, 1)\n")
	if got != "-7 2\n" {
		t.Fatalf("got %q, want %q", got, "-7 2\n")
	}
}

func TestVariadicAndKeywordVariadic(t *testing.T) {
	src := "def g(*xs, **kw):\n    return (sum(xs), sorted(kw.keys()))\nprint g(1, 2, 3, a=1, b=2)\n"
	got := runScript(t, src)
	if got != "(6, ['a', 'b'])\n" {
		t.Fatalf("got %q", got)
	}
}

func TestChainedAndParenthesizedCompare(t *testing.T) {
	got := runScript(t, "print 1 < 2 < 3, 3 < 2 < 1, (1 < 2) < 3\n")
	if got != "True False True\n" {
		t.Fatalf("got %q", got)
	}
}

func TestPrintSuppressesSeparatorAfterNewline(t *testing.T) {
	got := runScript(t, "print \"a\\n\", \"b\"\n")
	if got != "a\nb\n" {
		t.Fatalf("got %q, want %q", got, "a\nb\n")
	}
}

func TestDestructuringAssignment(t *testing.T) {
	got := runScript(t, "a, b = [1, 2]\nprint b, a\n")
	if got != "2 1\n" {
		t.Fatalf("got %q", got)
	}
}

func TestForTuplePattern(t *testing.T) {
	src := "for k, v in [(1, 2), (3, 4)]:\n    print k + v\n"
	got := runScript(t, src)
	if got != "3\n7\n" {
		t.Fatalf("got %q", got)
	}
}

func TestWhileElseRunsOnNormalExit(t *testing.T) {
	src := "n = 0\nwhile n < 2:\n    n += 1\nelse:\n    print 'done'\nprint n\n"
	got := runScript(t, src)
	if got != "done\n2\n" {
		t.Fatalf("got %q", got)
	}
}

func TestForElseSkippedOnBreak(t *testing.T) {
	src := "for i in range(5):\n    if i == 1:\n        break\nelse:\n    print 'all'\nprint i\n"
	got := runScript(t, src)
	if got != "1\n" {
		t.Fatalf("got %q", got)
	}
}

func TestSliceForms(t *testing.T) {
	src := "xs = [0, 1, 2, 3, 4]\nprint xs[1:3], xs[:2], xs[::2], xs[3]\n"
	got := runScript(t, src)
	if got != "[1, 2] [0, 1] [0, 2, 4] 3\n" {
		t.Fatalf("got %q", got)
	}
}

func TestStarSplatCall(t *testing.T) {
	src := "def add3(a, b, c):\n    return a + b + c\nargs = [1, 2, 3]\nprint add3(*args)\n"
	got := runScript(t, src)
	if got != "6\n" {
		t.Fatalf("got %q", got)
	}
}

func TestKstarSplatCall(t *testing.T) {
	src := "def f(a, b):\n    return a - b\nkw = {'a': 10, 'b': 4}\nprint f(**kw)\n"
	got := runScript(t, src)
	if got != "6\n" {
		t.Fatalf("got %q", got)
	}
}

func TestMembershipAndIdentity(t *testing.T) {
	src := "xs = [1, 2, 3]\nprint 2 in xs, 4 not in xs, None is None, 1 is not None\n"
	got := runScript(t, src)
	if got != "True True True True\n" {
		t.Fatalf("got %q", got)
	}
}

func TestStringMethodsViaAttributes(t *testing.T) {
	src := "s = 'hello world'\nprint s.upper(), s.split()[1], ','.join(['a', 'b'])\n"
	got := runScript(t, src)
	if got != "HELLO WORLD world a,b\n" {
		t.Fatalf("got %q", got)
	}
}

func TestAttributeUnderscoreGuard(t *testing.T) {
	err := runScriptErr(t, "s = 'hi'\ns._hidden\n")
	if !errors.Is(err, errors.ErrInvalidAttribute) {
		t.Fatalf("got %v, want invalid-attribute", err)
	}
}

func TestDoubleKeywordAssignmentFails(t *testing.T) {
	err := runScriptErr(t, "def f(x):\n    return x\nf(1, x=2)\n")
	if !errors.Is(err, errors.ErrBadFunctionCall) {
		t.Fatalf("got %v, want bad-function-call", err)
	}
}

func TestExcessPositionalsSilentlyDropped(t *testing.T) {
	got := runScript(t, "def f(a):\n    return a\nprint f(1, 2, 3)\n")
	if got != "1\n" {
		t.Fatalf("got %q, want %q (excess positionals are discarded without a rest parameter)", got, "1\n")
	}
}

func TestUnknownKeywordWithoutKwargsFails(t *testing.T) {
	err := runScriptErr(t, "def f(x):\n    return x\nf(1, z=2)\n")
	if !errors.Is(err, errors.ErrBadFunctionCall) {
		t.Fatalf("got %v, want bad-function-call", err)
	}
}

func TestSymbolNotFound(t *testing.T) {
	err := runScriptErr(t, "print nope\n")
	if !errors.Is(err, errors.ErrSymbolNotFound) {
		t.Fatalf("got %v, want symbol-not-found", err)
	}
}

func TestDeterministicRepeatedRuns(t *testing.T) {
	src := "def g(**kw):\n    return kw.keys()\nprint g(b=2, a=1, c=3)\nfor i in range(3):\n    print i * i\n"
	first := runScript(t, src)
	for i := 0; i < 5; i++ {
		if got := runScript(t, src); got != first {
			t.Fatalf("run %d produced %q, first run produced %q", i, got, first)
		}
	}
}

func TestNegativeFloorDivisionAndModulo(t *testing.T) {
	src := "print 7 // 2, 7 % 2\nprint (0 - 7) // 2, (0 - 7) % 2\nprint 7 // (0 - 2), 7 % (0 - 2)\n"
	got := runScript(t, src)
	if got != "3 1\n-4 1\n-4 -1\n" {
		t.Fatalf("got %q", got)
	}
}

func TestIntFloatPromotion(t *testing.T) {
	got := runScript(t, "print 1 / 2, 3 * 1.5, 7 // 2, 7.0 // 2\n")
	if got != "0.5 4.5 3 3.0\n" {
		t.Fatalf("got %q", got)
	}
}
