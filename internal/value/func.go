package value

import "github.com/pesci-lang/pesci/pkg/ast"

// Func is a user-defined function closure (§3). It is pure data,
// created once by the FunctionDef rule and immutable thereafter;
// closures capture by lexical lookup at call time, not by binding at
// definition time (§3 invariants), so Func carries no captured
// environment of its own.
type Func struct {
	Name string

	// Params is the ordered positional parameter list.
	Params []string
	// RestParam is the variadic ("*args") parameter name, or "" if none.
	RestParam string
	// RestKwParam is the dictionary-variadic ("**kwargs") parameter
	// name, or "" if none.
	RestKwParam string
	// Defaults holds default values for the *last* len(Defaults)
	// entries of Params, in order (§4.4 step 3).
	Defaults []Value

	Body []ast.Stmt
}

func (*Func) Type() string     { return "function" }
func (f *Func) String() string { return "<function " + f.Name + ">" }

// HostFn is an opaque host-provided callable (§3). Annotated marks a
// HostFn that wants the interpreter and current environment injected
// as well-known keyword arguments at call time (§6 Annotated
// host-function convention).
type HostFn struct {
	Name      string
	Annotated bool
	Fn        HostFunc
}

// HostFunc is the Go signature every built-in implements: positional
// arguments, then a keyword-argument map (which, for annotated
// functions, includes the injected interpreter/env entries).
type HostFunc func(pos []Value, kw map[string]Value) (Value, error)

func (*HostFn) Type() string     { return "builtin_function_or_method" }
func (h *HostFn) String() string { return "<built-in function " + h.Name + ">" }

// Well-known keyword-argument keys the evaluator injects into an
// annotated HostFn's call (§6 Annotated host-function convention).
// Chosen once here and never referenced by name elsewhere, per §9
// ("Host callable marker... Replace with a plain flag field").
const (
	HostKeyInterpreter = "__interpreter__"
	HostKeyEnvironment = "__environment__"
)

// Opaque wraps a host-side Go value (the interpreter or its
// environment) so it can travel through a HostFunc's keyword map
// without internal/value importing internal/interp — doing so would
// create an import cycle, since interp is the package that builds
// these values in the first place.
type Opaque struct {
	Name string
	Data any
}

func (o *Opaque) Type() string   { return "opaque" }
func (o *Opaque) String() string { return "<" + o.Name + ">" }

// OpToken transiently wraps a BinOp's operator child so it can travel
// through the evaluation stack exactly as the left and right operands
// do (§3, §4.3: "evaluate op (pushes an OpToken)").
type OpToken struct {
	Op ast.BinOpKind
}

func (*OpToken) Type() string     { return "operator" }
func (o *OpToken) String() string { return o.Op.String() }
