package ast

// ExprStmt wraps a bare expression used as a statement (e.g. a
// top-level call, or the value the REPL prints).
type ExprStmt struct {
	base
	Value Expr
}

func (*ExprStmt) Kind() string { return "Expr" }
func (*ExprStmt) stmtNode()    {}

// Assign binds the evaluated Value to Target. Exactly one target is
// supported per statement (§4.3); Target is either a Name or a
// List/Tuple pattern of Name children for destructuring.
type Assign struct {
	base
	Target Expr
	Value  Expr
}

func (*Assign) Kind() string { return "Assign" }
func (*Assign) stmtNode()    {}

// AugAssign implements `target op= value` (§4.3).
type AugAssign struct {
	base
	Target *Name
	Op     BinOpKind
	Value  Expr
}

func (*AugAssign) Kind() string { return "AugAssign" }
func (*AugAssign) stmtNode()    {}

// Print is the Python-2-style print statement: evaluate each value,
// concatenate their string forms separated by a single space, with the
// trailing-newline suppression rule from §4.3.
type Print struct {
	base
	Values []Expr
}

func (*Print) Kind() string { return "Print" }
func (*Print) stmtNode()    {}

// If is a conditional with both branches always present (the else
// branch is an empty statement list when the source has none).
type If struct {
	base
	Test Expr
	Body []Stmt
	Orelse []Stmt
}

func (*If) Kind() string { return "If" }
func (*If) stmtNode()    {}

// While repeatedly drives Body while Test is truthy, then drives
// Orelse exactly once on normal loop exit (§4.3).
type While struct {
	base
	Test   Expr
	Body   []Stmt
	Orelse []Stmt
}

func (*While) Kind() string { return "While" }
func (*While) stmtNode()    {}

// For iterates Iter, binding each element to Target (a Name or a Tuple
// pattern), then drives Orelse once after normal completion.
type For struct {
	base
	Target Expr
	Iter   Expr
	Body   []Stmt
	Orelse []Stmt
}

func (*For) Kind() string { return "For" }
func (*For) stmtNode()    {}

// Break exits the innermost enclosing loop (§9 Open Question,
// implemented with conventional semantics per DESIGN.md).
type Break struct{ base }

func (*Break) Kind() string { return "Break" }
func (*Break) stmtNode()    {}

// Continue skips to the next iteration of the innermost enclosing loop.
type Continue struct{ base }

func (*Continue) Kind() string { return "Continue" }
func (*Continue) stmtNode()    {}

// Pass is a no-op statement.
type Pass struct{ base }

func (*Pass) Kind() string { return "Pass" }
func (*Pass) stmtNode()    {}

// Global records names that, within the enclosing function, refer to
// the global scope rather than the local one (§4.3).
type Global struct {
	base
	Names []string
}

func (*Global) Kind() string { return "Global" }
func (*Global) stmtNode()    {}

// Arguments describes a FunctionDef's formal parameter list: ordered
// positional names, an optional variadic ("rest positional") name, an
// optional dictionary-variadic ("rest keyword") name, and default
// value expressions for the last len(Defaults) positional parameters
// (§3 Func, §4.4).
type Arguments struct {
	Args     []string
	Vararg   string
	Kwarg    string
	Defaults []Expr
}

// FunctionDef defines a function and stores it under Name in the
// current scope (§4.3).
type FunctionDef struct {
	base
	Name string
	Args Arguments
	Body []Stmt
}

func (*FunctionDef) Kind() string { return "FunctionDef" }
func (*FunctionDef) stmtNode()    {}

// Return evaluates Value and leaves it on the evaluation stack for the
// calling function's binding frame to observe (§4.3).
type Return struct {
	base
	Value Expr
}

func (*Return) Kind() string { return "Return" }
func (*Return) stmtNode()    {}
