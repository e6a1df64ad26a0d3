package ast

// Num is an integer or float literal. IsFloat distinguishes `3` from
// `3.0`; the lexer decides this from the literal's spelling.
type Num struct {
	base
	IsFloat bool
	Int     string // decimal text, parsed with math/big for arbitrary precision
	Float   float64
}

func (*Num) Kind() string { return "Num" }
func (*Num) exprNode()    {}

// Str is a string literal.
type Str struct {
	base
	Value string
}

func (*Str) Kind() string { return "Str" }
func (*Str) exprNode()    {}

// NameConstant is True, False, or None.
type NameConstant struct {
	base
	// Which constant: "True", "False", or "None".
	Value string
}

func (*NameConstant) Kind() string { return "NameConstant" }
func (*NameConstant) exprNode()    {}

// Name is a bound identifier reference.
type Name struct {
	base
	Id string
}

func (*Name) Kind() string { return "Name" }
func (*Name) exprNode()    {}

// BinOp is a binary arithmetic/bitwise expression (§4.3).
type BinOp struct {
	base
	Left  Expr
	Op    *Operator
	Right Expr
}

func (*BinOp) Kind() string { return "BinOp" }
func (*BinOp) exprNode()    {}

// BoolOp is a short-circuit `or`/`and` chain over two or more operands.
type BoolOp struct {
	base
	Op     BoolOpKind
	Values []Expr
}

func (*BoolOp) Kind() string { return "BoolOp" }
func (*BoolOp) exprNode()    {}

// UnaryOp is `not x` or `~x`.
type UnaryOp struct {
	base
	Op      UnaryOpKind
	Operand Expr
}

func (*UnaryOp) Kind() string { return "UnaryOp" }
func (*UnaryOp) exprNode()    {}

// Compare is a chained comparison: left, then one (op, comparator) per
// step. §4.3 requires all comparators be evaluated before left.
type Compare struct {
	base
	Left        Expr
	Ops         []CmpOpKind
	Comparators []Expr
}

func (*Compare) Kind() string { return "Compare" }
func (*Compare) exprNode()    {}

// Keyword is one `name=value` pair in a call.
type Keyword struct {
	Arg   string
	Value Expr
}

// Call is a function call with positional args, keyword args, and
// optional star/double-star splats (§4.4).
type Call struct {
	base
	Func     Expr
	Args     []Expr
	Keywords []Keyword
	Star     *Name
	Kstar    *Name
}

func (*Call) Kind() string { return "Call" }
func (*Call) exprNode()    {}

// Dict is a dict literal; Keys[i] maps to Values[i]. §4.3 evaluates
// values first, then keys.
type Dict struct {
	base
	Keys   []Expr
	Values []Expr
}

func (*Dict) Kind() string { return "Dict" }
func (*Dict) exprNode()    {}

// Tuple is a tuple literal, or a destructuring-assignment target.
type Tuple struct {
	base
	Elts []Expr
}

func (*Tuple) Kind() string { return "Tuple" }
func (*Tuple) exprNode()    {}

// List is a list literal, or a destructuring-assignment target.
type List struct {
	base
	Elts []Expr
}

func (*List) Kind() string { return "List" }
func (*List) exprNode()    {}

// Attribute is `value.attr`, read-only and rejected when attr begins
// with an underscore (§3 invariants).
type Attribute struct {
	base
	Value Expr
	Attr  string
}

func (*Attribute) Kind() string { return "Attribute" }
func (*Attribute) exprNode()    {}

// Subscript is `value[slice]`; Slice is either an Index or a Slice.
type Subscript struct {
	base
	Value Expr
	Slice Expr
}

func (*Subscript) Kind() string { return "Subscript" }
func (*Subscript) exprNode()    {}

// Index is a single-element subscript, e.g. the `0` in `xs[0]`.
type Index struct {
	base
	Value Expr
}

func (*Index) Kind() string { return "Index" }
func (*Index) exprNode()    {}

// Slice is `lower:upper:step`; any component may be nil, defaulting per
// §4.3 (0, length, 1 respectively).
type Slice struct {
	base
	Lower Expr
	Upper Expr
	Step  Expr
}

func (*Slice) Kind() string { return "Slice" }
func (*Slice) exprNode()    {}

// ListComp, DictComp and IfExp are accepted by the validator's subset
// (original_source/pesci/validator.py lists them) but have no
// evaluation rule; §9 directs treating them as out of scope absent a
// spec extension. They are represented so the parser/validator can
// recognize the syntax; internal/interp's dispatch rejects them with a
// runtime-error.
type ListComp struct {
	base
	Elt Expr
}

func (*ListComp) Kind() string { return "ListComp" }
func (*ListComp) exprNode()    {}

type DictComp struct {
	base
	Key   Expr
	Value Expr
}

func (*DictComp) Kind() string { return "DictComp" }
func (*DictComp) exprNode()    {}

type IfExp struct {
	base
	Test   Expr
	Body   Expr
	Orelse Expr
}

func (*IfExp) Kind() string { return "IfExp" }
func (*IfExp) exprNode()    {}
