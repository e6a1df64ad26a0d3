// Package ast defines the abstract syntax tree for the subset of
// Python-like syntax that Pesci accepts. Nodes are pure data, produced
// by internal/parser and consumed by internal/validator and
// internal/interp; nothing in this package evaluates anything.
package ast

// Pos is a 1-indexed source position, used for error reporting and for
// the line:column annotations debug mode prints next to each node.
type Pos struct {
	Line   int
	Column int
}

// Node is implemented by every AST node. Kind returns a short,
// human-readable label used by the validator's subset-syntax-error
// messages and by the debug-mode AST dump.
type Node interface {
	Pos() Pos
	Kind() string
}

// base carries the position every node needs; embed it to satisfy Pos().
type base struct {
	P Pos
}

func (b base) Pos() Pos { return b.P }

// SetPos assigns the node's source position. internal/parser calls
// this after building a node's struct literal, since base's own field
// is unexported.
func (b *base) SetPos(p Pos) { b.P = p }

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Module is the root of a parsed program: an ordered list of top-level
// statements, the unit the Stepper drives one at a time (§4.1).
type Module struct {
	base
	Body []Stmt
}

func (*Module) Kind() string { return "Module" }
