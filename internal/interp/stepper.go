package interp

import (
	"math/big"

	perrors "github.com/pesci-lang/pesci/internal/errors"
	"github.com/pesci-lang/pesci/internal/value"
	"github.com/pesci-lang/pesci/pkg/ast"
)

// completionType classifies a cval the way CodeCity's interpreter.go
// classifies a *cval's NORMAL/BREAK/CONTINUE/RETURN completion type;
// pesci has no labeled statements, so there is no label field to carry.
type completionType int

const (
	cNormal completionType = iota
	cBreak
	cContinue
	cReturn
)

// cval is the signal threaded between frame.step calls: either a plain
// "child finished" marker (cNormal) or a break/continue/return signal
// escaping toward the frame that can handle it (a loop or a function
// call). The child's result value does not ride on the cval; it travels
// on the Environment's shared evaluation stack, which the parent pops
// (§4.1: drive the child iterator until it stops, then consume a stack
// entry). Grounded on the CodeCity Go port's *cval type, minus its
// value field for exactly that reason.
type cval struct {
	typ completionType
}

func fin() *cval { return &cval{typ: cNormal} }

func (c *cval) abrupt() bool {
	return c != nil && c.typ != cNormal
}

// frame is the interface every pending unit of evaluation implements:
// one concrete frame type per AST node kind (plus a couple of
// bookkeeping frames with no AST counterpart, like stmtsFrame). step
// receives the completion signal of whatever frame it most recently
// descended into (nil the first time it is called) and returns the next
// frame to run plus, once this frame itself is done, the signal to hand
// to its own parent. A frame that produces a value pushes it onto the
// evaluation stack before completing; its parent pops it.
type frame interface {
	step(s *Stepper, in *cval) (frame, *cval, error)
}

// frameCommon is embedded by every concrete frame and holds the parent
// pointer frames are chained through, exactly as CodeCity's
// stateCommon does.
type frameCommon struct {
	parent frame
}

// Stepper drives one program's execution one frame transition at a
// time (§4.1). It owns the shared Environment (scopes, evaluation
// stack, instruction pointer) frames read and mutate as they run, and
// keeps a guest call trace for the host stack trace REPL errors carry
// (§7 Propagation).
type Stepper struct {
	Env   *Environment
	Print func(string)

	interp *Interpreter
	calls  perrors.Trace

	cur     frame
	pending *cval
}

// NewStepper builds a Stepper bound to in's Environment. in.Print
// receives the exact text Print statements produce, with the line's
// trailing newline already appended.
func NewStepper(in *Interpreter) *Stepper {
	return &Stepper{Env: in.Env, Print: in.Print, interp: in}
}

// Start installs the given top-level statement as the current frame and
// returns at once; Step() then drives it one observable step at a time.
func (s *Stepper) Start(stmt ast.Stmt) {
	s.cur = newFrame(nil, stmt)
	s.pending = nil
}

// StartBody begins executing a statement sequence directly (a function
// body driven synchronously by CallFunction), without needing a single
// wrapping ast.Stmt.
func (s *Stepper) StartBody(body []ast.Stmt) {
	s.cur = newFrame(nil, stmtList(body))
	s.pending = nil
}

// Step performs exactly one frame transition, increments the
// environment's instruction pointer, and reports whether more work
// remains. perrors.ExecutionEnded is never returned as err; a finished
// program is reported as (false, nil) per §7 ("execution-ended ... is
// not a failure").
func (s *Stepper) Step() (bool, error) {
	if s.cur == nil {
		return false, nil
	}
	next, out, err := s.cur.step(s, s.pending)
	if err != nil {
		s.cur = nil
		s.pending = nil
		if s.interp != nil && s.interp.Interactive && len(s.calls) > 0 {
			tr := append(perrors.Trace{{Name: "<module>"}}, s.calls...)
			err = &perrors.WithTrace{Err: err, Trace: tr}
		}
		s.calls = nil
		return false, err
	}
	s.Env.ip++
	s.cur = next
	s.pending = out
	return s.cur != nil, nil
}

// Run drives the stepper to completion, returning the first error
// encountered, if any.
func (s *Stepper) Run() error {
	for {
		more, err := s.Step()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func (s *Stepper) pushCall(name string, line int) {
	s.calls = append(s.calls, perrors.Frame{Name: name, Line: line})
}

func (s *Stepper) popCall() {
	if n := len(s.calls); n > 0 {
		s.calls = s.calls[:n-1]
	}
}

// newFrame constructs the frame for node, parented to parent. This is
// the single dispatch point every statement and expression kind in the
// accepted subset passes through, mirroring CodeCity's newState
// factory switch.
func newFrame(parent frame, node any) frame {
	fc := frameCommon{parent: parent}
	switch n := node.(type) {
	// --- bookkeeping ---
	case stmtList:
		return &stmtsFrame{frameCommon: fc, body: n}

	// --- statements ---
	case *ast.ExprStmt:
		return &exprStmtFrame{frameCommon: fc, node: n}
	case *ast.Assign:
		return &assignFrame{frameCommon: fc, node: n}
	case *ast.AugAssign:
		return &augAssignFrame{frameCommon: fc, node: n}
	case *ast.Print:
		return &printFrame{frameCommon: fc, node: n}
	case *ast.If:
		return &ifFrame{frameCommon: fc, node: n}
	case *ast.While:
		return &whileFrame{frameCommon: fc, node: n}
	case *ast.For:
		return &forFrame{frameCommon: fc, node: n}
	case *ast.Break:
		return &breakFrame{frameCommon: fc}
	case *ast.Continue:
		return &continueFrame{frameCommon: fc}
	case *ast.Pass:
		return &passFrame{frameCommon: fc}
	case *ast.Global:
		return &globalFrame{frameCommon: fc, node: n}
	case *ast.FunctionDef:
		return &funcDefFrame{frameCommon: fc, node: n}
	case *ast.Return:
		return &returnFrame{frameCommon: fc, node: n}

	// --- expressions ---
	case *ast.Num:
		return &leafFrame{frameCommon: fc, v: numValue(n)}
	case *ast.Str:
		return &leafFrame{frameCommon: fc, v: value.NewStr(n.Value)}
	case *ast.NameConstant:
		return &leafFrame{frameCommon: fc, v: nameConstantValue(n)}
	case *ast.Operator:
		return &leafFrame{frameCommon: fc, v: &value.OpToken{Op: n.Op}}
	case *ast.Name:
		return &nameFrame{frameCommon: fc, node: n}
	case *ast.BinOp:
		return &binOpFrame{frameCommon: fc, node: n}
	case *ast.BoolOp:
		return &boolOpFrame{frameCommon: fc, node: n}
	case *ast.UnaryOp:
		return &unaryOpFrame{frameCommon: fc, node: n}
	case *ast.Compare:
		return &compareFrame{frameCommon: fc, node: n}
	case *ast.Call:
		return &callFrame{frameCommon: fc, node: n}
	case *ast.Dict:
		return &dictFrame{frameCommon: fc, node: n}
	case *ast.Tuple:
		return &tupleFrame{frameCommon: fc, node: n}
	case *ast.List:
		return &listFrame{frameCommon: fc, node: n}
	case *ast.Attribute:
		return &attributeFrame{frameCommon: fc, node: n}
	case *ast.Subscript:
		return &subscriptFrame{frameCommon: fc, node: n}
	case *ast.Index:
		return &indexFrame{frameCommon: fc, node: n}
	case *ast.Slice:
		return &sliceFrame{frameCommon: fc, node: n}
	case *ast.ListComp, *ast.DictComp, *ast.IfExp:
		// Accepted by the validator (§9) but not implemented by the
		// evaluator: surfaced as a runtime-error the moment one would
		// actually be evaluated, rather than rejected up front.
		return &unsupportedFrame{frameCommon: fc, node: node.(ast.Node)}

	default:
		return &unsupportedFrame{frameCommon: fc, node: node.(ast.Node)}
	}
}

// stmtList is the bookkeeping "node" fed to newFrame to run a
// statement sequence (a function body, a module body, a loop body);
// it has no counterpart in pkg/ast because Python's own grammar
// doesn't need one — a body is just a []ast.Stmt wherever it appears.
type stmtList []ast.Stmt

// unsupportedFrame reports a runtime-error for any node the evaluator
// recognizes syntactically (it passed validation) but does not know
// how to execute.
type unsupportedFrame struct {
	frameCommon
	node ast.Node
}

func (f *unsupportedFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	return nil, nil, perrors.New(perrors.ErrRuntime, f.node.Pos(),
		"%s is accepted by the grammar but not supported by the evaluator", f.node.Kind())
}

// leafFrame completes immediately, pushing a constant value (Num, Str,
// NameConstant, Operator).
type leafFrame struct {
	frameCommon
	v value.Value
}

func (f *leafFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	s.Env.Push(f.v)
	return f.parent, fin(), nil
}

func numValue(n *ast.Num) value.Value {
	if n.IsFloat {
		return value.NewFloat(n.Float)
	}
	i, ok := new(big.Int).SetString(n.Int, 10)
	if !ok {
		return value.NewInt(0)
	}
	return &value.Int{V: i}
}

func nameConstantValue(n *ast.NameConstant) value.Value {
	switch n.Value {
	case "True":
		return value.True
	case "False":
		return value.False
	default:
		return value.NoneValue
	}
}

// nameFrame resolves an identifier through the Environment (§4.2/§4.3).
type nameFrame struct {
	frameCommon
	node *ast.Name
}

func (f *nameFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	v, err := s.Env.GetSymbol(f.node.Id)
	if err != nil {
		if pe, ok := err.(*perrors.PesciError); ok {
			pe.Pos = f.node.Pos()
		}
		return nil, nil, err
	}
	s.Env.Push(v)
	return f.parent, fin(), nil
}

// stmtsFrame runs a []ast.Stmt in order, stopping early if a child
// yields an abrupt completion (break/continue/return), exactly like
// CodeCity's stateBlockStatement. Each completed statement leaves one
// value on the evaluation stack; stmtsFrame pops it so values never
// accumulate across statement boundaries, then re-pushes the last one
// as its own completion value (the residual §4.1's top-level loop — or
// the REPL — inspects).
type stmtsFrame struct {
	frameCommon
	body []ast.Stmt
	n    int
	last value.Value
}

func (f *stmtsFrame) step(s *Stepper, in *cval) (frame, *cval, error) {
	if in != nil {
		if in.abrupt() {
			return f.parent, in, nil
		}
		f.last = s.Env.Pop()
	}
	if f.n < len(f.body) {
		next := newFrame(f, f.body[f.n])
		f.n++
		return next, nil, nil
	}
	if f.last == nil {
		f.last = value.NoneValue
	}
	s.Env.Push(f.last)
	return f.parent, fin(), nil
}

func runtimeErr(pos ast.Pos, format string, args ...any) error {
	return perrors.New(perrors.ErrRuntime, pos, format, args...)
}
