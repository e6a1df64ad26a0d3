// Package errors implements pesci's error taxonomy (§7): a single
// *PesciError type carrying a taxonomy kind, a message, and the source
// position of the node that raised it, with a Format method that
// renders a source line and caret pointer the way the teacher's
// CompilerError does for DWScript diagnostics.
package errors

import (
	"fmt"
	"strings"

	"github.com/pesci-lang/pesci/pkg/ast"
)

// Kind identifies which branch of §7's error taxonomy an error belongs
// to. Kind is part of the public contract: callers switch on it to
// decide exit codes and REPL recovery behavior.
type Kind string

const (
	ErrSubsetSyntax     Kind = "subset-syntax-error"
	ErrSymbolNotFound   Kind = "symbol-not-found"
	ErrBadSymbolName    Kind = "bad-symbol-name"
	ErrBadFunctionCall  Kind = "bad-function-call"
	ErrInvalidAttribute Kind = "invalid-attribute"
	ErrContextsEmpty    Kind = "contexts-empty"
	ErrExecutionEnded   Kind = "execution-ended"
	ErrRuntime          Kind = "runtime-error"
)

// PesciError is the single error type every pesci-detected fault is
// reported as. Pos.Line is 0 when the error has no associated source
// position (e.g. a contexts-empty bug surfaced far from user code).
type PesciError struct {
	Kind    Kind
	Message string
	Pos     ast.Pos
	// Node, when set, names the offending AST node kind for
	// subset-syntax-error messages (§7: "including the offending node
	// kind").
	Node string
}

func (e *PesciError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Node != "" {
		fmt.Fprintf(&b, " (%s)", e.Node)
	}
	if e.Pos.Line > 0 {
		fmt.Fprintf(&b, " at line %d, column %d", e.Pos.Line, e.Pos.Column)
	}
	return b.String()
}

// Format renders the error the way the teacher's CompilerError.Format
// does: the message, then the offending source line with a caret under
// the reported column, when source text is available.
func (e *PesciError) Format(source []string) string {
	msg := e.Error()
	if e.Pos.Line <= 0 || e.Pos.Line > len(source) {
		return msg
	}
	line := source[e.Pos.Line-1]
	col := e.Pos.Column - 1
	if col < 0 {
		col = 0
	}
	caret := strings.Repeat(" ", col) + "^"
	return fmt.Sprintf("%s\n%s\n%s", msg, line, caret)
}

// New builds a PesciError at the given position.
func New(kind Kind, pos ast.Pos, format string, args ...any) *PesciError {
	return &PesciError{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// Newf builds a PesciError with no associated source position, for
// faults detected outside node evaluation (e.g. ErrContextsEmpty).
func Newf(kind Kind, format string, args ...any) *PesciError {
	return &PesciError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// SubsetSyntax reports a node kind outside the accepted grammar.
func SubsetSyntax(pos ast.Pos, node string) *PesciError {
	return &PesciError{Kind: ErrSubsetSyntax, Pos: pos, Node: node,
		Message: fmt.Sprintf("unsupported syntax: %s", node)}
}

// ExecutionEnded is the sentinel returned when a Stepper's step
// iterator is exhausted; it is not a failure (§7) and callers must
// treat it as a control signal, not surface it to the user.
var ExecutionEnded = &PesciError{Kind: ErrExecutionEnded, Message: "execution ended"}

// Is reports whether err is a PesciError of the given kind.
func Is(err error, kind Kind) bool {
	pe, ok := err.(*PesciError)
	return ok && pe.Kind == kind
}
