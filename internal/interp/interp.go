// Package interp implements pesci's evaluator: the Environment holding
// scope, evaluation-stack and instruction-pointer state; the Stepper
// driving one AST-node transition at a time; and Interpreter, which
// ties the two together into the run()/step() surface the CLI and
// REPL drive (§4.1, §4.2, §4.3, §4.4).
package interp

import (
	"github.com/pesci-lang/pesci/internal/value"
	"github.com/pesci-lang/pesci/pkg/ast"
)

// Interpreter owns the built-ins table and the interactive flag; the
// Environment owns all evaluation state (§9 Design Notes:
// "Global-state holders ... Neither is process-global; both are
// explicit parameters").
type Interpreter struct {
	Env         *Environment
	Builtins    map[string]value.Value
	Interactive bool

	// Print receives the exact text a Print statement produces.
	Print func(string)
}

// New builds an Interpreter with a fresh Environment and the given
// built-in table, printing through print.
func New(builtins map[string]value.Value, print func(string)) *Interpreter {
	return &Interpreter{
		Env:      NewEnvironment(),
		Builtins: builtins,
		Print:    print,
	}
}

// Load parses no input itself (that is internal/lexer + internal/parser's
// job) but wires an already-validated module into the Environment,
// ready to run from its first statement.
func (in *Interpreter) Load(mod *ast.Module) {
	in.Env.Setup(mod, in.Builtins)
}

// RunStatement drives exactly one top-level statement of the loaded
// module to completion and returns the statement's residual value —
// which in REPL mode is printed iff non-null (§8 Drive-to-exhaustion).
// The evaluation stack is fully drained before it returns, and on
// error every scope above the global one is unwound so the next input
// starts clean.
func (in *Interpreter) RunStatement() (value.Value, bool, error) {
	if !in.Env.Advance() {
		return nil, false, nil
	}
	stepper := NewStepper(in)
	stepper.Start(in.Env.CurrentStmt())
	if err := stepper.Run(); err != nil {
		in.Env.Unwind()
		in.Env.PopAll()
		return nil, true, err
	}
	residual := in.Env.PopAll()
	if stepper.pending.abrupt() {
		var what string
		switch stepper.pending.typ {
		case cReturn:
			what = "'return' outside function"
		case cBreak:
			what = "'break' outside loop"
		default:
			what = "'continue' not properly in loop"
		}
		return nil, true, runtimeErr(in.Env.CurrentStmt().Pos(), "%s", what)
	}
	var last value.Value
	if len(residual) > 0 {
		last = residual[len(residual)-1]
	}
	return last, true, nil
}

// Run drives every remaining top-level statement to completion,
// stopping at the first error.
func (in *Interpreter) Run() error {
	for {
		_, more, err := in.RunStatement()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}
