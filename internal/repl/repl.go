// Package repl implements pesci's interactive front-end (§6 REPL
// protocol): a `>>> `/`... ` prompt, blank-line-terminated block
// accumulation, and echoing of non-null expression-statement results.
// Grounded on original_source/pesci/interpreter.py's run_interactive,
// wired to github.com/chzyer/readline the way the other example repos
// in the retrieval pack (npillmayer-gorgo, dekarrin-tunaq,
// viro-lang-viro, informatter-nilan) drive their own REPLs.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/pesci-lang/pesci/internal/errors"
	"github.com/pesci-lang/pesci/internal/interp"
	"github.com/pesci-lang/pesci/internal/parser"
	"github.com/pesci-lang/pesci/internal/validator"
	"github.com/pesci-lang/pesci/internal/value"
)

const (
	primaryPrompt   = ">>> "
	continuedPrompt = "... "
	banner          = "pesci interactive mode. Type 'exit' to quit."
)

// Run drives an interactive session over rl, evaluating each complete
// block against in. It returns when the user types `exit`, sends EOF
// (Ctrl-D), or interrupts (Ctrl-C) at an empty prompt.
func Run(in *interp.Interpreter, out io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          primaryPrompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	in.Interactive = true
	fmt.Fprintln(out, banner)

	var block []string
	for {
		if len(block) == 0 {
			rl.SetPrompt(primaryPrompt)
		} else {
			rl.SetPrompt(continuedPrompt)
		}
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(block) == 0 {
				continue
			}
			block = nil
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if len(block) == 0 && strings.TrimSpace(line) == "exit" {
			return nil
		}

		block = append(block, line)
		if strings.TrimSpace(line) == "" {
			evalBlock(in, out, block)
			block = nil
			continue
		}
		if !blockWantsMore(block) {
			evalBlock(in, out, block)
			block = nil
		}
	}
}

// blockWantsMore reports whether the accumulated lines still need a
// blank line to terminate, per §6: any line ending in `:` opens a
// block that only a blank line (or EOF) closes.
func blockWantsMore(block []string) bool {
	for _, line := range block {
		if strings.HasSuffix(strings.TrimRight(line, " \t"), ":") {
			return true
		}
	}
	return false
}

// evalBlock parses, validates and runs one accumulated block, echoing
// non-null ExprStmt results the way a Python REPL does.
func evalBlock(in *interp.Interpreter, out io.Writer, block []string) {
	src := strings.Join(block, "\n") + "\n"
	mod, err := parser.ParseModule(src)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	if err := validator.Validate(mod); err != nil {
		fmt.Fprintln(out, err)
		return
	}
	in.Load(mod)
	for {
		v, more, err := in.RunStatement()
		if err != nil {
			fmt.Fprintln(out, formatRuntimeError(err))
			return
		}
		if !more {
			return
		}
		if _, isNone := v.(*value.None); v != nil && !isNone {
			fmt.Fprintln(out, v.String())
		}
	}
}

// formatRuntimeError renders an evaluation error for the REPL; errors
// that crossed guest function calls carry a host-evaluator trace (§7
// Propagation), printed above the error itself.
func formatRuntimeError(err error) string {
	if wt, ok := err.(*errors.WithTrace); ok {
		return wt.Trace.String() + wt.Err.Error()
	}
	return err.Error()
}
