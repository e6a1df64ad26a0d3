package interp

import (
	"fmt"
	"sort"
	"strings"

	perrors "github.com/pesci-lang/pesci/internal/errors"
	"github.com/pesci-lang/pesci/internal/value"
	"github.com/pesci-lang/pesci/pkg/ast"
)

// scope is one entry of the Environment's context stack: a flat name
// pool plus the set of names this scope has declared `global` (§3:
// "a per-scope globals declaration set"). It is the Go analogue of
// original_source/pesci/environment.py's per-context dict, which
// smuggled the globals set in under a reserved "__globals__" key;
// Go gets a real field for it instead.
type scope struct {
	vars    map[string]value.Value
	globals map[string]bool
}

func newScope() *scope {
	return &scope{vars: map[string]value.Value{}, globals: map[string]bool{}}
}

// Environment is the interpreter's execution state: a stack of lexical
// scopes (index 0 is the global scope and is never popped), a shared
// evaluation stack the stepper pushes intermediate values onto, a
// monotonic step counter (ip), and a cursor tracking which top-level
// statement is executing.
// Grounded on original_source/pesci/environment.py's ExecutionEnvironment;
// method names follow the teacher's Environment (Get/Set-style verbs).
type Environment struct {
	contexts []*scope
	stack    []value.Value

	code   *ast.Module
	ip     int // monotonic step counter; Stepper.Step increments it
	cursor int // index of the top-level statement currently executing

	builtins map[string]value.Value
}

// NewEnvironment builds an Environment with just the global scope
// pushed, mirroring reset() in the Python source.
func NewEnvironment() *Environment {
	e := &Environment{}
	e.Reset()
	return e
}

// Reset discards all scopes, the evaluation stack and the loaded
// program, leaving a single empty global scope — the state a fresh
// REPL session or a new top-level run starts from.
func (e *Environment) Reset() {
	e.code = nil
	e.ip = 0
	e.cursor = -1
	e.contexts = nil
	e.stack = nil
	e.builtins = nil
	e.PushScope()
}

// Setup loads a parsed module and its built-in table, ready to
// execute from the first statement.
func (e *Environment) Setup(code *ast.Module, builtins map[string]value.Value) {
	e.code = code
	e.ip = 0
	e.cursor = -1
	e.builtins = builtins
}

// Code returns the loaded module, or nil if none is loaded.
func (e *Environment) Code() *ast.Module { return e.code }

// IP returns the instruction pointer: the number of steps taken since
// the program was loaded. Every successful Stepper.Step increments it
// by exactly one (§8 Step monotonicity).
func (e *Environment) IP() int { return e.ip }

// Advance moves the statement cursor to the next top-level statement
// and reports whether one remains.
func (e *Environment) Advance() bool {
	e.cursor++
	return e.code != nil && e.cursor < len(e.code.Body)
}

// CurrentStmt returns the top-level statement the cursor refers to.
func (e *Environment) CurrentStmt() ast.Stmt {
	return e.code.Body[e.cursor]
}

// --- evaluation stack ---

// Push places val on the shared evaluation stack; frame types use this
// to hand intermediate results to their parent frame (§4.1).
func (e *Environment) Push(v value.Value) { e.stack = append(e.stack, v) }

// Pop removes and returns the top of the evaluation stack.
func (e *Environment) Pop() value.Value {
	n := len(e.stack)
	v := e.stack[n-1]
	e.stack = e.stack[:n-1]
	return v
}

// PopAll drains and returns the entire evaluation stack, used between
// top-level statements to guarantee no stray values leak across
// statement boundaries.
func (e *Environment) PopAll() []value.Value {
	s := e.stack
	e.stack = nil
	return s
}

// --- scopes ---

// PushScope opens a new lexical scope (function call entry).
func (e *Environment) PushScope() {
	e.contexts = append(e.contexts, newScope())
}

// PopScope closes the innermost scope. Popping the global scope is a
// contexts-empty error (§7) — it can never legally happen, since every
// function call that pushes a scope also pops it on return.
func (e *Environment) PopScope() error {
	if len(e.contexts) <= 1 {
		return perrors.Newf(perrors.ErrContextsEmpty, "cannot pop the global scope")
	}
	e.contexts = e.contexts[:len(e.contexts)-1]
	return nil
}

// Unwind discards every scope above the global one, used when an error
// aborts a statement mid-call so the next REPL input starts from a
// clean context stack (§7 Propagation).
func (e *Environment) Unwind() {
	e.contexts = e.contexts[:1]
}

func (e *Environment) globalScope() *scope  { return e.contexts[0] }
func (e *Environment) currentScope() *scope { return e.contexts[len(e.contexts)-1] }

// scopeFor resolves which scope a name binds in: the global scope if
// the current scope declared it `global`, the current scope otherwise.
func (e *Environment) scopeFor(name string) *scope {
	cur := e.currentScope()
	if cur.globals[name] {
		return e.globalScope()
	}
	return cur
}

// AddGlobal records that name, in the current scope, refers to the
// global binding rather than a new local one (the `global` statement).
func (e *Environment) AddGlobal(name string) {
	e.currentScope().globals[name] = true
}

// --- symbols ---

func isBadSymbolName(name string) bool {
	return name != "" && name[0] == '_'
}

// SetVar binds name to val in the appropriate scope (§4.2). Binding an
// underscore-prefixed name is a bad-symbol-name error (§7) — pesci
// reserves leading underscores the way the host interpreter itself
// uses them internally (e.g. `__globals__` in the Python source).
func (e *Environment) SetVar(name string, v value.Value) error {
	if isBadSymbolName(name) {
		return perrors.Newf(perrors.ErrBadSymbolName, "cannot bind name %q", name)
	}
	e.scopeFor(name).vars[name] = v
	return nil
}

// GetVar looks up name through the scope stack, innermost first, per
// §4.2. It does not consult built-ins; use GetSymbol for full lookup.
func (e *Environment) GetVar(name string) (value.Value, bool) {
	for i := len(e.contexts) - 1; i >= 0; i-- {
		if v, ok := e.contexts[i].vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// GetSymbol resolves name against the scope stack and then the
// built-in table, surfacing symbol-not-found (§7) if neither has it.
func (e *Environment) GetSymbol(name string) (value.Value, error) {
	if v, ok := e.GetVar(name); ok {
		return v, nil
	}
	if v, ok := e.builtins[name]; ok {
		return v, nil
	}
	return nil, perrors.Newf(perrors.ErrSymbolNotFound, "name %q is not defined", name)
}

// VisibleContext returns every non-underscore-prefixed name bound
// anywhere on the scope stack, outer scopes first so inner bindings of
// the same name win — used by §6's post-run environment dump and by
// the `dir()` built-in.
func (e *Environment) VisibleContext() map[string]value.Value {
	out := map[string]value.Value{}
	for _, ctx := range e.contexts {
		for k, v := range ctx.vars {
			if len(k) > 0 && k[0] != '_' {
				out[k] = v
			}
		}
	}
	return out
}

// Description renders the post-run environment dump (§6 Debug mode):
// the instruction pointer followed by each visible binding, sorted by
// name, matching original_source/pesci/environment.py's get_description.
func (e *Environment) Description() string {
	ctx := e.VisibleContext()
	names := make([]string, 0, len(ctx))
	for k := range ctx {
		names = append(names, k)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "ENV :%d:\n", e.ip)
	b.WriteString(strings.Repeat("-", 10))
	b.WriteByte('\n')
	for _, name := range names {
		fmt.Fprintf(&b, "%s: %s\n", name, ctx[name].String())
	}
	b.WriteString(strings.Repeat("-", 10))
	return b.String()
}
