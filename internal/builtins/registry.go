package builtins

import "github.com/pesci-lang/pesci/internal/value"

func fn(name string, f value.HostFunc) *value.HostFn {
	return &value.HostFn{Name: name, Fn: f}
}

func annotatedFn(name string, f value.HostFunc) *value.HostFn {
	return &value.HostFn{Name: name, Annotated: true, Fn: f}
}

// Table assembles the built-in name->Value mapping the evaluator
// consults once scope lookup fails (§6 Built-ins table). It is built
// fresh per Interpreter rather than shared as a package-level map,
// mirroring the teacher's per-interpreter builtins registration and
// keeping the table trivially extendable by an embedding host (§6:
// "Additional entries may be registered by the host").
func Table() map[string]value.Value {
	return map[string]value.Value{
		"None": value.NoneValue,

		"len":      fn("len", builtinLen),
		"abs":      fn("abs", builtinAbs),
		"all":      fn("all", builtinAll),
		"any":      fn("any", builtinAny),
		"bin":      fn("bin", builtinBin),
		"bool":     fn("bool", builtinBool),
		"cmp":      fn("cmp", builtinCmp),
		"complex":  fn("complex", builtinComplex),
		"dict":     fn("dict", builtinDict),
		"enumerate": fn("enumerate", builtinEnumerate),
		"filter":   annotatedFn("filter", builtinFilter),
		"float":    fn("float", builtinFloat),
		"format":   fn("format", builtinFormat),
		"hasattr":  fn("hasattr", builtinHasattr),
		"hash":     fn("hash", builtinHash),
		"hex":      fn("hex", builtinHex),
		"int":      fn("int", builtinInt),
		"list":     fn("list", builtinList),
		"map":      annotatedFn("map", builtinMap),
		"max":      fn("max", builtinMax),
		"min":      fn("min", builtinMin),
		"oct":      fn("oct", builtinOct),
		"ord":      fn("ord", builtinOrd),
		"pow":      fn("pow", builtinPow),
		"range":    fn("range", builtinRange),
		"reduce":   annotatedFn("reduce", builtinReduce),
		"reversed": fn("reversed", builtinReversed),
		"round":    fn("round", builtinRound),
		"slice":    fn("slice", builtinSlice),
		"sorted":   annotatedFn("sorted", builtinSortedKeyed),
		"str":      fn("str", builtinStr),
		"sum":      fn("sum", builtinSum),
		"type":     fn("type", builtinType),
		"tuple":    fn("tuple", builtinTuple),
		"zip":      fn("zip", builtinZip),

		// Preloaded symbols from original_source/pesci's __main__.py
		// (SPEC_FULL.md §C.1), not part of the Python BUILTINS dict
		// itself but registered the same way by the reference driver.
		"help": annotatedFn("help", builtinHelp),
		"dir":  annotatedFn("dir", builtinDir),
	}
}
