// Package validator walks a parsed module and rejects any node kind
// outside the subset spec.md §1/§3 accepts, producing a
// subset-syntax-error before the interpreter ever sees the tree.
// Grounded on original_source/pesci/validator.py's Validator class,
// which walks ast.iter_child_nodes and raises PesciSyntaxError on the
// first node not found in its PESCI_SUBSET tuple. The subset mirrors
// that tuple: ListComp/DictComp/IfExp are recognized here (they are in
// PESCI_SUBSET) and only fail later, at evaluation time, with a
// runtime-error (§9 Open Question, DESIGN.md decision 4). Since
// internal/parser only ever constructs these same node types, the
// whitelist is a safety net against trees from any other producer, the
// same role PESCI_SUBSET plays against Python's full ast module.
package validator

import (
	"github.com/pesci-lang/pesci/internal/errors"
	"github.com/pesci-lang/pesci/pkg/ast"
)

// subset names the node Kinds the accepted grammar recognizes,
// mirroring the original's PESCI_SUBSET tuple.
var subset = map[string]bool{
	"Module":       true,
	"Expr":         true,
	"Assign":       true,
	"AugAssign":    true,
	"Print":        true,
	"If":           true,
	"While":        true,
	"For":          true,
	"Break":        true,
	"Continue":     true,
	"Pass":         true,
	"Global":       true,
	"FunctionDef":  true,
	"Return":       true,
	"Num":          true,
	"Str":          true,
	"NameConstant": true,
	"Name":         true,
	"BinOp":        true,
	"BoolOp":       true,
	"UnaryOp":      true,
	"Compare":      true,
	"Operator":     true,
	"Call":         true,
	"Dict":         true,
	"Tuple":        true,
	"List":         true,
	"Attribute":    true,
	"Subscript":    true,
	"Index":        true,
	"Slice":        true,
	"ListComp":     true,
	"DictComp":     true,
	"IfExp":        true,
}

// Validate walks m and returns a *errors.PesciError of Kind
// SubsetSyntaxError on the first node outside the accepted subset.
func Validate(m *ast.Module) error {
	for _, s := range m.Body {
		if err := visit(s); err != nil {
			return err
		}
	}
	return nil
}

func visit(n ast.Node) error {
	if !subset[n.Kind()] {
		return errors.SubsetSyntax(n.Pos(), n.Kind())
	}
	for _, c := range ast.Children(n) {
		if c == nil {
			continue
		}
		if err := visit(c); err != nil {
			return err
		}
	}
	return nil
}
