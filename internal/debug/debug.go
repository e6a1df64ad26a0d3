// Package debug implements the `+file` debug-mode dumps §6 describes:
// a numbered source listing, an indented AST dump, and the post-run
// environment description. Formats are grounded directly on
// original_source/pesci/code.py's PesciCode.__str__/_visit_ast_tree.
package debug

import (
	"fmt"
	"strings"

	"github.com/pesci-lang/pesci/pkg/ast"
)

// SourceDump renders lines numbered "%03d| %s", bracketed by a row of
// asterisks, matching PesciCode.__str__.
func SourceDump(lines []string) string {
	var b strings.Builder
	stars := strings.Repeat("*", 10)
	fmt.Fprintf(&b, "%s\n", stars)
	for i, line := range lines {
		fmt.Fprintf(&b, "%03d| %s\n", i, line)
	}
	b.WriteString(stars)
	return b.String()
}

// ASTDump renders m depth-first, one "%s%s at %d:%d" line per node,
// 4-space indent per depth level, matching _visit_ast_tree.
func ASTDump(m *ast.Module) string {
	var b strings.Builder
	for _, s := range m.Body {
		dumpNode(&b, s, 0)
	}
	return b.String()
}

func dumpNode(b *strings.Builder, n ast.Node, depth int) {
	p := n.Pos()
	fmt.Fprintf(b, "%s%s at %d:%d\n", strings.Repeat(" ", depth*4), n.Kind(), p.Line, p.Column)
	for _, c := range ast.Children(n) {
		if c == nil {
			continue
		}
		dumpNode(b, c, depth+1)
	}
}
