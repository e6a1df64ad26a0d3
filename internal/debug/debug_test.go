package debug

import (
	"strings"
	"testing"

	"github.com/pesci-lang/pesci/internal/parser"
)

func TestSourceDumpNumbersLinesFromZero(t *testing.T) {
	got := SourceDump([]string{"a = 1", "print a"})
	want := "**********\n000| a = 1\n001| print a\n**********"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSourceDumpEmptyInput(t *testing.T) {
	got := SourceDump(nil)
	if !strings.HasPrefix(got, "**********") || !strings.HasSuffix(got, "**********") {
		t.Fatalf("got %q", got)
	}
}

func TestASTDumpIndentsByDepth(t *testing.T) {
	mod, err := parser.ParseModule("a = 1 + 2\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := ASTDump(mod)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected at least 2 lines, got %d: %q", len(lines), got)
	}
	if strings.HasPrefix(lines[0], " ") {
		t.Fatalf("root statement should have no indent: %q", lines[0])
	}
	foundIndented := false
	for _, l := range lines[1:] {
		if strings.HasPrefix(l, "    ") {
			foundIndented = true
		}
	}
	if !foundIndented {
		t.Fatalf("expected at least one child node indented by 4 spaces, got:\n%s", got)
	}
}
